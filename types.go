package humandate

import (
	"fmt"
	"strings"
)

// Unit identifies the calendar field a relative offset applies to.
type Unit int

const (
	UnitDay Unit = iota
	UnitWeek
	UnitMonth
	UnitYear
)

func (u Unit) String() string {
	switch u {
	case UnitDay:
		return "day"
	case UnitWeek:
		return "week"
	case UnitMonth:
		return "month"
	case UnitYear:
		return "year"
	default:
		return fmt.Sprintf("unit(%d)", int(u))
	}
}

// ParseUnit resolves the textual unit names used in language definition files.
func ParseUnit(name string) (Unit, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "day", "days":
		return UnitDay, true
	case "week", "weeks":
		return UnitWeek, true
	case "month", "months":
		return UnitMonth, true
	case "year", "years":
		return UnitYear, true
	default:
		return UnitDay, false
	}
}

// LanguageDef is the raw, data-only description of one language. Definitions
// are declared inline for the built-in languages and can be loaded from
// YAML/JSON files, keeping new languages a data change rather than a code
// change.
type LanguageDef struct {
	Code      string   `json:"code" yaml:"code"`
	Name      string   `json:"name" yaml:"name"`
	Today     []string `json:"today" yaml:"today"`
	Tomorrow  []string `json:"tomorrow" yaml:"tomorrow"`
	Yesterday []string `json:"yesterday" yaml:"yesterday"`
	// Units maps a single suffix letter to a unit name ("day", "week",
	// "month", "year").
	Units map[string]string `json:"units" yaml:"units"`
	// Months holds the twelve month names, January first.
	Months []string `json:"months" yaml:"months"`
	// DateTemplate renders a long date using {day}, {month} and {year}
	// placeholders.
	DateTemplate string `json:"date_template" yaml:"date_template"`
}

// Language is the validated, immutable lookup table built from a
// LanguageDef. Instances are safe to share across goroutines.
type Language struct {
	code string
	name string

	// folded keyword -> day offset (-1 yesterday, 0 today, +1 tomorrow)
	keywords map[string]int
	// canonical spelling per offset, used by the human formatter
	canonical [3]string

	units map[rune]Unit

	months     [12]string
	monthIndex map[string]int

	template string
}

const keywordOffsetRange = 1 // keywords cover yesterday..tomorrow

// NewLanguage validates def and builds the folded lookup tables. Every
// keyword and unit suffix must be unique within the language once folded.
func NewLanguage(def LanguageDef) (*Language, error) {
	code := normalizeCode(def.Code)
	if code == "" {
		return nil, fmt.Errorf("%w: empty code", ErrInvalidLanguage)
	}
	if len(def.Months) != 12 {
		return nil, fmt.Errorf("%w: %q needs 12 month names, got %d", ErrInvalidLanguage, code, len(def.Months))
	}

	lang := &Language{
		code:       code,
		name:       strings.TrimSpace(def.Name),
		keywords:   make(map[string]int),
		units:      make(map[rune]Unit),
		monthIndex: make(map[string]int, 12),
		template:   def.DateTemplate,
	}

	keywordSets := []struct {
		offset   int
		synonyms []string
	}{
		{-1, def.Yesterday},
		{0, def.Today},
		{1, def.Tomorrow},
	}
	for _, set := range keywordSets {
		if len(set.synonyms) == 0 {
			return nil, fmt.Errorf("%w: %q has no keyword for offset %+d", ErrInvalidLanguage, code, set.offset)
		}
		for i, synonym := range set.synonyms {
			folded := foldToken(synonym)
			if folded == "" {
				return nil, fmt.Errorf("%w: %q has a blank keyword", ErrInvalidLanguage, code)
			}
			if _, dup := lang.keywords[folded]; dup {
				return nil, fmt.Errorf("%w: %q keyword %q is ambiguous", ErrInvalidLanguage, code, synonym)
			}
			lang.keywords[folded] = set.offset
			if i == 0 {
				lang.canonical[set.offset+keywordOffsetRange] = synonym
			}
		}
	}

	if len(def.Units) == 0 {
		return nil, fmt.Errorf("%w: %q has no unit suffixes", ErrInvalidLanguage, code)
	}
	for suffix, unitName := range def.Units {
		folded := []rune(foldToken(suffix))
		if len(folded) != 1 {
			return nil, fmt.Errorf("%w: %q unit suffix %q must be a single letter", ErrInvalidLanguage, code, suffix)
		}
		unit, ok := ParseUnit(unitName)
		if !ok {
			return nil, fmt.Errorf("%w: %q has unknown unit %q", ErrInvalidLanguage, code, unitName)
		}
		if _, dup := lang.units[folded[0]]; dup {
			return nil, fmt.Errorf("%w: %q unit suffix %q is ambiguous", ErrInvalidLanguage, code, suffix)
		}
		lang.units[folded[0]] = unit
	}

	for i, month := range def.Months {
		name := strings.TrimSpace(month)
		if name == "" {
			return nil, fmt.Errorf("%w: %q month %d is blank", ErrInvalidLanguage, code, i+1)
		}
		folded := foldToken(name)
		if _, dup := lang.monthIndex[folded]; dup {
			return nil, fmt.Errorf("%w: %q month name %q is ambiguous", ErrInvalidLanguage, code, name)
		}
		lang.months[i] = name
		lang.monthIndex[folded] = i + 1
	}

	return lang, nil
}

// MustLanguage is NewLanguage for static definitions known to be valid.
func MustLanguage(def LanguageDef) *Language {
	lang, err := NewLanguage(def)
	if err != nil {
		panic(err)
	}
	return lang
}

// Code returns the normalized language code, e.g. "es".
func (l *Language) Code() string { return l.code }

// Name returns the display name of the language.
func (l *Language) Name() string { return l.name }

// IsToday reports whether token is a today keyword.
func (l *Language) IsToday(token string) bool { return l.keywordIs(token, 0) }

// IsTomorrow reports whether token is a tomorrow keyword.
func (l *Language) IsTomorrow(token string) bool { return l.keywordIs(token, 1) }

// IsYesterday reports whether token is a yesterday keyword.
func (l *Language) IsYesterday(token string) bool { return l.keywordIs(token, -1) }

func (l *Language) keywordIs(token string, offset int) bool {
	got, ok := l.keywordOffset(foldToken(token))
	return ok && got == offset
}

// keywordOffset expects an already-folded token.
func (l *Language) keywordOffset(folded string) (int, bool) {
	offset, ok := l.keywords[folded]
	return offset, ok
}

// Unit resolves a relative-offset suffix letter. Matching is case and
// accent insensitive.
func (l *Language) Unit(suffix rune) (Unit, bool) {
	folded := []rune(foldToken(string(suffix)))
	if len(folded) != 1 {
		return UnitDay, false
	}
	unit, ok := l.units[folded[0]]
	return unit, ok
}

// MonthName returns the 1-indexed month name, ok=false when index is out of
// range.
func (l *Language) MonthName(index int) (string, bool) {
	if index < 1 || index > 12 {
		return "", false
	}
	return l.months[index-1], true
}

// MonthIndex resolves a month name back to its 1-indexed position,
// ok=false when the name is unknown.
func (l *Language) MonthIndex(name string) (int, bool) {
	index, ok := l.monthIndex[foldToken(name)]
	return index, ok
}

// keywordFor returns the canonical spelling for a -1/0/+1 day offset.
func (l *Language) keywordFor(offset int) (string, bool) {
	if offset < -keywordOffsetRange || offset > keywordOffsetRange {
		return "", false
	}
	return l.canonical[offset+keywordOffsetRange], true
}

// dateTemplate returns the long-date template for the human formatter.
func (l *Language) dateTemplate() string {
	if l.template == "" {
		return "{day} {month} {year}"
	}
	return l.template
}
