package humandate

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DefaultPattern is the fixed-format pattern used when none is configured.
const DefaultPattern = "dd/MM/yyyy"

// Formatter renders dates either through a fixed pattern (Format) or as a
// localized human phrase (FormatHuman). A zero time renders as the empty
// string in both modes; formatting a valid date never fails.
type Formatter struct {
	lang     *Language
	pattern  string
	segments []patternSegment
	clock    func() time.Time
}

// FormatterOption mutates formatter construction.
type FormatterOption func(*Formatter) error

// WithPattern sets the fixed-format pattern, e.g. "d.M.yy".
func WithPattern(pattern string) FormatterOption {
	return func(f *Formatter) error {
		return f.SetPattern(pattern)
	}
}

// WithFormatterClock overrides the reference clock used by FormatHuman to
// decide whether a date falls in the yesterday/today/tomorrow window.
func WithFormatterClock(clock func() time.Time) FormatterOption {
	return func(f *Formatter) error {
		if clock == nil {
			return fmt.Errorf("humandate: nil clock")
		}
		f.clock = clock
		return nil
	}
}

// WithFormatterReference pins the formatter's reference date, mainly for
// tests.
func WithFormatterReference(today time.Time) FormatterOption {
	reference := dateOnly(today)
	return WithFormatterClock(func() time.Time { return reference })
}

// NewFormatter builds a formatter for the given language with the default
// dd/MM/yyyy pattern. The language must not be nil.
func NewFormatter(lang *Language, opts ...FormatterOption) (*Formatter, error) {
	if lang == nil {
		return nil, ErrNilLanguage
	}

	formatter := &Formatter{
		lang:  lang,
		clock: time.Now,
	}
	if err := formatter.SetPattern(DefaultPattern); err != nil {
		return nil, err
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(formatter); err != nil {
			return nil, err
		}
	}
	return formatter, nil
}

// Language returns the active language.
func (f *Formatter) Language() *Language { return f.lang }

// SetLanguage swaps the language used by FormatHuman.
func (f *Formatter) SetLanguage(lang *Language) error {
	if lang == nil {
		return ErrNilLanguage
	}
	f.lang = lang
	return nil
}

// Pattern returns the active fixed-format pattern.
func (f *Formatter) Pattern() string { return f.pattern }

// SetPattern validates and compiles a new fixed-format pattern. Supported
// tokens: d, dd, M, MM, yy, yyyy; anything else alphabetic is rejected.
func (f *Formatter) SetPattern(pattern string) error {
	segments, err := compilePattern(pattern)
	if err != nil {
		return err
	}
	f.pattern = pattern
	f.segments = segments
	return nil
}

// Format renders a date through the fixed pattern. The zero time renders
// as "".
func (f *Formatter) Format(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	var b strings.Builder
	for _, segment := range f.segments {
		if segment.literal != "" {
			b.WriteString(segment.literal)
			continue
		}

		var value int
		switch segment.field {
		case fieldDay:
			value = t.Day()
		case fieldMonth:
			value = int(t.Month())
		case fieldYear:
			value = t.Year()
			if segment.width == 2 {
				value %= 100
			}
		}
		b.WriteString(padNumber(value, segment.width))
	}
	return b.String()
}

// FormatHuman renders a date as a localized phrase. Dates within one day
// of the reference date use the language's canonical keyword; anything
// else uses the language's long-date template with the localized month
// name. The zero time renders as "".
func (f *Formatter) FormatHuman(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	date := dateOnly(t)
	today := dateOnly(f.clock())
	offset := int(date.Sub(today) / (24 * time.Hour))
	if keyword, ok := f.lang.keywordFor(offset); ok {
		return keyword
	}

	month, _ := f.lang.MonthName(int(date.Month()))
	phrase := f.lang.dateTemplate()
	phrase = strings.ReplaceAll(phrase, "{day}", strconv.Itoa(date.Day()))
	phrase = strings.ReplaceAll(phrase, "{month}", month)
	phrase = strings.ReplaceAll(phrase, "{year}", strconv.Itoa(date.Year()))
	return phrase
}

type patternField int

const (
	fieldDay patternField = iota
	fieldMonth
	fieldYear
)

// patternSegment is either a literal run or one date field with a render
// width.
type patternSegment struct {
	literal string
	field   patternField
	width   int
}

// compilePattern turns a dd/MM/yyyy-style pattern into render segments.
func compilePattern(pattern string) ([]patternSegment, error) {
	if strings.TrimSpace(pattern) == "" {
		return nil, fmt.Errorf("%w: empty pattern", ErrInvalidPattern)
	}

	var segments []patternSegment
	runes := []rune(pattern)

	for i := 0; i < len(runes); {
		r := runes[i]
		if !isPatternLetter(r) {
			start := i
			for i < len(runes) && !isPatternLetter(runes[i]) {
				i++
			}
			segments = append(segments, patternSegment{literal: string(runes[start:i])})
			continue
		}

		start := i
		for i < len(runes) && runes[i] == r {
			i++
		}
		width := i - start

		switch {
		case r == 'd' && width <= 2:
			segments = append(segments, patternSegment{field: fieldDay, width: width})
		case r == 'M' && width <= 2:
			segments = append(segments, patternSegment{field: fieldMonth, width: width})
		case r == 'y' && (width == 2 || width == 4):
			segments = append(segments, patternSegment{field: fieldYear, width: width})
		default:
			return nil, fmt.Errorf("%w: token %q in %q", ErrInvalidPattern, strings.Repeat(string(r), width), pattern)
		}
	}
	return segments, nil
}

func isPatternLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func padNumber(value, width int) string {
	s := strconv.Itoa(value)
	for len(s) < width {
		s = "0" + s
	}
	return s
}
