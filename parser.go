package humandate

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DefaultPivotYear splits two-digit years: values below it resolve to the
// 2000s, the rest to the 1900s.
const DefaultPivotYear = 50

// dateSeparators are the delimiters accepted by the delimited numeric
// grammar.
const dateSeparators = ".-·/"

// Parser resolves human-typed text into calendar dates. Each Parse call is
// a pure function of the input, the active language, the reference date and
// the pivot rule; the parser keeps no state between calls. Instances are
// cheap and not meant for concurrent reconfiguration.
type Parser struct {
	lang  *Language
	clock func() time.Time
	pivot int
}

// ParserOption mutates parser construction.
type ParserOption func(*Parser) error

// WithClock overrides the wall-clock reference, mainly for tests.
func WithClock(clock func() time.Time) ParserOption {
	return func(p *Parser) error {
		if clock == nil {
			return fmt.Errorf("humandate: nil clock")
		}
		p.clock = clock
		return nil
	}
}

// WithReference pins the reference "today" to a fixed date.
func WithReference(today time.Time) ParserOption {
	reference := dateOnly(today)
	return WithClock(func() time.Time { return reference })
}

// WithPivotYear overrides the two-digit year pivot. The threshold must be
// in [0,100); e.g. 50 expands 49 to 2049 and 50 to 1950.
func WithPivotYear(pivot int) ParserOption {
	return func(p *Parser) error {
		if pivot < 0 || pivot >= 100 {
			return fmt.Errorf("humandate: pivot year %d out of range", pivot)
		}
		p.pivot = pivot
		return nil
	}
}

// NewParser builds a parser for the given language. The language must not
// be nil.
func NewParser(lang *Language, opts ...ParserOption) (*Parser, error) {
	if lang == nil {
		return nil, ErrNilLanguage
	}

	parser := &Parser{
		lang:  lang,
		clock: time.Now,
		pivot: DefaultPivotYear,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(parser); err != nil {
			return nil, err
		}
	}
	return parser, nil
}

// Language returns the active language.
func (p *Parser) Language() *Language { return p.lang }

// SetLanguage swaps the active language. Nil is rejected so the parser is
// never left unable to parse.
func (p *Parser) SetLanguage(lang *Language) error {
	if lang == nil {
		return ErrNilLanguage
	}
	p.lang = lang
	return nil
}

// Parse resolves text to a calendar date (midnight UTC). ok=false means the
// input is not a recognizable date; malformed input never produces an
// error or panic.
//
// Grammars are attempted in a fixed order and the first structural match
// wins, with no backtracking:
//
//  1. language keywords (today/tomorrow/yesterday synonyms)
//  2. signed offset: +N/-N with an optional unit suffix letter
//  3. the bare string "0", meaning today
//  4. delimited day[/month[/year]] using any of ". - · /"
//  5. compact digit strings decoded by length (D, DD, DMM, DDMM,
//     DDMMYY, DDMMYYYY)
func (p *Parser) Parse(text string) (time.Time, bool) {
	token := strings.TrimSpace(text)
	if token == "" {
		return time.Time{}, false
	}

	today := dateOnly(p.clock())

	if offset, ok := p.lang.keywordOffset(foldToken(token)); ok {
		return today.AddDate(0, 0, offset), true
	}

	// A sign-prefixed token belongs to the offset grammar exclusively; it
	// is never reinterpreted as a delimited date.
	if token[0] == '+' || token[0] == '-' {
		return p.parseOffset(token, today)
	}

	if token == "0" {
		return today, true
	}

	if strings.ContainsAny(token, dateSeparators) {
		return p.parseDelimited(token, today)
	}

	return p.parseCompact(token, today)
}

// parseOffset handles "+N", "-N" and "+Nu" where u is a language-specific
// unit suffix. A missing suffix means days.
func (p *Parser) parseOffset(token string, today time.Time) (time.Time, bool) {
	sign := 1
	if token[0] == '-' {
		sign = -1
	}

	body := token[1:]
	unit := UnitDay
	if body != "" && !isDigits(body) {
		runes := []rune(body)
		suffix := runes[len(runes)-1]
		resolved, ok := p.lang.Unit(suffix)
		if !ok {
			return time.Time{}, false
		}
		unit = resolved
		body = string(runes[:len(runes)-1])
	}
	if body == "" || !isDigits(body) {
		return time.Time{}, false
	}

	amount, err := strconv.Atoi(body)
	if err != nil {
		return time.Time{}, false
	}
	amount *= sign

	switch unit {
	case UnitDay:
		return today.AddDate(0, 0, amount), true
	case UnitWeek:
		return today.AddDate(0, 0, amount*7), true
	case UnitMonth:
		return addMonthsClamped(today, amount), true
	case UnitYear:
		return addMonthsClamped(today, amount*12), true
	default:
		return time.Time{}, false
	}
}

// parseDelimited handles day[/month[/year]] split on any accepted
// separator. Missing month/year default to the reference date's; a
// two-digit year goes through the pivot rule.
func (p *Parser) parseDelimited(token string, today time.Time) (time.Time, bool) {
	parts := strings.FieldsFunc(token, func(r rune) bool {
		return strings.ContainsRune(dateSeparators, r)
	})
	// FieldsFunc drops empty components, so recount separators to reject
	// inputs like "1..4" or a trailing delimiter.
	if len(parts) < 2 || len(parts) > 3 {
		return time.Time{}, false
	}
	if separatorCount(token) != len(parts)-1 {
		return time.Time{}, false
	}
	for _, part := range parts {
		if !isDigits(part) {
			return time.Time{}, false
		}
	}

	day, _ := strconv.Atoi(parts[0])
	month, _ := strconv.Atoi(parts[1])
	year := today.Year()

	if len(parts) == 3 {
		raw, _ := strconv.Atoi(parts[2])
		if len(parts[2]) <= 2 {
			year = p.expandYear(raw)
		} else {
			year = raw
		}
	}

	return makeDate(year, month, day)
}

// parseCompact decodes undelimited digit strings by length. For three and
// four digits the rightmost two are the month and the remainder the day,
// per the documented showcase convention.
func (p *Parser) parseCompact(token string, today time.Time) (time.Time, bool) {
	if !isDigits(token) {
		return time.Time{}, false
	}

	switch len(token) {
	case 1, 2:
		day, _ := strconv.Atoi(token)
		return makeDate(today.Year(), int(today.Month()), day)
	case 3, 4:
		split := len(token) - 2
		day, _ := strconv.Atoi(token[:split])
		month, _ := strconv.Atoi(token[split:])
		return makeDate(today.Year(), month, day)
	case 6:
		day, _ := strconv.Atoi(token[:2])
		month, _ := strconv.Atoi(token[2:4])
		raw, _ := strconv.Atoi(token[4:])
		return makeDate(p.expandYear(raw), month, day)
	case 8:
		day, _ := strconv.Atoi(token[:2])
		month, _ := strconv.Atoi(token[2:4])
		year, _ := strconv.Atoi(token[4:])
		return makeDate(year, month, day)
	default:
		return time.Time{}, false
	}
}

// expandYear applies the two-digit year pivot.
func (p *Parser) expandYear(yy int) int {
	if yy < p.pivot {
		return 2000 + yy
	}
	return 1900 + yy
}

func separatorCount(token string) int {
	count := 0
	for _, r := range token {
		if strings.ContainsRune(dateSeparators, r) {
			count++
		}
	}
	return count
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// makeDate validates month and day-of-month (leap years included) and
// builds a midnight-UTC date.
func makeDate(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 {
		return time.Time{}, false
	}
	if day < 1 || day > daysInMonth(year, time.Month(month)) {
		return time.Time{}, false
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
}

// daysInMonth returns the number of days in the given month; day zero of
// the following month is its last day.
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// addMonthsClamped shifts the month field and clamps the day to the end of
// the target month, so Jan 31 +1 month lands on Feb 28/29 instead of
// normalizing into March.
func addMonthsClamped(t time.Time, months int) time.Time {
	year, month, day := t.Date()

	total := year*12 + int(month) - 1 + months
	targetYear := total / 12
	targetMonth := total % 12
	if targetMonth < 0 {
		targetMonth += 12
		targetYear--
	}

	last := daysInMonth(targetYear, time.Month(targetMonth+1))
	if day > last {
		day = last
	}
	return time.Date(targetYear, time.Month(targetMonth+1), day, 0, 0, 0, 0, time.UTC)
}

// dateOnly truncates a time to its calendar date at midnight UTC.
func dateOnly(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
