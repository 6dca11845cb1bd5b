package humandate

import (
	"errors"
	"testing"
	"time"
)

func newTestFormatter(t *testing.T, lang *Language, opts ...FormatterOption) *Formatter {
	t.Helper()
	opts = append([]FormatterOption{WithFormatterReference(testToday)}, opts...)
	formatter, err := NewFormatter(lang, opts...)
	if err != nil {
		t.Fatalf("NewFormatter: %v", err)
	}
	return formatter
}

func TestFormatter_FixedPattern(t *testing.T) {
	sample := date(2024, time.June, 19)

	tests := []struct {
		name    string
		pattern string
		input   time.Time
		want    string
	}{
		{"default", DefaultPattern, sample, "19/06/2024"},
		{"short_tokens", "d.M.yy", sample, "19.6.24"},
		{"short_tokens_pad", "d.M.yy", date(2024, time.June, 2), "2.6.24"},
		{"dashed_two_digit_year", "dd-MM-yy", sample, "19-06-24"},
		{"iso_like", "yyyy/MM/dd", sample, "2024/06/19"},
		{"middot", "dd·MM·yyyy", sample, "19·06·2024"},
		{"no_separator", "ddMMyyyy", sample, "19062024"},
		{"single_digit_fields", "d/M/yyyy", date(2012, time.April, 1), "1/4/2012"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			formatter := newTestFormatter(t, Spanish(), WithPattern(tt.pattern))
			if got := formatter.Format(tt.input); got != tt.want {
				t.Fatalf("Format(%v) with %q = %q, want %q", tt.input, tt.pattern, got, tt.want)
			}
		})
	}
}

func TestFormatter_ZeroTime(t *testing.T) {
	formatter := newTestFormatter(t, Spanish())
	if got := formatter.Format(time.Time{}); got != "" {
		t.Fatalf("Format(zero) = %q, want \"\"", got)
	}
	if got := formatter.FormatHuman(time.Time{}); got != "" {
		t.Fatalf("FormatHuman(zero) = %q, want \"\"", got)
	}
}

func TestFormatter_InvalidPattern(t *testing.T) {
	patterns := []string{"", "   ", "dd/XX/yyyy", "yyy", "yyyyy", "ddd", "MMM", "dd/MM/yyyy hh"}

	for _, pattern := range patterns {
		t.Run(pattern, func(t *testing.T) {
			if _, err := NewFormatter(Spanish(), WithPattern(pattern)); !errors.Is(err, ErrInvalidPattern) {
				t.Fatalf("pattern %q err = %v, want ErrInvalidPattern", pattern, err)
			}
		})
	}

	formatter := newTestFormatter(t, Spanish())
	if err := formatter.SetPattern("zz"); !errors.Is(err, ErrInvalidPattern) {
		t.Fatalf("SetPattern(zz) err = %v, want ErrInvalidPattern", err)
	}
	// a failed SetPattern keeps the previous pattern usable
	if got := formatter.Format(date(2024, time.June, 19)); got != "19/06/2024" {
		t.Fatalf("Format after failed SetPattern = %q, want 19/06/2024", got)
	}
}

func TestFormatter_NilLanguage(t *testing.T) {
	if _, err := NewFormatter(nil); !errors.Is(err, ErrNilLanguage) {
		t.Fatalf("NewFormatter(nil) err = %v, want ErrNilLanguage", err)
	}

	formatter := newTestFormatter(t, Spanish())
	if err := formatter.SetLanguage(nil); !errors.Is(err, ErrNilLanguage) {
		t.Fatalf("SetLanguage(nil) err = %v, want ErrNilLanguage", err)
	}
}

func TestFormatter_Human(t *testing.T) {
	tests := []struct {
		name  string
		lang  *Language
		input time.Time
		want  string
	}{
		{"es_today", Spanish(), testToday, "hoy"},
		{"es_tomorrow", Spanish(), testToday.AddDate(0, 0, 1), "mañana"},
		{"es_yesterday", Spanish(), testToday.AddDate(0, 0, -1), "ayer"},
		{"es_long", Spanish(), date(2024, time.June, 25), "25 de junio de 2024"},
		{"es_long_past", Spanish(), date(2012, time.April, 1), "1 de abril de 2012"},
		{"en_today", English(), testToday, "today"},
		{"en_tomorrow", English(), testToday.AddDate(0, 0, 1), "tomorrow"},
		{"en_yesterday", English(), testToday.AddDate(0, 0, -1), "yesterday"},
		{"en_long", English(), date(2024, time.June, 25), "june 25, 2024"},
		{"que_today", Quechua(), testToday, "kunan"},
		{"que_tomorrow", Quechua(), testToday.AddDate(0, 0, 1), "paqarin"},
		{"que_yesterday", Quechua(), testToday.AddDate(0, 0, -1), "qayna"},
		{"que_long", Quechua(), date(2015, time.May, 4), "4 Aymuray killa, 2015"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			formatter := newTestFormatter(t, tt.lang)
			if got := formatter.FormatHuman(tt.input); got != tt.want {
				t.Fatalf("FormatHuman(%v) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatter_HumanWindowEdges(t *testing.T) {
	formatter := newTestFormatter(t, Spanish())

	// two days out falls back to the long-date template
	if got := formatter.FormatHuman(testToday.AddDate(0, 0, 2)); got != "21 de junio de 2024" {
		t.Fatalf("FormatHuman(today+2) = %q", got)
	}
	if got := formatter.FormatHuman(testToday.AddDate(0, 0, -2)); got != "17 de junio de 2024" {
		t.Fatalf("FormatHuman(today-2) = %q", got)
	}
}
