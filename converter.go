package humandate

import (
	"errors"
	"time"
)

// Converter bundles a parser and a formatter behind one configuration
// surface, the contract consumed by UI adapter layers: parse text to a
// date, format a date back to text, switch language or pattern at runtime.
// A Converter is not safe for concurrent reconfiguration; use one per
// goroutine or synchronize externally.
type Converter struct {
	registry  *Registry
	parser    *Parser
	formatter *Formatter
}

// ConverterOption mutates converter construction.
type ConverterOption func(*converterConfig)

type converterConfig struct {
	language   string
	pattern    string
	parserOpts []ParserOption
	fmtOpts    []FormatterOption
}

// WithLanguage sets the initial language code.
func WithLanguage(code string) ConverterOption {
	return func(cc *converterConfig) {
		cc.language = code
	}
}

// WithConverterPattern sets the initial fixed-format pattern.
func WithConverterPattern(pattern string) ConverterOption {
	return func(cc *converterConfig) {
		cc.pattern = pattern
	}
}

// WithConverterReference pins the reference date of both the parser and
// the human formatter, mainly for tests.
func WithConverterReference(today time.Time) ConverterOption {
	return func(cc *converterConfig) {
		cc.parserOpts = append(cc.parserOpts, WithReference(today))
		cc.fmtOpts = append(cc.fmtOpts, WithFormatterReference(today))
	}
}

// WithParserOptions forwards options to the underlying parser.
func WithParserOptions(opts ...ParserOption) ConverterOption {
	return func(cc *converterConfig) {
		cc.parserOpts = append(cc.parserOpts, opts...)
	}
}

// NewConverter builds a converter backed by the given registry. Defaults
// follow the original library: Spanish language, dd/MM/yyyy pattern.
func NewConverter(registry *Registry, opts ...ConverterOption) (*Converter, error) {
	if registry == nil {
		return nil, errors.New("humandate: nil registry")
	}

	cfg := converterConfig{language: "es", pattern: DefaultPattern}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	lang, err := registry.Get(cfg.language)
	if err != nil {
		return nil, err
	}

	parser, err := NewParser(lang, cfg.parserOpts...)
	if err != nil {
		return nil, err
	}

	fmtOpts := append([]FormatterOption{WithPattern(cfg.pattern)}, cfg.fmtOpts...)
	formatter, err := NewFormatter(lang, fmtOpts...)
	if err != nil {
		return nil, err
	}

	return &Converter{registry: registry, parser: parser, formatter: formatter}, nil
}

// ES returns a converter configured for Spanish with the default pattern.
func ES() *Converter { return mustDefault("es") }

// EN returns a converter configured for English with the default pattern.
func EN() *Converter { return mustDefault("en") }

// QUE returns a converter configured for Quechua with the default pattern.
func QUE() *Converter { return mustDefault("que") }

func mustDefault(code string) *Converter {
	converter, err := NewConverter(NewRegistry(), WithLanguage(code))
	if err != nil {
		panic(err)
	}
	return converter
}

// Parse resolves text to a date; ok=false means no recognizable date.
func (c *Converter) Parse(text string) (time.Time, bool) {
	return c.parser.Parse(text)
}

// Format renders a date through the fixed pattern; zero time yields "".
func (c *Converter) Format(t time.Time) string {
	return c.formatter.Format(t)
}

// FormatHuman renders a date as a localized phrase; zero time yields "".
func (c *Converter) FormatHuman(t time.Time) string {
	return c.formatter.FormatHuman(t)
}

// Language returns the active language.
func (c *Converter) Language() *Language {
	return c.parser.Language()
}

// SetLanguage switches parser and formatter to the language registered
// under code. Unknown codes fail fast with ErrUnsupportedLanguage.
func (c *Converter) SetLanguage(code string) error {
	lang, err := c.registry.Get(code)
	if err != nil {
		return err
	}
	if err := c.parser.SetLanguage(lang); err != nil {
		return err
	}
	return c.formatter.SetLanguage(lang)
}

// Pattern returns the active fixed-format pattern.
func (c *Converter) Pattern() string {
	return c.formatter.Pattern()
}

// SetPattern switches the fixed-format pattern, rejecting invalid patterns
// with ErrInvalidPattern.
func (c *Converter) SetPattern(pattern string) error {
	return c.formatter.SetPattern(pattern)
}

// WithLanguageCode is the fluent variant of SetLanguage; it panics on
// unknown codes, mirroring fail-fast configuration.
func (c *Converter) WithLanguageCode(code string) *Converter {
	if err := c.SetLanguage(code); err != nil {
		panic(err)
	}
	return c
}

// WithPatternString is the fluent variant of SetPattern; it panics on
// invalid patterns.
func (c *Converter) WithPatternString(pattern string) *Converter {
	if err := c.SetPattern(pattern); err != nil {
		panic(err)
	}
	return c
}
