package humandate

import "errors"

// ErrUnsupportedLanguage indicates a registry lookup for an unknown code.
var ErrUnsupportedLanguage = errors.New("humandate: unsupported language")

// ErrInvalidLanguage indicates a language definition that failed validation.
var ErrInvalidLanguage = errors.New("humandate: invalid language definition")

// ErrInvalidPattern indicates a format pattern with unsupported tokens.
var ErrInvalidPattern = errors.New("humandate: invalid format pattern")

// ErrNilLanguage indicates a nil language passed where one is required.
var ErrNilLanguage = errors.New("humandate: nil language")
