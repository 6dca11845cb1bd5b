package humandate

import (
	"fmt"
	"sort"
	"sync"
)

// Registry resolves languages by code. It is seeded with the built-in
// languages and may be extended at startup via Register or a FileLoader.
// Lookups take a read lock, so a shared Registry is safe for concurrent
// readers.
type Registry struct {
	mu        sync.RWMutex
	languages map[string]*Language
}

type registryConfig struct {
	skipDefaults bool
	languages    []*Language
}

// RegistryOption mutates registry construction.
type RegistryOption func(*registryConfig)

// WithoutDefaults builds a registry with no built-in languages.
func WithoutDefaults() RegistryOption {
	return func(rc *registryConfig) {
		rc.skipDefaults = true
	}
}

// WithLanguages registers additional languages during construction.
func WithLanguages(langs ...*Language) RegistryOption {
	return func(rc *registryConfig) {
		rc.languages = append(rc.languages, langs...)
	}
}

// NewRegistry builds a registry seeded with the built-in languages unless
// WithoutDefaults is given.
func NewRegistry(opts ...RegistryOption) *Registry {
	cfg := registryConfig{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	registry := &Registry{languages: make(map[string]*Language)}
	if !cfg.skipDefaults {
		for _, lang := range builtinLanguages() {
			registry.Register(lang)
		}
	}
	for _, lang := range cfg.languages {
		registry.Register(lang)
	}
	return registry
}

// Register adds or replaces a language. Nil languages are ignored.
func (r *Registry) Register(lang *Language) {
	if lang == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.languages[lang.Code()] = lang
}

// Get resolves a language by code. The error wraps ErrUnsupportedLanguage
// so callers can distinguish configuration mistakes from parse failures.
func (r *Registry) Get(code string) (*Language, error) {
	normalized := normalizeCode(code)

	r.mu.RLock()
	lang, ok := r.languages[normalized]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, code)
	}
	return lang, nil
}

// Has reports whether a language code is registered.
func (r *Registry) Has(code string) bool {
	_, err := r.Get(code)
	return err == nil
}

// Codes returns the sorted registered language codes.
func (r *Registry) Codes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	codes := make([]string, 0, len(r.languages))
	for code := range r.languages {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
