package humandate

import (
	"errors"
	"reflect"
	"testing"
)

func TestRegistry_Defaults(t *testing.T) {
	registry := NewRegistry()

	want := []string{"en", "es", "que"}
	if got := registry.Codes(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Codes() = %v, want %v", got, want)
	}

	for _, code := range want {
		lang, err := registry.Get(code)
		if err != nil {
			t.Fatalf("Get(%q): %v", code, err)
		}
		if lang.Code() != code {
			t.Fatalf("Get(%q).Code() = %q", code, lang.Code())
		}
	}
}

func TestRegistry_GetNormalizesCode(t *testing.T) {
	registry := NewRegistry()

	for _, code := range []string{"ES", " es ", "Es"} {
		if _, err := registry.Get(code); err != nil {
			t.Fatalf("Get(%q): %v", code, err)
		}
	}
}

func TestRegistry_UnknownCode(t *testing.T) {
	registry := NewRegistry()

	_, err := registry.Get("fr")
	if !errors.Is(err, ErrUnsupportedLanguage) {
		t.Fatalf("Get(fr) err = %v, want ErrUnsupportedLanguage", err)
	}
	if registry.Has("fr") {
		t.Fatal("Has(fr) should be false")
	}
}

func TestRegistry_RegisterReplaces(t *testing.T) {
	registry := NewRegistry()

	def := languageData["es"]
	def.Name = "Castellano"
	registry.Register(MustLanguage(def))

	lang, err := registry.Get("es")
	if err != nil {
		t.Fatalf("Get(es): %v", err)
	}
	if lang.Name() != "Castellano" {
		t.Fatalf("Name() = %q, want Castellano", lang.Name())
	}
	if len(registry.Codes()) != 3 {
		t.Fatalf("Codes() = %v, want 3 entries", registry.Codes())
	}
}

func TestRegistry_WithoutDefaults(t *testing.T) {
	registry := NewRegistry(WithoutDefaults())
	if codes := registry.Codes(); len(codes) != 0 {
		t.Fatalf("Codes() = %v, want empty", codes)
	}

	registry = NewRegistry(WithoutDefaults(), WithLanguages(English()))
	if want := []string{"en"}; !reflect.DeepEqual(registry.Codes(), want) {
		t.Fatalf("Codes() = %v, want %v", registry.Codes(), want)
	}
}
