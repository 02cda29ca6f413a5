package i18n

import (
	"strings"
	"testing"
	"testing/fstest"
)

func TestLoadEmbedded(t *testing.T) {
	b, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("LoadEmbedded() error = %v", err)
	}
	locales := b.Locales()
	if len(locales) < 2 {
		t.Fatalf("Locales() = %v, want at least en and es", locales)
	}
}

func TestTranslateWithParams(t *testing.T) {
	b, err := LoadEmbedded()
	if err != nil {
		t.Fatal(err)
	}
	tr := b.Translator("en")

	got := tr.T("pick_item", map[string]any{"item_name": "Sword"})
	if got != "You picked up the Sword!" {
		t.Errorf("T(pick_item) = %q", got)
	}
}

func TestTranslateFallsBackToBase(t *testing.T) {
	b, err := LoadEmbedded()
	if err != nil {
		t.Fatal(err)
	}
	es := b.Translator("es")
	en := b.Translator("en")

	if es.Locale() != "es" {
		t.Fatalf("Locale() = %q, want es", es.Locale())
	}
	if got, want := es.T("unexpected_error", map[string]any{"error": "x"}), en.T("unexpected_error", map[string]any{"error": "x"}); got != want {
		t.Errorf("es fallback = %q, want base text %q", got, want)
	}
	if es.T("welcome_message", nil) == en.T("welcome_message", nil) {
		t.Error("es translation should differ from en")
	}
}

func TestMissingKeyPlaceholder(t *testing.T) {
	b, err := LoadEmbedded()
	if err != nil {
		t.Fatal(err)
	}
	got := b.Translator("en").T("no_such_key", nil)
	if got != "Missing translation: no_such_key" {
		t.Errorf("T(no_such_key) = %q", got)
	}
}

func TestLocaleMatching(t *testing.T) {
	b, err := LoadEmbedded()
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		requested string
		want      string
	}{
		{"en", "en"},
		{"en-GB", "en"},
		{"es-MX", "es"},
		{"ja", "en"},
		{"not a locale!", "en"},
	}
	for _, tt := range tests {
		if got := b.Translator(tt.requested).Locale(); got != tt.want {
			t.Errorf("Translator(%q).Locale() = %q, want %q", tt.requested, got, tt.want)
		}
	}
}

func TestNumbersAreLocalized(t *testing.T) {
	fsys := fstest.MapFS{
		"locales/en.yaml": {Data: []byte("locale: en\nmessages:\n  xp: \"{xp} XP\"\n")},
	}
	b, err := LoadFromFS(fsys)
	if err != nil {
		t.Fatalf("LoadFromFS() error = %v", err)
	}
	if got := b.Translator("en").T("xp", map[string]any{"xp": 12500}); got != "12,500 XP" {
		t.Errorf("T(xp) = %q, want %q", got, "12,500 XP")
	}
}

func TestLoadFromFSValidation(t *testing.T) {
	tests := []struct {
		name string
		fsys fstest.MapFS
		want string
	}{
		{"empty", fstest.MapFS{}, "no catalog files"},
		{"no base", fstest.MapFS{"locales/es.yaml": {Data: []byte("locale: es\nmessages: {}\n")}}, "base locale"},
		{"mismatch", fstest.MapFS{"locales/en.yaml": {Data: []byte("locale: es\nmessages: {}\n")}}, "must match"},
		{"no messages", fstest.MapFS{"locales/en.yaml": {Data: []byte("locale: en\n")}}, "messages map"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromFS(tt.fsys)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("LoadFromFS() error = %v, want containing %q", err, tt.want)
			}
		})
	}
}
