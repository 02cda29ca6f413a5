// Package i18n turns message keys and parameters into display text.
//
// Catalogs are YAML files under locales/ in the embedded data filesystem.
// Lookups never fail: a key missing from the active locale falls back to the
// base locale, and a key missing there renders as a visible placeholder.
package i18n

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"

	"github.com/samdwyer/embercrypt/data"
)

// BaseLocale is the locale every other catalog falls back to.
const BaseLocale = "en"

type catalogFile struct {
	Locale   string            `yaml:"locale"`
	Messages map[string]string `yaml:"messages"`
}

// Bundle holds every loaded locale catalog.
type Bundle struct {
	locales map[string]map[string]string
	tags    []language.Tag // BaseLocale first
	matcher language.Matcher
}

// LoadEmbedded loads the catalogs shipped with the game.
func LoadEmbedded() (*Bundle, error) {
	return LoadFromFS(data.FS())
}

// LoadFromFS loads every locales/*.yaml catalog from fsys.
func LoadFromFS(fsys fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(fsys, "locales/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog files found")
	}
	sort.Strings(paths)

	b := &Bundle{locales: map[string]map[string]string{}}
	for _, p := range paths {
		raw, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", p, err)
		}
		var file catalogFile
		if err := yaml.Unmarshal(raw, &file); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", p, err)
		}

		locale := strings.TrimSpace(file.Locale)
		if want := strings.TrimSuffix(path.Base(p), path.Ext(p)); locale != want {
			return nil, fmt.Errorf("catalog %s: locale %q must match file name %q", p, locale, want)
		}
		if _, err := language.Parse(locale); err != nil {
			return nil, fmt.Errorf("catalog %s: %w", p, err)
		}
		if file.Messages == nil {
			return nil, fmt.Errorf("catalog %s: messages map is required", p)
		}
		b.locales[locale] = file.Messages
	}

	if _, ok := b.locales[BaseLocale]; !ok {
		return nil, fmt.Errorf("base locale %s is not defined in catalogs", BaseLocale)
	}

	b.tags = append(b.tags, language.MustParse(BaseLocale))
	for _, locale := range b.Locales() {
		if locale != BaseLocale {
			b.tags = append(b.tags, language.MustParse(locale))
		}
	}
	b.matcher = language.NewMatcher(b.tags)
	return b, nil
}

// Locales returns the loaded locale codes, sorted.
func (b *Bundle) Locales() []string {
	out := make([]string, 0, len(b.locales))
	for l := range b.locales {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}

// Translator returns a translator for the closest supported match to
// locale. Unknown or malformed locales get the base locale.
func (b *Bundle) Translator(locale string) *Translator {
	tag := b.tags[0]
	if requested, err := language.Parse(locale); err == nil {
		_, idx, _ := b.matcher.Match(requested)
		tag = b.tags[idx]
	}
	code := tag.String()
	return &Translator{
		locale:   code,
		messages: b.locales[code],
		base:     b.locales[BaseLocale],
		printer:  message.NewPrinter(tag),
	}
}

// Translator renders messages for one locale.
type Translator struct {
	locale   string
	messages map[string]string
	base     map[string]string
	printer  *message.Printer
}

// Locale returns the locale code in use.
func (t *Translator) Locale() string {
	return t.locale
}

// T renders key with params substituted for {name} placeholders.
// Numbers are formatted for the locale.
func (t *Translator) T(key string, params map[string]any) string {
	tmpl, ok := t.messages[key]
	if !ok {
		tmpl, ok = t.base[key]
	}
	if !ok {
		return "Missing translation: " + key
	}
	if len(params) == 0 {
		return tmpl
	}

	pairs := make([]string, 0, len(params)*2)
	for name, value := range params {
		pairs = append(pairs, "{"+name+"}", t.format(value))
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

func (t *Translator) format(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	case int, int32, int64, uint, uint32, uint64:
		return t.printer.Sprintf("%d", v)
	default:
		return t.printer.Sprint(v)
	}
}
