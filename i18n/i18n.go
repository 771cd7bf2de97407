// Package i18n looks up human readable labels for AT commands, button modes
// and other identifiers. Unknown keys are returned as they are so that a
// missing translation stays visible instead of failing.
package i18n

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"
)

// Placeholder marks the position of a substitution argument in a message.
const Placeholder = "{?}"

// DefaultLang is the language every other catalog falls back to.
const DefaultLang = "en"

// Translator resolves a key to a localized string.
type Translator interface {
	Translate(key string, args ...string) string
}

// TranslatorFunc adapts a plain function to Translator.
type TranslatorFunc func(key string, args ...string) string

func (f TranslatorFunc) Translate(key string, args ...string) string { return f(key, args...) }

//go:embed locales/*.yaml
var locales embed.FS

var ErrUnknownLanguage = errors.New("unknown language")

// Catalog is a set of messages for one language with an optional fallback.
type Catalog struct {
	lang     string
	messages map[string]string
	fallback *Catalog
}

// New creates a catalog from a message map.
func New(lang string, messages map[string]string, fallback *Catalog) *Catalog {
	if messages == nil {
		messages = map[string]string{}
	}
	return &Catalog{lang: lang, messages: messages, fallback: fallback}
}

func (c *Catalog) Lang() string { return c.lang }

// Translate returns the message for key with Placeholder occurrences
// replaced by args in order. Surplus args are ignored. If no catalog in the
// fallback chain knows key, the key itself is returned followed by args.
func (c *Catalog) Translate(key string, args ...string) string {
	for cur := c; cur != nil; cur = cur.fallback {
		if msg, ok := cur.messages[key]; ok {
			return substitute(msg, args)
		}
	}
	if len(args) == 0 {
		return key
	}
	return strings.TrimSpace(key + " " + strings.Join(args, " "))
}

// Has reports whether key is known to c or its fallbacks.
func (c *Catalog) Has(key string) bool {
	for cur := c; cur != nil; cur = cur.fallback {
		if _, ok := cur.messages[key]; ok {
			return true
		}
	}
	return false
}

func substitute(msg string, args []string) string {
	for _, a := range args {
		i := strings.Index(msg, Placeholder)
		if i < 0 {
			break
		}
		msg = msg[:i] + a + msg[i+len(Placeholder):]
	}
	return msg
}

// Languages lists the embedded catalogs.
func Languages() []string {
	entries, err := locales.ReadDir("locales")
	if err != nil {
		return nil
	}
	var out []string
	for _, e := range entries {
		out = append(out, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(out)
	return out
}

// Embedded returns the built-in catalog for lang. Every language other than
// DefaultLang falls back to it.
func Embedded(lang string) (*Catalog, error) {
	if lang == "" {
		lang = DefaultLang
	}
	data, err := locales.ReadFile("locales/" + lang + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownLanguage, lang)
	}
	messages, err := decode(".yaml", data)
	if err != nil {
		return nil, fmt.Errorf("locale %s: %w", lang, err)
	}
	var fallback *Catalog
	if lang != DefaultLang {
		fallback, err = Embedded(DefaultLang)
		if err != nil {
			return nil, err
		}
	}
	return New(lang, messages, fallback), nil
}

// LoadFile reads a user catalog. The format follows the file extension:
// .yaml/.yml, .toml or .json. The language is taken from the base name.
func LoadFile(path string, fallback *Catalog) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	ext := strings.ToLower(filepath.Ext(path))
	messages, err := decode(ext, data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	lang := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return New(lang, messages, fallback), nil
}

func decode(ext string, data []byte) (map[string]string, error) {
	out := map[string]string{}
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &out); err != nil {
			return nil, err
		}
	case ".json":
		if err := json.Unmarshal(data, &out); err != nil {
			return nil, err
		}
	case ".toml":
		tree, err := toml.LoadBytes(data)
		if err != nil {
			return nil, err
		}
		for k, v := range tree.ToMap() {
			s, ok := v.(string)
			if !ok {
				return nil, fmt.Errorf("key %q: expected string, got %T", k, v)
			}
			out[k] = s
		}
	default:
		return nil, fmt.Errorf("unsupported catalog format %q", ext)
	}
	return out, nil
}
