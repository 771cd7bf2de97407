package i18n

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslate(t *testing.T) {
	c := New("xx", map[string]string{
		"AT KW": "Write word: {?}",
		"TWO":   "{?} and {?}",
		"PLAIN": "plain",
	}, nil)

	tests := []struct {
		name string
		key  string
		args []string
		want string
	}{
		{name: "substitution", key: "AT KW", args: []string{"hi"}, want: "Write word: hi"},
		{name: "two placeholders", key: "TWO", args: []string{"a", "b"}, want: "a and b"},
		{name: "missing argument", key: "TWO", args: []string{"a"}, want: "a and {?}"},
		{name: "surplus argument", key: "PLAIN", args: []string{"x"}, want: "plain"},
		{name: "unknown key", key: "AT ZZ", want: "AT ZZ"},
		{name: "unknown key with args", key: "AT ZZ", args: []string{"5"}, want: "AT ZZ 5"},
		{name: "unknown key empty arg", key: "AT ZZ", args: []string{""}, want: "AT ZZ"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Translate(tt.key, tt.args...))
		})
	}
}

func TestEmbedded(t *testing.T) {
	assert.Equal(t, []string{"de", "en"}, Languages())

	en, err := Embedded("")
	require.NoError(t, err)
	assert.Equal(t, "en", en.Lang())
	assert.Equal(t, "Press keys: KEY_A", en.Translate("AT KP", "KEY_A"))

	de, err := Embedded("de")
	require.NoError(t, err)
	assert.Equal(t, "Wort schreiben: hallo", de.Translate("AT KW", "hallo"))
	// falls back to English for keys the German catalog lacks
	assert.Equal(t, "Release all keys and buttons", de.Translate("AT RA"))
	assert.True(t, de.Has("AT BM 20"))

	_, err = Embedded("tlh")
	assert.ErrorIs(t, err, ErrUnknownLanguage)
}

func TestLoadFile(t *testing.T) {
	en, err := Embedded("en")
	require.NoError(t, err)
	dir := t.TempDir()

	files := map[string]string{
		"fr.yaml": "\"AT KW\": \"Écrire : {?}\"\n",
		"fr.toml": "\"AT KW\" = \"Écrire : {?}\"\n",
		"fr.json": `{"AT KW": "Écrire : {?}"}`,
	}
	for name, content := range files {
		t.Run(name, func(t *testing.T) {
			p := filepath.Join(dir, name)
			require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
			c, err := LoadFile(p, en)
			require.NoError(t, err)
			assert.Equal(t, "fr", c.Lang())
			assert.Equal(t, "Écrire : salut", c.Translate("AT KW", "salut"))
			assert.Equal(t, "Mouse wheel up", c.Translate("AT WU"))
		})
	}

	p := filepath.Join(dir, "fr.ini")
	require.NoError(t, os.WriteFile(p, []byte("x=y"), 0o644))
	_, err = LoadFile(p, en)
	assert.Error(t, err)
}

func TestTranslatorFunc(t *testing.T) {
	var tr Translator = TranslatorFunc(func(key string, args ...string) string { return "<" + key + ">" })
	assert.Equal(t, "<x>", tr.Translate("x"))
}
