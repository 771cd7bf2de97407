package keyrec

import (
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asterics/flipkeys/atcmd"
	"github.com/asterics/flipkeys/i18n"
)

var (
	ctrl      = KeyEvent{Key: "Control", Code: 17}
	alt       = KeyEvent{Key: "Alt", Code: 18}
	shift     = KeyEvent{Key: "Shift", Code: 16}
	backspace = KeyEvent{Key: "Backspace", Code: 8}
	arrowLeft = KeyEvent{Key: "ArrowLeft", Code: 37}
	enter     = KeyEvent{Key: "Enter", Code: 13}
)

// char builds the event a US layout reports for a letter, digit or space.
func char(c rune) KeyEvent {
	return KeyEvent{Key: string(c), Code: int(unicode.ToUpper(c))}
}

func chars(s string) Queue {
	var q Queue
	for _, c := range s {
		q = append(q, char(c))
	}
	return q
}

func altGr(key string, code int) KeyEvent {
	return KeyEvent{Key: key, Code: code, Ctrl: true, Alt: true}
}

func catalog(t *testing.T) *i18n.Catalog {
	t.Helper()
	c, err := i18n.Embedded("en")
	require.NoError(t, err)
	return c
}

func TestNormalizeKeycode(t *testing.T) {
	tests := []struct {
		name string
		in   KeyEvent
		want Symbol
	}{
		{name: "umlaut without code", in: KeyEvent{Key: "ö"}, want: SymOE},
		{name: "umlaut with foreign code", in: KeyEvent{Key: "ö", Code: 59}, want: SymOE},
		{name: "upper umlaut", in: KeyEvent{Key: "Ö", Code: 192}, want: SymOE},
		{name: "ue", in: KeyEvent{Key: "Ü"}, want: SymUE},
		{name: "ae", in: KeyEvent{Key: "ä"}, want: SymAE},
		{name: "sharp s group", in: KeyEvent{Key: "?", Code: 63}, want: SymSharpS},
		{name: "backslash", in: KeyEvent{Key: "\\", Code: 81}, want: SymSharpS},
		{name: "plus group", in: KeyEvent{Key: "~"}, want: SymPlus},
		{name: "hash group", in: KeyEvent{Key: "'"}, want: SymHash},
		{name: "dash group", in: KeyEvent{Key: "_"}, want: SymDash},
		{name: "angle group", in: KeyEvent{Key: "|"}, want: SymAngleBracket},
		{name: "fallback to code", in: KeyEvent{Key: "a", Code: 65}, want: SymA},
		{name: "named key", in: arrowLeft, want: SymLeft},
		{name: "unknown", in: KeyEvent{Key: "Unidentified"}, want: SymNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeKeycode(tt.in))
		})
	}
}

func TestKeySetsDisjoint(t *testing.T) {
	for s := range specialKeys {
		assert.False(t, IsPrintableKey(s), "%v is special and printable", s)
	}
	for s := range printableKeys {
		assert.False(t, IsSpecialKey(s), "%v is printable and special", s)
	}
}

func TestEverySupportedKeyHasAName(t *testing.T) {
	for _, ks := range []set{specialKeys, printableKeys} {
		for s := range ks {
			n, ok := KeyName(s)
			require.True(t, ok, "no name for %d", int(s))
			assert.True(t, atcmd.IsKeyName(n), "%s is not a device key", n)
		}
	}
	assert.Equal(t, "Symbol(300)", Symbol(300).String())
	assert.Equal(t, "KEY_F12", SymF12.String())
	assert.Equal(t, "KEY_7", Symbol('7').String())
}

func TestIsThirdLevelComposition(t *testing.T) {
	q := Queue{ctrl, alt, altGr("@", 81)}
	assert.True(t, IsThirdLevelComposition(q, 0))
	assert.False(t, IsThirdLevelComposition(q, 1))
	assert.False(t, IsThirdLevelComposition(q[:2], 0))
	assert.False(t, IsThirdLevelComposition(q, -1))
	assert.False(t, IsThirdLevelComposition(Queue{ctrl, alt, KeyEvent{Key: "@", Code: 81}}, 0))
	assert.False(t, IsThirdLevelComposition(Queue{ctrl, alt, KeyEvent{Key: "@", Code: 81, Ctrl: true}}, 0))
	assert.False(t, IsThirdLevelComposition(Queue{alt, ctrl, altGr("@", 81)}, 0))
	assert.False(t, IsThirdLevelComposition(Queue{ctrl, alt, altGr("Enter", 13)}, 0))
}

func TestExtractText(t *testing.T) {
	tests := []struct {
		name   string
		in     Queue
		want   string
		wantOK bool
	}{
		{name: "empty", in: nil, want: "", wantOK: true},
		{name: "word", in: chars("hi"), want: "hi", wantOK: true},
		{name: "shift is skipped", in: Queue{shift, KeyEvent{Key: "H", Code: 72}, char('i')}, want: "Hi", wantOK: true},
		{name: "only shift", in: Queue{shift}, want: "", wantOK: true},
		{name: "arrow rejects", in: Queue{char('h'), arrowLeft}, wantOK: false},
		{name: "enter rejects", in: Queue{char('h'), enter, char('i')}, wantOK: false},
		{name: "altgr", in: Queue{ctrl, alt, altGr("@", 81)}, want: "@", wantOK: true},
		{name: "altgr inside word", in: Queue{char('a'), ctrl, alt, altGr("€", 69), char('b')}, want: "a€b", wantOK: true},
		{name: "plain ctrl alt", in: Queue{ctrl, alt, char('q')}, wantOK: false},
		{name: "dangling ctrl alt", in: Queue{ctrl, alt}, wantOK: false},
		{name: "locale character", in: Queue{KeyEvent{Key: "ö", Code: 186}}, want: "ö", wantOK: true},
		{name: "unknown symbol skipped", in: Queue{char('h'), KeyEvent{Key: "F13", Code: 124}}, want: "h", wantOK: true},
		{name: "space", in: chars("a b"), want: "a b", wantOK: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractText(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildCommand(t *testing.T) {
	tests := []struct {
		name string
		in   Queue
		want string
	}{
		{name: "empty", in: nil, want: ""},
		{name: "text", in: chars("hi"), want: "AT KW hi"},
		{name: "special key", in: Queue{char('h'), arrowLeft}, want: "AT KP KEY_H KEY_LEFT"},
		{name: "altgr", in: Queue{ctrl, alt, altGr("@", 81)}, want: "AT KW @"},
		{name: "shortcut", in: Queue{ctrl, alt, KeyEvent{Key: "Delete", Code: 46}}, want: "AT KP KEY_CTRL KEY_ALT KEY_DELETE"},
		{name: "ctrl c", in: Queue{ctrl, KeyEvent{Key: "c", Code: 67, Ctrl: true}}, want: "AT KP KEY_CTRL KEY_C"},
		{name: "only shift", in: Queue{shift}, want: "AT KP KEY_SHIFT"},
		{name: "order kept", in: Queue{enter, char('a'), shift}, want: "AT KP KEY_ENTER KEY_A KEY_SHIFT"},
		{name: "unmapped skipped", in: Queue{enter, KeyEvent{Key: "F13", Code: 124}, char('a')}, want: "AT KP KEY_ENTER KEY_A"},
		{name: "punctuation", in: Queue{enter, KeyEvent{Key: "ö"}, KeyEvent{Key: "-"}}, want: "AT KP KEY_ENTER KEY_SEMICOLON KEY_SLASH"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildCommand(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, BuildCommand(tt.in))
		})
	}
}

func TestBuildCommandLength(t *testing.T) {
	long := chars(strings.Repeat("abc ", 100))
	cmd := BuildCommand(long)
	assert.Len(t, cmd, atcmd.MaxLength)
	assert.True(t, strings.HasPrefix(cmd, atcmd.WriteWord+" "))

	keys := Queue{enter}
	for i := 0; i < 100; i++ {
		keys = append(keys, arrowLeft)
	}
	cmd = BuildCommand(keys)
	assert.LessOrEqual(t, len(cmd), atcmd.MaxLength)
	assert.True(t, strings.HasPrefix(cmd, atcmd.KeyPress+" KEY_ENTER"))
}

func TestBuiltCommandsParse(t *testing.T) {
	for _, q := range []Queue{
		chars("hello"),
		{char('h'), arrowLeft},
		{ctrl, alt, altGr("@", 81)},
		{shift},
	} {
		cmd := BuildCommand(q)
		_, err := atcmd.Parse(cmd)
		assert.NoError(t, err, cmd)
	}
}

func TestToReadable(t *testing.T) {
	tr := catalog(t)
	assert.Equal(t, "", ToReadable("", tr))
	assert.Equal(t, "Write word: hi", ToReadable("AT KW hi", tr))
	assert.Equal(t, "Press keys: KEY_H KEY_LEFT", ToReadable("AT KP KEY_H KEY_LEFT", tr))
	assert.Equal(t, "Click left mouse button", ToReadable("AT CL", tr))
	assert.Equal(t, "AT", ToReadable("AT", tr))

	for _, q := range []Queue{nil, chars("x"), {arrowLeft}} {
		cmd := BuildCommand(q)
		assert.Equal(t, cmd == "", ToReadable(cmd, tr) == "")
	}
}
