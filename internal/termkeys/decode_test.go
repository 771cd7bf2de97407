package termkeys

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/asterics/flipkeys/keyrec"
)

func events(in []Input) keyrec.Queue {
	var q keyrec.Queue
	for _, i := range in {
		if i.Control == ControlNone {
			q = append(q, i.Event)
		}
	}
	return q
}

func TestDecodeCommands(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "word", in: "hi", want: "AT KW hi"},
		{name: "capital", in: "Hi", want: "AT KW Hi"},
		{name: "umlaut", in: "schön", want: "AT KW schön"},
		{name: "arrow", in: "h\x1b[D", want: "AT KP KEY_H KEY_LEFT"},
		{name: "ss3 arrow", in: "\x1bOA", want: "AT KP KEY_UP"},
		{name: "delete", in: "\x1b[3~", want: "AT KP KEY_DELETE"},
		{name: "page down", in: "\x1b[6~", want: "AT KP KEY_PAGE_DOWN"},
		{name: "function keys", in: "\x1bOP\x1b[24~", want: "AT KP KEY_F1 KEY_F12"},
		{name: "ctrl letter", in: "\x01", want: "AT KP KEY_CTRL KEY_A"},
		{name: "alt letter", in: "\x1bx", want: "AT KP KEY_ALT KEY_X"},
		{name: "escape", in: "\x1b", want: "AT KP KEY_ESC"},
		{name: "enter and tab", in: "a\r\t", want: "AT KP KEY_A KEY_ENTER KEY_TAB"},
		{name: "unknown csi dropped", in: "\x1b[99zq", want: "AT KW q"},
		{name: "punctuation", in: "a,b", want: "AT KW a,b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, keyrec.BuildCommand(events(Decode([]byte(tt.in)))))
		})
	}
}

func TestDecodeControls(t *testing.T) {
	in := Decode([]byte("a\x12b\x04\x03"))
	var controls []Control
	for _, i := range in {
		if i.Control != ControlNone {
			controls = append(controls, i.Control)
		}
	}
	assert.Equal(t, []Control{ControlReset, ControlSave, ControlCancel}, controls)
	assert.Equal(t, "save", ControlSave.String())
	assert.Equal(t, "none", ControlNone.String())
}

func TestDecodeBackspace(t *testing.T) {
	in := Decode([]byte{'a', 0x7f, 0x08})
	assert.Len(t, in, 3)
	assert.Equal(t, "Backspace", in[1].Event.Key)
	assert.Equal(t, int(keyrec.SymBackspace), in[2].Event.Code)
}

func TestDecodeDropsGarbage(t *testing.T) {
	assert.Empty(t, Decode([]byte{0xff}))
	assert.Empty(t, Decode([]byte{0x00, 0x1c}))
	assert.Empty(t, Decode([]byte("\x1b[")))
}
