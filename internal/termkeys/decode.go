// Package termkeys turns raw-mode terminal input into key-down events the
// recorder understands.
package termkeys

import (
	"unicode"
	"unicode/utf8"

	"github.com/asterics/flipkeys/keyrec"
)

// Control is a recorder command typed on the terminal. Controls are never
// recorded.
type Control int

const (
	ControlNone   Control = iota
	ControlSave           // Ctrl-D
	ControlCancel         // Ctrl-C
	ControlReset          // Ctrl-R
)

func (c Control) String() string {
	switch c {
	case ControlSave:
		return "save"
	case ControlCancel:
		return "cancel"
	case ControlReset:
		return "reset"
	default:
		return "none"
	}
}

// Input is either a key event or a control.
type Input struct {
	Event   keyrec.KeyEvent
	Control Control
}

var (
	evShift     = keyrec.KeyEvent{Key: "Shift", Code: int(keyrec.SymShift)}
	evCtrl      = keyrec.KeyEvent{Key: "Control", Code: int(keyrec.SymCtrl)}
	evAlt       = keyrec.KeyEvent{Key: "Alt", Code: int(keyrec.SymAlt)}
	evBackspace = keyrec.KeyEvent{Key: "Backspace", Code: int(keyrec.SymBackspace)}
	evEnter     = keyrec.KeyEvent{Key: "Enter", Code: int(keyrec.SymEnter)}
	evTab       = keyrec.KeyEvent{Key: "Tab", Code: int(keyrec.SymTab)}
	evEscape    = keyrec.KeyEvent{Key: "Escape", Code: int(keyrec.SymEscape)}
)

func named(key string, sym keyrec.Symbol) keyrec.KeyEvent {
	return keyrec.KeyEvent{Key: key, Code: int(sym)}
}

// csiFinal maps "ESC [ x" and "ESC O x" final bytes.
var csiFinal = map[byte]keyrec.KeyEvent{
	'A': named("ArrowUp", keyrec.SymUp),
	'B': named("ArrowDown", keyrec.SymDown),
	'C': named("ArrowRight", keyrec.SymRight),
	'D': named("ArrowLeft", keyrec.SymLeft),
	'H': named("Home", keyrec.SymHome),
	'F': named("End", keyrec.SymEnd),
}

var ss3Function = map[byte]keyrec.KeyEvent{
	'P': named("F1", keyrec.SymF1),
	'Q': named("F2", keyrec.SymF1+1),
	'R': named("F3", keyrec.SymF1+2),
	'S': named("F4", keyrec.SymF1+3),
}

// csiTilde maps the numeric parameter of "ESC [ n ~".
var csiTilde = map[string]keyrec.KeyEvent{
	"1":  named("Home", keyrec.SymHome),
	"2":  named("Insert", keyrec.SymInsert),
	"3":  named("Delete", keyrec.SymDelete),
	"4":  named("End", keyrec.SymEnd),
	"5":  named("PageUp", keyrec.SymPageUp),
	"6":  named("PageDown", keyrec.SymPageDown),
	"7":  named("Home", keyrec.SymHome),
	"8":  named("End", keyrec.SymEnd),
	"11": named("F1", keyrec.SymF1),
	"12": named("F2", keyrec.SymF1+1),
	"13": named("F3", keyrec.SymF1+2),
	"14": named("F4", keyrec.SymF1+3),
	"15": named("F5", keyrec.SymF1+4),
	"17": named("F6", keyrec.SymF1+5),
	"18": named("F7", keyrec.SymF1+6),
	"19": named("F8", keyrec.SymF1+7),
	"20": named("F9", keyrec.SymF1+8),
	"21": named("F10", keyrec.SymF1+9),
	"23": named("F11", keyrec.SymF1+10),
	"24": named("F12", keyrec.SymF1+11),
}

// usPunctuation holds the key codes a US layout browser reports.
var usPunctuation = map[rune]int{
	';': 186, ':': 186, '=': 187, '+': 187, ',': 188, '<': 188,
	'-': 189, '_': 189, '.': 190, '>': 190, '/': 191, '?': 191,
	'`': 192, '~': 192, '[': 219, '{': 219, '\\': 220, '|': 220,
	']': 221, '}': 221, '\'': 222, '"': 222,
}

// Decode splits one read from a raw terminal into inputs. Sequences it does
// not know are dropped.
func Decode(data []byte) []Input {
	var out []Input
	emit := func(evs ...keyrec.KeyEvent) {
		for _, e := range evs {
			out = append(out, Input{Event: e})
		}
	}
	for i := 0; i < len(data); {
		b := data[i]
		switch {
		case b == 0x1b:
			n, evs := decodeEscape(data[i:])
			emit(evs...)
			i += n
			continue
		case b == 0x03:
			out = append(out, Input{Control: ControlCancel})
		case b == 0x04:
			out = append(out, Input{Control: ControlSave})
		case b == 0x12:
			out = append(out, Input{Control: ControlReset})
		case b == 0x7f || b == 0x08:
			emit(evBackspace)
		case b == '\r' || b == '\n':
			emit(evEnter)
		case b == '\t':
			emit(evTab)
		case b >= 0x01 && b <= 0x1a:
			letter := rune('a' + b - 1)
			emit(evCtrl, keyrec.KeyEvent{Key: string(letter), Code: int(unicode.ToUpper(letter)), Ctrl: true})
		case b < 0x20:
			// NUL and Ctrl with punctuation have no key code here
		default:
			r, size := utf8.DecodeRune(data[i:])
			if r == utf8.RuneError && size <= 1 {
				i++
				continue
			}
			emit(runeEvents(r, false)...)
			i += size
			continue
		}
		i++
	}
	return out
}

func runeEvents(r rune, alt bool) []keyrec.KeyEvent {
	e := keyrec.KeyEvent{Key: string(r), Code: runeCode(r), Alt: alt}
	var evs []keyrec.KeyEvent
	if alt {
		evs = append(evs, evAlt)
	}
	if r >= 'A' && r <= 'Z' {
		evs = append(evs, evShift)
	}
	return append(evs, e)
}

func runeCode(r rune) int {
	switch {
	case r >= 'a' && r <= 'z':
		return int(unicode.ToUpper(r))
	case r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == ' ':
		return int(r)
	}
	return usPunctuation[r]
}

// decodeEscape decodes a sequence starting with ESC and returns the number
// of bytes consumed.
func decodeEscape(data []byte) (int, []keyrec.KeyEvent) {
	if len(data) == 1 {
		return 1, []keyrec.KeyEvent{evEscape}
	}
	switch data[1] {
	case '[':
		end := 2
		for end < len(data) && (data[end] >= '0' && data[end] <= '9' || data[end] == ';') {
			end++
		}
		if end == len(data) {
			return len(data), nil
		}
		final := data[end]
		if final == '~' {
			if e, ok := csiTilde[string(data[2:end])]; ok {
				return end + 1, []keyrec.KeyEvent{e}
			}
			return end + 1, nil
		}
		if e, ok := csiFinal[final]; ok {
			return end + 1, []keyrec.KeyEvent{e}
		}
		return end + 1, nil
	case 'O':
		if len(data) < 3 {
			return len(data), nil
		}
		if e, ok := ss3Function[data[2]]; ok {
			return 3, []keyrec.KeyEvent{e}
		}
		if e, ok := csiFinal[data[2]]; ok {
			return 3, []keyrec.KeyEvent{e}
		}
		return 3, nil
	case 0x1b:
		return 1, []keyrec.KeyEvent{evEscape}
	}
	r, size := utf8.DecodeRune(data[1:])
	if r == utf8.RuneError || r < 0x20 {
		return 1, []keyrec.KeyEvent{evEscape}
	}
	return 1 + size, runeEvents(r, true)
}
