package keyrec

import (
	"fmt"
	"strings"
)

// localeKeys pins characters whose keyCode differs between layouts.
var localeKeys = []struct {
	chars      []string
	foldCase   bool
	normalized Symbol
}{
	{chars: []string{"ö"}, foldCase: true, normalized: SymOE},
	{chars: []string{"ü"}, foldCase: true, normalized: SymUE},
	{chars: []string{"ä"}, foldCase: true, normalized: SymAE},
	{chars: []string{"ß", "?", "\\"}, normalized: SymSharpS},
	{chars: []string{"+", "*", "~"}, normalized: SymPlus},
	{chars: []string{"#", "'"}, normalized: SymHash},
	{chars: []string{"-", "_"}, normalized: SymDash},
	{chars: []string{"<", ">", "|"}, normalized: SymAngleBracket},
}

var specialKeys = symbolSet(
	SymBackspace, SymTab, SymEnter, SymShift, SymCtrl, SymAlt, SymPause, SymCapsLock,
	SymEscape, SymPageUp, SymPageDown, SymEnd, SymHome, SymLeft, SymUp, SymRight, SymDown,
	SymInsert, SymDelete, SymMeta, SymMetaRight, SymMenu, SymNumLock, SymScrollLock, SymAltGraph,
).with(symbolRange(SymF1, SymF12)...)

var printableKeys = symbolSet(SymSpace).
	with(symbolRange(Sym0, Sym9)...).
	with(symbolRange(SymA, SymZ)...).
	with(symbolRange(SymUE, SymOE)...).
	with(symbolRange(SymSharpS, SymAE)...).
	with(SymAngleBracket)

// keyNames maps symbols to the key identifiers of AT KP. Punctuation is
// named after the physical key position the device has to press.
var keyNames = func() map[Symbol]string {
	m := map[Symbol]string{
		SymBackspace:  "KEY_BACKSPACE",
		SymTab:        "KEY_TAB",
		SymEnter:      "KEY_ENTER",
		SymShift:      "KEY_SHIFT",
		SymCtrl:       "KEY_CTRL",
		SymAlt:        "KEY_ALT",
		SymPause:      "KEY_PAUSE",
		SymCapsLock:   "KEY_CAPS_LOCK",
		SymEscape:     "KEY_ESC",
		SymSpace:      "KEY_SPACE",
		SymPageUp:     "KEY_PAGE_UP",
		SymPageDown:   "KEY_PAGE_DOWN",
		SymEnd:        "KEY_END",
		SymHome:       "KEY_HOME",
		SymLeft:       "KEY_LEFT",
		SymUp:         "KEY_UP",
		SymRight:      "KEY_RIGHT",
		SymDown:       "KEY_DOWN",
		SymInsert:     "KEY_INSERT",
		SymDelete:     "KEY_DELETE",
		SymMeta:       "KEY_GUI",
		SymMetaRight:  "KEY_RIGHT_GUI",
		SymMenu:       "KEY_MENU",
		SymNumLock:    "KEY_NUM_LOCK",
		SymScrollLock: "KEY_SCROLL_LOCK",
		SymAltGraph:   "KEY_RIGHT_ALT",

		SymUE:           "KEY_LEFT_BRACE",
		SymPlus:         "KEY_RIGHT_BRACE",
		SymComma:        "KEY_COMMA",
		SymDash:         "KEY_SLASH",
		SymPeriod:       "KEY_PERIOD",
		SymHash:         "KEY_BACKSLASH",
		SymOE:           "KEY_SEMICOLON",
		SymSharpS:       "KEY_MINUS",
		SymCircumflex:   "KEY_TILDE",
		SymAcute:        "KEY_EQUAL",
		SymAE:           "KEY_QUOTE",
		SymAngleBracket: "KEY_NON_US_BS",
	}
	for s := Sym0; s <= Sym9; s++ {
		m[s] = fmt.Sprintf("KEY_%c", rune('0'+s-Sym0))
	}
	for s := SymA; s <= SymZ; s++ {
		m[s] = fmt.Sprintf("KEY_%c", rune('A'+s-SymA))
	}
	for s := SymF1; s <= SymF12; s++ {
		m[s] = fmt.Sprintf("KEY_F%d", int(s-SymF1)+1)
	}
	return m
}()

type set map[Symbol]struct{}

func symbolSet(syms ...Symbol) set {
	return set{}.with(syms...)
}

func (s set) with(syms ...Symbol) set {
	for _, sym := range syms {
		s[sym] = struct{}{}
	}
	return s
}

func (s set) has(sym Symbol) bool {
	_, ok := s[sym]
	return ok
}

func symbolRange(from, to Symbol) []Symbol {
	out := make([]Symbol, 0, to-from+1)
	for s := from; s <= to; s++ {
		out = append(out, s)
	}
	return out
}

func matchLocale(key string) (Symbol, bool) {
	for _, l := range localeKeys {
		for _, c := range l.chars {
			if key == c || (l.foldCase && strings.EqualFold(key, c)) {
				return l.normalized, true
			}
		}
	}
	return SymNone, false
}
