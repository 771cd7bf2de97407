package keyrec

import "strconv"

// KeyEvent is one key-down as reported by the input layer.
type KeyEvent struct {
	// Key is the character or key name produced under the current layout.
	Key string `json:"key" yaml:"key"`
	// Code is the legacy numeric key code, used when Key is not one of the
	// layout dependent characters.
	Code   int  `json:"code" yaml:"code"`
	Ctrl   bool `json:"ctrl,omitempty" yaml:"ctrl,omitempty"`
	Alt    bool `json:"alt,omitempty" yaml:"alt,omitempty"`
	Repeat bool `json:"repeat,omitempty" yaml:"repeat,omitempty"`
}

// Queue holds the events of one recording in the order they happened.
type Queue []KeyEvent

// NormalizeKeycode maps an event to its symbol. Layout dependent characters
// win over the numeric code.
func NormalizeKeycode(e KeyEvent) Symbol {
	if s, ok := matchLocale(e.Key); ok {
		return s
	}
	return Symbol(e.Code)
}

// IsSpecialKey reports whether s is a modifier, navigation or function key.
func IsSpecialKey(s Symbol) bool { return specialKeys.has(s) }

// IsPrintableKey reports whether s can be part of literal text.
func IsPrintableKey(s Symbol) bool { return printableKeys.has(s) }

// IsSupported reports whether s may be recorded at all.
func IsSupported(s Symbol) bool { return IsSpecialKey(s) || IsPrintableKey(s) }

// KeyName returns the AT KP identifier of s.
func KeyName(s Symbol) (string, bool) {
	n, ok := keyNames[s]
	return n, ok
}

func (s Symbol) String() string {
	if n, ok := keyNames[s]; ok {
		return n
	}
	return "Symbol(" + strconv.Itoa(int(s)) + ")"
}
