// Package keyrec turns the key-down events recorded for a button into a
// single AT command: literal text becomes "AT KW <text>", anything else a
// list of key identifiers for "AT KP".
package keyrec

// Symbol is a normalized key code. Values follow the legacy browser keyCode
// numbering; layout dependent punctuation is pinned to the codes below.
type Symbol int

// Key codes
const (
	SymNone       Symbol = 0
	SymBackspace  Symbol = 8
	SymTab        Symbol = 9
	SymEnter      Symbol = 13
	SymShift      Symbol = 16
	SymCtrl       Symbol = 17
	SymAlt        Symbol = 18
	SymPause      Symbol = 19
	SymCapsLock   Symbol = 20
	SymEscape     Symbol = 27
	SymSpace      Symbol = 32
	SymPageUp     Symbol = 33
	SymPageDown   Symbol = 34
	SymEnd        Symbol = 35
	SymHome       Symbol = 36
	SymLeft       Symbol = 37
	SymUp         Symbol = 38
	SymRight      Symbol = 39
	SymDown       Symbol = 40
	SymInsert     Symbol = 45
	SymDelete     Symbol = 46
	Sym0          Symbol = 48
	Sym9          Symbol = 57
	SymA          Symbol = 65
	SymZ          Symbol = 90
	SymMeta       Symbol = 91
	SymMetaRight  Symbol = 92
	SymMenu       Symbol = 93
	SymF1         Symbol = 112
	SymF12        Symbol = 123
	SymNumLock    Symbol = 144
	SymScrollLock Symbol = 145
	SymAltGraph   Symbol = 225
)

// Layout dependent punctuation, named after the German layout the device
// defaults to.
const (
	SymUE           Symbol = 186 // ü
	SymPlus         Symbol = 187 // + * ~
	SymComma        Symbol = 188
	SymDash         Symbol = 189 // - _
	SymPeriod       Symbol = 190
	SymHash         Symbol = 191 // # '
	SymOE           Symbol = 192 // ö
	SymSharpS       Symbol = 219 // ß ? \
	SymCircumflex   Symbol = 220
	SymAcute        Symbol = 221
	SymAE           Symbol = 222 // ä
	SymAngleBracket Symbol = 226 // < > |
)
