// Package hidreport shows which boot keyboard reports the device sends for a
// key command or a written word.
package hidreport

// Modifier bits of report byte 0
const (
	ModLeftCtrl   = 0x01
	ModLeftShift  = 0x02
	ModLeftAlt    = 0x04
	ModLeftGUI    = 0x08
	ModRightCtrl  = 0x10
	ModRightShift = 0x20
	ModRightAlt   = 0x40
	ModRightGUI   = 0x80
)

// modifiers maps key identifiers that set a modifier bit instead of taking
// a key slot.
var modifiers = map[string]uint8{
	"KEY_CTRL":      ModLeftCtrl,
	"KEY_SHIFT":     ModLeftShift,
	"KEY_ALT":       ModLeftAlt,
	"KEY_GUI":       ModLeftGUI,
	"KEY_RIGHT_ALT": ModRightAlt,
	"KEY_RIGHT_GUI": ModRightGUI,
}

// usages maps key identifiers to HID keyboard usage codes.
var usages = map[string]uint8{
	"KEY_A": 0x04, "KEY_B": 0x05, "KEY_C": 0x06, "KEY_D": 0x07, "KEY_E": 0x08, "KEY_F": 0x09,
	"KEY_G": 0x0A, "KEY_H": 0x0B, "KEY_I": 0x0C, "KEY_J": 0x0D, "KEY_K": 0x0E, "KEY_L": 0x0F,
	"KEY_M": 0x10, "KEY_N": 0x11, "KEY_O": 0x12, "KEY_P": 0x13, "KEY_Q": 0x14, "KEY_R": 0x15,
	"KEY_S": 0x16, "KEY_T": 0x17, "KEY_U": 0x18, "KEY_V": 0x19, "KEY_W": 0x1A, "KEY_X": 0x1B,
	"KEY_Y": 0x1C, "KEY_Z": 0x1D,

	"KEY_1": 0x1E, "KEY_2": 0x1F, "KEY_3": 0x20, "KEY_4": 0x21, "KEY_5": 0x22,
	"KEY_6": 0x23, "KEY_7": 0x24, "KEY_8": 0x25, "KEY_9": 0x26, "KEY_0": 0x27,

	"KEY_ENTER":       0x28,
	"KEY_ESC":         0x29,
	"KEY_BACKSPACE":   0x2A,
	"KEY_TAB":         0x2B,
	"KEY_SPACE":       0x2C,
	"KEY_MINUS":       0x2D, // - and _
	"KEY_EQUAL":       0x2E, // = and +
	"KEY_LEFT_BRACE":  0x2F, // [ and {
	"KEY_RIGHT_BRACE": 0x30, // ] and }
	"KEY_BACKSLASH":   0x31, // \ and |
	"KEY_SEMICOLON":   0x33, // ; and :
	"KEY_QUOTE":       0x34, // ' and "
	"KEY_TILDE":       0x35, // ` and ~
	"KEY_COMMA":       0x36, // , and <
	"KEY_PERIOD":      0x37, // . and >
	"KEY_SLASH":       0x38, // / and ?
	"KEY_CAPS_LOCK":   0x39,

	"KEY_F1": 0x3A, "KEY_F2": 0x3B, "KEY_F3": 0x3C, "KEY_F4": 0x3D, "KEY_F5": 0x3E, "KEY_F6": 0x3F,
	"KEY_F7": 0x40, "KEY_F8": 0x41, "KEY_F9": 0x42, "KEY_F10": 0x43, "KEY_F11": 0x44, "KEY_F12": 0x45,

	"KEY_SCROLL_LOCK": 0x47,
	"KEY_PAUSE":       0x48,
	"KEY_INSERT":      0x49,
	"KEY_HOME":        0x4A,
	"KEY_PAGE_UP":     0x4B,
	"KEY_DELETE":      0x4C,
	"KEY_END":         0x4D,
	"KEY_PAGE_DOWN":   0x4E,

	"KEY_RIGHT": 0x4F,
	"KEY_LEFT":  0x50,
	"KEY_DOWN":  0x51,
	"KEY_UP":    0x52,

	"KEY_NUM_LOCK":  0x53,
	"KEY_NON_US_BS": 0x64, // Non-US \ and |
	"KEY_MENU":      0x65, // Application
}

// Usage returns the HID usage code of a non-modifier key identifier.
func Usage(name string) (uint8, bool) {
	u, ok := usages[name]
	return u, ok
}

// Modifier returns the modifier bit of a modifier key identifier.
func Modifier(name string) (uint8, bool) {
	m, ok := modifiers[name]
	return m, ok
}
