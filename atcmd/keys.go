package atcmd

// KeyNames lists the key identifiers accepted by the keys verbs.
var KeyNames = []string{
	"KEY_A", "KEY_B", "KEY_C", "KEY_D", "KEY_E", "KEY_F", "KEY_G", "KEY_H", "KEY_I",
	"KEY_J", "KEY_K", "KEY_L", "KEY_M", "KEY_N", "KEY_O", "KEY_P", "KEY_Q", "KEY_R",
	"KEY_S", "KEY_T", "KEY_U", "KEY_V", "KEY_W", "KEY_X", "KEY_Y", "KEY_Z",
	"KEY_1", "KEY_2", "KEY_3", "KEY_4", "KEY_5", "KEY_6", "KEY_7", "KEY_8", "KEY_9", "KEY_0",
	"KEY_F1", "KEY_F2", "KEY_F3", "KEY_F4", "KEY_F5", "KEY_F6",
	"KEY_F7", "KEY_F8", "KEY_F9", "KEY_F10", "KEY_F11", "KEY_F12",

	"KEY_RIGHT", "KEY_LEFT", "KEY_DOWN", "KEY_UP", "KEY_ENTER", "KEY_ESC", "KEY_BACKSPACE", "KEY_TAB",
	"KEY_HOME", "KEY_PAGE_UP", "KEY_PAGE_DOWN", "KEY_DELETE", "KEY_INSERT", "KEY_END",
	"KEY_NUM_LOCK", "KEY_SCROLL_LOCK", "KEY_SPACE", "KEY_CAPS_LOCK", "KEY_PAUSE",
	"KEY_SHIFT", "KEY_CTRL", "KEY_ALT", "KEY_RIGHT_ALT", "KEY_GUI", "KEY_RIGHT_GUI",

	// Punctuation, named after the US key position.
	"KEY_MINUS", "KEY_EQUAL", "KEY_LEFT_BRACE", "KEY_RIGHT_BRACE", "KEY_BACKSLASH",
	"KEY_SEMICOLON", "KEY_QUOTE", "KEY_TILDE", "KEY_COMMA", "KEY_PERIOD", "KEY_SLASH",
	"KEY_NON_US_BS", "KEY_MENU",
}

var keyNameSet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(KeyNames))
	for _, n := range KeyNames {
		m[n] = struct{}{}
	}
	return m
}()

// IsKeyName reports whether name is a known key identifier.
func IsKeyName(name string) bool {
	_, ok := keyNameSet[name]
	return ok
}
