package hidreport

import "fmt"

// shifted holds the US layout characters typed with Shift, by the key
// producing them.
var shifted = map[rune]string{
	'!': "KEY_1", '@': "KEY_2", '#': "KEY_3", '$': "KEY_4", '%': "KEY_5",
	'^': "KEY_6", '&': "KEY_7", '*': "KEY_8", '(': "KEY_9", ')': "KEY_0",
	'_': "KEY_MINUS", '+': "KEY_EQUAL", '{': "KEY_LEFT_BRACE", '}': "KEY_RIGHT_BRACE",
	'|': "KEY_BACKSLASH", ':': "KEY_SEMICOLON", '"': "KEY_QUOTE", '~': "KEY_TILDE",
	'<': "KEY_COMMA", '>': "KEY_PERIOD", '?': "KEY_SLASH",
}

var unshifted = map[rune]string{
	' ': "KEY_SPACE", '\n': "KEY_ENTER", '\t': "KEY_TAB",
	'-': "KEY_MINUS", '=': "KEY_EQUAL", '[': "KEY_LEFT_BRACE", ']': "KEY_RIGHT_BRACE",
	'\\': "KEY_BACKSLASH", ';': "KEY_SEMICOLON", '\'': "KEY_QUOTE", '`': "KEY_TILDE",
	',': "KEY_COMMA", '.': "KEY_PERIOD", '/': "KEY_SLASH",
}

// keyForRune returns the key identifier and whether Shift is needed to type
// r on a US layout.
func keyForRune(r rune) (string, bool, bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return "KEY_" + string(r-'a'+'A'), false, true
	case r >= 'A' && r <= 'Z':
		return "KEY_" + string(r), true, true
	case r >= '0' && r <= '9':
		return "KEY_" + string(r), false, true
	}
	if k, ok := unshifted[r]; ok {
		return k, false, true
	}
	if k, ok := shifted[r]; ok {
		return k, true, true
	}
	return "", false, false
}

// FromText returns the press reports the device sends to write text with
// AT KW on a US layout, one per character. Each press is followed by a
// release on the device, which is not listed.
func FromText(text string) ([]Report, error) {
	reports := make([]Report, 0, len(text))
	for _, r := range text {
		name, shift, ok := keyForRune(r)
		if !ok {
			return nil, fmt.Errorf("%w: %q has no key on the US layout", ErrUnknownKey, r)
		}
		names := []string{name}
		if shift {
			names = append(names, "KEY_SHIFT")
		}
		rep, err := FromKeys(names...)
		if err != nil {
			return nil, err
		}
		reports = append(reports, rep)
	}
	return reports, nil
}
