package keyrec

import (
	"strings"

	"github.com/asterics/flipkeys/atcmd"
	"github.com/asterics/flipkeys/i18n"
)

// IsThirdLevelComposition reports whether q[i], q[i+1] and q[i+2] are the
// Ctrl, Alt, character triple that AltGr produces on layouts which
// synthesize it as Ctrl+Alt. Missing entries never match.
func IsThirdLevelComposition(q Queue, i int) bool {
	if i < 0 || i+2 >= len(q) {
		return false
	}
	e1, e2, e3 := q[i], q[i+1], q[i+2]
	return NormalizeKeycode(e1) == SymCtrl &&
		NormalizeKeycode(e2) == SymAlt &&
		IsPrintableKey(NormalizeKeycode(e3)) &&
		e3.Ctrl && e3.Alt
}

// ExtractText returns the literal text typed by q. ok is false when q holds
// a special key other than Shift or an AltGr prefix, which means q cannot
// be written as a word.
func ExtractText(q Queue) (text string, ok bool) {
	var b strings.Builder
	for i := 0; i < len(q); i++ {
		sym := NormalizeKeycode(q[i])
		switch {
		case IsSpecialKey(sym):
			if IsThirdLevelComposition(q, i) {
				i++ // skip Alt, the character follows
				continue
			}
			if sym != SymShift {
				return "", false
			}
		case IsPrintableKey(sym):
			b.WriteString(q[i].Key)
		}
	}
	return b.String(), true
}

// BuildCommand returns the AT command for q, or "" for an empty queue.
// Text becomes AT KW, everything else AT KP with the key identifiers in
// recording order. Keys without an identifier are left out, and a key list
// over the length limit loses whole trailing identifiers.
func BuildCommand(q Queue) string {
	if len(q) == 0 {
		return ""
	}
	if text, ok := ExtractText(q); ok && text != "" {
		return atcmd.Truncate(atcmd.WriteWord + " " + text)
	}
	names := make([]string, 0, len(q))
	for _, e := range q {
		if n, ok := KeyName(NormalizeKeycode(e)); ok {
			names = append(names, n)
		}
	}
	return atcmd.TruncateKeys(atcmd.KeyPress + " " + strings.Join(names, " "))
}

// ToReadable renders cmd through tr: the verb is the lookup key and the
// payload its argument. An empty command stays empty.
func ToReadable(cmd string, tr i18n.Translator) string {
	if cmd == "" {
		return ""
	}
	verb, payload := atcmd.Split(cmd)
	return tr.Translate(verb, payload)
}
