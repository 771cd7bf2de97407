package hidreport

import (
	"errors"
	"fmt"
	"strings"

	"github.com/asterics/flipkeys/atcmd"
)

// MaxKeys is the number of key slots of a boot keyboard report.
const MaxKeys = 6

var (
	ErrNotKeyCommand = errors.New("not a key command")
	ErrUnknownKey    = errors.New("unknown key")
	ErrTooManyKeys   = errors.New("too many keys for one report")
)

// Report is a boot protocol keyboard report.
type Report struct {
	Modifiers uint8
	Keys      [MaxKeys]uint8
}

// Bytes encodes r in the 8-byte boot keyboard layout.
//
//	Byte 0: Modifiers
//	Byte 1: Reserved (0x00)
//	Bytes 2-7: Usage codes of pressed keys
func (r Report) Bytes() []byte {
	b := make([]byte, 8)
	b[0] = r.Modifiers
	copy(b[2:], r.Keys[:])
	return b
}

// Pressed returns the number of used key slots.
func (r Report) Pressed() int {
	n := 0
	for _, k := range r.Keys {
		if k != 0 {
			n++
		}
	}
	return n
}

func (r Report) String() string {
	parts := make([]string, 0, 8)
	for _, b := range r.Bytes() {
		parts = append(parts, fmt.Sprintf("%02x", b))
	}
	return strings.Join(parts, " ")
}

// FromCommand builds the report a key press, hold or release command
// refers to. Repeated keys occupy one slot.
func FromCommand(s string) (Report, error) {
	c, err := atcmd.Parse(s)
	if err != nil {
		return Report{}, err
	}
	switch c.Verb {
	case atcmd.KeyPress, atcmd.KeyHold, atcmd.KeyRel:
	default:
		return Report{}, fmt.Errorf("%w: %s", ErrNotKeyCommand, c.Verb)
	}
	return FromKeys(c.Keys()...)
}

// FromKeys builds a report from key identifiers.
func FromKeys(names ...string) (Report, error) {
	var r Report
	n := 0
outer:
	for _, name := range names {
		if m, ok := Modifier(name); ok {
			r.Modifiers |= m
			continue
		}
		u, ok := Usage(name)
		if !ok {
			return Report{}, fmt.Errorf("%w: %s", ErrUnknownKey, name)
		}
		for _, k := range r.Keys[:n] {
			if k == u {
				continue outer
			}
		}
		if n == MaxKeys {
			return Report{}, fmt.Errorf("%w: more than %d", ErrTooManyKeys, MaxKeys)
		}
		r.Keys[n] = u
		n++
	}
	return r, nil
}
