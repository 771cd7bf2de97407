// Package store keeps the AT command bound to every virtual button of the
// device, grouped in named slots.
package store

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/asterics/flipkeys/atcmd"
	"github.com/asterics/flipkeys/i18n"
)

// ButtonMode identifies one virtual button. Values start at 1.
type ButtonMode int

// Virtual buttons in firmware order.
const (
	ButtonExternal1 ButtonMode = iota + 1
	ButtonExternal2
	ButtonInternal1
	ButtonInternal2
	ButtonUp
	ButtonDown
	ButtonLeft
	ButtonRight
	ButtonSip
	ButtonPuff
	ButtonStrongSip
	ButtonStrongPuff
	ButtonStrongSipUp
	ButtonStrongSipDown
	ButtonStrongSipLeft
	ButtonStrongSipRight
	ButtonStrongPuffUp
	ButtonStrongPuffDown
	ButtonStrongPuffLeft
	ButtonStrongPuffRight

	NumButtons = int(ButtonStrongPuffRight)
)

const buttonPrefix = "AT BM "

var ErrUnknownButton = errors.New("unknown button")

// ButtonModes lists all buttons in order.
func ButtonModes() []ButtonMode {
	out := make([]ButtonMode, NumButtons)
	for i := range out {
		out[i] = ButtonMode(i + 1)
	}
	return out
}

func (b ButtonMode) Valid() bool { return b >= 1 && int(b) <= NumButtons }

// ID is the identifier used by the device and the label catalog.
func (b ButtonMode) ID() string { return fmt.Sprintf("%s%02d", buttonPrefix, int(b)) }

func (b ButtonMode) String() string { return b.ID() }

// Label returns the translated button name.
func (b ButtonMode) Label(tr i18n.Translator) string { return tr.Translate(b.ID()) }

// ParseButtonMode accepts "AT BM 05", "05" or "5".
func ParseButtonMode(s string) (ButtonMode, error) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), buttonPrefix))
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownButton, s)
	}
	b := ButtonMode(n)
	if !b.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrUnknownButton, n)
	}
	return b, nil
}

// FlipMode selects whether the stick moves the cursor or triggers the
// direction buttons.
type FlipMode string

const (
	ModeMouse       FlipMode = "MODE_MOUSE"
	ModeAlternative FlipMode = "MODE_ALTERNATIVE"
)

var ErrUnknownMode = errors.New("unknown mode")

// ParseFlipMode accepts the mode identifiers and the short forms
// "mouse" and "alternative".
func ParseFlipMode(s string) (FlipMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mouse", "mode_mouse":
		return ModeMouse, nil
	case "alternative", "alt", "mode_alternative":
		return ModeAlternative, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Command returns the AT MM command that switches the device to m.
func (m FlipMode) Command() string {
	if m == ModeAlternative {
		return atcmd.New(atcmd.MouseMode, "0").String()
	}
	return atcmd.New(atcmd.MouseMode, "1").String()
}
