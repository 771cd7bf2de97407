package atcmd

import "sort"

// Param is the kind of argument a verb takes.
type Param int

const (
	ParamNone Param = iota
	ParamInt
	ParamUint
	ParamString
	ParamKeys
)

func (p Param) String() string {
	switch p {
	case ParamNone:
		return "none"
	case ParamInt:
		return "int"
	case ParamUint:
		return "uint"
	case ParamString:
		return "string"
	case ParamKeys:
		return "keys"
	default:
		return "unknown"
	}
}

// Category groups verbs the way the configuration tab offers them.
type Category string

const (
	CategoryKeyboard     Category = "keyboard"
	CategoryMouse        Category = "mouse"
	CategoryJoystick     Category = "joystick"
	CategoryFlipActions  Category = "flipactions"
	CategoryInfrared     Category = "infrared"
	CategoryHousekeeping Category = "housekeeping"
)

// Categories returns every category in display order.
func Categories() []Category {
	return []Category{CategoryKeyboard, CategoryMouse, CategoryJoystick, CategoryFlipActions, CategoryInfrared, CategoryHousekeeping}
}

// Verb describes one command prefix.
type Verb struct {
	Name     string
	Param    Param
	Category Category
	// Assignable verbs may be bound to a button.
	Assignable bool
}

var verbs = map[string]Verb{}

func register(name string, p Param, c Category, assignable bool) {
	verbs[name] = Verb{Name: name, Param: p, Category: c, Assignable: assignable}
}

func init() {
	register(WriteWord, ParamString, CategoryKeyboard, true)
	register(KeyPress, ParamKeys, CategoryKeyboard, true)
	register(KeyHold, ParamKeys, CategoryKeyboard, true)
	register(KeyRel, ParamKeys, CategoryKeyboard, true)

	for _, v := range []string{
		ClickLeft, ClickRight, ClickMiddle, ClickDouble,
		PressLeft, PressRight, PressMiddle,
		ReleaseLeft, ReleaseRight, ReleaseMiddle,
		WheelUp, WheelDown,
	} {
		register(v, ParamNone, CategoryMouse, true)
	}
	register(WheelStep, ParamUint, CategoryMouse, true)
	register(MoveX, ParamInt, CategoryMouse, true)
	register(MoveY, ParamInt, CategoryMouse, true)

	for _, v := range []string{JoystickX, JoystickY, JoystickZ, JoystickZTurn, JoystickSlider, JoystickHat} {
		register(v, ParamInt, CategoryJoystick, true)
	}
	register(JoystickPress, ParamUint, CategoryJoystick, true)
	register(JoystickRelease, ParamUint, CategoryJoystick, true)

	register(NoCommand, ParamNone, CategoryFlipActions, true)
	register(ReleaseAll, ParamNone, CategoryFlipActions, true)
	register(NextSlot, ParamNone, CategoryFlipActions, true)
	register(LoadSlot, ParamString, CategoryFlipActions, true)
	register(SwitchMode, ParamNone, CategoryFlipActions, true)
	register(Calibrate, ParamNone, CategoryFlipActions, true)
	register(Macro, ParamString, CategoryFlipActions, true)
	register(Wait, ParamUint, CategoryFlipActions, true)

	register(IRPlay, ParamString, CategoryInfrared, true)
	register(IRRecord, ParamString, CategoryInfrared, false)
	register(IRClear, ParamString, CategoryInfrared, false)
	register(IRWipe, ParamNone, CategoryInfrared, false)
	register(IRList, ParamNone, CategoryInfrared, false)
	register(IRTimeout, ParamUint, CategoryInfrared, false)

	register(SaveSlot, ParamString, CategoryHousekeeping, false)
	register(LoadAll, ParamNone, CategoryHousekeeping, false)
	register(ListSlots, ParamNone, CategoryHousekeeping, false)
	register(DeleteSlots, ParamNone, CategoryHousekeeping, false)
	register(MouseMode, ParamUint, CategoryHousekeeping, false)
	register(Rotate, ParamUint, CategoryHousekeeping, false)
	register(BluetoothMode, ParamUint, CategoryHousekeeping, false)
}

// Lookup returns the verb registered under name.
func Lookup(name string) (Verb, bool) {
	v, ok := verbs[name]
	return v, ok
}

// ByCategory lists the verbs of one category sorted by name.
func ByCategory(c Category) []Verb {
	var out []Verb
	for _, v := range verbs {
		if v.Category == c {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// NeedsData reports whether a verb can only be assigned together with an
// argument chosen by the user, such as the slot name for AT LO.
func NeedsData(name string) bool {
	v, ok := verbs[name]
	if !ok {
		return false
	}
	return v.Assignable && v.Param != ParamNone
}
