// Package atcmd describes the AT command strings understood by the device
// firmware: the fixed-width verb prefix, the parameter each verb takes and
// the length limit of a stored command.
package atcmd

// Wire format limits.
const (
	// MaxLength is the longest command the firmware stores for one button
	// (ATCMD_LENGTH minus the terminating NUL).
	MaxLength = 255
	// LengthPrefix is the width of the verb including the separating space.
	LengthPrefix = 6
)

// Keyboard verbs produced by key recording.
const (
	WriteWord = "AT KW"
	KeyPress  = "AT KP"
	KeyHold   = "AT KH"
	KeyRel    = "AT KR"
)

// Mouse verbs
const (
	ClickLeft     = "AT CL"
	ClickRight    = "AT CR"
	ClickMiddle   = "AT CM"
	ClickDouble   = "AT CD"
	PressLeft     = "AT PL"
	PressRight    = "AT PR"
	PressMiddle   = "AT PM"
	ReleaseLeft   = "AT RL"
	ReleaseRight  = "AT RR"
	ReleaseMiddle = "AT RM"
	WheelUp       = "AT WU"
	WheelDown     = "AT WD"
	WheelStep     = "AT WS"
	MoveX         = "AT MX"
	MoveY         = "AT MY"
)

// Joystick verbs
const (
	JoystickX       = "AT JX"
	JoystickY       = "AT JY"
	JoystickZ       = "AT JZ"
	JoystickZTurn   = "AT JT"
	JoystickSlider  = "AT JS"
	JoystickPress   = "AT JP"
	JoystickRelease = "AT JR"
	JoystickHat     = "AT JH"
)

// Housekeeping and device specific verbs
const (
	ReleaseAll    = "AT RA"
	SaveSlot      = "AT SA"
	LoadSlot      = "AT LO"
	LoadAll       = "AT LA"
	ListSlots     = "AT LI"
	NextSlot      = "AT NE"
	DeleteSlots   = "AT DE"
	NoCommand     = "AT NC"
	MouseMode     = "AT MM"
	SwitchMode    = "AT SW"
	Calibrate     = "AT CA"
	Macro         = "AT MA"
	Wait          = "AT WA"
	Rotate        = "AT RO"
	BluetoothMode = "AT BT"
	IRRecord      = "AT IR"
	IRPlay        = "AT IP"
	IRClear       = "AT IC"
	IRWipe        = "AT IW"
	IRList        = "AT IL"
	IRTimeout     = "AT IT"
)
