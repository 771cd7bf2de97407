package cmd

// CLI is the root command line of flipkeys. Values may also come from a
// JSON, YAML or TOML config file and from FLIPKEYS_* environment variables.
type CLI struct {
	Globals

	Record   Record        `cmd:"" help:"Record a key combination or text and bind it to a button"`
	Readable Readable      `cmd:"" help:"Print the readable label of a command"`
	Actions  Actions       `cmd:"" help:"List the commands bound to each button"`
	Set      Set           `cmd:"" help:"Bind a command to a button"`
	Slots    Slots         `cmd:"" help:"List, select or add configuration slots"`
	Mode     Mode          `cmd:"" help:"Show or change the stick mode"`
	Commands Commands      `cmd:"" help:"List the known AT commands"`
	Report   Report        `cmd:"" help:"Show the HID keyboard report a key command sends"`
	Config   ConfigCommand `cmd:"" help:"Configuration helpers"`
}
