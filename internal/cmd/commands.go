package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/asterics/flipkeys/atcmd"
	"github.com/asterics/flipkeys/hidreport"
	"github.com/asterics/flipkeys/keyrec"
	"github.com/asterics/flipkeys/store"
)

// Readable prints the label of a command.
type Readable struct {
	Command []string `arg:"" help:"Command, e.g. AT KP KEY_CTRL KEY_C"`
}

func (r *Readable) Run(g *Globals, logger *slog.Logger) error {
	tr, err := g.Translator()
	if err != nil {
		return err
	}
	cmd := strings.Join(r.Command, " ")
	if _, err := atcmd.Parse(cmd); err != nil {
		logger.Warn("command is not valid for the device", "command", cmd, "error", err)
	}
	fmt.Fprintln(g.stdout(), keyrec.ToReadable(cmd, tr))
	return nil
}

// Actions lists the current binding of every button.
type Actions struct{}

func (a *Actions) Run(g *Globals, logger *slog.Logger) error {
	tr, err := g.Translator()
	if err != nil {
		return err
	}
	st, err := g.Store(logger)
	if err != nil {
		return err
	}
	none := tr.Translate(keyrec.NoneKey)
	var t table
	for _, row := range store.ActionTable(st, tr) {
		readable := row.Readable
		if row.Command == "" {
			readable = none
		}
		t.add(row.Mode.ID(), row.Label, readable, row.Command)
	}
	return t.write(g.stdout())
}

// Set binds a command to a button without recording it.
type Set struct {
	Button  string   `arg:"" help:"Button number or 'AT BM nn'"`
	Command []string `arg:"" help:"Command to bind"`
	Data    string   `help:"Additional data for commands that need it, e.g. the slot name for AT LO"`
}

func (s *Set) Run(g *Globals, logger *slog.Logger) error {
	mode, err := store.ParseButtonMode(s.Button)
	if err != nil {
		return err
	}
	cmd := strings.Join(s.Command, " ")
	verb, payload := atcmd.Split(cmd)
	if atcmd.NeedsData(verb) && payload == "" {
		if s.Data == "" {
			return fmt.Errorf("%s needs additional data, pass --data", verb)
		}
		cmd = atcmd.WithData(verb, s.Data)
	}
	cmd = atcmd.Truncate(cmd)

	st, err := g.Store(logger)
	if err != nil {
		return err
	}
	if err := st.SetButtonAction(context.Background(), mode, cmd); err != nil {
		return fmt.Errorf("failed to bind %s: %w", mode, err)
	}
	logger.Info("button action saved", "button", mode.ID(), "command", cmd)
	return nil
}

// slotManager is implemented by stores that keep several slots.
type slotManager interface {
	ActiveSlot() string
	SelectSlot(ctx context.Context, name string) error
	AddSlot(ctx context.Context, name string) error
}

// Slots lists the configuration slots, optionally selecting or adding one.
type Slots struct {
	Select string `help:"Make this slot active" xor:"action"`
	Add    string `help:"Create a new empty slot" xor:"action"`
}

func (s *Slots) Run(g *Globals, logger *slog.Logger) error {
	st, err := g.Store(logger)
	if err != nil {
		return err
	}
	sm, ok := st.(slotManager)
	if !ok && (s.Select != "" || s.Add != "") {
		return errors.New("store does not support slot changes")
	}
	ctx := context.Background()
	switch {
	case s.Add != "":
		if err := sm.AddSlot(ctx, s.Add); err != nil {
			return err
		}
		logger.Info("slot added", "slot", s.Add)
	case s.Select != "":
		if err := sm.SelectSlot(ctx, s.Select); err != nil {
			return err
		}
		logger.Info("slot selected", "slot", s.Select)
	}

	active := ""
	if sm != nil {
		active = sm.ActiveSlot()
	}
	out := g.stdout()
	for _, name := range st.Slots() {
		marker := " "
		if name == active {
			marker = "*"
		}
		fmt.Fprintf(out, "%s %s\n", marker, name)
	}
	return nil
}

// Mode shows or changes whether the stick moves the cursor.
type Mode struct {
	Mode string `arg:"" optional:"" help:"mouse or alternative"`
}

func (m *Mode) Run(g *Globals, logger *slog.Logger) error {
	tr, err := g.Translator()
	if err != nil {
		return err
	}
	st, err := g.Store(logger)
	if err != nil {
		return err
	}
	if m.Mode != "" {
		fm, err := store.ParseFlipMode(m.Mode)
		if err != nil {
			return err
		}
		if err := st.SetFlipMode(context.Background(), fm); err != nil {
			return err
		}
		logger.Info("stick mode changed", "mode", string(fm))
	}
	fm := st.FlipMode()
	fmt.Fprintf(g.stdout(), "%s (%s)\n", tr.Translate(string(fm)), fm.Command())
	return nil
}

// Commands lists the verb catalog.
type Commands struct {
	Category   string `help:"Only list this category" enum:"all,keyboard,mouse,joystick,flipactions,infrared,housekeeping" default:"all"`
	Assignable bool   `help:"Only list commands that can be bound to a button"`
}

func (c *Commands) Run(g *Globals) error {
	tr, err := g.Translator()
	if err != nil {
		return err
	}
	cats := atcmd.Categories()
	if c.Category != "all" {
		cats = []atcmd.Category{atcmd.Category(c.Category)}
	}
	var t table
	for _, cat := range cats {
		for _, v := range atcmd.ByCategory(cat) {
			if c.Assignable && !v.Assignable {
				continue
			}
			t.add(v.Name, v.Param.String(), string(cat), tr.Translate(v.Name))
		}
	}
	return t.write(g.stdout())
}

// Report prints the 8-byte keyboard report of a key command, or one report
// per character for AT KW.
type Report struct {
	Command []string `arg:"" help:"AT KP, AT KH, AT KR or AT KW command"`
}

func (r *Report) Run(g *Globals) error {
	cmd := strings.Join(r.Command, " ")
	if verb, payload := atcmd.Split(cmd); verb == atcmd.WriteWord {
		reps, err := hidreport.FromText(payload)
		if err != nil {
			return err
		}
		for _, rep := range reps {
			fmt.Fprintln(g.stdout(), rep.String())
		}
		return nil
	}
	rep, err := hidreport.FromCommand(cmd)
	if err != nil {
		return err
	}
	fmt.Fprintln(g.stdout(), rep.String())
	return nil
}
