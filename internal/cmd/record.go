package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/asterics/flipkeys/i18n"
	"github.com/asterics/flipkeys/internal/log"
	"github.com/asterics/flipkeys/internal/termkeys"
	"github.com/asterics/flipkeys/keyrec"
	"github.com/asterics/flipkeys/store"

	"golang.org/x/term"
	yaml "gopkg.in/yaml.v3"
)

var errCancelled = errors.New("recording cancelled")

// Record captures key strokes into a single command.
type Record struct {
	Button string `arg:"" optional:"" help:"Button to bind the command to (number or 'AT BM nn'); prints the command if omitted"`
	Events string `help:"Replay key events from a YAML or JSON file instead of reading the terminal" type:"existingfile"`
	DryRun bool   `help:"Print the command without saving it"`
}

// Run records from the terminal (or the events file) and saves the result.
func (r *Record) Run(g *Globals, logger *slog.Logger, raw log.RawLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tr, err := g.Translator()
	if err != nil {
		return err
	}
	var mode store.ButtonMode
	if r.Button != "" {
		if mode, err = store.ParseButtonMode(r.Button); err != nil {
			return err
		}
	}

	sess := keyrec.NewSession(tr, logger)
	sess.Start()

	if r.Events != "" {
		events, err := loadEvents(r.Events)
		if err != nil {
			return err
		}
		for _, e := range events {
			sess.HandleKey(e)
		}
		logger.Debug("replayed key events", "file", r.Events, "count", len(events), "queued", len(sess.Events()))
	} else {
		if err := recordTerminal(sess, tr, raw); err != nil {
			if errors.Is(err, errCancelled) {
				fmt.Fprintln(os.Stderr, "cancelled")
				return nil
			}
			return err
		}
	}

	if r.Button == "" || r.DryRun {
		snap := sess.Snapshot()
		if !snap.CanCommit {
			return keyrec.ErrEmptyCommand
		}
		readable, cmd := snap.Display(tr)
		fmt.Fprintf(g.stdout(), "%s\t%s\n", cmd, readable)
		return nil
	}

	st, err := g.Store(logger)
	if err != nil {
		return err
	}
	cmd, err := sess.Save(func(cmd string) error {
		return st.SetButtonAction(ctx, mode, cmd)
	})
	if err != nil {
		return fmt.Errorf("failed to save %s: %w", mode, err)
	}
	logger.Info("button action saved", "button", mode.ID(), "command", cmd)
	fmt.Fprintf(g.stdout(), "%s: %s (%s)\n", mode.Label(tr), keyrec.ToReadable(cmd, tr), cmd)
	return nil
}

func recordTerminal(sess *keyrec.Session, tr i18n.Translator, raw log.RawLogger) error {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return errors.New("stdin is not a terminal; use --events to replay a recording")
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to switch terminal to raw mode: %w", err)
	}
	defer func() { _ = term.Restore(fd, state) }()

	fmt.Fprint(os.Stderr, "recording: type keys, Ctrl-D saves, Ctrl-R clears, Ctrl-C cancels\r\n")
	err = recordLoop(os.Stdin, os.Stderr, sess, tr, raw)
	fmt.Fprint(os.Stderr, "\r\n")
	return err
}

// recordLoop feeds decoded terminal input into sess until a save or cancel
// control arrives or in hits EOF, which counts as save.
func recordLoop(in io.Reader, status io.Writer, sess *keyrec.Session, tr i18n.Translator, raw log.RawLogger) error {
	buf := make([]byte, 256)
	for {
		n, err := in.Read(buf)
		if n > 0 {
			raw.Log(buf[:n])
			for _, input := range termkeys.Decode(buf[:n]) {
				switch input.Control {
				case termkeys.ControlSave:
					return nil
				case termkeys.ControlCancel:
					sess.Cancel()
					return errCancelled
				case termkeys.ControlReset:
					printStatus(status, sess.Reset(), tr)
					continue
				}
				if snap, ok := sess.HandleKey(input.Event); ok {
					printStatus(status, snap, tr)
				}
			}
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func printStatus(w io.Writer, snap keyrec.Snapshot, tr i18n.Translator) {
	readable, cmd := snap.Display(tr)
	fmt.Fprintf(w, "\r\x1b[K%s  [%s]", readable, cmd)
}

func loadEvents(path string) ([]keyrec.KeyEvent, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	// JSON is valid YAML, so one decoder covers both formats.
	var events []keyrec.KeyEvent
	if err := yaml.Unmarshal(data, &events); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return events, nil
}
