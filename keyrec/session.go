package keyrec

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/asterics/flipkeys/i18n"
	"github.com/asterics/flipkeys/internal/log"
)

// NoneKey is the catalog key shown in place of an empty command.
const NoneKey = "NONE_BRACKET"

var ErrEmptyCommand = errors.New("nothing recorded")

// State of a recording session.
type State int

const (
	Idle State = iota
	Recording
)

func (s State) String() string {
	if s == Recording {
		return "recording"
	}
	return "idle"
}

// Snapshot is what the presentation layer shows after every accepted key.
type Snapshot struct {
	Command  string
	Readable string
	// CanCommit gates the confirm control.
	CanCommit bool
}

// Session records key events for one button action. It is not safe for
// concurrent use; callers deliver events one at a time.
type Session struct {
	state  State
	queue  Queue
	tr     i18n.Translator
	logger *slog.Logger
}

// NewSession returns an idle session rendering labels through tr.
// A nil tr leaves labels untranslated, a nil logger discards output.
func NewSession(tr i18n.Translator, logger *slog.Logger) *Session {
	if tr == nil {
		tr = i18n.TranslatorFunc(untranslated)
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Session{tr: tr, logger: logger}
}

func untranslated(key string, args ...string) string {
	return strings.TrimSpace(key + " " + strings.Join(args, " "))
}

func (s *Session) State() State { return s.state }

// Events returns a copy of the recorded queue.
func (s *Session) Events() Queue {
	return append(Queue(nil), s.queue...)
}

// Start begins a new recording with an empty queue. It returns false if a
// recording is already running, which is left untouched.
func (s *Session) Start() bool {
	if s.state == Recording {
		return false
	}
	s.state = Recording
	s.queue = nil
	s.logger.Debug("recording started")
	return true
}

// Stop ends key capture but keeps the queue so it can still be saved.
func (s *Session) Stop() {
	s.state = Idle
}

// HandleKey feeds one key-down into the session. Repeats, unsupported keys
// and events outside a recording are ignored and reported as not accepted.
//
// Backspace removes the last event while the queue spells text. When the
// remaining queue no longer spells any text, it is cleared completely so no
// dangling modifiers survive.
func (s *Session) HandleKey(e KeyEvent) (Snapshot, bool) {
	if s.state != Recording || e.Repeat {
		return s.Snapshot(), false
	}
	sym := NormalizeKeycode(e)
	if !IsSupported(sym) {
		s.logger.Log(context.Background(), log.LevelTrace, "unsupported key ignored", "key", e.Key, "code", e.Code)
		return s.Snapshot(), false
	}

	if text, ok := ExtractText(s.queue); sym == SymBackspace && ok && text != "" {
		s.queue = s.queue[:len(s.queue)-1]
		if rest, ok := ExtractText(s.queue); !ok || rest == "" {
			s.queue = nil
		}
		s.logger.Log(context.Background(), log.LevelTrace, "undo", "remaining", len(s.queue))
	} else {
		s.queue = append(s.queue, e)
		s.logger.Log(context.Background(), log.LevelTrace, "key recorded", "key", e.Key, "symbol", sym.String())
	}
	return s.Snapshot(), true
}

// Reset empties the queue without leaving the current state.
func (s *Session) Reset() Snapshot {
	s.queue = nil
	return s.Snapshot()
}

// Cancel drops the recording and returns to Idle.
func (s *Session) Cancel() {
	s.queue = nil
	s.state = Idle
	s.logger.Debug("recording cancelled")
}

// Save stops the recording and hands the command to commit. Nothing is
// committed when the queue is empty. The queue is cleared once commit
// succeeds.
func (s *Session) Save(commit func(cmd string) error) (string, error) {
	s.state = Idle
	cmd := BuildCommand(s.queue)
	if cmd == "" {
		return "", ErrEmptyCommand
	}
	if err := commit(cmd); err != nil {
		return cmd, err
	}
	s.logger.Debug("action saved", "command", cmd)
	s.queue = nil
	return cmd, nil
}

// Snapshot recomputes the current command and its label.
func (s *Session) Snapshot() Snapshot {
	cmd := BuildCommand(s.queue)
	return Snapshot{
		Command:   cmd,
		Readable:  ToReadable(cmd, s.tr),
		CanCommit: cmd != "",
	}
}

// Display returns the label and command with the placeholder for "nothing
// recorded" filled in.
func (s Snapshot) Display(tr i18n.Translator) (readable, command string) {
	none := tr.Translate(NoneKey)
	readable, command = s.Readable, s.Command
	if readable == "" {
		readable = none
	}
	if command == "" {
		command = none
	}
	return readable, command
}
