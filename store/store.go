package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/asterics/flipkeys/atcmd"
	"github.com/asterics/flipkeys/i18n"
	"github.com/asterics/flipkeys/keyrec"
)

var (
	ErrNotAssignable = errors.New("command cannot be bound to a button")
	ErrUnknownSlot   = errors.New("unknown slot")
)

// Store is the configuration the recorder writes into.
type Store interface {
	// Config returns the command bound to mode, or "".
	Config(mode ButtonMode) string
	SetButtonAction(ctx context.Context, mode ButtonMode, cmd string) error
	Slots() []string
	FlipMode() FlipMode
	SetFlipMode(ctx context.Context, m FlipMode) error
}

// Validate checks that cmd may be bound to mode.
func Validate(mode ButtonMode, cmd string) error {
	if !mode.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownButton, int(mode))
	}
	c, err := atcmd.Parse(cmd)
	if err != nil {
		return err
	}
	if v, _ := atcmd.Lookup(c.Verb); !v.Assignable {
		return fmt.Errorf("%w: %s", ErrNotAssignable, c.Verb)
	}
	return nil
}

// Memory is a Store without persistence.
type Memory struct {
	mu      sync.RWMutex
	actions map[ButtonMode]string
	slots   []string
	mode    FlipMode
}

// NewMemory returns a store with the given slot names, all buttons unbound.
func NewMemory(slots ...string) *Memory {
	return &Memory{
		actions: map[ButtonMode]string{},
		slots:   slots,
		mode:    ModeMouse,
	}
}

func (m *Memory) Config(mode ButtonMode) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.actions[mode]
}

func (m *Memory) SetButtonAction(_ context.Context, mode ButtonMode, cmd string) error {
	if err := Validate(mode, cmd); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.actions[mode] = cmd
	return nil
}

func (m *Memory) Slots() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]string(nil), m.slots...)
}

func (m *Memory) FlipMode() FlipMode {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.mode
}

func (m *Memory) SetFlipMode(_ context.Context, mode FlipMode) error {
	if mode != ModeMouse && mode != ModeAlternative {
		return fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mode = mode
	return nil
}

// Row is one line of the button overview.
type Row struct {
	Mode     ButtonMode
	Label    string
	Readable string
	Command  string
}

// ActionTable lists every button with its current binding.
func ActionTable(s Store, tr i18n.Translator) []Row {
	rows := make([]Row, 0, NumButtons)
	for _, b := range ButtonModes() {
		cmd := s.Config(b)
		rows = append(rows, Row{Mode: b, Label: b.Label(tr), Readable: keyrec.ToReadable(cmd, tr), Command: cmd})
	}
	return rows
}
