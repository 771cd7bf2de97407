package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"
)

// DefaultSlot is created when a profile file does not exist yet.
const DefaultSlot = "default"

// Slot is a named set of button bindings. Actions are keyed by button ID.
type Slot struct {
	Name    string            `json:"name" yaml:"name" toml:"name"`
	Actions map[string]string `json:"actions" yaml:"actions" toml:"actions"`
}

// Document is the on-disk form of a profile.
type Document struct {
	ActiveSlot string   `json:"activeSlot" yaml:"activeSlot" toml:"activeSlot"`
	FlipMode   FlipMode `json:"flipMode" yaml:"flipMode" toml:"flipMode"`
	Slots      []Slot   `json:"slots" yaml:"slots" toml:"slots"`
}

// Profile is a Store backed by a JSON, YAML or TOML file, chosen by the
// file extension. Every change is written back immediately.
type Profile struct {
	path   string
	logger *slog.Logger

	mu  sync.RWMutex
	doc Document
}

// OpenProfile loads path, or starts a profile with one empty slot if the
// file does not exist. The file is only created on the first change.
func OpenProfile(path string, logger *slog.Logger) (*Profile, error) {
	if logger == nil {
		logger = slog.Default()
	}
	p := &Profile{path: path, logger: logger}
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		p.doc = Document{
			ActiveSlot: DefaultSlot,
			FlipMode:   ModeMouse,
			Slots:      []Slot{{Name: DefaultSlot, Actions: map[string]string{}}},
		}
		logger.Debug("profile not found, using defaults", "path", path)
		return p, nil
	case err != nil:
		return nil, err
	}
	if err := unmarshal(path, data, &p.doc); err != nil {
		return nil, fmt.Errorf("failed to parse profile %s: %w", path, err)
	}
	if err := p.doc.normalize(); err != nil {
		return nil, fmt.Errorf("profile %s: %w", path, err)
	}
	return p, nil
}

func (d *Document) normalize() error {
	if len(d.Slots) == 0 {
		d.Slots = []Slot{{Name: DefaultSlot}}
	}
	for i := range d.Slots {
		if d.Slots[i].Actions == nil {
			d.Slots[i].Actions = map[string]string{}
		}
	}
	if d.ActiveSlot == "" {
		d.ActiveSlot = d.Slots[0].Name
	}
	if d.slot(d.ActiveSlot) == nil {
		return fmt.Errorf("%w: %q", ErrUnknownSlot, d.ActiveSlot)
	}
	if d.FlipMode == "" {
		d.FlipMode = ModeMouse
	}
	return nil
}

func (d *Document) slot(name string) *Slot {
	for i := range d.Slots {
		if d.Slots[i].Name == name {
			return &d.Slots[i]
		}
	}
	return nil
}

func (p *Profile) Path() string { return p.path }

// ActiveSlot returns the name of the slot Config and SetButtonAction use.
func (p *Profile) ActiveSlot() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.doc.ActiveSlot
}

func (p *Profile) Config(mode ButtonMode) string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.doc.slot(p.doc.ActiveSlot).Actions[mode.ID()]
}

func (p *Profile) SetButtonAction(ctx context.Context, mode ButtonMode, cmd string) error {
	if err := Validate(mode, cmd); err != nil {
		return err
	}
	return p.update(ctx, func(d *Document) error {
		d.slot(d.ActiveSlot).Actions[mode.ID()] = cmd
		return nil
	})
}

func (p *Profile) Slots() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	names := make([]string, 0, len(p.doc.Slots))
	for _, s := range p.doc.Slots {
		names = append(names, s.Name)
	}
	return names
}

// SelectSlot makes name the active slot.
func (p *Profile) SelectSlot(ctx context.Context, name string) error {
	return p.update(ctx, func(d *Document) error {
		if d.slot(name) == nil {
			return fmt.Errorf("%w: %q", ErrUnknownSlot, name)
		}
		d.ActiveSlot = name
		return nil
	})
}

// AddSlot creates a slot holding a copy of the active slot's bindings and
// selects it.
func (p *Profile) AddSlot(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrUnknownSlot)
	}
	return p.update(ctx, func(d *Document) error {
		if d.slot(name) != nil {
			return fmt.Errorf("slot %q already exists", name)
		}
		actions := map[string]string{}
		for k, v := range d.slot(d.ActiveSlot).Actions {
			actions[k] = v
		}
		d.Slots = append(d.Slots, Slot{Name: name, Actions: actions})
		d.ActiveSlot = name
		return nil
	})
}

func (p *Profile) FlipMode() FlipMode {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.doc.FlipMode
}

func (p *Profile) SetFlipMode(ctx context.Context, m FlipMode) error {
	if m != ModeMouse && m != ModeAlternative {
		return fmt.Errorf("%w: %q", ErrUnknownMode, m)
	}
	return p.update(ctx, func(d *Document) error {
		d.FlipMode = m
		return nil
	})
}

// update applies fn to a copy of the document and persists it. The in-memory
// state only changes once the file was written.
func (p *Profile) update(ctx context.Context, fn func(*Document) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	next := p.doc.clone()
	if err := fn(&next); err != nil {
		return err
	}
	if err := p.write(next); err != nil {
		return err
	}
	p.doc = next
	p.logger.Debug("profile saved", "path", p.path, "slot", next.ActiveSlot)
	return nil
}

func (d Document) clone() Document {
	out := d
	out.Slots = make([]Slot, len(d.Slots))
	for i, s := range d.Slots {
		actions := make(map[string]string, len(s.Actions))
		for k, v := range s.Actions {
			actions[k] = v
		}
		out.Slots[i] = Slot{Name: s.Name, Actions: actions}
	}
	return out
}

func (p *Profile) write(d Document) error {
	data, err := marshal(p.path, d)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p.path), 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(p.path), filepath.Base(p.path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(tmp.Name()) }()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), p.path)
}

func format(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	case ".toml":
		return "toml"
	default:
		return "json"
	}
}

func marshal(path string, d Document) ([]byte, error) {
	switch format(path) {
	case "yaml":
		return yaml.Marshal(d)
	case "toml":
		return toml.Marshal(d)
	default:
		return json.MarshalIndent(d, "", "  ")
	}
}

func unmarshal(path string, data []byte, d *Document) error {
	switch format(path) {
	case "yaml":
		return yaml.Unmarshal(data, d)
	case "toml":
		return toml.Unmarshal(data, d)
	default:
		return json.Unmarshal(data, d)
	}
}
