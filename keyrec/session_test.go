package keyrec

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(t *testing.T, s *Session, events ...KeyEvent) Snapshot {
	t.Helper()
	var snap Snapshot
	for _, e := range events {
		snap, _ = s.HandleKey(e)
	}
	return snap
}

func TestSessionBackspace(t *testing.T) {
	tests := []struct {
		name      string
		events    []KeyEvent
		want      string
		wantQueue int
	}{
		{name: "undo last character", events: []KeyEvent{char('h'), char('i'), backspace}, want: "AT KW h", wantQueue: 1},
		{name: "undo to empty", events: []KeyEvent{char('h'), backspace}, want: "", wantQueue: 0},
		{name: "undo shift leftovers", events: []KeyEvent{shift, KeyEvent{Key: "H", Code: 72}, backspace}, want: "", wantQueue: 0},
		{name: "backspace on empty is recorded", events: []KeyEvent{backspace}, want: "AT KP KEY_BACKSPACE", wantQueue: 1},
		{name: "backspace after special key is recorded", events: []KeyEvent{arrowLeft, backspace}, want: "AT KP KEY_LEFT KEY_BACKSPACE", wantQueue: 2},
		{
			name:      "altgr prefix is cleared",
			events:    []KeyEvent{ctrl, alt, altGr("@", 81), char('a'), backspace, backspace},
			want:      "",
			wantQueue: 0,
		},
		{
			name:      "altgr character kept",
			events:    []KeyEvent{ctrl, alt, altGr("@", 81), char('a'), backspace},
			want:      "AT KW @",
			wantQueue: 3,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession(catalog(t), nil)
			require.True(t, s.Start())
			snap := record(t, s, tt.events...)
			assert.Equal(t, tt.want, snap.Command)
			assert.Equal(t, tt.want != "", snap.CanCommit)
			assert.Len(t, s.Events(), tt.wantQueue)
		})
	}
}

func TestSessionIgnoresEvents(t *testing.T) {
	s := NewSession(catalog(t), nil)

	_, ok := s.HandleKey(char('a'))
	assert.False(t, ok, "idle session must not record")

	s.Start()
	_, ok = s.HandleKey(KeyEvent{Key: "a", Code: 65, Repeat: true})
	assert.False(t, ok)
	_, ok = s.HandleKey(KeyEvent{Key: "F13", Code: 124})
	assert.False(t, ok)
	snap, ok := s.HandleKey(char('a'))
	assert.True(t, ok)
	assert.Equal(t, "AT KW a", snap.Command)
	assert.Equal(t, "Write word: a", snap.Readable)
}

func TestSessionLifecycle(t *testing.T) {
	s := NewSession(catalog(t), nil)
	assert.Equal(t, Idle, s.State())

	require.True(t, s.Start())
	assert.False(t, s.Start())
	assert.Equal(t, "recording", s.State().String())

	record(t, s, chars("ab")...)
	snap := s.Reset()
	assert.Equal(t, Snapshot{}, snap)
	assert.Equal(t, Recording, s.State())

	record(t, s, chars("cd")...)
	s.Cancel()
	assert.Equal(t, Idle, s.State())
	assert.Empty(t, s.Events())

	require.True(t, s.Start())
	record(t, s, chars("ok")...)
	s.Stop()
	_, ok := s.HandleKey(char('x'))
	assert.False(t, ok)

	var committed string
	cmd, err := s.Save(func(c string) error {
		committed = c
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "AT KW ok", cmd)
	assert.Equal(t, cmd, committed)
	assert.Empty(t, s.Events())
}

func TestSessionSaveEmpty(t *testing.T) {
	s := NewSession(catalog(t), nil)
	s.Start()
	called := false
	_, err := s.Save(func(string) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, ErrEmptyCommand)
	assert.False(t, called)
	assert.Equal(t, Idle, s.State())
}

func TestSessionSaveError(t *testing.T) {
	s := NewSession(catalog(t), nil)
	s.Start()
	record(t, s, chars("x")...)
	boom := errors.New("store unavailable")
	cmd, err := s.Save(func(string) error { return boom })
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "AT KW x", cmd)
	assert.Len(t, s.Events(), 1, "queue survives a failed save")
}

func TestSnapshotDisplay(t *testing.T) {
	tr := catalog(t)
	readable, command := Snapshot{}.Display(tr)
	assert.Equal(t, "(none)", readable)
	assert.Equal(t, "(none)", command)

	readable, command = Snapshot{Command: "AT KW a", Readable: "Write word: a"}.Display(tr)
	assert.Equal(t, "Write word: a", readable)
	assert.Equal(t, "AT KW a", command)
}

func TestSessionWithoutTranslator(t *testing.T) {
	s := NewSession(nil, nil)
	s.Start()
	snap := record(t, s, chars("hi")...)
	assert.Equal(t, "AT KW hi", snap.Command)
	assert.Equal(t, "AT KW hi", snap.Readable)
}

func TestSessionSaveLogsAtDebug(t *testing.T) {
	var buf bytes.Buffer
	s := NewSession(catalog(t), slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})))
	s.Start()
	record(t, s, chars("ok")...)
	_, err := s.Save(func(string) error { return nil })
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}
