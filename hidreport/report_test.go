package hidreport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asterics/flipkeys/atcmd"
)

func TestFromCommand(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    []byte
		wantErr error
	}{
		{name: "ctrl alt delete", in: "AT KP KEY_CTRL KEY_ALT KEY_DELETE", want: []byte{0x05, 0, 0x4C, 0, 0, 0, 0, 0}},
		{name: "single key", in: "AT KH KEY_A", want: []byte{0, 0, 0x04, 0, 0, 0, 0, 0}},
		{name: "altgr", in: "AT KP KEY_RIGHT_ALT KEY_Q", want: []byte{ModRightAlt, 0, 0x14, 0, 0, 0, 0, 0}},
		{name: "duplicate key", in: "AT KR KEY_LEFT KEY_LEFT KEY_UP", want: []byte{0, 0, 0x50, 0x52, 0, 0, 0, 0}},
		{name: "six keys", in: "AT KP KEY_A KEY_B KEY_C KEY_D KEY_E KEY_F KEY_SHIFT", want: []byte{ModLeftShift, 0, 4, 5, 6, 7, 8, 9}},
		{name: "seven keys", in: "AT KP KEY_A KEY_B KEY_C KEY_D KEY_E KEY_F KEY_G", wantErr: ErrTooManyKeys},
		{name: "write word", in: "AT KW hello", wantErr: ErrNotKeyCommand},
		{name: "invalid", in: "AT KP", wantErr: atcmd.ErrBadParameter},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := FromCommand(tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, r.Bytes())
		})
	}
}

func TestEveryDeviceKeyHasAUsage(t *testing.T) {
	for _, name := range atcmd.KeyNames {
		_, isMod := Modifier(name)
		_, isKey := Usage(name)
		assert.True(t, isMod != isKey, name)
	}
}

func TestReportString(t *testing.T) {
	r, err := FromKeys("KEY_CTRL", "KEY_C")
	require.NoError(t, err)
	assert.Equal(t, "01 00 06 00 00 00 00 00", r.String())
	assert.Equal(t, 1, r.Pressed())

	_, err = FromKeys("KEY_NOPE")
	assert.ErrorIs(t, err, ErrUnknownKey)
}

func TestFromText(t *testing.T) {
	reps, err := FromText("Hi!")
	require.NoError(t, err)
	require.Len(t, reps, 3)
	assert.Equal(t, []byte{ModLeftShift, 0, 0x0B, 0, 0, 0, 0, 0}, reps[0].Bytes())
	assert.Equal(t, []byte{0, 0, 0x0C, 0, 0, 0, 0, 0}, reps[1].Bytes())
	assert.Equal(t, []byte{ModLeftShift, 0, 0x1E, 0, 0, 0, 0, 0}, reps[2].Bytes())

	reps, err = FromText("a b\n")
	require.NoError(t, err)
	assert.Equal(t, uint8(0x2C), reps[1].Keys[0])
	assert.Equal(t, uint8(0x28), reps[3].Keys[0])

	_, err = FromText("ö")
	assert.ErrorIs(t, err, ErrUnknownKey)
}
