package log

import (
	"bytes"
	"fmt"
	"io"
	"sync"
	"time"
)

// RawLogger records the bytes read from the terminal while recording, to
// debug escape sequences that do not decode.
type RawLogger interface {
	Log(data []byte)
}

type rawLogger struct {
	w  io.Writer
	mu sync.Mutex
}

// NewRaw creates a RawLogger. A nil writer disables it.
func NewRaw(w io.Writer) RawLogger {
	return &rawLogger{w: w}
}

// Log writes one line with timestamp, hex dump and the printable part.
func (r *rawLogger) Log(data []byte) {
	if len(data) == 0 || r.w == nil {
		return
	}

	var hexbuf, text bytes.Buffer
	const hexdigits = "0123456789abcdef"
	for i, b := range data {
		if i > 0 {
			hexbuf.WriteByte(' ')
		}
		hexbuf.WriteByte(hexdigits[b>>4])
		hexbuf.WriteByte(hexdigits[b&0x0f])
		if b >= 0x20 && b < 0x7f {
			text.WriteByte(b)
		} else {
			text.WriteByte('.')
		}
	}

	line := fmt.Sprintf("%s input: %d bytes, hex: %s, text: %q\n",
		time.Now().Format("2006/01/02 15:04:05"),
		len(data),
		hexbuf.String(),
		text.String())

	r.mu.Lock()
	_, _ = r.w.Write([]byte(line))
	r.mu.Unlock()
}
