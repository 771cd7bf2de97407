package atcmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

var (
	ErrEmpty        = errors.New("empty command")
	ErrTooLong      = errors.New("command too long")
	ErrUnknownVerb  = errors.New("unknown command")
	ErrBadParameter = errors.New("invalid parameter")
)

// Command is a parsed AT command: a verb from the catalog and its raw
// payload. String() yields the wire form.
type Command struct {
	Verb    string
	Payload string
}

// New builds a command without validating it.
func New(verb, payload string) Command {
	return Command{Verb: verb, Payload: payload}
}

func (c Command) String() string {
	if c.Payload == "" {
		return c.Verb
	}
	return c.Verb + " " + c.Payload
}

// Keys returns the key identifiers of a keys verb payload.
func (c Command) Keys() []string {
	return strings.Fields(c.Payload)
}

// Split cuts a command string at the fixed prefix width. It never panics on
// short input: missing parts come back empty.
func Split(s string) (verb, payload string) {
	if len(s) <= LengthPrefix-1 {
		return s, ""
	}
	return s[:LengthPrefix-1], s[LengthPrefix:]
}

// Truncate caps s at MaxLength bytes without splitting a UTF-8 sequence.
func Truncate(s string) string {
	if len(s) <= MaxLength {
		return s
	}
	n := MaxLength
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

// TruncateKeys caps a keys command at MaxLength by dropping whole trailing
// key identifiers, so the result still parses.
func TruncateKeys(s string) string {
	if len(s) <= MaxLength {
		return s
	}
	cut := strings.LastIndexByte(s[:MaxLength+1], ' ')
	if cut < LengthPrefix {
		return Truncate(s)
	}
	return strings.TrimRight(s[:cut], " ")
}

// WithData appends user supplied data to a verb, e.g. the slot name of AT LO.
func WithData(verb, data string) string {
	return Truncate(New(verb, strings.TrimSpace(data)).String())
}

// Parse validates s against the verb catalog.
func Parse(s string) (Command, error) {
	if s == "" {
		return Command{}, ErrEmpty
	}
	if len(s) > MaxLength {
		return Command{}, fmt.Errorf("%w: %d > %d bytes", ErrTooLong, len(s), MaxLength)
	}
	if len(s) > LengthPrefix-1 && s[LengthPrefix-1] != ' ' {
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownVerb, s)
	}
	name, payload := Split(s)
	verb, ok := Lookup(name)
	if !ok {
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownVerb, name)
	}
	if err := checkParam(verb, payload); err != nil {
		return Command{}, err
	}
	return Command{Verb: verb.Name, Payload: payload}, nil
}

func checkParam(v Verb, payload string) error {
	switch v.Param {
	case ParamNone:
		if strings.TrimSpace(payload) != "" {
			return fmt.Errorf("%w: %s takes no parameter", ErrBadParameter, v.Name)
		}
	case ParamInt:
		if _, err := strconv.Atoi(payload); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrBadParameter, v.Name, err)
		}
	case ParamUint:
		if _, err := strconv.ParseUint(payload, 10, 32); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrBadParameter, v.Name, err)
		}
	case ParamString:
		if payload == "" {
			return fmt.Errorf("%w: %s needs a text", ErrBadParameter, v.Name)
		}
	case ParamKeys:
		keys := strings.Fields(payload)
		if len(keys) == 0 {
			return fmt.Errorf("%w: %s needs at least one key", ErrBadParameter, v.Name)
		}
		for _, k := range keys {
			if !IsKeyName(k) {
				return fmt.Errorf("%w: unknown key %q", ErrBadParameter, k)
			}
		}
	}
	return nil
}
