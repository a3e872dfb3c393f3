package cryptography

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrInvalidArguments is returned when a machine is called without a usable key.
var ErrInvalidArguments = errors.New("incorrect arguments")

// CipheringMachine is implemented by every table cipher in this package.
type CipheringMachine interface {
	Encrypt(text, key string) (string, error)
	Decrypt(text, key string) (string, error)
}

// Option configures a ciphering machine at construction time.
type Option func(*machineConfig)

type machineConfig struct {
	direct bool
	logger *slog.Logger
}

// WithDirect selects the machine mode. A direct machine (the default) keeps
// the output in reading order, a reverse machine returns it back to front.
func WithDirect(direct bool) Option {
	return func(c *machineConfig) {
		c.direct = direct
	}
}

// WithLogger sets a custom logger for the machine.
func WithLogger(l *slog.Logger) Option {
	return func(c *machineConfig) {
		c.logger = l
	}
}

// machine holds what the Vigenere and Beaufort machines share: the table,
// the mode flag and the key handling around a per-letter transform.
type machine struct {
	name   string
	table  Table
	direct bool
	logger *slog.Logger
}

func newMachine(name string, opts []Option) machine {
	cfg := machineConfig{
		direct: true,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}

	m := machine{
		name:   name,
		table:  NewTable(),
		direct: cfg.direct,
		logger: cfg.logger.With("cipher", name),
	}
	m.logger.Debug("ciphering machine created", "mode", m.mode())
	return m
}

// IsDirect reports whether the machine keeps its output in reading order.
func (m *machine) IsDirect() bool {
	return m.direct
}

func (m *machine) mode() string {
	if m.direct {
		return "direct"
	}
	return "reverse"
}

// keyShifts upper-cases the key and maps every letter to its index in the
// table column.
func (m *machine) keyShifts(op, key string) ([]int, error) {
	if key == "" {
		m.logger.Warn("rejected arguments", "op", op, "reason", "empty key")
		return nil, fmt.Errorf("%s: key is required: %w", op, ErrInvalidArguments)
	}

	upper := cases.Upper(language.Und).String(key)
	shifts := make([]int, 0, len(upper))
	for _, r := range upper {
		j := m.table.columnIndex(r)
		if j < 0 {
			m.logger.Warn("rejected arguments", "op", op, "reason", "key contains a non-letter")
			return nil, fmt.Errorf("%s: key must contain only letters A-Z: %w", op, ErrInvalidArguments)
		}
		shifts = append(shifts, j)
	}
	return shifts, nil
}

// transform runs letter over every rune of text. letter receives the
// upper-cased rune and the current key shift; when it reports false the
// original rune is kept and the key does not advance.
func (m *machine) transform(op, text, key string, letter func(r rune, shift int) (rune, bool)) (string, error) {
	shifts, err := m.keyShifts(op, key)
	if err != nil {
		return "", err
	}

	out := make([]rune, 0, len(text))
	pos := 0
	for _, r := range text {
		c, ok := letter(unicode.ToUpper(r), shifts[pos%len(shifts)])
		if !ok {
			out = append(out, r)
			continue
		}
		out = append(out, c)
		pos++
	}

	if !m.direct {
		slices.Reverse(out)
	}
	return string(out), nil
}
