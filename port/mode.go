package port

import (
	"strconv"
	"strings"

	"portcfg-go/errcode"
)

// Mode selects one pin-mux function. The order matches the rows of the
// generated table and of its binary layout.
type Mode uint8

const (
	ModeAlt0 Mode = iota // primary function; analog or disabled
	ModeGPIO
	ModeAlt2
	ModeAlt3
	ModeAlt4
	ModeAlt5
	ModeAlt6
	ModeAlt7

	ModeCount = int(ModeAlt7) + 1

	ModeAlt1 = ModeGPIO
)

// Valid reports whether m is one of the table's modes.
func (m Mode) Valid() bool { return int(m) < ModeCount }

func (m Mode) String() string {
	switch {
	case m == ModeGPIO:
		return "gpio"
	case m.Valid():
		return "alt" + strconv.Itoa(int(m))
	}
	return "mode(" + strconv.Itoa(int(m)) + ")"
}

// ParseMode accepts "gpio" or "altN" (N in 0..7), case-insensitive.
func ParseMode(s string) (Mode, error) {
	t := strings.ToLower(strings.TrimSpace(s))
	if t == "gpio" {
		return ModeGPIO, nil
	}
	if rest, ok := strings.CutPrefix(t, "alt"); ok && len(rest) == 1 {
		if n := rest[0] - '0'; n < uint8(ModeCount) {
			return Mode(n), nil
		}
	}
	return 0, errcode.New(errcode.InvalidMode, "parse", strconv.Quote(s))
}

// ModeSet is a bitset of modes.
type ModeSet uint8

func (s ModeSet) Has(m Mode) bool { return m.Valid() && s&(1<<m) != 0 }

func (s ModeSet) With(m Mode) ModeSet {
	if !m.Valid() {
		return s
	}
	return s | 1<<m
}

// Modes lists the members in table order.
func (s ModeSet) Modes() []Mode {
	var out []Mode
	for m := Mode(0); int(m) < ModeCount; m++ {
		if s.Has(m) {
			out = append(out, m)
		}
	}
	return out
}

func (s ModeSet) String() string {
	ms := s.Modes()
	parts := make([]string, len(ms))
	for i, m := range ms {
		parts[i] = m.String()
	}
	return strings.Join(parts, ",")
}
