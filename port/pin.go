package port

import (
	"strconv"
	"strings"

	"portcfg-go/errcode"
	"portcfg-go/x/mathx"
)

// Pin is a flat pad number: port index * 32 + pad index within the port.
type Pin uint16

const (
	GroupWidth = 16
	GroupCount = 9
	MaxPin     = Pin(GroupCount*GroupWidth - 1)

	padsPerPort = 32
)

// Group returns the 16-pad group holding p and p's bit within it.
func (p Pin) Group() (group int, bit uint) {
	g, b := mathx.SplitIndex(uint16(p), GroupWidth)
	return int(g), uint(b)
}

// Valid reports whether p falls inside the table.
func (p Pin) Valid() bool { return mathx.Between(p, 0, MaxPin) }

// String gives the S32K pad name, PTA0..PTE15.
func (p Pin) String() string {
	if !p.Valid() {
		return "pin(" + strconv.Itoa(int(p)) + ")"
	}
	port := byte('A' + p/padsPerPort)
	return "PT" + string(port) + strconv.Itoa(int(p%padsPerPort))
}

// ports is the number of PTx ports the table reaches into (A..E).
func ports() int { return int(mathx.CeilDiv(uint(MaxPin)+1, padsPerPort)) }

// ParsePin accepts a pad name (PTB7) or a decimal pad number (39). Numbers
// are plain digits: no sign, no leading zeros.
func ParsePin(s string) (Pin, error) {
	t := strings.ToUpper(strings.TrimSpace(s))
	if rest, ok := strings.CutPrefix(t, "PT"); ok && len(rest) >= 2 {
		port := int(rest[0]) - 'A'
		n, ok := parseDecimal(rest[1:])
		if ok && mathx.Between(port, 0, ports()-1) && mathx.Between(n, 0, padsPerPort-1) {
			if p := Pin(port*padsPerPort + n); p.Valid() {
				return p, nil
			}
		}
		return 0, errcode.New(errcode.UnknownPin, "parse", strconv.Quote(s))
	}
	n, ok := parseDecimal(t)
	if !ok || !mathx.Between(n, 0, int(MaxPin)) {
		return 0, errcode.New(errcode.UnknownPin, "parse", strconv.Quote(s))
	}
	return Pin(n), nil
}

func parseDecimal(s string) (int, bool) {
	if s == "" || len(s) > 3 || (len(s) > 1 && s[0] == '0') {
		return 0, false
	}
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}
