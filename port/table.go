package port

import (
	"encoding/binary"
	"strconv"

	"portcfg-go/errcode"
)

// Table is the capability table: one 16-bit mask per (mode, group).
type Table [ModeCount][GroupCount]uint16

// LayoutSize is the length of a Table's binary layout.
const LayoutSize = ModeCount * GroupCount * 2

// Has reports whether pin p can be routed to mode m. Modes and pins outside
// the table report false.
func (t *Table) Has(m Mode, p Pin) bool {
	if !m.Valid() {
		return false
	}
	g, b := p.Group()
	if g >= GroupCount {
		return false
	}
	return (t[m][g]>>b)&1 != 0
}

// AppendBinary appends the layout: modes in table order, each as
// GroupCount little-endian words in ascending group order.
func (t *Table) AppendBinary(b []byte) ([]byte, error) {
	for m := range t {
		for g := range t[m] {
			b = binary.LittleEndian.AppendUint16(b, t[m][g])
		}
	}
	return b, nil
}

func (t *Table) MarshalBinary() ([]byte, error) {
	return t.AppendBinary(make([]byte, 0, LayoutSize))
}

func (t *Table) UnmarshalBinary(data []byte) error {
	if len(data) != LayoutSize {
		return errcode.New(errcode.InvalidLayout, "unmarshal",
			"want "+strconv.Itoa(LayoutSize)+" bytes, got "+strconv.Itoa(len(data)))
	}
	for m := range t {
		for g := range t[m] {
			off := (m*GroupCount + g) * 2
			t[m][g] = binary.LittleEndian.Uint16(data[off:])
		}
	}
	return nil
}
