package port

import (
	"bytes"
	"errors"
	"testing"

	"portcfg-go/errcode"
)

func TestLayout(t *testing.T) {
	d := Description()
	b, err := d.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}
	if len(b) != LayoutSize || LayoutSize != 144 {
		t.Fatalf("layout is %d bytes, want 144", len(b))
	}
	// alt0 group 0 first, little-endian.
	if b[0] != 0xBF || b[1] != 0x3C {
		t.Fatalf("first word = % X, want BF 3C", b[:2])
	}
	// gpio row starts after GroupCount words.
	if off := GroupCount * 2; b[off] != 0xBF || b[off+1] != 0x3C {
		t.Fatalf("gpio row = % X", b[off:off+2])
	}
	// alt7 group 6: 0x000B.
	if off := (7*GroupCount + 6) * 2; b[off] != 0x0B || b[off+1] != 0x00 {
		t.Fatalf("alt7 group 6 = % X", b[off:off+2])
	}

	again, _ := d.MarshalBinary()
	if !bytes.Equal(b, again) {
		t.Fatal("layout is not deterministic")
	}

	var back Table
	if err := back.UnmarshalBinary(b); err != nil {
		t.Fatalf("UnmarshalBinary: %v", err)
	}
	if back != d {
		t.Fatal("layout did not reproduce the table")
	}
}

func TestUnmarshalRejectsShortInput(t *testing.T) {
	var tb Table
	if err := tb.UnmarshalBinary(make([]byte, LayoutSize-1)); !errors.Is(err, errcode.InvalidLayout) {
		t.Fatalf("err = %v, want invalid_layout", err)
	}
}

func TestCheckVersion(t *testing.T) {
	if err := CheckVersion(Generated); err != nil {
		t.Fatalf("CheckVersion(Generated) = %v", err)
	}
	if Generated.SW.String() != "1.0.3" || Generated.ARRelease.String() != "4.3.1" {
		t.Fatalf("unexpected versions %s / %s", Generated.SW, Generated.ARRelease)
	}
	h := Generated
	h.SW.Patch = 4
	if err := CheckVersion(h); !errors.Is(err, errcode.VersionMismatch) {
		t.Fatalf("sw mismatch not reported: %v", err)
	}
	h = Generated
	h.VendorID = 0
	if err := CheckVersion(h); !errors.Is(err, errcode.VersionMismatch) {
		t.Fatalf("vendor mismatch not reported: %v", err)
	}
}
