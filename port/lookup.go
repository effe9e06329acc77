package port

import "portcfg-go/errcode"

// SetPinModeAPI mirrors the driver option the table is generated under.
// Without the set-pin-mode API the driver carries no table at all.
const SetPinModeAPI = true

// IsPinValidInMode reports whether pin can be routed to mode on this device.
//
// It is a pure read of constant data and safe for concurrent use. Range
// checking belongs to the caller; values outside the table report false.
func IsPinValidInMode(mode Mode, pin Pin) bool {
	return pinDescription.Has(mode, pin)
}

// Entry returns the raw mask for one (mode, group) cell, or 0 outside the table.
func Entry(mode Mode, group int) uint16 {
	if !mode.Valid() || group < 0 || group >= GroupCount {
		return 0
	}
	return pinDescription[mode][group]
}

// Description returns a copy of the generated table.
func Description() Table { return pinDescription }

// ModesOf is the union of modes pin can be routed to.
func ModesOf(pin Pin) ModeSet {
	var s ModeSet
	for m := Mode(0); int(m) < ModeCount; m++ {
		if IsPinValidInMode(m, pin) {
			s = s.With(m)
		}
	}
	return s
}

// PinsIn lists, in ascending order, every pad that supports mode.
func PinsIn(mode Mode) []Pin {
	if !mode.Valid() {
		return nil
	}
	var out []Pin
	for g, mask := range pinDescription[mode] {
		for b := 0; mask != 0; b, mask = b+1, mask>>1 {
			if mask&1 != 0 {
				out = append(out, Pin(g*GroupWidth+b))
			}
		}
	}
	return out
}

// Check runs the parameter checks a mode-set routine performs before
// touching the mux registers.
func Check(mode Mode, pin Pin) error {
	switch {
	case !mode.Valid():
		return errcode.New(errcode.InvalidMode, "check", mode.String())
	case !pin.Valid():
		return errcode.New(errcode.UnknownPin, "check", pin.String())
	case !IsPinValidInMode(mode, pin):
		return errcode.New(errcode.ModeUnavailable, "check", pin.String()+" in "+mode.String())
	}
	return nil
}
