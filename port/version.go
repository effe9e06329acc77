package port

import (
	"strconv"

	"portcfg-go/errcode"
)

// Version is a major.minor.patch triple.
type Version struct{ Major, Minor, Patch uint8 }

func (v Version) String() string {
	return strconv.Itoa(int(v.Major)) + "." + strconv.Itoa(int(v.Minor)) + "." + strconv.Itoa(int(v.Patch))
}

// Header identifies the driver build a configuration was generated for.
type Header struct {
	VendorID  uint16
	ARRelease Version
	SW        Version
}

// Generated is the header of this configuration.
var Generated = Header{
	VendorID:  43,
	ARRelease: Version{4, 3, 1},
	SW:        Version{1, 0, 3},
}

// CheckVersion reports a mismatch between the driver header h and the
// generated configuration. Vendor, AUTOSAR release and software version
// must all match exactly.
func CheckVersion(h Header) error {
	switch {
	case h.VendorID != Generated.VendorID:
		return errcode.New(errcode.VersionMismatch, "version", "vendor id")
	case h.ARRelease != Generated.ARRelease:
		return errcode.New(errcode.VersionMismatch, "version", "autosar release "+h.ARRelease.String())
	case h.SW != Generated.SW:
		return errcode.New(errcode.VersionMismatch, "version", "sw version "+h.SW.String())
	}
	return nil
}
