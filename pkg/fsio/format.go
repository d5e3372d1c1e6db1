package fsio

import (
	"fmt"
	"strings"
)

// Format selects the save-file extension. The extension is cosmetic; the
// binary layout inside the file is the same for all formats.
type Format uint8

const (
	Binary Format = iota // .bin
	Save                 // .sav
	Data                 // .dat
)

// Ext returns the file extension for f. Anything unrecognized falls back
// to ".bin".
func (f Format) Ext() string {
	switch f {
	case Save:
		return ".sav"
	case Data:
		return ".dat"
	}
	return ".bin"
}

func (f Format) String() string {
	return strings.TrimPrefix(f.Ext(), ".")
}

// ParseFormat converts a config or flag value ("bin", "sav", "dat", with or
// without a leading dot) into a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.TrimPrefix(strings.ToLower(s), ".") {
	case "bin", "binary":
		return Binary, nil
	case "sav", "save":
		return Save, nil
	case "dat", "data":
		return Data, nil
	}
	return Binary, fmt.Errorf("unknown save file format %q", s)
}
