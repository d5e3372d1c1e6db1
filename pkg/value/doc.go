// Package value implements the typed payload layouts stored inside mimir
// save-file records.
//
// Each kind is a pure, symmetric codec pair: Encode produces the payload
// bytes and the kind's DecodeX function inverts them exactly, so
// DecodeX(v.Encode()) == v for every representable v. Package codec frames
// these payloads into records without interpreting them; the record tag says
// which layout applies, and Decode dispatches on it.
//
// # Layouts
//
// All integers and float bit patterns are little-endian:
//
//	float      4 bytes    IEEE 754 single-precision bits
//	bool       1 byte     0x00 or 0x01, strict on decode
//	int        4 bytes    two's-complement int32
//	string     4 + n      u32 byte length, then UTF-8 bytes
//	enum       1/2/4/8    unsigned, at the width of the underlying type
//	actor      4 + n      object path, same layout as string
//	vector     12 bytes   x, y, z float32
//	rotator    12 bytes   pitch, yaw, roll float32
//	transform  36 bytes   rotator, then translation and scale vectors
//
// Enum widths are chosen at encode time (Enum8 through Enum64) and inferred
// from the payload length at decode time. Decoders reject payloads whose
// length does not fit the layout with ErrValueSize instead of guessing.
package value
