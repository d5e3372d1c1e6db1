package codec

import "fmt"

// Tag identifies the semantic type of an entry's payload. The codec never
// interprets payload bytes; it only validates that the tag is one it knows.
type Tag uint8

// Known payload tags. The numeric values are part of the file format and must
// not be reordered.
const (
	TagFloat     Tag = iota // 32-bit floating-point number
	TagBool                 // boolean
	TagInt                  // 32-bit signed integer
	TagString               // length-prefixed UTF-8 text
	TagEnum                 // enumerated constant, 8/16/32/64-bit
	TagActor                // world-object reference (object path)
	TagVector               // 3D point (x, y, z)
	TagRotator              // 3D rotation (pitch, yaw, roll)
	TagTransform            // rotation + translation + scale
)

// Valid reports whether t is a known tag. Unknown tags make a file
// undecodable rather than being skipped, so corruption cannot silently drop
// entries.
func (t Tag) Valid() bool {
	return t <= TagTransform
}

func (t Tag) String() string {
	switch t {
	case TagFloat:
		return "float"
	case TagBool:
		return "bool"
	case TagInt:
		return "int"
	case TagString:
		return "string"
	case TagEnum:
		return "enum"
	case TagActor:
		return "actor"
	case TagVector:
		return "vector"
	case TagRotator:
		return "rotator"
	case TagTransform:
		return "transform"
	}
	return fmt.Sprintf("tag(%d)", uint8(t))
}
