package value

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/ssargent/mimir/pkg/codec"
)

// Decode errors. Per-kind decoders wrap these with detail; callers match with
// errors.Is.
var (
	// ErrValueSize means a payload's length does not fit the kind's layout.
	ErrValueSize = errors.New("value size mismatch")

	// ErrBoolByte means a bool payload held something other than 0 or 1.
	ErrBoolByte = errors.New("bool byte out of range")
)

// Value is one typed datum in decoded form. Encode produces the payload bytes
// stored in a record; the kind's DecodeX function inverts it exactly.
type Value interface {
	// Tag returns the record tag this kind is stored under.
	Tag() codec.Tag

	// Encode returns the payload byte layout for this value.
	Encode() []byte

	// String returns a human-readable rendering for logs and CLI output.
	String() string
}

// Decode interprets payload bytes according to tag. It is the dynamic
// counterpart of the per-kind DecodeX functions; use those when the kind is
// known statically.
func Decode(tag codec.Tag, data []byte) (Value, error) {
	switch tag {
	case codec.TagFloat:
		v, err := DecodeFloat(data)
		if err != nil {
			return nil, err
		}
		return v, nil
	case codec.TagBool:
		v, err := DecodeBool(data)
		if err != nil {
			return nil, err
		}
		return v, nil
	case codec.TagInt:
		v, err := DecodeInt(data)
		if err != nil {
			return nil, err
		}
		return v, nil
	case codec.TagString:
		v, err := DecodeString(data)
		if err != nil {
			return nil, err
		}
		return v, nil
	case codec.TagEnum:
		v, err := DecodeEnum(data)
		if err != nil {
			return nil, err
		}
		return v, nil
	case codec.TagActor:
		v, err := DecodeActorRef(data)
		if err != nil {
			return nil, err
		}
		return v, nil
	case codec.TagVector:
		v, err := DecodeVector(data)
		if err != nil {
			return nil, err
		}
		return v, nil
	case codec.TagRotator:
		v, err := DecodeRotator(data)
		if err != nil {
			return nil, err
		}
		return v, nil
	case codec.TagTransform:
		v, err := DecodeTransform(data)
		if err != nil {
			return nil, err
		}
		return v, nil
	}
	return nil, fmt.Errorf("%w: %s", codec.ErrMalformedTag, tag)
}

func checkSize(kind string, data []byte, want int) error {
	if len(data) != want {
		return fmt.Errorf("%w: %s needs %d bytes, got %d", ErrValueSize, kind, want, len(data))
	}
	return nil
}

func appendFloat32(dst []byte, f float32) []byte {
	return binary.LittleEndian.AppendUint32(dst, math.Float32bits(f))
}

func float32At(data []byte, off int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(data[off:]))
}
