package value

import (
	"encoding/binary"
	"fmt"
	"strconv"

	"github.com/ssargent/mimir/pkg/codec"
)

// Float is a 32-bit floating-point number. Payload: 4 bytes, the IEEE 754
// bits little-endian, so NaN payloads and the sign of zero survive a round
// trip bit for bit.
type Float float32

func (f Float) Tag() codec.Tag { return codec.TagFloat }

func (f Float) Encode() []byte {
	return appendFloat32(make([]byte, 0, 4), float32(f))
}

func (f Float) String() string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}

// DecodeFloat inverts Float.Encode.
func DecodeFloat(data []byte) (Float, error) {
	if err := checkSize("float", data, 4); err != nil {
		return 0, err
	}
	return Float(float32At(data, 0)), nil
}

// Bool is a boolean. Payload: 1 byte, 0x00 or 0x01; any other byte is
// rejected on decode rather than coerced.
type Bool bool

func (b Bool) Tag() codec.Tag { return codec.TagBool }

func (b Bool) Encode() []byte {
	if b {
		return []byte{1}
	}
	return []byte{0}
}

func (b Bool) String() string {
	return strconv.FormatBool(bool(b))
}

// DecodeBool inverts Bool.Encode.
func DecodeBool(data []byte) (Bool, error) {
	if err := checkSize("bool", data, 1); err != nil {
		return false, err
	}
	switch data[0] {
	case 0:
		return false, nil
	case 1:
		return true, nil
	}
	return false, fmt.Errorf("%w: 0x%02x", ErrBoolByte, data[0])
}

// Int is a 32-bit signed integer. Payload: 4 bytes, little-endian two's
// complement.
type Int int32

func (i Int) Tag() codec.Tag { return codec.TagInt }

func (i Int) Encode() []byte {
	return binary.LittleEndian.AppendUint32(make([]byte, 0, 4), uint32(i))
}

func (i Int) String() string {
	return strconv.FormatInt(int64(i), 10)
}

// DecodeInt inverts Int.Encode.
func DecodeInt(data []byte) (Int, error) {
	if err := checkSize("int", data, 4); err != nil {
		return 0, err
	}
	return Int(binary.LittleEndian.Uint32(data)), nil
}

// String is UTF-8 text. Payload: a 4-byte little-endian byte length followed
// by exactly that many bytes.
type String string

func (s String) Tag() codec.Tag { return codec.TagString }

func (s String) Encode() []byte {
	buf := binary.LittleEndian.AppendUint32(make([]byte, 0, 4+len(s)), uint32(len(s)))
	return append(buf, s...)
}

func (s String) String() string {
	return string(s)
}

// DecodeString inverts String.Encode. The declared length must account for
// every byte after the prefix.
func DecodeString(data []byte) (String, error) {
	s, err := decodeLenPrefixed("string", data)
	return String(s), err
}

// ActorRef is a reference to a world object, stored as its object path.
// Payload layout is identical to String.
type ActorRef string

func (a ActorRef) Tag() codec.Tag { return codec.TagActor }

func (a ActorRef) Encode() []byte {
	return String(a).Encode()
}

func (a ActorRef) String() string {
	return string(a)
}

// DecodeActorRef inverts ActorRef.Encode.
func DecodeActorRef(data []byte) (ActorRef, error) {
	s, err := decodeLenPrefixed("actor ref", data)
	return ActorRef(s), err
}

func decodeLenPrefixed(kind string, data []byte) (string, error) {
	if len(data) < 4 {
		return "", fmt.Errorf("%w: %s needs a 4-byte length prefix, got %d bytes",
			ErrValueSize, kind, len(data))
	}
	n := int(binary.LittleEndian.Uint32(data))
	if n != len(data)-4 {
		return "", fmt.Errorf("%w: %s declares %d bytes but %d follow the prefix",
			ErrValueSize, kind, n, len(data)-4)
	}
	return string(data[4 : 4+n]), nil
}

// Enum is an enumerated constant stored at the width of its underlying type.
// Payload: Width bytes, little-endian unsigned. Decoding infers the width
// from the payload length, so the width survives a round trip.
type Enum struct {
	Width int // encoded size in bytes: 1, 2, 4, or 8
	Value uint64
}

// Enum8 returns an Enum stored in one byte.
func Enum8(v uint8) Enum { return Enum{Width: 1, Value: uint64(v)} }

// Enum16 returns an Enum stored in two bytes.
func Enum16(v uint16) Enum { return Enum{Width: 2, Value: uint64(v)} }

// Enum32 returns an Enum stored in four bytes.
func Enum32(v uint32) Enum { return Enum{Width: 4, Value: uint64(v)} }

// Enum64 returns an Enum stored in eight bytes.
func Enum64(v uint64) Enum { return Enum{Width: 8, Value: v} }

func (e Enum) Tag() codec.Tag { return codec.TagEnum }

// Encode returns e.Value in e.Width little-endian bytes. A width other than
// 1, 2, 4, or 8 encodes to nil, which no decoder accepts.
func (e Enum) Encode() []byte {
	switch e.Width {
	case 1:
		return []byte{uint8(e.Value)}
	case 2:
		return binary.LittleEndian.AppendUint16(make([]byte, 0, 2), uint16(e.Value))
	case 4:
		return binary.LittleEndian.AppendUint32(make([]byte, 0, 4), uint32(e.Value))
	case 8:
		return binary.LittleEndian.AppendUint64(make([]byte, 0, 8), e.Value)
	}
	return nil
}

func (e Enum) String() string {
	return strconv.FormatUint(e.Value, 10)
}

// DecodeEnum inverts Enum.Encode, inferring the width from len(data).
func DecodeEnum(data []byte) (Enum, error) {
	switch len(data) {
	case 1:
		return Enum8(data[0]), nil
	case 2:
		return Enum16(binary.LittleEndian.Uint16(data)), nil
	case 4:
		return Enum32(binary.LittleEndian.Uint32(data)), nil
	case 8:
		return Enum64(binary.LittleEndian.Uint64(data)), nil
	}
	return Enum{}, fmt.Errorf("%w: enum needs 1, 2, 4, or 8 bytes, got %d", ErrValueSize, len(data))
}
