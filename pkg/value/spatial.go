package value

import (
	"fmt"

	"github.com/ssargent/mimir/pkg/codec"
)

// Layout sizes in bytes.
const (
	vectorSize    = 12 // 3 × float32
	rotatorSize   = 12 // 3 × float32
	transformSize = rotatorSize + 2*vectorSize
)

// Vector is a 3D point or direction. Payload: x, y, z as float32, 12 bytes.
type Vector struct {
	X, Y, Z float32
}

func (v Vector) Tag() codec.Tag { return codec.TagVector }

func (v Vector) Encode() []byte {
	return v.appendTo(make([]byte, 0, vectorSize))
}

func (v Vector) appendTo(dst []byte) []byte {
	dst = appendFloat32(dst, v.X)
	dst = appendFloat32(dst, v.Y)
	dst = appendFloat32(dst, v.Z)
	return dst
}

func (v Vector) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}

// DecodeVector inverts Vector.Encode.
func DecodeVector(data []byte) (Vector, error) {
	if err := checkSize("vector", data, vectorSize); err != nil {
		return Vector{}, err
	}
	return vectorAt(data, 0), nil
}

func vectorAt(data []byte, off int) Vector {
	return Vector{
		X: float32At(data, off),
		Y: float32At(data, off+4),
		Z: float32At(data, off+8),
	}
}

// Rotator is a 3D rotation in degrees. Payload: pitch, yaw, roll as float32,
// 12 bytes.
type Rotator struct {
	Pitch, Yaw, Roll float32
}

func (r Rotator) Tag() codec.Tag { return codec.TagRotator }

func (r Rotator) Encode() []byte {
	return r.appendTo(make([]byte, 0, rotatorSize))
}

func (r Rotator) appendTo(dst []byte) []byte {
	dst = appendFloat32(dst, r.Pitch)
	dst = appendFloat32(dst, r.Yaw)
	dst = appendFloat32(dst, r.Roll)
	return dst
}

func (r Rotator) String() string {
	return fmt.Sprintf("(pitch=%g, yaw=%g, roll=%g)", r.Pitch, r.Yaw, r.Roll)
}

// DecodeRotator inverts Rotator.Encode.
func DecodeRotator(data []byte) (Rotator, error) {
	if err := checkSize("rotator", data, rotatorSize); err != nil {
		return Rotator{}, err
	}
	return rotatorAt(data, 0), nil
}

func rotatorAt(data []byte, off int) Rotator {
	return Rotator{
		Pitch: float32At(data, off),
		Yaw:   float32At(data, off+4),
		Roll:  float32At(data, off+8),
	}
}

// Transform combines rotation, translation, and scale. Payload: the Rotator
// layout followed by two Vector layouts, 36 bytes, in that order.
type Transform struct {
	Rotation    Rotator
	Translation Vector
	Scale       Vector
}

func (t Transform) Tag() codec.Tag { return codec.TagTransform }

func (t Transform) Encode() []byte {
	dst := make([]byte, 0, transformSize)
	dst = t.Rotation.appendTo(dst)
	dst = t.Translation.appendTo(dst)
	dst = t.Scale.appendTo(dst)
	return dst
}

func (t Transform) String() string {
	return fmt.Sprintf("rot=%s pos=%s scale=%s", t.Rotation, t.Translation, t.Scale)
}

// DecodeTransform inverts Transform.Encode.
func DecodeTransform(data []byte) (Transform, error) {
	if err := checkSize("transform", data, transformSize); err != nil {
		return Transform{}, err
	}
	return Transform{
		Rotation:    rotatorAt(data, 0),
		Translation: vectorAt(data, rotatorSize),
		Scale:       vectorAt(data, rotatorSize+vectorSize),
	}, nil
}
