package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ssargent/mimir/pkg/value"
)

// valueKinds lists the accepted --type arguments in help-text order.
var valueKinds = []string{
	"float", "bool", "int", "string", "actor",
	"enum8", "enum16", "enum32", "enum64",
	"vector", "rotator", "transform",
}

// parseValue turns command-line text into a typed value. Vectors and
// rotators read three comma-separated numbers; transforms read three such
// triples joined by semicolons in rotation;translation;scale order.
func parseValue(kind, text string) (value.Value, error) {
	switch strings.ToLower(kind) {
	case "float":
		f, err := strconv.ParseFloat(text, 32)
		if err != nil {
			return nil, fmt.Errorf("bad float %q: %w", text, err)
		}
		return value.Float(f), nil
	case "bool":
		b, err := strconv.ParseBool(text)
		if err != nil {
			return nil, fmt.Errorf("bad bool %q: %w", text, err)
		}
		return value.Bool(b), nil
	case "int":
		n, err := strconv.ParseInt(text, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("bad int %q: %w", text, err)
		}
		return value.Int(n), nil
	case "string":
		return value.String(text), nil
	case "actor":
		return value.ActorRef(text), nil
	case "enum8":
		return parseEnum(text, 1)
	case "enum16":
		return parseEnum(text, 2)
	case "enum32":
		return parseEnum(text, 4)
	case "enum64":
		return parseEnum(text, 8)
	case "vector":
		t, err := parseTriple(text)
		if err != nil {
			return nil, fmt.Errorf("bad vector %q: %w", text, err)
		}
		return value.Vector{X: t[0], Y: t[1], Z: t[2]}, nil
	case "rotator":
		t, err := parseTriple(text)
		if err != nil {
			return nil, fmt.Errorf("bad rotator %q: %w", text, err)
		}
		return value.Rotator{Pitch: t[0], Yaw: t[1], Roll: t[2]}, nil
	case "transform":
		return parseTransform(text)
	default:
		return nil, fmt.Errorf("unknown value type %q (want one of %s)", kind, strings.Join(valueKinds, ", "))
	}
}

func parseEnum(text string, width int) (value.Value, error) {
	bits := width * 8
	n, err := strconv.ParseUint(text, 10, bits)
	if err != nil {
		return nil, fmt.Errorf("bad enum%d %q: %w", bits, text, err)
	}
	return value.Enum{Width: width, Value: n}, nil
}

func parseTriple(text string) ([3]float32, error) {
	var out [3]float32
	parts := strings.Split(text, ",")
	if len(parts) != 3 {
		return out, fmt.Errorf("want three comma-separated numbers, got %d", len(parts))
	}
	for i, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 32)
		if err != nil {
			return out, err
		}
		out[i] = float32(f)
	}
	return out, nil
}

func parseTransform(text string) (value.Value, error) {
	parts := strings.Split(text, ";")
	if len(parts) != 3 {
		return nil, fmt.Errorf("bad transform %q: want rotation;translation;scale", text)
	}

	rot, err := parseTriple(parts[0])
	if err != nil {
		return nil, fmt.Errorf("bad transform rotation %q: %w", parts[0], err)
	}
	pos, err := parseTriple(parts[1])
	if err != nil {
		return nil, fmt.Errorf("bad transform translation %q: %w", parts[1], err)
	}
	scale, err := parseTriple(parts[2])
	if err != nil {
		return nil, fmt.Errorf("bad transform scale %q: %w", parts[2], err)
	}

	return value.Transform{
		Rotation:    value.Rotator{Pitch: rot[0], Yaw: rot[1], Roll: rot[2]},
		Translation: value.Vector{X: pos[0], Y: pos[1], Z: pos[2]},
		Scale:       value.Vector{X: scale[0], Y: scale[1], Z: scale[2]},
	}, nil
}
