package value_test

import (
	"fmt"
	"log"

	"github.com/ssargent/mimir/pkg/codec"
	"github.com/ssargent/mimir/pkg/value"
)

// ExampleDecode shows tag-dispatched decoding of a raw payload.
func ExampleDecode() {
	payload := value.Float(75.5).Encode()

	v, err := value.Decode(codec.TagFloat, payload)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(v)

	// Output:
	// 75.5
}

// ExampleEnum shows how the chosen width survives a round trip.
func ExampleEnum() {
	for _, e := range []value.Enum{
		value.Enum8(7),
		value.Enum16(7),
		value.Enum64(7),
	} {
		fmt.Printf("%s in %d bytes\n", e, len(e.Encode()))
	}

	// Output:
	// 7 in 1 bytes
	// 7 in 2 bytes
	// 7 in 8 bytes
}

func ExampleTransform() {
	spawn := value.Transform{
		Rotation:    value.Rotator{Yaw: 90},
		Translation: value.Vector{X: 100, Y: 200, Z: 50},
		Scale:       value.Vector{X: 1, Y: 1, Z: 1},
	}

	payload := spawn.Encode()
	fmt.Printf("%d bytes\n", len(payload))

	back, err := value.DecodeTransform(payload)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(back)

	// Output:
	// 36 bytes
	// rot=(pitch=0, yaw=90, roll=0) pos=(100, 200, 50) scale=(1, 1, 1)
}
