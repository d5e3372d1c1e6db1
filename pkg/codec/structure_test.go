package codec

import (
	"bytes"
	"testing"
)

// TestWireLayout pins the exact on-disk byte layout. Any failure here is a
// file-format break, not a refactoring bug.
func TestWireLayout(t *testing.T) {
	codec := NewRecordCodec()

	entry := Entry{
		Tag:     TagFloat,
		Key:     "hp",
		Payload: []byte{0xAA, 0xBB, 0xCC},
	}

	want := []byte{
		0x00,                   // tag = TagFloat
		0x02, 0x00, 0x00, 0x00, // key length = 2, little-endian
		'h', 'p', // key bytes
		0x03, 0x00, 0x00, 0x00, // payload length = 3, little-endian
		0xAA, 0xBB, 0xCC, // payload bytes
	}

	got := codec.EncodeEntry(entry)
	if !bytes.Equal(got, want) {
		t.Fatalf("Wire layout mismatch:\n got %x\nwant %x", got, want)
	}
}

func TestWireLayout_FileConcatenation(t *testing.T) {
	codec := NewRecordCodec()

	a := Entry{Tag: TagBool, Key: "x", Payload: []byte{0x01}}
	b := Entry{Tag: TagInt, Key: "y", Payload: []byte{0x2A, 0x00, 0x00, 0x00}}

	file := codec.EncodeFile([]Entry{a, b})
	want := append(codec.EncodeEntry(a), codec.EncodeEntry(b)...)

	if !bytes.Equal(file, want) {
		t.Fatalf("File encoding is not plain concatenation:\n got %x\nwant %x", file, want)
	}

	// No header, no count, no trailer: total size is the sum of the parts.
	if len(file) != a.EncodedSize()+b.EncodedSize() {
		t.Fatalf("File size %d, want %d", len(file), a.EncodedSize()+b.EncodedSize())
	}
}
