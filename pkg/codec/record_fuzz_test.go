//go:build fuzz
// +build fuzz

package codec

import (
	"bytes"
	"testing"
)

// FuzzRecordCodec_RoundTrip tests encode/decode round-trip with random inputs.
func FuzzRecordCodec_RoundTrip(f *testing.F) {
	codec := NewRecordCodec()

	f.Add(uint8(0), "", []byte(""))
	f.Add(uint8(0), "health", []byte{0x00, 0x00, 0x97, 0x42})
	f.Add(uint8(3), "name", []byte("grofnir"))
	f.Add(uint8(8), "spawn", bytes.Repeat([]byte{0x7F}, 36))

	f.Fuzz(func(t *testing.T, tagByte uint8, key string, payload []byte) {
		tag := Tag(tagByte)
		if !tag.Valid() {
			t.Skip("unknown tag is covered by the malformed-data fuzzer")
		}
		if len(key) > 10000 || len(payload) > 100000 {
			t.Skip("input too large for fuzz test")
		}

		entry := Entry{Tag: tag, Key: key, Payload: payload}
		encoded := codec.EncodeEntry(entry)

		decoded, next, err := codec.DecodeEntry(encoded, 0)
		if err != nil {
			t.Fatalf("DecodeEntry failed for key=%q: %v", key, err)
		}
		if next != len(encoded) {
			t.Errorf("Cursor mismatch: %d != %d", next, len(encoded))
		}
		if decoded.Tag != tag {
			t.Errorf("Tag mismatch: got %v, want %v", decoded.Tag, tag)
		}
		if decoded.Key != key {
			t.Errorf("Key mismatch: got %q, want %q", decoded.Key, key)
		}
		if !bytes.Equal(decoded.Payload, payload) {
			t.Errorf("Payload mismatch: got %x, want %x", decoded.Payload, payload)
		}
	})
}

// FuzzRecordCodec_DecodeFile ensures arbitrary bytes never panic the decoder
// and that whatever decodes cleanly re-encodes to the identical buffer.
func FuzzRecordCodec_DecodeFile(f *testing.F) {
	codec := NewRecordCodec()

	f.Add([]byte{})
	f.Add([]byte{0x01})
	f.Add(codec.EncodeEntry(Entry{Tag: TagString, Key: "k", Payload: []byte("v")}))
	f.Add(make([]byte, 9))

	f.Fuzz(func(t *testing.T, data []byte) {
		if len(data) > 100000 {
			t.Skip("input too large for fuzz test")
		}

		entries, err := codec.DecodeFile(data)
		if err != nil {
			return // malformed input is expected to fail, not panic
		}

		if reencoded := codec.EncodeFile(entries); !bytes.Equal(reencoded, data) {
			t.Errorf("Re-encode mismatch:\n got %x\nwant %x", reencoded, data)
		}
	})
}
