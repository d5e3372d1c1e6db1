package codec

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Decode errors. DecodeEntry and DecodeFile wrap these with positional
// detail; callers match with errors.Is.
var (
	// ErrTruncatedRecord means a declared length overruns the remaining
	// buffer, or the buffer ends mid-header.
	ErrTruncatedRecord = errors.New("truncated record")

	// ErrMalformedTag means a tag discriminant does not correspond to a
	// known payload type.
	ErrMalformedTag = errors.New("malformed tag")
)

// Entry represents one keyed record in a save file.
type Entry struct {
	Tag     Tag    // Semantic type of the payload
	Key     string // Unique within one file, enforced at write time
	Payload []byte // Opaque, already-encoded value bytes
}

// Fixed per-entry overhead: Tag(1) + KeyLen(4) + PayloadLen(4).
const entryOverhead = 1 + 4 + 4

// EncodedSize returns the total size of the entry when encoded.
func (e Entry) EncodedSize() int {
	return entryOverhead + len(e.Key) + len(e.Payload)
}

// RecordCodec handles serialization and deserialization of entries.
// The zero value is ready to use; instances are safe for concurrent use.
type RecordCodec struct{}

// NewRecordCodec creates a new record codec instance.
func NewRecordCodec() *RecordCodec {
	return &RecordCodec{}
}

// EncodeEntry serializes one entry into the binary record format.
// Format: [Tag(1)][KeyLen(4)][Key][PayloadLen(4)][Payload], little-endian.
func (c *RecordCodec) EncodeEntry(e Entry) []byte {
	return c.AppendEntry(make([]byte, 0, e.EncodedSize()), e)
}

// AppendEntry appends the encoding of e to dst and returns the extended
// buffer, in the manner of the append builtin.
func (c *RecordCodec) AppendEntry(dst []byte, e Entry) []byte {
	dst = append(dst, byte(e.Tag))
	dst = binary.LittleEndian.AppendUint32(dst, uint32(len(e.Key)))
	dst = append(dst, e.Key...)
	dst = binary.LittleEndian.AppendUint32(dst, uint32(len(e.Payload)))
	dst = append(dst, e.Payload...)
	return dst
}

// DecodeEntry decodes one entry starting at offset off in buf. It returns the
// entry and the offset of the first byte after it, consuming exactly the
// bytes the entry's encoding occupies. The returned payload aliases buf.
func (c *RecordCodec) DecodeEntry(buf []byte, off int) (Entry, int, error) {
	var e Entry

	if len(buf)-off < 1 {
		return e, off, fmt.Errorf("%w: missing tag at offset %d", ErrTruncatedRecord, off)
	}
	e.Tag = Tag(buf[off])
	if !e.Tag.Valid() {
		return e, off, fmt.Errorf("%w: byte 0x%02x at offset %d", ErrMalformedTag, buf[off], off)
	}
	off++

	if len(buf)-off < 4 {
		return e, off, fmt.Errorf("%w: missing key length at offset %d", ErrTruncatedRecord, off)
	}
	keyLen := int(binary.LittleEndian.Uint32(buf[off:]))
	off += 4
	if keyLen > len(buf)-off {
		return e, off, fmt.Errorf("%w: key length %d exceeds %d remaining bytes",
			ErrTruncatedRecord, keyLen, len(buf)-off)
	}
	e.Key = string(buf[off : off+keyLen])
	off += keyLen

	if len(buf)-off < 4 {
		return e, off, fmt.Errorf("%w: missing payload length at offset %d", ErrTruncatedRecord, off)
	}
	payloadLen := int(binary.LittleEndian.Uint32(buf[off:]))
	off += 4
	if payloadLen > len(buf)-off {
		return e, off, fmt.Errorf("%w: payload length %d exceeds %d remaining bytes",
			ErrTruncatedRecord, payloadLen, len(buf)-off)
	}
	e.Payload = buf[off : off+payloadLen]
	off += payloadLen

	return e, off, nil
}

// EncodeFile concatenates the encodings of an ordered entry list. An empty
// list produces an empty buffer, which is the representation of "file
// contains no entries" (distinct from "file does not exist").
func (c *RecordCodec) EncodeFile(entries []Entry) []byte {
	total := 0
	for i := range entries {
		total += entries[i].EncodedSize()
	}
	buf := make([]byte, 0, total)
	for i := range entries {
		buf = c.AppendEntry(buf, entries[i])
	}
	return buf
}

// DecodeFile decodes a full file buffer into its ordered entry list, reading
// entries until the buffer is exhausted. A short or corrupt tail fails the
// whole decode; trailing garbage is never dropped silently.
func (c *RecordCodec) DecodeFile(buf []byte) ([]Entry, error) {
	var entries []Entry
	off := 0
	for off < len(buf) {
		e, next, err := c.DecodeEntry(buf, off)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", len(entries), err)
		}
		entries = append(entries, e)
		off = next
	}
	return entries, nil
}
