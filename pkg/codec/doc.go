// Package codec provides record serialization and deserialization for mimir
// save files.
//
// A save file is an ordered sequence of tagged, keyed records with no file
// header, entry count, or index; entry boundaries come entirely from the
// length prefixes inside each record.
//
// # Record Format
//
// Records are serialized in a binary format with the following structure:
//
//	[Tag(1)][KeyLen(4)][Key][PayloadLen(4)][Payload]
//
// Fields:
//   - Tag: 8-bit discriminant identifying the payload's semantic type
//   - KeyLen: 32-bit unsigned key length in bytes (little-endian)
//   - Key: Variable-length key data (UTF-8)
//   - PayloadLen: 32-bit unsigned payload length in bytes (little-endian)
//   - Payload: Variable-length opaque value bytes
//
// The total record size is: 9 bytes (overhead) + len(key) + len(payload).
// All integers are little-endian.
//
// # Decoding Policy
//
// Decoding a file consumes entries until the buffer is exhausted. A declared
// length that overruns the buffer fails with ErrTruncatedRecord; an unknown
// tag fails with ErrMalformedTag. Both fail the whole decode: a file that
// does not parse cleanly end to end is reported as corrupt rather than
// partially loaded, so damage never masquerades as missing data.
//
// The codec does not interpret payload bytes. Interpretation is keyed off the
// tag and belongs to the caller; package value implements the standard typed
// layouts.
package codec
