// Package bitblob implements a fixed-size binary value ("bit blob") for
// hash-like identifiers: an immutable 32-byte array with a canonical
// hexadecimal text form, byte-level access, and a total order.
//
// Storage is little-endian: index 0 holds the least-significant byte. The
// text form reads most-significant digit first, so the bytes of
//
//	0x000000000019d668...0a8ce26f
//
// are stored with 0x6f at index 0. A raw digest from a hash function is
// stored verbatim via FromBytes; no hashing is ever performed here.
//
// Blob is a plain comparable array type: == is byte-wise equality, copies
// share no storage, and the zero value Blob{} is the distinguished null
// value.
package bitblob

const (
	// Size is the number of bytes in a Blob.
	Size = 32

	// HexLen is the number of hex digits in the text form, prefix excluded.
	HexLen = 2 * Size

	// HexLenPrefixed is the length of the canonical "0x"-prefixed text form.
	HexLenPrefixed = HexLen + 2
)

// Blob is a fixed 32-byte value, typically the output of a 256-bit hash
// function, stored little-endian.
type Blob [Size]byte

// FromBytes returns the Blob whose storage is b verbatim, treating b as
// little-endian (least-significant byte first). This is the form to use for
// raw digest output.
//
// FromBytes panics if len(b) != Size: a wrong-length digest indicates a bug
// in the caller, not malformed input.
func FromBytes(b []byte) Blob {
	if len(b) != Size {
		panic("bitblob: FromBytes: input is not exactly Size bytes")
	}
	var out Blob
	copy(out[:], b)
	return out
}

// FromBigEndian is FromBytes for big-endian input (most-significant byte
// first): the bytes are reversed into little-endian storage order. It panics
// on wrong length like FromBytes.
func FromBigEndian(b []byte) Blob {
	out := FromBytes(b)
	reverse(out[:])
	return out
}

// Bytes returns the backing bytes in storage (little-endian) order. The
// returned slice is a copy's view; mutating it does not affect b.
func (b Blob) Bytes() []byte {
	return b[:]
}

// Slice returns the storage bytes in the half-open range [from, to).
// Indices follow storage order; pass Size as to for the high tail.
func (b Blob) Slice(from, to int) []byte {
	return b[from:to]
}

// IsZero reports whether b is the all-zero null value.
func (b Blob) IsZero() bool {
	return b == Blob{}
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
