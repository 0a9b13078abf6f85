package bitblob

import (
	"bytes"
	"crypto/sha256"
	"testing"

	"golang.org/x/crypto/sha3"
)

// genesisBytes is the little-endian storage of the 256-bit genesis vector
// used throughout the tests; its canonical text form is genesisHex.
func genesisBytes() []byte {
	return []byte{
		0x6f, 0xe2, 0x8c, 0x0a, 0xb6, 0xf1, 0xb3, 0x72,
		0xc1, 0xa6, 0xa2, 0x46, 0xae, 0x63, 0xf7, 0x4f,
		0x93, 0x1e, 0x83, 0x65, 0xe1, 0x5a, 0x08, 0x9c,
		0x68, 0xd6, 0x19, 0x00, 0x00, 0x00, 0x00, 0x00,
	}
}

const genesisHex = "0x000000000019d6689c085ae165831e934ff763ae46a2a6c172b3f1b60a8ce26f"

func TestFromBytes_StoresVerbatim(t *testing.T) {
	raw := genesisBytes()
	b := FromBytes(raw)
	if !bytes.Equal(b.Bytes(), raw) {
		t.Fatalf("storage mismatch: got %x want %x", b.Bytes(), raw)
	}
}

func TestFromBytes_WrongLengthPanics(t *testing.T) {
	for _, n := range []int{0, 1, Size - 1, Size + 1, 2 * Size} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("FromBytes with %d bytes: expected panic", n)
				}
			}()
			FromBytes(make([]byte, n))
		}()
	}
}

func TestFromBigEndian_EndiannessSymmetry(t *testing.T) {
	le := genesisBytes()
	be := make([]byte, Size)
	for i, v := range le {
		be[Size-1-i] = v
	}
	if got, want := FromBigEndian(be), FromBytes(le); got != want {
		t.Fatalf("FromBigEndian(reverse(b)) = %s, want %s", got, want)
	}
}

func TestBytes_ReturnsCopy(t *testing.T) {
	b := FromBytes(genesisBytes())
	view := b.Bytes()
	view[0] ^= 0xff
	if !bytes.Equal(b.Bytes(), genesisBytes()) {
		t.Fatal("mutating the returned slice changed the value")
	}
}

func TestSlice_HighTail(t *testing.T) {
	b := FromBytes(genesisBytes())
	got := b.Slice(Size-5, Size)
	want := genesisBytes()[Size-5:]
	if !bytes.Equal(got, want) {
		t.Fatalf("Slice(Size-5, Size) = %x, want %x", got, want)
	}
}

func TestIsZero(t *testing.T) {
	var zero Blob
	if !zero.IsZero() {
		t.Fatal("zero value must report null")
	}
	if FromBytes(genesisBytes()).IsZero() {
		t.Fatal("non-zero value must not report null")
	}
	var almost [Size]byte
	almost[Size-1] = 1
	if Blob(almost).IsZero() {
		t.Fatal("single non-zero byte must not report null")
	}
}

// The type is a direct construction target for raw digest output; exercise
// it against two real hash functions.
func TestDigestInterop(t *testing.T) {
	data := []byte("bitblob digest interop")

	s2 := sha256.Sum256(data)
	s3 := sha3.Sum256(data)

	for name, sum := range map[string][32]byte{"sha256": s2, "sha3-256": s3} {
		b := FromBytes(sum[:])
		if !bytes.Equal(b.Bytes(), sum[:]) {
			t.Errorf("%s: storage mismatch", name)
		}
		back, err := Parse(b.String())
		if err != nil {
			t.Errorf("%s: Parse(String): %v", name, err)
		} else if back != b {
			t.Errorf("%s: text round-trip mismatch", name)
		}
	}
}
