// Package blobcid converts between bitblob values and IPFS-style content
// identifiers carrying sha2-256 multihashes.
//
// Nothing here computes a digest: the package only unwraps digests that a
// hash routine already produced (FromMultihash, FromCID) or re-wraps stored
// bytes (CID). Digest bytes pass through verbatim in storage order.
package blobcid

import (
	"fmt"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"

	"xdao.co/bitblob/bitblob"
)

// FromMultihash extracts the digest of a sha2-256 multihash and stores it
// verbatim. Multihashes with any other code, or with a digest length other
// than bitblob.Size, are rejected.
func FromMultihash(mh multihash.Multihash) (bitblob.Blob, error) {
	dec, err := multihash.Decode(mh)
	if err != nil {
		return bitblob.Blob{}, fmt.Errorf("blobcid: decode multihash: %w", err)
	}
	if dec.Code != multihash.SHA2_256 {
		return bitblob.Blob{}, fmt.Errorf("blobcid: multihash code 0x%x, want sha2-256", dec.Code)
	}
	if dec.Length != bitblob.Size {
		return bitblob.Blob{}, fmt.Errorf("blobcid: digest length %d, want %d", dec.Length, bitblob.Size)
	}
	return bitblob.FromBytes(dec.Digest), nil
}

// FromCID extracts the sha2-256 digest a CID carries.
func FromCID(c cid.Cid) (bitblob.Blob, error) {
	return FromMultihash(c.Hash())
}

// CID wraps b as a CIDv1 with the given multicodec and a sha2-256
// multihash, without recomputing anything. It round-trips with FromCID.
func CID(b bitblob.Blob, codec uint64) (cid.Cid, error) {
	buf, err := multihash.Encode(b.Bytes(), multihash.SHA2_256)
	if err != nil {
		return cid.Undef, fmt.Errorf("blobcid: encode multihash: %w", err)
	}
	return cid.NewCidV1(codec, multihash.Multihash(buf)), nil
}
