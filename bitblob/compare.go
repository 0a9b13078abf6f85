package bitblob

// Cmp compares b and other by magnitude, reading the value as the number its
// text form spells: bytes are scanned from index Size-1 (most significant)
// down to 0. The result is the signed difference of the first differing byte
// pair — negative if b < other, positive if b > other, 0 if equal.
//
// A storage-order comparison would disagree with the lexicographic order of
// the hex text form; the scan direction here keeps the two consistent.
func (b Blob) Cmp(other Blob) int {
	for i := Size - 1; i >= 0; i-- {
		if b[i] != other[i] {
			return int(b[i]) - int(other[i])
		}
	}
	return 0
}

// Less reports whether b sorts before other under Cmp.
func (b Blob) Less(other Blob) bool {
	return b.Cmp(other) < 0
}
