package bitblob

// MarshalText implements encoding.TextMarshaler using the canonical
// "0x"-prefixed lowercase form. Together with UnmarshalText it is the
// encode/decode pair for JSON and other text serialization layers.
func (b Blob) MarshalText() ([]byte, error) {
	return b.appendPrefixedHex(make([]byte, 0, HexLenPrefixed)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts everything
// Parse accepts and fails with the same typed errors, leaving b unchanged
// on failure.
func (b *Blob) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*b = v
	return nil
}
