package bitblob

import "fmt"

// LengthMismatchError reports hex input whose digit count cannot fill a
// Blob. Parse returns it for any input that is not exactly HexLen digits
// after optional prefix stripping.
//
// Callers should branch with errors.As rather than matching error strings;
// Error() output is for humans and may evolve.
type LengthMismatchError struct {
	Input           string // the input as given
	Len             int    // len(Input)
	WantLen         int    // accepted length without the "0x" prefix
	WantLenPrefixed int    // accepted length with the prefix
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("bitblob: wrong hex length %d for %q: want %d digits, or %d with a 0x prefix",
		e.Len, e.Input, e.WantLen, e.WantLenPrefixed)
}

// InvalidCharacterError reports a byte that is not a hex digit. Index is the
// offset of the offending byte in the input as given (prefix included).
type InvalidCharacterError struct {
	Input string
	Index int
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("bitblob: invalid character %q at index %d in %q",
		e.Input[e.Index], e.Index, e.Input)
}
