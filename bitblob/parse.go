package bitblob

import "strings"

// Parse converts untrusted hex text to a Blob. The input must be exactly
// HexLen hex digits, upper or lower case, optionally preceded by "0x" or
// "0X". Digits read most-significant first, matching the text form produced
// by String.
//
// Malformed input yields a *LengthMismatchError or *InvalidCharacterError;
// Parse never panics.
func Parse(s string) (Blob, error) {
	clean, prefixLen := stripPrefix(s)
	if len(clean) != HexLen {
		return Blob{}, &LengthMismatchError{
			Input:           s,
			Len:             len(s),
			WantLen:         HexLen,
			WantLenPrefixed: HexLenPrefixed,
		}
	}
	for i := 0; i < len(clean); i++ {
		if !isHexDigit(clean[i]) {
			return Blob{}, &InvalidCharacterError{Input: s, Index: prefixLen + i}
		}
	}
	return decodeHex(strings.ToLower(clean)), nil
}

// MustParse is Parse for trusted input such as literals and package
// variables: any malformed input panics with the corresponding typed error.
func MustParse(s string) Blob {
	b, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return b
}

func stripPrefix(s string) (clean string, prefixLen int) {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:], 2
	}
	return s, 0
}

func isHexDigit(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

// decodeHex converts exactly HexLen lowercase hex digits into little-endian
// storage: byte i of the Blob comes from the two digits ending at offset
// HexLen-2*i, so the last digit pair lands at index 0.
func decodeHex(s string) Blob {
	var b Blob
	for i := 0; i < Size; i++ {
		hi := unhex(s[HexLen-2*i-2])
		lo := unhex(s[HexLen-2*i-1])
		b[i] = hi<<4 | lo
	}
	return b
}

// unhex decodes one lowercase hex digit. Anything else reaching it is a bug
// in the caller: input is either validated (Parse) or trusted by contract.
func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	}
	panic("bitblob: non-hex digit reached decode")
}
