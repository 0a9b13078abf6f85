package bitblob

import "fmt"

const (
	hexDigits      = "0123456789abcdef"
	hexDigitsUpper = "0123456789ABCDEF"
)

// Format implements fmt.Formatter:
//
//	%x   lowercase hex digits, no prefix
//	%X   uppercase hex digits, no prefix
//	%s   "0x" followed by lowercase hex digits
//
// Any other verb, %v included, falls through to the %s form. Digits are
// emitted most-significant byte first and streamed straight into the
// fmt.State sink.
func (b Blob) Format(f fmt.State, verb rune) {
	switch verb {
	case 'x':
		f.Write(b.appendHex(make([]byte, 0, HexLen), hexDigits))
	case 'X':
		f.Write(b.appendHex(make([]byte, 0, HexLen), hexDigitsUpper))
	default:
		f.Write(b.appendPrefixedHex(make([]byte, 0, HexLenPrefixed)))
	}
}

// String returns the canonical text form: "0x" plus HexLen lowercase
// digits, using a single HexLenPrefixed-byte buffer.
func (b Blob) String() string {
	return string(b.appendPrefixedHex(make([]byte, 0, HexLenPrefixed)))
}

// Hex returns the lowercase hex digits without the "0x" prefix.
func (b Blob) Hex() string {
	return string(b.appendHex(make([]byte, 0, HexLen), hexDigits))
}

// appendHex appends the digits of b to dst, most-significant byte first,
// high nibble before low nibble.
func (b Blob) appendHex(dst []byte, digits string) []byte {
	for i := Size - 1; i >= 0; i-- {
		dst = append(dst, digits[b[i]>>4], digits[b[i]&0x0f])
	}
	return dst
}

func (b Blob) appendPrefixedHex(dst []byte) []byte {
	dst = append(dst, '0', 'x')
	return b.appendHex(dst, hexDigits)
}
