package base85

import "encoding/binary"

// Alphabet is the 85-character alphabet used by the Mensago platform, in
// digit order. It deliberately omits characters that are troublesome in
// delimited or quoted contexts: comma, single and double quotes, backslash,
// slash, and space.
const Alphabet = "0123456789" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"abcdefghijklmnopqrstuvwxyz" +
	"!#$%&()*+-;<=>?@^_`{|}~"

// Powers of 85 used as divisors when splitting a 32-bit chunk into digits.
const (
	pow85_2 = 85 * 85
	pow85_3 = 85 * pow85_2
	pow85_4 = 85 * pow85_3
)

// padDigit fills the missing digit slots of a partial decode group. Using
// the maximum alphabet digit guarantees the accumulator lands in the same
// high-byte window the encoder truncated from, so partial tails decode to
// the exact original bytes.
const padDigit = 84

// decodeMap maps an input byte to its alphabet digit, or -1 for bytes
// outside the alphabet.
var decodeMap = func() (m [256]int8) {
	for i := range m {
		m[i] = -1
	}
	for i := 0; i < len(Alphabet); i++ {
		m[Alphabet[i]] = int8(i)
	}
	return m
}()

// EncodedLen returns the exact length of an encoding of n source bytes.
func EncodedLen(n int) int {
	size := n / 4 * 5
	if r := n % 4; r > 0 {
		size += r + 1
	}
	return size
}

// DecodedLen returns the maximum length of a decoding of n encoded bytes.
// Whitespace in the input only shrinks the actual result.
func DecodedLen(n int) int {
	size := n / 5 * 4
	if r := n % 5; r > 0 {
		size += r - 1
	}
	return size
}

// Encode encodes data as base85 text. Each 4-byte group becomes 5 alphabet
// characters; a trailing group of n bytes becomes n+1 characters. Encoding
// empty input yields an empty string. The output contains no whitespace and
// is never wrapped.
func Encode(data []byte) string {
	if len(data) == 0 {
		return ""
	}

	out := make([]byte, 0, EncodedLen(len(data)))
	for len(data) >= 4 {
		v := binary.BigEndian.Uint32(data)
		out = append(out,
			Alphabet[v/pow85_4],
			Alphabet[v/pow85_3%85],
			Alphabet[v/pow85_2%85],
			Alphabet[v/85%85],
			Alphabet[v%85])
		data = data[4:]
	}

	if n := len(data); n > 0 {
		// Zero-pad the tail to a full chunk and keep only the digits
		// needed to reconstruct n bytes.
		var chunk [4]byte
		copy(chunk[:], data)
		v := binary.BigEndian.Uint32(chunk[:])
		tail := [5]byte{
			Alphabet[v/pow85_4],
			Alphabet[v/pow85_3%85],
			Alphabet[v/pow85_2%85],
			Alphabet[v/85%85],
			Alphabet[v%85],
		}
		out = append(out, tail[:n+1]...)
	}

	return string(out)
}

// Decode decodes base85 text produced by Encode. ASCII whitespace is
// skipped and does not count toward digit groups. Decode returns
// ErrEmptyInput if s contains no alphabet characters at all, an
// *InvalidCharacterError for any non-whitespace character outside the
// alphabet, and an *InvalidLengthError when the text ends with a single
// stray digit, which cannot carry even one byte.
func Decode(s string) ([]byte, error) {
	if len(s) == 0 {
		return nil, ErrEmptyInput
	}

	out := make([]byte, 0, DecodedLen(len(s)))
	var acc uint32
	group := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isSpace(c) {
			continue
		}
		d := decodeMap[c]
		if d < 0 {
			return nil, &InvalidCharacterError{Char: c, Pos: i}
		}
		acc = acc*85 + uint32(d)
		group++
		if group == 5 {
			out = append(out, byte(acc>>24), byte(acc>>16), byte(acc>>8), byte(acc))
			acc = 0
			group = 0
		}
	}

	switch group {
	case 0:
		if len(out) == 0 {
			// Nothing but whitespace.
			return nil, ErrEmptyInput
		}
	case 1:
		return nil, &InvalidLengthError{Digits: len(out)/4*5 + 1}
	default:
		for i := group; i < 5; i++ {
			acc = acc*85 + padDigit
		}
		for shift := 24; group > 1; group-- {
			out = append(out, byte(acc>>shift))
			shift -= 8
		}
	}

	return out, nil
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
