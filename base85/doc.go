// Package base85 implements the base85 binary-to-text encoding used by the
// Mensago platform.
//
// The encoding maps each 4-byte group to 5 characters of an 85-character
// alphabet, chosen so that encoded text can be embedded in delimited or
// quoted contexts without escaping: the alphabet contains no comma, quote,
// backslash, slash, or space. It is not compatible with Ascii85/btoa
// (different alphabet, no "z" shorthand for zero groups) or with RFC 1924.
//
// Input whose length is not a multiple of 4 produces a shortened final
// group: n trailing bytes encode to n+1 characters. [Decode] reverses this
// and additionally skips ASCII whitespace, so wrapped or indented encoded
// text decodes cleanly. [Encode] itself never emits whitespace.
//
// Unlike the reference implementation, Decode rejects characters outside
// the alphabet instead of silently substituting a sentinel digit; see
// [InvalidCharacterError].
package base85
