package narrow

import (
	"fmt"
	"strings"
)

// encodeHashComponent makes a string safe for use as one path segment of
// a narrow fragment, matching the companion web client's legacy
// hash-encoding convention byte for byte.
//
// The convention is two passes. First, standard component-level
// percent-encoding (every byte outside the unreserved set below becomes
// %XX, including '/'). Second, a literal substitution over the encoded
// output: '.' becomes ".2E", '%' becomes '.', '(' becomes ".28" and ')'
// becomes ".29". The second pass turns every percent triple like %20
// into .20. That is the convention's defining quirk, kept verbatim for
// interoperability; do not "fix" it here without the web counterpart.
func encodeHashComponent(s string) string {
	return substituteEncoded(percentEncodeComponent(s))
}

// percentEncodeComponent percent-encodes s the way the web platform's
// component encoder does: the unreserved set is A-Z a-z 0-9 and
// - _ . ! ~ * ' ( ); everything else, including '/', is encoded as
// uppercase %XX over UTF-8 bytes.
func percentEncodeComponent(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if componentUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		fmt.Fprintf(&b, "%%%02X", c)
	}
	return b.String()
}

func componentUnreserved(c byte) bool {
	switch {
	case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}

// substituteEncoded runs the fixed character substitution over an
// already percent-encoded string. Replacement output is never
// re-examined: the scan is a single left-to-right pass.
func substituteEncoded(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '%':
			b.WriteByte('.')
		case '(':
			b.WriteString(".28")
		case ')':
			b.WriteString(".29")
		case '.':
			b.WriteString(".2E")
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
