// Package compose builds Markdown message bodies: fenced quotations,
// @-mentions, inline links, and full quote-and-reply bodies. Every
// operation is a pure function over its inputs; nothing here parses or
// renders Markdown, it only emits exact bytes for a downstream renderer.
package compose

import "strings"

// FenceLength returns the shortest backtick fence length, at least 3,
// that safely wraps content: strictly longer than every backtick run
// opening a fence line anywhere inside it. Content with no fence lines
// gets the minimum of 3.
func FenceLength(content string) int {
	longest := 0
	for _, line := range strings.Split(content, "\n") {
		if run := openingFenceRun(line); run > longest {
			longest = run
		}
	}
	if longest < 3 {
		return 3
	}
	return longest + 1
}

// openingFenceRun returns the backtick run length if line could open a
// fenced block: up to 3 leading spaces, 3 or more backticks, then a
// backtick-free info string to end of line. Returns 0 otherwise.
func openingFenceRun(line string) int {
	i := 0
	for i < 3 && i < len(line) && line[i] == ' ' {
		i++
	}
	start := i
	for i < len(line) && line[i] == '`' {
		i++
	}
	run := i - start
	if run < 3 {
		return 0
	}
	if strings.IndexByte(line[i:], '`') >= 0 {
		return 0
	}
	return run
}

// WrapWithFence wraps content in a backtick fence long enough that no
// fence inside content can close it early. infoString, when non-empty,
// is placed on the opening fence line; it must be trimmed and contain no
// backticks. Violations panic: a bad info string is a bug at the call
// site, not a runtime condition. Non-empty content is newline-terminated before the
// closing fence, and the result always ends with a single newline.
func WrapWithFence(content, infoString string) string {
	if strings.ContainsRune(infoString, '`') {
		panic("compose: fence info string contains a backtick")
	}
	if strings.TrimSpace(infoString) != infoString {
		panic("compose: fence info string has leading or trailing whitespace")
	}

	fence := strings.Repeat("`", FenceLength(content))

	var b strings.Builder
	b.WriteString(fence)
	b.WriteString(infoString)
	b.WriteByte('\n')
	b.WriteString(content)
	if content != "" && !strings.HasSuffix(content, "\n") {
		b.WriteByte('\n')
	}
	b.WriteString(fence)
	b.WriteByte('\n')
	return b.String()
}
