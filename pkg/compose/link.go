package compose

// InlineLink renders a Markdown inline link: [text](destination). An
// empty destination still produces the empty parentheses form.
//
// Neither field is escaped. Brackets in text or parentheses in the
// destination will break the syntax; callers choose inputs that cannot
// (narrow links never contain bare parentheses, for example).
func InlineLink(text, destination string) string {
	return "[" + text + "](" + destination + ")"
}
