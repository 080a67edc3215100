package compose

import (
	"fmt"

	"github.com/veldtchat/veldt/pkg/chat"
	"github.com/veldtchat/veldt/pkg/narrow"
)

// Composer builds quote-and-reply message bodies against a fixed
// snapshot of realm data. The zero value is not usable; all three
// fields describe the realm at compose time and are read, never
// written.
type Composer struct {
	Realm   chat.Realm
	Users   chat.UserDirectory
	Streams chat.StreamDirectory
}

// QuoteAndReplyPlaceholder composes the body shown while the quoted
// message's raw content is still being fetched: the quote header
// followed by a loading-indicator line carrying the message id. The
// header is byte-identical to the one QuoteAndReply produces for the
// same message, so the placeholder can be swapped for the final body in
// place.
func (c Composer) QuoteAndReplyPlaceholder(msg chat.Message) string {
	return c.quoteHeader(msg) + fmt.Sprintf(" *(loading message %d)*\n", msg.ID)
}

// QuoteAndReply composes the final quote-and-reply body: the quote
// header, then rawContent wrapped in a backtick fence with the "quote"
// info string. rawContent is the quoted message's raw Markdown source,
// embedded verbatim.
func (c Composer) QuoteAndReply(msg chat.Message, rawContent string) string {
	return c.quoteHeader(msg) + "\n" + WrapWithFence(rawContent, "quote")
}

// quoteHeader renders `<silent sender mention> [said](<link>):` where
// the link narrows to the message's conversation anchored at the
// message itself. The sender must be present in the user directory;
// composing a quote of a message whose sender the caller never loaded
// is a bug, not a runtime condition.
func (c Composer) quoteHeader(msg chat.Message) string {
	sender, ok := c.Users[msg.SenderID]
	if !ok {
		panic(fmt.Sprintf("compose: sender %d not in user directory", msg.SenderID))
	}
	expr := narrow.ExpressionFor(msg.Conversation).Resolve(c.Realm.CapabilityLevel)
	link := narrow.Link(c.Realm, c.Streams, expr, msg.ID)
	return Mention(sender, true, c.Users) + " " + InlineLink("said", link) + ":"
}
