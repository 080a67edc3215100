// Package narrow models filter expressions ("narrows") over a realm's
// messages and serializes them into the URL fragments the companion web
// client understands. Serialization is bit-exact with that client; none
// of its historical encoding quirks may be changed here alone.
package narrow

import "github.com/veldtchat/veldt/pkg/chat"

// Filter is the closed union of narrow filter kinds. Only the types in
// this package implement it, so serialization can switch exhaustively.
type Filter interface {
	filter()
	negated() bool
}

// Stream narrows to a single stream by ID.
type Stream struct {
	StreamID int64
	Negated  bool
}

// Topic narrows to a topic by its exact text.
type Topic struct {
	Name    string
	Negated bool
}

// Direct narrows to a direct-message thread. UserIDs is the full
// participant list, sorted ascending by the caller. Legacy selects the
// pre-rename operator ("pm-with") emitted for older servers; it is set
// by Resolve, not by hand.
type Direct struct {
	UserIDs []int64
	Legacy  bool
	Negated bool
}

// DirectUnresolved is a direct-message filter whose operator has not yet
// been chosen for a concrete server. It must pass through
// Expression.Resolve before serialization; reaching the serializer
// unresolved is a programming error.
type DirectUnresolved struct {
	UserIDs []int64
	Negated bool
}

// MessageID narrows to a single message by ID.
type MessageID struct {
	ID      int64
	Negated bool
}

func (Stream) filter()           {}
func (Topic) filter()            {}
func (Direct) filter()           {}
func (DirectUnresolved) filter() {}
func (MessageID) filter()        {}

func (f Stream) negated() bool           { return f.Negated }
func (f Topic) negated() bool            { return f.Negated }
func (f Direct) negated() bool           { return f.Negated }
func (f DirectUnresolved) negated() bool { return f.Negated }
func (f MessageID) negated() bool        { return f.Negated }

// Expression is an ordered filter list. Order is semantically
// significant: it defines the fragment's path segment order.
type Expression []Filter

// Servers at or above this capability level use the "dm" operator;
// older ones only understand "pm-with".
const dmOperatorMinLevel = 177

// Resolve returns a copy of the expression with every DirectUnresolved
// filter replaced by a Direct filter appropriate for a server at the
// given capability level. Other filters pass through unchanged.
func (e Expression) Resolve(capabilityLevel int) Expression {
	resolved := make(Expression, len(e))
	for i, f := range e {
		if u, ok := f.(DirectUnresolved); ok {
			resolved[i] = Direct{
				UserIDs: u.UserIDs,
				Legacy:  capabilityLevel < dmOperatorMinLevel,
				Negated: u.Negated,
			}
			continue
		}
		resolved[i] = f
	}
	return resolved
}

// ExpressionFor builds the expression targeting exactly the given
// conversation: stream + topic for a stream conversation, a single
// unresolved direct filter for a direct one. Callers resolve the result
// against their server before building a link.
func ExpressionFor(c chat.Conversation) Expression {
	switch c := c.(type) {
	case chat.StreamConversation:
		return Expression{
			Stream{StreamID: c.StreamID},
			Topic{Name: c.Topic},
		}
	case chat.DirectConversation:
		return Expression{
			DirectUnresolved{UserIDs: c.UserIDs},
		}
	default:
		panic("narrow: unknown conversation type")
	}
}
