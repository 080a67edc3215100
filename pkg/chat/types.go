// Package chat defines the shared value types for a veldt realm: users,
// messages, conversations, and the realm itself. Everything here is an
// immutable snapshot; nothing is mutated after construction.
package chat

import "net/url"

// User is a member of a realm.
type User struct {
	ID       int64
	FullName string
}

// Realm identifies a chat deployment: its base URL and the capability
// level its server advertises. The capability level is a monotonically
// increasing integer; higher levels unlock newer protocol features.
type Realm struct {
	BaseURL         *url.URL
	CapabilityLevel int
}

// Message locates a message within a realm. The raw Markdown content is
// not carried here; it is supplied separately to the operations that
// need it.
type Message struct {
	ID           int64
	SenderID     int64
	Conversation Conversation
}

// Conversation is the closed union of places a message can live:
// a topic within a stream, or a direct-message thread. Only the types
// in this package implement it.
type Conversation interface {
	conversation()
}

// StreamConversation is a topic within a stream.
type StreamConversation struct {
	StreamID int64
	Topic    string
}

func (StreamConversation) conversation() {}

// DirectConversation is a direct-message thread. UserIDs is the full
// participant list including the sender, sorted ascending.
type DirectConversation struct {
	UserIDs []int64
}

func (DirectConversation) conversation() {}

// UserDirectory is a read-only snapshot of the realm's users, keyed by
// user ID. A nil directory is valid and means "no collision data
// available".
type UserDirectory = map[int64]User

// StreamDirectory is a read-only snapshot mapping stream IDs to display
// names.
type StreamDirectory = map[int64]string
