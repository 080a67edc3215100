package server

import (
	"fmt"

	"github.com/veldtchat/veldt/pkg/chat"
	"github.com/veldtchat/veldt/pkg/narrow"
)

// filterSpec is the wire form of one narrow filter: a flat union
// discriminated by Operator, with only the fields for that operator set.
type filterSpec struct {
	Operator  string  `json:"operator"`
	Negated   bool    `json:"negated,omitempty"`
	StreamID  int64   `json:"stream_id,omitempty"`
	Topic     string  `json:"topic,omitempty"`
	UserIDs   []int64 `json:"user_ids,omitempty"`
	MessageID int64   `json:"message_id,omitempty"`
}

// toFilter validates the spec and converts it to a narrow filter.
// Direct-message specs become unresolved filters; the handler resolves
// the whole expression against the snapshot's capability level.
func (f filterSpec) toFilter() (narrow.Filter, error) {
	switch f.Operator {
	case "stream":
		if f.StreamID <= 0 {
			return nil, fmt.Errorf("stream filter needs a positive stream_id, got %d", f.StreamID)
		}
		return narrow.Stream{StreamID: f.StreamID, Negated: f.Negated}, nil
	case "topic":
		if f.Topic == "" {
			return nil, fmt.Errorf("topic filter needs a topic")
		}
		return narrow.Topic{Name: f.Topic, Negated: f.Negated}, nil
	case "dm":
		if len(f.UserIDs) == 0 {
			return nil, fmt.Errorf("dm filter needs at least one user id")
		}
		return narrow.DirectUnresolved{UserIDs: f.UserIDs, Negated: f.Negated}, nil
	case "id":
		if f.MessageID <= 0 {
			return nil, fmt.Errorf("id filter needs a positive message_id, got %d", f.MessageID)
		}
		return narrow.MessageID{ID: f.MessageID, Negated: f.Negated}, nil
	default:
		return nil, fmt.Errorf("unknown operator %q", f.Operator)
	}
}

// conversationSpec is the wire form of a message's conversation.
type conversationSpec struct {
	Type     string  `json:"type"` // "stream" or "direct"
	StreamID int64   `json:"stream_id,omitempty"`
	Topic    string  `json:"topic,omitempty"`
	UserIDs  []int64 `json:"user_ids,omitempty"`
}

func (c conversationSpec) toConversation() (chat.Conversation, error) {
	switch c.Type {
	case "stream":
		if c.StreamID <= 0 {
			return nil, fmt.Errorf("stream conversation needs a positive stream_id, got %d", c.StreamID)
		}
		return chat.StreamConversation{StreamID: c.StreamID, Topic: c.Topic}, nil
	case "direct":
		if len(c.UserIDs) == 0 {
			return nil, fmt.Errorf("direct conversation needs at least one user id")
		}
		return chat.DirectConversation{UserIDs: c.UserIDs}, nil
	default:
		return nil, fmt.Errorf("unknown conversation type %q", c.Type)
	}
}

type quoteRequest struct {
	MessageID    int64            `json:"message_id"`
	SenderID     int64            `json:"sender_id"`
	Conversation conversationSpec `json:"conversation"`
	RawContent   string           `json:"raw_content"`
	Placeholder  bool             `json:"placeholder"`
}

type linkRequest struct {
	Filters []filterSpec `json:"filters"`
	Near    int64        `json:"near,omitempty"`
}
