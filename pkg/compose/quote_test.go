package compose

import (
	"net/url"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/veldtchat/veldt/pkg/chat"
)

func testComposer(t *testing.T, capabilityLevel int) Composer {
	t.Helper()
	base, err := url.Parse("https://realm.example/")
	if err != nil {
		t.Fatalf("parsing base URL: %v", err)
	}
	return Composer{
		Realm: chat.Realm{BaseURL: base, CapabilityLevel: capabilityLevel},
		Users: chat.UserDirectory{
			13313: {ID: 13313, FullName: "Chris Bobbe"},
			5:     {ID: 5, FullName: "Ada Lovelace"},
			6:     {ID: 6, FullName: "Alan Turing"},
		},
		Streams: chat.StreamDirectory{48: "mobile"},
	}
}

func TestQuoteAndReplyPlaceholder(t *testing.T) {
	tests := []struct {
		name            string
		capabilityLevel int
		msg             chat.Message
		want            string
	}{
		{
			name:            "stream message",
			capabilityLevel: 200,
			msg: chat.Message{
				ID:           12345,
				SenderID:     13313,
				Conversation: chat.StreamConversation{StreamID: 48, Topic: "release planning"},
			},
			want: "@_**Chris Bobbe** [said](https://realm.example/#narrow/stream/48-mobile/topic/release.20planning/near/12345): *(loading message 12345)*\n",
		},
		{
			name:            "direct message on modern server",
			capabilityLevel: 200,
			msg: chat.Message{
				ID:           777,
				SenderID:     5,
				Conversation: chat.DirectConversation{UserIDs: []int64{5, 13313}},
			},
			want: "@_**Ada Lovelace** [said](https://realm.example/#narrow/dm/5,13313-dm/near/777): *(loading message 777)*\n",
		},
		{
			name:            "direct message on legacy server",
			capabilityLevel: 100,
			msg: chat.Message{
				ID:           777,
				SenderID:     5,
				Conversation: chat.DirectConversation{UserIDs: []int64{5, 13313}},
			},
			want: "@_**Ada Lovelace** [said](https://realm.example/#narrow/pm-with/5,13313-pm/near/777): *(loading message 777)*\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := testComposer(t, tt.capabilityLevel)
			got := c.QuoteAndReplyPlaceholder(tt.msg)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("placeholder mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestQuoteAndReply(t *testing.T) {
	tests := []struct {
		name       string
		msg        chat.Message
		rawContent string
		want       string
	}{
		{
			name: "plain content",
			msg: chat.Message{
				ID:           12345,
				SenderID:     13313,
				Conversation: chat.StreamConversation{StreamID: 48, Topic: "release planning"},
			},
			rawContent: "Shipping **tomorrow**.",
			want: "@_**Chris Bobbe** [said](https://realm.example/#narrow/stream/48-mobile/topic/release.20planning/near/12345):\n" +
				"```quote\nShipping **tomorrow**.\n```\n",
		},
		{
			name: "content with its own fence",
			msg: chat.Message{
				ID:           12345,
				SenderID:     13313,
				Conversation: chat.StreamConversation{StreamID: 48, Topic: "release planning"},
			},
			rawContent: "try this:\n```sh\nmake test\n```",
			want: "@_**Chris Bobbe** [said](https://realm.example/#narrow/stream/48-mobile/topic/release.20planning/near/12345):\n" +
				"````quote\ntry this:\n```sh\nmake test\n```\n````\n",
		},
		{
			name: "empty content",
			msg: chat.Message{
				ID:           12345,
				SenderID:     13313,
				Conversation: chat.StreamConversation{StreamID: 48, Topic: "release planning"},
			},
			rawContent: "",
			want: "@_**Chris Bobbe** [said](https://realm.example/#narrow/stream/48-mobile/topic/release.20planning/near/12345):\n" +
				"```quote\n```\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := testComposer(t, 200)
			got := c.QuoteAndReply(tt.msg, tt.rawContent)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("quote body mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestQuoteHeadersMatch(t *testing.T) {
	// The placeholder is swapped for the final body in place, so both
	// must open with a byte-identical header through the colon.
	c := testComposer(t, 200)
	msg := chat.Message{
		ID:           42,
		SenderID:     6,
		Conversation: chat.StreamConversation{StreamID: 48, Topic: "headers"},
	}

	placeholder := c.QuoteAndReplyPlaceholder(msg)
	final := c.QuoteAndReply(msg, "content")

	// The header's colon is the last one in the placeholder (the link's
	// scheme colon comes earlier).
	cut := strings.LastIndex(placeholder, ":")
	if cut < 0 {
		t.Fatalf("placeholder has no colon: %q", placeholder)
	}
	header := placeholder[:cut+1]
	if !strings.HasPrefix(final, header) {
		t.Errorf("final body does not share the placeholder header\n  header = %q\n  final  = %q",
			header, final)
	}
}

func TestQuotePanicsOnUnknownSender(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for sender missing from directory")
		}
	}()
	c := testComposer(t, 200)
	c.QuoteAndReply(chat.Message{
		ID:           1,
		SenderID:     424242,
		Conversation: chat.StreamConversation{StreamID: 48, Topic: "x"},
	}, "content")
}
