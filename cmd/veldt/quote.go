package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/veldtchat/veldt/internal/directory"
	"github.com/veldtchat/veldt/pkg/chat"
	"github.com/veldtchat/veldt/pkg/compose"
)

func quoteCmd() *cobra.Command {
	var (
		snapshotPath string
		messageID    int64
		senderID     int64
		streamID     int64
		topic        string
		dmSpec       string
		contentPath  string
		placeholder  bool
	)

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Compose a quote-and-reply message body",
		Long: `Compose a quote-and-reply message body.

The quoted message's conversation is either --stream-id with --topic, or
--dm with the comma-separated participant ids. Raw content is read from
--content (use "-" for stdin) unless --placeholder is given.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			snap, err := directory.Load(snapshotPath)
			if err != nil {
				return err
			}

			var conv chat.Conversation
			switch {
			case streamID > 0 && dmSpec == "":
				conv = chat.StreamConversation{StreamID: streamID, Topic: topic}
			case dmSpec != "" && streamID == 0:
				ids, err := parseIDList(dmSpec)
				if err != nil {
					return err
				}
				conv = chat.DirectConversation{UserIDs: ids}
			default:
				return fmt.Errorf("give exactly one of --stream-id or --dm")
			}

			if _, ok := snap.Users[senderID]; !ok {
				return fmt.Errorf("sender %d not in snapshot user directory", senderID)
			}

			c := compose.Composer{Realm: snap.Realm, Users: snap.Users, Streams: snap.Streams}
			msg := chat.Message{ID: messageID, SenderID: senderID, Conversation: conv}

			if placeholder {
				fmt.Print(c.QuoteAndReplyPlaceholder(msg))
				return nil
			}

			content, err := readContent(contentPath)
			if err != nil {
				return err
			}
			fmt.Print(c.QuoteAndReply(msg, content))
			return nil
		},
	}

	cmd.Flags().StringVar(&snapshotPath, "snapshot", "", "realm snapshot YAML file (required)")
	cmd.Flags().Int64Var(&messageID, "message-id", 0, "quoted message id (required)")
	cmd.Flags().Int64Var(&senderID, "sender-id", 0, "quoted message sender id (required)")
	cmd.Flags().Int64Var(&streamID, "stream-id", 0, "stream id of the quoted message's conversation")
	cmd.Flags().StringVar(&topic, "topic", "", "topic of the quoted message's conversation")
	cmd.Flags().StringVar(&dmSpec, "dm", "", "comma-separated participant ids for a direct conversation")
	cmd.Flags().StringVar(&contentPath, "content", "-", `raw content file, "-" for stdin`)
	cmd.Flags().BoolVar(&placeholder, "placeholder", false, "emit the loading placeholder instead of quoting content")
	_ = cmd.MarkFlagRequired("snapshot")
	_ = cmd.MarkFlagRequired("message-id")
	_ = cmd.MarkFlagRequired("sender-id")
	return cmd
}

func readContent(path string) (string, error) {
	if path == "-" {
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(raw), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(raw), nil
}
