package compose

import (
	"testing"

	"github.com/veldtchat/veldt/pkg/chat"
)

func TestMention(t *testing.T) {
	chris := chat.User{ID: 13313, FullName: "Chris Bobbe"}

	tests := []struct {
		name   string
		user   chat.User
		silent bool
		users  chat.UserDirectory
		want   string
	}{
		{
			name: "nil directory always includes id",
			user: chris,
			want: "@**Chris Bobbe|13313**",
		},
		{
			name:   "nil directory silent",
			user:   chris,
			silent: true,
			want:   "@_**Chris Bobbe|13313**",
		},
		{
			name:  "unique name omits id",
			user:  chris,
			users: chat.UserDirectory{13313: chris},
			want:  "@**Chris Bobbe**",
		},
		{
			name: "duplicate name includes id",
			user: chris,
			users: chat.UserDirectory{
				13313: chris,
				99:    {ID: 99, FullName: "Chris Bobbe"},
			},
			want: "@**Chris Bobbe|13313**",
		},
		{
			name:   "duplicate name silent",
			user:   chris,
			silent: true,
			users: chat.UserDirectory{
				13313: chris,
				99:    {ID: 99, FullName: "Chris Bobbe"},
			},
			want: "@_**Chris Bobbe|13313**",
		},
		{
			name: "other names do not collide",
			user: chris,
			users: chat.UserDirectory{
				13313: chris,
				1:     {ID: 1, FullName: "Ada Lovelace"},
				2:     {ID: 2, FullName: "Alan Turing"},
			},
			want: "@**Chris Bobbe**",
		},
		{
			name:  "empty directory omits id",
			user:  chris,
			users: chat.UserDirectory{},
			want:  "@**Chris Bobbe**",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Mention(tt.user, tt.silent, tt.users)
			if got != tt.want {
				t.Errorf("Mention(%v, silent=%v)\n  got  = %q\n  want = %q",
					tt.user, tt.silent, got, tt.want)
			}
		})
	}
}
