package compose

import (
	"fmt"

	"github.com/veldtchat/veldt/pkg/chat"
)

// Mention renders an @-mention token for user: @**Name|id**, or
// @_**Name|id** when silent (a silent mention references the user
// without notifying them).
//
// The |id suffix disambiguates users who share a full name. With a nil
// directory there is no way to check, so the id is always included (the
// safe default). With a directory, the id is included only when two or
// more distinct users carry the same full name; the scan stops at the
// second match, so large directories cost at most one full pass.
func Mention(user chat.User, silent bool, users chat.UserDirectory) string {
	marker := ""
	if silent {
		marker = "_"
	}
	if nameIsAmbiguous(user.FullName, users) {
		return fmt.Sprintf("@%s**%s|%d**", marker, user.FullName, user.ID)
	}
	return fmt.Sprintf("@%s**%s**", marker, user.FullName)
}

func nameIsAmbiguous(fullName string, users chat.UserDirectory) bool {
	if users == nil {
		return true
	}
	matches := 0
	for _, u := range users {
		if u.FullName == fullName {
			matches++
			if matches >= 2 {
				return true
			}
		}
	}
	return false
}
