package narrow

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/veldtchat/veldt/pkg/chat"
)

// Link serializes the expression into a complete URL on the realm's base
// URL, with the fragment encoding the narrow. nearID anchors the view at
// a message; a value <= 0 means no anchor. Stream names are looked up in
// streams, falling back to the literal "unknown".
//
// The expression must already be resolved: a DirectUnresolved filter
// reaching this point panics, as does any filter kind this package does
// not define.
func Link(realm chat.Realm, streams chat.StreamDirectory, e Expression, nearID int64) string {
	u := *realm.BaseURL
	u.Fragment = e.fragment(streams, nearID)
	u.RawFragment = ""
	return u.String()
}

// fragment builds the URL fragment left to right: the literal "narrow",
// one "/<operator>/<operand>" group per filter, then an optional
// "/near/<id>". An empty expression yields the bare "narrow" fragment.
func (e Expression) fragment(streams chat.StreamDirectory, nearID int64) string {
	var b strings.Builder
	b.WriteString("narrow")
	for _, f := range e {
		b.WriteByte('/')
		if f.negated() {
			b.WriteByte('-')
		}
		switch f := f.(type) {
		case Stream:
			name, ok := streams[f.StreamID]
			if !ok {
				name = "unknown"
			}
			slug := encodeHashComponent(strings.ReplaceAll(name, " ", "-"))
			b.WriteString("stream/")
			b.WriteString(strconv.FormatInt(f.StreamID, 10))
			b.WriteByte('-')
			b.WriteString(slug)
		case Topic:
			b.WriteString("topic/")
			b.WriteString(encodeHashComponent(f.Name))
		case Direct:
			operator, suffix := "dm", "-dm"
			if f.Legacy {
				operator, suffix = "pm-with", "-pm"
			}
			if len(f.UserIDs) >= 3 {
				suffix = "-group"
			}
			b.WriteString(operator)
			b.WriteByte('/')
			for i, id := range f.UserIDs {
				if i > 0 {
					b.WriteByte(',')
				}
				b.WriteString(strconv.FormatInt(id, 10))
			}
			b.WriteString(suffix)
		case MessageID:
			b.WriteString("id/")
			b.WriteString(strconv.FormatInt(f.ID, 10))
		case DirectUnresolved:
			panic("narrow: unresolved direct-message filter reached serialization")
		default:
			panic(fmt.Sprintf("narrow: unknown filter type %T", f))
		}
	}
	if nearID > 0 {
		b.WriteString("/near/")
		b.WriteString(strconv.FormatInt(nearID, 10))
	}
	return b.String()
}
