package session

import (
	"time"

	"github.com/BristonLowell/vinnies-brain-app-sub000/pkg/ports"
)

// Signature is the cheap fingerprint computed on every poll: item count plus
// id and timestamp of the last item. Two fetches with equal signatures are
// treated as the same remote state and the later one is not re-applied, so
// unchanged data never causes a redundant re-render or scroll jump.
type Signature struct {
	Count     int
	LastID    string
	LastStamp time.Time
}

// MessagesSignature fingerprints a message history page.
func MessagesSignature(msgs []ports.Message) Signature {
	if len(msgs) == 0 {
		return Signature{}
	}
	last := msgs[len(msgs)-1]
	return Signature{Count: len(msgs), LastID: last.ID, LastStamp: last.SentAt}
}

// PinnedSignature fingerprints a pinned-position report. The count field
// doubles as a presence flag so clearing the pin reads as a change.
func PinnedSignature(p ports.Pinned) Signature {
	if p.ArticleID == "" && p.NodeID == "" {
		return Signature{}
	}
	return Signature{Count: 1, LastID: p.ArticleID + "/" + p.NodeID}
}
