// Package publisher defines the platform delivery boundary: one Publisher per
// platform family, plus the Facebook group-share capability. Implementations
// come in two flavors, simulated and live, selected by configuration.
package publisher

import "context"

// Publisher delivers a finished caption to one platform and returns a
// location reference (post URL). An empty URL or an error is a failed
// publish; the dispatch engine treats both the same way.
type Publisher interface {
	Name() string
	Publish(ctx context.Context, caption string) (string, error)
}

// GroupSharer re-shares an already-published Facebook post to a named group.
type GroupSharer interface {
	ShareToGroup(ctx context.Context, group, caption string) (string, error)
}

// Canonical platform family names used as registry keys.
const (
	FamilyFacebook  = "facebook"
	FamilyLinkedIn  = "linkedin"
	FamilyInstagram = "instagram"
)
