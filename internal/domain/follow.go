package domain

import "time"

// FollowEdge is a directed follow relationship stored in the remote store.
// Follower display fields are denormalized onto the edge on purpose: the
// edge keeps rendering even if the follower's artist record later changes.
//
// Invariant: at most one edge exists per ordered (FollowerID, FollowingID)
// pair. Inserting an existing pair is a no-op, never a duplicate.
type FollowEdge struct {
	ID                string    `json:"id,omitempty"`
	FollowerID        string    `json:"follower_id"`
	FollowingID       string    `json:"following_id"`
	FollowerName      string    `json:"follower_name"`
	FollowerImage     string    `json:"follower_image,omitempty"`
	FollowerSpecialty string    `json:"follower_specialty,omitempty"`
	FollowerLocation  string    `json:"follower_location,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

// Favorite is a local-only saved-artist marker. It lives in the client's
// durable store, never the remote one, and is independent of the follow
// graph: saving an artist does not follow them and vice versa.
type Favorite struct {
	ArtistRef
	SavedAt time.Time `json:"saved_at"`
}
