package domain

// Session carries the acting user's identity into graph operations.
// Identity resolution happens upstream; by the time a Session exists its
// fields are final for the lifetime of the user's graph service.
type Session struct {
	UserID       string
	DisplayName  string
	ProfileImage string
	Specialty    string
	Location     string
}

// CanPublish reports whether the session can write follow edges to the
// remote store. Both a user id and a display name are required because the
// edge denormalizes the follower's display fields.
func (s Session) CanPublish() bool {
	return s.UserID != "" && s.DisplayName != ""
}
