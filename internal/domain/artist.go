package domain

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// ArtistID identifies an artist record. It is a tagged variant: remote
// artists carry the UUID assigned by the remote store, static catalog
// artists carry a small integer. Keeping the two namespaces in separate
// variants means a static id can never collide with a remote one.
type ArtistID struct {
	remote uuid.UUID
	static int
	kind   idKind
}

type idKind uint8

const (
	idUnset idKind = iota
	idRemote
	idStatic
)

// staticIDPrefix namespaces static catalog ids in their string form.
const staticIDPrefix = "static-"

// RemoteID wraps a remote store UUID as an ArtistID.
func RemoteID(id uuid.UUID) ArtistID {
	return ArtistID{remote: id, kind: idRemote}
}

// StaticID wraps a static catalog ordinal as an ArtistID.
func StaticID(n int) ArtistID {
	return ArtistID{static: n, kind: idStatic}
}

// ParseArtistID parses the string form produced by ArtistID.String.
func ParseArtistID(s string) (ArtistID, error) {
	if rest, ok := strings.CutPrefix(s, staticIDPrefix); ok {
		n, err := strconv.Atoi(rest)
		if err != nil || n < 0 {
			return ArtistID{}, fmt.Errorf("invalid static artist id %q", s)
		}
		return StaticID(n), nil
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return ArtistID{}, fmt.Errorf("invalid artist id %q: %w", s, err)
	}
	return RemoteID(u), nil
}

// IsZero reports whether the id is the zero value.
func (id ArtistID) IsZero() bool { return id.kind == idUnset }

// IsRemote reports whether the id refers to a remote-backed artist.
func (id ArtistID) IsRemote() bool { return id.kind == idRemote }

// IsStatic reports whether the id refers to a static catalog artist.
func (id ArtistID) IsStatic() bool { return id.kind == idStatic }

// String returns the canonical string form: the bare UUID for remote ids,
// "static-<n>" for static ids.
func (id ArtistID) String() string {
	switch id.kind {
	case idRemote:
		return id.remote.String()
	case idStatic:
		return staticIDPrefix + strconv.Itoa(id.static)
	default:
		return ""
	}
}

// MarshalText implements encoding.TextMarshaler so the id serializes as its
// string form in JSON bodies and map keys.
func (id ArtistID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *ArtistID) UnmarshalText(text []byte) error {
	parsed, err := ParseArtistID(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// ArtistRecord is one entry of the discovery feed. Records are constructed
// fresh on every aggregation pass and never mutated in place.
type ArtistRecord struct {
	ID            ArtistID   `json:"id"`
	Name          string     `json:"name"`
	Location      string     `json:"location,omitempty"`
	Specialty     string     `json:"specialty,omitempty"`
	Bio           string     `json:"bio,omitempty"`
	ProfileImage  string     `json:"profile_image,omitempty"`
	ArtworkImages []string   `json:"artwork_images"`
	Featured      bool       `json:"featured"`
	IsRealUser    bool       `json:"is_real_user"`
	Booth         *BoothInfo `json:"booth,omitempty"`
}

// BoothInfo is the booth attached to an artist record, at most one per
// artist. Absent booths are represented by a nil pointer, not an error.
type BoothInfo struct {
	Name        string `json:"name"`
	Operator    string `json:"operator,omitempty"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
}

// ArtistRef is the denormalized display subset of an artist carried on
// relationship records so lists render without a join.
type ArtistRef struct {
	ID           ArtistID `json:"id"`
	Name         string   `json:"name"`
	ProfileImage string   `json:"profile_image,omitempty"`
	Specialty    string   `json:"specialty,omitempty"`
	Location     string   `json:"location,omitempty"`
}

// Ref returns the display subset of the record.
func (a *ArtistRecord) Ref() ArtistRef {
	return ArtistRef{
		ID:           a.ID,
		Name:         a.Name,
		ProfileImage: a.ProfileImage,
		Specialty:    a.Specialty,
		Location:     a.Location,
	}
}
