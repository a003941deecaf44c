// Package search provides full-text search over the discovery feed using
// Bleve. The feed is small and replaced wholesale on every refresh, so the
// index lives in memory and is rebuilt rather than incrementally updated.
package search

import (
	"github.com/artisthub/artisthub-server/internal/domain"
)

// ArtistDocument is the indexed shape of a feed artist.
type ArtistDocument struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
	Location  string `json:"location"`
	Bio       string `json:"bio"`
	BoothName string `json:"booth_name"`
	Featured  bool   `json:"featured"`
}

// ToMap converts the document to a map with lowercase field names so they
// match the index mapping. Bleve would otherwise index the capitalized Go
// field names.
func (d *ArtistDocument) ToMap() map[string]interface{} {
	m := map[string]interface{}{
		"id":       d.ID,
		"name":     d.Name,
		"featured": d.Featured,
	}
	if d.Specialty != "" {
		m["specialty"] = d.Specialty
	}
	if d.Location != "" {
		m["location"] = d.Location
	}
	if d.Bio != "" {
		m["bio"] = d.Bio
	}
	if d.BoothName != "" {
		m["booth_name"] = d.BoothName
	}
	return m
}

// ArtistToDocument converts a feed record to its indexed form.
func ArtistToDocument(rec *domain.ArtistRecord) *ArtistDocument {
	doc := &ArtistDocument{
		ID:        rec.ID.String(),
		Name:      rec.Name,
		Specialty: rec.Specialty,
		Location:  rec.Location,
		Bio:       rec.Bio,
		Featured:  rec.Featured,
	}
	if rec.Booth != nil {
		doc.BoothName = rec.Booth.Name
	}
	return doc
}
