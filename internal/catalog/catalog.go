// Package catalog holds the bundled fallback artist data. The catalog is
// immutable and always available, so the discovery feed has content even
// with no remote store at all.
package catalog

import (
	"github.com/artisthub/artisthub-server/internal/domain"
)

// catalog is the built-in artist set. Ids use the static namespace and can
// never collide with remote UUIDs. Do not mutate; Artists returns copies.
var catalog = []domain.ArtistRecord{
	{
		ID:           domain.StaticID(1),
		Name:         "Maya Linden",
		Location:     "Portland, OR",
		Specialty:    "Watercolor",
		Bio:          "Coastal landscapes and botanical studies in loose watercolor.",
		ProfileImage: "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=400",
		ArtworkImages: []string{
			"https://images.unsplash.com/photo-1579965342575-16428a7c8881?w=800",
			"https://images.unsplash.com/photo-1578926288207-a90a5366759d?w=800",
			"https://images.unsplash.com/photo-1582561871777-118b4cbf3314?w=800",
		},
		Featured: true,
	},
	{
		ID:           domain.StaticID(2),
		Name:         "Theo Marchetti",
		Location:     "Brooklyn, NY",
		Specialty:    "Screen printing",
		Bio:          "Limited-run gig posters and bold two-color prints.",
		ProfileImage: "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=400",
		ArtworkImages: []string{
			"https://images.unsplash.com/photo-1561059488-916d69792237?w=800",
			"https://images.unsplash.com/photo-1569172122301-bc5008bc09c5?w=800",
		},
		Featured: true,
		Booth: &domain.BoothInfo{
			Name:        "Marchetti Print Co.",
			Operator:    "Theo Marchetti",
			Location:    "Row C, Booth 14",
			Description: "Live screen printing demos every afternoon.",
			Image:       "https://images.unsplash.com/photo-1572947650440-e8a97ef053b2?w=800",
		},
	},
	{
		ID:           domain.StaticID(3),
		Name:         "June Okafor",
		Location:     "Austin, TX",
		Specialty:    "Ceramics",
		Bio:          "Hand-thrown stoneware with ash glazes.",
		ProfileImage: "https://images.unsplash.com/photo-1531123897727-8f129e1688ce?w=400",
		ArtworkImages: []string{
			"https://images.unsplash.com/photo-1565193566173-7a0ee3dbe261?w=800",
			"https://images.unsplash.com/photo-1610701596007-11502861dcfa?w=800",
			"https://images.unsplash.com/photo-1578500494198-246f612d3b3d?w=800",
			"https://images.unsplash.com/photo-1493106641515-6b5631de4bb9?w=800",
		},
	},
	{
		ID:           domain.StaticID(4),
		Name:         "Sam Whitfield",
		Location:     "Chicago, IL",
		Specialty:    "Oil painting",
		Bio:          "Urban night scenes in heavy impasto.",
		ProfileImage: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400",
		ArtworkImages: []string{
			"https://images.unsplash.com/photo-1549887552-cb1071d3e5ca?w=800",
		},
	},
	{
		ID:           domain.StaticID(5),
		Name:         "Riko Tanaka",
		Location:     "Seattle, WA",
		Specialty:    "Illustration",
		Bio:          "Ink and digital illustration, folklore themes.",
		ProfileImage: "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=400",
		ArtworkImages: []string{
			"https://images.unsplash.com/photo-1618331835717-801e976710b2?w=800",
			"https://images.unsplash.com/photo-1605721911519-3dfeb3be25e7?w=800",
			"https://images.unsplash.com/photo-1515405295579-ba7b45403062?w=800",
		},
	},
	{
		ID:           domain.StaticID(6),
		Name:         "Elena Voss",
		Location:     "Santa Fe, NM",
		Specialty:    "Textile art",
		Bio:          "Hand-dyed weavings from desert plant pigments.",
		ProfileImage: "https://images.unsplash.com/photo-1544005313-94ddf0286df2?w=400",
		ArtworkImages: []string{
			"https://images.unsplash.com/photo-1528459801416-a9e53bbf4e17?w=800",
			"https://images.unsplash.com/photo-1576158113928-4c240eaaf360?w=800",
		},
	},
}

// Artists returns the static catalog in its fixed order. The result is a
// fresh copy on every call so aggregation passes can never mutate shared
// state.
func Artists() []domain.ArtistRecord {
	out := make([]domain.ArtistRecord, len(catalog))
	copy(out, catalog)
	for i := range out {
		imgs := make([]string, len(catalog[i].ArtworkImages))
		copy(imgs, catalog[i].ArtworkImages)
		out[i].ArtworkImages = imgs
		if catalog[i].Booth != nil {
			booth := *catalog[i].Booth
			out[i].Booth = &booth
		}
	}
	return out
}

// Size returns the number of catalog entries.
func Size() int { return len(catalog) }
