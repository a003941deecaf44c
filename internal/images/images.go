// Package images implements the display-image selection policy for artists
// and artworks. Selection is pure: given the same inputs the same URL comes
// back, and the result is never empty.
package images

import "hash/fnv"

// Photo is one candidate artwork image reference.
type Photo struct {
	URL     string
	Primary bool
}

// Source holds the raw image-reference fields an artist or artwork may
// carry. Any or all fields may be empty.
type Source struct {
	// Photos are the artwork's uploaded images, in upload order.
	Photos []Photo
	// LegacyImage is the single-image field predating photo uploads.
	LegacyImage string
	// ProfileImage is the owning artist's profile image.
	ProfileImage string
}

// placeholderRotation is the fixed set a placeholder is picked from when no
// candidate field resolves. Selection is keyed by the entity id so repeated
// calls for the same entity stay stable.
var placeholderRotation = []string{
	"https://images.unsplash.com/photo-1549887534-1541e9326642?w=800",
	"https://images.unsplash.com/photo-1578321272176-b7bbc0679853?w=800",
	"https://images.unsplash.com/photo-1561214115-f2f134cc4912?w=800",
	"https://images.unsplash.com/photo-1513364776144-60967b0f800f?w=800",
}

// galleryPlaceholders is the fixed gallery shown for artists with no
// featured artworks. Always exactly three entries.
var galleryPlaceholders = []string{
	"https://images.unsplash.com/photo-1547826039-bfc35e0f1ea8?w=800",
	"https://images.unsplash.com/photo-1579783902614-a3fb3927b6a5?w=800",
	"https://images.unsplash.com/photo-1460661419201-fd4cecdf8a8b?w=800",
}

// Resolve picks the display image for an entity. Priority: first photo
// flagged primary, first photo by list order, the legacy single-image
// field, the profile image, then a deterministic placeholder keyed by seed.
func Resolve(seed string, src Source) string {
	if url := Candidate(src); url != "" {
		return url
	}
	return Placeholder(seed)
}

// Candidate walks the same priority chain as Resolve but returns "" when
// nothing matches, for callers with their own empty-set fallback.
func Candidate(src Source) string {
	for _, p := range src.Photos {
		if p.Primary && p.URL != "" {
			return p.URL
		}
	}
	for _, p := range src.Photos {
		if p.URL != "" {
			return p.URL
		}
	}
	if src.LegacyImage != "" {
		return src.LegacyImage
	}
	return src.ProfileImage
}

// Placeholder returns the placeholder for the given entity seed. The same
// seed always maps to the same rotation entry.
func Placeholder(seed string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(seed))
	return placeholderRotation[int(h.Sum32())%len(placeholderRotation)]
}

// GalleryPlaceholders returns the fixed fallback gallery. Callers receive a
// fresh copy; the backing set is immutable.
func GalleryPlaceholders() []string {
	out := make([]string, len(galleryPlaceholders))
	copy(out, galleryPlaceholders)
	return out
}
