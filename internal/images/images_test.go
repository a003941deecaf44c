package images

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve_Priority(t *testing.T) {
	tests := []struct {
		name string
		src  Source
		want string
	}{
		{
			name: "primary photo wins over order",
			src: Source{
				Photos: []Photo{
					{URL: "first.jpg"},
					{URL: "primary.jpg", Primary: true},
				},
				LegacyImage:  "legacy.jpg",
				ProfileImage: "profile.jpg",
			},
			want: "primary.jpg",
		},
		{
			name: "first photo when no primary",
			src: Source{
				Photos:      []Photo{{URL: "first.jpg"}, {URL: "second.jpg"}},
				LegacyImage: "legacy.jpg",
			},
			want: "first.jpg",
		},
		{
			name: "primary with empty url is skipped",
			src: Source{
				Photos: []Photo{
					{URL: "", Primary: true},
					{URL: "second.jpg"},
				},
			},
			want: "second.jpg",
		},
		{
			name: "legacy field when no photos",
			src:  Source{LegacyImage: "legacy.jpg", ProfileImage: "profile.jpg"},
			want: "legacy.jpg",
		},
		{
			name: "profile image as last real candidate",
			src:  Source{ProfileImage: "profile.jpg"},
			want: "profile.jpg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve("seed", tt.src))
		})
	}
}

func TestCandidate_EmptyWhenNothingMatches(t *testing.T) {
	assert.Empty(t, Candidate(Source{}))
	assert.Empty(t, Candidate(Source{Photos: []Photo{{URL: ""}, {URL: "", Primary: true}}}))
	assert.Equal(t, "profile.jpg", Candidate(Source{ProfileImage: "profile.jpg"}))
}

func TestResolve_NeverEmpty(t *testing.T) {
	got := Resolve("artist-42", Source{})
	assert.NotEmpty(t, got)
	assert.Contains(t, placeholderRotation, got)
}

func TestPlaceholder_Deterministic(t *testing.T) {
	first := Placeholder("static-3")
	for range 10 {
		assert.Equal(t, first, Placeholder("static-3"))
	}
}

func TestGalleryPlaceholders_FixedAndCopied(t *testing.T) {
	a := GalleryPlaceholders()
	assert.Len(t, a, 3)

	// Mutating a returned slice must not leak into later calls.
	a[0] = "mutated.jpg"
	b := GalleryPlaceholders()
	assert.NotEqual(t, "mutated.jpg", b[0])
	assert.Equal(t, galleryPlaceholders, b)
}
