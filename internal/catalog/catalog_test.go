package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArtists_UniqueStaticIDs(t *testing.T) {
	artists := Artists()
	require.NotEmpty(t, artists)

	seen := make(map[string]bool)
	for _, a := range artists {
		assert.True(t, a.ID.IsStatic(), "catalog entry %s must use the static namespace", a.Name)
		assert.False(t, a.IsRealUser)
		assert.False(t, seen[a.ID.String()], "duplicate id %s", a.ID)
		seen[a.ID.String()] = true
	}
}

func TestArtists_GalleryBounds(t *testing.T) {
	for _, a := range Artists() {
		assert.NotEmpty(t, a.Name)
		assert.LessOrEqual(t, len(a.ArtworkImages), 4, "artist %s", a.Name)
	}
}

func TestArtists_ReturnsCopies(t *testing.T) {
	first := Artists()
	first[0].Name = "mutated"
	first[0].ArtworkImages[0] = "mutated.jpg"
	if first[1].Booth != nil {
		first[1].Booth.Name = "mutated"
	}

	second := Artists()
	assert.NotEqual(t, "mutated", second[0].Name)
	assert.NotEqual(t, "mutated.jpg", second[0].ArtworkImages[0])
	if second[1].Booth != nil {
		assert.NotEqual(t, "mutated", second[1].Booth.Name)
	}
}

func TestSize(t *testing.T) {
	assert.Equal(t, len(Artists()), Size())
}
