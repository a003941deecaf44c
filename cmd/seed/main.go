// Package main provides a tool to seed the remote store with the static
// catalog, so a fresh deployment has discoverable artists to show.
//
// Usage:
//
//	SUPABASE_URL=https://xyz.supabase.co SUPABASE_ANON_KEY=... go run ./cmd/seed
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/artisthub/artisthub-server/internal/catalog"
	"github.com/artisthub/artisthub-server/internal/gateway"
)

var dryRun = flag.Bool("dry-run", false, "Print what would be inserted without writing")

func main() {
	flag.Parse()

	url := os.Getenv("SUPABASE_URL")
	key := os.Getenv("SUPABASE_ANON_KEY")
	if url == "" || key == "" {
		log.Fatal("SUPABASE_URL and SUPABASE_ANON_KEY are required")
	}

	client, err := gateway.New(gateway.Config{
		URL:            url,
		APIKey:         key,
		RequestTimeout: 15 * time.Second,
	})
	if err != nil {
		log.Fatalf("Failed to create remote store client: %v", err)
	}

	ctx := context.Background()
	artists := catalog.Artists()
	fmt.Printf("Seeding %d artists to %s\n", len(artists), url)

	for _, artist := range artists {
		// The remote store keys artists by uuid; derive a stable one from
		// the static id so re-running the seed updates in place.
		artistID := uuid.NewSHA1(uuid.NameSpaceOID, []byte(artist.ID.String())).String()

		row := gateway.ArtistRow{
			ID:           artistID,
			Name:         artist.Name,
			Location:     artist.Location,
			Specialty:    artist.Specialty,
			Bio:          artist.Bio,
			ProfileImage: artist.ProfileImage,
			Discoverable: true,
			Featured:     artist.Featured,
		}

		if *dryRun {
			fmt.Printf("  would insert artist %s (%s)\n", artist.Name, artistID)
			continue
		}

		if err := client.InsertArtist(ctx, row); err != nil {
			log.Fatalf("Failed to insert artist %s: %v", artist.Name, err)
		}
		fmt.Printf("  inserted artist %s\n", artist.Name)

		for n, image := range artist.ArtworkImages {
			artworkID := uuid.NewSHA1(uuid.NameSpaceOID, fmt.Appendf(nil, "%s/artwork/%d", artist.ID.String(), n)).String()
			artwork := gateway.ArtworkRow{
				ID:           artworkID,
				ArtistID:     artistID,
				Title:        fmt.Sprintf("%s, Artwork %d", artist.Name, n+1),
				ArtworkImage: image,
				Featured:     true,
			}
			if err := client.InsertArtwork(ctx, artwork); err != nil {
				log.Fatalf("Failed to insert artwork for %s: %v", artist.Name, err)
			}
		}
		if len(artist.ArtworkImages) > 0 {
			fmt.Printf("    %d artworks\n", len(artist.ArtworkImages))
		}
	}

	fmt.Println("Done")
}
