package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/artisthub/artisthub-server/internal/domain"
)

// ArtistRow is an `artists` table row with its embedded artworks.
type ArtistRow struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Location     string       `json:"location"`
	Specialty    string       `json:"specialty"`
	Bio          string       `json:"bio"`
	ProfileImage string       `json:"profile_image"`
	Discoverable bool         `json:"discoverable"`
	Featured     bool         `json:"featured"`
	Artworks     []ArtworkRow `json:"artworks"`
}

// ArtworkRow is an `artworks` table row. ArtworkImage is the legacy
// single-image column kept for rows that predate photo uploads.
type ArtworkRow struct {
	ID           string     `json:"id"`
	ArtistID     string     `json:"artist_id"`
	Title        string     `json:"title"`
	ArtworkImage string     `json:"artwork_image"`
	Featured     bool       `json:"artwork_featured"`
	ForSale      bool       `json:"artwork_for_sale"`
	Photos       []PhotoRow `json:"photos"`
}

// PhotoRow is one uploaded image of an artwork.
type PhotoRow struct {
	URL       string `json:"image_url"`
	IsPrimary bool   `json:"is_primary"`
}

// BoothRow is a `booths` table row.
type BoothRow struct {
	ID          string `json:"id"`
	ArtistID    string `json:"artist_id"`
	Name        string `json:"booth_name"`
	Operator    string `json:"operator_name"`
	Location    string `json:"booth_location"`
	Description string `json:"description"`
	Image       string `json:"booth_image"`
}

// DiscoverableArtists returns every artist flagged discoverable, each with
// its artworks embedded, in the remote store's response order.
func (c *Client) DiscoverableArtists(ctx context.Context) ([]ArtistRow, error) {
	if c == nil {
		return nil, ErrNotConfigured
	}

	resp, err := c.From("artists").
		Select("*,artworks(*,photos(*))").
		Eq("discoverable", true).
		Execute(ctx)
	if err != nil {
		return nil, fmt.Errorf("query artists: %w", err)
	}
	if err := resp.Error(); err != nil {
		return nil, err
	}

	var rows []ArtistRow
	if err := resp.JSON(&rows); err != nil {
		return nil, fmt.Errorf("decode artists: %w", err)
	}
	return rows, nil
}

// BoothsFor returns the booths belonging to the given artists.
func (c *Client) BoothsFor(ctx context.Context, artistIDs []string) ([]BoothRow, error) {
	if c == nil {
		return nil, ErrNotConfigured
	}
	if len(artistIDs) == 0 {
		return nil, nil
	}

	resp, err := c.From("booths").
		Select("*").
		In("artist_id", artistIDs).
		Execute(ctx)
	if err != nil {
		return nil, fmt.Errorf("query booths: %w", err)
	}
	if err := resp.Error(); err != nil {
		return nil, err
	}

	var rows []BoothRow
	if err := resp.JSON(&rows); err != nil {
		return nil, fmt.Errorf("decode booths: %w", err)
	}
	return rows, nil
}

// FollowersOf returns the follow edges pointing at the given user, newest
// first.
func (c *Client) FollowersOf(ctx context.Context, userID string) ([]domain.FollowEdge, error) {
	if c == nil {
		return nil, ErrNotConfigured
	}

	resp, err := c.From("followers").
		Select("*").
		Eq("following_id", userID).
		Order("created_at", false).
		Execute(ctx)
	if err != nil {
		return nil, fmt.Errorf("query followers: %w", err)
	}
	if err := resp.Error(); err != nil {
		return nil, err
	}

	var edges []domain.FollowEdge
	if err := resp.JSON(&edges); err != nil {
		return nil, fmt.Errorf("decode followers: %w", err)
	}
	return edges, nil
}

// InsertFollow writes a follow edge. The (follower_id, following_id) pair
// is the conflict target, so re-following merges into the existing edge
// instead of creating a duplicate.
func (c *Client) InsertFollow(ctx context.Context, edge domain.FollowEdge) error {
	if c == nil {
		return ErrNotConfigured
	}

	if edge.CreatedAt.IsZero() {
		edge.CreatedAt = time.Now().UTC()
	}

	resp, err := c.From("followers").ExecuteInsert(ctx, edge, "follower_id,following_id")
	if err != nil {
		return fmt.Errorf("insert follow edge: %w", err)
	}
	return resp.Error()
}

// DeleteFollow removes the edge for the ordered (followerID, followingID)
// pair. Deleting an absent edge is not an error.
func (c *Client) DeleteFollow(ctx context.Context, followerID, followingID string) error {
	if c == nil {
		return ErrNotConfigured
	}

	resp, err := c.From("followers").
		Eq("following_id", followingID).
		Eq("follower_id", followerID).
		ExecuteDelete(ctx)
	if err != nil {
		return fmt.Errorf("delete follow edge: %w", err)
	}
	return resp.Error()
}

// InsertArtist writes an artist row. Used by the seed tool.
func (c *Client) InsertArtist(ctx context.Context, row ArtistRow) error {
	if c == nil {
		return ErrNotConfigured
	}

	// Artworks are a separate table; never send them inline.
	row.Artworks = nil

	resp, err := c.From("artists").ExecuteInsert(ctx, row, "id")
	if err != nil {
		return fmt.Errorf("insert artist: %w", err)
	}
	return resp.Error()
}

// InsertArtwork writes an artwork row. Used by the seed tool.
func (c *Client) InsertArtwork(ctx context.Context, row ArtworkRow) error {
	if c == nil {
		return ErrNotConfigured
	}

	row.Photos = nil

	resp, err := c.From("artworks").ExecuteInsert(ctx, row, "id")
	if err != nil {
		return fmt.Errorf("insert artwork: %w", err)
	}
	return resp.Error()
}
