package tagmatch

import (
	"context"
	"errors"
)

// fakeCatalog is a scripted Catalog used across tests in this package.
type fakeCatalog struct {
	albumByID  map[string]*AlbumInfo
	albums     []AlbumInfo // returned by MatchAlbum regardless of query, for simplicity
	vaAlbums   []AlbumInfo // returned only when artist == nil
	trackByID  map[string]*TrackInfo
	tracks     []TrackInfo
	failAlbums bool
}

func (c *fakeCatalog) AlbumByID(ctx context.Context, albumID string) (*AlbumInfo, error) {
	if c.albumByID == nil {
		return nil, nil
	}
	return c.albumByID[albumID], nil
}

func (c *fakeCatalog) MatchAlbum(ctx context.Context, artist *string, album string, trackCount, limit int) ([]AlbumInfo, error) {
	if c.failAlbums {
		return nil, errors.New("boom")
	}
	if artist == nil {
		return c.vaAlbums, nil
	}
	if len(c.albums) > limit {
		return c.albums[:limit], nil
	}
	return c.albums, nil
}

func (c *fakeCatalog) TrackByID(ctx context.Context, trackID string) (*TrackInfo, error) {
	if c.trackByID == nil {
		return nil, nil
	}
	return c.trackByID[trackID], nil
}

func (c *fakeCatalog) MatchTrack(ctx context.Context, artist, title string) ([]TrackInfo, error) {
	return c.tracks, nil
}
