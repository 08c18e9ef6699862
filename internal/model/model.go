// Package model holds the plain data types shared by the autotagging core
// and its scoring subpackage. It exists so internal/score can depend on the
// data shapes without creating an import cycle back to the root tagmatch
// package, which is where these types are re-exported for callers.
//
// Optional fields are tagged with pointers or bool flags rather than
// sentinel values: the catalog signals "field absent" by explicit absence,
// so a missing track length is HasLength == false, never -1.
package model

// Item is an observed file believed to belong to one album.
type Item struct {
	Artist string
	Album  string
	Title  string

	// Track is the 1-based track index as read from tags, or nil if absent.
	Track *int

	// Length is the duration in seconds.
	Length float64

	CatalogTrackID  string
	CatalogAlbumID  string
	CatalogArtistID string

	Compilation bool

	// AlbumArtist, TrackTotal and the remaining apply-only fields are not read
	// by any distance computation; they are here so Apply (C10) has somewhere
	// to write its output, and so a tag-writer adapter has a single struct to
	// persist.
	AlbumArtist          string
	TrackTotal           int
	Year                 int
	Month                int
	Day                  int
	CatalogAlbumArtistID string
	AlbumType            string

	// Extra carries any opaque fields the calling layer wants to pass through
	// unmodified (file path, format, embedded cover, etc). The core never
	// reads or writes it.
	Extra map[string]any
}

// TrackInfo is a canonical track as reported by the catalog. It is immutable
// for the lifetime of a tagging session.
type TrackInfo struct {
	ID    string
	Title string

	// Artist and ArtistID are empty when the catalog does not report a
	// per-track artist (common for non-VA releases).
	Artist   string
	ArtistID string

	// Length is the catalog-reported duration in seconds; HasLength is false
	// when the catalog does not publish one.
	Length    float64
	HasLength bool
}

// AlbumInfo is a canonical release as reported by the catalog.
type AlbumInfo struct {
	AlbumID  string
	Album    string
	Artist   string
	ArtistID string

	HasDate bool
	Year    int
	Month   int
	Day     int

	AlbumType string

	// VA marks a various-artists compilation: the album-level artist is
	// elided from album distance and per-track artists are compared instead.
	VA bool

	// Tracks is ordered; its order defines the canonical slot indices 1..N.
	Tracks []TrackInfo

	// Mediums is a pass-through disc count, supplemented from
	// original_source/ (the original release object carries it for display
	// purposes only). It never affects distance.
	Mediums int
}
