package tagmatch

// Apply writes the canonical values of album onto ordered in place, one
// Item per Track at the same index. Apply never persists anything to disk;
// an external tag writer does that from the mutated Items. Calling Apply
// twice with the same album on the same ordered slice is idempotent.
//
// Precondition: len(ordered) == len(album.Tracks), which holds for any
// Candidate produced by this package.
func Apply(ordered []Item, album AlbumInfo) {
	for i := range ordered {
		track := album.Tracks[i]
		item := &ordered[i]

		if track.Artist != "" {
			item.Artist = track.Artist
		} else {
			item.Artist = album.Artist
		}
		item.AlbumArtist = album.Artist
		item.Album = album.Album
		item.TrackTotal = len(album.Tracks)
		if album.HasDate {
			item.Year = album.Year
			item.Month = album.Month
			item.Day = album.Day
		}
		item.Title = track.Title
		n := i + 1
		item.Track = &n
		item.CatalogTrackID = track.ID
		item.CatalogAlbumID = album.AlbumID
		if track.ArtistID != "" {
			item.CatalogArtistID = track.ArtistID
		} else {
			item.CatalogArtistID = album.ArtistID
		}
		item.CatalogAlbumArtistID = album.ArtistID
		item.AlbumType = album.AlbumType
		item.Compilation = album.VA
	}
}

// ApplyItem writes the single-track canonical values of track onto item in
// place: only artist, title, and the catalog track/artist IDs, for the
// single-item tagging path.
func ApplyItem(item *Item, track TrackInfo) {
	item.Artist = track.Artist
	item.Title = track.Title
	item.CatalogTrackID = track.ID
	if track.ArtistID != "" {
		item.CatalogArtistID = track.ArtistID
	}
}
