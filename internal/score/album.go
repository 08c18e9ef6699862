package score

import (
	"github.com/ambrevar/tagmatch/internal/dist"
	"github.com/ambrevar/tagmatch/internal/model"
)

// CurrentMetadata returns the plurality artist and album strings for items,
// plus whether the artist is unanimous across items.
func CurrentMetadata(items []model.Item) (artist, album string, artistConsensus bool) {
	artists := make([]string, len(items))
	albums := make([]string, len(items))
	for i, it := range items {
		artists[i] = it.Artist
		albums[i] = it.Album
	}

	artist, artistConsensus = dist.Plurality(artists)
	album, _ = dist.Plurality(albums)
	return artist, album, artistConsensus
}

// Album computes the weighted album-level aggregate distance. ordered must
// have the same length as album.Tracks; callers enforce that before calling
// Album.
func Album(ordered []model.Item, album model.AlbumInfo, extra Contribution) float64 {
	curArtist, curAlbum, _ := CurrentMetadata(ordered)

	num := 0.0
	den := 0.0

	if !album.VA {
		num += dist.String(curArtist, album.Artist) * ArtistWeight
		den += ArtistWeight
	}

	num += dist.String(curAlbum, album.Album) * AlbumWeight
	den += AlbumWeight

	for i := range ordered {
		slot := i + 1
		num += Track(ordered[i], album.Tracks[i], &slot, album.VA, Contribution{}) * TrackWeight
		den += TrackWeight
	}

	num += extra.Num
	den += extra.Den

	if den == 0 {
		return 0
	}
	return num / den
}
