package score

import (
	"testing"

	"github.com/ambrevar/tagmatch/internal/model"
)

func albumFixture() ([]model.Item, model.AlbumInfo) {
	one, two := 1, 2
	items := []model.Item{
		{Artist: "Radiohead", Album: "OK Computer", Title: "Airbag", Track: &one, Length: 284},
		{Artist: "Radiohead", Album: "OK Computer", Title: "Paranoid Android", Track: &two, Length: 383},
	}
	album := model.AlbumInfo{
		AlbumID: "ok-computer",
		Album:   "OK Computer",
		Artist:  "Radiohead",
		Tracks: []model.TrackInfo{
			{ID: "t1", Title: "Airbag", Length: 284, HasLength: true},
			{ID: "t2", Title: "Paranoid Android", Length: 383, HasLength: true},
		},
	}
	return items, album
}

func TestAlbumExactMatch(t *testing.T) {
	items, album := albumFixture()
	d := Album(items, album, Contribution{})
	if d != 0 {
		t.Errorf("Album() = %v, want 0 for an exact match", d)
	}
}

func TestAlbumInRange(t *testing.T) {
	items, album := albumFixture()
	items[0].Title = "Completely Different Song Name"
	d := Album(items, album, Contribution{})
	if d < 0 || d > 1 {
		t.Errorf("Album() = %v, want value in [0,1]", d)
	}
}

func TestAlbumReversedOrderScoresWorseThanOrdered(t *testing.T) {
	items, album := albumFixture()
	reversed := []model.Item{items[1], items[0]}

	dOrdered := Album(items, album, Contribution{})
	dReversed := Album(reversed, album, Contribution{})

	if dReversed <= dOrdered {
		t.Errorf("expected reversed order to score worse: ordered=%v reversed=%v", dOrdered, dReversed)
	}
}

func TestAlbumVADropsAlbumArtistSignal(t *testing.T) {
	items, album := albumFixture()
	items[0].Artist = "Thom Yorke"
	items[1].Artist = "Jonny Greenwood"
	album.VA = true
	album.Tracks[0].Artist = "Thom Yorke"
	album.Tracks[1].Artist = "Jonny Greenwood"

	d := Album(items, album, Contribution{})
	if d != 0 {
		t.Errorf("Album() = %v, want 0 when per-track artists all match on a VA release", d)
	}
}
