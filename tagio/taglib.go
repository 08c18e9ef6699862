// Package tagio reads and writes the audio file tags tagmatch.Item carries,
// bridging them to github.com/wtolson/go-taglib.
//
// Grounded on Ambrevar-demlo/demlo.go's tagsChanged/taglib.Read block: tags
// are only rewritten when they actually changed, and only the well-known
// fields taglib exposes setters for (album, artist, title, track, year) are
// touched — arbitrary tag support is left to taglib's own
// limits, matching demlo's "TODO: Arbitrary tag support with taglib?".
package tagio

import (
	"fmt"

	"github.com/wtolson/go-taglib"

	"github.com/ambrevar/tagmatch"
)

// Read opens path and populates an Item from its existing tags. Track is
// left nil when taglib reports track 0 (no tag present).
func Read(path string) (tagmatch.Item, error) {
	f, err := taglib.Read(path)
	if err != nil {
		return tagmatch.Item{}, fmt.Errorf("tagio: read %s: %w", path, err)
	}
	defer f.Close()

	item := tagmatch.Item{
		Artist: f.Artist(),
		Album:  f.Album(),
		Title:  f.Title(),
		Year:   f.Year(),
	}
	if track := f.Track(); track != 0 {
		item.Track = &track
	}
	if length := f.Length(); length > 0 {
		item.Length = length.Seconds()
	}

	return item, nil
}

// Write applies the tag fields Apply/ApplyItem set on item back to the
// audio file at path. Empty string fields are left untouched on disk,
// mirroring demlo's `if output[track].Tags["..."] != ""` guards — tagmatch
// never clears a tag, it only fills in what it recognized.
func Write(path string, item tagmatch.Item) error {
	f, err := taglib.Read(path)
	if err != nil {
		return fmt.Errorf("tagio: open %s: %w", path, err)
	}
	defer f.Close()

	changed := false
	if item.Artist != "" && item.Artist != f.Artist() {
		f.SetArtist(item.Artist)
		changed = true
	}
	if item.Album != "" && item.Album != f.Album() {
		f.SetAlbum(item.Album)
		changed = true
	}
	if item.Title != "" && item.Title != f.Title() {
		f.SetTitle(item.Title)
		changed = true
	}
	if item.Track != nil && *item.Track != 0 && *item.Track != f.Track() {
		f.SetTrack(*item.Track)
		changed = true
	}
	if item.Year != 0 && item.Year != f.Year() {
		f.SetYear(item.Year)
		changed = true
	}
	if !changed {
		return nil
	}

	if err := f.Save(); err != nil {
		return fmt.Errorf("tagio: save %s: %w", path, err)
	}
	return nil
}
