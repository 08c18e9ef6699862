// Package walk discovers audio files on disk and groups them into album
// directories for the tagger, deduplicating files reached through more than
// one path by way of symlinks.
//
// Grounded on Ambrevar-demlo/walker.go: the same
// github.com/yookoala/realpath-based "visited" dedup set and extension
// filter, adapted from a per-file pipeline stage into a directory walk that
// groups files by directory for per-album tagging.
package walk

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/yookoala/realpath"
)

// DefaultExtensions is the set of file extensions treated as audio files,
// matching demlo's default codec coverage.
var DefaultExtensions = map[string]bool{
	".flac": true,
	".mp3":  true,
	".ogg":  true,
	".opus": true,
	".m4a":  true,
	".wav":  true,
}

// Album is one directory's worth of audio files, in sorted path order.
type Album struct {
	Dir   string
	Files []string
}

// Albums walks root recursively and groups every recognized audio file by
// its containing directory. A file reached both directly and through a
// symlink is only counted once, per realpath. Symlinked directories are not
// followed, and a file seen through two mount points counts twice.
func Albums(root string, extensions map[string]bool) ([]Album, error) {
	if extensions == nil {
		extensions = DefaultExtensions
	}

	visited := map[string]bool{}
	byDir := map[string][]string{}
	var order []string

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if !extensions[strings.ToLower(filepath.Ext(path))] {
			return nil
		}

		rpath, err := realpath.Realpath(path)
		if err != nil {
			return nil
		}
		if visited[rpath] {
			return nil
		}
		visited[rpath] = true

		dir := filepath.Dir(path)
		if _, ok := byDir[dir]; !ok {
			order = append(order, dir)
		}
		byDir[dir] = append(byDir[dir], path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(order)
	albums := make([]Album, 0, len(order))
	for _, dir := range order {
		files := byDir[dir]
		sort.Strings(files)
		albums = append(albums, Album{Dir: dir, Files: files})
	}
	return albums, nil
}
