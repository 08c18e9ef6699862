// tagmatch scans one or more directories for audio files, groups them by
// directory into albums, and reports the best MusicBrainz matches for each
// album. Tracks are matched only as part of their album's release; no
// per-track lookup is made.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/ambrevar/tagmatch"
	"github.com/ambrevar/tagmatch/catalog"
	"github.com/ambrevar/tagmatch/config"
	"github.com/ambrevar/tagmatch/internal/logx"
	"github.com/ambrevar/tagmatch/pluginlua"
	"github.com/ambrevar/tagmatch/tagio"
	"github.com/ambrevar/tagmatch/walk"
)

const usage = `tagmatch looks up albums and tracks in the MusicBrainz catalog and
reports, per directory, whether the existing tags are a STRONG, MEDIUM or
NONE match, along with the best candidate releases found.`

func main() {
	var (
		configPath  = flag.String("config", "", "Path to a TOML configuration file.")
		interactive = flag.Bool("i", false, "Let a catalog-ID match compete with search results instead of short-circuiting.")
		pluginPath  = flag.String("plugin", "", "Path to a Lua script implementing additional candidate sources.")
		debug       = flag.Bool("debug", false, "Enable debug messages.")
		color       = flag.Bool("color", true, "Color diagnostic output.")
		apply       = flag.Bool("apply", false, "Write the best STRONG match's tags back to the files.")
		cores       = flag.Int("cores", 4, "Run N album lookups in parallel.")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %v [OPTIONS] FOLDERS\n\n", os.Args[0])
		fmt.Fprintln(os.Stderr, usage)
		fmt.Fprintln(os.Stderr, "Options:")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.Arg(0) == "" {
		flag.Usage()
		os.Exit(1)
	}

	log := logx.New(os.Stderr, *debug, *color)

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Error.Fatal(err)
		}
		cfg = loaded
	}
	if *interactive {
		cfg.Tagging.InteractiveAutotag = true
	}

	cat, err := catalog.New(cfg.Catalog.Endpoint, cfg.Catalog.UserAgent)
	if err != nil {
		log.Error.Fatal(err)
	}

	var plugins tagmatch.PluginSource = tagmatch.NoPlugins
	if *pluginPath != "" {
		src, err := pluginlua.Load(*pluginPath)
		if err != nil {
			log.Error.Fatal(err)
		}
		defer src.Close()
		plugins = src
	}

	ctx := context.Background()
	exitCode := 0

	var all []*walk.Album
	for _, root := range flag.Args() {
		albums, err := walk.Albums(root, nil)
		if err != nil {
			log.Error.Println(err)
			exitCode = 1
			continue
		}
		for i := range albums {
			all = append(all, &albums[i])
		}
	}

	pipe := walk.NewPipeline(all, len(all), func(a *walk.Album) {
		log.Error.Printf("%s: failed", a.Dir)
		exitCode = 1
	})
	pipe.Add(func() walk.Stage[walk.Album] {
		return &taggerStage{ctx: ctx, cat: cat, plugins: plugins, cfg: cfg, log: log, apply: *apply}
	}, *cores)
	pipe.Drain(func(*walk.Album) {})

	os.Exit(exitCode)
}

// taggerStage adapts TagAlbum to walk.Stage so walk.Pipeline can run
// lookups for several albums concurrently; one stage instance per goroutine
// keeps no mutable state of its own beyond the shared, read-only
// collaborators it was built with.
//
// Generalized from Ambrevar-demlo/pipeline.go's per-goroutine Stage
// instances (there: an encoder or fingerprinter; here: a catalog lookup).
type taggerStage struct {
	ctx     context.Context
	cat     tagmatch.Catalog
	plugins tagmatch.PluginSource
	cfg     config.Config
	log     *logx.Logger
	apply   bool
}

func (s *taggerStage) Init()  {}
func (s *taggerStage) Close() {}

func (s *taggerStage) Run(album *walk.Album) error {
	items := make([]tagmatch.Item, 0, len(album.Files))
	for _, path := range album.Files {
		item, err := tagio.Read(path)
		if err != nil {
			s.log.Warning.Printf("%s: %v", path, err)
			continue
		}
		// Stash the source path so a STRONG match can be written back after
		// TagAlbum reorders items into track-slot order.
		item.Extra = map[string]any{"path": path}
		items = append(items, item)
	}
	if len(items) == 0 {
		s.log.Debug.Printf("%s: no readable audio files", album.Dir)
		return nil
	}

	thresholds := tagmatch.Thresholds{
		Strong: s.cfg.Weights.StrongRecThresh,
		Medium: s.cfg.Weights.MediumRecThresh,
		Gap:    s.cfg.Weights.RecGapThresh,
	}
	result, err := tagmatch.TagAlbumWithThresholds(s.ctx, items, s.cat, s.plugins, s.cfg.Tagging.InteractiveAutotag, thresholds, nil, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", album.Dir, err)
	}

	s.log.Info.Printf("%s: %s (%d candidate(s))", album.Dir, result.Recommendation, len(result.Candidates))
	for _, c := range result.Candidates {
		s.log.Debug.Printf("  %.4f  %s - %s", c.Distance, c.Album.Artist, c.Album.Album)
	}

	if s.apply && result.Recommendation == tagmatch.RecommendationStrong && len(result.Candidates) > 0 {
		best := result.Candidates[0]
		ordered := best.Items
		tagmatch.Apply(ordered, best.Album)
		for _, item := range ordered {
			path, _ := item.Extra["path"].(string)
			if path == "" {
				continue
			}
			if err := tagio.Write(path, item); err != nil {
				s.log.Error.Printf("%s: %v", path, err)
			}
		}
	}

	return nil
}
