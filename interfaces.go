package tagmatch

import "context"

// Catalog is the external music metadata catalog. Implementations may fail
// with a network/transport error; the core wraps such errors in
// CatalogError and never retries. artist == nil in MatchAlbum means a
// various-artists search.
type Catalog interface {
	AlbumByID(ctx context.Context, albumID string) (*AlbumInfo, error)
	MatchAlbum(ctx context.Context, artist *string, album string, trackCount, limit int) ([]AlbumInfo, error)
	TrackByID(ctx context.Context, trackID string) (*TrackInfo, error)
	MatchTrack(ctx context.Context, artist, title string) ([]TrackInfo, error)
}

// PluginSource is the external-candidate-source contract. Every method may
// be a no-op (return a nil/zero result) — it is an injected collaborator
// rather than a process-wide plugin registry, so callers that have no
// plugins configured can pass NoPlugins.
type PluginSource interface {
	AlbumCandidates(ctx context.Context, items []Item) ([]AlbumInfo, error)
	ItemCandidates(ctx context.Context, item Item) ([]TrackInfo, error)
	AlbumDistanceContribution(ctx context.Context, items []Item, album AlbumInfo) (addNum, addDen float64, err error)
	TrackDistanceContribution(ctx context.Context, item Item, track TrackInfo) (addNum, addDen float64, err error)
}

// NoPlugins is a PluginSource whose every method reports no candidates and
// no contribution. Use it when no plugin collaborator is configured.
var NoPlugins PluginSource = noPlugins{}

type noPlugins struct{}

func (noPlugins) AlbumCandidates(context.Context, []Item) ([]AlbumInfo, error) { return nil, nil }
func (noPlugins) ItemCandidates(context.Context, Item) ([]TrackInfo, error)    { return nil, nil }
func (noPlugins) AlbumDistanceContribution(context.Context, []Item, AlbumInfo) (float64, float64, error) {
	return 0, 0, nil
}
func (noPlugins) TrackDistanceContribution(context.Context, Item, TrackInfo) (float64, float64, error) {
	return 0, 0, nil
}
