package tagmatch

import "errors"

// ErrInsufficientMetadata is returned by TagAlbum when it is given no items
// at all. A session that has items but cannot form any search term and has
// no catalog ID is not an error: it yields an empty candidate list with
// RecommendationNone. ErrInsufficientMetadata is reserved for "cannot
// proceed at all".
var ErrInsufficientMetadata = errors.New("tagmatch: insufficient metadata to search")

// CatalogError wraps any transport/parse failure surfaced by a Catalog or
// PluginSource call. The core does not retry; retries, if any, are the
// injected client's responsibility.
type CatalogError struct {
	Op  string
	Err error
}

func (e *CatalogError) Error() string {
	return "tagmatch: catalog " + e.Op + ": " + e.Err.Error()
}

func (e *CatalogError) Unwrap() error {
	return e.Err
}
