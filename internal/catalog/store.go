package catalog

import (
	"log/slog"
	"sync/atomic"

	"github.com/catalogmatch/rangemapper/internal/common"
)

// Store holds the current catalog index and replaces it wholesale when the
// upstream ingestion pipeline rebuilds the snapshot. Readers never block;
// the only shared mutable state is the index pointer itself, swapped
// atomically. An in-flight query keeps using the index it started with.
type Store struct {
	current atomic.Pointer[Index]
}

// NewStore creates an empty store. Current returns
// common.ErrCatalogNotLoaded until the first Swap.
func NewStore() *Store {
	return &Store{}
}

// Swap installs a freshly built index and returns the previous one, if any.
func (s *Store) Swap(ix *Index) *Index {
	previous := s.current.Swap(ix)

	fields := common.Fields{"version": ix.Version(), "rows": ix.Len()}
	if previous != nil {
		fields["previous_version"] = previous.Version()
	}
	common.LogInfo("Swapped catalog index", fields)

	return previous
}

// Current returns the index in use, or common.ErrCatalogNotLoaded if no
// snapshot has been installed yet.
func (s *Store) Current() (*Index, error) {
	ix := s.current.Load()
	if ix == nil {
		slog.Debug("Catalog store read before first swap")
		return nil, common.ErrCatalogNotLoaded
	}
	return ix, nil
}
