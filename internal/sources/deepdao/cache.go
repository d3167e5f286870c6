package deepdao

import (
	"context"

	"github.com/daoatlas/daoatlas/internal/store"
	"github.com/daoatlas/daoatlas/pkg/daos"
	"github.com/daoatlas/daoatlas/pkg/logging"
)

// Cache is the aggregator cache artifact: built by the downloader when the
// file is absent, otherwise loaded as-is. Staleness is accepted; there is
// no freshness check.
type Cache struct {
	path       string
	downloader *Downloader
}

// NewCache creates a cache backed by the given file path.
func NewCache(path string, downloader *Downloader) *Cache {
	return &Cache{path: path, downloader: downloader}
}

// Load returns the cached OrgInfo rows, downloading and persisting them
// first if the artifact does not exist yet.
func (c *Cache) Load(ctx context.Context) ([]*daos.OrgInfo, error) {
	log := logging.Ctx(ctx)

	if store.Exists(c.path) {
		log.Info().Str("path", c.path).Msg("aggregator extract available, skipping download")
		return store.LoadOrgInfos(c.path)
	}

	log.Info().Str("path", c.path).
		Msg("aggregator extract unavailable, crawling upstream (expect ~30 minutes)")

	infos, err := c.downloader.Download(ctx)
	if err != nil {
		return nil, err
	}

	if err := store.SaveOrgInfos(c.path, infos); err != nil {
		return nil, err
	}
	return infos, nil
}
