package deepdao

import (
	"context"
	"time"

	"github.com/agentstation/utc"

	"github.com/daoatlas/daoatlas/pkg/daos"
	"github.com/daoatlas/daoatlas/pkg/logging"
)

// Downloader crawls the aggregator and flattens every organization into an
// OrgInfo row. A fixed delay is inserted before each new organization's
// lookups to respect upstream rate limits; organizations already fetched in
// this run reuse the memoized row without waiting.
type Downloader struct {
	client *Client
	delay  time.Duration
}

// NewDownloader creates a downloader with the given inter-request delay.
func NewDownloader(client *Client, delay time.Duration) *Downloader {
	return &Downloader{client: client, delay: delay}
}

// Download fetches and flattens every organization in the listing. The
// listing occasionally repeats an organization id; repeated rows reuse the
// already-flattened record so the output keeps one row per listing entry.
func (d *Downloader) Download(ctx context.Context) ([]*daos.OrgInfo, error) {
	log := logging.Ctx(ctx)

	orgs, err := d.client.Organizations(ctx)
	if err != nil {
		return nil, err
	}

	infos := make([]*daos.OrgInfo, 0, len(orgs))
	fetched := make(map[string]*daos.OrgInfo, len(orgs))

	for i, org := range orgs {
		log.Info().
			Int("index", i+1).
			Int("total", len(orgs)).
			Str("organization", org.OrganizationID).
			Msg("processing organization")

		if info, ok := fetched[org.OrganizationID]; ok {
			infos = append(infos, info)
			continue
		}

		if err := wait(ctx, d.delay); err != nil {
			return nil, err
		}

		details, err := d.client.OrganizationDetails(ctx, org.OrganizationID)
		if err != nil {
			return nil, err
		}
		assets, err := d.client.OrganizationAssets(ctx, org.OrganizationID)
		if err != nil {
			return nil, err
		}

		info, err := Flatten(org.OrganizationID, details, assets)
		if err != nil {
			return nil, err
		}
		info.RetrievedAt = utc.Now().Format(time.RFC3339)

		fetched[org.OrganizationID] = info
		infos = append(infos, info)
	}

	return infos, nil
}

// wait sleeps for the given duration unless the context is cancelled first.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
