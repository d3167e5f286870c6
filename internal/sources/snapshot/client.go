// Package snapshot provides a client for the governance-platform directory:
// the authoritative organization list plus per-organization voting and
// proposal statistics.
package snapshot

import (
	"context"
	"fmt"
	"sort"

	"github.com/daoatlas/daoatlas/internal/config"
	"github.com/daoatlas/daoatlas/internal/transport"
	"github.com/daoatlas/daoatlas/pkg/daos"
	"github.com/daoatlas/daoatlas/pkg/errors"
	"github.com/daoatlas/daoatlas/pkg/logging"
)

const source = "snapshot"

// spaceQuery is the GraphQL query template for a single space; the
// organization identifier is substituted into the where clause.
const spaceQuery = `query Spaces {
  spaces(where: {id: %q}) {
    id
    name
    about
    categories
    network
    avatar
    website
    twitter
    symbol
    followersCount
    proposalsCount
  }
}`

// Response structures for the directory API.
type exploreResponse struct {
	Spaces map[string]exploreSpace `json:"spaces"`
}

type exploreSpace struct {
	Name       string   `json:"name"`
	Categories []string `json:"categories"`
	Followers  int      `json:"followers"`
}

type graphqlRequest struct {
	Query string `json:"query"`
}

type graphqlResponse struct {
	Data struct {
		Spaces []daos.Space `json:"spaces"`
	} `json:"data"`
}

// Client implements the governance-directory source adapter.
type Client struct {
	cfg       config.SnapshotConfig
	transport *transport.Client
}

// New creates a new directory client.
func New(cfg config.SnapshotConfig) *Client {
	return &Client{
		cfg:       cfg,
		transport: transport.New(),
	}
}

// Spaces retrieves the full organization listing, exploded into one
// Candidate per (category, organization) pair and sorted by follower count
// descending. Spaces without categories are kept under category "NA".
func (c *Client) Spaces(ctx context.Context) ([]daos.Candidate, error) {
	var result exploreResponse
	if err := c.transport.GetJSON(ctx, source, c.cfg.ExploreURL, &result); err != nil {
		return nil, err
	}

	logging.Ctx(ctx).Info().Int("count", len(result.Spaces)).Msg("spaces found in directory")
	logCategories(ctx, result.Spaces)

	// Deterministic explode order: map iteration is randomized, and the
	// follower sort below must break ties stably.
	ids := make([]string, 0, len(result.Spaces))
	for id := range result.Spaces {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	candidates := make([]daos.Candidate, 0, len(result.Spaces))
	for _, id := range ids {
		space := result.Spaces[id]
		categories := space.Categories
		if len(categories) == 0 {
			categories = []string{"NA"}
		}
		for _, category := range categories {
			candidates = append(candidates, daos.Candidate{
				Category:  category,
				EthName:   id,
				Name:      space.Name,
				Followers: space.Followers,
			})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Followers > candidates[j].Followers
	})

	return candidates, nil
}

// Space fetches the detail fields for one organization via GraphQL.
// An empty result array means the directory has no data for the id and is
// reported as ErrNotFound for the caller to absorb.
func (c *Client) Space(ctx context.Context, id string) (*daos.Space, error) {
	body := graphqlRequest{Query: fmt.Sprintf(spaceQuery, id)}

	var result graphqlResponse
	if err := c.transport.PostJSON(ctx, source, c.cfg.GraphQLURL, body, &result); err != nil {
		return nil, err
	}

	if len(result.Data.Spaces) == 0 {
		return nil, errors.NewNotFoundError("space", id)
	}

	return &result.Data.Spaces[0], nil
}

// logCategories logs the distinct category set found in the directory.
func logCategories(ctx context.Context, spaces map[string]exploreSpace) {
	seen := make(map[string]struct{})
	categories := make([]string, 0)
	for _, space := range spaces {
		for _, category := range space.Categories {
			if _, ok := seen[category]; ok {
				continue
			}
			seen[category] = struct{}{}
			categories = append(categories, category)
		}
	}
	sort.Strings(categories)
	logging.Ctx(ctx).Info().Strs("categories", categories).Msg("categories found")
}
