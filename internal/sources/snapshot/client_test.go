package snapshot

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daoatlas/daoatlas/internal/config"
	"github.com/daoatlas/daoatlas/pkg/errors"
)

func newTestClient(explore, graphql string) *Client {
	return New(config.SnapshotConfig{
		ExploreURL: explore,
		GraphQLURL: graphql,
	})
}

func TestSpacesExplodesCategoriesAndSorts(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{
			"spaces": {
				"small.eth": {"name": "Small", "categories": ["social"], "followers": 10},
				"big.eth":   {"name": "Big", "categories": ["protocol", "investment"], "followers": 5000},
				"bare.eth":  {"name": "Bare", "followers": 100}
			}
		}`))
	}))
	defer ts.Close()

	candidates, err := newTestClient(ts.URL, "").Spaces(context.Background())
	require.NoError(t, err)

	// Two categories for big.eth, one row each for the others.
	require.Len(t, candidates, 4)

	// Sorted by followers descending; multi-category rows stay adjacent.
	assert.Equal(t, "big.eth", candidates[0].EthName)
	assert.Equal(t, "protocol", candidates[0].Category)
	assert.Equal(t, "big.eth", candidates[1].EthName)
	assert.Equal(t, "investment", candidates[1].Category)
	assert.Equal(t, "bare.eth", candidates[2].EthName)
	assert.Equal(t, "NA", candidates[2].Category)
	assert.Equal(t, "small.eth", candidates[3].EthName)
}

func TestSpaceSubstitutesIdentifier(t *testing.T) {
	var gotQuery string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var req struct {
			Query string `json:"query"`
		}
		_ = json.Unmarshal(body, &req)
		gotQuery = req.Query

		_, _ = w.Write([]byte(`{
			"data": {"spaces": [{
				"id": "ens.eth",
				"name": "ENS",
				"about": "Decentralized naming",
				"categories": ["protocol"],
				"network": "1",
				"avatar": "https://cdn.example/ens.png",
				"website": "https://ens.domains",
				"twitter": "ensdomains",
				"symbol": "ENS",
				"followersCount": 90000,
				"proposalsCount": 42
			}]}
		}`))
	}))
	defer ts.Close()

	space, err := newTestClient("", ts.URL).Space(context.Background(), "ens.eth")
	require.NoError(t, err)

	assert.Contains(t, gotQuery, `id: "ens.eth"`)
	assert.Equal(t, "ENS", space.Name)
	assert.Equal(t, "1", space.Network)
	assert.Equal(t, 42, space.ProposalsCount)
	assert.Equal(t, 90000, space.FollowersCount)
}

func TestSpaceEmptyResultIsNotFound(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data": {"spaces": []}}`))
	}))
	defer ts.Close()

	_, err := newTestClient("", ts.URL).Space(context.Background(), "ghost.eth")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}
