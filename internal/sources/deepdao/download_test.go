package deepdao

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daoatlas/daoatlas/internal/config"
	"github.com/daoatlas/daoatlas/internal/store"
)

func newTestServer(t *testing.T, detailFetches *atomic.Int32) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/organizations", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-agent", r.Header.Get("User-Agent"))
		// org-1 appears twice: the upstream listing repeats entries.
		fmt.Fprint(w, `{"daosSummary":[
			{"organizationId":"org-1"},
			{"organizationId":"org-2"},
			{"organizationId":"org-1"}
		]}`)
	})
	mux.HandleFunc("/details/", func(w http.ResponseWriter, r *http.Request) {
		detailFetches.Add(1)
		fmt.Fprintf(w, `{"data":{"name":"Org %s","description":"about"}}`, r.URL.Path[len("/details/"):])
	})
	mux.HandleFunc("/assets/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data":[{"type":"treasury","address":"0xaaa"}]}`)
	})
	return httptest.NewServer(mux)
}

func TestDownload(t *testing.T) {
	var detailFetches atomic.Int32
	server := newTestServer(t, &detailFetches)
	defer server.Close()

	client := New(config.DeepDAOConfig{
		OrganizationsURL: server.URL + "/organizations",
		DetailsURL:       server.URL + "/details/%s",
		AssetsURL:        server.URL + "/assets/%s",
		UserAgent:        "test-agent",
	})

	downloader := NewDownloader(client, 0)
	infos, err := downloader.Download(context.Background())
	require.NoError(t, err)

	// One row per listing entry, but the repeated organization is fetched
	// only once.
	require.Len(t, infos, 3)
	assert.Equal(t, int32(2), detailFetches.Load())
	assert.Same(t, infos[0], infos[2])

	assert.Equal(t, "Org org-1", infos[0].Name)
	assert.Equal(t, "0xaaa", infos[0].TreasuryAddress)

	_, err = time.Parse(time.RFC3339, infos[0].RetrievedAt)
	assert.NoError(t, err, "retrieved_at carries an RFC3339 timestamp")
}

func TestDownloadCancelled(t *testing.T) {
	var detailFetches atomic.Int32
	server := newTestServer(t, &detailFetches)
	defer server.Close()

	client := New(config.DeepDAOConfig{
		OrganizationsURL: server.URL + "/organizations",
		DetailsURL:       server.URL + "/details/%s",
		AssetsURL:        server.URL + "/assets/%s",
		UserAgent:        "test-agent",
	})

	// A long delay plus an already-cancelled context: the crawl must stop
	// in the wait, before any detail lookup.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	downloader := NewDownloader(client, time.Hour)
	_, err := downloader.Download(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, detailFetches.Load())
}

func TestCacheBuildsOnceAndReloads(t *testing.T) {
	var detailFetches atomic.Int32
	server := newTestServer(t, &detailFetches)
	defer server.Close()

	client := New(config.DeepDAOConfig{
		OrganizationsURL: server.URL + "/organizations",
		DetailsURL:       server.URL + "/details/%s",
		AssetsURL:        server.URL + "/assets/%s",
		UserAgent:        "test-agent",
	})

	path := t.TempDir() + "/dd_org_infos.csv"
	cache := NewCache(path, NewDownloader(client, 0))

	first, err := cache.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 3)
	require.True(t, store.Exists(path))

	// Second load comes from the artifact; no new upstream traffic.
	fetchesAfterBuild := detailFetches.Load()
	second, err := cache.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, second, 3)
	assert.Equal(t, fetchesAfterBuild, detailFetches.Load())
	assert.Equal(t, first[0].Name, second[0].Name)
}
