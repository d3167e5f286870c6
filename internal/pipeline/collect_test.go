package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daoatlas/daoatlas/internal/store"
	"github.com/daoatlas/daoatlas/pkg/daos"
)

func TestCollect(t *testing.T) {
	governance := &fakeGovernance{
		candidates: []daos.Candidate{
			{Category: "Protocol", EthName: "acme.eth", Name: "Acme", Followers: 100},
			{Category: "Investment", EthName: "acme.eth", Name: "Acme", Followers: 100},
			{Category: "Protocol", EthName: "polygon.eth", Name: "Polygon Thing", Followers: 90},
			{Category: "Protocol", EthName: "unknown.eth", Name: "Unknown", Followers: 80},
			{Category: "Protocol", EthName: "broke.eth", Name: "Broke", Followers: 70},
			{Category: "Protocol", EthName: "beta.eth", Name: "Beta", Followers: 60},
		},
		spaces: map[string]*daos.Space{
			"acme.eth": {
				ID: "acme.eth", Name: "Acme", About: "builds", Network: "1",
				Avatar: "logo.png", Symbol: "ACME",
				FollowersCount: 100, ProposalsCount: 12,
			},
			"polygon.eth": {ID: "polygon.eth", Name: "Polygon Thing", Network: "137"},
			"unknown.eth": {ID: "unknown.eth", Name: "Unknown", Network: "1"},
			"broke.eth":   {ID: "broke.eth", Name: "Broke", Network: "1"},
			"beta.eth": {
				ID: "beta.eth", Name: "Beta", Network: "1",
				Website: "https://beta.example", Twitter: "betadao",
			},
		},
	}

	orgs := &fakeOrgLoader{infos: []*daos.OrgInfo{
		{
			OrganizationID: "org-acme", Name: "Acme",
			TreasuryAddress: "0xaaa", DDEthNames: "acme.eth",
			Website: "https://acme.example", Twitter: "acmedao",
			Discord: "https://discord.gg/acme", Description: "aggregated",
		},
		{OrganizationID: "org-broke", Name: "Broke"}, // no treasury
		{OrganizationID: "org-beta", Name: "Beta", TreasuryAddress: "0xbbb"},
	}}

	treasury := &fakeTreasury{balances: map[string][]daos.TokenBalance{
		"0xaaa": {{ContractTickerSymbol: "ACME", ContractAddress: "0xtoken"}},
		"0xbbb": {},
	}}

	discord := &fakeDiscord{counts: map[string]int{"https://discord.gg/acme": 500}}
	twitter := &fakeTwitter{profiles: map[string]*daos.TwitterProfile{
		"acmedao": {FollowersCount: 10},
	}}

	p := New(governance, orgs, treasury, discord, twitter, testPipelineConfig(50))

	out := filepath.Join(t.TempDir(), "collected.csv")
	require.NoError(t, p.Collect(context.Background(), out))

	var records []*daos.CollectedRecord
	loadCSV(t, out, &records)

	// polygon (wrong network), unknown (no match), broke (no treasury)
	// are skipped; acme appears once per category.
	require.Len(t, records, 3)

	acme := records[0]
	assert.Equal(t, "acme.eth", acme.EthName)
	assert.Equal(t, "Protocol", acme.Categories)
	assert.Equal(t, "Investment", records[1].Categories)
	assert.Equal(t, "beta.eth", records[2].EthName)

	// Fallback fill: directory profile blank, aggregator record supplies it.
	assert.Equal(t, "https://acme.example", acme.Website)
	assert.Equal(t, "acmedao", acme.Twitter)
	assert.Equal(t, "Y", acme.DiscordValid)
	assert.Equal(t, "Y", acme.TwitterValid)
	assert.Equal(t, "0xtoken", acme.ContractAddress)
	assert.Equal(t, "aggregated", acme.Description)
	assert.Empty(t, acme.DataCleanStatus)

	// Beta carries its own profile fields and has no discord recorded.
	beta := records[2]
	assert.Equal(t, "https://beta.example", beta.Website)
	assert.Equal(t, "N", beta.DiscordValid)
	assert.Equal(t, "N", beta.TwitterValid, "unknown handle fails validation")
	assert.Empty(t, beta.ContractAddress, "no symbol, no contract")
}

func TestCollectRespectsLimit(t *testing.T) {
	candidates := make([]daos.Candidate, 0, 60)
	spaces := make(map[string]*daos.Space, 60)
	infos := make([]*daos.OrgInfo, 0, 60)
	balances := make(map[string][]daos.TokenBalance, 60)

	for i := 0; i < 60; i++ {
		id := fmt.Sprintf("org%02d.eth", i)
		wallet := fmt.Sprintf("0x%02d", i)
		candidates = append(candidates, daos.Candidate{
			Category: "Protocol", EthName: id, Name: id, Followers: 60 - i,
		})
		spaces[id] = &daos.Space{ID: id, Name: id, Network: "1"}
		infos = append(infos, &daos.OrgInfo{
			OrganizationID: id, Name: id, TreasuryAddress: wallet, DDEthNames: id,
		})
		balances[wallet] = nil
	}

	p := New(
		&fakeGovernance{candidates: candidates, spaces: spaces},
		&fakeOrgLoader{infos: infos},
		&fakeTreasury{balances: balances},
		&fakeDiscord{},
		&fakeTwitter{},
		testPipelineConfig(50),
	)

	out := filepath.Join(t.TempDir(), "collected.csv")
	require.NoError(t, p.Collect(context.Background(), out))

	var records []*daos.CollectedRecord
	loadCSV(t, out, &records)
	assert.Len(t, records, 50)
}

func TestCollectSkipsFailingSpace(t *testing.T) {
	governance := &fakeGovernance{
		candidates: []daos.Candidate{
			{Category: "Protocol", EthName: "bad.eth", Name: "Bad", Followers: 2},
			{Category: "Protocol", EthName: "good.eth", Name: "Good", Followers: 1},
		},
		spaces: map[string]*daos.Space{
			"good.eth": {ID: "good.eth", Name: "Good", Network: "1"},
		},
		spaceErrs: map[string]error{"bad.eth": fmt.Errorf("upstream 500")},
	}

	p := New(
		governance,
		&fakeOrgLoader{infos: []*daos.OrgInfo{
			{OrganizationID: "org-good", Name: "Good", TreasuryAddress: "0xggg", DDEthNames: "good.eth"},
		}},
		&fakeTreasury{balances: map[string][]daos.TokenBalance{"0xggg": nil}},
		&fakeDiscord{},
		&fakeTwitter{},
		testPipelineConfig(50),
	)

	out := filepath.Join(t.TempDir(), "collected.csv")
	require.NoError(t, p.Collect(context.Background(), out))

	var records []*daos.CollectedRecord
	loadCSV(t, out, &records)
	require.Len(t, records, 1)
	assert.Equal(t, "good.eth", records[0].EthName)
}

// loadCSV reads a written artifact back through the store layer.
func loadCSV(t *testing.T, path string, out *[]*daos.CollectedRecord) {
	t.Helper()
	require.True(t, store.Exists(path))
	records, err := store.LoadCollected(path)
	require.NoError(t, err)
	*out = records
}
