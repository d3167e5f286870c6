package pipeline

import (
	"context"
	"fmt"

	"github.com/daoatlas/daoatlas/internal/config"
	"github.com/daoatlas/daoatlas/pkg/daos"
)

// Fakes shared by the workflow tests.

type fakeGovernance struct {
	candidates []daos.Candidate
	spaces     map[string]*daos.Space
	spaceErrs  map[string]error
}

func (f *fakeGovernance) Spaces(context.Context) ([]daos.Candidate, error) {
	return f.candidates, nil
}

func (f *fakeGovernance) Space(_ context.Context, id string) (*daos.Space, error) {
	if err, ok := f.spaceErrs[id]; ok {
		return nil, err
	}
	space, ok := f.spaces[id]
	if !ok {
		return nil, fmt.Errorf("no space %s", id)
	}
	return space, nil
}

type fakeOrgLoader struct {
	infos []*daos.OrgInfo
}

func (f *fakeOrgLoader) Load(context.Context) ([]*daos.OrgInfo, error) {
	return f.infos, nil
}

type fakeTreasury struct {
	balances    map[string][]daos.TokenBalance // keyed by wallet
	balanceErrs map[string]error
	valuations  map[string]*daos.TokenValuation
}

func (f *fakeTreasury) Balances(_ context.Context, _ string, wallets []string) ([][]daos.TokenBalance, error) {
	out := make([][]daos.TokenBalance, 0, len(wallets))
	for _, wallet := range wallets {
		if err, ok := f.balanceErrs[wallet]; ok {
			return nil, err
		}
		out = append(out, f.balances[wallet])
	}
	return out, nil
}

func (f *fakeTreasury) Valuation(_ context.Context, contract string) (*daos.TokenValuation, error) {
	valuation, ok := f.valuations[contract]
	if !ok {
		return nil, fmt.Errorf("no valuation for %s", contract)
	}
	return valuation, nil
}

type fakeDiscord struct {
	counts map[string]int
}

func (f *fakeDiscord) MemberCount(_ context.Context, inviteURL string) (int, error) {
	count, ok := f.counts[inviteURL]
	if !ok {
		return 0, fmt.Errorf("invalid invite %s", inviteURL)
	}
	return count, nil
}

type fakeTwitter struct {
	profiles map[string]*daos.TwitterProfile
}

func (f *fakeTwitter) Profile(_ context.Context, handle string) (*daos.TwitterProfile, error) {
	profile, ok := f.profiles[handle]
	if !ok {
		return nil, fmt.Errorf("unknown handle %s", handle)
	}
	return profile, nil
}

func testPipelineConfig(limit int) config.PipelineConfig {
	return config.PipelineConfig{
		OrgLimit:         limit,
		SupportedNetwork: "1",
		QuoteRateCeiling: 80000,
	}
}

func quoteRate(v float64) *float64 { return &v }
