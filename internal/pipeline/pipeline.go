// Package pipeline orchestrates the two workflows: collect builds the
// candidate catalog for human curation, expand enriches the curated rows
// into the final canonical records.
package pipeline

import (
	"context"
	"fmt"

	"github.com/daoatlas/daoatlas/internal/config"
	"github.com/daoatlas/daoatlas/internal/match"
	"github.com/daoatlas/daoatlas/internal/sources/covalent"
	"github.com/daoatlas/daoatlas/internal/sources/deepdao"
	"github.com/daoatlas/daoatlas/internal/sources/snapshot"
	"github.com/daoatlas/daoatlas/internal/sources/social"
	"github.com/daoatlas/daoatlas/pkg/daos"
	"github.com/daoatlas/daoatlas/pkg/errors"
)

// GovernanceSource lists organizations and their governance statistics.
type GovernanceSource interface {
	Spaces(ctx context.Context) ([]daos.Candidate, error)
	Space(ctx context.Context, id string) (*daos.Space, error)
}

// OrgLoader supplies the metadata-aggregator extract.
type OrgLoader interface {
	Load(ctx context.Context) ([]*daos.OrgInfo, error)
}

// TreasurySource supplies on-chain balances and token valuations.
type TreasurySource interface {
	Balances(ctx context.Context, network string, wallets []string) ([][]daos.TokenBalance, error)
	Valuation(ctx context.Context, contract string) (*daos.TokenValuation, error)
}

// DiscordSource resolves invite links to member counts.
type DiscordSource interface {
	MemberCount(ctx context.Context, inviteURL string) (int, error)
}

// TwitterSource fetches profile metadata for handles.
type TwitterSource interface {
	Profile(ctx context.Context, handle string) (*daos.TwitterProfile, error)
}

// Pipeline wires the sources together and runs the workflows.
type Pipeline struct {
	governance GovernanceSource
	orgs       OrgLoader
	treasury   TreasurySource
	discord    DiscordSource
	twitter    TwitterSource
	cfg        config.PipelineConfig
}

// New assembles a pipeline from explicit sources. Tests inject fakes here.
func New(
	governance GovernanceSource,
	orgs OrgLoader,
	treasury TreasurySource,
	discord DiscordSource,
	twitter TwitterSource,
	cfg config.PipelineConfig,
) *Pipeline {
	return &Pipeline{
		governance: governance,
		orgs:       orgs,
		treasury:   treasury,
		discord:    discord,
		twitter:    twitter,
		cfg:        cfg,
	}
}

// NewFromConfig assembles the pipeline with live source clients.
func NewFromConfig(cfg *config.Config) (*Pipeline, error) {
	if cfg.Covalent.APIKey == "" {
		return nil, fmt.Errorf("covalent: %w", errors.ErrAPIKeyRequired)
	}

	twitter, err := social.NewTwitter(cfg.Twitter)
	if err != nil {
		return nil, err
	}

	ddClient := deepdao.New(cfg.DeepDAO)
	downloader := deepdao.NewDownloader(ddClient, cfg.Pipeline.CrawlDelay)
	cache := deepdao.NewCache(cfg.DeepDAO.CachePath, downloader)

	return New(
		snapshot.New(cfg.Snapshot),
		cache,
		covalent.New(cfg.Covalent),
		social.NewDiscord(cfg.Discord),
		twitter,
		cfg.Pipeline,
	), nil
}

// loadIndex builds the entity-matching index from the aggregator extract.
func (p *Pipeline) loadIndex(ctx context.Context) (*match.Index, error) {
	infos, err := p.orgs.Load(ctx)
	if err != nil {
		return nil, err
	}
	return match.New(infos), nil
}
