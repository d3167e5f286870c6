// Package config holds the explicit configuration passed into each adapter
// and pipeline component at construction. Endpoint defaults ship embedded
// in the binary; API keys and overrides come from the environment via the
// app layer.
package config

import (
	_ "embed"
	"time"

	"github.com/goccy/go-yaml"

	"github.com/daoatlas/daoatlas/pkg/constants"
	"github.com/daoatlas/daoatlas/pkg/errors"
)

//go:embed sources.yaml
var defaultSources []byte

// Config aggregates the per-source configurations and pipeline limits.
type Config struct {
	Snapshot SnapshotConfig `yaml:"snapshot"`
	DeepDAO  DeepDAOConfig  `yaml:"deepdao"`
	Covalent CovalentConfig `yaml:"covalent"`
	Discord  DiscordConfig  `yaml:"discord"`
	Twitter  TwitterConfig  `yaml:"twitter"`
	Pipeline PipelineConfig `yaml:"-"`
}

// SnapshotConfig configures the governance-directory adapter.
type SnapshotConfig struct {
	ExploreURL string `yaml:"explore_url"`
	GraphQLURL string `yaml:"graphql_url"`
}

// DeepDAOConfig configures the metadata-aggregator adapter. DetailsURL and
// AssetsURL are fmt templates taking the organization id.
type DeepDAOConfig struct {
	OrganizationsURL string `yaml:"organizations_url"`
	DetailsURL       string `yaml:"details_url"`
	AssetsURL        string `yaml:"assets_url"`
	UserAgent        string `yaml:"user_agent"`
	CachePath        string `yaml:"cache_path"`
}

// CovalentConfig configures the balances-provider adapter. The URL fields
// are fmt templates; BalancesURL takes (network, address, key), the others
// (contract, key). The API key is never read from the embedded defaults.
type CovalentConfig struct {
	BalancesURL     string `yaml:"balances_url"`
	PricingURL      string `yaml:"pricing_url"`
	TokenHoldersURL string `yaml:"token_holders_url"`
	APIKey          string `yaml:"-"`
}

// DiscordConfig configures the discord invite-resolution adapter.
type DiscordConfig struct {
	InviteURL string `yaml:"invite_url"`
}

// TwitterConfig configures the twitter profile adapter.
type TwitterConfig struct {
	UserShowURL string `yaml:"user_show_url"`
	BearerToken string `yaml:"-"`
}

// PipelineConfig holds the orchestration limits.
type PipelineConfig struct {
	OrgLimit         int
	SupportedNetwork string
	QuoteRateCeiling float64
	CrawlDelay       time.Duration
}

// Default returns the configuration built from the embedded endpoint
// defaults and the standard pipeline limits.
func Default() (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultSources, cfg); err != nil {
		return nil, &errors.ConfigError{
			Component: "sources",
			Message:   "failed to parse embedded source defaults",
			Err:       err,
		}
	}

	cfg.Pipeline = PipelineConfig{
		OrgLimit:         constants.DefaultOrgLimit,
		SupportedNetwork: constants.SupportedNetwork,
		QuoteRateCeiling: constants.QuoteRateCeiling,
		CrawlDelay:       constants.CrawlDelay,
	}

	return cfg, nil
}
