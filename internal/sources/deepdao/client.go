// Package deepdao provides the metadata-aggregator source adapter: the
// organization listing, per-organization descriptive details, and asset
// records (treasury wallets), plus the flattening of those payloads into
// the canonical OrgInfo shape and the cache artifact built from them.
package deepdao

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/daoatlas/daoatlas/internal/config"
	"github.com/daoatlas/daoatlas/internal/transport"
)

const source = "deepdao"

// OrgSummary is one entry of the aggregator's organization listing.
type OrgSummary struct {
	OrganizationID string `json:"organizationId"`
}

// Asset is one asset record of an organization: a wallet address with a
// type tag and free-text description. Address and Description are null for
// some entries upstream.
type Asset struct {
	Type        string  `json:"type"`
	Address     *string `json:"address"`
	Description *string `json:"description"`
}

type orgsResponse struct {
	DAOsSummary []OrgSummary `json:"daosSummary"`
}

type detailsResponse struct {
	Data json.RawMessage `json:"data"`
}

type assetsResponse struct {
	Data []Asset `json:"data"`
}

// Client implements the metadata-aggregator source adapter. Every request
// carries the fixed browser user-agent the upstream expects.
type Client struct {
	cfg       config.DeepDAOConfig
	transport *transport.Client
}

// New creates a new aggregator client.
func New(cfg config.DeepDAOConfig) *Client {
	return &Client{
		cfg:       cfg,
		transport: transport.New(transport.WithHeader("User-Agent", cfg.UserAgent)),
	}
}

// Organizations retrieves the full organization listing.
func (c *Client) Organizations(ctx context.Context) ([]OrgSummary, error) {
	var result orgsResponse
	if err := c.transport.GetJSON(ctx, source, c.cfg.OrganizationsURL, &result); err != nil {
		return nil, err
	}
	return result.DAOsSummary, nil
}

// OrganizationDetails retrieves the descriptive detail document for one
// organization. The payload is free-form; it is returned raw and flattened
// by Flatten, which needs the original key order.
func (c *Client) OrganizationDetails(ctx context.Context, orgID string) (json.RawMessage, error) {
	var result detailsResponse
	url := fmt.Sprintf(c.cfg.DetailsURL, orgID)
	if err := c.transport.GetJSON(ctx, source, url, &result); err != nil {
		return nil, err
	}
	return result.Data, nil
}

// OrganizationAssets retrieves the asset records for one organization.
func (c *Client) OrganizationAssets(ctx context.Context, orgID string) ([]Asset, error) {
	var result assetsResponse
	url := fmt.Sprintf(c.cfg.AssetsURL, orgID)
	if err := c.transport.GetJSON(ctx, source, url, &result); err != nil {
		return nil, err
	}
	return result.Data, nil
}
