// Package covalent provides the on-chain balances source adapter and the
// treasury aggregation built on it: per-wallet token balances, spot prices,
// supply and holder statistics, and the derived treasury and market-cap
// metrics.
package covalent

import (
	"context"
	"fmt"

	"github.com/daoatlas/daoatlas/internal/config"
	"github.com/daoatlas/daoatlas/internal/transport"
	"github.com/daoatlas/daoatlas/pkg/daos"
	"github.com/daoatlas/daoatlas/pkg/errors"
)

const source = "covalent"

type balancesResponse struct {
	Data struct {
		Items []daos.TokenBalance `json:"items"`
	} `json:"data"`
}

type pricingResponse struct {
	Data []struct {
		Prices []struct {
			Price float64 `json:"price"`
		} `json:"prices"`
	} `json:"data"`
}

type holdersResponse struct {
	Data struct {
		Pagination struct {
			TotalCount int `json:"total_count"`
		} `json:"pagination"`
		Items []struct {
			TotalSupply      string `json:"total_supply"`
			ContractDecimals int    `json:"contract_decimals"`
		} `json:"items"`
	} `json:"data"`
}

// holderStats is the raw supply/holder data backing a token valuation.
type holderStats struct {
	holders   int
	rawSupply string
	decimals  int
}

// Client implements the balances-provider source adapter.
type Client struct {
	cfg       config.CovalentConfig
	transport *transport.Client
}

// New creates a new balances-provider client.
func New(cfg config.CovalentConfig) *Client {
	return &Client{
		cfg:       cfg,
		transport: transport.New(),
	}
}

// WalletBalances retrieves every (token, balance) entry for one wallet on
// the given network.
func (c *Client) WalletBalances(ctx context.Context, network, address string) ([]daos.TokenBalance, error) {
	url := fmt.Sprintf(c.cfg.BalancesURL, network, address, c.cfg.APIKey)

	var result balancesResponse
	if err := c.transport.GetJSON(ctx, source, url, &result); err != nil {
		return nil, err
	}
	return result.Data.Items, nil
}

// SpotPrice retrieves the latest spot price for a token contract. A missing
// or short response array is a data error for the organization being
// enriched; the pipeline catches it at record granularity.
func (c *Client) SpotPrice(ctx context.Context, contract string) (float64, error) {
	url := fmt.Sprintf(c.cfg.PricingURL, contract, c.cfg.APIKey)

	var result pricingResponse
	if err := c.transport.GetJSON(ctx, source, url, &result); err != nil {
		return 0, err
	}

	if len(result.Data) == 0 || len(result.Data[0].Prices) == 0 {
		return 0, &errors.APIError{
			Source:   source,
			Endpoint: url,
			Message:  "empty price series for contract " + contract,
		}
	}
	return result.Data[0].Prices[0].Price, nil
}

// tokenHolders retrieves the holder count and the first holder entry's
// total supply and decimals for a token contract.
func (c *Client) tokenHolders(ctx context.Context, contract string) (*holderStats, error) {
	url := fmt.Sprintf(c.cfg.TokenHoldersURL, contract, c.cfg.APIKey)

	var result holdersResponse
	if err := c.transport.GetJSON(ctx, source, url, &result); err != nil {
		return nil, err
	}

	if len(result.Data.Items) == 0 {
		return nil, &errors.APIError{
			Source:   source,
			Endpoint: url,
			Message:  "no holder entries for contract " + contract,
		}
	}

	return &holderStats{
		holders:   result.Data.Pagination.TotalCount,
		rawSupply: result.Data.Items[0].TotalSupply,
		decimals:  result.Data.Items[0].ContractDecimals,
	}, nil
}
