package covalent

import (
	"context"
	"math"
	"strconv"

	"github.com/daoatlas/daoatlas/pkg/daos"
	"github.com/daoatlas/daoatlas/pkg/errors"
	"github.com/daoatlas/daoatlas/pkg/logging"
)

// Balances retrieves the token balances of every treasury wallet, one slice
// per wallet, preserving the wallet order.
func (c *Client) Balances(ctx context.Context, network string, wallets []string) ([][]daos.TokenBalance, error) {
	all := make([][]daos.TokenBalance, 0, len(wallets))
	for _, wallet := range wallets {
		items, err := c.WalletBalances(ctx, network, wallet)
		if err != nil {
			return nil, err
		}
		all = append(all, items)
	}
	return all, nil
}

// ComputeTreasurySize sums the quote values across every wallet's holdings.
// Entries without a quote rate are unpriced and excluded; entries whose
// quote rate exceeds the ceiling are treated as pricing glitches and
// excluded as well.
func ComputeTreasurySize(wallets [][]daos.TokenBalance, ceiling float64) float64 {
	var total float64
	for _, wallet := range wallets {
		for _, item := range wallet {
			if item.QuoteRate == nil || *item.QuoteRate > ceiling {
				continue
			}
			total += item.Quote
		}
	}
	return total
}

// ResolveContractAddress finds the contract address of the token whose
// ticker symbol exactly matches the given symbol, scanning wallets in order
// and tokens within each wallet in order. The match is case-sensitive; a
// curated "UNI" never resolves against a spam token listed as "uni".
func ResolveContractAddress(wallets [][]daos.TokenBalance, symbol string) (string, bool) {
	if symbol == "" {
		return "", false
	}
	for _, wallet := range wallets {
		for _, item := range wallet {
			if item.ContractTickerSymbol == symbol {
				return item.ContractAddress, true
			}
		}
	}
	return "", false
}

// Valuation builds the full token valuation for a contract: spot price,
// holder count, decimal-adjusted total supply, and the derived market cap.
func (c *Client) Valuation(ctx context.Context, contract string) (*daos.TokenValuation, error) {
	price, err := c.SpotPrice(ctx, contract)
	if err != nil {
		return nil, err
	}

	stats, err := c.tokenHolders(ctx, contract)
	if err != nil {
		return nil, err
	}

	supply, err := adjustedSupply(stats.rawSupply, stats.decimals)
	if err != nil {
		return nil, err
	}

	valuation := &daos.TokenValuation{
		Price:       price,
		TotalSupply: supply,
		MarketCap:   supply * price,
		Holders:     stats.holders,
	}

	logging.Ctx(ctx).Debug().
		Str("contract", contract).
		Float64("price", valuation.Price).
		Float64("market_cap", valuation.MarketCap).
		Int("holders", valuation.Holders).
		Msg("token valuation computed")

	return valuation, nil
}

// adjustedSupply converts a raw base-unit supply string into whole tokens.
// Supplies routinely exceed int64 range, so the conversion goes through
// float64 and accepts the precision loss.
func adjustedSupply(raw string, decimals int) (float64, error) {
	supply, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.WrapParse("json", "total_supply", err)
	}
	return supply / math.Pow10(decimals), nil
}
