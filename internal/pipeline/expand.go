package pipeline

import (
	"context"
	"strings"

	"github.com/daoatlas/daoatlas/internal/keywords"
	"github.com/daoatlas/daoatlas/internal/sources/covalent"
	"github.com/daoatlas/daoatlas/internal/store"
	"github.com/daoatlas/daoatlas/pkg/constants"
	"github.com/daoatlas/daoatlas/pkg/daos"
	"github.com/daoatlas/daoatlas/pkg/errors"
	"github.com/daoatlas/daoatlas/pkg/logging"
)

// Expand enriches the curated rows at inPath into the final canonical
// records at outPath. Only rows that passed curation are processed.
//
// Failures are isolated at record granularity: one organization with a bad
// treasury or a vanished token is logged and dropped, and the run keeps
// going. Social lookups fail softer still: the count is left null and the
// record survives.
func (p *Pipeline) Expand(ctx context.Context, inPath, outPath string) error {
	log := logging.Ctx(ctx)

	rows, err := store.LoadCurated(inPath)
	if err != nil {
		return err
	}

	curated := make([]*daos.CuratedRow, 0, len(rows))
	for _, row := range rows {
		if row.Curated() {
			curated = append(curated, row)
		}
	}
	log.Info().Int("total", len(rows)).Int("curated", len(curated)).Msg("curated rows loaded")

	records := make([]*daos.CuratedRecord, 0, len(curated))
	for i, row := range curated {
		log.Info().
			Int("index", i+1).
			Int("total", len(curated)).
			Str("eth_name", row.EthName).
			Msg("expanding organization")

		record, err := p.expandOne(ctx, row)
		if err != nil {
			log.Error().Err(errors.WrapRecord(row.EthName, "expand", err)).Msg("dropping record")
			continue
		}
		record.ID = len(records) + 1
		records = append(records, record)
	}

	log.Info().Int("records", len(records)).Str("path", outPath).Msg("writing curated output")
	return store.SaveCurated(outPath, records)
}

// expandOne enriches a single curated row.
func (p *Pipeline) expandOne(ctx context.Context, row *daos.CuratedRow) (*daos.CuratedRecord, error) {
	contract := strings.ToLower(strings.TrimSpace(row.ContractAddress))

	record := &daos.CuratedRecord{
		Logo:            row.Logo,
		Name:            row.Name,
		Mission:         row.Mission,
		About:           row.About,
		Network:         constants.SupportedNetworkLabel,
		Categories:      row.Categories,
		WebsiteURL:      row.Website,
		DiscordURL:      row.Discord,
		TwitterHandle:   row.Twitter,
		Symbol:          row.Symbol,
		ContractAddress: contract,
		NumProposals:    row.ProposalsCount,
	}

	p.enrichSocial(ctx, row, record)

	wallets := row.TreasuryWallets()
	balances, err := p.treasury.Balances(ctx, row.Network, wallets)
	if err != nil {
		return nil, err
	}
	record.TreasurySize = covalent.ComputeTreasurySize(balances, p.cfg.QuoteRateCeiling)

	if contract != "" {
		valuation, err := p.treasury.Valuation(ctx, contract)
		if err != nil {
			return nil, err
		}
		record.TokenPriceUSD = valuation.Price
		record.MarketCapUSD = valuation.MarketCap
		record.NumTokenHolders = valuation.Holders
	}

	return record, nil
}

// enrichSocial fills the social counts and bio-derived tags. Lookups fail
// soft: the corresponding count stays null and tags stay empty.
func (p *Pipeline) enrichSocial(ctx context.Context, row *daos.CuratedRow, record *daos.CuratedRecord) {
	log := logging.Ctx(ctx)

	if row.Discord != "" {
		if count, err := p.discord.MemberCount(ctx, row.Discord); err != nil {
			log.Warn().Err(err).Str("eth_name", row.EthName).Msg("discord lookup failed")
		} else {
			record.DiscordUsersCount = &count
		}
	}

	if row.Twitter != "" {
		if profile, err := p.twitter.Profile(ctx, row.Twitter); err != nil {
			log.Warn().Err(err).Str("eth_name", row.EthName).Msg("twitter lookup failed")
		} else {
			followers := profile.FollowersCount
			record.TwitterFollowersCount = &followers
			record.Tags = strings.Join(keywords.Extract(profile.Description), ",")
		}
	}
}
