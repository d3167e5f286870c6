package pipeline

import (
	"context"

	"github.com/daoatlas/daoatlas/internal/match"
	"github.com/daoatlas/daoatlas/internal/sources/covalent"
	"github.com/daoatlas/daoatlas/internal/store"
	"github.com/daoatlas/daoatlas/pkg/daos"
	"github.com/daoatlas/daoatlas/pkg/logging"
)

// Collect builds the candidate catalog: the governance directory listing is
// cross-referenced against the aggregator extract, filtered to supported
// organizations, validated, and written to outPath for human curation.
//
// The listing explodes one organization into a row per category; each row
// counts against the record cap. Skips are soft: an unsupported network, an
// unresolvable organization, or an empty treasury drops the candidate and
// moves on.
func (p *Pipeline) Collect(ctx context.Context, outPath string) error {
	log := logging.Ctx(ctx)

	index, err := p.loadIndex(ctx)
	if err != nil {
		return err
	}

	candidates, err := p.governance.Spaces(ctx)
	if err != nil {
		return err
	}

	records := make([]*daos.CollectedRecord, 0, p.cfg.OrgLimit)
	built := make(map[string]*daos.CollectedRecord)
	skipped := make(map[string]struct{})

	for i, candidate := range candidates {
		if len(records) >= p.cfg.OrgLimit {
			log.Info().Int("limit", p.cfg.OrgLimit).Msg("record limit reached, stopping")
			break
		}

		log.Info().
			Int("index", i+1).
			Int("total", len(candidates)).
			Int("accepted", len(records)).
			Str("eth_name", candidate.EthName).
			Str("category", candidate.Category).
			Msg("processing candidate")

		if _, ok := skipped[candidate.EthName]; ok {
			continue
		}

		// The same organization appears once per category; reuse the
		// record built on first sight and only swap the category.
		if template, ok := built[candidate.EthName]; ok {
			clone := *template
			clone.Categories = candidate.Category
			records = append(records, &clone)
			continue
		}

		record, err := p.collectOne(ctx, candidate.EthName, candidate.Name, index)
		if err != nil {
			log.Warn().Err(err).Str("eth_name", candidate.EthName).Msg("skipping candidate")
			skipped[candidate.EthName] = struct{}{}
			continue
		}
		if record == nil {
			skipped[candidate.EthName] = struct{}{}
			continue
		}

		record.Categories = candidate.Category
		built[candidate.EthName] = record
		records = append(records, record)
	}

	log.Info().Int("records", len(records)).Str("path", outPath).Msg("writing collected catalog")
	return store.SaveCollected(outPath, records)
}

// collectOne cross-references a single organization. A nil record with a
// nil error means the candidate was skipped by a filter rather than by a
// failure.
func (p *Pipeline) collectOne(ctx context.Context, ethName, name string, index *match.Index) (*daos.CollectedRecord, error) {
	log := logging.Ctx(ctx)

	space, err := p.governance.Space(ctx, ethName)
	if err != nil {
		return nil, err
	}

	if space.Network != p.cfg.SupportedNetwork {
		log.Debug().Str("eth_name", ethName).Str("network", space.Network).Msg("unsupported network")
		return nil, nil
	}

	info, ok := index.Match(ethName, space.Name)
	if !ok {
		log.Debug().Str("eth_name", ethName).Msg("no aggregator match")
		return nil, nil
	}

	wallets := info.TreasuryWallets()
	if len(wallets) == 0 {
		log.Debug().Str("eth_name", ethName).Msg("no treasury recorded")
		return nil, nil
	}

	// The directory's profile fields are often blank; fall back to the
	// matched aggregator record.
	website := space.Website
	if website == "" {
		website = info.Website
	}
	twitter := space.Twitter
	if twitter == "" {
		twitter = info.Twitter
	}

	balances, err := p.treasury.Balances(ctx, space.Network, wallets)
	if err != nil {
		return nil, err
	}
	contract, _ := covalent.ResolveContractAddress(balances, space.Symbol)

	return &daos.CollectedRecord{
		EthName:         ethName,
		Name:            space.Name,
		About:           space.About,
		Network:         space.Network,
		Logo:            space.Avatar,
		Website:         website,
		Twitter:         twitter,
		Symbol:          space.Symbol,
		FollowersCount:  space.FollowersCount,
		ProposalsCount:  space.ProposalsCount,
		TreasuryAddress: info.TreasuryAddress,
		Description:     info.Description,
		Discord:         info.Discord,
		DiscordValid:    p.validateDiscord(ctx, info.Discord),
		TwitterValid:    p.validateTwitter(ctx, twitter),
		ContractAddress: contract,
	}, nil
}

// validateDiscord reports Y/N for whether the invite link resolves to a
// live guild.
func (p *Pipeline) validateDiscord(ctx context.Context, inviteURL string) string {
	if inviteURL == "" {
		return "N"
	}
	if _, err := p.discord.MemberCount(ctx, inviteURL); err != nil {
		logging.Ctx(ctx).Debug().Err(err).Str("discord", inviteURL).Msg("discord link invalid")
		return "N"
	}
	return "Y"
}

// validateTwitter reports Y/N for whether the handle resolves to a profile.
func (p *Pipeline) validateTwitter(ctx context.Context, handle string) string {
	if handle == "" {
		return "N"
	}
	if _, err := p.twitter.Profile(ctx, handle); err != nil {
		logging.Ctx(ctx).Debug().Err(err).Str("twitter", handle).Msg("twitter handle invalid")
		return "N"
	}
	return "Y"
}
