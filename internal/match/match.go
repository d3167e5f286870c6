// Package match resolves governance-directory organizations against the
// metadata-aggregator extract. Matching tries increasingly loose strategies
// in a fixed order and memoizes hits by identifier so repeated lookups stay
// cheap and consistent within a run.
package match

import (
	"strings"

	"github.com/daoatlas/daoatlas/pkg/daos"
	"github.com/daoatlas/daoatlas/pkg/logging"
)

// Index matches identifiers against a fixed set of aggregator records. The
// records are never mutated; resolved identifiers live in a separate memo.
type Index struct {
	records []*daos.OrgInfo
	memo    map[string]*daos.OrgInfo
}

// New builds an index over the aggregator records.
func New(records []*daos.OrgInfo) *Index {
	return &Index{
		records: records,
		memo:    make(map[string]*daos.OrgInfo),
	}
}

// Match resolves an organization by its governance identifier and display
// name. Strategies, in order:
//
//  1. memoized hit from an earlier lookup of the same identifier
//  2. identifier membership in a record's known identifier list
//  3. case-insensitive display-name equality
//
// A hit from strategies 2 or 3 is memoized under the identifier. Returns
// false when no strategy matches.
func (ix *Index) Match(ethName, name string) (*daos.OrgInfo, bool) {
	if info, ok := ix.memo[ethName]; ok {
		return info, true
	}

	for _, record := range ix.records {
		for _, known := range record.EthNames() {
			if known == ethName {
				ix.memo[ethName] = record
				return record, true
			}
		}
	}

	for _, record := range ix.records {
		if strings.EqualFold(record.Name, name) {
			logging.Debug().
				Str("eth_name", ethName).
				Str("name", name).
				Str("organization", record.OrganizationID).
				Msg("matched by display name")
			ix.memo[ethName] = record
			return record, true
		}
	}

	return nil, false
}
