// Package daos defines the canonical record types exchanged between the
// source adapters, the entity matcher, and the pipeline workflows. Each
// upstream source speaks its own shape; everything is converted into these
// types at the adapter boundary.
package daos

import "strings"

// Candidate is one row of the governance-directory listing. A space with
// several categories is exploded into one Candidate per category.
type Candidate struct {
	Category  string
	EthName   string
	Name      string
	Followers int
}

// Space holds the detail fields the governance directory exposes for a
// single organization via its GraphQL endpoint.
type Space struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	About          string   `json:"about"`
	Categories     []string `json:"categories"`
	Network        string   `json:"network"`
	Avatar         string   `json:"avatar"`
	Website        string   `json:"website"`
	Twitter        string   `json:"twitter"`
	Symbol         string   `json:"symbol"`
	FollowersCount int      `json:"followersCount"`
	ProposalsCount int      `json:"proposalsCount"`
}

// OrgInfo is one flattened metadata-aggregator record, as persisted in the
// aggregator cache artifact. Loaded records are immutable; identifier
// matches are memoized in a separate index, never written back onto rows.
type OrgInfo struct {
	OrganizationID  string `csv:"organization_id"`
	Name            string `csv:"name"`
	Description     string `csv:"description"`
	Website         string `csv:"website"`
	Twitter         string `csv:"twitter"`
	Discord         string `csv:"discord"`
	TreasuryAddress string `csv:"treasury_address"`
	DDEthNames      string `csv:"dd_eth_names"`
	RetrievedAt     string `csv:"retrieved_at"`
}

// EthNames returns the comma-separated dd_eth_names field as a slice.
// Elements are kept verbatim; matching is exact-equality on each element.
func (o *OrgInfo) EthNames() []string {
	if o.DDEthNames == "" {
		return nil
	}
	return strings.Split(o.DDEthNames, ",")
}

// TreasuryWallets returns the comma-separated treasury_address field as a slice.
func (o *OrgInfo) TreasuryWallets() []string {
	if o.TreasuryAddress == "" {
		return nil
	}
	return strings.Split(o.TreasuryAddress, ",")
}

// TokenBalance is one (wallet, token) balance entry from the balances
// provider. QuoteRate is nil when the provider has no price for the token.
type TokenBalance struct {
	ContractTickerSymbol string   `json:"contract_ticker_symbol"`
	ContractAddress      string   `json:"contract_address"`
	ContractDecimals     int      `json:"contract_decimals"`
	QuoteRate            *float64 `json:"quote_rate"`
	Quote                float64  `json:"quote"`
}

// TokenValuation carries the derived financial metrics for an
// organization's primary token.
type TokenValuation struct {
	Price       float64
	TotalSupply float64 // human-readable, raw supply / 10^decimals
	MarketCap   float64
	Holders     int
}

// TwitterProfile is the subset of the twitter users/show payload the
// pipeline consumes.
type TwitterProfile struct {
	Description    string `json:"description"`
	FollowersCount int    `json:"followers_count"`
}

// CollectedRecord is one row of the collect-workflow output, handed to
// human curation. data_clean_status is left blank for curators to fill.
type CollectedRecord struct {
	EthName         string `csv:"eth_name"`
	Name            string `csv:"name"`
	About           string `csv:"about"`
	Categories      string `csv:"categories"`
	Network         string `csv:"network"`
	Logo            string `csv:"logo"`
	Website         string `csv:"website"`
	Twitter         string `csv:"twitter"`
	Symbol          string `csv:"symbol"`
	FollowersCount  int    `csv:"ss_followers_count"`
	ProposalsCount  int    `csv:"ss_proposals_count"`
	TreasuryAddress string `csv:"treasury_address"`
	Description     string `csv:"description"`
	Discord         string `csv:"discord"`
	DiscordValid    string `csv:"discord_valid"`
	TwitterValid    string `csv:"twitter_valid"`
	ContractAddress string `csv:"contract_address"`
	DataCleanStatus string `csv:"data_clean_status"`
}

// CuratedRow is one row of the manually curated expand-workflow input.
// The schema is the collect output plus the columns curators add.
type CuratedRow struct {
	EthName         string `csv:"eth_name"`
	Name            string `csv:"name"`
	Logo            string `csv:"logo"`
	Mission         string `csv:"mission"`
	About           string `csv:"about"`
	Categories      string `csv:"categories"`
	Network         string `csv:"network"`
	Website         string `csv:"website"`
	Discord         string `csv:"discord"`
	Twitter         string `csv:"twitter"`
	Symbol          string `csv:"symbol"`
	ContractAddress string `csv:"contract_address"`
	TreasuryAddress string `csv:"treasury_address"`
	ProposalsCount  int    `csv:"ss_proposals_count"`
	DataCleanStatus string `csv:"data_clean_status"`
}

// Curated reports whether the row passed manual curation.
func (r *CuratedRow) Curated() bool {
	return r.DataCleanStatus == "Y"
}

// TreasuryWallets returns the comma-separated treasury_address field as a slice.
func (r *CuratedRow) TreasuryWallets() []string {
	if r.TreasuryAddress == "" {
		return nil
	}
	return strings.Split(r.TreasuryAddress, ",")
}

// CuratedRecord is the final canonical output row of the expand workflow:
// the union of normalized fields from every source plus the computed
// financial metrics. Social counts are nil when the corresponding fetch
// failed (soft null).
type CuratedRecord struct {
	ID                    int     `csv:"id"`
	Logo                  string  `csv:"logo"`
	Name                  string  `csv:"name"`
	Mission               string  `csv:"mission"`
	About                 string  `csv:"about"`
	Network               string  `csv:"network"`
	Categories            string  `csv:"categories"`
	WebsiteURL            string  `csv:"website_url"`
	DiscordURL            string  `csv:"discord_url"`
	TwitterHandle         string  `csv:"twitter_handle"`
	Symbol                string  `csv:"symbol"`
	ContractAddress       string  `csv:"contract_address"`
	DiscordUsersCount     *int    `csv:"discord_users_count"`
	TwitterFollowersCount *int    `csv:"twitter_followers_count"`
	Tags                  string  `csv:"tags"`
	TreasurySize          float64 `csv:"treasury_size"`
	NumProposals          int     `csv:"num_proposals"`
	TokenPriceUSD         float64 `csv:"token_price_usd"`
	MarketCapUSD          float64 `csv:"market_cap_usd"`
	NumTokenHolders       int     `csv:"num_token_holders"`
	EstablishmentDate     string  `csv:"establishment_date"`
}
