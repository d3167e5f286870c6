// Package constants provides shared constants used throughout the daoatlas codebase.
// This includes timeouts, limits, file permissions, and pipeline thresholds
// that should be consistent across the application.
package constants

import "time"

// Timeout constants define various timeout durations used in the application
const (
	// DefaultHTTPTimeout is the standard timeout for HTTP requests to upstream APIs
	DefaultHTTPTimeout = 30 * time.Second

	// DefaultTimeout is the standard timeout for general operations
	DefaultTimeout = 10 * time.Second

	// CrawlDelay is the pause inserted before each new metadata-aggregator
	// lookup to respect upstream rate limits
	CrawlDelay = 2 * time.Second
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Pipeline constants define aggregation thresholds and limits
const (
	// DefaultOrgLimit is the cap on accepted organizations per collect run
	DefaultOrgLimit = 50

	// QuoteRateCeiling excludes tokens whose quote rate exceeds this value
	// from treasury sums; some tokens carry corrupt price feeds
	QuoteRateCeiling = 80000.0

	// SupportedNetwork is the only network id the balances provider covers
	// in this pipeline
	SupportedNetwork = "1"

	// SupportedNetworkLabel is the human-readable name of SupportedNetwork
	SupportedNetworkLabel = "Ethereum Mainnet"

	// MinKeywordLength is the shortest token (in runes) kept by keyword extraction
	MinKeywordLength = 4
)
