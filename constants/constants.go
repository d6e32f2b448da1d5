package constants

import "time"

const (
	ConfigFolder = "CONFIG_FOLDER"
	StatePath    = "STATE_PATH"
	StreamsPath  = "STREAMS_PATH"

	// Rate-limit headers returned by the Zoho Books API. Absence of either
	// header disables throttling for that response.
	HeaderRateLimitLimit     = "X-Rate-Limit-Limit"
	HeaderRateLimitRemaining = "X-Rate-Limit-Remaining"

	// EffectiveSyncMode values reported in the catalog.
	FullRefresh = "full_refresh"
	Incremental = "incremental"

	// DetailBatchSize is the maximum number of identifiers sent in one
	// detail-enrichment request.
	DetailBatchSize = 100

	// RateLimitAlertThreshold is the remaining-request count below which the
	// near-exhaustion warning fires (once per stream run).
	RateLimitAlertThreshold = 500

	DefaultRetryMaxAttempts  = 10
	DefaultBackoffInitial    = 5 * time.Second
	DefaultBackoffMultiplier = 4.0
	DefaultBackoffMax        = 180 * time.Second
	DefaultCooldown          = 2 * time.Second

	// PacingInterval spaces out requests to endpoints with an observed
	// per-entity request cost, to stay under the secondary per-minute quota
	// that is not reflected in response headers.
	PacingInterval = 1010 * time.Millisecond
)
