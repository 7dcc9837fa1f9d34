package config

import "time"

// Retry configuration constants
const (
	// Round store reads (Sheets, PostgreSQL)
	StoreReadMaxAttempts       = 3
	StoreReadInitialWait       = 500 * time.Millisecond
	StoreReadMaxWait           = 5 * time.Second
	StoreReadBackoffMultiplier = 2.0
	StoreReadTimeout           = 15 * time.Second

	// Key-value access (bag blob)
	StoreWriteMaxAttempts       = 3
	StoreWriteInitialWait       = 250 * time.Millisecond
	StoreWriteMaxWait           = 2 * time.Second
	StoreWriteBackoffMultiplier = 2.0
	StoreWriteTimeout           = 5 * time.Second
)

// RetryConfig defines retry behavior for operations
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
	Timeout     time.Duration // per attempt; zero means no per-attempt deadline
}

// ResilienceConfig contains all retry configurations
type ResilienceConfig struct {
	StoreRead  RetryConfig
	StoreWrite RetryConfig
}

// DefaultResilienceConfig provides sensible defaults
var DefaultResilienceConfig = ResilienceConfig{
	StoreRead: RetryConfig{
		MaxAttempts: StoreReadMaxAttempts,
		InitialWait: StoreReadInitialWait,
		MaxWait:     StoreReadMaxWait,
		Multiplier:  StoreReadBackoffMultiplier,
		Timeout:     StoreReadTimeout,
	},
	StoreWrite: RetryConfig{
		MaxAttempts: StoreWriteMaxAttempts,
		InitialWait: StoreWriteInitialWait,
		MaxWait:     StoreWriteMaxWait,
		Multiplier:  StoreWriteBackoffMultiplier,
		Timeout:     StoreWriteTimeout,
	},
}
