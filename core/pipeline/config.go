package pipeline

import "fmt"

// Source kinds supported by the loader.
const (
	// SourceFile reads inputs from the local filesystem.
	SourceFile = "file"
	// SourceStorage reads inputs from the configured object storage bucket.
	SourceStorage = "storage"
)

// JoinInner is the only supported join type: unmatched listings are dropped.
const JoinInner = "inner"

// Config holds configuration for the data pipeline.
type Config struct {
	// DemographicsPath locates the demographics source (path or object key).
	DemographicsPath string `mapstructure:"demographics_path" default:"data/demographics.csv"`
	// ListingsPath locates the listings source (path or object key).
	ListingsPath string `mapstructure:"listings_path" default:"data/listings.csv"`
	// Source selects where inputs are read from (file, storage).
	Source string `mapstructure:"source" default:"file"`
	// Threshold is the minimum acceptable similarity score on a 0-100 scale.
	Threshold int `mapstructure:"threshold" default:"80"`
	// Scorer selects the similarity function (partial_ratio, ratio, token_sort_ratio).
	Scorer string `mapstructure:"scorer" default:"partial_ratio"`
	// JoinType is fixed to "inner"; the option exists so a different choice
	// fails loudly instead of being silently ignored.
	JoinType string `mapstructure:"join_type" default:"inner"`
	// CacheTTLSeconds is the time-to-live for memoized results. Zero disables caching.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"300"`
}

// Validate checks that the configured options are usable.
func (c Config) Validate() error {
	if c.Threshold < 0 || c.Threshold > 100 {
		return fmt.Errorf("threshold must be between 0 and 100, got %d", c.Threshold)
	}
	if _, err := ScorerByName(c.Scorer); err != nil {
		return err
	}
	if c.JoinType != JoinInner {
		return fmt.Errorf("unsupported join type %q (only %q is supported)", c.JoinType, JoinInner)
	}
	switch c.Source {
	case SourceFile, SourceStorage:
	default:
		return fmt.Errorf("unknown source kind %q", c.Source)
	}
	if c.CacheTTLSeconds < 0 {
		return fmt.Errorf("cache_ttl_seconds must not be negative, got %d", c.CacheTTLSeconds)
	}
	return nil
}
