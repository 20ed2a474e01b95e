// Package config aggregates the application configuration.
//
// Configuration is assembled from partial configs owned by the packages they
// concern (server, pipeline, storage, logger). Values come from environment
// variables (optionally via a .env file) with defaults declared as struct tags:
//
//	type Config struct {
//	    Threshold int `mapstructure:"threshold" default:"80"`
//	}
//
// Nested keys map to underscore-separated environment variables, e.g.
// pipeline.threshold is overridden by PIPELINE_THRESHOLD.
package config
