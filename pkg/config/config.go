// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package config

import (
	"fmt"

	validator "github.com/AccelByte/justice-input-validation-go"
	"github.com/caarlos0/env"
	"github.com/sirupsen/logrus"
)

type Config struct {
	PremiumMatchesPerCycle    int    `env:"PREMIUM_MATCHES_PER_CYCLE"     envDefault:"2"                   envDocs:"max pairs popped from each premium bucket per cycle"                   valid:"range(1|2147483647)"`
	NonPremiumMatchesPerCycle int    `env:"NON_PREMIUM_MATCHES_PER_CYCLE" envDefault:"1"                   envDocs:"max pairs popped from each non-premium bucket per cycle"               valid:"range(1|2147483647)"`
	BucketCapacity            int    `env:"BUCKET_CAPACITY"               envDefault:"0"                   envDocs:"max pending requests per bucket, extra requests are rejected (0 means unbounded)" valid:"range(0|2147483647)"`
	RequestFile               string `env:"REQUEST_FILE"                  envDefault:"player_requests.csv" envDocs:"request CSV path, searched for by name when it does not exist"`
	FieldSeparator            string `env:"REQUEST_FIELD_SEPARATOR"       envDefault:";"                   envDocs:"single character separating the request CSV fields"                  valid:"stringlength(1|1)"`
	ReportFile                string `env:"REPORT_FILE"                   envDocs:"write a YAML match report to this path when set"`
	MetricsFile               string `env:"METRICS_FILE"                  envDocs:"write run metrics in prometheus text format to this path when set"`
	ZipkinEndpoint            string `env:"ZIPKIN_ENDPOINT"               envDocs:"zipkin collector url, tracing is disabled when empty"`
	LogLevel                  string `env:"LOG_LEVEL"                     envDefault:"info"                envDocs:"logrus level"                                                       valid:"in(panic|fatal|error|warn|warning|info|debug|trace)"`
}

// Load parses the configuration from the environment and validates it.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("unable to parse environment variables: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the configuration used when nothing is set in the environment.
func Default() *Config {
	return &Config{
		PremiumMatchesPerCycle:    2,
		NonPremiumMatchesPerCycle: 1,
		RequestFile:               "player_requests.csv",
		FieldSeparator:            ";",
		LogLevel:                  "info",
	}
}

func (c *Config) Validate() error {
	if _, err := validator.ValidateStruct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	// zero values are skipped by the struct validator
	if c.PremiumMatchesPerCycle < 1 || c.NonPremiumMatchesPerCycle < 1 {
		return fmt.Errorf("invalid config: matches per cycle must be at least 1")
	}
	return nil
}

// Separator returns the field separator as a rune.
func (c *Config) Separator() rune {
	for _, r := range c.FieldSeparator {
		return r
	}
	return ';'
}

// LogFields returns a view of the config safe for logging.
func (c *Config) LogFields() logrus.Fields {
	return logrus.Fields{
		"premiumMatchesPerCycle":    c.PremiumMatchesPerCycle,
		"nonPremiumMatchesPerCycle": c.NonPremiumMatchesPerCycle,
		"bucketCapacity":            c.BucketCapacity,
		"requestFile":               c.RequestFile,
		"reportFile":                c.ReportFile,
		"metricsFile":               c.MetricsFile,
		"tracing":                   c.ZipkinEndpoint != "",
		"logLevel":                  c.LogLevel,
	}
}
