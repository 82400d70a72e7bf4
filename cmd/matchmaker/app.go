// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package main

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/AccelByte/extend-tiered-matchmaker/pkg/config"
	"github.com/AccelByte/extend-tiered-matchmaker/pkg/constants"
	"github.com/AccelByte/extend-tiered-matchmaker/pkg/envelope"
	"github.com/AccelByte/extend-tiered-matchmaker/pkg/matchmaker"
	"github.com/AccelByte/extend-tiered-matchmaker/pkg/matchmaker/tieredmatchmaker"
	"github.com/AccelByte/extend-tiered-matchmaker/pkg/metrics"
	"github.com/AccelByte/extend-tiered-matchmaker/pkg/models"
	"github.com/AccelByte/extend-tiered-matchmaker/pkg/sink"
	"github.com/AccelByte/extend-tiered-matchmaker/pkg/source"
	"github.com/AccelByte/extend-tiered-matchmaker/pkg/tracing"
)

const serviceName = "tiered-matchmaker"

const (
	fileFlag            = "file"
	premiumQuotaFlag    = "premium-quota"
	nonPremiumQuotaFlag = "non-premium-quota"
	capacityFlag        = "capacity"
	separatorFlag       = "separator"
	reportFlag          = "report"
	metricsFileFlag     = "metrics-file"
	zipkinFlag          = "zipkin"
	logLevelFlag        = "log-level"
)

func newApp(out io.Writer) *cli.App {
	return &cli.App{
		Name:      "matchmaker",
		Usage:     "pair player requests from a CSV file into premium and non-premium matches",
		Writer:    out,
		ErrWriter: out,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: fileFlag, Aliases: []string{"f"}, Usage: "request CSV path, searched for by name when it does not exist"},
			&cli.IntFlag{Name: premiumQuotaFlag, Usage: "max pairs popped from each premium bucket per cycle"},
			&cli.IntFlag{Name: nonPremiumQuotaFlag, Usage: "max pairs popped from each non-premium bucket per cycle"},
			&cli.IntFlag{Name: capacityFlag, Usage: "max pending requests per bucket (0 means unbounded)"},
			&cli.StringFlag{Name: separatorFlag, Usage: "request CSV field separator"},
			&cli.StringFlag{Name: reportFlag, Usage: "write a YAML match report to this path"},
			&cli.StringFlag{Name: metricsFileFlag, Usage: "write run metrics in prometheus text format to this path"},
			&cli.StringFlag{Name: zipkinFlag, Usage: "zipkin collector url"},
			&cli.StringFlag{Name: logLevelFlag, Usage: "logrus level"},
		},
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			return run(c.Context, cfg, out)
		},
	}
}

// loadConfig reads the environment and lets explicitly set flags override it.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if c.IsSet(fileFlag) {
		cfg.RequestFile = c.String(fileFlag)
	}
	if c.IsSet(premiumQuotaFlag) {
		cfg.PremiumMatchesPerCycle = c.Int(premiumQuotaFlag)
	}
	if c.IsSet(nonPremiumQuotaFlag) {
		cfg.NonPremiumMatchesPerCycle = c.Int(nonPremiumQuotaFlag)
	}
	if c.IsSet(capacityFlag) {
		cfg.BucketCapacity = c.Int(capacityFlag)
	}
	if c.IsSet(separatorFlag) {
		cfg.FieldSeparator = c.String(separatorFlag)
	}
	if c.IsSet(reportFlag) {
		cfg.ReportFile = c.String(reportFlag)
	}
	if c.IsSet(metricsFileFlag) {
		cfg.MetricsFile = c.String(metricsFileFlag)
	}
	if c.IsSet(zipkinFlag) {
		cfg.ZipkinEndpoint = c.String(zipkinFlag)
	}
	if c.IsSet(logLevelFlag) {
		cfg.LogLevel = c.String(logLevelFlag)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(ctx context.Context, cfg *config.Config, out io.Writer) error {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logrus.SetLevel(level)

	shutdown, err := tracing.Setup(cfg.ZipkinEndpoint, serviceName)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			logrus.Warnf("unable to flush traces: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	scope := envelope.NewRootScope(ctx, "matchmaker.run", "")
	defer scope.Finish()
	scope.Log.WithFields(cfg.LogFields()).Info("starting matchmaker")

	path, err := source.Resolve(cfg.RequestFile, constants.DefaultRequestFileName)
	if err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	mmMetrics := metrics.NewMetrics(registry)

	printer := sink.NewConsolePrinter(out)
	report := sink.NewReport(scope.TraceID)
	provider := &printingProvider{
		provider: source.NewCSVSource(path, cfg.Separator()),
		printer:  printer,
	}

	mm := tieredmatchmaker.New(cfg, mmMetrics)
	summary, err := tieredmatchmaker.Run(scope, mm, provider, sink.Multi{printer, report}, mmMetrics)
	if err != nil {
		return err
	}
	printer.Finish(summary)

	if cfg.ReportFile != "" {
		report.Finish(summary)
		if err := report.WriteFile(cfg.ReportFile); err != nil {
			return err
		}
		scope.Log.Infof("match report written to %s", cfg.ReportFile)
	}
	if cfg.MetricsFile != "" {
		if err := metrics.WriteToTextfile(registry, cfg.MetricsFile); err != nil {
			return fmt.Errorf("unable to write metrics: %w", err)
		}
	}

	return nil
}

// printingProvider lists the loaded requests on the console before they are matched.
type printingProvider struct {
	provider matchmaker.RequestProvider
	printer  *sink.ConsolePrinter
}

func (p *printingProvider) GetRequests(scope *envelope.Scope) ([]models.Request, []models.LineError, error) {
	requests, lineErrors, err := p.provider.GetRequests(scope)
	if err != nil {
		return nil, nil, err
	}
	p.printer.PrintRequests(requests)
	return requests, lineErrors, nil
}
