// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package sink

import (
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/AccelByte/extend-tiered-matchmaker/pkg/envelope"
	"github.com/AccelByte/extend-tiered-matchmaker/pkg/models"
)

// Report collects the match stream so it can be written out once the run is over.
type Report struct {
	TraceID     string         `yaml:"traceID"`
	GeneratedAt time.Time      `yaml:"generatedAt"`
	Summary     models.Summary `yaml:"summary"`
	Matches     []models.Match `yaml:"matches"`
}

// NewReport starts a report for the run identified by traceID.
func NewReport(traceID string) *Report {
	return &Report{TraceID: traceID}
}

func (r *Report) OnMatch(scope *envelope.Scope, match models.Match) {
	r.Matches = append(r.Matches, match)
}

// Finish attaches the run summary.
func (r *Report) Finish(summary models.Summary) {
	r.Summary = summary.Clone()
	r.GeneratedAt = time.Now().UTC()
}

func (r *Report) Encode(w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(r); err != nil {
		return fmt.Errorf("unable to encode match report: %w", err)
	}
	return encoder.Close()
}

func (r *Report) WriteFile(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create match report: %w", err)
	}
	if err := r.Encode(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
