// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package tieredmatchmaker

import (
	"errors"
	"fmt"
	"testing"

	. "github.com/onsi/gomega"

	"github.com/AccelByte/extend-tiered-matchmaker/pkg/config"
	"github.com/AccelByte/extend-tiered-matchmaker/pkg/constants"
	"github.com/AccelByte/extend-tiered-matchmaker/pkg/models"
	"github.com/AccelByte/extend-tiered-matchmaker/pkg/testsetup"
)

func TestRun_MatchesProvidedRequests(t *testing.T) {
	g := testsetup.ParallelWithGomega(t)
	provider := testsetup.StubRequestProvider{
		Requests: []models.Request{
			request("A", false, 10, models.MatchTypeShort),
			request("B", false, 20, models.MatchTypeShort),
			request("C", true, 30, models.MatchTypeLong),
		},
		LineErrors: []models.LineError{
			{Line: 4, Text: "R4;P4;true;abc;L", Err: fmt.Errorf("%w: abc", models.ErrInvalidSkill)},
		},
	}
	sink := &testsetup.CollectingSink{}

	summary, err := Run(g.TestScope, New(config.Default(), g.Metrics), provider, sink, g.Metrics)

	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(sink.PlayerPairs()).To(Equal([][2]string{{"A", "B"}}))
	g.Expect(summary.Matches).To(Equal(1))
	g.Expect(summary.Rejected).To(Equal(1))
	g.Expect(summary.StrandedIDs()).To(Equal([]string{"req-C"}))
	g.Expect(g.Metrics.RejectedReasons).To(HaveKeyWithValue(constants.RejectReasonMalformedLine, 1))
}

func TestRun_CountsBucketOverflowAsRejected(t *testing.T) {
	g := testsetup.ParallelWithGomega(t)
	cfg := config.Default()
	cfg.BucketCapacity = 1
	provider := testsetup.StubRequestProvider{
		Requests: []models.Request{
			request("A", false, 10, models.MatchTypeShort),
			request("B", false, 20, models.MatchTypeShort),
		},
	}

	summary, err := Run(g.TestScope, New(cfg, g.Metrics), provider, nil, g.Metrics)

	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(summary.Matches).To(Equal(0))
	g.Expect(summary.Rejected).To(Equal(1))
	g.Expect(summary.StrandedIDs()).To(Equal([]string{"req-A"}))
}

func TestRun_ProviderFailure(t *testing.T) {
	g := testsetup.ParallelWithGomega(t)
	sourceErr := errors.New("disk on fire")

	_, err := Run(g.TestScope, New(config.Default(), g.Metrics), testsetup.StubRequestProvider{Err: sourceErr}, nil, g.Metrics)

	g.Expect(err).To(MatchError(sourceErr))
}
