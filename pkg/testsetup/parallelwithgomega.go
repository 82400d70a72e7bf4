// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package testsetup

import (
	"testing"

	"github.com/onsi/gomega"

	"github.com/AccelByte/extend-tiered-matchmaker/pkg/envelope"
)

// GomegaWithScope bundles a gomega instance with a quiet test scope and stub metrics.
type GomegaWithScope struct {
	TestScope *envelope.Scope
	Metrics   *StubMetrics
	*gomega.GomegaWithT
}

func ParallelWithGomega(t *testing.T) GomegaWithScope {
	t.Parallel()
	return WithGomega(t)
}

func WithGomega(t *testing.T) GomegaWithScope {
	return GomegaWithScope{
		TestScope:   NewTestScope(),
		Metrics:     NewStubMetrics(),
		GomegaWithT: gomega.NewGomegaWithT(t),
	}
}
