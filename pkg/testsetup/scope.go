// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package testsetup

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/AccelByte/extend-tiered-matchmaker/pkg/envelope"
)

// NewTestScope creates a new scope for test use
func NewTestScope() *envelope.Scope {
	return NewTestScopeWithContext(context.Background())
}

// NewTestScopeWithContext creates a test scope carrying ctx, with log output discarded.
func NewTestScopeWithContext(ctx context.Context) *envelope.Scope {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewTestScopeWithLogger(logger).WithContext(ctx)
}

// NewTestScopeWithLogger creates a new scope using the given logger for test use
func NewTestScopeWithLogger(logger *logrus.Logger) *envelope.Scope {
	scope := envelope.NewRootScope(context.Background(), "test", "")
	scope.SetLogger(logger)
	return scope
}

// NewCancelledTestScope returns a scope whose context is already cancelled.
func NewCancelledTestScope() *envelope.Scope {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	return NewTestScopeWithContext(ctx)
}
