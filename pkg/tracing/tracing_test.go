// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package tracing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"

	"github.com/AccelByte/extend-tiered-matchmaker/pkg/envelope"
)

func TestSetup_Disabled(t *testing.T) {
	shutdown, err := Setup("", "tiered-matchmaker")
	require.NoError(t, err)

	assert.NoError(t, shutdown(context.Background()))
}

func TestSetup_ZipkinProvider(t *testing.T) {
	previous := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(previous) })

	shutdown, err := Setup("http://localhost:9411/api/v2/spans", "tiered-matchmaker")
	require.NoError(t, err)

	scope := envelope.NewRootScope(context.Background(), "test", "")
	child := scope.NewChildScope("child")

	assert.Len(t, scope.TraceID, 32)
	assert.Equal(t, scope.TraceID, child.TraceID)
	assert.Contains(t, otel.GetTextMapPropagator().Fields(), "x-b3-traceid")

	child.Finish()
	scope.Finish()
	// the collector is not running; shutdown may report the failed export
	_ = shutdown(context.Background())
}
