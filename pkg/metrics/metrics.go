// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type MatchmakingMetrics interface {
	SetBucketQueueSize(bucket string, size int)
	AddMatchCreated(bucket string)
	AddSchedulerElapsedTimeMs(function string, elapsedTime time.Duration)
	AddUnmatchedReason(bucket string, reason string)
	AddRejectedRequest(reason string)
	AddCycle()
}

func NewMetrics(registry *prometheus.Registry) MatchmakingMetrics {
	return setupPrometheusMetrics(registry)
}

// WriteToTextfile writes the registry content in the prometheus text format, for node exporter
// textfile collection of batch runs.
func WriteToTextfile(registry *prometheus.Registry, filename string) error {
	return prometheus.WriteToTextfile(filename, registry)
}
