// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type prometheusMetrics struct {
	bucketQueueSize  prometheus.GaugeVec
	matchesCreated   prometheus.CounterVec
	schedulerElapsed prometheus.HistogramVec
	unmatchedReasons prometheus.CounterVec
	rejectedRequests prometheus.CounterVec
	cyclesCompleted  prometheus.Counter
}

func setupPrometheusMetrics(registry *prometheus.Registry) prometheusMetrics {
	factory := promauto.With(registry)

	bucketQueueSize := factory.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "ab_tiered_mm_bucket_queue_size",
			Help: "Number of pending requests per bucket",
		}, []string{"bucket"})

	matchesCreated := factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ab_tiered_mm_matches_created_total",
			Help: "Number of matches created per bucket",
		}, []string{"bucket"})

	//nolint:promlinter
	schedulerElapsed := factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ab_tiered_mm_scheduler_elapsed_time_ms",
			Help:    "A histogram of scheduler functions elapsed time in milliseconds",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		}, []string{"function"})

	//nolint:promlinter
	unmatchedReasons := factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ab_tiered_mm_unmatched_reasons",
			Help: "Number of requests left unmatched per bucket and reason",
		}, []string{"bucket", "reason"})

	rejectedRequests := factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ab_tiered_mm_rejected_requests_total",
			Help: "Number of requests rejected before reaching a bucket",
		}, []string{"reason"})

	cyclesCompleted := factory.NewCounter(
		prometheus.CounterOpts{
			Name: "ab_tiered_mm_cycles_total",
			Help: "Number of scheduler cycles run",
		})

	return prometheusMetrics{
		bucketQueueSize:  *bucketQueueSize,
		matchesCreated:   *matchesCreated,
		schedulerElapsed: *schedulerElapsed,
		unmatchedReasons: *unmatchedReasons,
		rejectedRequests: *rejectedRequests,
		cyclesCompleted:  cyclesCompleted,
	}
}

func (metrics prometheusMetrics) SetBucketQueueSize(bucket string, size int) {
	metrics.bucketQueueSize.With(prometheus.Labels{"bucket": bucket}).Set(float64(size))
}

func (metrics prometheusMetrics) AddMatchCreated(bucket string) {
	metrics.matchesCreated.With(prometheus.Labels{"bucket": bucket}).Inc()
}

func (metrics prometheusMetrics) AddSchedulerElapsedTimeMs(function string, elapsedTime time.Duration) {
	metrics.schedulerElapsed.With(prometheus.Labels{"function": function}).Observe(float64(elapsedTime.Milliseconds()))
}

func (metrics prometheusMetrics) AddUnmatchedReason(bucket string, reason string) {
	metrics.unmatchedReasons.With(prometheus.Labels{"bucket": bucket, "reason": reason}).Inc()
}

func (metrics prometheusMetrics) AddRejectedRequest(reason string) {
	metrics.rejectedRequests.With(prometheus.Labels{"reason": reason}).Inc()
}

func (metrics prometheusMetrics) AddCycle() {
	metrics.cyclesCompleted.Inc()
}
