// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package tieredmatchmaker implements the Matchmaker interface with four request buckets
// (premium/non-premium x long/short) drained in fixed-quota cycles.
package tieredmatchmaker

import (
	"fmt"
	"time"

	"github.com/elliotchance/pie/v2"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/AccelByte/extend-tiered-matchmaker/pkg/config"
	"github.com/AccelByte/extend-tiered-matchmaker/pkg/constants"
	"github.com/AccelByte/extend-tiered-matchmaker/pkg/envelope"
	"github.com/AccelByte/extend-tiered-matchmaker/pkg/matchmaker"
	"github.com/AccelByte/extend-tiered-matchmaker/pkg/mathutil"
	"github.com/AccelByte/extend-tiered-matchmaker/pkg/metrics"
	"github.com/AccelByte/extend-tiered-matchmaker/pkg/models"
)

// tieredMatchMaker owns one bucket per models.BucketKeys entry, in the same order.
type tieredMatchMaker struct {
	cfg      *config.Config
	metrics  metrics.MatchmakingMetrics
	buckets  [len(models.BucketKeys)]matchmaker.Bucket
	rejected int
}

// New returns a tieredMatchMaker with four empty buckets.
func New(cfg *config.Config, mmMetrics metrics.MatchmakingMetrics) matchmaker.Matchmaker {
	mm := &tieredMatchMaker{
		cfg:     cfg,
		metrics: mmMetrics,
	}
	for i, key := range models.BucketKeys {
		mm.buckets[i] = NewBucket(key)
	}
	return mm
}

func (b *tieredMatchMaker) bucket(key models.BucketKey) matchmaker.Bucket {
	return b.buckets[bucketIndex(key)]
}

// quota returns how many pairs a bucket may yield in one cycle, at least one.
func (b *tieredMatchMaker) quota(key models.BucketKey) int {
	if key.Premium {
		return mathutil.Max(1, b.cfg.PremiumMatchesPerCycle)
	}
	return mathutil.Max(1, b.cfg.NonPremiumMatchesPerCycle)
}

func (b *tieredMatchMaker) Enqueue(scope *envelope.Scope, request models.Request) error {
	key := Classify(request)
	bucket := b.bucket(key)

	if b.cfg.BucketCapacity > 0 && bucket.Size() >= b.cfg.BucketCapacity {
		b.rejected++
		b.metrics.AddRejectedRequest(constants.RejectReasonBucketFull)
		return fmt.Errorf("%w: %s already holds %d requests", models.ErrBucketFull, key, bucket.Size())
	}

	bucket.Push(request)
	b.metrics.SetBucketQueueSize(key.String(), bucket.Size())
	scope.Log.WithFields(logrus.Fields{
		"requestID": request.RequestID,
		"bucket":    key.String(),
	}).Debug("request enqueued")

	return nil
}

func (b *tieredMatchMaker) Pending() map[models.BucketKey]int {
	pending := make(map[models.BucketKey]int, len(b.buckets))
	for _, bucket := range b.buckets {
		pending[bucket.Key()] = bucket.Size()
	}
	return pending
}

func (b *tieredMatchMaker) MakeMatches(rootScope *envelope.Scope, sink matchmaker.MatchSink) models.Summary {
	scope := rootScope.NewChildScope("tieredMatchMaker.MakeMatches")
	defer scope.Finish()

	startTime := time.Now()
	defer func() {
		b.metrics.AddSchedulerElapsedTimeMs(constants.MakeMatchesFunction, time.Since(startTime))
	}()

	if sink == nil {
		sink = matchmaker.MatchSinkFunc(func(*envelope.Scope, models.Match) {})
	}

	summary := models.NewSummary()
	summary.Rejected = b.rejected

	expectedCycles := b.cycleBound()
	scope.SetAttributes("matchmaker.expected_cycles", expectedCycles)
	scope.Log.WithField("expectedCycles", expectedCycles).Debug("start making matches")

	var matches []models.Match
	for b.canMakeAnyMatch() {
		cycle := summary.Cycles + 1
		created, cancelled := b.runCycle(scope, cycle, func(match models.Match) {
			matches = append(matches, match)
			summary.MatchesPerBucket[match.Key().String()]++
			b.metrics.AddMatchCreated(match.Key().String())
			sink.OnMatch(scope, match)
		})
		if created > 0 {
			summary.Cycles = cycle
			b.metrics.AddCycle()
		}
		if cancelled {
			summary.Cancelled = true
			scope.Log.WithField("cycle", cycle).Warn("making matches cancelled")
			break
		}
	}

	summary.Matches = len(matches)
	summary.SetSkillGaps(matches)
	if summary.Cancelled {
		b.countCancelled()
	} else {
		summary.Stranded = b.strandLeftovers(scope)
	}

	for _, bucket := range b.buckets {
		b.metrics.SetBucketQueueSize(bucket.Key().String(), bucket.Size())
	}

	scope.Log.WithFields(logrus.Fields{
		"cycles":   summary.Cycles,
		"matches":  summary.Matches,
		"stranded": summary.StrandedIDs(),
	}).Info("making matches finished")

	return summary
}

// runCycle visits every bucket once in models.BucketKeys order, popping up to its quota of pairs.
// Cancellation is checked before each pop so a pair is never split.
func (b *tieredMatchMaker) runCycle(rootScope *envelope.Scope, cycle int, emit func(models.Match)) (created int, cancelled bool) {
	scope := rootScope.NewChildScope("tieredMatchMaker.runCycle")
	defer scope.Finish()
	scope.SetAttributes(envelope.CycleTag, cycle)

	startTime := time.Now()
	defer func() {
		b.metrics.AddSchedulerElapsedTimeMs(constants.RunCycleFunction, time.Since(startTime))
	}()

	for _, bucket := range b.buckets {
		for i := 0; i < b.quota(bucket.Key()); i++ {
			if scope.Done() {
				return created, true
			}
			playerA, playerB, ok := bucket.PopPair()
			if !ok {
				break
			}
			created++
			emit(models.NewMatch(bucket.Key(), playerA, playerB, cycle))
		}
	}

	scope.SetAttributes("matchmaker.matches_created", created)
	return created, false
}

func (b *tieredMatchMaker) canMakeAnyMatch() bool {
	for _, bucket := range b.buckets {
		if bucket.Size() >= constants.PlayersPerMatch {
			return true
		}
	}
	return false
}

// cycleBound is the number of cycles the current bucket contents need: the slowest bucket decides.
func (b *tieredMatchMaker) cycleBound() int {
	bound := 0
	for _, bucket := range b.buckets {
		pairs := bucket.Size() / constants.PlayersPerMatch
		bound = mathutil.Max(bound, mathutil.CeilDiv(pairs, b.quota(bucket.Key())))
	}
	return bound
}

// countCancelled records the requests a cancelled run left queued. They stay in their buckets.
func (b *tieredMatchMaker) countCancelled() {
	for _, bucket := range b.buckets {
		for i := 0; i < bucket.Size(); i++ {
			b.metrics.AddUnmatchedReason(bucket.Key().String(), constants.ReasonCancelled)
		}
	}
}

// strandLeftovers drops whatever could not be paired. Leftovers are not carried over to another run.
func (b *tieredMatchMaker) strandLeftovers(scope *envelope.Scope) []models.Request {
	var stranded []models.Request
	for _, bucket := range b.buckets {
		leftovers := bucket.Drain()
		if len(leftovers) == 0 {
			continue
		}
		for range leftovers {
			b.metrics.AddUnmatchedReason(bucket.Key().String(), constants.ReasonNotEnoughRequests)
		}
		scope.AddEvent("requests stranded",
			attribute.String(envelope.BucketTag, bucket.Key().String()),
			attribute.Int("count", len(leftovers)))
		scope.Log.WithFields(logrus.Fields{
			"bucket":     bucket.Key().String(),
			"requestIDs": pie.Map(leftovers, func(r models.Request) string { return r.RequestID }),
		}).Info("requests left unmatched")
		stranded = append(stranded, leftovers...)
	}
	return stranded
}
