// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package testsetup

import (
	"sync"
	"time"

	"github.com/AccelByte/extend-tiered-matchmaker/pkg/metrics"
)

// StubMetrics counts calls so tests can assert on what the matchmaker reported.
type StubMetrics struct {
	mu               sync.Mutex
	QueueSizes       map[string]int
	MatchesCreated   map[string]int
	UnmatchedReasons map[string]int
	RejectedReasons  map[string]int
	Cycles           int
}

func (s *StubMetrics) SetBucketQueueSize(bucket string, size int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.QueueSizes[bucket] = size
}

func (s *StubMetrics) AddMatchCreated(bucket string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.MatchesCreated[bucket]++
}

func (s *StubMetrics) AddSchedulerElapsedTimeMs(function string, elapsedTime time.Duration) {
}

func (s *StubMetrics) AddUnmatchedReason(bucket string, reason string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.UnmatchedReasons[bucket+"/"+reason]++
}

func (s *StubMetrics) AddRejectedRequest(reason string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.RejectedReasons[reason]++
}

func (s *StubMetrics) AddCycle() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Cycles++
}

func NewStubMetrics() *StubMetrics {
	return &StubMetrics{
		QueueSizes:       map[string]int{},
		MatchesCreated:   map[string]int{},
		UnmatchedReasons: map[string]int{},
		RejectedReasons:  map[string]int{},
	}
}

func NewMetrics() metrics.MatchmakingMetrics {
	return NewStubMetrics()
}
