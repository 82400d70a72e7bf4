// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package matchmaker provides the core interfaces for classifying matchmaking requests into
// buckets and draining those buckets into matches.
package matchmaker

import (
	"github.com/AccelByte/extend-tiered-matchmaker/pkg/envelope"
	"github.com/AccelByte/extend-tiered-matchmaker/pkg/models"
)

/*
Matchmaker takes Requests and makes Matches. Requests are enqueued first, each one classified into one of
the four buckets; MakeMatches then drains the buckets cycle by cycle and hands every Match to the sink as
soon as it is created. MakeMatches runs synchronously and returns once no bucket can yield a pair, or once
scope.Ctx is cancelled. A pair is either popped completely or not at all.
*/
type Matchmaker interface {
	// Enqueue classifies the request and appends it to its bucket.
	// Returns models.ErrBucketFull when the bucket is at capacity.
	Enqueue(scope *envelope.Scope, request models.Request) error

	// MakeMatches runs cycles until no bucket holds two requests.
	MakeMatches(scope *envelope.Scope, sink MatchSink) models.Summary

	// Pending returns the number of queued requests per bucket.
	Pending() map[models.BucketKey]int
}

// Bucket is an ordered container of pending requests.
type Bucket interface {
	Key() models.BucketKey

	// Push adds a request. It never fails.
	Push(request models.Request)

	// PopPair removes and returns the next two requests. When fewer than two are queued it returns
	// false and leaves the bucket untouched.
	PopPair() (models.Request, models.Request, bool)

	Size() int

	// Drain removes every remaining request, in the order they would have been popped.
	Drain() []models.Request
}

// RequestProvider supplies the batch of requests for a run. Lines that cannot be parsed are returned
// as LineErrors and do not stop the batch; error is reserved for failures reading the source itself.
type RequestProvider interface {
	GetRequests(scope *envelope.Scope) ([]models.Request, []models.LineError, error)
}

// MatchSink consumes matches in emission order.
type MatchSink interface {
	OnMatch(scope *envelope.Scope, match models.Match)
}

// MatchSinkFunc adapts a function to MatchSink.
type MatchSinkFunc func(scope *envelope.Scope, match models.Match)

func (f MatchSinkFunc) OnMatch(scope *envelope.Scope, match models.Match) {
	f(scope, match)
}
