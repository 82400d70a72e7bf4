// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package testsetup

import (
	"math/rand"
	"sync"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	ulid "github.com/oklog/ulid/v2"

	"github.com/AccelByte/extend-tiered-matchmaker/pkg/models"
)

var (
	timeNow = time.Now()
	entropy = ulid.Monotonic(rand.New(rand.NewSource(timeNow.UnixNano())), 0)

	ulidMutex = sync.Mutex{}
)

// GenerateRequestID returns a monotonic ulid string.
func GenerateRequestID() string {
	ulidMutex.Lock()
	defer ulidMutex.Unlock()
	return ulid.MustNew(ulid.Timestamp(timeNow), entropy).String()
}

// NewRequest builds a request with a generated request id.
func NewRequest(playerID string, premium bool, skill int, matchType models.MatchType) models.Request {
	return models.Request{
		RequestID:  GenerateRequestID(),
		PlayerID:   playerID,
		Premium:    premium,
		SkillLevel: skill,
		MatchType:  matchType,
	}
}

// GenerateRequests returns n random requests; the same seed yields the same players, flags and skills.
func GenerateRequests(seed uint64, n int) []models.Request {
	faker := gofakeit.New(seed)
	requests := make([]models.Request, 0, n)
	for i := 0; i < n; i++ {
		matchType := models.MatchTypeShort
		if faker.Bool() {
			matchType = models.MatchTypeLong
		}
		requests = append(requests, NewRequest(faker.Username(), faker.Bool(), faker.IntRange(0, 100), matchType))
	}
	return requests
}
