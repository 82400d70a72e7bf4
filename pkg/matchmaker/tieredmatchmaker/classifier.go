// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package tieredmatchmaker

import (
	"github.com/AccelByte/extend-tiered-matchmaker/pkg/models"
)

// Classify maps a request to the bucket it queues in. Any match type other than LONG lands in the
// short lane so the mapping stays total.
func Classify(request models.Request) models.BucketKey {
	matchType := models.MatchTypeShort
	if request.MatchType == models.MatchTypeLong {
		matchType = models.MatchTypeLong
	}
	return models.BucketKey{Premium: request.Premium, MatchType: matchType}
}

// bucketIndex returns the position of key in models.BucketKeys.
func bucketIndex(key models.BucketKey) int {
	index := 0
	if !key.Premium {
		index += 2
	}
	if key.MatchType != models.MatchTypeLong {
		index++
	}
	return index
}
