// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package models

import (
	"github.com/AccelByte/extend-tiered-matchmaker/pkg/mathutil"
)

// Match pairs two requests dequeued from the same bucket.
type Match struct {
	Premium   bool      `json:"premium"   yaml:"premium"`
	MatchType MatchType `json:"matchType" yaml:"matchType"`
	PlayerA   Request   `json:"playerA"   yaml:"playerA"`
	PlayerB   Request   `json:"playerB"   yaml:"playerB"`
	Cycle     int       `json:"cycle"     yaml:"cycle"` // 1-based cycle that produced the match
}

func NewMatch(key BucketKey, a, b Request, cycle int) Match {
	return Match{
		Premium:   key.Premium,
		MatchType: key.MatchType,
		PlayerA:   a,
		PlayerB:   b,
		Cycle:     cycle,
	}
}

func (m Match) Key() BucketKey {
	return BucketKey{Premium: m.Premium, MatchType: m.MatchType}
}

// SkillGap is the absolute skill difference between both players.
func (m Match) SkillGap() int {
	return mathutil.Abs(m.PlayerA.SkillLevel - m.PlayerB.SkillLevel)
}
