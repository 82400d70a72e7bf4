// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package models

import (
	"fmt"
	"strings"

	validator "github.com/AccelByte/justice-input-validation-go"
)

// MatchType partitions requests into independent scheduling lanes.
type MatchType string

const (
	MatchTypeLong  MatchType = "LONG"
	MatchTypeShort MatchType = "SHORT"
)

// ParseMatchType accepts L, LONG, S and SHORT in any case.
func ParseMatchType(token string) (MatchType, error) {
	switch strings.ToUpper(strings.TrimSpace(token)) {
	case "L", string(MatchTypeLong):
		return MatchTypeLong, nil
	case "S", string(MatchTypeShort):
		return MatchTypeShort, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMatchType, token)
	}
}

func (m MatchType) Valid() bool {
	return m == MatchTypeLong || m == MatchTypeShort
}

// Request is one player's matchmaking request. It is treated as immutable once created.
type Request struct {
	RequestID  string    `json:"requestID"  yaml:"requestID"  valid:"required,stringlength(1|64)"`
	PlayerID   string    `json:"playerID"   yaml:"playerID"   valid:"required,stringlength(1|64)"`
	Premium    bool      `json:"premium"    yaml:"premium"`
	SkillLevel int       `json:"skillLevel" yaml:"skillLevel" valid:"range(0|2147483647)"`
	MatchType  MatchType `json:"matchType"  yaml:"matchType"  valid:"required,in(LONG|SHORT)"`
}

// Validate checks skill and match type first so they keep their own error codes, then the struct tags.
func (r Request) Validate() error {
	if r.SkillLevel < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeSkill, r.SkillLevel)
	}
	if !r.MatchType.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownMatchType, r.MatchType)
	}
	if _, err := validator.ValidateStruct(r); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidRequest, err.Error())
	}
	return nil
}

func (r Request) String() string {
	return fmt.Sprintf("%s; %s; Premium: %t; Skill: %d; Type: %s", r.RequestID, r.PlayerID, r.Premium, r.SkillLevel, r.MatchType)
}

// BucketKey identifies one of the four request queues.
type BucketKey struct {
	Premium   bool
	MatchType MatchType
}

var (
	PremiumLong     = BucketKey{Premium: true, MatchType: MatchTypeLong}
	PremiumShort    = BucketKey{Premium: true, MatchType: MatchTypeShort}
	NonPremiumLong  = BucketKey{Premium: false, MatchType: MatchTypeLong}
	NonPremiumShort = BucketKey{Premium: false, MatchType: MatchTypeShort}
)

// BucketKeys lists every bucket in the order a cycle visits them.
var BucketKeys = [...]BucketKey{PremiumLong, PremiumShort, NonPremiumLong, NonPremiumShort}

func (k BucketKey) String() string {
	prefix := "non-premium"
	if k.Premium {
		prefix = "premium"
	}
	return prefix + "-" + strings.ToLower(string(k.MatchType))
}
