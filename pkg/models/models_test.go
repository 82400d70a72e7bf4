// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package models

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMatchType(t *testing.T) {
	tests := []struct {
		token   string
		want    MatchType
		wantErr bool
	}{
		{token: "L", want: MatchTypeLong},
		{token: " l ", want: MatchTypeLong},
		{token: "long", want: MatchTypeLong},
		{token: "S", want: MatchTypeShort},
		{token: "Short", want: MatchTypeShort},
		{token: "X", wantErr: true},
		{token: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := ParseMatchType(tt.token)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownMatchType)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRequest_Validate(t *testing.T) {
	valid := Request{RequestID: "R1", PlayerID: "P1", Premium: true, SkillLevel: 10, MatchType: MatchTypeLong}
	assert.NoError(t, valid.Validate())

	zeroSkill := valid
	zeroSkill.SkillLevel = 0
	assert.NoError(t, zeroSkill.Validate())

	tests := []struct {
		name   string
		mutate func(r *Request)
		want   error
	}{
		{name: "empty request id", mutate: func(r *Request) { r.RequestID = "" }, want: ErrInvalidRequest},
		{name: "empty player id", mutate: func(r *Request) { r.PlayerID = "" }, want: ErrInvalidRequest},
		{name: "negative skill", mutate: func(r *Request) { r.SkillLevel = -1 }, want: ErrNegativeSkill},
		{name: "unknown match type", mutate: func(r *Request) { r.MatchType = "MEDIUM" }, want: ErrUnknownMatchType},
		{name: "empty match type", mutate: func(r *Request) { r.MatchType = "" }, want: ErrUnknownMatchType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid
			tt.mutate(&r)
			err := r.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, ValidationErrorCode(tt.want), ValidationErrorCode(err))
		})
	}
}

func TestBucketKey_String(t *testing.T) {
	assert.Equal(t, "premium-long", PremiumLong.String())
	assert.Equal(t, "premium-short", PremiumShort.String())
	assert.Equal(t, "non-premium-long", NonPremiumLong.String())
	assert.Equal(t, "non-premium-short", NonPremiumShort.String())
	assert.Equal(t, [...]BucketKey{PremiumLong, PremiumShort, NonPremiumLong, NonPremiumShort}, BucketKeys)
}

func TestMatch(t *testing.T) {
	a := Request{RequestID: "R1", PlayerID: "P1", SkillLevel: 80, MatchType: MatchTypeShort}
	b := Request{RequestID: "R2", PlayerID: "P2", SkillLevel: 95, MatchType: MatchTypeShort}

	m := NewMatch(NonPremiumShort, a, b, 4)

	assert.Equal(t, NonPremiumShort, m.Key())
	assert.Equal(t, 15, m.SkillGap())
	assert.Equal(t, 4, m.Cycle)
	assert.False(t, m.Premium)
}

func TestSummary_SkillGapsAndClone(t *testing.T) {
	summary := NewSummary()
	summary.SetSkillGaps(nil)
	assert.Zero(t, summary.SkillGapMean)

	req := func(id string, skill int) Request {
		return Request{RequestID: id, PlayerID: id, SkillLevel: skill, MatchType: MatchTypeLong}
	}
	summary.SetSkillGaps([]Match{NewMatch(PremiumLong, req("a", 10), req("b", 20), 1)})
	assert.Equal(t, 10.0, summary.SkillGapMean)
	assert.Zero(t, summary.SkillGapStdDev)

	summary.SetSkillGaps([]Match{
		NewMatch(PremiumLong, req("a", 10), req("b", 20), 1),
		NewMatch(PremiumLong, req("c", 10), req("d", 40), 1),
	})
	assert.Equal(t, 20.0, summary.SkillGapMean)
	assert.InDelta(t, 14.142, summary.SkillGapStdDev, 0.001)

	summary.MatchesPerBucket[PremiumLong.String()] = 2
	summary.Stranded = []Request{req("e", 1)}
	clone := summary.Clone()
	clone.MatchesPerBucket[PremiumLong.String()] = 99
	clone.Stranded[0].RequestID = "changed"

	assert.Equal(t, 2, summary.MatchesPerBucket[PremiumLong.String()])
	assert.Equal(t, []string{"e"}, summary.StrandedIDs())
}

func TestValidationErrorCode(t *testing.T) {
	assert.Equal(t, 510205, ValidationErrorCode(fmt.Errorf("line 3: %w", ErrUnknownMatchType)))
	assert.Equal(t, 510207, ValidationErrorCode(ErrBucketFull))
	assert.Equal(t, 20002, ValidationErrorCode(errors.New("other")))
}
