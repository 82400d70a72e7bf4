// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package models

import (
	"github.com/elliotchance/pie/v2"
	"github.com/mitchellh/copystructure"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat"
)

// Summary describes the outcome of one matchmaking run.
type Summary struct {
	Cycles           int            `json:"cycles"           yaml:"cycles"`
	Matches          int            `json:"matches"          yaml:"matches"`
	MatchesPerBucket map[string]int `json:"matchesPerBucket" yaml:"matchesPerBucket"`
	Stranded         []Request      `json:"stranded"         yaml:"stranded"`
	Rejected         int            `json:"rejected"         yaml:"rejected"`
	SkillGapMean     float64        `json:"skillGapMean"     yaml:"skillGapMean"`
	SkillGapStdDev   float64        `json:"skillGapStdDev"   yaml:"skillGapStdDev"`
	Cancelled        bool           `json:"cancelled"        yaml:"cancelled"`
}

func NewSummary() Summary {
	matchesPerBucket := make(map[string]int, len(BucketKeys))
	for _, key := range BucketKeys {
		matchesPerBucket[key.String()] = 0
	}
	return Summary{MatchesPerBucket: matchesPerBucket}
}

// SetSkillGaps computes the skill gap statistics of the given matches.
func (s *Summary) SetSkillGaps(matches []Match) {
	s.SkillGapMean, s.SkillGapStdDev = 0, 0
	if len(matches) == 0 {
		return
	}
	gaps := pie.Map(matches, func(m Match) float64 { return float64(m.SkillGap()) })
	if len(gaps) == 1 {
		s.SkillGapMean = gaps[0]
		return
	}
	s.SkillGapMean, s.SkillGapStdDev = stat.MeanStdDev(gaps, nil)
}

// StrandedIDs returns the request ids left unmatched.
func (s Summary) StrandedIDs() []string {
	return pie.Map(s.Stranded, func(r Request) string { return r.RequestID })
}

func (s Summary) Clone() Summary {
	copied, err := copystructure.Copy(s)
	if err != nil {
		logrus.Errorf("unable to copy summary: %v", err)
		return s
	}
	return copied.(Summary)
}
