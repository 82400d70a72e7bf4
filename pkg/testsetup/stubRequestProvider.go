// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package testsetup

import (
	"github.com/AccelByte/extend-tiered-matchmaker/pkg/envelope"
	"github.com/AccelByte/extend-tiered-matchmaker/pkg/models"
)

type StubRequestProvider struct {
	Requests   []models.Request
	LineErrors []models.LineError
	Err        error
}

func (s StubRequestProvider) GetRequests(scope *envelope.Scope) ([]models.Request, []models.LineError, error) {
	if s.Err != nil {
		return nil, nil, s.Err
	}
	return s.Requests, s.LineErrors, nil
}

// CollectingSink records matches in emission order.
type CollectingSink struct {
	Matches []models.Match
}

func (c *CollectingSink) OnMatch(scope *envelope.Scope, match models.Match) {
	c.Matches = append(c.Matches, match)
}

// PlayerPairs returns the matched player ids as [playerA, playerB] pairs.
func (c *CollectingSink) PlayerPairs() [][2]string {
	pairs := make([][2]string, 0, len(c.Matches))
	for _, match := range c.Matches {
		pairs = append(pairs, [2]string{match.PlayerA.PlayerID, match.PlayerB.PlayerID})
	}
	return pairs
}
