// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package sink

import (
	"github.com/AccelByte/extend-tiered-matchmaker/pkg/envelope"
	"github.com/AccelByte/extend-tiered-matchmaker/pkg/matchmaker"
	"github.com/AccelByte/extend-tiered-matchmaker/pkg/models"
)

// Multi hands every match to each sink, in order.
type Multi []matchmaker.MatchSink

func (m Multi) OnMatch(scope *envelope.Scope, match models.Match) {
	for _, s := range m {
		s.OnMatch(scope, match)
	}
}
