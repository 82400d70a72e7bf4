// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package tieredmatchmaker

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/AccelByte/extend-tiered-matchmaker/pkg/constants"
	"github.com/AccelByte/extend-tiered-matchmaker/pkg/envelope"
	"github.com/AccelByte/extend-tiered-matchmaker/pkg/matchmaker"
	"github.com/AccelByte/extend-tiered-matchmaker/pkg/metrics"
	"github.com/AccelByte/extend-tiered-matchmaker/pkg/models"
)

// Run reads the whole batch from provider, enqueues every request and makes matches into sink.
// Malformed lines and requests refused by a full bucket are logged and counted, never fatal.
func Run(rootScope *envelope.Scope, mm matchmaker.Matchmaker, provider matchmaker.RequestProvider, sink matchmaker.MatchSink, mmMetrics metrics.MatchmakingMetrics) (models.Summary, error) {
	scope := rootScope.NewChildScope("tieredMatchMaker.Run")
	defer scope.Finish()

	requests, lineErrors, err := provider.GetRequests(scope)
	if err != nil {
		return models.Summary{}, fmt.Errorf("unable to get requests: %w", err)
	}

	for _, lineError := range lineErrors {
		mmMetrics.AddRejectedRequest(constants.RejectReasonMalformedLine)
		scope.Log.WithFields(logrus.Fields{
			"line": lineError.Line,
			"text": lineError.Text,
			"code": models.ValidationErrorCode(lineError.Err),
		}).Warnf("invalid request line: %v", lineError.Err)
	}

	startTime := time.Now()
	for _, request := range requests {
		if err := mm.Enqueue(scope, request); err != nil {
			scope.Log.WithFields(logrus.Fields{
				"requestID": request.RequestID,
				"code":      models.ValidationErrorCode(err),
			}).Warnf("request rejected: %v", err)
		}
	}
	mmMetrics.AddSchedulerElapsedTimeMs(constants.EnqueueFunction, time.Since(startTime))

	scope.Log.WithFields(logrus.Fields{
		"requests": len(requests),
		"rejected": len(lineErrors),
	}).Info("requests loaded")

	summary := mm.MakeMatches(scope, sink)
	summary.Rejected += len(lineErrors)

	return summary, nil
}
