// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package constants

const (
	DefaultPremiumMatchesPerCycle    = 2
	DefaultNonPremiumMatchesPerCycle = 1

	// PlayersPerMatch is the number of requests paired into one match.
	PlayersPerMatch = 2
)

const (
	DefaultRequestFileName  = "player_requests.csv"
	DefaultFieldSeparator   = ";"
	RequestHeaderMarker     = "requestid"
	RequestFieldCount       = 5
	MaxRequestLineLength    = 4096
	LongMatchDurationLabel  = "30'"
	ShortMatchDurationLabel = "10'"
)

const (
	MakeMatchesFunction = "makeMatches"
	EnqueueFunction     = "enqueue"
	RunCycleFunction    = "runCycle"

	// not matched reason constants.
	ReasonNotEnoughRequests = "not_enough_requests"
	ReasonCancelled         = "cancelled"

	// rejected request reason constants.
	RejectReasonMalformedLine = "malformed_line"
	RejectReasonBucketFull    = "bucket_full"
)
