// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package models

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedLine     = errors.New("malformed line")
	ErrInvalidFieldCount = errors.New("invalid field count")
	ErrInvalidPremium    = errors.New("premium flag is not a boolean")
	ErrInvalidSkill      = errors.New("skill level is not an integer")
	ErrNegativeSkill     = errors.New("skill level must not be negative")
	ErrUnknownMatchType  = errors.New("unknown match type")
	ErrInvalidRequest    = errors.New("invalid request")
	ErrBucketFull        = errors.New("bucket is full")
	ErrLineTooLong       = errors.New("line too long")
)

var validationErrorCodeMap = map[error]int{
	ErrMalformedLine:     510200,
	ErrInvalidFieldCount: 510201,
	ErrInvalidPremium:    510202,
	ErrInvalidSkill:      510203,
	ErrNegativeSkill:     510204,
	ErrUnknownMatchType:  510205,
	ErrInvalidRequest:    510206,
	ErrBucketFull:        510207,
	ErrLineTooLong:       510208,
}

// ValidationErrorCode returns a code for the error, unwrapping it until a registered sentinel is found.
// It returns 20002 if no sentinel in the chain is registered.
func ValidationErrorCode(err error) int {
	for sentinel, code := range validationErrorCodeMap {
		if errors.Is(err, sentinel) {
			return code
		}
	}
	return 20002
}

// LineError reports one request source line that could not be turned into a Request.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e LineError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e LineError) Unwrap() error {
	return e.Err
}
