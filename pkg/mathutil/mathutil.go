// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package mathutil

import "cmp"

// Max returns the larger of x and y.
func Max[T cmp.Ordered](x T, y T) T {
	return max(x, y)
}

// Integer is the set of types CeilDiv and Abs operate on.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// CeilDiv returns x/y rounded up. y must be positive.
func CeilDiv[T Integer](x T, y T) T {
	if x <= 0 {
		return 0
	}
	return (x + y - 1) / y
}

// Abs returns the absolute value of x.
func Abs[T Integer](x T) T {
	if x < 0 {
		return -x
	}
	return x
}
