// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package idiotic

import (
	"slices"
	"strings"
)

// Bounds of effect intensity parameters (brightness, darkness, threshold).
const (
	MinIntensity = 0
	MaxIntensity = 255
)

// ValidateBounded returns an [InvalidParameterError] wrapping [ErrOutOfRange]
// iff v is outside [MinIntensity, MaxIntensity].
func ValidateBounded(param string, v int) error {
	if v < MinIntensity || v > MaxIntensity {
		return &InvalidParameterError{Param: param, Value: v, Err: ErrOutOfRange}
	}
	return nil
}

// NormalizeEnum matches v against allowed case-insensitively and returns the
// lowercased value. Values outside the set yield an [InvalidParameterError]
// wrapping [ErrValueNotAllowed].
func NormalizeEnum(param, v string, allowed []string) (string, error) {
	lower := strings.ToLower(strings.TrimSpace(v))
	if slices.Contains(allowed, lower) {
		return lower, nil
	}
	return "", &InvalidParameterError{Param: param, Value: v, Err: ErrValueNotAllowed}
}

// asInt accepts any Go integer type. Values wider than int on the current
// platform are clamped just outside the bounded range, so they still fail
// ValidateBounded instead of wrapping into it.
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return clampSigned(n), true
	case uint:
		return clampUnsigned(uint64(n)), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return clampUnsigned(uint64(n)), true
	case uint64:
		return clampUnsigned(n), true
	default:
		return 0, false
	}
}

func clampSigned(n int64) int {
	switch {
	case n < MinIntensity:
		return MinIntensity - 1
	case n > MaxIntensity:
		return MaxIntensity + 1
	default:
		return int(n)
	}
}

func clampUnsigned(n uint64) int {
	if n > MaxIntensity {
		return MaxIntensity + 1
	}
	return int(n)
}
