package domain

import (
	"strings"
	"time"
)

// ReadinessTier classifies whether an idea should proceed to paid-ad
// validation.
type ReadinessTier string

const (
	TierBlocked ReadinessTier = "BLOCKED"
	TierCaution ReadinessTier = "CAUTION"
	TierReady   ReadinessTier = "READY"
)

// DateRange is an opaque enumerated insights window shared by both backends.
type DateRange string

const (
	RangeYesterday  DateRange = "YESTERDAY"
	RangeLast7Days  DateRange = "LAST_7_DAYS"
	RangeLast14Days DateRange = "LAST_14_DAYS"
	RangeLast30Days DateRange = "LAST_30_DAYS"
	RangeThisMonth  DateRange = "THIS_MONTH"
)

// ParseDateRange rejects unknown tokens instead of defaulting them.
func ParseDateRange(s string) (DateRange, error) {
	r := DateRange(strings.ToUpper(strings.TrimSpace(s)))
	switch r {
	case RangeYesterday, RangeLast7Days, RangeLast14Days, RangeLast30Days, RangeThisMonth:
		return r, nil
	}
	return "", NewValidationError("insights", "unknown date range "+strings.TrimSpace(s))
}

// Window returns the UTC day-aligned interval [from, to) covered by r at now.
// Like the ad platform, the LAST_N_DAYS ranges exclude today.
func (r DateRange) Window(now time.Time) (from, to time.Time) {
	now = now.UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	switch r {
	case RangeYesterday:
		return today.AddDate(0, 0, -1), today
	case RangeLast14Days:
		return today.AddDate(0, 0, -14), today
	case RangeLast30Days:
		return today.AddDate(0, 0, -30), today
	case RangeThisMonth:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC), today.AddDate(0, 0, 1)
	default:
		return today.AddDate(0, 0, -7), today
	}
}
