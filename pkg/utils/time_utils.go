package utils

import "time"

// Unix seconds are the storage unit for all model timestamps.
func NowUnixSeconds() int64 { return time.Now().Unix() }

func FromUnixSeconds(t int64) time.Time {
	if t <= 0 {
		return time.Time{}
	}
	return time.Unix(t, 0).UTC()
}

func FormatRFC3339(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
