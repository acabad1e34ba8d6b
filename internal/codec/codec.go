package codec

import (
	"strconv"
	"strings"
	"time"
)

// now stamps records whose stored timestamp cannot be parsed.
var now = time.Now

// DecodeLines decodes every line with decode, keeping only successful results.
func DecodeLines[T any](lines []string, decode func(string) (T, bool)) []T {
	out := make([]T, 0, len(lines))
	for _, line := range lines {
		if v, ok := decode(line); ok {
			out = append(out, v)
		}
	}
	return out
}

// EncodeLines encodes each record as one line.
func EncodeLines[T any](items []T, encode func(T) string) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = encode(it)
	}
	return out
}

func formatMillis(t time.Time) string {
	return strconv.FormatInt(t.UnixMilli(), 10)
}

func parseMillis(s string) (time.Time, bool) {
	ms, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return time.Time{}, false
	}
	return time.UnixMilli(ms), true
}

func millisOrNow(s string) time.Time {
	if t, ok := parseMillis(s); ok {
		return t
	}
	return time.UnixMilli(now().UnixMilli())
}

func intOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
