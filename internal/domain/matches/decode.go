package matches

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/preston-bernstein/league-standings-service/internal/timeutil"
)

var jsonNull = []byte("null")

func decodeScore(raw json.RawMessage) int {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, jsonNull) {
		return 0
	}

	var num float64
	if err := json.Unmarshal(raw, &num); err == nil {
		return clampScore(num)
	}

	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		if parsed, err := strconv.ParseFloat(strings.TrimSpace(text), 64); err == nil {
			return clampScore(parsed)
		}
	}
	return 0
}

func clampScore(v float64) int {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(v)
}

func decodeDate(raw json.RawMessage) time.Time {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, jsonNull) {
		return time.Time{}
	}

	var ms int64
	if err := json.Unmarshal(raw, &ms); err == nil {
		return timeutil.FromUnixMilli(ms)
	}

	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		if parsed, err := timeutil.ParseTimestamp(text); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
