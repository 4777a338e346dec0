package response_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"shareit/pkg/response"
)

func TestDateTimeMarshalJSON(t *testing.T) {
	// Marshaling renders Local() time, so only check shape, not the exact
	// value, to keep the test independent of the runner's timezone.
	tm := time.Date(2026, 9, 1, 15, 30, 0, 0, time.UTC)

	b, err := json.Marshal(response.DateTime(tm))
	if err != nil {
		t.Fatalf("unexpected error marshaling DateTime: %v", err)
	}
	str := string(b)
	if !strings.HasPrefix(str, `"`) || !strings.HasSuffix(str, `"`) {
		t.Errorf("expected string JSON format, got %s", str)
	}
	if len(str) < 15 {
		t.Errorf("marshaled string too short: %s", str)
	}
}
