package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"missionmind/pkg/response"
)

func TestDateMarshalJSON(t *testing.T) {
	d := response.NewDate(time.Date(2025, 7, 14, 16, 45, 3, 0, time.UTC))

	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}
	if string(b) != `"2025-07-14"` {
		t.Errorf("expected \"2025-07-14\", got %s", b)
	}
}

func TestDateUnmarshalJSON(t *testing.T) {
	var d response.Date
	if err := json.Unmarshal([]byte(`"2025-07-14"`), &d); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	want := time.Date(2025, 7, 14, 0, 0, 0, 0, time.UTC)
	if !d.Time().Equal(want) {
		t.Errorf("expected %v, got %v", want, d.Time())
	}

	if err := json.Unmarshal([]byte(`"14/07/2025"`), &d); err == nil {
		t.Errorf("expected error for wrong date layout")
	}
}

func TestDateTimeMarshalJSON(t *testing.T) {
	dt := response.DateTime(time.Date(2025, 7, 14, 16, 45, 3, 0, time.UTC))

	b, err := json.Marshal(dt)
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}
	if string(b) != `"2025-07-14 16:45:03"` {
		t.Errorf("unexpected datetime encoding: %s", b)
	}
}
