package model

import (
	"encoding/json"
	"testing"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		in      string
		want    TimeOfDay
		wantErr bool
	}{
		{in: "00:00", want: 0},
		{in: "08:00", want: 480},
		{in: "08:30", want: 510},
		{in: "23:59", want: 1439},
		{in: "24:00", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "-1:00", wantErr: true},
		{in: "mediodía", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseTimeOfDay(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseTimeOfDay(%q) = %v, want error", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseTimeOfDay(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseTimeOfDay(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestTimeOfDayString(t *testing.T) {
	if got := TimeOfDay(510).String(); got != "08:30" {
		t.Errorf("String() = %q, want %q", got, "08:30")
	}
	if got := TimeOfDay(0).String(); got != "00:00" {
		t.Errorf("String() = %q, want %q", got, "00:00")
	}
}

func TestTimeOfDayJSONRoundTrip(t *testing.T) {
	s := Schedule{StartTime: 480, EndTime: 600}

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded Schedule
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.StartTime != 480 || decoded.EndTime != 600 {
		t.Errorf("round trip = %v-%v, want 480-600", decoded.StartTime, decoded.EndTime)
	}
}

func TestTimeOfDayUnmarshalRejectsBadInput(t *testing.T) {
	var tod TimeOfDay
	if err := json.Unmarshal([]byte(`"25:00"`), &tod); err == nil {
		t.Error("expected error for out-of-range hour")
	}
	if err := json.Unmarshal([]byte(`480`), &tod); err == nil {
		t.Error("expected error for non-string input")
	}
}
