package dbtime

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in      string
		wantMin int
		wantErr bool
	}{
		{"08:00", 8 * 60, false},
		{"08:00:30", 8 * 60, false},
		{"23:59", 23*60 + 59, false},
		{"00:00", 0, false},
		{" 10:15 ", 10*60 + 15, false},
		{"24:00", 0, true},
		{"8am", 0, true},
		{"", 0, true},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Parse(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) expected error", tc.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q): %v", tc.in, err)
			}
			if got.Minutes() != tc.wantMin {
				t.Errorf("Parse(%q).Minutes() = %d, want %d", tc.in, got.Minutes(), tc.wantMin)
			}
		})
	}
}

func TestCompare(t *testing.T) {
	a, _ := Parse("09:00")
	b, _ := Parse("10:30")

	if !a.Before(b) || b.Before(a) {
		t.Error("09:00 must be before 10:30")
	}
	if !b.After(a) || a.After(b) {
		t.Error("10:30 must be after 09:00")
	}
	if a.Before(a) || a.After(a) {
		t.Error("a time is neither before nor after itself")
	}
}

func TestFromDropsDateAndZone(t *testing.T) {
	loc := time.FixedZone("X", 5*3600)
	src := time.Date(2026, 8, 30, 14, 45, 12, 0, loc)
	got := From(src)
	if got.Minutes() != 14*60+45 {
		t.Errorf("From kept wrong wall clock: %d minutes", got.Minutes())
	}
}

func TestJSONRoundTrip(t *testing.T) {
	in, _ := Parse("07:05")
	raw, err := json.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != `"07:05:00"` {
		t.Errorf("marshal = %s", raw)
	}

	var out Tod
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatal(err)
	}
	if out.Minutes() != in.Minutes() {
		t.Errorf("round trip changed value: %d != %d", out.Minutes(), in.Minutes())
	}
}

func TestValue(t *testing.T) {
	in, _ := Parse("18:30")
	v, err := in.Value()
	if err != nil {
		t.Fatal(err)
	}
	if v != "18:30:00" {
		t.Errorf("Value() = %v", v)
	}

	var zero Tod
	v, err = zero.Value()
	if err != nil {
		t.Fatal(err)
	}
	if v != "00:00:00" {
		t.Errorf("zero Value() = %v", v)
	}
}
