package date

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		in      string
		wantErr bool
	}{
		{"2024-01-15", false},
		{"2024-02-29", false}, // leap year
		{"2000-02-29", false}, // leap century
		{"1999-12-31", false},
		{"0001-01-01", false},
		{"2023-02-29", true}, // not a leap year
		{"1900-02-29", true}, // not a leap century
		{"2024-13-01", true},
		{"2024-00-10", true},
		{"2024-04-31", true},
		{"2024-01-00", true},
		{"2024-1-02", true}, // month must be zero-padded
		{"2024-01-2", true}, // day must be zero-padded
		{"24-01-02", true},
		{"2024/01/02", true},
		{"not-a-date", true},
		{"", true},
	}

	for _, tc := range testCases {
		d, err := Parse(tc.in)
		if gotErr := err != nil; gotErr != tc.wantErr {
			t.Errorf("Parse(%q) error = %v, wantErr = %v", tc.in, err, tc.wantErr)
			continue
		}
		if !tc.wantErr && d.String() != tc.in {
			t.Errorf("Parse(%q).String() = %q, want identity", tc.in, d.String())
		}
	}
}

func TestDate_SameMonth(t *testing.T) {
	testCases := []struct {
		a, b string
		want bool
	}{
		{"2024-03-01", "2024-03-31", true},
		{"2024-03-15", "2024-04-15", false},
		{"2023-03-15", "2024-03-15", false},
	}
	for _, tc := range testCases {
		if got := MustParse(tc.a).SameMonth(MustParse(tc.b)); got != tc.want {
			t.Errorf("SameMonth(%s, %s) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestDate_Add_normalizes(t *testing.T) {
	got := New(2024, time.February, 28).Add(1)
	if got.String() != "2024-02-29" {
		t.Errorf("2024-02-28 + 1 day = %s, want 2024-02-29", got)
	}
	got = New(2023, time.February, 28).Add(1)
	if got.String() != "2023-03-01" {
		t.Errorf("2023-02-28 + 1 day = %s, want 2023-03-01", got)
	}
}

func TestDate_JSONRoundTrip(t *testing.T) {
	want := MustParse("2024-07-04")
	b, err := json.Marshal(want)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(b) != `"2024-07-04"` {
		t.Errorf("Marshal = %s, want %q", b, `"2024-07-04"`)
	}
	var got Date
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got != want {
		t.Errorf("round trip = %s, want %s", got, want)
	}
}

func TestRange_Contains(t *testing.T) {
	r := NewRange(MustParse("2024-01-10"), MustParse("2024-01-20"))
	testCases := []struct {
		d    string
		want bool
	}{
		{"2024-01-09", false},
		{"2024-01-10", true}, // inclusive lower bound
		{"2024-01-15", true},
		{"2024-01-20", true}, // inclusive upper bound
		{"2024-01-21", false},
	}
	for _, tc := range testCases {
		if got := r.Contains(MustParse(tc.d)); got != tc.want {
			t.Errorf("Contains(%s) = %v, want %v", tc.d, got, tc.want)
		}
	}
}
