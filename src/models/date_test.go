package models

import (
	"encoding/json"
	"testing"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "plain date", input: "2025-06-15", want: "2025-06-15"},
		{name: "rfc3339 keeps date part", input: "2025-06-15T18:30:00Z", want: "2025-06-15"},
		{name: "surrounding whitespace", input: " 2025-06-15 ", want: "2025-06-15"},
		{name: "garbage", input: "June 15", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "wrong order", input: "15-06-2025", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d, err := ParseDate(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseDate(%q) = %s, want error", tc.input, d)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q): %v", tc.input, err)
			}
			if d.String() != tc.want {
				t.Errorf("ParseDate(%q) = %s, want %s", tc.input, d, tc.want)
			}
		})
	}
}

func TestDateMonthKey(t *testing.T) {
	if got := NewDate(2025, 6, 15).MonthKey(); got != "2025-06" {
		t.Errorf("MonthKey = %q, want 2025-06", got)
	}
	if got := NewDate(2024, 12, 31).MonthKey(); got != "2024-12" {
		t.Errorf("MonthKey = %q, want 2024-12", got)
	}
}

func TestDateJSON(t *testing.T) {
	b, err := json.Marshal(NewDate(2025, 6, 15))
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `"2025-06-15"` {
		t.Errorf("marshal = %s", b)
	}

	b, err = json.Marshal(Date{})
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "null" {
		t.Errorf("zero date marshal = %s, want null", b)
	}

	var d Date
	if err := json.Unmarshal([]byte(`"2025-06-15"`), &d); err != nil {
		t.Fatal(err)
	}
	if d.String() != "2025-06-15" {
		t.Errorf("unmarshal = %s", d)
	}

	if err := json.Unmarshal([]byte("null"), &d); err != nil {
		t.Fatal(err)
	}
	if !d.IsZero() {
		t.Errorf("null unmarshal = %s, want zero", d)
	}

	if err := json.Unmarshal([]byte(`"nope"`), &d); err == nil {
		t.Error("unmarshal of garbage succeeded")
	}
}
