package normalize

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in    string
		order string
		want  string
	}{
		{"2024-03-15", "dmy", "2024-03-15"},
		{"2024-03-15T10:30:00", "dmy", "2024-03-15"},
		{"15.03.2024", "dmy", "2024-03-15"},
		{"15.03.24", "dmy", "2024-03-15"},
		{"15/03/2024", "dmy", "2024-03-15"},
		{"03/15/2024", "mdy", "2024-03-15"},
		{"2024/03/15", "ymd", "2024-03-15"},
		{"  15.03.2024 ", "dmy", "2024-03-15"},
	}
	for _, tc := range tests {
		t.Run(tc.in+"/"+tc.order, func(t *testing.T) {
			got, err := ParseDate(tc.in, tc.order)
			if err != nil {
				t.Fatalf("ParseDate(%q, %q): %v", tc.in, tc.order, err)
			}
			if got.Format("2006-01-02") != tc.want {
				t.Errorf("ParseDate(%q, %q) = %s, want %s", tc.in, tc.order, got.Format("2006-01-02"), tc.want)
			}
			if got.Location() != time.UTC {
				t.Errorf("location = %v, want UTC", got.Location())
			}
			if h, m, s := got.Clock(); h+m+s != 0 {
				t.Errorf("time of day not truncated: %02d:%02d:%02d", h, m, s)
			}
		})
	}
}

func TestParseDateAmbiguityFollowsOrder(t *testing.T) {
	dmy, err := ParseDate("01.02.2024", "dmy")
	if err != nil {
		t.Fatal(err)
	}
	if dmy.Month() != time.February || dmy.Day() != 1 {
		t.Errorf("dmy: got %s, want 2024-02-01", dmy.Format("2006-01-02"))
	}
	mdy, err := ParseDate("01.02.2024", "mdy")
	if err != nil {
		t.Fatal(err)
	}
	if mdy.Month() != time.January || mdy.Day() != 2 {
		t.Errorf("mdy: got %s, want 2024-01-02", mdy.Format("2006-01-02"))
	}
}

func TestParseDateInvalid(t *testing.T) {
	for _, tc := range []struct{ in, order string }{
		{"", "dmy"},
		{"not a date", "dmy"},
		{"32.01.2024", "dmy"},
		{"15.03.2024", "ymd"},
	} {
		if _, err := ParseDate(tc.in, tc.order); err == nil {
			t.Errorf("ParseDate(%q, %q): expected error", tc.in, tc.order)
		}
	}
}
