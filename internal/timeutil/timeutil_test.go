package timeutil

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2024-01-02")
	if err != nil {
		t.Fatalf("expected parse to succeed, got %v", err)
	}
	if !parsed.Equal(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected parsed date %s", parsed)
	}
	if _, err := ParseDate("02/01/2024"); err == nil {
		t.Fatalf("expected error for non-ISO date")
	}
}

func TestParseTimestampFormats(t *testing.T) {
	want := time.Date(2024, 3, 9, 18, 30, 0, 0, time.UTC)

	cases := map[string]time.Time{
		"2024-03-09T18:30:00Z":      want,
		"2024-03-09T19:30:00+01:00": want,
		"2024-03-09":                time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC),
		"1710009000000":             want,
	}

	for in, expected := range cases {
		got, err := ParseTimestamp(in)
		if err != nil {
			t.Fatalf("ParseTimestamp(%q) returned error %v", in, err)
		}
		if !got.Equal(expected) {
			t.Fatalf("ParseTimestamp(%q) = %s, want %s", in, got, expected)
		}
		if got.Location() != time.UTC {
			t.Fatalf("expected UTC location for %q, got %s", in, got.Location())
		}
	}
}

func TestParseTimestampRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "  ", "yesterday", "2024-13-40"} {
		if _, err := ParseTimestamp(in); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
}

func TestFromUnixMilli(t *testing.T) {
	got := FromUnixMilli(0)
	if !got.Equal(time.Unix(0, 0)) || got.Location() != time.UTC {
		t.Fatalf("unexpected epoch conversion %s", got)
	}
}
