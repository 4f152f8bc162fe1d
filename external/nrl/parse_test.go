package nrl

import (
	"testing"
	"time"
)

func TestParseMatchDate(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		raw  string
		year int
		want time.Time
	}{
		{raw: "Sunday 2nd March", year: 2025, want: time.Date(2025, time.March, 2, 0, 0, 0, 0, time.UTC)},
		{raw: "Friday 1st August", year: 2025, want: time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC)},
		{raw: "Saturday 23rd May", year: 2024, want: time.Date(2024, time.May, 23, 0, 0, 0, 0, time.UTC)},
		{raw: "Sunday 26 May", year: 2025, want: time.Date(2025, time.May, 26, 0, 0, 0, 0, time.UTC)},
	} {
		got, err := ParseMatchDate(tc.raw, tc.year)
		if err != nil {
			t.Fatalf("parse %q: %v", tc.raw, err)
		}
		if !got.Equal(tc.want) {
			t.Fatalf("parse %q: expected %v, got %v", tc.raw, tc.want, got)
		}
	}
}

func TestParseMatchDateRejectsGarbage(t *testing.T) {
	t.Parallel()

	if _, err := ParseMatchDate("sometime soon", 2025); err == nil {
		t.Fatal("expected error for unparsable date")
	}
}

func TestParseMatchHeader(t *testing.T) {
	t.Parallel()

	round, date, err := parseMatchHeader("Round 12 - Sunday 26 May", 2025)
	if err != nil {
		t.Fatalf("parse header: %v", err)
	}
	if round != 12 {
		t.Fatalf("expected round 12, got %d", round)
	}
	want := time.Date(2025, time.May, 26, 0, 0, 0, 0, time.UTC)
	if !date.Equal(want) {
		t.Fatalf("expected %v, got %v", want, date)
	}

	if _, _, err := parseMatchHeader("Round 12", 2025); err == nil {
		t.Fatal("expected error for header without date segment")
	}
}

func TestRoundFromURL(t *testing.T) {
	t.Parallel()

	round, err := roundFromURL("https://www.nrl.com/draw/?competition=111&round=27&season=2025")
	if err != nil {
		t.Fatalf("round from url: %v", err)
	}
	if round != 27 {
		t.Fatalf("expected 27, got %d", round)
	}

	if _, err := roundFromURL("https://www.nrl.com/draw/?competition=111&season=2025"); err == nil {
		t.Fatal("expected error when url has no round parameter")
	}
}

func TestYearFromPath(t *testing.T) {
	t.Parallel()

	if got := yearFromPath("/draw/nrl-premiership/2025/round-3/storm-v-eels/"); got != 2025 {
		t.Fatalf("expected 2025, got %d", got)
	}
	if got := yearFromPath("/draw/storm-v-eels/"); got != 0 {
		t.Fatalf("expected 0 for pathless year, got %d", got)
	}
}
