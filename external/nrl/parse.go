package nrl

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
)

var (
	ordinalSuffixRe = regexp.MustCompile(`(\d{1,2})(st|nd|rd|th)`)
	roundQueryRe    = regexp.MustCompile(`round=(\d+)`)
	pathYearRe      = regexp.MustCompile(`/(\d{4})/`)
)

// ParseMatchDate parses a header date like "Sunday 2nd March" for the given
// season year. Ordinal suffixes are stripped before parsing.
func ParseMatchDate(raw string, year int) (time.Time, error) {
	clean := ordinalSuffixRe.ReplaceAllString(strings.TrimSpace(raw), "$1")
	t, err := time.Parse("Monday 2 January 2006", clean+" "+strconv.Itoa(year))
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "parse match date %q", raw)
	}
	return t, nil
}

// parseMatchHeader splits a match header like "Round 3 - Sunday 2nd March"
// into its round number and kickoff date.
func parseMatchHeader(header string, year int) (int, time.Time, error) {
	parts := strings.SplitN(header, " - ", 2)
	if len(parts) != 2 {
		return 0, time.Time{}, errors.Newf("match header %q has no date segment", header)
	}

	roundPart := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(parts[0]), "Round"))
	round, err := strconv.Atoi(roundPart)
	if err != nil {
		return 0, time.Time{}, errors.Wrapf(err, "parse round from header %q", header)
	}

	date, err := ParseMatchDate(parts[1], year)
	if err != nil {
		return 0, time.Time{}, err
	}

	return round, date, nil
}

// roundFromURL pulls the round number out of a draw URL query string.
func roundFromURL(rawURL string) (int, error) {
	m := roundQueryRe.FindStringSubmatch(rawURL)
	if m == nil {
		return 0, errors.Newf("url %q carries no round parameter", rawURL)
	}
	round, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, errors.Wrapf(err, "parse round from url %q", rawURL)
	}
	return round, nil
}

// yearFromPath extracts the season year embedded in a match path such as
// "/draw/nrl-premiership/2025/round-3/storm-v-eels/". Falls back to 0 when
// the path carries no year.
func yearFromPath(path string) int {
	m := pathYearRe.FindStringSubmatch(path)
	if m == nil {
		return 0
	}
	year, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return year
}
