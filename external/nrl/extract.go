package nrl

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/cockroachdb/errors"

	"github.com/riskibarqy/nrl-scraper/internal/usecase"
)

const (
	byeTeamSelector   = "div.o-shadowed-box.u-spacing-mv-16.u-text-align-center li.match-bye-team span.u-visually-hidden"
	matchLinkSelector = "a.match--highlighted.u-flex-column.u-flex-align-items-center.u-width-100"
	eventSelector     = "div.match-centre-event__content"
)

// ExtractByeTeams lists the teams sitting out the round shown on a draw page.
// Duplicate spans (one per breakpoint variant) collapse to one entry.
func ExtractByeTeams(html string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, errors.Wrap(err, "parse draw page")
	}

	seen := make(map[string]struct{})
	var teams []string
	doc.Find(byeTeamSelector).Each(func(_ int, s *goquery.Selection) {
		name := strings.TrimSpace(s.Text())
		if name == "" {
			return
		}
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		teams = append(teams, name)
	})

	return teams, nil
}

// ExtractMatchPaths lists the relative match page paths linked from a draw
// page.
func ExtractMatchPaths(html string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, errors.Wrap(err, "parse draw page")
	}

	var paths []string
	doc.Find(matchLinkSelector).Each(func(_ int, s *goquery.Selection) {
		if href, ok := s.Attr("href"); ok && href != "" {
			paths = append(paths, href)
		}
	})

	return paths, nil
}

// ExtractMatches pulls every match block out of a rendered match page. The
// year disambiguates header dates, which omit it.
func ExtractMatches(html string, year int) ([]usecase.ScrapedMatch, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, errors.Wrap(err, "parse match page")
	}

	var out []usecase.ScrapedMatch
	var extractErr error
	doc.Find("div.match").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		sm, err := extractMatch(s, year)
		if err != nil {
			extractErr = err
			return false
		}
		out = append(out, sm)
		return true
	})
	if extractErr != nil {
		return nil, extractErr
	}

	return out, nil
}

func extractMatch(s *goquery.Selection, year int) (usecase.ScrapedMatch, error) {
	header := strings.TrimSpace(s.Find("p.match-header__title").First().Text())
	round, date, err := parseMatchHeader(header, year)
	if err != nil {
		return usecase.ScrapedMatch{}, err
	}

	homeName := strings.TrimSpace(s.Find("p.match-team__name--home").First().Text())
	awayName := strings.TrimSpace(s.Find("p.match-team__name--away").First().Text())
	if homeName == "" || awayName == "" {
		return usecase.ScrapedMatch{}, errors.Newf("match block %q is missing team names", header)
	}

	homeScore, err := extractScore(s, "div.match-team__score--home")
	if err != nil {
		return usecase.ScrapedMatch{}, err
	}
	awayScore, err := extractScore(s, "div.match-team__score--away")
	if err != nil {
		return usecase.ScrapedMatch{}, err
	}

	venue := strings.TrimSpace(strings.TrimPrefix(
		strings.TrimSpace(s.Find("p.match-venue").First().Text()), "Venue:"))

	sm := usecase.ScrapedMatch{
		Round:     round,
		Date:      date,
		HomeName:  homeName,
		AwayName:  awayName,
		HomeScore: homeScore,
		AwayScore: awayScore,
		Venue:     venue,
	}

	s.Find("div.match-weather p.match-weather__text").Each(func(_ int, p *goquery.Selection) {
		value := strings.TrimSpace(p.Find("span").First().Text())
		switch {
		case strings.Contains(p.Text(), "Ground Conditions:"):
			sm.GroundConditions = value
		case strings.Contains(p.Text(), "Weather:"):
			sm.Weather = value
		case strings.Contains(p.Text(), "Attendance:"):
			sm.Attendance = value
		}
	})

	return sm, nil
}

// extractScore reads the score digits that sit directly under the score div,
// skipping nested markup such as the "Scored X points" accessibility span.
func extractScore(s *goquery.Selection, selector string) (int, error) {
	node := s.Find(selector).First()
	if node.Length() == 0 {
		return 0, errors.Newf("score element %q not found", selector)
	}

	raw := strings.TrimSpace(node.Contents().Not("*").Text())
	score, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.Wrapf(err, "parse score %q", raw)
	}

	return score, nil
}

// ExtractEvents pulls play-by-play entries from a rendered timeline. An entry
// listing several players (interchange pairs) fans out into one ScrapedEvent
// per player, sharing timestamp and title. Blocks missing a timestamp or
// title are skipped.
func ExtractEvents(html string) ([]usecase.ScrapedEvent, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, errors.Wrap(err, "parse timeline page")
	}

	var out []usecase.ScrapedEvent
	doc.Find(eventSelector).Each(func(_ int, s *goquery.Selection) {
		out = append(out, extractEvent(s)...)
	})

	return out, nil
}

func extractEvent(s *goquery.Selection) []usecase.ScrapedEvent {
	timestamp := strings.TrimSpace(s.Find("span.match-centre-event__timestamp").First().Text())
	title := strings.TrimSpace(s.Find("h4.match-centre-event__title").First().Text())
	if timestamp == "" || title == "" {
		return nil
	}

	summary := s.Find("div.match-centre-event__summary").First()
	teamName := strings.TrimSpace(summary.Find("p.match-centre-event__team-name").First().Text())

	list := summary.Find("ul").First()
	if list.Length() == 0 {
		playerName := strings.TrimSpace(summary.Find("p.u-font-weight-500").First().Text())
		return []usecase.ScrapedEvent{{
			Timestamp:  timestamp,
			Title:      title,
			TeamName:   teamName,
			PlayerName: playerName,
		}}
	}

	type rolePlayer struct {
		role string
		name string
	}
	var pairs []rolePlayer
	var names []string
	list.Find("li").Each(func(_ int, li *goquery.Selection) {
		role := strings.TrimSpace(li.Find("span").First().Text())
		name := strings.TrimSpace(strings.Replace(li.Text(), role, "", 1))
		if name == "" {
			return
		}
		pairs = append(pairs, rolePlayer{role: role, name: name})
		names = append(names, name)
	})

	out := make([]usecase.ScrapedEvent, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, usecase.ScrapedEvent{
			Timestamp:  timestamp,
			Title:      title,
			TeamName:   teamName,
			PlayerName: p.name,
			RoleName:   p.role,
			Players:    names,
		})
	}

	return out
}
