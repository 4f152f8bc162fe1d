package nrl

import (
	"testing"
	"time"
)

const drawPageHTML = `
<html><body>
<div class="o-shadowed-box u-spacing-mv-16 u-text-align-center">
	<ul>
		<li class="match-bye-team"><span class="u-visually-hidden">Panthers</span></li>
		<li class="match-bye-team"><span class="u-visually-hidden">Panthers</span></li>
		<li class="match-bye-team"><span>Visible Text</span></li>
		<li class="match-bye-team"><span class="u-visually-hidden">   </span></li>
		<li class="match-bye-team"><span class="u-visually-hidden">Storm</span></li>
	</ul>
</div>
<a class="match--highlighted u-flex-column u-flex-align-items-center u-width-100"
	href="/draw/nrl-premiership/2025/round-3/storm-v-eels/">Match centre</a>
<a class="match--highlighted u-flex-column u-flex-align-items-center u-width-100"
	href="/draw/nrl-premiership/2025/round-3/sharks-v-roosters/">Match centre</a>
<a class="other-link" href="/news/">News</a>
</body></html>`

func TestExtractByeTeams(t *testing.T) {
	t.Parallel()

	teams, err := ExtractByeTeams(drawPageHTML)
	if err != nil {
		t.Fatalf("extract byes: %v", err)
	}

	if len(teams) != 2 || teams[0] != "Panthers" || teams[1] != "Storm" {
		t.Fatalf("expected [Panthers Storm], got %v", teams)
	}
}

func TestExtractByeTeamsEmptyPage(t *testing.T) {
	t.Parallel()

	teams, err := ExtractByeTeams("<html><body><ul></ul></body></html>")
	if err != nil {
		t.Fatalf("extract byes: %v", err)
	}
	if len(teams) != 0 {
		t.Fatalf("expected no byes, got %v", teams)
	}
}

func TestExtractMatchPaths(t *testing.T) {
	t.Parallel()

	paths, err := ExtractMatchPaths(drawPageHTML)
	if err != nil {
		t.Fatalf("extract paths: %v", err)
	}

	want := []string{
		"/draw/nrl-premiership/2025/round-3/storm-v-eels/",
		"/draw/nrl-premiership/2025/round-3/sharks-v-roosters/",
	}
	if len(paths) != len(want) {
		t.Fatalf("expected %d paths, got %v", len(want), paths)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Fatalf("path %d: expected %q, got %q", i, want[i], paths[i])
		}
	}
}

const matchPageHTML = `
<html><body>
<div class="match">
	<p class="match-header__title">Round 12 - Sunday 26 May</p>
	<p class="match-team__name--home">Panthers</p>
	<p class="match-team__name--away">Storm</p>
	<div class="match-team__score--home">18<span class="u-visually-hidden">Scored 18 points</span></div>
	<div class="match-team__score--away">12<span class="u-visually-hidden">Scored 12 points</span></div>
	<p class="match-venue o-text">Venue: BlueBet Stadium</p>
	<div class="match-weather">
		<p class="match-weather__text">Ground Conditions: <span>Good</span></p>
		<p class="match-weather__text">Weather: <span>Fine</span></p>
		<p class="match-weather__text">Attendance: <span>15,234</span></p>
	</div>
</div>
</body></html>`

func TestExtractMatches(t *testing.T) {
	t.Parallel()

	matches, err := ExtractMatches(matchPageHTML, 2025)
	if err != nil {
		t.Fatalf("extract matches: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}

	m := matches[0]
	if m.Round != 12 {
		t.Fatalf("expected round 12, got %d", m.Round)
	}
	if want := time.Date(2025, time.May, 26, 0, 0, 0, 0, time.UTC); !m.Date.Equal(want) {
		t.Fatalf("expected date %v, got %v", want, m.Date)
	}
	if m.HomeName != "Panthers" || m.AwayName != "Storm" {
		t.Fatalf("unexpected team names: %q vs %q", m.HomeName, m.AwayName)
	}
	if m.HomeScore != 18 || m.AwayScore != 12 {
		t.Fatalf("unexpected scores: %d-%d", m.HomeScore, m.AwayScore)
	}
	if m.Venue != "BlueBet Stadium" {
		t.Fatalf("unexpected venue: %q", m.Venue)
	}
	if m.GroundConditions != "Good" || m.Weather != "Fine" || m.Attendance != "15,234" {
		t.Fatalf("unexpected conditions: %q %q %q", m.GroundConditions, m.Weather, m.Attendance)
	}
}

func TestExtractMatchesRejectsBrokenBlock(t *testing.T) {
	t.Parallel()

	html := `<html><body><div class="match">
		<p class="match-header__title">Round 12 - Sunday 26 May</p>
	</div></body></html>`

	if _, err := ExtractMatches(html, 2025); err == nil {
		t.Fatal("expected error for match block without team names")
	}
}

func TestExtractEventsSinglePlayer(t *testing.T) {
	t.Parallel()

	html := `
	<div class="match-centre-event__content">
		<span class="match-centre-event__timestamp">52:54</span>
		<h4 class="match-centre-event__title">Try</h4>
		<div class="match-centre-event__summary">
			<p class="match-centre-event__team-name">Storm</p>
			<p class="u-font-weight-500">Cameron Munster</p>
		</div>
	</div>`

	events, err := ExtractEvents(html)
	if err != nil {
		t.Fatalf("extract events: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}

	ev := events[0]
	if ev.Timestamp != "52:54" || ev.Title != "Try" {
		t.Fatalf("unexpected event header: %q %q", ev.Timestamp, ev.Title)
	}
	if ev.TeamName != "Storm" || ev.PlayerName != "Cameron Munster" {
		t.Fatalf("unexpected attribution: %q %q", ev.TeamName, ev.PlayerName)
	}
	if ev.RoleName != "" {
		t.Fatalf("expected no role, got %q", ev.RoleName)
	}
}

func TestExtractEventsInterchangeFansOut(t *testing.T) {
	t.Parallel()

	html := `
	<div class="match-centre-event__content">
		<span class="match-centre-event__timestamp">65:20</span>
		<h4 class="match-centre-event__title">Interchange #8</h4>
		<div class="match-centre-event__summary">
			<p class="match-centre-event__team-name">Panthers</p>
			<ul>
				<li><span>on</span> Nathan Cleary</li>
				<li><span>off</span> Brian To'o</li>
			</ul>
		</div>
	</div>`

	events, err := ExtractEvents(html)
	if err != nil {
		t.Fatalf("extract events: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}

	for _, ev := range events {
		if ev.Timestamp != "65:20" || ev.Title != "Interchange #8" || ev.TeamName != "Panthers" {
			t.Fatalf("unexpected shared fields: %+v", ev)
		}
		if len(ev.Players) != 2 {
			t.Fatalf("expected both players listed, got %v", ev.Players)
		}
	}
	if events[0].PlayerName != "Nathan Cleary" || events[0].RoleName != "on" {
		t.Fatalf("unexpected first entry: %+v", events[0])
	}
	if events[1].PlayerName != "Brian To'o" || events[1].RoleName != "off" {
		t.Fatalf("unexpected second entry: %+v", events[1])
	}
}

func TestExtractEventsSkipsHeaderlessBlocks(t *testing.T) {
	t.Parallel()

	html := `
	<div class="match-centre-event__content">
		<div class="match-centre-event__summary">
			<p class="match-centre-event__team-name">Storm</p>
		</div>
	</div>`

	events, err := ExtractEvents(html)
	if err != nil {
		t.Fatalf("extract events: %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("expected headerless block skipped, got %v", events)
	}
}
