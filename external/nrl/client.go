package nrl

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/cockroachdb/errors"

	"github.com/riskibarqy/nrl-scraper/internal/platform/logging"
	"github.com/riskibarqy/nrl-scraper/internal/usecase"
)

const playByPlayTabXPath = `//a[.//span[text()='Play by Play']]`

// ClientConfig carries the knobs for the browser-backed fetcher.
type ClientConfig struct {
	BaseURL       string
	CompetitionID int
	Season        int
	Headless      bool
	NavTimeout    time.Duration
	// MaxPoliteDelay bounds the random pause taken before clicking through to
	// a match timeline.
	MaxPoliteDelay time.Duration
	Logger         *logging.Logger
}

// Client drives a headless browser session against the draw site and maps
// rendered pages into usecase inputs. It implements usecase.Fetcher.
//
// The client is stateful: FetchMatchEvents clicks the play-by-play tab on the
// match page most recently loaded by FetchMatch. It is not safe for
// concurrent use; the scrape job is single-threaded.
type Client struct {
	cfg        ClientConfig
	browserCtx context.Context
	logger     *logging.Logger
	rng        *rand.Rand
}

// NewClient allocates the browser and returns the client together with a
// release function. The release function must be called exactly once; it
// tears the browser down on every exit path, success or failure.
func NewClient(ctx context.Context, cfg ClientConfig) (*Client, func(), error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, nil, errors.New("base url is required")
	}
	if cfg.NavTimeout <= 0 {
		cfg.NavTimeout = 45 * time.Second
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.Default()
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", cfg.Headless),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("no-sandbox", true),
	)
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)

	// Start the browser eagerly so a missing Chrome binary surfaces here
	// rather than in the middle of a round.
	if err := chromedp.Run(browserCtx); err != nil {
		browserCancel()
		allocCancel()
		return nil, nil, errors.Wrap(err, "start browser")
	}

	release := func() {
		browserCancel()
		allocCancel()
	}

	return &Client{
		cfg:        cfg,
		browserCtx: browserCtx,
		logger:     cfg.Logger,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}, release, nil
}

// LatestRound loads the draw without a round parameter and reads the round
// the site redirects to, i.e. the round currently in progress.
func (c *Client) LatestRound(ctx context.Context) (int, error) {
	url := fmt.Sprintf("%s/draw/?competition=%d&season=%d", c.cfg.BaseURL, c.cfg.CompetitionID, c.cfg.Season)

	runCtx, cancel := c.runContext(ctx)
	defer cancel()

	var finalURL string
	err := chromedp.Run(runCtx,
		chromedp.Navigate(url),
		chromedp.Sleep(2*time.Second),
		chromedp.Location(&finalURL),
	)
	if err != nil {
		return 0, errors.Wrap(err, "load draw page")
	}

	round, err := roundFromURL(finalURL)
	if err != nil {
		return 0, err
	}
	c.logger.InfoContext(ctx, "resolved latest round", "round", round, "url", finalURL)

	return round, nil
}

func (c *Client) FetchRound(ctx context.Context, round int) (usecase.RoundPage, error) {
	url := fmt.Sprintf("%s/draw/?competition=%d&round=%d&season=%d",
		c.cfg.BaseURL, c.cfg.CompetitionID, round, c.cfg.Season)

	html, err := c.render(ctx, url)
	if err != nil {
		return usecase.RoundPage{}, errors.Wrapf(err, "render round %d listing", round)
	}

	byes, err := ExtractByeTeams(html)
	if err != nil {
		return usecase.RoundPage{}, err
	}
	paths, err := ExtractMatchPaths(html)
	if err != nil {
		return usecase.RoundPage{}, err
	}

	return usecase.RoundPage{ByeTeams: byes, MatchPaths: paths}, nil
}

func (c *Client) FetchMatch(ctx context.Context, path string) ([]usecase.ScrapedMatch, error) {
	url := c.cfg.BaseURL + "/" + strings.TrimPrefix(path, "/")

	html, err := c.render(ctx, url)
	if err != nil {
		return nil, errors.Wrapf(err, "render match page %s", path)
	}

	year := yearFromPath(path)
	if year == 0 {
		year = c.cfg.Season
	}

	return ExtractMatches(html, year)
}

// FetchMatchEvents clicks through to the play-by-play tab of the current
// match page and extracts the timeline. A random pause up to MaxPoliteDelay
// spaces out the click.
func (c *Client) FetchMatchEvents(ctx context.Context) ([]usecase.ScrapedEvent, error) {
	runCtx, cancel := c.runContext(ctx)
	defer cancel()

	var html string
	err := chromedp.Run(runCtx,
		chromedp.Sleep(c.politeDelay()),
		chromedp.Click(playByPlayTabXPath, chromedp.BySearch),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return nil, errors.Wrap(err, "open play-by-play tab")
	}

	return ExtractEvents(html)
}

func (c *Client) render(ctx context.Context, url string) (string, error) {
	runCtx, cancel := c.runContext(ctx)
	defer cancel()

	var html string
	err := chromedp.Run(runCtx,
		chromedp.Navigate(url),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", err
	}

	return html, nil
}

// runContext scopes one browser operation to the caller's context and the
// configured navigation timeout.
func (c *Client) runContext(ctx context.Context) (context.Context, context.CancelFunc) {
	runCtx, timeoutCancel := context.WithTimeout(c.browserCtx, c.cfg.NavTimeout)

	stop := context.AfterFunc(ctx, timeoutCancel)
	return runCtx, func() {
		stop()
		timeoutCancel()
	}
}

func (c *Client) politeDelay() time.Duration {
	if c.cfg.MaxPoliteDelay <= 0 {
		return 0
	}
	return time.Duration(c.rng.Int63n(int64(c.cfg.MaxPoliteDelay)))
}
