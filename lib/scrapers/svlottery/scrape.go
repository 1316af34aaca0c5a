package svlottery

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/codes"

	"lotterykiosk-backend/lib/restyutil"
	"lotterykiosk-backend/lib/telemetry"
)

const defaultUserAgent = "lotterykiosk/1.0 (results kiosk preview; +https://github.com/lotterykiosk)"

type Client struct {
	Http *resty.Client
}

type ClientOptions struct {
	// identifies the kiosk to the source site, defaulted when empty
	UserAgent string
	Timeout   time.Duration
}

func NewClient(opts ClientOptions) *Client {
	client := resty.New()
	// the results site sits behind cloudflare
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	client.SetHeader("user-agent", userAgent)

	timeout := opts.Timeout
	if timeout == 0 {
		timeout = time.Second * 30
	}
	client.SetTimeout(timeout)

	telemetry.InstrumentResty(client, "scrapers/svlottery/http")

	return &Client{Http: client}
}

func (c *Client) SetRestyInstrumentOutput(out restyutil.InstrumentOutput) {
	restyutil.InstrumentClient(c.Http, out)
}

func (c *Client) FetchPage(ctx context.Context, link string) (string, error) {
	ctx, span := tracer.Start(ctx, "FetchPage")
	defer span.End()

	res, err := c.Http.R().
		SetContext(ctx).
		Get(link)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "fetch failed")
		return "", err
	}
	if res.StatusCode() != 200 {
		err := fmt.Errorf("unexpected status %d fetching %s", res.StatusCode(), link)
		span.RecordError(err)
		span.SetStatus(codes.Error, "unexpected status")
		return "", err
	}

	return res.String(), nil
}

// FetchPages fetches every distinct link concurrently. It returns the
// raw page per link plus the error per link that failed; one link
// failing never disturbs the others.
func (c *Client) FetchPages(ctx context.Context, links []string) (map[string]string, map[string]error) {
	distinct := map[string]bool{}
	for _, l := range links {
		distinct[l] = true
	}

	pages := map[string]string{}
	failures := map[string]error{}
	lock := sync.Mutex{}
	wg := sync.WaitGroup{}

	for link := range distinct {
		wg.Add(1)
		go func(link string) {
			defer wg.Done()

			page, err := c.FetchPage(ctx, link)

			lock.Lock()
			defer lock.Unlock()
			if err != nil {
				slog.ErrorContext(ctx, "failed to fetch results page", "url", link, "err", err)
				failures[link] = err
				return
			}
			pages[link] = page
		}(link)
	}

	wg.Wait()
	return pages, failures
}

// GameExtraction is the outcome of extracting one game from a page,
// exactly one of Single/Multi populated according to the game's kind.
type GameExtraction struct {
	Game   Game
	Single Result[SingleDrawRecord]
	Multi  Result[MultiDrawRecord]
}

// Status reports the extraction status regardless of game kind.
func (e GameExtraction) Status() Status {
	if e.Game.Kind == MultiDraw {
		return e.Multi.Status
	}
	return e.Single.Status
}

// Reason reports the malformed-reason regardless of game kind.
func (e GameExtraction) Reason() string {
	if e.Game.Kind == MultiDraw {
		return e.Multi.Reason
	}
	return e.Single.Reason
}

// ExtractGame isolates the game's section inside the raw page markup
// and runs the extractor matching the game's kind. A missing heading
// comes back NotFound; it is the caller's business to treat that as
// "no data for this game" rather than a dead run.
func ExtractGame(ctx context.Context, page string, game Game) GameExtraction {
	ctx, span := tracer.Start(ctx, "ExtractGame")
	defer span.End()

	out := GameExtraction{Game: game}

	text := PageText(page)
	section := LocateSection(text, game.Label, otherLabels(game))
	if !section.Ok() {
		slog.WarnContext(ctx, "could not locate game section",
			"game", game.Key,
			"reason", section.Reason,
		)
		if game.Kind == MultiDraw {
			out.Multi = Result[MultiDrawRecord]{Status: section.Status, Reason: section.Reason}
		} else {
			out.Single = Result[SingleDrawRecord]{Status: section.Status, Reason: section.Reason}
		}
		return out
	}

	if game.Kind == MultiDraw {
		out.Multi = ExtractMultiDraw(section.Value, game.Label)
	} else {
		out.Single = ExtractSingleDraw(section.Value, game.Label, game.MainNumbers)
	}

	if out.Status() == StatusMalformed {
		slog.WarnContext(ctx, "game section located but malformed",
			"game", game.Key,
			"reason", out.Reason(),
		)
	}
	return out
}
