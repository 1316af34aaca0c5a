package kiosk

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"lotterykiosk-backend/lib/scrapers/svlottery"
	"lotterykiosk-backend/lib/timezone"
	"lotterykiosk-backend/services/kiosk/db"
)

const DefaultSource = "https://www.supremeventures.com/winning-numbers"

// rolling history bound, roughly a month of cash pot draws
const historyKeep = 200

type Service struct {
	client  *svlottery.Client
	qry     *db.Queries
	sources map[string]string
	output  string
}

// NewService wires the pipeline together. `database` may be nil, in
// which case no draw history is kept. Games missing from `sources`
// fall back to the combined winning-numbers page.
func NewService(client *svlottery.Client, database *sql.DB, sources map[string]string, output string) Service {
	s := Service{
		client:  client,
		sources: map[string]string{},
		output:  output,
	}
	if database != nil {
		s.qry = db.New(database)
	}
	if s.output == "" {
		s.output = "kiosk_results.json"
	}
	for _, game := range svlottery.Games {
		link := sources[game.Key]
		if link == "" {
			link = DefaultSource
		}
		s.sources[game.Key] = link
	}
	return s
}

type GameStatus struct {
	Key    string
	State  string // "ok", "fetch failed", "section missing", "malformed"
	Detail string
}

type RunSummary struct {
	Document ResultDocument
	Statuses []GameStatus
}

// Run executes one scrape: fetch every configured page concurrently,
// extract each game, write the snapshot. Per-game failures degrade to
// a null record in the snapshot; Run only errors when no page at all
// could be fetched or the snapshot cannot be written.
func (s Service) Run(ctx context.Context) (RunSummary, error) {
	ctx, span := tracer.Start(ctx, "Run")
	defer span.End()

	var links []string
	for _, game := range svlottery.Games {
		links = append(links, s.sources[game.Key])
	}
	pages, failures := s.client.FetchPages(ctx, links)

	if len(pages) == 0 {
		errlist := make([]error, 0, len(failures))
		for _, err := range failures {
			errlist = append(errlist, err)
		}
		err := fmt.Errorf("no results page could be fetched: %w", errors.Join(errlist...))
		span.RecordError(err)
		span.SetStatus(codes.Error, "total fetch failure")
		return RunSummary{}, err
	}

	var summary RunSummary
	var extractions []svlottery.GameExtraction

	for _, game := range svlottery.Games {
		link := s.sources[game.Key]
		page, fetched := pages[link]
		if !fetched {
			summary.Statuses = append(summary.Statuses, GameStatus{
				Key:    game.Key,
				State:  "fetch failed",
				Detail: failures[link].Error(),
			})
			continue
		}

		ex := svlottery.ExtractGame(ctx, page, game)
		extractions = append(extractions, ex)
		summary.Statuses = append(summary.Statuses, gameStatus(ex))
	}

	summary.Document = BuildDocument(s.sources, timezone.Now(), extractions)

	err := WriteDocument(s.output, summary.Document)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to write snapshot")
		return summary, fmt.Errorf("failed to write %s: %w", s.output, err)
	}

	s.recordHistory(ctx, summary.Document.Games.CashPot)

	for _, st := range summary.Statuses {
		if st.State == "ok" {
			slog.InfoContext(ctx, "game extracted", "game", st.Key)
		} else {
			slog.WarnContext(ctx, "game unavailable", "game", st.Key, "state", st.State, "detail", st.Detail)
		}
	}
	span.SetAttributes(attribute.String("output", s.output))

	return summary, nil
}

func gameStatus(ex svlottery.GameExtraction) GameStatus {
	st := GameStatus{Key: ex.Game.Key, Detail: ex.Reason()}
	switch ex.Status() {
	case svlottery.StatusFound:
		st.State = "ok"
	case svlottery.StatusNotFound:
		st.State = "section missing"
	case svlottery.StatusMalformed:
		st.State = "malformed"
	}
	return st
}

// recordHistory appends the run's cash pot draws to the rolling
// history table. History is best-effort: any failure is logged and
// swallowed, the snapshot is already on disk at this point.
func (s Service) recordHistory(ctx context.Context, record *svlottery.MultiDrawRecord) {
	if s.qry == nil || record == nil {
		return
	}

	recordedAt := time.Now().Unix()
	for _, draw := range record.Draws {
		arg := db.UpsertDrawParams{
			RecordedAt: recordedAt,
			DrawDate:   record.Date,
			Session:    string(draw.Session),
			AuxLabel:   draw.AuxLabel,
			Colors:     strings.Join(draw.ColorTags, ","),
		}
		if draw.DrawNumber != nil {
			arg.DrawNumber = db.NullInt64(int64(*draw.DrawNumber))
		}
		if draw.Value != nil {
			arg.Value = db.NullInt64(int64(*draw.Value))
		}

		err := s.qry.UpsertDraw(ctx, arg)
		if err != nil {
			slog.WarnContext(ctx, "failed to record draw history", "session", draw.Session, "err", err)
			return
		}
	}

	err := s.qry.PruneDraws(ctx, historyKeep)
	if err != nil {
		slog.WarnContext(ctx, "failed to prune draw history", "err", err)
	}
}
