package kiosk

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	configlibsql "lotterykiosk-backend/lib/configutil/libsql"
	"lotterykiosk-backend/lib/scrapers/svlottery"
	"lotterykiosk-backend/lib/telemetry"
	"lotterykiosk-backend/services/kiosk/db"
)

const fixturePage = `<html><body>
<h2>Cash Pot</h2>
<p>Tuesday | 17 February 2026</p>
<p>EARLYBIRD 8:30AM #37103 30 Fish + white + white</p>
<p>MORNING 10:30AM #37104 12 Dog + blue</p>
<h2>Lotto</h2>
<p>Saturday | 14 February 2026</p>
<p>7 8 18 31 32 34 + 24</p>
<p>Next Jackpot: $39M</p>
<h2>Super Lotto</h2>
<p>Friday | 13 February 2026</p>
<p>5 9 12 20 28 + 3</p>
</body></html>`

func TestServiceRun(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:services/kiosk")
	defer cleanup()
	ctx := context.Background()

	good := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(fixturePage))
	}))
	defer good.Close()
	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer bad.Close()

	output := filepath.Join(t.TempDir(), "kiosk_results.json")
	sources := map[string]string{
		"cash_pot":    good.URL,
		"lotto":       good.URL,
		"super_lotto": bad.URL,
	}

	service := NewService(svlottery.NewClient(svlottery.ClientOptions{}), nil, sources, output)
	summary, err := service.Run(ctx)
	require.NoError(t, err)

	states := map[string]string{}
	for _, st := range summary.Statuses {
		states[st.Key] = st.State
	}
	require.Equal(t, "ok", states["cash_pot"])
	require.Equal(t, "ok", states["lotto"])
	// one game's fetch failing never disturbs the others
	require.Equal(t, "fetch failed", states["super_lotto"])

	written, err := ReadDocument(output)
	require.NoError(t, err)
	require.NotNil(t, written.Games.CashPot)
	require.NotNil(t, written.Games.Lotto)
	require.Nil(t, written.Games.SuperLotto)
	require.Equal(t, []int{7, 8, 18, 31, 32, 34}, written.Games.Lotto.Numbers)
	require.NotEmpty(t, written.LastUpdatedUtc)
}

func TestServiceRunTotalFetchFailure(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:services/kiosk")
	defer cleanup()
	ctx := context.Background()

	dead := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	dead.Close()

	output := filepath.Join(t.TempDir(), "kiosk_results.json")
	sources := map[string]string{
		"cash_pot":    dead.URL,
		"lotto":       dead.URL,
		"super_lotto": dead.URL,
	}

	service := NewService(svlottery.NewClient(svlottery.ClientOptions{}), nil, sources, output)
	_, err := service.Run(ctx)
	require.Error(t, err)
}

func openTestDB(t *testing.T) *db.Queries {
	database, err := configlibsql.Struct{
		File: filepath.Join(t.TempDir(), "history.db"),
	}.OpenDB(db.Schema)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return db.New(database)
}

func TestRecordHistory(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:services/kiosk")
	defer cleanup()
	ctx := context.Background()

	database, err := configlibsql.Struct{
		File: filepath.Join(t.TempDir(), "history.db"),
	}.OpenDB(db.Schema)
	require.NoError(t, err)
	defer database.Close()

	service := NewService(nil, database, nil, filepath.Join(t.TempDir(), "out.json"))

	value := 30
	drawNumber := 37103
	record := &svlottery.MultiDrawRecord{
		Label: "Cash Pot",
		Date:  "Tuesday | 17 February 2026",
		Draws: []svlottery.DrawEntry{
			{
				Session:    svlottery.SessionEarlybird,
				DrawNumber: &drawNumber,
				Value:      &value,
				AuxLabel:   "Fish",
				ColorTags:  []string{"white", "white"},
			},
			{
				Session: svlottery.SessionEvening,
			},
		},
	}

	service.recordHistory(ctx, record)

	draws, err := db.New(database).ListRecentDraws(ctx, 10)
	require.NoError(t, err)
	require.Len(t, draws, 2)

	// newest first
	require.Equal(t, "EVENING", draws[0].Session)
	require.False(t, draws[0].Value.Valid)
	require.Equal(t, "EARLYBIRD", draws[1].Session)
	require.True(t, draws[1].Value.Valid)
	require.EqualValues(t, 30, draws[1].Value.Int64)
	require.Equal(t, "Fish", draws[1].AuxLabel)
	require.Equal(t, "white,white", draws[1].Colors)

	// re-recording the same date/session pair must not duplicate rows
	service.recordHistory(ctx, record)
	draws, err = db.New(database).ListRecentDraws(ctx, 10)
	require.NoError(t, err)
	require.Len(t, draws, 2)
}

func TestPruneDraws(t *testing.T) {
	qry := openTestDB(t)
	ctx := context.Background()

	for i := 0; i < 20; i++ {
		err := qry.UpsertDraw(ctx, db.UpsertDrawParams{
			RecordedAt: int64(i),
			DrawDate:   "Tuesday | 17 February 2026",
			Session:    string(svlottery.CanonicalSessions[i%len(svlottery.CanonicalSessions)]),
			Value:      db.NullInt64(int64(i)),
		})
		require.NoError(t, err)
	}

	// upserts collapse to one row per date/session pair
	draws, err := qry.ListRecentDraws(ctx, 100)
	require.NoError(t, err)
	require.Len(t, draws, len(svlottery.CanonicalSessions))

	err = qry.PruneDraws(ctx, 3)
	require.NoError(t, err)

	draws, err = qry.ListRecentDraws(ctx, 100)
	require.NoError(t, err)
	require.Len(t, draws, 3)
}
