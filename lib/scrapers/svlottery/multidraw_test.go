package svlottery

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractMultiDrawSingleSession(t *testing.T) {
	section := "EARLYBIRD 8:30AM #37103 30 Fish + white + white"

	result := ExtractMultiDraw(section, "Cash Pot")
	require.Equal(t, StatusFound, result.Status)

	record := result.Value
	require.Len(t, record.Draws, 1)

	entry := record.Draws[0]
	require.Equal(t, SessionEarlybird, entry.Session)
	require.Equal(t, "8:30AM", entry.ClockTime)
	require.NotNil(t, entry.DrawNumber)
	require.Equal(t, 37103, *entry.DrawNumber)
	require.NotNil(t, entry.Value)
	require.Equal(t, 30, *entry.Value)
	require.Equal(t, "Fish", entry.AuxLabel)
	require.Equal(t, []string{"white", "white"}, entry.ColorTags)

	require.NotNil(t, record.Latest)
	require.Equal(t, SessionEarlybird, record.Latest.Session)
}

func TestExtractMultiDrawFullDay(t *testing.T) {
	section := "Tuesday | 17 February 2026 " +
		"EARLYBIRD 8:30AM #37103 30 Fish + white + white " +
		"MORNING 10:30AM #37104 12 Dog + blue " +
		"MIDDAY 1:00PM #37105 5 Cat " +
		"MIDAFTERNOON 3:00PM #37106 -- " +
		"DRIVETIME 5:00PM #37107 -- " +
		"EVENING 8:25PM #37108 --"

	result := ExtractMultiDraw(section, "Cash Pot")
	require.Equal(t, StatusFound, result.Status)

	record := result.Value
	require.Contains(t, record.Date, "17 February 2026")
	require.Len(t, record.Draws, 6)

	// pending sessions yield a value-absent entry, not a zero
	for _, entry := range record.Draws[3:] {
		require.Nil(t, entry.Value)
		require.NotNil(t, entry.DrawNumber)
	}

	require.NotNil(t, record.Latest)
	require.Equal(t, SessionMidday, record.Latest.Session)
	require.Equal(t, 5, *record.Latest.Value)
}

// the page reordering its rows must not change what "latest" means:
// it is canonical session order that counts, not textual order
func TestExtractMultiDrawLatestIgnoresTextualOrder(t *testing.T) {
	section := "EVENING 8:25PM -- " +
		"MIDDAY 1:00PM 21 Rat + red " +
		"MORNING 10:30AM 12 Dog"

	result := ExtractMultiDraw(section, "Cash Pot")
	require.Equal(t, StatusFound, result.Status)

	record := result.Value
	require.Len(t, record.Draws, 3)
	require.NotNil(t, record.Latest)
	require.Equal(t, SessionMidday, record.Latest.Session)
	require.Equal(t, 21, *record.Latest.Value)
}

// a session explicitly marked unknown never becomes latest, even when
// it is the only session found
func TestExtractMultiDrawAllPending(t *testing.T) {
	section := "EARLYBIRD 8:30AM --"

	result := ExtractMultiDraw(section, "Cash Pot")
	require.Equal(t, StatusFound, result.Status)
	require.Len(t, result.Value.Draws, 1)
	require.Nil(t, result.Value.Draws[0].Value)
	require.Nil(t, result.Value.Latest)
}

// a row with neither a value nor an unknown marker is a parse
// failure for that session and is dropped entirely
func TestExtractMultiDrawGarbledRowDropped(t *testing.T) {
	section := "EARLYBIRD garbled beyond use MORNING 10:30AM 12 Dog"

	result := ExtractMultiDraw(section, "Cash Pot")
	require.Equal(t, StatusFound, result.Status)
	require.Len(t, result.Value.Draws, 1)
	require.Equal(t, SessionMorning, result.Value.Draws[0].Session)
}

func TestExtractMultiDrawSessionAliases(t *testing.T) {
	section := "EARLY BIRD 8:30AM 9 Horse MID-AFTERNOON 3:00PM 14 Bee"

	result := ExtractMultiDraw(section, "Cash Pot")
	require.Equal(t, StatusFound, result.Status)

	record := result.Value
	require.Len(t, record.Draws, 2)
	require.Equal(t, SessionEarlybird, record.Draws[0].Session)
	require.Equal(t, SessionMidafternoon, record.Draws[1].Session)
	require.Equal(t, SessionMidafternoon, record.Latest.Session)
}

func TestExtractMultiDrawNoSessions(t *testing.T) {
	result := ExtractMultiDraw("nothing that looks like a draw table", "Cash Pot")
	require.Equal(t, StatusMalformed, result.Status)
}
