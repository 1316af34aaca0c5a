package svlottery

// Session identifies one of the fixed time-of-day draws of a
// multi-draw game. The constant order below is the canonical order
// draws happen in during a day.
type Session string

const (
	SessionEarlybird    Session = "EARLYBIRD"
	SessionMorning      Session = "MORNING"
	SessionMidday       Session = "MIDDAY"
	SessionMidafternoon Session = "MIDAFTERNOON"
	SessionDrivetime    Session = "DRIVETIME"
	SessionEvening      Session = "EVENING"
)

// CanonicalSessions is every known session in draw order.
var CanonicalSessions = []Session{
	SessionEarlybird,
	SessionMorning,
	SessionMidday,
	SessionMidafternoon,
	SessionDrivetime,
	SessionEvening,
}

// sites are not consistent about how they spell session labels
var sessionAliases = map[Session][]string{
	SessionEarlybird:    {"EARLYBIRD", "EARLY BIRD"},
	SessionMorning:      {"MORNING"},
	SessionMidday:       {"MIDDAY", "MID DAY"},
	SessionMidafternoon: {"MIDAFTERNOON", "MID-AFTERNOON", "MID AFTERNOON"},
	SessionDrivetime:    {"DRIVETIME", "DRIVE TIME"},
	SessionEvening:      {"EVENING"},
}

// ColorVocab is the closed set of color tags a draw may carry.
var ColorVocab = []string{"white", "black", "red", "blue", "green", "yellow"}

// SingleDrawRecord is the parsed result block of a Lotto-like game.
// Numbers always has exactly the game's arity; a section that yields
// fewer numbers is reported Malformed instead of producing a short
// record.
type SingleDrawRecord struct {
	Label       string `json:"label"`
	Date        string `json:"date"`
	Numbers     []int  `json:"numbers"`
	Bonus       *int   `json:"bonus,omitempty"`
	JackpotText string `json:"jackpot_text,omitempty"`
}

// DrawEntry is one session's draw of a multi-draw game. Value is nil
// when the page explicitly marks the draw as not yet available, which
// is not the same thing as a draw of 0.
type DrawEntry struct {
	Session    Session  `json:"session"`
	ClockTime  string   `json:"clock_time,omitempty"`
	DrawNumber *int     `json:"draw_number,omitempty"`
	Value      *int     `json:"value"`
	AuxLabel   string   `json:"aux_label,omitempty"`
	ColorTags  []string `json:"color_tags,omitempty"`
}

// MultiDrawRecord is the parsed result block of a Cash Pot-like game.
// Latest points at the entry for the last session in canonical order
// that has a confirmed value; it is never a value-absent entry.
type MultiDrawRecord struct {
	Label  string      `json:"label"`
	Date   string      `json:"date,omitempty"`
	Draws  []DrawEntry `json:"draws"`
	Latest *DrawEntry  `json:"latest,omitempty"`
}
