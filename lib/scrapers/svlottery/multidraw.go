package svlottery

import (
	"regexp"
	"strconv"
	"strings"
)

// how far past a session label to look for that session's fields
const sessionLookahead = 90

var clockTimeRe = regexp.MustCompile(`(?i)\b\d{1,2}:\d{2}\s*(?:AM|PM)\b`)
var pureNumberRe = regexp.MustCompile(`^\d{1,2}$`)

// placeholders the site uses for draws that have not happened yet
var unknownMarkers = map[string]bool{
	"--":  true,
	"-":   true,
	"?":   true,
	"N/A": true,
	"TBD": true,
}

// ExtractMultiDraw parses a Cash Pot-like section into one DrawEntry
// per session label found. Each session's fields are read from a
// bounded window following its label, cut short at the next session
// label so one session never swallows another's numbers.
//
// Latest is the entry of the last session in canonical order holding
// a confirmed value. Textual order is deliberately ignored: pages
// reorder session rows, the day's draw order does not change.
func ExtractMultiDraw(section, label string) Result[MultiDrawRecord] {
	folded := strings.ToUpper(section)

	record := MultiDrawRecord{Label: label}
	if loc := drawDateRe.FindStringIndex(section); loc != nil {
		record.Date = section[loc[0]:loc[1]]
	}

	type occurrence struct {
		session    Session
		start, end int
	}
	var occs []occurrence
	var allStarts []int
	for _, s := range CanonicalSessions {
		idx, length := findSession(folded, s)
		if idx < 0 {
			continue
		}
		occs = append(occs, occurrence{session: s, start: idx, end: idx + length})
		allStarts = append(allStarts, idx)
	}
	if len(occs) == 0 {
		return Malformed[MultiDrawRecord]("no session labels found")
	}

	for _, o := range occs {
		stop := o.end + sessionLookahead
		if stop > len(section) {
			stop = len(section)
		}
		// never read into the next session's row
		for _, s := range allStarts {
			if s > o.end && s < stop {
				stop = s
			}
		}

		entry, ok := parseDrawWindow(section[o.end:stop])
		if !ok {
			continue
		}
		entry.Session = o.session
		record.Draws = append(record.Draws, entry)
		if entry.Value != nil {
			// occs are in canonical session order already
			latest := entry
			record.Latest = &latest
		}
	}

	if len(record.Draws) == 0 {
		return Malformed[MultiDrawRecord]("session labels present but no draw could be parsed")
	}
	return Found(record)
}

func findSession(folded string, session Session) (int, int) {
	best, bestLen := -1, 0
	for _, alias := range sessionAliases[session] {
		idx := strings.Index(folded, alias)
		if idx >= 0 && (best < 0 || idx < best) {
			best, bestLen = idx, len(alias)
		}
	}
	return best, bestLen
}

// parseDrawWindow scans the text following one session label. It
// reports ok=false when the window holds neither a value nor an
// explicit unknown marker, so a garbled row is dropped instead of
// being confused with a pending draw.
func parseDrawWindow(window string) (DrawEntry, bool) {
	var entry DrawEntry

	if m := clockTimeRe.FindString(window); m != "" {
		entry.ClockTime = strings.ToUpper(strings.Join(strings.Fields(m), ""))
	}

	valueKnown := false
	valueAbsent := false
	auxDone := false

	for _, token := range strings.Fields(window) {
		bare := strings.Trim(token, "+,")
		if bare == "" {
			continue
		}
		upper := strings.ToUpper(bare)

		switch {
		case strings.HasPrefix(bare, "#"):
			n, err := strconv.Atoi(strings.TrimPrefix(bare, "#"))
			if err == nil && entry.DrawNumber == nil {
				entry.DrawNumber = &n
			}
		case upper == "AM" || upper == "PM" || clockTimeRe.MatchString(bare):
			// part of the clock time, already captured
		case unknownMarkers[upper] && !valueKnown:
			valueAbsent = true
		case pureNumberRe.MatchString(bare) && !valueKnown && !valueAbsent:
			n, _ := strconv.Atoi(bare)
			entry.Value = &n
			valueKnown = true
		case isColorTag(upper):
			if len(entry.ColorTags) < 2 {
				entry.ColorTags = append(entry.ColorTags, strings.ToLower(bare))
			}
			auxDone = true
		case valueKnown && !auxDone && isAlphabetic(bare):
			if entry.AuxLabel == "" {
				entry.AuxLabel = bare
			} else if strings.Count(entry.AuxLabel, " ") == 0 {
				entry.AuxLabel += " " + bare
			} else {
				auxDone = true
			}
		}
	}

	if !valueKnown && !valueAbsent {
		return DrawEntry{}, false
	}
	return entry, true
}

func isColorTag(upper string) bool {
	for _, c := range ColorVocab {
		if strings.ToUpper(c) == upper {
			return true
		}
	}
	return false
}

func isAlphabetic(s string) bool {
	for _, c := range s {
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return len(s) > 0
}
