package svlottery

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/antzucaro/matchr"
)

// markers that terminate a game's section no matter what follows them
var boundaryMarkers = []string{"HISTORY", "PAST RESULTS", "HOT NUMBERS"}

// similarity floor for accepting a mangled heading as a match
const headingSimilarity = 0.94

// LocateSection returns the contiguous span of normalized page text
// between `heading` and the next boundary: any of `boundaries` (the
// other game headings), a known history marker, or the end of the
// page. Heading matching is case-insensitive, and a Jaro-Winkler
// fallback tolerates mildly corrupted heading text. An occurrence of
// the heading inside a longer known label (the "Lotto" inside "Super
// Lotto") is never treated as the heading itself.
func LocateSection(pageText, heading string, boundaries []string) Result[string] {
	folded, offsets := foldCase(pageText)
	foldedHeading := strings.ToUpper(heading)

	foldedBounds := make([]string, 0, len(boundaries)+len(boundaryMarkers))
	for _, b := range boundaries {
		foldedBounds = append(foldedBounds, strings.ToUpper(b))
	}
	foldedBounds = append(foldedBounds, boundaryMarkers...)

	start := findHeadingExact(folded, foldedHeading, foldedBounds)
	end := -1
	if start >= 0 {
		end = start + len(foldedHeading)
	} else {
		start, end = findHeadingFuzzy(folded, foldedHeading)
	}
	if start < 0 {
		return NotFound[string]()
	}

	stop := len(folded)
	for _, b := range foldedBounds {
		idx := strings.Index(folded[end:], b)
		if idx >= 0 && end+idx < stop {
			stop = end + idx
		}
	}

	section := strings.TrimSpace(pageText[offsets[end]:offsets[stop]])
	if section == "" {
		return Malformed[string]("heading present but section is empty")
	}
	return Found(section)
}

// foldCase uppercases s for case-insensitive searching and returns a
// table mapping every byte index of the folded text (the end index
// included) back to a byte index of s. Uppercasing can change a rune's
// encoded length, so an index found in the folded text must go through
// the table before it can slice s.
func foldCase(s string) (string, []int) {
	var folded strings.Builder
	folded.Grow(len(s))
	offsets := make([]int, 0, len(s)+1)

	for i, r := range s {
		u := unicode.ToUpper(r)
		for j := 0; j < utf8.RuneLen(u); j++ {
			offsets = append(offsets, i)
		}
		folded.WriteRune(u)
	}
	offsets = append(offsets, len(s))

	return folded.String(), offsets
}

// findHeadingExact finds the first occurrence of heading that is not
// embedded in one of the longer labels in avoid.
func findHeadingExact(folded, heading string, avoid []string) int {
	from := 0
	for {
		idx := strings.Index(folded[from:], heading)
		if idx < 0 {
			return -1
		}
		abs := from + idx
		if !insideLongerLabel(folded, abs, heading, avoid) {
			return abs
		}
		from = abs + len(heading)
	}
}

func insideLongerLabel(folded string, at int, heading string, avoid []string) bool {
	for _, label := range avoid {
		if len(label) <= len(heading) || !strings.Contains(label, heading) {
			continue
		}
		rel := 0
		for {
			o := strings.Index(label[rel:], heading)
			if o < 0 {
				break
			}
			rel += o
			labelStart := at - rel
			if labelStart >= 0 && labelStart+len(label) <= len(folded) &&
				folded[labelStart:labelStart+len(label)] == label {
				return true
			}
			rel += len(heading)
		}
	}
	return false
}

// findHeadingFuzzy slides a window of as many words as the heading
// has across the page and accepts the first window similar enough to
// the heading.
func findHeadingFuzzy(folded, heading string) (int, int) {
	wordCount := len(strings.Fields(heading))
	if wordCount == 0 {
		return -1, -1
	}

	starts, ends := wordOffsets(folded)
	for i := 0; i+wordCount <= len(starts); i++ {
		window := folded[starts[i]:ends[i+wordCount-1]]
		if len(window) > len(heading)*2 {
			continue
		}
		if matchr.JaroWinkler(window, heading, false) >= headingSimilarity {
			return starts[i], ends[i+wordCount-1]
		}
	}
	return -1, -1
}

func wordOffsets(s string) (starts []int, ends []int) {
	inWord := false
	for i := 0; i < len(s); i++ {
		isSpace := s[i] == ' ' || s[i] == '\t' || s[i] == '\n'
		if !inWord && !isSpace {
			inWord = true
			starts = append(starts, i)
		}
		if inWord && isSpace {
			inWord = false
			ends = append(ends, i)
		}
	}
	if inWord {
		ends = append(ends, len(s))
	}
	return starts, ends
}
