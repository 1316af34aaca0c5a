package svlottery

import (
	"fmt"
	"regexp"
	"strconv"
)

var drawDateRe = regexp.MustCompile(
	`(?i)\b(Sunday|Monday|Tuesday|Wednesday|Thursday|Friday|Saturday)\s*\|?\s*` +
		`(\d{1,2})\s+(January|February|March|April|May|June|July|August|September|October|November|December)\s+(\d{4})\b`)

var jackpotRe = regexp.MustCompile(
	`(?i)Next\s+Jackpot\s*:?\s*((?:JMD\s*)?\$\s*[\d,.]+\s*(?:[MKB]\b|Million\b|Billion\b)?)`)

var numberTokenRe = regexp.MustCompile(`\b\d{1,2}\b`)

// ExtractSingleDraw parses a Lotto-like section: a draw date, exactly
// mainCount main numbers, an optional trailing bonus number, and the
// advertised next jackpot. Numeric tokens are only taken from between
// the date and the jackpot marker so jackpot digits are never
// mistaken for drawn numbers.
func ExtractSingleDraw(section, label string, mainCount int) Result[SingleDrawRecord] {
	dateLoc := drawDateRe.FindStringIndex(section)
	if dateLoc == nil {
		return Malformed[SingleDrawRecord]("no draw date found")
	}

	record := SingleDrawRecord{
		Label: label,
		Date:  section[dateLoc[0]:dateLoc[1]],
	}

	numberRegion := section[dateLoc[1]:]
	jackpotLoc := jackpotRe.FindStringSubmatchIndex(numberRegion)
	if jackpotLoc != nil {
		record.JackpotText = numberRegion[jackpotLoc[2]:jackpotLoc[3]]
		numberRegion = numberRegion[:jackpotLoc[0]]
	}

	tokens := numberTokenRe.FindAllString(numberRegion, -1)
	if len(tokens) < mainCount {
		return Malformed[SingleDrawRecord](fmt.Sprintf(
			"expected %d main numbers, found %d numeric tokens",
			mainCount, len(tokens),
		))
	}

	numbers := make([]int, mainCount)
	for i := 0; i < mainCount; i++ {
		n, err := strconv.Atoi(tokens[i])
		if err != nil {
			return Malformed[SingleDrawRecord](fmt.Sprintf("bad number token %q", tokens[i]))
		}
		numbers[i] = n
	}
	record.Numbers = numbers

	if len(tokens) > mainCount {
		bonus, err := strconv.Atoi(tokens[mainCount])
		if err == nil {
			record.Bonus = &bonus
		}
	}

	return Found(record)
}
