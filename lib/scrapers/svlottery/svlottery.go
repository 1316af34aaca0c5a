// Package svlottery scrapes the public Supreme Ventures style
// winning-numbers pages.
//
// Scraping here follows the usual shape: fetch a page, flatten it to
// normalized text, isolate the span of text belonging to one game
// (bounded by its heading and the next heading or history marker),
// then pull dates, numbers and labels out of that span. Every
// extractor returns a tagged Result so callers can tell "the section
// is gone" apart from "the section is there but unreadable" without
// ad hoc nil checking.
package svlottery

import (
	"strings"

	"lotterykiosk-backend/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

// GameKind selects which extractor applies to a game's section.
type GameKind int

const (
	// one draw per day, N main numbers plus an optional bonus
	SingleDraw GameKind = iota
	// several draws per day keyed by time-of-day session
	MultiDraw
)

type Game struct {
	// stable key used in output documents and config
	Key string
	// heading text as it appears on the results page
	Label string
	Kind  GameKind
	// number of main numbers for SingleDraw games
	MainNumbers int
}

// Games lists every game the kiosk knows how to extract.
var Games = []Game{
	{Key: "cash_pot", Label: "Cash Pot", Kind: MultiDraw},
	{Key: "lotto", Label: "Lotto", Kind: SingleDraw, MainNumbers: 6},
	{Key: "super_lotto", Label: "Super Lotto", Kind: SingleDraw, MainNumbers: 5},
}

// PageText flattens raw page markup into one normalized line of text.
// Markup that fails to parse as HTML degrades to the raw input, which
// keeps plain-text fixtures working.
func PageText(markup string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return htmlutil.NormalizeSpace(markup)
	}
	return htmlutil.DocumentText(doc)
}

func otherLabels(game Game) []string {
	var labels []string
	for _, g := range Games {
		if g.Key != game.Key {
			labels = append(labels, g.Label)
		}
	}
	return labels
}
