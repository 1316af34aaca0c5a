package kiosk

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"lotterykiosk-backend/lib/scrapers/svlottery"
)

// ResultDocument is the snapshot the kiosk reads. It is rebuilt from
// scratch on every run; a game that could not be fetched or parsed is
// an explicit null, never a stale or partial record.
type ResultDocument struct {
	Source         map[string]string `json:"source"`
	LastUpdatedUtc string            `json:"last_updated_utc"`
	Games          GameRecords       `json:"games"`
}

type GameRecords struct {
	CashPot    *svlottery.MultiDrawRecord  `json:"cash_pot"`
	Lotto      *svlottery.SingleDrawRecord `json:"lotto"`
	SuperLotto *svlottery.SingleDrawRecord `json:"super_lotto"`
}

// BuildDocument merges per-game extraction outcomes into one document
// stamped with the run time (not the draws' own dates).
func BuildDocument(sources map[string]string, now time.Time, extractions []svlottery.GameExtraction) ResultDocument {
	doc := ResultDocument{
		Source:         sources,
		LastUpdatedUtc: now.UTC().Format(time.RFC3339),
	}

	for _, ex := range extractions {
		if ex.Status() != svlottery.StatusFound {
			continue
		}
		switch ex.Game.Key {
		case "cash_pot":
			record := ex.Multi.Value
			doc.Games.CashPot = &record
		case "lotto":
			record := ex.Single.Value
			doc.Games.Lotto = &record
		case "super_lotto":
			record := ex.Single.Value
			doc.Games.SuperLotto = &record
		}
	}

	return doc
}

// WriteDocument writes the snapshot with a write-then-rename so the
// kiosk never reads a half-written file.
func WriteDocument(path string, doc ResultDocument) error {
	contents, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".kiosk-*.json")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	_, err = tmp.Write(contents)
	if err != nil {
		tmp.Close()
		return err
	}
	err = tmp.Close()
	if err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}

func ReadDocument(path string) (ResultDocument, error) {
	var doc ResultDocument
	contents, err := os.ReadFile(path)
	if err != nil {
		return doc, err
	}
	err = json.Unmarshal(contents, &doc)
	return doc, err
}
