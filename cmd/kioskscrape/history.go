package main

import (
	"fmt"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"lotterykiosk-backend/lib/serviceutil"
	"lotterykiosk-backend/lib/telemetry"
	kioskdb "lotterykiosk-backend/services/kiosk/db"
)

var historyLimit int64

func init() {
	historyCmd.Flags().Int64Var(&historyLimit, "limit", 50, "maximum rows to print")
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Prints the rolling cash pot draw history.",
	Run: func(cmd *cobra.Command, args []string) {
		telemetry.InitSlog(verbose)

		cfg := readConfig()
		database := openDatabase(cfg)
		if database == nil {
			serviceutil.Fatal("no database configured", fmt.Errorf("set database.file in %s", configPath))
		}
		defer database.Close()

		qry := kioskdb.New(database)
		draws, err := qry.ListRecentDraws(cmd.Context(), historyLimit)
		if err != nil {
			serviceutil.Fatal("failed to list draw history", err)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Recorded", "Date", "Session", "Draw #", "Value", "Label", "Colors"})
		for _, d := range draws {
			drawNumber := ""
			if d.DrawNumber.Valid {
				drawNumber = fmt.Sprintf("#%d", d.DrawNumber.Int64)
			}
			value := "--"
			if d.Value.Valid {
				value = fmt.Sprintf("%d", d.Value.Int64)
			}
			t.AppendRow(table.Row{
				time.Unix(d.RecordedAt, 0).Format(time.ANSIC),
				d.DrawDate,
				d.Session,
				drawNumber,
				value,
				d.AuxLabel,
				d.Colors,
			})
		}
		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}
