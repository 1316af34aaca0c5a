package main

import (
	"database/sql"
	"log/slog"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"lotterykiosk-backend/lib/configutil"
	configlibsql "lotterykiosk-backend/lib/configutil/libsql"
	"lotterykiosk-backend/lib/restyutil"
	"lotterykiosk-backend/lib/scrapers/svlottery"
	"lotterykiosk-backend/lib/serviceutil"
	"lotterykiosk-backend/lib/telemetry"
	"lotterykiosk-backend/services/kiosk"
	kioskdb "lotterykiosk-backend/services/kiosk/db"
)

type Config struct {
	// path of the snapshot the kiosk reads
	Output string `json:"output"`
	// per-game overrides, game key -> url; every game defaults to
	// the combined winning-numbers page
	Sources map[string]string `json:"sources"`
	// optional rolling draw history
	Database      configlibsql.Struct `json:"database"`
	UserAgent     string              `json:"user_agent"`
	RestyDebugDir string              `json:"resty_debug_dir"`
}

var verbose bool
var configPath string

var rootCmd = &cobra.Command{
	Use:   "kioskscrape",
	Short: "Fetches the winning-numbers pages and writes the kiosk snapshot.",
	Run:   runScrape,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.json5", "path of the config file")
	rootCmd.AddCommand(historyCmd)
}

func readConfig() Config {
	cfg, err := configutil.ReadConfig[Config](configPath)
	if os.IsNotExist(err) {
		slog.Info("no config file found, running with defaults", "path", configPath)
		return Config{}
	}
	if err != nil {
		serviceutil.Fatal("failed to read config", err)
	}
	return cfg
}

func openDatabase(cfg Config) *sql.DB {
	if cfg.Database.File == "" && cfg.Database.Url == "" {
		return nil
	}
	database, err := cfg.Database.OpenDB(kioskdb.Schema)
	if err != nil {
		serviceutil.Fatal("failed to open database", err)
	}
	return database
}

func runScrape(cmd *cobra.Command, args []string) {
	telemetry.InitSlog(verbose)
	ctx := serviceutil.SignalContext()
	shutdown := initTelemetry(ctx, "kioskscrape")
	defer shutdown()

	cfg := readConfig()

	client := svlottery.NewClient(svlottery.ClientOptions{UserAgent: cfg.UserAgent})
	if verbose && cfg.RestyDebugDir != "" {
		client.SetRestyInstrumentOutput(restyutil.NewFilesystemOutput(cfg.RestyDebugDir))
	}

	database := openDatabase(cfg)
	if database != nil {
		defer database.Close()
	}

	service := kiosk.NewService(client, database, cfg.Sources, cfg.Output)
	summary, err := service.Run(ctx)
	if err != nil {
		serviceutil.Fatal("scrape failed", err)
	}

	renderSummary(summary)
}

func renderSummary(summary kiosk.RunSummary) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Game", "Status", "Detail"})
	for _, st := range summary.Statuses {
		t.AppendRow(table.Row{st.Key, st.State, st.Detail})
	}
	t.SetStyle(table.StyleRounded)
	t.Render()
}

func main() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
