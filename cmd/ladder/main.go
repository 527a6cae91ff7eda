package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/elo-ladder/internal/config"
	"github.com/mauv0809/elo-ladder/internal/database"
	"github.com/mauv0809/elo-ladder/internal/ladder"
	"github.com/mauv0809/elo-ladder/internal/metrics"
	"github.com/mauv0809/elo-ladder/internal/notifier"
	"github.com/mauv0809/elo-ladder/internal/processor"
	"github.com/mauv0809/elo-ladder/internal/slack"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

// app holds what every command needs once the database is open.
type app struct {
	dbPath string
	dryRun bool

	store     ladder.Store
	processor *processor.Processor
	teardown  func()
}

func newRootCmd() (*cobra.Command, *app) {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "ladder",
		Short: "An Elo ladder for 1v1, 2v2 and free-for-all games",
		Long: `Keeps Elo ratings for three independent ladders: 1s (duels),
2s (teams of two) and ffa (three-player free-for-all).`,
		SilenceUsage:      true,
		PersistentPreRunE: a.open,
	}
	rootCmd.PersistentFlags().StringVar(&a.dbPath, "db", "", "Path to the SQLite database (overrides LADDER_DB_NAME)")
	rootCmd.PersistentFlags().BoolVar(&a.dryRun, "dry-run", false, "Record results without posting them to Slack")

	rootCmd.AddCommand(
		newLadderCmd(a),
		newAddCmd(a),
		newMatchCmd(a),
		newFreeForAllCmd(a),
		newTeamCmd(a),
		newOddsCmd(a),
	)
	return rootCmd, a
}

// execute runs the command line in args and closes the database afterwards,
// whether or not the command succeeded.
func execute(args []string, out io.Writer) error {
	rootCmd, a := newRootCmd()
	defer a.close()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(out)
	return rootCmd.Execute()
}

func (a *app) open(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}
	if a.dbPath != "" {
		cfg.DBName = a.dbPath
		cfg.TursoPrimaryURL = ""
	}

	db, teardown, err := database.InitDB(cfg.DBName, cfg.TursoPrimaryURL, cfg.TursoAuthToken)
	if err != nil {
		return fmt.Errorf("failed to open ladder: %w", err)
	}
	a.teardown = teardown

	metricsSvc := metrics.NewService(prometheus.NewRegistry())
	var notif notifier.Notifier
	if cfg.SlackEnabled() {
		notif = slack.NewClient(cfg.SlackToken, cfg.SlackChannelID, metricsSvc)
	}

	a.store = ladder.New(db)
	a.processor = processor.New(a.store, notif, metricsSvc, nil, processor.RetryPolicy{
		MaxAttempts: uint64(cfg.MaxAttempts),
		BaseDelay:   cfg.RetryBase(),
	})
	cmd.SetContext(processor.WithDryRun(cmd.Context(), a.dryRun))
	return nil
}

func (a *app) close() {
	if a.teardown != nil {
		a.teardown()
		a.teardown = nil
	}
}

func main() {
	if err := execute(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Whoops. There was an error while executing your command '%s'\n", err)
		os.Exit(1)
	}
}
