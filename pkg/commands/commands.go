package commands

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"tableflip.dev/moodbubbles/pkg/app"
	"tableflip.dev/moodbubbles/pkg/commands/options"
	"tableflip.dev/moodbubbles/pkg/journal"
	"tableflip.dev/moodbubbles/pkg/logging"
	"tableflip.dev/moodbubbles/pkg/store"
)

var logLevel string

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "mood",
		Short: options.Wrap80("A fruit for every day: keep a mood journal on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Override the configured log level (debug, info, warn, error).")

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addSet(topLevel)
	addGet(topLevel)
	addToday(topLevel)
	addMonth(topLevel)
	addBrowse(topLevel)
	addStats(topLevel)
	addCatalog(topLevel)
	addClear(topLevel)
	addInfo(topLevel)
	addVersion(topLevel)
	addUpgrade(topLevel)
	addCompletions(topLevel)
}

// journalEnv is what a command needs to talk to the journal on disk.
type journalEnv struct {
	Config  store.Config
	Log     *logrus.Logger
	Disk    *store.Disk
	Service *app.Service
}

func loadJournal() (*journalEnv, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	level := cfg.LogLevel()
	if logLevel != "" {
		level = logLevel
	}
	log, err := logging.New(level, cfg.LogFormat(), os.Stderr)
	if err != nil {
		return nil, err
	}
	disk, err := store.Load(cfg)
	if err != nil {
		return nil, err
	}
	log.WithField("path", disk.BasePath()).Debug("journal opened")

	records := journal.New(disk, journal.WithLogger(log))
	return &journalEnv{
		Config:  cfg,
		Log:     log,
		Disk:    disk,
		Service: &app.Service{Records: records},
	}, nil
}
