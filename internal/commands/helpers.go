package commands

import (
	"fmt"
	"os"

	"github.com/mkunkel/tix/internal/config"
	"github.com/mkunkel/tix/internal/jira"
	"github.com/mkunkel/tix/internal/logger"
	"github.com/mkunkel/tix/internal/markup"
	"github.com/mkunkel/tix/internal/stats"
	"github.com/mkunkel/tix/internal/styles"
)

// env bundles everything a command needs: config, tracker client, logger,
// and the usage bookkeeping that is flushed on finish.
type env struct {
	cfg     *config.Config
	client  *jira.Client
	log     *logger.Logger
	stats   *stats.Stats
	cleanup func()
}

// setup loads config and stats, builds the client handle, and records the
// command invocation. Exits with a styled message when the tool is not
// configured.
func setup(command string) *env {
	cfg, err := config.Load()
	if err == nil {
		// A missing config file loads as defaults; those are unusable
		// until the tracker is configured.
		err = cfg.Validate()
	}
	if err != nil {
		fmt.Println(styles.ErrorStyle.Render("✗ Error loading config: " + err.Error()))
		fmt.Println(styles.DimStyle.Render("Edit " + config.ConfigPath() + " to configure tix"))
		os.Exit(1)
	}

	e := &env{
		cfg:     cfg,
		client:  jira.NewClient(cfg.BaseURL, cfg.Email, cfg.APIToken),
		log:     logger.Discard(),
		cleanup: func() {},
	}

	if cfg.LogFile != "" {
		if l, cleanup, err := logger.NewFileLogger(cfg.LogFile); err == nil {
			e.log = l
			e.cleanup = cleanup
		}
	}
	e.log.ConfigLoaded(cfg.BaseURL, cfg.ProjectKey)

	st, err := stats.Load(config.StatsFilePath())
	if err != nil {
		e.log.StatsError("load", err)
		st = stats.NewStats()
	}
	st.Record(command)
	e.stats = st

	return e
}

// finish flushes usage stats and closes the log file
func (e *env) finish() {
	if err := e.stats.Save(config.StatsFilePath()); err != nil {
		e.log.StatsError("save", err)
	}
	e.cleanup()
}

// converter returns the markup converter wired to this tracker
func (e *env) converter() markup.Converter {
	return markup.Converter{
		ProjectKey: e.cfg.ProjectKey,
		BaseURL:    e.cfg.BaseURL,
	}
}

// fail prints a styled error and exits
func fail(msg string, err error) {
	if err != nil {
		msg = msg + ": " + err.Error()
	}
	fmt.Println(styles.ErrorStyle.Render("✗ " + msg))
	os.Exit(1)
}

// flagValue extracts "--name value" style flags from args, returning the
// value and the remaining args
func flagValue(args []string, name string) (string, []string) {
	for i, arg := range args {
		if arg == name && i+1 < len(args) {
			rest := append(append([]string{}, args[:i]...), args[i+2:]...)
			return args[i+1], rest
		}
	}
	return "", args
}
