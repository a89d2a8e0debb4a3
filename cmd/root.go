package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"txtpad/internal/config"
	"txtpad/internal/logx"
	"txtpad/internal/store"
	"txtpad/internal/tui"
)

const Version = "0.1.0"

var (
	flags = struct {
		ConfigFile string
		Directory  string
		Verbose    int
		NoColor    bool
		NoWatch    bool
	}{}

	root = &cobra.Command{
		Use:           "txtpad [name]",
		Short:         "txtpad is a terminal notepad that keeps your notes in a directory",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runEdit,
	}

	editCmd = &cobra.Command{
		Use:   "edit [name]",
		Short: "Open the editor, optionally loading a stored file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runEdit,
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "txtpad", Version)
		},
	}
)

func init() {
	pf := root.PersistentFlags()
	pf.StringVarP(&flags.ConfigFile, "config", "c", "", "configuration file (default $XDG_CONFIG_HOME/txtpad/config.yaml)")
	pf.StringVarP(&flags.Directory, "dir", "d", "", "directory holding the notes (overrides config)")
	pf.CountVarP(&flags.Verbose, "verbose", "v", "log verbosity (-v info, -vv debug)")
	pf.BoolVar(&flags.NoColor, "no-color", false, "disable colors")
	editCmd.Flags().BoolVar(&flags.NoWatch, "no-watch", false, "do not watch the notes directory for changes")

	root.AddCommand(editCmd, lsCmd, catCmd, writeCmd, versionCmd)
}

// env is what every command needs: resolved config, storage and logger.
type env struct {
	cfg   *config.Config
	store *store.Dir
	log   *logx.Logger
}

func setup() (*env, error) {
	cfg, err := config.Load(flags.ConfigFile)
	if err != nil {
		return nil, err
	}
	if flags.Directory != "" {
		cfg.Directory = flags.Directory
	}
	if flags.Verbose > cfg.Verbosity {
		cfg.Verbosity = flags.Verbose
	}
	if flags.NoColor {
		cfg.NoColor = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log, err := logx.Open(cfg.LogFile, Version, cfg.Verbosity)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	dir, err := store.NewDir(cfg.Directory)
	if err != nil {
		_ = log.Close()
		return nil, err
	}
	log.Infof("notes directory %s", dir.Directory)
	return &env{cfg: cfg, store: dir, log: log}, nil
}

func runEdit(cmd *cobra.Command, args []string) error {
	e, err := setup()
	if err != nil {
		return err
	}
	defer e.log.Close()

	var open string
	if len(args) > 0 {
		open = args[0]
	}
	return tui.Run(tui.Options{
		Storage: e.store,
		Dir:     e.store.Directory,
		Watch:   e.cfg.Watch && !flags.NoWatch,
		NoColor: e.cfg.NoColor,
		Open:    open,
		Logf:    e.log.Debugf,
		Errorf:  e.log.Printf,
	})
}

func Execute() {
	err := root.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
