// Command kkll drives a singly linked list from the command line.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"kk_linked_lists/config"
	"kk_linked_lists/logging"
	"kk_linked_lists/script"
	"kk_linked_lists/single"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type cli struct {
	configPath string
	verbose    bool
	jsonLogs   bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "kkll",
		Short: "Exercise a singly linked list",
		Long: `kkll builds singly linked lists and runs append, insert, reverse and
print against them. Diagnostics are written one per line to stdout.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd.OutOrStdout())
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
	}
	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "kkll.yaml", "config file")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "log at debug level")
	root.PersistentFlags().BoolVar(&c.jsonLogs, "json", false, "write diagnostics as JSON")

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Build, print and reverse the sample lists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDemo(cmd.OutOrStdout())
		},
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run the operation script from the config file",
		Long: `Runs each step of the config's script against a fresh list. Steps the
list refuses, such as an insert at a negative position, are reported and
the run continues.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runScript(cmd.OutOrStdout())
		},
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default config to the --config path",
		Args:  cobra.NoArgs,
		// The file being replaced may not parse, so skip loading it.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.writeDefaultConfig(cmd.OutOrStdout(), force)
		},
	}
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing config file")

	root.AddCommand(demoCmd, runCmd, initCmd)
	return root
}

func (c *cli) setup(out io.Writer) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	if c.verbose {
		cfg.Logging.Level = "debug"
	}
	if c.jsonLogs {
		cfg.Logging.Format = logging.FormatJSON
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: out,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	c.cfg = cfg
	c.logger = logger
	return nil
}

func (c *cli) runDemo(out io.Writer) error {
	fmt.Fprintln(out, "--- Initializing List ---")
	l := single.New[int](single.WithLogger(c.logger))
	for _, v := range []int{10, 20, 30, 40, 50} {
		l.Append(v)
	}
	l.PrintList()

	fmt.Fprintln(out, "\n--- Reversing List ---")
	if err := l.Reverse(); err != nil {
		return err
	}
	l.PrintList()

	a := single.NewNode("A", nil)
	custom := single.NewFrom(a, a, single.WithLogger(c.logger))
	custom.Append("B")
	custom.Append("C")
	if err := custom.Reverse(); err != nil {
		return err
	}
	fmt.Fprintln(out, "\n--- Custom List ---")
	custom.PrintList()
	return nil
}

var (
	errNoScript     = errors.New("config has no script")
	errConfigExists = errors.New("config file already exists")
)

func (c *cli) writeDefaultConfig(out io.Writer, force bool) error {
	if _, err := os.Stat(c.configPath); err == nil && !force {
		return fmt.Errorf("%s: %w (use --force to overwrite)", c.configPath, errConfigExists)
	}
	if err := config.DefaultConfig().Save(c.configPath); err != nil {
		return err
	}
	fmt.Fprintf(out, "wrote %s\n", c.configPath)
	return nil
}

func (c *cli) runScript(out io.Writer) error {
	if len(c.cfg.Script) == 0 {
		return fmt.Errorf("%s: %w", c.configPath, errNoScript)
	}

	l := single.New[any](single.WithLogger(c.logger))
	res := script.Run(l, c.cfg.Script)
	c.logger.Debug("script finished",
		zap.Int("steps", len(c.cfg.Script)),
		zap.Int("refused", len(res.Errors)))
	if len(res.Errors) > 0 {
		fmt.Fprintf(out, "%d of %d steps refused\n", len(res.Errors), len(c.cfg.Script))
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
