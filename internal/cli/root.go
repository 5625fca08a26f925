package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/lucrnz/durstr"
	"github.com/lucrnz/durstr/internal/config"
	"github.com/lucrnz/durstr/internal/logging"
	"github.com/lucrnz/durstr/internal/version"
)

var (
	configPath string
	ignoreCase bool
	unitSpecs  []string
	logLevel   string
	logFormat  string
	quiet      bool
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "durstr",
		Short: "Parse human-readable durations",
		Long: `durstr

Parses human-readable durations such as "1hr 2min 3sec" or
"12 minutes, 21 seconds" and prints them in machine-friendly forms.

Custom units can be defined with --unit or in the config file
($XDG_CONFIG_HOME/durstr/config.toml).
`,
		Version:           version.Print(),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setupLogging,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", config.DefaultConfigPath(), "Path to the TOML config file (missing file is ignored)")
	pf.BoolVarP(&ignoreCase, "ignore-case", "i", false, "Match unit aliases case-insensitively")
	pf.StringArrayVarP(&unitSpecs, "unit", "u", nil, "Define a unit as \"alias[,alias...]=DURATION\", e.g. \"d,day,days=24h\". Can be specified multiple times.")
	pf.StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&logFormat, "log-format", "text", "Log format: text or json")
	pf.BoolVarP(&quiet, "quiet", "q", false, "Only log errors")

	// Show usage only when there's a flag parsing error
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		_ = cmd.Usage()
		return err
	})

	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newUnitsCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// ExecuteContext runs the root command with ctx, which carries cancellation
// from signal handling.
func ExecuteContext(ctx context.Context, args []string) error {
	rootCmd := newRootCmd()
	if args != nil {
		rootCmd.SetArgs(args)
	}
	return rootCmd.ExecuteContext(ctx)
}

func setupLogging(cmd *cobra.Command, _ []string) error {
	logger, err := logging.New(logging.Options{
		Writer: cmd.ErrOrStderr(),
		Level:  logLevel,
		Format: logFormat,
		Quiet:  quiet,
	})
	if err != nil {
		return fmt.Errorf("invalid logging flags: %w", err)
	}
	cmd.SetContext(logging.WithContext(cmd.Context(), logger))
	return nil
}

// buildParser merges the config file, --ignore-case and --unit flags into a
// parser. Flags win over the file when explicitly set.
func buildParser(cmd *cobra.Command) (*durstr.Parser, error) {
	logger := logging.FromContext(cmd.Context())

	fileCfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	opts, err := fileCfg.Options()
	if err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", configPath, err)
	}
	logger.Debug("config_loaded", "path", configPath, "units", len(fileCfg.Units))

	if cmd.Flags().Changed("ignore-case") || fileCfg.Parser.IgnoreCase == nil {
		opts.IgnoreCase = ignoreCase
	}

	for _, spec := range unitSpecs {
		aliases, value, err := parseUnitSpec(spec)
		if err != nil {
			return nil, fmt.Errorf("invalid --unit %q: %w", spec, err)
		}
		if err := opts.Units.AddUnit(value, aliases...); err != nil {
			return nil, fmt.Errorf("invalid --unit %q: %w", spec, err)
		}
	}

	return durstr.New(opts), nil
}

// parseUnitSpec splits "d,day,days=24 hours". The value uses the built-in
// units only, so a definition never depends on flag order.
func parseUnitSpec(spec string) ([]string, time.Duration, error) {
	names, value, ok := strings.Cut(spec, "=")
	if !ok {
		return nil, 0, fmt.Errorf("expected \"alias=DURATION\"")
	}
	var aliases []string
	for _, a := range strings.Split(names, ",") {
		if a = strings.TrimSpace(a); a != "" {
			aliases = append(aliases, a)
		}
	}
	if len(aliases) == 0 {
		return nil, 0, fmt.Errorf("no alias given")
	}
	d, err := durstr.Parse(value)
	if err != nil {
		return nil, 0, err
	}
	return aliases, d, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "durstr", version.Print())
			return err
		},
	}
}
