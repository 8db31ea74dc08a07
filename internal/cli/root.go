package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/alem0lars-svcuser/fizzy/internal/build"
	"github.com/alem0lars-svcuser/fizzy/internal/config"
	clierrors "github.com/alem0lars-svcuser/fizzy/internal/errors"
	"github.com/alem0lars-svcuser/fizzy/internal/logger"
)

// rootFlags holds the values bound to the persistent flags.
type rootFlags struct {
	cfg      string
	simulate bool
	verbose  int
}

// app carries what a command tree needs from the process.
type app struct {
	stdout io.Writer
	stderr io.Writer
	// initLogger installs the process-wide logger (logger.Init outside tests).
	initLogger func(w io.Writer, verbosity uint64) (*logger.Logger, error)
	// defaultBasePath overrides the conventional config base path.
	defaultBasePath string
	// resolveCfgPath makes --cfg absolute (resolvePath when nil).
	resolveCfgPath func(string) (string, error)
	flags           rootFlags
}

func newApp() *app {
	return &app{
		stdout:     os.Stdout,
		stderr:     os.Stderr,
		initLogger: logger.Init,
	}
}

// flagAliases maps the long-form aliases onto their canonical flag names.
var flagAliases = map[string]string{
	"config":        "cfg",
	"configuration": "cfg",
	"dry-run":       "simulate",
	"verbosity":     "verbose",
}

func normalizeFlagName(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	if canonical, ok := flagAliases[name]; ok {
		name = canonical
	}
	return pflag.NormalizedName(name)
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fizzy",
		Short: "Resolve fizzy's layered configuration",
		Long: `fizzy resolves its configuration from four layers.

Configuration is loaded with the following priority (highest to lowest):
  1. Command-line flags (--cfg, --simulate, --verbose)
  2. Environment variables (FIZZY_CFG, FIZZY_VERBOSITY, FIZZY_SIMULATE)
  3. Config file (~/.config/fizzy/config.json|.toml|.yaml|.yml)
  4. Built-in defaults

Exit codes:
  0 - Success
  1 - Internal error
  3 - Invalid arguments (e.g. --cfg names a missing file)`,
		Example: `  # Run with debug logging
  fizzy -vv

  # Use a custom configuration file in simulation mode
  fizzy --cfg ./fizzy.toml --simulate

  # Inspect where each value came from
  fizzy config show`,
		Version:           build.Version,
		Args:              noArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.validateFlags,
		RunE:              a.runRoot,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&a.flags.cfg, "cfg", "c", "", "Sets a custom configuration file (aliases: --config, --configuration)")
	pf.BoolVarP(&a.flags.simulate, "simulate", "s", false, "Dry run in simulation mode, system will be untouched (alias: --dry-run)")
	pf.CountVarP(&a.flags.verbose, "verbose", "v", "Sets the level of verbosity, repeat for more (alias: --verbosity)")
	cmd.SetGlobalNormalizationFunc(normalizeFlagName)

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return clierrors.InvalidFlag(err)
	})
	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)
	cmd.SetVersionTemplate(build.Info())

	cmd.AddCommand(newConfigCmd(a), newVersionCmd())
	return cmd
}

// Execute runs the fizzy command tree against os.Args and prints any error.
func Execute() error {
	a := newApp()
	err := newRootCmd(a).Execute()
	if err != nil {
		cliErr := clierrors.AsCLIError(err)
		if cliErr == nil {
			cliErr = clierrors.Wrap(err, clierrors.Runtime)
		}
		clierrors.FprintError(a.stderr, cliErr)
	}
	return err
}

func noArgs(_ *cobra.Command, args []string) error {
	if len(args) > 0 {
		return clierrors.NewArgumentErrorWithUsage(
			fmt.Sprintf("unexpected argument %q", args[0]),
			"fizzy [flags] | fizzy <command> [flags]",
			"Run 'fizzy --help' to see available commands",
		)
	}
	return nil
}

// validateFlags rejects a negative --verbose count and a --cfg path that
// is not an existing file, before any configuration layer is read.
func (a *app) validateFlags(cmd *cobra.Command, _ []string) error {
	if a.flags.verbose < 0 {
		return clierrors.InvalidFlag(fmt.Errorf("--verbose must not be negative, got %d", a.flags.verbose))
	}
	if !cmd.Flags().Changed("cfg") {
		return nil
	}
	if err := config.ValidateCfgFile(a.flags.cfg); err != nil {
		return clierrors.InvalidCfgFile(a.flags.cfg, err)
	}
	return nil
}

// cliLayer builds the CLI layer from the flags the user actually passed.
// Omitted flags express no opinion, so lower layers can still supply them.
func (a *app) cliLayer(cmd *cobra.Command) (config.RawLayer, error) {
	var layer config.RawLayer
	flags := cmd.Flags()

	if flags.Changed("cfg") {
		resolve := a.resolveCfgPath
		if resolve == nil {
			resolve = resolvePath
		}
		path, err := resolve(a.flags.cfg)
		if err != nil {
			return layer, clierrors.WrapWithMessage(err, clierrors.Argument, "resolving --cfg path")
		}
		layer.CfgFilePath = config.Some(path)
	}
	if flags.Changed("verbose") {
		layer.VerbosityLevel = config.Some(uint64(a.flags.verbose))
	}
	if flags.Changed("simulate") {
		layer.Simulate = config.Some(a.flags.simulate)
	}
	return layer, nil
}

// resolve builds the effective configuration, then initializes the
// process-wide logger at the resolved verbosity. Layer diagnostics emitted
// before that point go through the bootstrap logger.
func (a *app) resolve(cmd *cobra.Command) (config.EffectiveConfig, *logger.Logger, error) {
	cliLayer, err := a.cliLayer(cmd)
	if err != nil {
		return config.EffectiveConfig{}, nil, err
	}

	cfg := config.Load(config.LoadOptions{
		CLI:             cliLayer,
		DefaultBasePath: a.defaultBasePath,
		Logger:          logger.Bootstrap(a.stderr),
	})

	log, err := a.initLogger(a.stderr, cfg.VerbosityLevel)
	if err != nil {
		return cfg, nil, clierrors.LoggerInitFailed(err)
	}
	log.Debug().Msg("Logger initialized")
	log.Debug().EmbedObject(cfg).Msg("Resolved configuration")
	return cfg, log, nil
}

func (a *app) runRoot(cmd *cobra.Command, _ []string) error {
	cfg, log, err := a.resolve(cmd)
	if err != nil {
		return err
	}
	if cfg.Simulate {
		log.Info().Msg("Simulation mode: the system will be left untouched")
	}
	return nil
}
