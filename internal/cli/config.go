package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alem0lars-svcuser/fizzy/internal/config"
	"github.com/alem0lars-svcuser/fizzy/internal/logger"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect fizzy configuration",
		Long: `Inspect fizzy configuration settings.

Configuration is loaded with the following priority (highest to lowest):
  1. Command-line flags
  2. Environment variables (FIZZY_*)
  3. Config file (~/.config/fizzy/config.{json,toml,yaml,yml})
  4. Built-in defaults

When several config files exist for the same base path the first one in
this order is used: .json, .toml, .yaml, .yml`,
		Example: `  # Show the effective configuration and where each value came from
  fizzy config show

  # Show which config files are probed
  fizzy config path

  # Print a commented config file template
  fizzy config template > ~/.config/fizzy/config.yaml`,
	}

	cmd.AddCommand(newConfigShowCmd(a), newConfigPathCmd(a), newConfigTemplateCmd())
	return cmd
}

func newConfigShowCmd(a *app) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration with the source of each value",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, _, err := a.resolve(cmd)
			if err != nil {
				return err
			}
			return writeConfig(cmd.OutOrStdout(), cfg, asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func writeConfig(w io.Writer, cfg config.EffectiveConfig, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(cfg); err != nil {
			return fmt.Errorf("encoding configuration: %w", err)
		}
		return nil
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encoding configuration: %w", err)
	}
	return enc.Close()
}

func newConfigPathCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Show the config file base path and the candidates probed",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cliLayer, err := a.cliLayer(cmd)
			if err != nil {
				return err
			}
			envLayer, errs := config.ReadEnvLayer()
			config.ReportLayerErrors(logger.Bootstrap(a.stderr), errs)

			base, origin := config.FileBasePath(cliLayer, envLayer, a.defaultBasePath)
			writeCandidates(cmd.OutOrStdout(), base, origin)
			return nil
		},
	}
}

func writeCandidates(w io.Writer, base string, origin config.ConfigSource) {
	if base == "" {
		fmt.Fprintln(w, "No config file base path available")
		return
	}

	fmt.Fprintf(w, "Base: %s (%s)\n", base, origin)
	loc, found := config.Locate(base)
	if found && loc.Path == base {
		fmt.Fprintf(w, "Selected: %s\n", base)
		return
	}

	selected := color.New(color.FgGreen).SprintFunc()
	for _, c := range config.Candidates(base) {
		if found && c.Path == loc.Path {
			fmt.Fprintf(w, "  %s %s [%s]\n", selected("*"), c.Path, c.Format.Name)
			continue
		}
		fmt.Fprintf(w, "    %s [%s]\n", c.Path, c.Format.Name)
	}
	if found {
		fmt.Fprintf(w, "Selected: %s\n", loc.Path)
	} else {
		fmt.Fprintln(w, "Selected: none")
	}
}

func newConfigTemplateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "template",
		Short: "Print a commented YAML config file",
		Args:  noArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprint(cmd.OutOrStdout(), config.GetDefaultConfigTemplate())
		},
	}
}
