package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/flowcanvas/flowcanvas/pkg/canvas"
)

// LoadSettings returns the appearance settings for a render run. An empty
// path yields the defaults; otherwise the TOML file at path is decoded on
// top of the defaults, so a file only needs to list the fields it changes.
func LoadSettings(path string) (*canvas.Settings, error) {
	settings := canvas.DefaultSettings()
	if path == "" {
		return settings, nil
	}
	meta, err := toml.DecodeFile(path, settings)
	if err != nil {
		return nil, fmt.Errorf("load settings %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("load settings %s: unknown key %q", path, undecoded[0].String())
	}
	return settings, nil
}

// settingsCommand creates the settings management command.
func (c *CLI) settingsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Inspect and scaffold appearance settings",
	}

	cmd.AddCommand(c.settingsInitCommand())
	cmd.AddCommand(c.settingsCheckCommand())

	return cmd
}

// settingsInitCommand creates the "settings init" subcommand, which writes
// the default settings as a TOML file ready for editing.
func (c *CLI) settingsInitCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default settings as TOML",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := os.Stdout
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				defer f.Close()
				out = f
			}
			if err := toml.NewEncoder(out).Encode(canvas.DefaultSettings()); err != nil {
				return fmt.Errorf("encode settings: %w", err)
			}
			if output != "" {
				printSuccess("Wrote default settings")
				printFile(output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	return cmd
}

// settingsCheckCommand creates the "settings check" subcommand, which loads a
// settings file and reports what it overrides.
func (c *CLI) settingsCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check [file]",
		Short: "Validate a settings file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := LoadSettings(args[0])
			if err != nil {
				printError("Invalid settings: %v", err)
				return err
			}
			printSuccess("Settings OK")
			printDetail("min scope width: %g", settings.MinScopeWidth)
			printDetail("mono font: %gx%g", settings.MonoFont.CharWidth, settings.MonoFont.LineHeight)
			printDetail("scope themes: %d", len(settings.Scopes))
			if settings.HideComments {
				printDetail("side comments collapsed")
			}
			if settings.HideDocstrings {
				printDetail("docstrings collapsed")
			}
			return nil
		},
	}
}
