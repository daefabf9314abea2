package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/flowcanvas/flowcanvas/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output         string   // output file path (or base path for multiple formats)
	formats        []string // output formats: svg, png, pdf, dot, graph, json
	scale          float64  // raster scale factor for PNG
	tooltips       bool     // embed hover tooltips in SVG output
	detailed       bool     // DOT nodes carry line ranges
	fontFamily     string   // CSS font family for SVG text
	background     string   // background color, empty for transparent
	settingsPath   string   // TOML settings file overriding the defaults
	hideComments   bool     // collapse side comments to placeholders
	hideDocstrings bool     // collapse docstrings to badges
	noCache        bool     // disable the pipeline cache
	refresh        bool     // bypass cached trees and layouts
	redisAddr      string   // shared Redis cache address
}

// renderCommand creates the render command for generating diagram artifacts.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{scale: pipeline.DefaultScale}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a parsed flow tree to a diagram",
		Long: `Render reads a parsed control-flow tree (JSON) and produces diagram
artifacts. Formats: svg (default), png, pdf, dot, graph, json (geometry and
interaction targets).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			return c.runRender(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, dot, graph, json (comma-separated)")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "raster scale factor for PNG output")
	cmd.Flags().BoolVar(&opts.tooltips, "tooltips", false, "embed hover tooltips in SVG output")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "include line ranges in DOT output")
	cmd.Flags().StringVar(&opts.fontFamily, "font-family", "", "font family for SVG text")
	cmd.Flags().StringVar(&opts.background, "background", "", "background color (e.g. #ffffff), empty for transparent")
	cmd.Flags().StringVar(&opts.settingsPath, "settings", "", "TOML settings file overriding the default appearance")
	cmd.Flags().BoolVar(&opts.hideComments, "hide-comments", false, "collapse side comments to placeholders")
	cmd.Flags().BoolVar(&opts.hideDocstrings, "hide-docstrings", false, "collapse docstrings to badges")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the pipeline cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompute cached trees and layouts")
	cmd.Flags().StringVar(&opts.redisAddr, "redis", "", "shared Redis cache address (host:port)")

	return cmd
}

// runRender executes the pipeline for the input file and writes the artifacts.
func (c *CLI) runRender(cmd *cobra.Command, input string, opts *renderOpts) error {
	settings, err := LoadSettings(opts.settingsPath)
	if err != nil {
		return err
	}
	settings.HideComments = settings.HideComments || opts.hideComments
	settings.HideDocstrings = settings.HideDocstrings || opts.hideDocstrings

	runner, err := c.newRunner(cmd, opts.noCache, opts.redisAddr)
	if err != nil {
		return err
	}
	defer runner.Close()

	spin := newSpinner(fmt.Sprintf("Rendering %s", input))
	result, err := runner.Execute(cmd.Context(), pipeline.Options{
		Path:       input,
		Refresh:    opts.refresh,
		Settings:   settings,
		Formats:    opts.formats,
		Scale:      opts.scale,
		Tooltips:   opts.tooltips,
		Detailed:   opts.detailed,
		FontFamily: opts.fontFamily,
		Background: opts.background,
		Logger:     c.Logger,
	})
	spin.Stop()
	if err != nil {
		printError("Render failed: %v", err)
		return err
	}

	printSuccess("Rendered %s (%.0fx%.0f)", input, result.Layout.Width, result.Layout.Height)
	printStats(result.Stats.ScopeCount, len(result.Layout.Targets), result.CacheInfo.RenderHit)

	base := basePath(opts.output, input)
	for _, format := range opts.formats {
		path := opts.output
		if path == "" || len(opts.formats) > 1 {
			path = base + "." + format
		}
		if err := os.WriteFile(path, result.Artifacts[format], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}
	return nil
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input. If output carries a
// known format extension, that extension is stripped so multiple formats can
// share the base.
func basePath(output, input string) string {
	if output == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		// Parsed trees conventionally end in .flow.json; strip both parts.
		return strings.TrimSuffix(base, ".flow")
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}
