package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/matzehuels/lovewall/pkg/errors"
	"github.com/matzehuels/lovewall/pkg/gallery"
	"github.com/matzehuels/lovewall/pkg/wall/layout"
	"github.com/matzehuels/lovewall/pkg/wall/orbit"
	"github.com/matzehuels/lovewall/pkg/wall/sink"
)

// Plan output formats.
const (
	formatJSON = "json"
	formatCSS  = "css"
	formatSVG  = "svg"
)

// watchDebounce coalesces bursts of file events into one recompute.
const watchDebounce = 250 * time.Millisecond

// wallFlags are shared by commands that build a wall.
type wallFlags struct {
	images string
	preset string
	seed   uint64
}

func (f *wallFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.images, "images", "", "folder of photos to place on the wall")
	cmd.Flags().StringVar(&f.preset, "preset", "", "layout preset: tiered (default), classic")
	cmd.Flags().Uint64Var(&f.seed, "seed", layout.DefaultSeed, "seed for randomized layouts")
}

// planOptions holds the flags of the plan command.
type planOptions struct {
	wallFlags
	format string
	output string
	stats  bool
	watch  bool
	matrix bool
	yaw    float64
	pitch  float64
}

// planCommand creates the plan command for computing wall layouts.
func (c *CLI) planCommand() *cobra.Command {
	var opts planOptions

	cmd := &cobra.Command{
		Use:   "plan [count]",
		Short: "Compute a photo-wall layout",
		Long: `Compute a photo-wall layout for a number of cards, or for a folder of photos.

The layout is exported for the browser renderer as JSON (-f json), as CSS
rules (-f css) that can be pasted next to the photo grid, or as an SVG preview
(-f svg) seen from --yaw and --pitch degrees.

A card count may not exceed the max_images limit of the config. With
--images the photos are decoded first; unreadable files are skipped with
a warning and the collection limits from the config apply. --watch keeps
running and recomputes the layout whenever the folder changes.`,
		Example: `  lovewall plan 15 -f css
  lovewall plan --images ~/Pictures/us -f svg --yaw 30 -o wall.svg
  lovewall plan --images ~/Pictures/us --watch -o wall.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("seed") {
				opts.seed = c.Config.Wall.Seed
			}
			return c.runPlan(cmd.Context(), args, opts)
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatJSON, "output format: json, css, svg")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file, - for stdout (default: wall.<format>)")
	cmd.Flags().BoolVar(&opts.stats, "stats", false, "print spread statistics of the layout")
	cmd.Flags().BoolVar(&opts.watch, "watch", false, "recompute when the --images folder changes")
	cmd.Flags().BoolVar(&opts.matrix, "matrix", false, "emit matrix3d transforms (json, css)")
	cmd.Flags().Float64Var(&opts.yaw, "yaw", 0, "preview yaw in degrees (svg)")
	cmd.Flags().Float64Var(&opts.pitch, "pitch", 0, "preview pitch in degrees (svg)")

	return cmd
}

// runPlan validates the flags, then plans once or keeps replanning on change.
func (c *CLI) runPlan(ctx context.Context, args []string, opts planOptions) error {
	switch opts.format {
	case formatJSON, formatCSS, formatSVG:
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unknown format %q: use json, css or svg", opts.format)
	}
	if opts.output == "" {
		opts.output = "wall." + opts.format
	}
	if opts.watch && opts.images == "" {
		return errors.New(errors.ErrCodeInvalidInput, "--watch needs an --images folder")
	}

	planner, err := c.newPlanner(opts.wallFlags)
	if err != nil {
		return err
	}

	if err := c.planOnce(ctx, planner, args, opts); err != nil {
		return err
	}
	if !opts.watch {
		return nil
	}

	printNewline()
	printInfo("Watching %s for changes (Ctrl+C to stop)", opts.images)
	return watchDir(ctx, opts.images, loggerFromContext(ctx), func() error {
		return c.planOnce(ctx, planner, args, opts)
	})
}

// planOnce builds the wall input, plans it, and writes the export.
func (c *CLI) planOnce(ctx context.Context, planner *layout.Planner, args []string, opts planOptions) error {
	logger := loggerFromContext(ctx)

	in, err := c.wallInput(ctx, args, opts.images)
	if err != nil {
		if advise(err) {
			return nil
		}
		return err
	}

	prog := newProgress(logger)
	plan, err := planner.Plan(in.count)
	if err != nil {
		return fmt.Errorf("plan wall: %w", err)
	}
	prog.done(fmt.Sprintf("Planned %d cards", plan.Len()))

	data, err := renderPlan(plan, in.names, opts)
	if err != nil {
		return fmt.Errorf("render %s: %w", opts.format, err)
	}

	if opts.output == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return fmt.Errorf("write output %s: %w", opts.output, err)
	}

	printSuccess("Wall planned")
	printFile(opts.output)
	printStats(fmt.Sprintf("%d cards", plan.Len()), string(plan.Strategy), plan.Preset)
	if opts.stats {
		printNewline()
		printPlanStats(os.Stdout, layout.ComputeStats(plan.Placements))
	}
	if !opts.watch {
		printNewline()
		printNextStep("Explore", orbitHint(opts.wallFlags, plan.Len()))
	}
	return nil
}

// orbitHint is the orbit command that shows the same wall.
func orbitHint(f wallFlags, count int) string {
	if f.images != "" {
		return "lovewall orbit --images " + f.images
	}
	return "lovewall orbit " + strconv.Itoa(count)
}

// newPlanner picks the preset from the flag, then the config.
func (c *CLI) newPlanner(f wallFlags) (*layout.Planner, error) {
	name := f.preset
	if name == "" {
		name = c.Config.Wall.Preset
	}
	preset, err := layout.PresetByName(name)
	if err != nil {
		return nil, err
	}
	return layout.NewPlanner(layout.WithPreset(preset), layout.WithSeed(f.seed)), nil
}

// =============================================================================
// Wall Input
// =============================================================================

// wallSource is the card count of a wall and, for photo folders, the card names.
type wallSource struct {
	count int
	names []string
}

// wallInput reads the count argument, or decodes the photos in dir. Counts
// are bounded by the configured max_images like photo folders are.
func (c *CLI) wallInput(ctx context.Context, args []string, dir string) (wallSource, error) {
	if dir == "" {
		if len(args) == 0 {
			return wallSource{}, errors.New(errors.ErrCodeInvalidCount, "give a card count or an --images folder")
		}
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 0 {
			return wallSource{}, errors.New(errors.ErrCodeInvalidCount, "card count must be a non-negative integer, got %q", args[0])
		}
		if capacity := c.Config.Limits().Max; n > capacity {
			return wallSource{}, errors.New(errors.ErrCodeInvalidCount, "card count %d exceeds the wall capacity of %d", n, capacity)
		}
		return wallSource{count: n}, nil
	}
	if len(args) > 0 {
		return wallSource{}, errors.New(errors.ErrCodeInvalidInput, "use either a card count or --images, not both")
	}

	col, err := c.loadCollection(ctx, dir)
	if err != nil {
		return wallSource{}, err
	}
	if err := col.Ready(); err != nil {
		return wallSource{}, err
	}
	return wallSource{count: col.Len(), names: col.Names()}, nil
}

// loadCollection decodes dir into a collection bounded by the configured limits.
// Rejected files and excess photos are reported as warnings.
func (c *CLI) loadCollection(ctx context.Context, dir string) (*gallery.Collection, error) {
	logger := loggerFromContext(ctx)

	spinner := newSpinnerWithContext(ctx, "Decoding photos...")
	spinner.Start()
	prog := newProgress(logger)
	batch, err := gallery.LoadDir(ctx, dir)
	spinner.Stop()
	if err != nil {
		return nil, err
	}
	prog.done(fmt.Sprintf("Decoded %d photos", len(batch.Handles)))

	for _, rejected := range batch.Rejected {
		if !advise(rejected) {
			logger.Warn("Skipped file", "err", rejected)
		}
	}

	col := gallery.NewCollection(c.Config.Limits())
	if _, err := col.Add(batch.Handles...); err != nil && !advise(err) {
		return nil, err
	}
	return col, nil
}

// =============================================================================
// Rendering
// =============================================================================

// renderPlan encodes plan in the requested format.
func renderPlan(plan layout.Plan, names []string, opts planOptions) ([]byte, error) {
	switch opts.format {
	case formatCSS:
		var cssOpts []sink.CSSOption
		if opts.matrix {
			cssOpts = append(cssOpts, sink.WithCSSMatrix())
		}
		return sink.RenderCSS(plan, cssOpts...), nil
	case formatSVG:
		return sink.RenderSVG(plan,
			sink.WithView(orbit.Angles{X: opts.pitch, Y: opts.yaw}),
			sink.WithNames(names),
			sink.WithTitle(fmt.Sprintf("Photo wall: %d cards, %s", plan.Len(), plan.Strategy)),
		), nil
	default:
		jsonOpts := []sink.JSONOption{sink.WithJSONNames(names)}
		if opts.matrix {
			jsonOpts = append(jsonOpts, sink.WithJSONMatrix())
		}
		return sink.RenderJSON(plan, jsonOpts...)
	}
}

// printPlanStats prints the spread statistics as a key-value block.
func printPlanStats(w io.Writer, s layout.Stats) {
	rows := [][2]string{
		{"Cards", strconv.Itoa(s.Count)},
		{"Radius", fmt.Sprintf("%.1f mean, %.1f max", s.MeanRadius, s.MaxRadius)},
		{"Height", fmt.Sprintf("%.1f span", s.HeightSpan)},
		{"Spacing", fmt.Sprintf("%.1f min, %.1f mean, cv %.2f", s.MinSpacing, s.MeanSpacing, s.SpacingCV)},
	}
	for _, r := range rows {
		fmt.Fprintln(w, formatKeyValue(r[0], r[1]))
	}
}

// =============================================================================
// Watching
// =============================================================================

// watchDir calls fn after each settled burst of image changes in dir until
// ctx is cancelled. Errors from fn end the watch.
func watchDir(ctx context.Context, dir string, logger *log.Logger, fn func() error) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close()

	if err := w.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	debounce := time.NewTimer(watchDebounce)
	debounce.Stop()
	defer debounce.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !relevantEvent(ev) {
				continue
			}
			logger.Debug("Folder changed", "file", filepath.Base(ev.Name), "op", ev.Op.String())
			debounce.Reset(watchDebounce)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watch error", "err", err)
		case <-debounce.C:
			printNewline()
			if err := fn(); err != nil {
				return err
			}
		}
	}
}

// relevantEvent reports whether ev can change the set of photos.
func relevantEvent(ev fsnotify.Event) bool {
	if ev.Op == fsnotify.Chmod {
		return false
	}
	return gallery.IsImageName(filepath.Base(ev.Name))
}
