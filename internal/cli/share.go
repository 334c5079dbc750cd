package cli

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/matzehuels/lovewall/pkg/cache"
	"github.com/matzehuels/lovewall/pkg/gallery"
	"github.com/matzehuels/lovewall/pkg/lovedays"
	"github.com/matzehuels/lovewall/pkg/share"
)

// shareCacheTTL bounds how long a rendered share image is kept. The key
// carries the day count, so an entry is never served on a later day anyway.
const shareCacheTTL = 7 * 24 * time.Hour

// shareOptions holds the flags of the share command.
type shareOptions struct {
	coupleFlags
	photo   string
	output  string
	width   int
	height  int
	copy    bool
	noCache bool
}

// shareCommand creates the share image command.
func (c *CLI) shareCommand() *cobra.Command {
	var opts shareOptions

	cmd := &cobra.Command{
		Use:   "share",
		Short: "Render the days-in-love share image",
		Long: `Render the days-in-love share image with your names, the day count and the
date you got together, optionally around a couple photo.

The format follows the output extension (.png or .webp), falling back to the
[share] format of the config. Rendered images are cached locally.`,
		Example: `  lovewall share --name1 Alex --name2 Sam --since 2024-01-01 --photo us.jpg
  lovewall share -o love.webp --copy`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("width") {
				opts.width = c.Config.Share.Width
			}
			if !cmd.Flags().Changed("height") {
				opts.height = c.Config.Share.Height
			}
			return c.runShare(cmd.Context(), opts)
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVar(&opts.photo, "photo", "", "couple photo shown in the circle")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file, .png or .webp (default: love.<format>)")
	cmd.Flags().IntVar(&opts.width, "width", share.DefaultWidth, "image width in pixels")
	cmd.Flags().IntVar(&opts.height, "height", share.DefaultHeight, "image height in pixels")
	cmd.Flags().BoolVar(&opts.copy, "copy", false, "copy the share message to the clipboard")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")

	return cmd
}

// runShare counts the days, renders or loads the image, and writes it.
func (c *CLI) runShare(ctx context.Context, opts shareOptions) error {
	logger := loggerFromContext(ctx)

	res, err := countDays(c.mergeCouple(opts.coupleFlags), today())
	if err != nil {
		if advise(err) {
			return nil
		}
		return err
	}

	def, err := share.ParseFormat(c.Config.Share.Format)
	if err != nil {
		return err
	}
	format, err := share.FormatFromPath(opts.output, def)
	if err != nil {
		return err
	}
	output := opts.output
	if output == "" {
		output = "love" + format.Ext()
	}

	renderOpts := []share.Option{share.WithSize(opts.width, opts.height)}
	key := cache.ShareKeyOpts{
		Name1:  res.Name1,
		Name2:  res.Name2,
		Since:  res.Since.Format(lovedays.DateLayout),
		Days:   res.Days,
		Width:  opts.width,
		Height: opts.height,
		Format: string(format),
	}
	if opts.photo != "" {
		img, sum, err := loadPhoto(opts.photo)
		if err != nil {
			if advise(err) {
				return nil
			}
			return err
		}
		renderOpts = append(renderOpts, share.WithPhoto(img))
		key.PhotoHash = sum
	}

	store, err := newCache(opts.noCache)
	if err != nil {
		return fmt.Errorf("initialize cache: %w", err)
	}
	defer store.Close()

	data, cached, err := renderShare(ctx, store, cache.ShareKey(key), res, format, renderOpts)
	if err != nil {
		return err
	}

	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("write output %s: %w", output, err)
	}
	logger.Debug("Wrote share image", "path", output, "cached", cached)

	printSuccess("Share image ready")
	printFile(output)
	printStats(
		fmt.Sprintf("%d days", res.Days),
		fmt.Sprintf("%dx%d %s", opts.width, opts.height, format),
		humanize.Bytes(uint64(len(data))),
		cacheStatus(cached),
	)

	if opts.copy {
		printNewline()
		shareMessage(lovedays.ShareText(res), true)
	}
	return nil
}

// renderShare returns the cached image for key or renders and stores it.
// Cache failures are logged and never fail the render.
func renderShare(ctx context.Context, store cache.Cache, key string, res lovedays.Result, f share.Format, opts []share.Option) ([]byte, bool, error) {
	logger := loggerFromContext(ctx)

	if data, ok, err := store.Get(ctx, key); err != nil {
		logger.Warn("Cache read failed", "err", err)
	} else if ok {
		return data, true, nil
	}

	spinner := newSpinnerWithContext(ctx, "Rendering share image...")
	spinner.Start()
	prog := newProgress(logger)
	data, err := share.Generate(ctx, res, f, opts...)
	if err != nil {
		spinner.StopWithError("Render failed")
		return nil, false, fmt.Errorf("render share image: %w", err)
	}
	spinner.Stop()
	prog.done("Rendered share image")

	if ctx.Err() != nil {
		return nil, false, ctx.Err()
	}

	if err := store.Set(ctx, key, data, shareCacheTTL); err != nil {
		logger.Warn("Cache write failed", "err", err)
	}
	return data, false, nil
}

// loadPhoto decodes the couple photo and hashes its bytes for the cache key.
func loadPhoto(path string) (image.Image, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("read photo %s: %w", path, err)
	}
	img, err := gallery.DecodeImage(filepath.Base(path), data)
	if err != nil {
		return nil, "", err
	}
	return img, cache.Hash(data), nil
}
