package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	lwerrors "github.com/matzehuels/lovewall/pkg/errors"
	"github.com/matzehuels/lovewall/pkg/lovedays"
)

// countUpFPS is the frame rate of the --animate counter.
const countUpFPS = 30

var (
	// today returns the current date; tests pin it.
	today = time.Now

	// writeClipboard copies text to the system clipboard.
	writeClipboard = clipboard.WriteAll
)

var styleModal = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(colorPink).
	Padding(1, 2)

// coupleFlags are shared by the days and share commands.
type coupleFlags struct {
	name1 string
	name2 string
	since string
}

func (f *coupleFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name1, "name1", "", "your name (default from config)")
	cmd.Flags().StringVar(&f.name2, "name2", "", "your partner's name (default from config)")
	cmd.Flags().StringVar(&f.since, "since", "", "the day you got together, YYYY-MM-DD (default: a year ago)")
}

// daysOptions holds the flags of the days command.
type daysOptions struct {
	coupleFlags
	interactive bool
	animate     bool
	share       bool
	copy        bool
}

// daysCommand creates the days-in-love counter command.
func (c *CLI) daysCommand() *cobra.Command {
	var opts daysOptions

	cmd := &cobra.Command{
		Use:   "days",
		Short: "Count the days you have been in love",
		Long: `Count the days you have been in love and list milestone cards.

Names and the start date come from the flags, then from the [couple] section
of the config file. With --interactive a form asks for them instead.

--share prints the share message; --copy puts it on the clipboard and prints
it as well if the clipboard is not available.`,
		Example: `  lovewall days --name1 Alex --name2 Sam --since 2024-01-01
  lovewall days --interactive --animate`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDays(cmd.Context(), opts)
		},
	}

	opts.register(cmd)
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "ask for names and date in a form")
	cmd.Flags().BoolVar(&opts.animate, "animate", false, "count up to the day number")
	cmd.Flags().BoolVar(&opts.share, "share", false, "print the share message")
	cmd.Flags().BoolVar(&opts.copy, "copy", false, "copy the share message to the clipboard")

	return cmd
}

// runDays resolves the couple, counts, and prints the result.
func (c *CLI) runDays(ctx context.Context, opts daysOptions) error {
	now := today()
	flags := c.mergeCouple(opts.coupleFlags)

	if opts.interactive {
		if err := askCouple(ctx, &flags, now); err != nil {
			return err
		}
	}

	res, err := countDays(flags, now)
	if err != nil {
		if advise(err) {
			return nil
		}
		return err
	}

	printHeart("%s & %s", res.Name1, res.Name2)
	printKeyValue("Since", lovedays.FormatDate(res.Since))
	if opts.animate {
		if err := animateDays(ctx, res.Days); err != nil {
			return err
		}
	} else {
		printKeyValue("Days", StyleNumber.Render(fmt.Sprint(res.Days)))
	}

	printNewline()
	printMilestones(res.Milestones)

	if opts.share || opts.copy {
		printNewline()
		shareMessage(lovedays.ShareText(res), opts.copy)
		return nil
	}
	printNewline()
	printNextStep("Share", "lovewall share -o love.png")
	return nil
}

// mergeCouple fills unset flags from the config.
func (c *CLI) mergeCouple(f coupleFlags) coupleFlags {
	if f.name1 == "" {
		f.name1 = c.Config.Couple.Name1
	}
	if f.name2 == "" {
		f.name2 = c.Config.Couple.Name2
	}
	if f.since == "" {
		f.since = c.Config.Couple.Since
	}
	return f
}

// countDays parses the start date, defaulting to a year before now, and counts.
func countDays(f coupleFlags, now time.Time) (lovedays.Result, error) {
	since := lovedays.DefaultStartDate(now)
	if f.since != "" {
		t, err := lovedays.ParseDate(f.since)
		if err != nil {
			return lovedays.Result{}, err
		}
		since = t
	}
	return lovedays.Count(lovedays.Couple{Name1: f.name1, Name2: f.name2, Since: since}, now)
}

// askCouple runs the input form over f, keeping current values as defaults.
func askCouple(ctx context.Context, f *coupleFlags, now time.Time) error {
	if f.since == "" {
		f.since = lovedays.DefaultStartDate(now).Format(lovedays.DateLayout)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Your name").
				Value(&f.name1).
				Validate(lwerrors.ValidateName),
			huh.NewInput().
				Title("Your partner's name").
				Value(&f.name2).
				Validate(lwerrors.ValidateName),
			huh.NewInput().
				Title("Together since").
				Placeholder(lovedays.DateLayout).
				Value(&f.since).
				Validate(func(s string) error {
					t, err := lovedays.ParseDate(s)
					if err != nil {
						return err
					}
					if t.After(lovedays.Date(now)) {
						return fmt.Errorf("that day has not come yet")
					}
					return nil
				}),
		),
	)

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return context.Canceled
		}
		return fmt.Errorf("read couple: %w", err)
	}
	return nil
}

// animateDays eases the day counter from 0 to days on one line.
func animateDays(ctx context.Context, days int) error {
	counter := lovedays.NewCountUp(days, lovedays.DefaultCountUpDuration)
	frame := time.Second / countUpFPS

	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	for {
		value, done := counter.Next(frame)
		fmt.Print("\r" + formatKeyValue("Days", StyleNumber.Render(fmt.Sprint(value))))
		if done {
			fmt.Println()
			return nil
		}
		select {
		case <-ctx.Done():
			fmt.Println()
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// printMilestones prints the milestone cards in order.
func printMilestones(ms []lovedays.Milestone) {
	for _, m := range ms {
		fmt.Println(m.Icon + " " + StyleValue.Render(m.Title))
		printDetail("%s · %s", lovedays.FormatDate(m.Date), m.Note)
	}
}

// shareMessage copies text when asked, falling back to a printed modal.
func shareMessage(text string, copyText bool) {
	if copyText {
		if err := writeClipboard(text); err == nil {
			printSuccess("Copied to clipboard")
			return
		}
		printWarning("Clipboard not available, copy the message below")
	}
	fmt.Fprintln(os.Stdout, shareModal(text))
}

// shareModal frames text the way the share fallback dialog shows it.
func shareModal(text string) string {
	body := StyleTitle.Render(lovedays.ShareTitle) + "\n\n" + strings.TrimSpace(text)
	return styleModal.Render(body)
}
