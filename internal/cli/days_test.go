package cli

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/lovewall/pkg/config"
	lwerrors "github.com/matzehuels/lovewall/pkg/errors"
)

var valentines = time.Date(2025, 2, 14, 18, 30, 0, 0, time.UTC)

func pinToday(t *testing.T, now time.Time) {
	t.Helper()
	orig := today
	today = func() time.Time { return now }
	t.Cleanup(func() { today = orig })
}

func TestCountDays(t *testing.T) {
	tests := []struct {
		name     string
		flags    coupleFlags
		wantDays int
		wantCode lwerrors.Code
	}{
		{
			name:     "explicit date",
			flags:    coupleFlags{name1: "Alex", name2: "Sam", since: "2024-01-01"},
			wantDays: 410,
		},
		{
			name:     "default start a year ago",
			flags:    coupleFlags{name1: "Alex", name2: "Sam"},
			wantDays: 366,
		},
		{
			name:     "same day",
			flags:    coupleFlags{name1: "Alex", name2: "Sam", since: "2025-02-14"},
			wantDays: 0,
		},
		{
			name:     "future date",
			flags:    coupleFlags{name1: "Alex", name2: "Sam", since: "2025-02-15"},
			wantCode: lwerrors.ErrCodeFutureDate,
		},
		{
			name:     "missing name",
			flags:    coupleFlags{name1: "Alex", since: "2024-01-01"},
			wantCode: lwerrors.ErrCodeMissingName,
		},
		{
			name:     "bad date",
			flags:    coupleFlags{name1: "Alex", name2: "Sam", since: "14/02/2024"},
			wantCode: lwerrors.ErrCodeInvalidDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := countDays(tt.flags, valentines)
			if tt.wantCode != "" {
				if !lwerrors.Is(err, tt.wantCode) {
					t.Fatalf("countDays() error = %v, want code %s", err, tt.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("countDays() error: %v", err)
			}
			if res.Days != tt.wantDays {
				t.Errorf("Days = %d, want %d", res.Days, tt.wantDays)
			}
		})
	}
}

func TestMergeCouple(t *testing.T) {
	c := New(&strings.Builder{}, log.InfoLevel)
	c.Config = config.Default()
	c.Config.Couple = config.CoupleConfig{Name1: "Alex", Name2: "Sam", Since: "2024-01-01"}

	got := c.mergeCouple(coupleFlags{name2: "Robin"})
	want := coupleFlags{name1: "Alex", name2: "Robin", since: "2024-01-01"}
	if got != want {
		t.Errorf("mergeCouple() = %+v, want %+v", got, want)
	}
}

func TestRunDays(t *testing.T) {
	pinToday(t, valentines)
	c := New(&strings.Builder{}, log.InfoLevel)

	opts := daysOptions{coupleFlags: coupleFlags{name1: "Alex", name2: "Sam", since: "2024-01-01"}}
	if err := c.runDays(context.Background(), opts); err != nil {
		t.Fatalf("runDays() error: %v", err)
	}

	// A future date is an advisory, not a failure.
	opts.since = "2030-01-01"
	if err := c.runDays(context.Background(), opts); err != nil {
		t.Fatalf("runDays() with future date error: %v", err)
	}
}

func TestShareModal(t *testing.T) {
	out := shareModal("💕 Alex & Sam have been in love for 410 days!")
	for _, want := range []string{"Our days in love", "Alex & Sam", "410 days"} {
		if !strings.Contains(out, want) {
			t.Errorf("modal missing %q:\n%s", want, out)
		}
	}
}

func TestShareMessageClipboard(t *testing.T) {
	orig := writeClipboard
	t.Cleanup(func() { writeClipboard = orig })

	var copied string
	writeClipboard = func(s string) error {
		copied = s
		return nil
	}
	shareMessage("hello", true)
	if copied != "hello" {
		t.Errorf("clipboard got %q, want %q", copied, "hello")
	}

	// A failing clipboard falls back to the modal without panicking.
	writeClipboard = func(string) error { return errors.New("no clipboard") }
	shareMessage("hello", true)
}

func TestAnimateDaysCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := animateDays(ctx, 500); !errors.Is(err, context.Canceled) {
		t.Errorf("animateDays() error = %v, want context.Canceled", err)
	}
}

func TestAnimateDaysZero(t *testing.T) {
	if err := animateDays(context.Background(), 0); err != nil {
		t.Errorf("animateDays(0) error: %v", err)
	}
}
