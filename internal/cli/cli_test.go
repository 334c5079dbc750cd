package cli

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	lwerrors "github.com/matzehuels/lovewall/pkg/errors"
	"github.com/matzehuels/lovewall/pkg/observability"
)

func TestRootCommandSubcommands(t *testing.T) {
	root := testCLI().RootCommand()

	var names []string
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}
	sort.Strings(names)

	want := []string{"cache", "completion", "days", "orbit", "plan", "share"}
	for _, w := range want {
		i := sort.SearchStrings(names, w)
		if i >= len(names) || names[i] != w {
			t.Errorf("missing subcommand %q in %v", w, names)
		}
	}
}

func TestRootCommandLoadsConfig(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "lovewall.toml")
	body := "[wall]\npreset = \"classic\"\nseed = 7\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	c := testCLI()
	root := c.RootCommand()
	root.SetArgs([]string{"--config", path, "cache", "path"})
	if err := root.Execute(); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if c.ConfigPath != path {
		t.Errorf("ConfigPath = %q, want %q", c.ConfigPath, path)
	}
	if c.Config.Wall.Preset != "classic" || c.Config.Wall.Seed != 7 {
		t.Errorf("Config.Wall = %+v, want classic seed 7", c.Config.Wall)
	}
}

func TestRootCommandConfigDir(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", base)
	dir := filepath.Join(base, "lovewall")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	body := "couple:\n  name1: Alex\n  name2: Sam\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	c := testCLI()
	root := c.RootCommand()
	root.SetArgs([]string{"cache", "path"})
	if err := root.Execute(); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if c.Config.Couple.Name1 != "Alex" || c.Config.Couple.Name2 != "Sam" {
		t.Errorf("Config.Couple = %+v", c.Config.Couple)
	}
}

func TestRootCommandBadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lovewall.ini")
	if err := os.WriteFile(path, []byte("x=1"), 0o644); err != nil {
		t.Fatal(err)
	}

	root := testCLI().RootCommand()
	root.SetArgs([]string{"--config", path, "cache", "path"})
	root.SetErr(&strings.Builder{})
	if err := root.Execute(); !lwerrors.Is(err, lwerrors.ErrCodeInvalidFormat) {
		t.Errorf("Execute() error = %v, want INVALID_FORMAT", err)
	}
}

func TestSetupInstallsHooksWhenVerbose(t *testing.T) {
	t.Cleanup(observability.Reset)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var buf strings.Builder
	c := New(&buf, log.DebugLevel)
	root := c.RootCommand()
	root.SetArgs([]string{"cache", "path"})
	if err := root.Execute(); err != nil {
		t.Fatal(err)
	}

	observability.Wall().OnCollectionChange(3)
	if !strings.Contains(buf.String(), "Collection changed") {
		t.Errorf("verbose mode should forward hooks to the logger, got %q", buf.String())
	}
}

func TestAdvise(t *testing.T) {
	if advise(nil) {
		t.Error("nil is not an advisory")
	}
	if advise(lwerrors.New(lwerrors.ErrCodeInvalidFormat, "bad")) {
		t.Error("INVALID_FORMAT is not an advisory")
	}
	if !advise(lwerrors.New(lwerrors.ErrCodeFutureDate, "2030-01-01 is in the future")) {
		t.Error("FUTURE_DATE should be printed as an advisory")
	}
}
