package gallery

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/lovewall/pkg/errors"
)

func TestLoaderRunOrder(t *testing.T) {
	l := NewLoader(WithWorkers(4))
	png := encoded(t, "png", 3, 3)
	jpg := encoded(t, "jpeg", 64, 64)

	var order []string
	var failed []string
	for _, item := range []struct {
		name string
		data []byte
	}{
		{"1.jpg", jpg},
		{"2.png", png},
		{"3.txt", []byte("nope")},
		{"4.png", png},
	} {
		l.Enqueue(item.name, item.data, func(h Handle, err error) {
			if err != nil {
				failed = append(failed, item.name)
				return
			}
			order = append(order, h.Name)
		})
	}
	if l.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", l.Len())
	}

	if err := l.Run(context.Background()); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if len(order) != 3 || order[0] != "1.jpg" || order[1] != "2.png" || order[2] != "4.png" {
		t.Errorf("callback order = %v", order)
	}
	if len(failed) != 1 || failed[0] != "3.txt" {
		t.Errorf("failed = %v", failed)
	}
	if l.Len() != 0 {
		t.Error("queue should be drained after Run")
	}
}

func TestLoaderCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	l := NewLoader()
	called := false
	l.Enqueue("a.png", encoded(t, "png", 1, 1), func(Handle, error) { called = true })

	if err := l.Run(ctx); err == nil {
		t.Error("Run() with cancelled context should fail")
	}
	if called {
		t.Error("callbacks must not run after cancellation")
	}
}

func TestLoaderNilCallback(t *testing.T) {
	l := NewLoader(WithWorkers(0))
	l.Enqueue("a.png", encoded(t, "png", 1, 1), nil)
	if err := l.Run(context.Background()); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	write := func(name string, data []byte) {
		if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
			t.Fatal(err)
		}
	}
	write("b.png", encoded(t, "png", 2, 2))
	write("a.gif", encoded(t, "gif", 2, 2))
	write("notes.txt", []byte("skipped by extension"))
	write(".hidden.png", encoded(t, "png", 2, 2))
	write("fake.png", []byte("not really"))
	if err := os.Mkdir(filepath.Join(dir, "sub.png"), 0o755); err != nil {
		t.Fatal(err)
	}

	b, err := LoadDir(context.Background(), dir)
	if err != nil {
		t.Fatalf("LoadDir() error: %v", err)
	}
	if len(b.Handles) != 2 || b.Handles[0].Name != "a.gif" || b.Handles[1].Name != "b.png" {
		t.Errorf("Handles = %v", names(b.Handles))
	}
	if len(b.Rejected) != 1 || !errors.Is(b.Rejected[0], errors.ErrCodeUnsupportedImage) {
		t.Errorf("Rejected = %v", b.Rejected)
	}
}

func TestLoadDirMissing(t *testing.T) {
	_, err := LoadDir(context.Background(), filepath.Join(t.TempDir(), "nope"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("LoadDir() error = %v, want FILE_NOT_FOUND", err)
	}
}

func names(hs []Handle) []string {
	out := make([]string, len(hs))
	for i, h := range hs {
		out[i] = h.Name
	}
	return out
}
