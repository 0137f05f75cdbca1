package gramconfigs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/reusee/dscope"
)

func TestDefaults(t *testing.T) {
	dscope.New(new(Module)).Call(func(
		trace TraceParse,
		maxErrors MaxErrors,
	) {
		if trace {
			t.Fatal()
		}
		if maxErrors != 1 {
			t.Fatalf("got %d", maxErrors)
		}
	})
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(
		filepath.Join(dir, "gram.cue"),
		[]byte("trace: true\nmax_errors: 3\n"),
		0644,
	); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)

	dscope.New(new(Module)).Call(func(
		trace TraceParse,
		maxErrors MaxErrors,
	) {
		if !trace {
			t.Fatal()
		}
		if maxErrors != 3 {
			t.Fatalf("got %d", maxErrors)
		}
	})
}
