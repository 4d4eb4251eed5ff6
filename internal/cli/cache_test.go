package cli

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/drawnet/drawnet/pkg/cache"
)

func TestCountArtifacts(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "artifacts")

	if n, err := countArtifacts(dir); err != nil || n != 0 {
		t.Fatalf("countArtifacts(missing dir) = %d, %v, want 0, nil", n, err)
	}

	fc, err := cache.NewFileCache(dir)
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer fc.Close()

	ctx := context.Background()
	keyer := cache.NewDefaultKeyer()
	for _, scene := range []string{"blocks", "dense", "convnet"} {
		key := keyer.ArtifactKey(scene, cache.ArtifactKeyOpts{Format: "svg"})
		if err := fc.Set(ctx, key, []byte("<svg/>"), time.Hour); err != nil {
			t.Fatalf("Set(%s): %v", scene, err)
		}
	}

	if n, err := countArtifacts(dir); err != nil || n != 3 {
		t.Fatalf("countArtifacts = %d, %v, want 3, nil", n, err)
	}
}
