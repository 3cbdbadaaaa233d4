package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/gnolang/pyfmt/internal/pyconfig"
	"github.com/gnolang/pyfmt/internal/pyfmtcli"
	"github.com/gnolang/pyfmt/internal/pymatch"
)

var renderCmd = &cobra.Command{
	Use:   "render [fixtures...]",
	Short: "Match fixture ASTs against their paired source and re-render them",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide one or more fixture paths")
			os.Exit(1)
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		cfg := loadConfig(cfgFile)

		results, err := renderAll(ctx, args, cfg)
		if err != nil {
			logger.Error("error rendering fixtures", zap.Error(err))
			os.Exit(1)
		}
		for _, path := range args {
			if rendered, ok := results[path]; ok {
				fmt.Print(rendered)
			}
		}
	},
}

// loadConfig reads path's configuration, falling back to pyfmt's defaults
// on any error — a missing or unreadable config file shouldn't stop a
// render the way it doesn't stop the teacher's own lint.New.
func loadConfig(path string) pyconfig.Config {
	cfg, err := pyconfig.Load(path)
	if err != nil {
		return pyconfig.Default()
	}
	return cfg
}

// ignoreSet builds a lookup set of fixture paths renderAll should skip
// entirely, per cfg.Ignore.
func ignoreSet(cfg pyconfig.Config) map[string]bool {
	ignore := make(map[string]bool, len(cfg.Ignore))
	for _, p := range cfg.Ignore {
		ignore[p] = true
	}
	return ignore
}

// renderAll loads and renders every fixture path concurrently (bounded by
// errgroup's default unlimited group, one goroutine per file — render runs
// are independent and side-effect-free, so there's nothing to serialize).
// cfg.DefaultQuote governs how a never-matched Str node renders, and
// cfg.Ignore lists fixture paths to skip entirely.
func renderAll(ctx context.Context, paths []string, cfg pyconfig.Config) (map[string]string, error) {
	if cfg.DefaultQuote != "" {
		pymatch.DefaultQuoteType = cfg.DefaultQuote
	}
	ignore := ignoreSet(cfg)

	g, ctx := errgroup.WithContext(ctx)

	var mu sync.Mutex
	results := make(map[string]string, len(paths))

	for _, path := range paths {
		path := path
		if ignore[path] {
			continue
		}
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			doc, err := pyfmtcli.LoadDocument(path, sourcePathFor(path))
			if err != nil {
				return err
			}
			rendered, err := pyfmtcli.Render(doc)
			if err != nil {
				return fmt.Errorf("pyfmt: rendering %s: %w", path, err)
			}
			mu.Lock()
			results[path] = rendered
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// sourcePathFor maps a fixture path (foo.json) to its paired source path
// (foo.py), the naming convention LoadDocument's two-file scheme assumes.
func sourcePathFor(fixturePath string) string {
	ext := filepath.Ext(fixturePath)
	return strings.TrimSuffix(fixturePath, ext) + ".py"
}
