package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/liuhaoxuan15/ftl-js-validator/internal/logging"
	"github.com/liuhaoxuan15/ftl-js-validator/pkg/config"
	"github.com/liuhaoxuan15/ftl-js-validator/pkg/reporter"
	"github.com/liuhaoxuan15/ftl-js-validator/pkg/runner"
)

// watchDebounce coalesces bursts of filesystem events into one rerun.
const watchDebounce = 300 * time.Millisecond

// runCheckWatch runs an initial check, then revalidates whenever a
// watched template file changes. It blocks until the context is done.
func runCheckWatch(
	ctx context.Context,
	cmd *cobra.Command,
	run *runner.Runner,
	runOpts runner.Options,
	reporterOpts reporter.Options,
) error {
	logger := logging.Default()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := addWatchPaths(watcher, runOpts); err != nil {
		return err
	}

	rerun := func() {
		result, runErr := run.Run(ctx, runOpts)
		if runErr != nil {
			logger.Error("check run failed", logging.FieldError, runErr)
			return
		}

		rep, repErr := reporter.New(reporterOpts)
		if repErr != nil {
			logger.Error("create reporter failed", logging.FieldError, repErr)
			return
		}
		if _, repErr := rep.Report(ctx, result); repErr != nil {
			logger.Error("report failed", logging.FieldError, repErr)
		}
	}

	rerun()
	fmt.Fprintln(cmd.ErrOrStderr(), "Watching for changes... (Ctrl-C to stop)")

	extensions := runOpts.Extensions
	if len(extensions) == 0 {
		extensions = config.DefaultExtensions()
	}

	debounceTimer := time.NewTimer(watchDebounce)
	debounceTimer.Stop()
	var debounceCh <-chan time.Time

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}

			// New directories join the watch set.
			if event.Has(fsnotify.Create) {
				if info, statErr := os.Stat(event.Name); statErr == nil && info.IsDir() {
					if addErr := watcher.Add(event.Name); addErr != nil {
						logger.Warn("watch new directory failed",
							logging.FieldPath, event.Name, logging.FieldError, addErr)
					}
					continue
				}
			}

			if !hasWatchedExtension(event.Name, extensions) {
				continue
			}

			logger.Debug("template changed", logging.FieldPath, event.Name)
			debounceTimer.Reset(watchDebounce)
			debounceCh = debounceTimer.C

		case <-debounceCh:
			rerun()
			debounceCh = nil

		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", logging.FieldError, watchErr)

		case <-ctx.Done():
			return nil
		}
	}
}

// addWatchPaths registers every directory under the requested paths.
// fsnotify watches are not recursive, so subdirectories are added one
// by one.
func addWatchPaths(watcher *fsnotify.Watcher, opts runner.Options) error {
	paths := opts.Paths
	if len(paths) == 0 {
		paths = []string{"."}
	}

	for _, inputPath := range paths {
		absPath := inputPath
		if !filepath.IsAbs(inputPath) && opts.WorkingDir != "" {
			absPath = filepath.Join(opts.WorkingDir, inputPath)
		}

		info, err := os.Stat(absPath)
		if err != nil {
			return fmt.Errorf("stat %s: %w", inputPath, err)
		}

		if !info.IsDir() {
			// Watch the containing directory so editor rename-and-replace
			// saves are still seen.
			if err := watcher.Add(filepath.Dir(absPath)); err != nil {
				return fmt.Errorf("watch %s: %w", inputPath, err)
			}
			continue
		}

		err = filepath.WalkDir(absPath, func(path string, entry os.DirEntry, walkErr error) error {
			if walkErr != nil {
				return nil
			}
			if !entry.IsDir() {
				return nil
			}
			if path != absPath && strings.HasPrefix(entry.Name(), ".") {
				return filepath.SkipDir
			}
			return watcher.Add(path)
		})
		if err != nil {
			return fmt.Errorf("watch %s: %w", inputPath, err)
		}
	}

	return nil
}

// hasWatchedExtension reports whether the path carries one of the
// watched template extensions.
func hasWatchedExtension(path string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range extensions {
		if strings.ToLower(e) == ext {
			return true
		}
	}
	return false
}
