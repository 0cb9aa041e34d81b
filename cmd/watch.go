package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/ajxudir/qcfilter/pkg/config"
	"github.com/ajxudir/qcfilter/pkg/debounce"
	"github.com/ajxudir/qcfilter/pkg/errors"
	"github.com/ajxudir/qcfilter/pkg/verbose"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

var watchSettleFlag time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch <page>",
	Short: "Re-run filter whenever the listing or its config changes",
	Long: `Run filter once, then again every time the listing file or its
configuration is saved. Bursts of file events are coalesced. Stop with Ctrl-C.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	addFilterFlags(watchCmd)
	watchCmd.Flags().DurationVar(&watchSettleFlag, "settle", 200*time.Millisecond, "Quiet period after the last file event before re-running")
}

// runWatch executes the watch command until interrupted.
func runWatch(cmd *cobra.Command, args []string) error {
	path := args[0]
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rerun := func() {
		if err := filterListing(path, os.Stdout, os.Stderr); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s\n", errors.EnhanceErrorWithHint(err))
		}
	}

	rerun()

	watched := []string{path}
	if filterConfigFlag != "" {
		watched = append(watched, filterConfigFlag)
	} else {
		watched = append(watched, filepath.Join(filepath.Dir(path), config.LocalConfigName))
	}

	return watchFiles(ctx, watched, watchSettleFlag, func() {
		fmt.Printf("\n[%s] %s changed\n\n", time.Now().Format("15:04:05"), filepath.Base(path))
		rerun()
	})
}

// watchFiles calls onChange after each burst of changes to any of paths,
// once settle has passed without another event. It blocks until ctx is done.
//
// The parent directories are watched rather than the files, so files that
// editors replace on save keep being tracked. onChange runs on the calling
// goroutine.
//
// Parameters:
//   - ctx: Cancel to stop watching
//   - paths: Files to track; they need not exist yet
//   - settle: Quiet period that ends a burst
//   - onChange: Called once per burst
//
// Returns:
//   - error: When the watcher cannot be created or a directory cannot be
//     watched; nil once ctx is done
func watchFiles(ctx context.Context, paths []string, settle time.Duration, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.NewExitError(errors.ExitFailure, fmt.Errorf("failed to start file watcher: %w", err))
	}
	defer func() { _ = watcher.Close() }()

	tracked := make(map[string]bool, len(paths))
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return errors.NewExitError(errors.ExitFailure, err)
		}
		tracked[abs] = true
		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			return errors.NewExitError(errors.ExitFailure, fmt.Errorf("failed to watch %s: %w", dir, err))
		}
		dirs[dir] = true
		verbose.Infof("Watching %s", dir)
	}

	changed := make(chan struct{}, 1)
	settled := debounce.New(settle, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	defer settled.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !tracked[filepath.Clean(event.Name)] || event.Op == fsnotify.Chmod {
				continue
			}
			verbose.Printf("File event: %s", event)
			settled.Trigger()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			verbose.Infof("Watcher error: %v", err)

		case <-changed:
			onChange()
		}
	}
}
