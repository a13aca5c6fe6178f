package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/sync/errgroup"

	"kaynat/interpreter-go/pkg/driver"
)

// settleDelay lets editors finish writing before the program is re-read.
const settleDelay = 50 * time.Millisecond

func (a *app) runWatch(entry string, manifest *driver.Manifest, logger *slog.Logger) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := a.watch(ctx, entry, manifest, logger); err != nil {
		fmt.Fprintln(a.stderr, err)
		return 1
	}
	return 0
}

// watch runs entry once and again after every change to it until ctx is
// done. Each run gets a fresh interpreter.
func (a *app) watch(ctx context.Context, entry string, manifest *driver.Manifest, logger *slog.Logger) error {
	target, err := filepath.Abs(entry)
	if err != nil {
		return fmt.Errorf("watch: resolve %s: %w", entry, err)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer watcher.Close()
	// Editors often replace the file on save, so the directory is watched.
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch: add %s: %w", filepath.Dir(target), err)
	}

	a.runFile(entry, manifest, logger)

	changes := make(chan struct{}, 1)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if filepath.Clean(event.Name) != target || event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				logger.Debug("source changed", "file", event.Name, "op", event.Op.String())
				select {
				case changes <- struct{}{}:
				default:
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				logger.Warn("watcher error", "error", err)
			}
		}
	})
	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-changes:
			}
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(settleDelay):
			}
			select {
			case <-changes:
			default:
			}
			fmt.Fprintf(a.stdout, "--- %s changed, re-running ---\n", filepath.Base(entry))
			a.runFile(entry, manifest, logger)
		}
	})
	return g.Wait()
}
