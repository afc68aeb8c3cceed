// oxcanvas is a headless harness for the canvas engine: it loads a diagram
// snapshot JSON, fits the viewport to the geometry, and prints every layout
// commit the engine emits. With --watch it reloads the snapshot on change,
// which exercises the wholesale-replacement lifecycle the editor relies on.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"cdr.dev/slog"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/RohanAdwankar/oxdraw/canvas"
	"github.com/RohanAdwankar/oxdraw/diagram"
	"github.com/RohanAdwankar/oxdraw/lib/log"
)

func main() {
	configPath := pflag.String("config", "", "YAML file overriding engine defaults")
	watch := pflag.BoolP("watch", "w", false, "reload the snapshot when the file changes")
	fitSteps := pflag.Int("fit-steps", 120, "maximum smoothing ticks per fit")
	pflag.Parse()

	ctx := log.Stderr(context.Background())

	if pflag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: oxcanvas [flags] <snapshot.json>")
		pflag.PrintDefaults()
		os.Exit(2)
	}

	if err := run(ctx, pflag.Arg(0), *configPath, *watch, *fitSteps); err != nil {
		log.Error(ctx, "oxcanvas failed", slog.Error(err))
		os.Exit(1)
	}
}

// stdoutSink prints committed layout updates as JSON, one per line, standing
// in for the persistence service.
type stdoutSink struct{}

func (stdoutSink) ApplyLayout(ctx context.Context, u *diagram.LayoutUpdate) error {
	return json.NewEncoder(os.Stdout).Encode(u)
}

func run(ctx context.Context, snapshotPath, configPath string, watch bool, fitSteps int) error {
	cfg := canvas.DefaultConfig()
	if configPath != "" {
		raw, err := os.ReadFile(configPath)
		if err != nil {
			return fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return fmt.Errorf("parsing config: %w", err)
		}
	}

	c := canvas.New(cfg, stdoutSink{})
	if err := reload(ctx, c, snapshotPath, fitSteps); err != nil {
		return err
	}
	if !watch {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	if err := watcher.Add(snapshotPath); err != nil {
		return err
	}
	log.Info(ctx, "watching snapshot", slog.F("path", snapshotPath))

	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if err := reload(ctx, c, snapshotPath, fitSteps); err != nil {
				log.Warn(ctx, "snapshot reload failed", slog.Error(err))
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn(ctx, "watch error", slog.Error(err))
		}
	}
}

func reload(ctx context.Context, c *canvas.Canvas, path string, fitSteps int) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening snapshot: %w", err)
	}
	defer f.Close()

	d, err := diagram.Decode(f)
	if err != nil {
		return fmt.Errorf("decoding snapshot: %w", err)
	}

	c.Load(ctx, d)
	steps := 0
	for c.ViewportStep() && steps < fitSteps {
		steps++
	}

	vp := c.Viewport()
	log.Info(ctx, "snapshot loaded",
		slog.F("nodes", len(d.Nodes)),
		slog.F("edges", len(d.Edges)),
		slog.F("viewport", vp.ToString()),
		slog.F("fit_steps", steps))
	return nil
}
