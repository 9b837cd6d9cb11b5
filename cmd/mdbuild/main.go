package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"git.home.luguber.info/inful/mdbuild/internal/manifest"
	"git.home.luguber.info/inful/mdbuild/internal/preview"
	"git.home.luguber.info/inful/mdbuild/internal/version"
	"git.home.luguber.info/inful/mdbuild/internal/watch"
	"github.com/alecthomas/kong"
)

var CLI struct {
	Verbose bool `short:"v" help:"Enable verbose logging"`

	Render struct {
		Manifest string `arg:"" help:"Document manifest (YAML)" type:"existingfile"`
		Output   string `short:"o" help:"Output file (stdout when omitted)"`
	} `cmd:"" help:"Render a document manifest to Markdown"`

	Preview struct {
		Manifest string `arg:"" help:"Document manifest (YAML)" type:"existingfile"`
		Output   string `short:"o" help:"Output file (stdout when omitted)"`
	} `cmd:"" help:"Render a document manifest to an HTML preview page"`

	Watch struct {
		Manifest string `arg:"" help:"Document manifest (YAML)" type:"existingfile"`
		Output   string `short:"o" required:"" help:"Output Markdown file"`
	} `cmd:"" help:"Re-render the manifest whenever it changes"`

	Version struct{} `cmd:"" help:"Show version information"`
}

func main() {
	ctx := kong.Parse(&CLI)

	logLevel := slog.LevelInfo
	if CLI.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	switch ctx.Command() {
	case "render <manifest>":
		if err := runRender(CLI.Render.Manifest, CLI.Render.Output); err != nil {
			slog.Error("Render failed", "error", err)
			os.Exit(1)
		}
	case "preview <manifest>":
		if err := runPreview(CLI.Preview.Manifest, CLI.Preview.Output); err != nil {
			slog.Error("Preview failed", "error", err)
			os.Exit(1)
		}
	case "watch <manifest>":
		if err := runWatch(CLI.Watch.Manifest, CLI.Watch.Output); err != nil {
			slog.Error("Watch failed", "error", err)
			os.Exit(1)
		}
	case "version":
		fmt.Println(version.String())
	default:
		slog.Error("Unknown command", "command", ctx.Command())
		os.Exit(1)
	}
}

func runRender(manifestPath, output string) error {
	doc, err := manifest.Load(manifestPath)
	if err != nil {
		return err
	}
	return emit(output, []byte(manifest.Render(doc)))
}

func runPreview(manifestPath, output string) error {
	doc, err := manifest.Load(manifestPath)
	if err != nil {
		return err
	}
	page, err := preview.HTML([]byte(manifest.Render(doc)), doc.Title)
	if err != nil {
		return err
	}
	return emit(output, page)
}

func runWatch(manifestPath, output string) error {
	render := func() error {
		doc, err := manifest.Load(manifestPath)
		if err != nil {
			return err
		}
		if err := emit(output, []byte(manifest.Render(doc))); err != nil {
			return err
		}
		slog.Info("Rendered", "manifest", manifestPath, "output", output)
		return nil
	}

	// Render once up front so the output exists before the first change.
	if err := render(); err != nil {
		return err
	}

	w, err := watch.New(manifestPath, render)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := w.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	slog.Info("Watch stopped")
	return nil
}

func emit(output string, data []byte) error {
	if output == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
