package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/damnltd/opticsketch-sub000/bench"
	"github.com/damnltd/opticsketch-sub000/bench/config"
	"github.com/damnltd/opticsketch-sub000/bench/experiment"
	"github.com/damnltd/opticsketch-sub000/interact"
)

var CLI struct {
	Verbose bool `short:"v" help:"log every traced source"`

	Trace    TraceCmd    `cmd:"" help:"Trace a bench and save the results to a run directory"`
	Validate ValidateCmd `cmd:"" help:"Check a bench config for errors"`
	Browse   BrowseCmd   `cmd:"" help:"Trace a bench and browse the traced segments"`
}

// Context is passed to every command's Run method.
type Context struct {
	Logger *slog.Logger
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func loadConfig(path string) (*config.BenchConfig, error) {
	return config.LoadFromFile(path, config.LoadOptions{
		ValidateImmediately: true,
		ResolvePaths:        true,
		MergeFiles:          true,
	})
}

// traceConfig loads the config at path, builds its bench and traces it.
func traceConfig(ctx *Context, path string) (*config.BenchConfig, *bench.Bench, []bench.TraceSegment, error) {
	cfg, err := loadConfig(path)
	if err != nil {
		return nil, nil, nil, err
	}
	b, err := cfg.BuildBench()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("building bench: %w", err)
	}
	tracer := bench.NewTracer(cfg.TraceConfig(), bench.WithLogger(ctx.Logger))
	return cfg, b, tracer.TraceScene(b), nil
}

func planView(b *bench.Bench, out config.Output) bench.View {
	out = out.WithDefaults()
	return bench.View{
		Bench:  b,
		XSize:  out.ImageWidth,
		YSize:  out.ImageHeight,
		Plane:  bench.PlanView(),
		Margin: out.Margin,
	}
}

type TraceCmd struct {
	Config string `arg:"" name:"config" help:"bench config (YAML)" type:"existingfile"`
}

func (c TraceCmd) Run(ctx *Context) error {
	cfg, b, segments, err := traceConfig(ctx, c.Config)
	if err != nil {
		return err
	}

	run, err := experiment.CreateRunDirectory(cfg.Output.WithDefaults().Directory)
	if err != nil {
		return err
	}
	if err := run.CopyConfigFile(c.Config); err != nil {
		return err
	}

	summary := bench.Summarize(segments)
	if err := bench.SaveBenchToJSON(run.GetFilePath("beams.json"), b, summary); err != nil {
		return fmt.Errorf("saving beams: %w", err)
	}
	view := planView(b, cfg.Output)
	if err := view.SavePNG(run.GetFilePath("bench.png")); err != nil {
		return err
	}
	if err := bench.PlotIntensityHistogram(segments, 640, 480, run.GetFilePath("intensity.png")); err != nil {
		return err
	}

	ctx.Logger.Info("run saved",
		"dir", run.Path,
		"segments", summary.Segments,
		"escaped", summary.Escaped,
		"max_depth", summary.MaxDepth,
		"path_length_mm", summary.PathLength,
	)
	return nil
}

type ValidateCmd struct {
	Config string `arg:"" name:"config" help:"bench config (YAML)" type:"existingfile"`
}

func (c ValidateCmd) Run(ctx *Context) error {
	cfg, err := config.LoadFromFile(c.Config, config.LoadOptions{ResolvePaths: true, MergeFiles: true})
	if err != nil {
		return err
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		fmt.Print(config.FormatValidationErrors(errs))
		return fmt.Errorf("%d validation errors", len(errs))
	}
	fmt.Printf("%s: ok (%d elements)\n", c.Config, len(cfg.Elements))
	return nil
}

type BrowseCmd struct {
	Config string `arg:"" name:"config" help:"bench config (YAML)" type:"existingfile"`
	Out    string `name:"out" default:"selected.png" help:"image re-rendered for the selected segment"`
}

func (c BrowseCmd) Run(ctx *Context) error {
	cfg, b, segments, err := traceConfig(ctx, c.Config)
	if err != nil {
		return err
	}
	return interact.Interact(segments, planView(b, cfg.Output), c.Out)
}

func main() {
	ctx := kong.Parse(&CLI)
	err := ctx.Run(&Context{Logger: newLogger(CLI.Verbose)})
	if err != nil {
		log.Fatal(err)
	}
}
