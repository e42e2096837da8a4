// Command render is the renderer's CLI entry point: it reads a JSON
// scene description, path-traces it, and writes the result as EXR
// next to the scene file — the same shape as the teacher's main.go
// but restructured around cobra (spec.md §6) instead of flag, and
// around the parallel render.Render loop instead of ebiten's Game
// interface driving the work itself.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"go-pathtracer/internal/imageio"
	"go-pathtracer/internal/render"
	"go-pathtracer/internal/sceneio"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var seed int64
	var workers int
	var headless bool

	cmd := &cobra.Command{
		Use:   "render <scene-file>",
		Short: "Render a JSON scene description to an EXR image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(args[0], seed, workers, headless)
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 1, "sampler seed, for reproducible renders")
	cmd.Flags().IntVar(&workers, "workers", 0, "worker pool size (0 = GOMAXPROCS)")
	cmd.Flags().BoolVar(&headless, "headless", false, "disable the live ebiten preview window")

	return cmd
}

func runRender(scenePath string, seed int64, workers int, headless bool) error {
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer logger.Sync()

	loaded, err := sceneio.Load(scenePath, logger)
	if err != nil {
		return fmt.Errorf("loading scene: %w", err)
	}

	job := render.NewJob(loaded.Width, loaded.Height)

	opts := render.Options{
		Width:           job.Image.Width,
		Height:          job.Image.Height,
		SamplesPerPixel: loaded.Settings.SamplesPerPixel,
		Seed:            uint64(seed),
		Workers:         workers,
	}
	if opts.Workers == 0 {
		opts.Workers = runtime.NumCPU()
	}

	start := time.Now()
	renderErrCh := make(chan error, 1)
	go func() {
		renderErrCh <- render.Render(context.Background(), job, loaded.Scene, loaded.Integrator, opts)
	}()

	if !headless {
		ebiten.SetWindowSize(job.Image.Width, job.Image.Height)
		ebiten.SetWindowTitle("go-pathtracer: " + filepath.Base(scenePath))
		viewer := render.NewViewer(job, opts.SamplesPerPixel, loaded.Settings.MaxDepth)
		if err := ebiten.RunGame(viewer); err != nil {
			logger.Warn("preview window closed with an error", zap.Error(err))
		}
	}

	if err := <-renderErrCh; err != nil {
		return fmt.Errorf("rendering: %w", err)
	}
	logger.Info("render finished", zap.Duration("elapsed", time.Since(start)))

	outPath := strings.TrimSuffix(scenePath, filepath.Ext(scenePath)) + ".exr"
	if err := imageio.WriteEXR(outPath, job.Image); err != nil {
		return fmt.Errorf("writing EXR: %w", err)
	}
	logger.Info("wrote image", zap.String("path", outPath))
	return nil
}
