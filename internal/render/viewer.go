package render

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// Viewer is an ebiten.Game that polls a Job's framebuffer while Render
// fills it from worker goroutines, the live-preview counterpart to the
// teacher's ProgressiveRenderer (rt/renderer.go) adapted for a
// renderer whose rows complete out of order across many goroutines
// rather than one at a time on the UI goroutine itself.
type Viewer struct {
	job             *Job
	width, height   int
	samplesPerPixel int
	maxDepth        int
	start           time.Time
	face            text.Face
}

func NewViewer(job *Job, samplesPerPixel, maxDepth int) *Viewer {
	return &Viewer{
		job:             job,
		width:           job.Image.Width,
		height:          job.Image.Height,
		samplesPerPixel: samplesPerPixel,
		maxDepth:        maxDepth,
		start:           time.Now(),
		face:            text.NewGoXFace(basicfont.Face7x13),
	}
}

func (v *Viewer) Update() error { return nil }

func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.width, v.height
}

func (v *Viewer) Draw(screen *ebiten.Image) {
	frame := ebiten.NewImageFromImage(v.job.Image.ToneMappedRGBA())
	screen.DrawImage(frame, nil)
	v.drawStatsBar(screen)
}

func (v *Viewer) drawStatsBar(screen *ebiten.Image) {
	barHeight := 20
	barY := v.height - barHeight
	bar := ebiten.NewImage(v.width, barHeight)
	bar.Fill(color.RGBA{A: 255})

	done := v.job.RowsDone()
	progress := float64(done) / float64(v.job.Height()) * 100

	statsText := fmt.Sprintf("%dx%d | SPP:%d | Depth:%d | row %d/%d | %.1f%% | %s",
		v.width, v.height, v.samplesPerPixel, v.maxDepth, done, v.job.Height(), progress, time.Since(v.start).Round(time.Second))

	opts := &text.DrawOptions{}
	opts.GeoM.Translate(4, 4)
	opts.ColorScale.ScaleWithColor(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	text.Draw(bar, statsText, v.face, opts)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(barY))
	screen.DrawImage(bar, op)
}

// Done reports whether every scanline has completed.
func (v *Viewer) Done() bool { return v.job.RowsDone() >= v.job.Height() }
