package cmd

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/df07/go-sphere-raytracer/pkg/imageio"
	"github.com/df07/go-sphere-raytracer/pkg/renderer"
	"github.com/df07/go-sphere-raytracer/pkg/scene"
)

// RenderFrame renders a still frame of a built-in scene.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	opts := renderer.Options{
		Width:      ctx.Int("width"),
		Height:     ctx.Int("height"),
		Workers:    ctx.Int("workers"),
		BandHeight: ctx.Int("band-height"),
	}

	sc, info, err := scene.Lookup(ctx.String("scene"))
	if err != nil {
		return err
	}
	logger.Noticef("rendering %q (%d spheres, %d lights) at %dx%d",
		info.ID, len(sc.Surfaces()), len(sc.Lights()), opts.Width, opts.Height)

	out := ctx.String("out")
	stats, err := sc.RenderWithOptions(opts, imageio.NewPNGFile(out))
	if err != nil {
		return err
	}

	displayFrameStats(stats)
	logger.Noticef("wrote frame to %s", out)

	return nil
}

func displayFrameStats(stats renderer.RenderStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Band", "Worker", "Rows", "% of frame", "Render time"})
	for _, band := range stats.Bands {
		table.Append([]string{
			fmt.Sprintf("%d", band.ID),
			fmt.Sprintf("%d", band.Worker),
			fmt.Sprintf("%d-%d", band.FirstRow, band.FirstRow+band.Rows-1),
			fmt.Sprintf("%02.1f %%", band.FramePercent(stats.Height)),
			band.RenderTime.String(),
		})
	}
	table.SetFooter([]string{
		"", fmt.Sprintf("%d workers", stats.Workers), "",
		fmt.Sprintf("%.0f px/s", stats.PixelsPerSecond()), stats.RenderTime.String(),
	})

	table.Render()
	logger.Noticef("frame statistics\n%s", buf.String())
}
