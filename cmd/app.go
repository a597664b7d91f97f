package cmd

import (
	"github.com/urfave/cli"

	"github.com/df07/go-sphere-raytracer/pkg/renderer"
)

func init() {
	// -v is taken by the verbosity flag
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}
}

// NewApp builds the command line application.
func NewApp() *cli.App {
	defaults := renderer.DefaultOptions()

	app := cli.NewApp()
	app.Name = "sphere-raytracer"
	app.Usage = "render scenes of spheres with direct lighting and hard shadows"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a built-in scene to a PNG file",
			Description: `
Cast one ray per pixel through the scene camera, shade the nearest sphere
using the first light of the scene and write the frame as PNG.`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene, s",
					Value: "default",
					Usage: "built-in scene to render (see list-scenes)",
				},
				cli.IntFlag{
					Name:  "width",
					Value: defaults.Width,
					Usage: "frame width",
				},
				cli.IntFlag{
					Name:  "height",
					Value: defaults.Height,
					Usage: "frame height",
				},
				cli.IntFlag{
					Name:  "workers, w",
					Value: defaults.Workers,
					Usage: "number of parallel workers (0 = number of CPUs)",
				},
				cli.IntFlag{
					Name:  "band-height",
					Value: defaults.BandHeight,
					Usage: "rows per work unit (0 = split evenly across workers)",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "test.png",
					Usage: "image filename for the rendered frame",
				},
			},
			Action: RenderFrame,
		},
		{
			Name:   "list-scenes",
			Usage:  "list the built-in scenes",
			Action: ListScenes,
		},
	}

	return app
}
