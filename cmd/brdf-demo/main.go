package main

import (
	"os"

	"github.com/urfave/cli"

	"brdf-demo/log"
)

var logger = log.New("brdf-demo")

func main() {
	app := cli.NewApp()
	app.Name = "brdf-demo"
	app.Usage = "inspect a Cook-Torrance BRDF term by term"
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
		cli.StringFlag{
			Name:  "config, c",
			Usage: "load scene settings from a YAML `FILE`",
		},
		cli.IntFlag{
			Name:  "width",
			Usage: "window width, overrides the config",
		},
		cli.IntFlag{
			Name:  "height",
			Usage: "window height, overrides the config",
		},
		cli.StringFlag{
			Name:  "title",
			Usage: "window title, overrides the config",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "run",
			Usage: "open the demo window",
			Description: `
Show the textured ball lit by a single point light. Arrow keys, W and S move
the eye; B, F, D and G switch between the complete BRDF and its F, D and G
terms; R and E step roughness and specular, T reverses the step direction.`,
			Action: Run,
		},
		{
			Name:   "info",
			Usage:  "print statistics for the configured meshes and textures",
			Action: Info,
		},
	}
	app.Action = Run

	if err := app.Run(os.Args); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}
