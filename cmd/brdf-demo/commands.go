package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"brdf-demo/config"
	"brdf-demo/core"
	"brdf-demo/demo"
	"brdf-demo/log"
	"brdf-demo/scene"
)

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetModuleLevel("brdf-demo", log.Debug)
		log.SetModuleLevel("demo", log.Debug)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}

// loadConfig reads the config file, if any, and applies flag overrides.
func loadConfig(ctx *cli.Context) (config.Config, error) {
	cfg := config.Default()
	if path := ctx.GlobalString("config"); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return cfg, err
		}
	}

	if w := ctx.GlobalInt("width"); w != 0 {
		cfg.Window.Width = w
	}
	if h := ctx.GlobalInt("height"); h != 0 {
		cfg.Window.Height = h
	}
	if t := ctx.GlobalString("title"); t != "" {
		cfg.Window.Title = t
	}
	return cfg, cfg.Validate()
}

// Run opens the window and runs the demo until it is closed.
func Run(ctx *cli.Context) error {
	setupLogging(ctx)

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	window, err := core.NewWindow(core.WindowConfig{
		Width:     cfg.Window.Width,
		Height:    cfg.Window.Height,
		Title:     cfg.Window.Title,
		Resizable: true,
		VSync:     cfg.Window.VSync,
	})
	if err != nil {
		return err
	}
	defer window.Destroy()

	d, err := demo.New(cfg, window)
	if err != nil {
		return err
	}
	defer d.Destroy()

	return d.Run()
}

// Info loads every configured asset on the CPU and prints a summary table.
func Info(ctx *cli.Context) error {
	setupLogging(ctx)

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := writeAssetTable(&buf, cfg); err != nil {
		return err
	}
	logger.Noticef("scene assets\n%s", buf.String())
	return nil
}

func writeAssetTable(w io.Writer, cfg config.Config) error {
	objects := []struct {
		name string
		obj  config.ObjectConfig
	}{
		{"ball", cfg.Objects.Ball},
		{"light", cfg.Objects.Light},
	}

	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Object", "Mesh", "Scale", "Vertices", "Triangles", "Extent", "Texture"})

	totalVerts, totalTris := 0, 0
	for _, o := range objects {
		asset, err := scene.LoadAsset(cfg.Path(o.obj.Mesh), cfg.Path(o.obj.Texture), o.obj.Scale)
		if err != nil {
			return fmt.Errorf("%s: %w", o.name, err)
		}
		b := asset.Mesh.Bounds()
		size := b.Max.Sub(b.Min)
		table.Append([]string{
			o.name,
			o.obj.Mesh,
			fmt.Sprintf("%.2f", o.obj.Scale),
			fmt.Sprintf("%d", len(asset.Mesh.Vertices)),
			fmt.Sprintf("%d", asset.Mesh.TriangleCount()),
			fmt.Sprintf("%.2f x %.2f x %.2f", size.X, size.Y, size.Z),
			fmt.Sprintf("%s (%dx%d)", asset.Texture.Name, asset.Texture.Width, asset.Texture.Height),
		})
		totalVerts += len(asset.Mesh.Vertices)
		totalTris += asset.Mesh.TriangleCount()
	}
	table.SetFooter([]string{"", "", "TOTAL", fmt.Sprintf("%d", totalVerts), fmt.Sprintf("%d", totalTris), "", ""})

	table.Render()
	return nil
}
