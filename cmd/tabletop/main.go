package main

import (
	"flag"
	"log"
	"runtime"

	"tabletop/internal/config"
	"tabletop/internal/export"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xlab/closer"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	// closer.Close exits the process, so it has to run after every other
	// deferred cleanup.
	defer closer.Close()

	configPath := flag.String("config", "tabletop.toml", "path to the TOML settings file")
	exportPath := flag.String("export", "", "write the scene to a .gltf/.glb file and exit")
	title := flag.String("title", "", "window title override")
	flag.Parse()

	log.SetPrefix("tabletop: ")
	if err := config.LoadAndApply(*configPath); err != nil {
		log.Printf("config: %v, using defaults", err)
	}
	settings := config.Get()
	if *title != "" {
		settings.Window.Title = *title
		config.Set(settings)
	}

	if *exportPath != "" {
		if err := export.WriteScene(settings.Assets.TexturesDir, *exportPath); err != nil {
			closer.Fatalln(err)
		}
		return
	}

	if err := glfw.Init(); err != nil {
		closer.Fatalln("glfw init:", err)
	}

	app, err := setup(settings)
	if err != nil {
		glfw.Terminate()
		closer.Fatalln(err)
	}
	closer.Bind(app.closeWatcher)

	app.run()
	app.dispose()
	glfw.Terminate()
}
