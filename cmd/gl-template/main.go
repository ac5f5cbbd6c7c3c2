package main

import (
	"log"
	"runtime"

	"gl-template/internal/config"
	"gl-template/internal/game"
	"gl-template/internal/input"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	// GLFW and the GL context must stay on the main thread
	runtime.LockOSThread()
}

func main() {
	if err := config.LoadEnv(); err != nil {
		log.Printf("Ignoring invalid settings: %v", err)
	}

	if err := glfw.Init(); err != nil {
		panic(err)
	}
	defer glfw.Terminate()

	window, err := game.SetupWindow()
	if err != nil {
		panic(err)
	}
	defer window.Destroy()

	app := game.NewApp(window, input.NewInputManager())
	defer app.Dispose()

	app.Run()
}
