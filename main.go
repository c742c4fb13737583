package main

import (
	"context"
	"embed"
	"fmt"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/linux"
	"gorm.io/gorm/logger"

	"github.com/moonheart/banana-slides/internal/database"
	"github.com/moonheart/banana-slides/internal/events"
	"github.com/moonheart/banana-slides/internal/gateway"
	"github.com/moonheart/banana-slides/internal/services"
	"github.com/moonheart/banana-slides/internal/utils"
)

//go:embed all:frontend/dist
var assets embed.FS

const defaultBackendURL = "http://localhost:5000"

func main() {

	app := NewApp()

	if err := utils.LoadEnv(); err != nil {
		fmt.Println("No .env file loaded:", err)
	}

	db, err := database.Init(database.Config{
		LogLevel: logger.Warn,
	})
	if err != nil {
		fmt.Println("Error opening database:", err)
		return
	}

	if sqlDB, err := db.DB(); err == nil {
		app.dbClose = sqlDB.Close
	}

	app.backendURL = utils.Getenv("BANANA_SLIDES_API_URL", defaultBackendURL)

	gw := gateway.NewHTTPSettingsGateway(app.backendURL)
	svc := services.NewServices(db, gw)

	// Create application with options
	err = wails.Run(&options.App{
		Title:  "Banana Slides",
		Width:  1024,
		Height: 768,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		Linux: &linux.Options{
			WindowIsTranslucent: false,
			WebviewGpuPolicy:    linux.WebviewGpuPolicyAlways,
			ProgramName:         "Banana Slides",
		},
		BackgroundColour: &options.RGBA{R: 27, G: 38, B: 54, A: 1},
		OnStartup: func(ctx context.Context) {
			app.startup(ctx)
			events.EnableRuntimeEmitter()
			events.EnableRuntimeStateEmitter()
			svc.Settings.Startup(ctx)
		},
		OnShutdown: app.shutdown,
		Bind: []interface{}{
			app,
			svc.Settings,
		},
	})

	if err != nil {
		println("Error:", err.Error())
	}
}
