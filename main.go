package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"go.uber.org/zap"

	"github.com/tubesaver/tubesaver/internal/config"
	"github.com/tubesaver/tubesaver/internal/fetch"
	"github.com/tubesaver/tubesaver/internal/logging"
	"github.com/tubesaver/tubesaver/internal/platform"
	"github.com/tubesaver/tubesaver/internal/provider"
	"github.com/tubesaver/tubesaver/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const AppID = "com.tubesaver.app"

func main() {
	fmt.Printf("TubeSaver v%s starting...\n", version)

	logger := logging.New(logging.DefaultLogFile)
	defer logger.Sync()

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	myWindow := myApp.NewWindow("TubeSaver")
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))
	myWindow.SetFixedSize(true)

	settings := config.NewSettings(myApp)
	downloadsDir := settings.GetDownloadDirectory()
	if err := platform.CreateDirectoryIfNotExists(downloadsDir); err != nil {
		logger.Warn("failed to ensure downloads dir", zap.String("dir", downloadsDir), zap.Error(err))
	}

	yt := provider.NewYTV1(provider.Options{
		CookiesPath: settings.GetCookiesFile(),
		Log:         logger,
	})
	fetcher := fetch.NewService(yt, downloadsDir, logger)

	ui.NewRootUI(myWindow, myApp, fetcher, logger)

	myWindow.ShowAndRun()
}
