package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/multicount/multi-counter/internal/config"
	"github.com/multicount/multi-counter/internal/store"
	"github.com/multicount/multi-counter/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.multicount.multi-counter"
	AppName = "Multi Counter"

	WindowWidth  = 400
	WindowHeight = 460
)

func main() {
	// Log version information
	fmt.Printf("%s v%s starting...\n", AppName, version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize the context store from the configured save file
	settings := config.NewSettings(myApp)
	contexts := store.NewStore(settings.GetDataFilePath())
	contexts.Load()

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, contexts)

	// Show and run
	myWindow.ShowAndRun()
}
