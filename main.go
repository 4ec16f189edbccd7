package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/qrank/quadrant-ranking/internal/board"
	"github.com/qrank/quadrant-ranking/internal/config"
	"github.com/qrank/quadrant-ranking/internal/platform"
	"github.com/qrank/quadrant-ranking/internal/storage"
	"github.com/qrank/quadrant-ranking/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.qrank.quadrant-ranking"
	AppName = "Quadrant Ranking"

	WindowWidth  = 960
	WindowHeight = 640
)

func main() {
	// Log version information
	fmt.Printf("Quadrant Ranking v%s starting...\n", version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	dataDir := settings.GetDataDirectory()
	if err := platform.CreateDirectoryIfNotExists(dataDir); err != nil {
		fmt.Printf("failed to ensure data dir: %v\n", err)
	}

	boardFile := storage.NewBoardFile(dataDir)
	loadedBoard, loadErr := boardFile.Load()

	boardSvc := board.NewService(loadedBoard)

	// Create and setup UI
	rootUI := ui.NewRootUI(myWindow, myApp, boardSvc, boardFile, loadErr)
	myWindow.SetOnClosed(rootUI.Close)

	// Show and run
	myWindow.ShowAndRun()
}
