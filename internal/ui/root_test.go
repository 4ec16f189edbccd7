package ui

import (
	"path/filepath"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"

	"github.com/qrank/quadrant-ranking/internal/board"
	"github.com/qrank/quadrant-ranking/internal/model"
	"github.com/qrank/quadrant-ranking/internal/storage"
)

func TestRootUI_SaveFailureNotifiesFromBackground(t *testing.T) {
	app := test.NewApp()
	window := app.NewWindow("test")
	defer window.Close()

	// Board file inside a directory that does not exist, so every save fails
	missingDir := filepath.Join(t.TempDir(), "missing")
	boardFile := storage.NewBoardFile(missingDir)

	store := board.NewService(model.DefaultBoard())
	ui := NewRootUI(window, app, store, boardFile, nil)
	defer ui.Close()

	// Autosave runs on a timer goroutine, not the fyne event loop; the
	// failure notification must still reach the panel safely
	done := make(chan struct{})
	go func() {
		ui.saveBoard(false)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("saveBoard did not return")
	}

	if !ui.notificationContainer.Visible() {
		t.Error("Expected notification panel to be visible after failed save")
	}
	if ui.notificationLabel.Text == "" {
		t.Error("Expected a failure message in the notification panel")
	}
}
