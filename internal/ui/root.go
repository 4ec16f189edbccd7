package ui

import (
	"log"
	"path/filepath"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/qrank/quadrant-ranking/internal/board"
	"github.com/qrank/quadrant-ranking/internal/config"
	"github.com/qrank/quadrant-ranking/internal/model"
	"github.com/qrank/quadrant-ranking/internal/platform"
	"github.com/qrank/quadrant-ranking/internal/storage"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	store        board.Store
	boardFile    *storage.BoardFile
	watcher      *storage.Watcher
	settings     *config.Settings
	localization *Localization

	controller *InteractionController
	quadCanvas *QuadrantCanvas

	// Sidebar
	itemList  *widget.List
	listItems []model.Item

	// Toolbar
	addBtn  *widget.Button
	axesBtn *widget.Button
	saveBtn *widget.Button

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label

	// Autosave debouncing
	saveMutex sync.Mutex
	saveTimer *time.Timer
	reloading bool
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, store board.Store, boardFile *storage.BoardFile, loadErr error) *RootUI {
	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		store:        store,
		boardFile:    boardFile,
		settings:     settings,
		localization: localization,
	}

	ui.controller = NewInteractionController(store)
	ui.controller.SetPlaceRequestCallback(ui.onPlaceRequest)

	// Apply snap-to-grid preference before any mutation happens
	ui.applyGridStep()

	// Set window title
	window.SetTitle(localization.GetText(KeyAppTitle))

	// Set up callback for board updates
	store.SetUpdateCallback(ui.onBoardUpdate)

	ui.setupUI()

	if loadErr != nil {
		log.Printf("Board load failed: %v", loadErr)
		ui.showNotification(IconError + " " + localization.GetText(KeyLoadFailed))
	}

	ui.startWatcher()
	return ui
}

// Close stops background watchers; wire it to the window close hook
func (ui *RootUI) Close() {
	if ui.watcher != nil {
		if err := ui.watcher.Close(); err != nil {
			log.Printf("Error closing board file watcher: %v", err)
		}
		ui.watcher = nil
	}
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	// Create menu
	ui.createMenu()

	// Toolbar buttons
	ui.addBtn = widget.NewButton(ui.localization.GetText(KeyAddItem), ui.onAddItem)
	ui.addBtn.Importance = widget.HighImportance
	ui.axesBtn = widget.NewButton(IconAxes+" "+ui.localization.GetText(KeyAxisSettings), ui.onShowAxisSettings)
	ui.saveBtn = widget.NewButton(IconSave+" "+ui.localization.GetText(KeySaveNow), func() { ui.saveBoard(true) })

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	toolbar := container.NewHBox(ui.addBtn, ui.axesBtn, ui.saveBtn, settingsBtn)

	// Create notification panel under the toolbar (hidden by default)
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Alignment = fyne.TextAlignLeading
	ui.notificationContainer = container.NewHBox(container.NewPadded(ui.notificationLabel))
	ui.notificationContainer.Hide()

	topCombined := container.NewVBox(toolbar, ui.notificationContainer)

	// Sidebar item list
	ui.itemList = widget.NewList(
		func() int {
			return len(ui.listItems)
		},
		func() fyne.CanvasObject { return ui.createItemRow() },
		func(id widget.ListItemID, obj fyne.CanvasObject) { ui.updateItemRow(id, obj) },
	)

	// Quadrant canvas
	ui.quadCanvas = NewQuadrantCanvas(ui.controller, ui.store.Board())
	ui.quadCanvas.SetMarkerTappedCallback(ui.onMarkerTapped)

	split := container.NewHSplit(ui.itemList, ui.quadCanvas)
	split.SetOffset(SidebarSplitOffset)

	content := container.NewBorder(
		topCombined, // top
		nil,         // bottom
		nil,         // left
		nil,         // right
		split,       // center
	)

	ui.window.SetContent(content)
	ui.refreshBoardViews()

	log.Printf("UI setup completed successfully")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	// File menu items
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)
	saveItem := fyne.NewMenuItem(ui.localization.GetText(KeySaveNow), func() { ui.saveBoard(true) })
	revealItem := fyne.NewMenuItem(ui.localization.GetText(KeyRevealBoardFile), ui.onRevealBoardFile)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	for code, name := range availableLanguages {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	// Create main menu
	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), saveItem, revealItem, settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	// Update localization
	ui.localization.SetLanguage(langCode)

	// Save to settings
	ui.settings.SetLanguage(langCode)

	// Update UI texts
	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	ui.addBtn.SetText(ui.localization.GetText(KeyAddItem))
	ui.axesBtn.SetText(IconAxes + " " + ui.localization.GetText(KeyAxisSettings))
	ui.saveBtn.SetText(IconSave + " " + ui.localization.GetText(KeySaveNow))

	ui.itemList.Refresh()
}

// createItemRow creates a new sidebar row widget
func (ui *RootUI) createItemRow() fyne.CanvasObject {
	row := NewItemRow(model.Item{}, ui.localization)
	row.SetCallbacks(ui.onEditItem, ui.onRemoveItem)
	return row
}

// updateItemRow binds one sidebar row to its item
func (ui *RootUI) updateItemRow(id widget.ListItemID, obj fyne.CanvasObject) {
	if id >= len(ui.listItems) {
		return
	}

	if row, ok := obj.(*ItemRow); ok {
		row.SetCallbacks(ui.onEditItem, ui.onRemoveItem)
		row.UpdateItem(ui.listItems[id])
	}
}

// onBoardUpdate handles change notifications from the board service. It runs
// after every successful mutation, including live drag moves.
func (ui *RootUI) onBoardUpdate() {
	fyne.Do(ui.refreshBoardViews)

	ui.saveMutex.Lock()
	skip := ui.reloading || !ui.settings.GetAutoSave()
	ui.saveMutex.Unlock()
	if !skip {
		ui.scheduleAutoSave()
	}
}

// refreshBoardViews redraws the canvas and the sidebar from a fresh snapshot
func (ui *RootUI) refreshBoardViews() {
	snapshot := ui.store.Board()

	ui.listItems = ui.listItems[:0]
	for _, item := range snapshot.Items {
		ui.listItems = append(ui.listItems, *item)
	}

	ui.quadCanvas.SetBoard(snapshot)
	ui.itemList.Refresh()
}

// scheduleAutoSave saves the board once the burst of changes settles. Live
// drags emit an update per pointer move; writing every one of them would
// hammer the disk.
func (ui *RootUI) scheduleAutoSave() {
	ui.saveMutex.Lock()
	defer ui.saveMutex.Unlock()

	if ui.saveTimer != nil {
		ui.saveTimer.Stop()
	}
	ui.saveTimer = time.AfterFunc(AutoSaveDebounce, func() {
		ui.saveBoard(false)
	})
}

// saveBoard persists the board. Manual saves report success in the
// notification panel; autosaves stay silent unless something goes wrong.
func (ui *RootUI) saveBoard(manual bool) {
	if ui.watcher != nil {
		ui.watcher.Suppress(true)
		defer ui.watcher.Suppress(false)
	}

	if err := ui.boardFile.Save(ui.store.Board()); err != nil {
		log.Printf("Error saving board: %v", err)
		ui.showNotification(IconError + " " + ui.localization.GetText(KeySaveFailed))
		return
	}

	if manual {
		ui.showNotification(ui.localization.GetText(KeyBoardSaved))
	}
}

// startWatcher begins watching the board file for external edits
func (ui *RootUI) startWatcher() {
	watcher, err := storage.NewWatcher(ui.boardFile, ui.onExternalChange)
	if err != nil {
		log.Printf("Could not start board file watcher: %v", err)
		return
	}
	ui.watcher = watcher
}

// onExternalChange reloads the board after it changed on disk outside the
// app. Runs on the watcher goroutine, so all UI work goes through fyne.Do.
func (ui *RootUI) onExternalChange() {
	loaded, err := ui.boardFile.Load()
	if err != nil {
		log.Printf("Error reloading board: %v", err)
		fyne.Do(func() {
			ui.showNotification(IconError + " " + ui.localization.GetText(KeyLoadFailed))
		})
		return
	}

	fyne.Do(func() {
		// The reload itself must not bounce back to disk as an autosave
		ui.saveMutex.Lock()
		ui.reloading = true
		ui.saveMutex.Unlock()

		if err := ui.store.ReplaceBoard(loaded); err != nil {
			log.Printf("Error applying reloaded board: %v", err)
		} else {
			ui.showNotification(ui.localization.GetText(KeyBoardReloaded))
		}

		ui.saveMutex.Lock()
		ui.reloading = false
		ui.saveMutex.Unlock()
	})
}

// showNotification displays a message in the notification panel. Callers
// include the autosave timer and the file watcher, which run off the fyne
// event loop, so the widget work is marshaled through fyne.Do.
func (ui *RootUI) showNotification(message string) {
	if ui.notificationLabel == nil || ui.notificationContainer == nil {
		return
	}
	fyne.Do(func() {
		ui.notificationLabel.SetText(message)
		ui.notificationContainer.Show()
		ui.notificationContainer.Refresh()
	})
}

// onPlaceRequest prompts for a label after a press on empty canvas
func (ui *RootUI) onPlaceRequest(x, y float64) {
	log.Printf("Placement requested at (%.1f, %.1f)", x, y)

	entry := widget.NewEntry()
	entry.SetPlaceHolder(ui.localization.GetText(KeyItemLabel))

	content := container.NewVBox(
		widget.NewLabel(ui.localization.GetText(KeyItemLabel)+":"),
		entry,
	)

	var prompt *dialog.ConfirmDialog
	prompt = dialog.NewCustomConfirm(
		ui.localization.GetText(KeyAddItem),
		ui.localization.GetText(KeySave),
		ui.localization.GetText(KeyCancel),
		content,
		func(confirmed bool) {
			if !confirmed {
				ui.controller.CancelPlacement()
				return
			}
			if _, err := ui.controller.ConfirmPlacement(entry.Text); err != nil {
				// Placement stays pending; reopen with the inline message
				entry.SetValidationError(err)
				prompt.Show()
			}
		},
		ui.window,
	)
	prompt.Show()
	ui.window.Canvas().Focus(entry)
}

// onAddItem opens the full item dialog with the position pre-set to the
// board center
func (ui *RootUI) onAddItem() {
	xAxis := ui.store.Axis(model.Horizontal)
	yAxis := ui.store.Axis(model.Vertical)

	blank := model.Item{X: xAxis.Center(), Y: yAxis.Center()}
	NewItemDialog(ui.window, ui.localization, blank, func(result ItemDialogResult) error {
		item, err := ui.store.AddItem(result.Label, result.X, result.Y)
		if err != nil {
			return err
		}
		ui.applyItemImage(item.ID, "", result.ImagePath)
		return nil
	}).Show()
}

// onEditItem opens the item dialog for an existing item
func (ui *RootUI) onEditItem(itemID string) {
	item, exists := ui.store.GetItem(itemID)
	if !exists {
		log.Printf("Edit requested for unknown item %s", itemID)
		return
	}

	previousImage := item.ImagePath
	NewItemDialog(ui.window, ui.localization, *item, func(result ItemDialogResult) error {
		if err := ui.store.RenameItem(itemID, result.Label); err != nil {
			return err
		}
		if err := ui.store.MoveItem(itemID, result.X, result.Y); err != nil {
			return err
		}
		ui.applyItemImage(itemID, previousImage, result.ImagePath)
		return nil
	}).Show()
}

// applyItemImage imports a newly chosen marker image into the data directory
// and updates the item. Images already under the data directory are kept as
// picked. A cleared path removes the stored copy.
func (ui *RootUI) applyItemImage(itemID, previous, chosen string) {
	if chosen == previous {
		return
	}

	dataDir := ui.settings.GetDataDirectory()

	stored := chosen
	if chosen != "" && !isUnderDir(chosen, dataDir) {
		imported, err := platform.ImportImage(chosen, dataDir, itemID)
		if err != nil {
			log.Printf("Error importing image for item %s: %v", itemID, err)
			ui.showNotification(IconError + " " + ui.localization.GetText(KeySaveFailed))
			return
		}
		stored = imported
	}

	if err := ui.store.SetItemImage(itemID, stored); err != nil {
		log.Printf("Error setting image for item %s: %v", itemID, err)
		return
	}

	if previous != "" && isUnderDir(previous, dataDir) {
		if err := platform.RemoveImage(previous); err != nil {
			log.Printf("Error removing old image %s: %v", previous, err)
		}
	}
}

// isUnderDir reports whether path lives inside dir
func isUnderDir(path, dir string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return filepath.IsLocal(rel)
}

// onRemoveItem asks for confirmation, then deletes the item
func (ui *RootUI) onRemoveItem(itemID string) {
	item, exists := ui.store.GetItem(itemID)
	if !exists {
		return
	}

	imagePath := item.ImagePath
	dialog.ShowConfirm(
		ui.localization.GetText(KeyDeleteItem),
		ui.localization.GetText(KeyDeleteConfirm),
		func(confirmed bool) {
			if !confirmed {
				return
			}
			if err := ui.store.RemoveItem(itemID); err != nil {
				log.Printf("Error removing item %s: %v", itemID, err)
				return
			}
			if imagePath != "" && isUnderDir(imagePath, ui.settings.GetDataDirectory()) {
				if err := platform.RemoveImage(imagePath); err != nil {
					log.Printf("Error removing image %s: %v", imagePath, err)
				}
			}
		},
		ui.window,
	)
}

// onMarkerTapped selects the tapped item's row in the sidebar
func (ui *RootUI) onMarkerTapped(itemID string) {
	for i, item := range ui.listItems {
		if item.ID == itemID {
			ui.itemList.Select(i)
			return
		}
	}
}

// onShowAxisSettings shows the axis dialog
func (ui *RootUI) onShowAxisSettings() {
	NewAxisDialog(ui.window, ui.localization, ui.store, nil).Show()
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.onSettingsSaved).Show()
}

// onSettingsSaved re-applies preferences that affect live behavior
func (ui *RootUI) onSettingsSaved() {
	ui.applyGridStep()

	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.refreshUITexts()
	ui.createMenu()

	ui.applyDataDirectory()
}

// applyGridStep pushes the snap preference into the board service
func (ui *RootUI) applyGridStep() {
	if ui.settings.GetSnapToGrid() {
		ui.store.SetGridStep(ui.settings.GetGridStep())
	} else {
		ui.store.SetGridStep(0)
	}
}

// applyDataDirectory switches the board file and watcher when the data
// directory setting changed, loading whatever board lives there
func (ui *RootUI) applyDataDirectory() {
	dataDir := ui.settings.GetDataDirectory()
	if filepath.Dir(ui.boardFile.Path()) == dataDir {
		return
	}

	log.Printf("Switching data directory to %s", dataDir)
	if err := platform.CreateDirectoryIfNotExists(dataDir); err != nil {
		log.Printf("Error creating data directory %s: %v", dataDir, err)
		ui.showNotification(IconError + " " + ui.localization.GetText(KeySaveFailed))
		return
	}

	if ui.watcher != nil {
		ui.watcher.Close()
		ui.watcher = nil
	}

	ui.boardFile = storage.NewBoardFile(dataDir)
	loaded, err := ui.boardFile.Load()
	if err != nil {
		log.Printf("Error loading board from %s: %v", dataDir, err)
		ui.showNotification(IconError + " " + ui.localization.GetText(KeyLoadFailed))
	} else {
		ui.saveMutex.Lock()
		ui.reloading = true
		ui.saveMutex.Unlock()
		if err := ui.store.ReplaceBoard(loaded); err != nil {
			log.Printf("Error applying board from %s: %v", dataDir, err)
		}
		ui.saveMutex.Lock()
		ui.reloading = false
		ui.saveMutex.Unlock()
	}

	ui.startWatcher()
}

// onRevealBoardFile shows the board file in the system file manager
func (ui *RootUI) onRevealBoardFile() {
	// Save first so the revealed file matches what is on screen
	ui.saveBoard(false)

	if err := platform.OpenFileInManager(ui.boardFile.Path()); err != nil {
		log.Printf("Error revealing board file: %v", err)
		ui.showNotification(IconError + " " + err.Error())
	}
}
