package ui

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	fynetooltip "github.com/dweymouth/fyne-tooltip"

	"github.com/piwi3910/PlanterCut/internal/diagram"
	"github.com/piwi3910/PlanterCut/internal/engine"
	"github.com/piwi3910/PlanterCut/internal/model"
	"github.com/piwi3910/PlanterCut/internal/project"
	"github.com/piwi3910/PlanterCut/internal/ui/widgets"
)

// App holds all application state and UI references.
type App struct {
	app    fyne.App
	window fyne.Window
	theme  *PlanterCutTheme

	config      model.PlanterConfig
	projectPath string
	appConfig   model.AppConfig
	presets     model.PresetStore
	stock       model.StockCatalog
	history     *History
	lastEdit    string // Label of the last edit, to coalesce keystrokes into one undo step

	layout    model.Layout
	layoutErr error
	scene     diagram.Scene
	sceneErr  error

	shareBaseURL string

	// UI references for dynamic updates
	tabs             *container.AppTabs
	formContainer    *fyne.Container
	plankContainer   *fyne.Container
	diagramContainer *fyne.Container
	compareContainer *fyne.Container
	statusLabel      *widget.Label
}

// NewApp creates the application state. Preferences, presets and the stock
// catalog are read from ~/.plantercut; a missing or unreadable file falls
// back to defaults. A nil initial config starts a new project with the
// user's default stock.
func NewApp(application fyne.App, window fyne.Window, initial *model.PlanterConfig, shareBaseURL string) *App {
	a := &App{
		app:          application,
		window:       window,
		history:      NewHistory(),
		shareBaseURL: shareBaseURL,
	}

	var err error
	if a.appConfig, err = project.LoadAppConfig(project.DefaultConfigPath()); err != nil {
		slog.Warn("load preferences", "error", err)
		a.appConfig = model.DefaultAppConfig()
	}
	if a.presets, err = project.LoadPresets(project.DefaultPresetPath()); err != nil {
		slog.Warn("load presets", "error", err)
		a.presets = model.NewPresetStore()
	}
	if a.stock, err = project.LoadStockCatalog(project.DefaultStockPath()); err != nil {
		slog.Warn("load stock catalog", "error", err)
		a.stock = model.DefaultStockCatalog()
	}

	if initial != nil {
		a.config = initial.Clone()
	} else {
		a.config = a.newConfig()
	}

	a.theme = ThemeForPreference(a.appConfig.Theme)
	application.Settings().SetTheme(a.theme)
	return a
}

// newConfig returns the default project with the user's default stock.
func (a *App) newConfig() model.PlanterConfig {
	cfg := model.DefaultConfig()
	a.appConfig.ApplyToConfig(&cfg)
	return cfg
}

// SetupMenus creates the native menu bar for the application.
func (a *App) SetupMenus() {
	recentMenu := fyne.NewMenuItem("Open Recent", nil)
	recentMenu.ChildMenu = a.buildRecentMenu()

	// File Menu
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("New Project", func() {
			a.setConfig(a.newConfig(), "New Project")
			a.projectPath = ""
		}),
		fyne.NewMenuItem("Open Project...", a.loadProject),
		recentMenu,
		fyne.NewMenuItem("Save Project...", a.saveProject),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Import Settings from CSV...", a.importCSV),
		fyne.NewMenuItem("Import Settings from Excel...", a.importExcel),
		fyne.NewMenuItem("Import Footprint from DXF...", a.importFootprint),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export PDF...", func() { a.exportFile(exportPDF) }),
		fyne.NewMenuItem("Export DXF...", func() { a.exportFile(exportDXF) }),
		fyne.NewMenuItem("Export Excel...", func() { a.exportFile(exportXLSX) }),
		fyne.NewMenuItem("Export SVG Diagram...", func() { a.exportFile(exportSVG) }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Share Link...", a.showShareDialog),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			a.window.Close()
		}),
	)

	// Edit Menu
	editMenu := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Undo", a.undo),
		fyne.NewMenuItem("Redo", a.redo),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Reset to Defaults", func() {
			a.setConfig(model.DefaultConfig(), "Reset")
		}),
	)

	// Tools Menu
	toolsMenu := fyne.NewMenu("Tools",
		fyne.NewMenuItem("Stock Catalog...", a.showStockCatalogDialog),
		fyne.NewMenuItem("Save as Preset...", a.showSavePresetDialog),
		fyne.NewMenuItem("Presets...", a.showPresetsDialog),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Settings...", a.showSettingsDialog),
		fyne.NewMenuItem("Import / Export Data...", a.showImportExportDialog),
	)

	// Help Menu
	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", a.showAboutDialog),
	)

	a.window.SetMainMenu(fyne.NewMainMenu(fileMenu, editMenu, toolsMenu, helpMenu))
}

func (a *App) buildRecentMenu() *fyne.Menu {
	if len(a.appConfig.RecentProjects) == 0 {
		item := fyne.NewMenuItem("(none)", nil)
		item.Disabled = true
		return fyne.NewMenu("", item)
	}
	var items []*fyne.MenuItem
	for _, path := range a.appConfig.RecentProjects {
		p := path
		items = append(items, fyne.NewMenuItem(filepath.Base(p), func() {
			a.openPath(p)
		}))
	}
	return fyne.NewMenu("", items...)
}

func (a *App) showAboutDialog() {
	dialog.ShowInformation(
		"About PlanterCut",
		"PlanterCut - Planter Box Cut List Planner\n\n"+
			"Plans the cut list and assembly drawing for a\n"+
			"slatted planter box built from stock planks.\n\n"+
			"Version 1.0.0",
		a.window,
	)
}

// Build constructs the full UI and returns the root container.
func (a *App) Build() fyne.CanvasObject {
	a.formContainer = container.NewStack()
	a.plankContainer = container.NewStack()
	a.diagramContainer = container.NewStack()
	a.compareContainer = container.NewStack()
	a.statusLabel = widget.NewLabel("")

	a.tabs = container.NewAppTabs(
		container.NewTabItem("Cut List", a.plankContainer),
		container.NewTabItem("Diagram", a.diagramContainer),
		container.NewTabItem("Compare Stock", a.compareContainer),
	)
	a.tabs.SetTabLocation(container.TabLocationTop)

	toolbar := container.NewHBox(
		newIconButtonWithTooltip(theme.ContentUndoIcon(), "Undo", a.undo),
		newIconButtonWithTooltip(theme.ContentRedoIcon(), "Redo", a.redo),
		widget.NewSeparator(),
		newIconButtonWithTooltip(theme.DocumentSaveIcon(), "Save project", a.saveProject),
		newIconButtonWithTooltip(theme.DocumentPrintIcon(), "Export PDF", func() { a.exportFile(exportPDF) }),
		newIconButtonWithTooltip(theme.MailForwardIcon(), "Share link", a.showShareDialog),
		layout.NewSpacer(),
		a.statusLabel,
	)

	a.refreshForm()
	a.recompute()

	split := container.NewHSplit(container.NewVScroll(a.formContainer), a.tabs)
	split.Offset = 0.3
	root := container.NewBorder(toolbar, nil, nil, nil, split)
	return fynetooltip.AddWindowToolTipLayer(root, a.window.Canvas())
}

// ─── State ─────────────────────────────────────────────────

// mutate applies an edit to the configuration as one undo step. Repeated
// edits with the same label (keystrokes in one field) share a step.
func (a *App) mutate(label string, fn func(cfg *model.PlanterConfig)) {
	if label != a.lastEdit {
		a.history.Push(MakeSnapshot(a.config, label))
		a.lastEdit = label
	}
	fn(&a.config)
	a.recompute()
}

// setConfig replaces the whole configuration as one undo step.
func (a *App) setConfig(cfg model.PlanterConfig, label string) {
	a.history.Push(MakeSnapshot(a.config, label))
	a.lastEdit = ""
	a.config = cfg.Clone()
	a.refreshForm()
	a.recompute()
}

func (a *App) undo() {
	snap, ok := a.history.Undo(MakeSnapshot(a.config, "current"))
	if !ok {
		return
	}
	a.config = snap.Config
	a.lastEdit = ""
	a.refreshForm()
	a.recompute()
}

func (a *App) redo() {
	snap, ok := a.history.Redo(MakeSnapshot(a.config, "current"))
	if !ok {
		return
	}
	a.config = snap.Config
	a.lastEdit = ""
	a.refreshForm()
	a.recompute()
}

// recompute derives the layout and drawing from the current configuration
// and refreshes every result view.
func (a *App) recompute() {
	a.layout, a.layoutErr = engine.ComputeLayout(a.config)
	if a.layoutErr == nil {
		a.scene, a.sceneErr = diagram.Compose(a.layout)
	} else {
		a.scene, a.sceneErr = diagram.Scene{}, a.layoutErr
	}

	if a.plankContainer == nil {
		return
	}

	a.plankContainer.RemoveAll()
	if a.layoutErr != nil {
		errLabel := widget.NewLabel(a.layoutErr.Error())
		errLabel.Importance = widget.DangerImportance
		errLabel.Wrapping = fyne.TextWrapWord
		a.plankContainer.Add(errLabel)
	} else {
		a.plankContainer.Add(widgets.RenderPlanks(a.layout, a.appConfig.PricePerPlank, a.appConfig.WastePercent))
	}
	a.plankContainer.Refresh()

	a.diagramContainer.RemoveAll()
	a.diagramContainer.Add(widgets.RenderDiagram(a.scene, a.sceneErr))
	a.diagramContainer.Refresh()

	a.refreshCompare()
	a.statusLabel.SetText(a.status())
}

func (a *App) status() string {
	switch {
	case a.layoutErr != nil:
		return "Cannot cut: " + a.layoutErr.Error()
	case !a.layout.Computed():
		return "Configuration incomplete"
	}
	return fmt.Sprintf("%d planks of %s x %s", a.layout.TotalPlanks,
		model.FormatInches(a.layout.PlankLength), model.FormatInches(a.layout.PlankWidth))
}

// ─── Project Files ─────────────────────────────────────────

var projectFilter = storage.NewExtensionFileFilter([]string{".json", ".yaml", ".yml"})

func (a *App) saveProject() {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		path := writer.URI().Path()
		if err := project.SaveConfig(path, a.config); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		a.projectPath = path
		a.rememberRecent(path)
	}, a.window)
	d.SetFilter(projectFilter)
	name := a.config.Title
	if name == "" {
		name = "planter"
	}
	d.SetFileName(fileStem(name) + ".yaml")
	d.Show()
}

func (a *App) loadProject() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		a.openPath(reader.URI().Path())
	}, a.window)
	d.SetFilter(projectFilter)
	d.Show()
}

func (a *App) openPath(path string) {
	cfg, err := project.LoadConfig(path)
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	a.setConfig(cfg, "Open Project")
	a.projectPath = path
	a.rememberRecent(path)
}

// rememberRecent records path in the recent list and rebuilds the menu.
func (a *App) rememberRecent(path string) {
	a.appConfig.AddRecent(path)
	if err := a.saveAppConfig(); err != nil {
		slog.Warn("save preferences", "error", err)
	}
	a.SetupMenus()
}

// fileStem turns a title into a file name without extension.
func fileStem(title string) string {
	stem := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			return r
		}
		return '-'
	}, strings.TrimSpace(title))
	return strings.Trim(stem, "-")
}
