package app

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/jsonlens/jsonlens/internal/config"
	"github.com/jsonlens/jsonlens/internal/diff"
	"github.com/jsonlens/jsonlens/internal/render"
	"github.com/jsonlens/jsonlens/internal/storage"
	"github.com/jsonlens/jsonlens/internal/tree"
	"github.com/jsonlens/jsonlens/internal/ui"
)

// App is the main application controller
type App struct {
	screen     *ui.Screen
	cfg        *config.Config
	doc        *storage.Document
	tree       *ui.TreeView
	search     *ui.SearchBar
	diffView   *ui.DiffView
	compare    bool // launched in two-file compare mode
	statusMsg  string
	statusTime time.Time
	quit       bool
}

// NewApp creates an App browsing a single JSON document
func NewApp(filePath string) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		cfg = config.DefaultConfig()
	}

	doc, err := storage.LoadDocument(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load document: %w", err)
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}

	root := tree.New(doc.Root, cfg.FoldDepth)

	return &App{
		screen:     screen,
		cfg:        cfg,
		doc:        doc,
		tree:       ui.NewTreeView(root),
		search:     ui.NewSearchBar("", doc.Root),
		diffView:   ui.NewDiffView(),
		statusMsg:  "Ready",
		statusTime: time.Now(),
	}, nil
}

// NewCompareApp creates an App comparing two JSON documents side by side
func NewCompareApp(leftPath, rightPath string) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		cfg = config.DefaultConfig()
	}

	left, err := storage.LoadDocument(leftPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load document: %w", err)
	}
	right, err := storage.LoadDocument(rightPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load document: %w", err)
	}

	opts := diff.Options{
		StrictType:       cfg.Diff.StrictType,
		IgnoreArrayOrder: cfg.Diff.IgnoreArrayOrder,
		IgnoreKeyOrder:   cfg.Diff.IgnoreKeyOrder,
	}
	result := diff.Compare(left.Root, right.Root, opts)
	rendered := render.BuildRenderResult(left.Root.EncodeJSON(true), right.Root.EncodeJSON(true), result)

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}

	root := tree.New(left.Root, cfg.FoldDepth)

	a := &App{
		screen:     screen,
		cfg:        cfg,
		doc:        left,
		tree:       ui.NewTreeView(root),
		search:     ui.NewSearchBar("", left.Root),
		diffView:   ui.NewDiffView(),
		compare:    true,
		statusMsg:  "Ready",
		statusTime: time.Now(),
	}
	a.diffView.Show(rendered, result, filepath.Base(leftPath), filepath.Base(rightPath))
	return a, nil
}

// Run starts the main event loop
func (a *App) Run() error {
	defer a.Close()

	eventChan := make(chan tcell.Event)

	go func() {
		for {
			event := a.screen.PollEvent()
			eventChan <- event
			if event == nil {
				break
			}
		}
	}()

	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for !a.quit {
		select {
		case ev := <-eventChan:
			if ev != nil {
				a.handleRawEvent(ev)
			}
		case <-ticker.C:
			a.render()
		}
	}

	return nil
}

// Close shuts down the screen
func (a *App) Close() {
	if a.screen != nil {
		a.screen.Close()
	}
}

// render renders the current state to the screen
func (a *App) render() {
	a.screen.Clear()
	a.screen.UpdateSize()

	if a.diffView.IsVisible() {
		a.diffView.Render(a.screen)
		a.screen.Show()
		return
	}

	width := a.screen.GetWidth()
	height := a.screen.GetHeight()

	// Header: file name and root summary
	header := fmt.Sprintf(" %s  (%s, %d children)",
		filepath.Base(a.doc.FilePath),
		a.doc.Root.TypeDescription(),
		a.doc.Root.ChildCount())
	a.screen.DrawStringLimited(0, 0, header, width, a.screen.HeaderStyle())

	treeStartY := 1
	treeHeight := height - 2
	if a.search.IsActive() || a.search.Query() != "" {
		treeHeight--
	}
	a.tree.Render(a.screen, 0, treeStartY, width, treeHeight)

	if a.search.IsActive() || a.search.Query() != "" {
		a.search.Render(a.screen, height-2)
	}

	a.renderStatusLine(height - 1)
	a.screen.Show()
}

// renderStatusLine draws the mode indicator and the last status message
func (a *App) renderStatusLine(y int) {
	mode := "-- BROWSE --"
	if a.search.IsActive() {
		mode = "-- SEARCH --"
	}
	a.screen.DrawString(0, y, mode, a.screen.StatusModeStyle())

	if a.statusMsg != "Ready" && time.Since(a.statusTime) <= 3*time.Second {
		a.screen.DrawString(len(mode)+1, y, a.statusMsg, a.screen.StatusMessageStyle())
	}

	pos := fmt.Sprintf("%d/%d", a.currentRow(), a.tree.VisibleCount())
	a.screen.DrawString(a.screen.GetWidth()-len(pos), y, pos, a.screen.StatusMessageStyle())
}

func (a *App) currentRow() int {
	if a.tree.VisibleCount() == 0 {
		return 0
	}
	n := a.tree.Selected()
	if n == nil {
		return 0
	}
	for i, v := range a.tree.Root().AllNodes() {
		if v == n {
			return i + 1
		}
	}
	return 0
}

// handleRawEvent processes raw input events
func (a *App) handleRawEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.UpdateSize()
		a.screen.Sync()
	case *tcell.EventKey:
		a.handleKeyEvent(ev)
	}
}

func (a *App) handleKeyEvent(ev *tcell.EventKey) {
	if a.diffView.IsVisible() {
		_, height := a.screen.Size()
		a.diffView.HandleKeyEvent(ev, height-1)
		// In compare mode the diff view is the whole application
		if !a.diffView.IsVisible() && a.compare {
			a.quit = true
		}
		return
	}

	if a.search.IsActive() {
		if a.search.HandleKey(ev) {
			a.jumpToCurrentMatch()
		}
		a.tree.SetMatcher(a.search.Matcher())
		return
	}

	a.handleKeypress(ev)
}

// jumpToCurrentMatch expands ancestors and selects the current search match
func (a *App) jumpToCurrentMatch() {
	path := a.search.CurrentPath()
	if path == nil {
		return
	}
	if a.tree.SelectPath(path) {
		a.SetStatus(fmt.Sprintf("Match %d of %d", a.search.CurrentMatchNumber(), a.search.MatchCount()))
	}
}

// SetStatus sets the status message
func (a *App) SetStatus(msg string) {
	a.statusMsg = msg
	a.statusTime = time.Now()
}

// Quit signals the app to quit
func (a *App) Quit() {
	a.quit = true
}
