package app

import (
	"github.com/gdamore/tcell/v2"
)

// handleKeypress handles a single keypress in browse mode
func (a *App) handleKeypress(ev *tcell.EventKey) {
	_, height := a.screen.Size()
	pageSize := height - 3
	if pageSize < 1 {
		pageSize = 1
	}

	switch ev.Key() {
	case tcell.KeyDown:
		a.tree.SelectNext()
		return
	case tcell.KeyUp:
		a.tree.SelectPrev()
		return
	case tcell.KeyLeft:
		a.tree.CollapseSelected()
		return
	case tcell.KeyRight:
		a.tree.ExpandSelected()
		return
	case tcell.KeyPgDn, tcell.KeyCtrlF:
		a.tree.PageDown(pageSize)
		return
	case tcell.KeyPgUp, tcell.KeyCtrlB:
		a.tree.PageUp(pageSize)
		return
	case tcell.KeyHome:
		a.tree.SelectFirst()
		return
	case tcell.KeyEnd:
		a.tree.SelectLast()
		return
	case tcell.KeyEnter:
		a.tree.ToggleSelected()
		return
	case tcell.KeyCtrlC:
		a.quit = true
		return
	case tcell.KeyEscape:
		if a.search.Query() != "" {
			a.search.Clear()
			a.tree.SetMatcher(nil)
			a.SetStatus("Search cleared")
		}
		return
	}

	switch ev.Rune() {
	case 'j':
		a.tree.SelectNext()
	case 'k':
		a.tree.SelectPrev()
	case 'h':
		a.tree.CollapseSelected()
	case 'l':
		a.tree.ExpandSelected()
	case 'g':
		a.tree.SelectFirst()
	case 'G':
		a.tree.SelectLast()
	case ' ':
		a.tree.ToggleSelected()
	case 'E':
		a.tree.ExpandAll()
		a.SetStatus("Expanded all")
	case 'C':
		a.tree.CollapseAll()
		a.SetStatus("Collapsed all")
	case '/':
		a.search.Start()
	case 'n':
		if a.search.NextMatch() {
			a.jumpToCurrentMatch()
		} else {
			a.SetStatus("No matches")
		}
	case 'N':
		if a.search.PrevMatch() {
			a.jumpToCurrentMatch()
		} else {
			a.SetStatus("No matches")
		}
	case 'q':
		a.quit = true
	}
}
