// Package theme defines the color themes for the viewer.
package theme

import (
	"github.com/gdamore/tcell/v2"
)

// Colors holds all the color definitions for the theme
type Colors struct {
	// Tree view colors, one per JSON value type
	TreeKey            tcell.Color
	TreeString         tcell.Color
	TreeNumber         tcell.Color
	TreeBool           tcell.Color
	TreeNull           tcell.Color
	TreeSelectedItem   tcell.Color
	TreeExpandedArrow  tcell.Color
	TreeCollapsedArrow tcell.Color
	TreeConnector      tcell.Color

	// Search bar colors
	SearchLabel       tcell.Color
	SearchText        tcell.Color
	SearchMatch       tcell.Color
	SearchResultCount tcell.Color

	// Diff view colors
	DiffAdded    tcell.Color
	DiffRemoved  tcell.Color
	DiffModified tcell.Color
	DiffContext  tcell.Color
	DiffHeader   tcell.Color

	// Status line colors
	StatusMode    tcell.Color
	StatusMessage tcell.Color

	// Header colors
	HeaderTitle tcell.Color
}

// Theme represents a complete color theme
type Theme struct {
	Name   string
	Colors Colors
}

// Default returns a theme using terminal defaults
func Default() *Theme {
	return &Theme{
		Name: "default",
		Colors: Colors{
			TreeKey:            tcell.ColorDefault,
			TreeString:         tcell.ColorDefault,
			TreeNumber:         tcell.ColorDefault,
			TreeBool:           tcell.ColorDefault,
			TreeNull:           tcell.ColorDefault,
			TreeSelectedItem:   tcell.ColorDefault,
			TreeExpandedArrow:  tcell.ColorDefault,
			TreeCollapsedArrow: tcell.ColorDefault,
			TreeConnector:      tcell.ColorDefault,
			SearchLabel:        tcell.ColorDefault,
			SearchText:         tcell.ColorDefault,
			SearchMatch:        tcell.ColorDefault,
			SearchResultCount:  tcell.ColorDefault,
			DiffAdded:          tcell.ColorGreen,
			DiffRemoved:        tcell.ColorRed,
			DiffModified:       tcell.ColorYellow,
			DiffContext:        tcell.ColorDefault,
			DiffHeader:         tcell.ColorDefault,
			StatusMode:         tcell.ColorDefault,
			StatusMessage:      tcell.ColorDefault,
			HeaderTitle:        tcell.ColorDefault,
		},
	}
}

// TokyoNight returns the Tokyo Night theme
func TokyoNight() *Theme {
	return &Theme{
		Name: "tokyo-night",
		Colors: Colors{
			// Tokyo Night palette
			TreeKey:            HexToColor("#7aa2f7"), // Blue
			TreeString:         HexToColor("#9ece6a"), // Green
			TreeNumber:         HexToColor("#ff9e64"), // Orange
			TreeBool:           HexToColor("#bb9af7"), // Magenta
			TreeNull:           HexToColor("#565f89"), // Comment gray
			TreeSelectedItem:   HexToColor("#c0caf5"), // Light gray-blue
			TreeExpandedArrow:  HexToColor("#7dcfff"), // Cyan
			TreeCollapsedArrow: HexToColor("#7dcfff"), // Cyan
			TreeConnector:      HexToColor("#3b4261"), // Dim gray-blue
			SearchLabel:        HexToColor("#bb9af7"), // Magenta
			SearchText:         HexToColor("#c0caf5"), // Light gray-blue
			SearchMatch:        HexToColor("#e0af68"), // Yellow
			SearchResultCount:  HexToColor("#9ece6a"), // Green
			DiffAdded:          HexToColor("#9ece6a"), // Green
			DiffRemoved:        HexToColor("#f7768e"), // Red
			DiffModified:       HexToColor("#e0af68"), // Yellow
			DiffContext:        HexToColor("#565f89"), // Comment gray
			DiffHeader:         HexToColor("#bb9af7"), // Magenta
			StatusMode:         HexToColor("#bb9af7"), // Magenta
			StatusMessage:      HexToColor("#9ece6a"), // Green
			HeaderTitle:        HexToColor("#bb9af7"), // Magenta
		},
	}
}
