package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/jsonlens/jsonlens/internal/diff"
	"github.com/jsonlens/jsonlens/internal/render"
	"github.com/jsonlens/jsonlens/internal/storage"
)

func main() {
	summary := flag.Bool("s", false, "Summary only (counts without record-level details)")
	jsonOut := flag.Bool("json", false, "Emit change records as JSON")
	sideBySide := flag.Bool("side", false, "Side-by-side classified output")
	strictType := flag.Bool("strict-type", false, "Treat values of different JSON types as modified even when they print the same")
	ignoreOrder := flag.Bool("ignore-array-order", false, "Match array elements by id, name or content instead of position")
	dump := flag.Bool("dump", false, "Dump the raw comparison tree (debugging)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: jsonlens-diff [options] <left.json> <right.json>

Compares two JSON files structurally and shows changes by path.

Options:
  -s                    Summary only (counts without record-level details)
  -json                 Emit change records as JSON
  -side                 Side-by-side classified output
  -strict-type          Values of different types never compare equal
  -ignore-array-order   Match array elements by id, name or content
  -dump                 Dump the raw comparison tree (debugging)

Exit status is 0 when the files are structurally identical, 1 when
differences were found, and 2 on error.

Examples:
  # Show changes between two files
  jsonlens-diff old.json new.json

  # Machine-readable records
  jsonlens-diff -json old.json new.json

  # Compare ignoring array element order
  jsonlens-diff -ignore-array-order old.json new.json
`)
	}

	flag.Parse()

	args := flag.Args()
	if len(args) != 2 {
		flag.Usage()
		os.Exit(2)
	}

	left, err := storage.LoadDocument(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	right, err := storage.LoadDocument(args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	opts := diff.Options{
		StrictType:       *strictType,
		IgnoreArrayOrder: *ignoreOrder,
	}
	result := diff.Compare(left.Root, right.Root, opts)

	if *dump {
		spew.Fdump(os.Stderr, result.Root)
	}

	switch {
	case *jsonOut:
		printJSON(result)
	case *sideBySide:
		printSideBySide(left.Root.EncodeJSON(true), right.Root.EncodeJSON(true), result)
	default:
		if !*summary {
			printRecords(result)
		}
		printSummary(result)
	}

	if result.IsIdentical() {
		os.Exit(0)
	}
	os.Exit(1)
}

// printRecords prints one line per changed path
func printRecords(result *diff.Result) {
	for _, it := range result.Flattened() {
		path := diff.PointerPath(it.Path)
		switch it.Kind {
		case diff.Added:
			fmt.Printf("+ %s: %s\n", path, encode(it))
		case diff.Removed:
			fmt.Printf("- %s: %s\n", path, encode(it))
		case diff.Modified:
			fmt.Printf("~ %s: %s -> %s\n", path, it.Left.EncodeJSON(false), it.Right.EncodeJSON(false))
		}
	}
}

func encode(it *diff.Item) string {
	if it.Kind == diff.Added {
		return it.Right.EncodeJSON(false)
	}
	return it.Left.EncodeJSON(false)
}

// printSummary prints the change counts
func printSummary(result *diff.Result) {
	if result.IsIdentical() {
		fmt.Println("No changes detected")
		return
	}
	fmt.Println()
	fmt.Println("=== Summary ===")
	fmt.Printf("  %d paths modified\n", result.ModifiedCount)
	fmt.Printf("  %d paths added\n", result.AddedCount)
	fmt.Printf("  %d paths removed\n", result.RemovedCount)
}

// printJSON emits the flattened change records as a JSON array
func printJSON(result *diff.Result) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result.Serialize()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
}

// printSideBySide prints both documents with per-line change markers
func printSideBySide(leftText, rightText string, result *diff.Result) {
	res := render.BuildRenderResult(leftText, rightText, result)

	leftWidth := 0
	for _, line := range res.LeftLines {
		if len(line.Text) > leftWidth {
			leftWidth = len(line.Text)
		}
	}
	if leftWidth > 60 {
		leftWidth = 60
	}

	n := len(res.LeftLines)
	if len(res.RightLines) > n {
		n = len(res.RightLines)
	}

	for i := 0; i < n; i++ {
		var leftMark, rightMark byte = ' ', ' '
		var lt, rt string
		if i < len(res.LeftLines) {
			leftMark = marker(res.LeftLines[i].Kind)
			lt = clip(res.LeftLines[i].Text, leftWidth)
		}
		if i < len(res.RightLines) {
			rightMark = marker(res.RightLines[i].Kind)
			rt = res.RightLines[i].Text
		}
		fmt.Printf("%c %-*s │ %c %s\n", leftMark, leftWidth, lt, rightMark, rt)
	}
}

func marker(kind diff.Kind) byte {
	switch kind {
	case diff.Added:
		return '+'
	case diff.Removed:
		return '-'
	case diff.Modified:
		return '~'
	default:
		return ' '
	}
}

func clip(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}
