package render

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jsonlens/jsonlens/internal/diff"
	"github.com/jsonlens/jsonlens/internal/model"
)

func parse(t *testing.T, text string) *model.Value {
	t.Helper()
	v, err := model.Parse([]byte(text))
	if err != nil {
		t.Fatalf("parse %s: %v", text, err)
	}
	return v
}

// renderBoth compares the two documents and classifies their pretty text
func renderBoth(t *testing.T, leftText, rightText string, opts diff.Options) *Result {
	t.Helper()
	left, right := parse(t, leftText), parse(t, rightText)
	res := diff.Compare(left, right, opts)
	return BuildRenderResult(left.EncodeJSON(true), right.EncodeJSON(true), res)
}

// kinds extracts the classification per line
func kinds(lines []Line) []diff.Kind {
	out := make([]diff.Kind, len(lines))
	for i, l := range lines {
		out[i] = l.Kind
	}
	return out
}

func TestBuildLinePathMap(t *testing.T) {
	text := parse(t, `{"arr":[1,{"deep":true}],"obj":{"x":"y"},"s":"v"}`).EncodeJSON(true)
	lines := strings.Split(text, "\n")
	got := BuildLinePathMap(lines)

	type row struct {
		path    string
		hasPath bool
	}
	var rows []row
	for _, pl := range got {
		rows = append(rows, row{diff.PointerPath(pl.Path), pl.HasPath})
	}

	want := []row{
		{"/", false},        // {            anonymous root open
		{"/arr", true},      //   "arr" : [
		{"/arr/0", true},    //     1,
		{"/arr/1", true},    //     {        indexed element open
		{"/arr/1/deep", true},
		{"/arr/1", true},    //     }        close of the indexed element
		{"/arr", true},      //   ],         close of the keyed array
		{"/obj", true},      //   "obj" : {
		{"/obj/x", true},
		{"/obj", true},      //   },
		{"/s", true},
		{"/", false},        // }            anonymous root close
	}

	if len(rows) != len(want) {
		t.Fatalf("got %d rows, want %d\ntext:\n%s", len(rows), len(want), text)
	}
	for i := range want {
		if rows[i] != want[i] {
			t.Errorf("line %d (%q): got %+v, want %+v", i, lines[i], rows[i], want[i])
		}
	}
}

func TestSplitKeyedLine(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantKey  string
		wantRest string
		wantOK   bool
	}{
		{"scalar", `"key" : 42`, "key", "42", true},
		{"container open", `"key" : {`, "key", "{", true},
		{"escaped quote in key", `"a\"b" : 1`, `a"b`, "1", true},
		{"escaped backslash in key", `"a\\" : 1`, `a\`, "1", true},
		{"colon inside key", `"a:b" : 1`, "a:b", "1", true},
		{"bare value", `42`, "", "", false},
		{"open brace", `{`, "", "", false},
		{"no colon", `"key" 42`, "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, rest, ok := splitKeyedLine(tt.line)
			if key != tt.wantKey || rest != tt.wantRest || ok != tt.wantOK {
				t.Errorf("splitKeyedLine(%q) = (%q, %q, %v), want (%q, %q, %v)",
					tt.line, key, rest, ok, tt.wantKey, tt.wantRest, tt.wantOK)
			}
		})
	}
}

// A renamed key is an independent removed+added pair. The version line
// contains the digit 1 both as the id value and inside "1.0.0"; exact-path
// classification must leave it untouched on both sides.
func TestRenameKeyDoesNotTouchNeighbors(t *testing.T) {
	res := renderBoth(t,
		`{"app":{"id":1,"version":"1.0.0"}}`,
		`{"app":{"name":1,"version":"1.0.0"}}`,
		diff.Options{})

	// { / "app" : { / "id" / "version" / } / }
	wantLeft := []diff.Kind{
		diff.Unchanged, diff.Unchanged, diff.Removed,
		diff.Unchanged, diff.Unchanged, diff.Unchanged,
	}
	if d := cmp.Diff(wantLeft, kinds(res.LeftLines)); d != "" {
		t.Errorf("left lines mismatch (-want +got):\n%s", d)
	}

	// { / "app" : { / "name" / "version" / } / }
	wantRight := []diff.Kind{
		diff.Unchanged, diff.Unchanged, diff.Added,
		diff.Unchanged, diff.Unchanged, diff.Unchanged,
	}
	if d := cmp.Diff(wantRight, kinds(res.RightLines)); d != "" {
		t.Errorf("right lines mismatch (-want +got):\n%s", d)
	}
}

// Two keys with byte-identical value text: only the changed path may be
// marked, even though the line texts are equal.
func TestIdenticalLineTextDisambiguatedByPath(t *testing.T) {
	res := renderBoth(t,
		`{"a":"value-1","b":"value-1"}`,
		`{"a":"value-1","b":"value-2"}`,
		diff.Options{})

	want := []diff.Kind{diff.Unchanged, diff.Unchanged, diff.Modified, diff.Unchanged}
	if d := cmp.Diff(want, kinds(res.LeftLines)); d != "" {
		t.Errorf("left lines mismatch (-want +got):\n%s", d)
	}
	if d := cmp.Diff(want, kinds(res.RightLines)); d != "" {
		t.Errorf("right lines mismatch (-want +got):\n%s", d)
	}
}

// An added container paints its whole subtree on the right, including
// nested lines and both closing brackets.
func TestContainerAddPropagatesToSubtree(t *testing.T) {
	res := renderBoth(t,
		`{"x":1}`,
		`{"info":{"m":1,"n":[1]},"x":1}`,
		diff.Options{})

	// {
	//   "info" : {      added
	//     "m" : 1,      added
	//     "n" : [       added
	//       1           added
	//     ]             added
	//   },              added
	//   "x" : 1
	// }
	wantRight := []diff.Kind{
		diff.Unchanged,
		diff.Added, diff.Added, diff.Added, diff.Added, diff.Added, diff.Added,
		diff.Unchanged,
		diff.Unchanged,
	}
	if d := cmp.Diff(wantRight, kinds(res.RightLines)); d != "" {
		t.Errorf("right lines mismatch (-want +got):\n%s", d)
	}

	// the left side has nothing to paint
	wantLeft := []diff.Kind{diff.Unchanged, diff.Unchanged, diff.Unchanged}
	if d := cmp.Diff(wantLeft, kinds(res.LeftLines)); d != "" {
		t.Errorf("left lines mismatch (-want +got):\n%s", d)
	}
}

// Under unordered matching an added and a removed element can share the
// same pointer path; each side must only show its own change.
func TestUnorderedArraySidesStayIndependent(t *testing.T) {
	res := renderBoth(t,
		`[{"id":1},{"id":2}]`,
		`[{"id":2},{"id":3}]`,
		diff.Options{IgnoreArrayOrder: true})

	// left: element 0 (id 1) removed, element 1 untouched
	// [
	//   {           removed
	//     "id" : 1  removed
	//   },          removed
	//   {
	//     "id" : 2
	//   }
	// ]
	wantLeft := []diff.Kind{
		diff.Unchanged,
		diff.Removed, diff.Removed, diff.Removed,
		diff.Unchanged, diff.Unchanged, diff.Unchanged,
		diff.Unchanged,
	}
	if d := cmp.Diff(wantLeft, kinds(res.LeftLines)); d != "" {
		t.Errorf("left lines mismatch (-want +got):\n%s", d)
	}

	// right: element 1 (id 3) added, element 0 untouched
	wantRight := []diff.Kind{
		diff.Unchanged,
		diff.Unchanged, diff.Unchanged, diff.Unchanged,
		diff.Added, diff.Added, diff.Added,
		diff.Unchanged,
	}
	if d := cmp.Diff(wantRight, kinds(res.RightLines)); d != "" {
		t.Errorf("right lines mismatch (-want +got):\n%s", d)
	}
}

// When unordered matching pairs elements at different positions, the
// modified highlight must land on each side's own copy of the element,
// never on whichever element happens to share the other side's index.
func TestUnorderedPairModifiedMarksOwnPosition(t *testing.T) {
	res := renderBoth(t,
		`[{"id":1,"n":"a"},{"id":2,"n":"b"}]`,
		`[{"id":2,"n":"b"},{"id":1,"n":"c"}]`,
		diff.Options{IgnoreArrayOrder: true})

	// left: the id-1 element (index 0) changed; the id-2 element that sits
	// at left index 1 matched the untouched right index 0 copy
	// [
	//   {
	//     "id" : 1,
	//     "n" : "a"   modified
	//   },
	//   {
	//     "id" : 2,
	//     "n" : "b"
	//   }
	// ]
	wantLeft := []diff.Kind{
		diff.Unchanged,
		diff.Unchanged, diff.Unchanged, diff.Modified, diff.Unchanged,
		diff.Unchanged, diff.Unchanged, diff.Unchanged, diff.Unchanged,
		diff.Unchanged,
	}
	if d := cmp.Diff(wantLeft, kinds(res.LeftLines)); d != "" {
		t.Errorf("left lines mismatch (-want +got):\n%s", d)
	}

	// right: id 1 ends up at index 1, its "n" line carries the change
	wantRight := []diff.Kind{
		diff.Unchanged,
		diff.Unchanged, diff.Unchanged, diff.Unchanged, diff.Unchanged,
		diff.Unchanged, diff.Unchanged, diff.Modified, diff.Unchanged,
		diff.Unchanged,
	}
	if d := cmp.Diff(wantRight, kinds(res.RightLines)); d != "" {
		t.Errorf("right lines mismatch (-want +got):\n%s", d)
	}
}

func TestModifiedMarksBothSides(t *testing.T) {
	res := renderBoth(t, `{"a":1}`, `{"a":2}`, diff.Options{})

	want := []diff.Kind{diff.Unchanged, diff.Modified, diff.Unchanged}
	if d := cmp.Diff(want, kinds(res.LeftLines)); d != "" {
		t.Errorf("left lines mismatch (-want +got):\n%s", d)
	}
	if d := cmp.Diff(want, kinds(res.RightLines)); d != "" {
		t.Errorf("right lines mismatch (-want +got):\n%s", d)
	}
}

func TestIdenticalDocumentsAllUnchanged(t *testing.T) {
	res := renderBoth(t, `{"a":[1,2],"b":{"c":3}}`, `{"a":[1,2],"b":{"c":3}}`, diff.Options{})

	for i, line := range res.LeftLines {
		if line.Kind != diff.Unchanged {
			t.Errorf("left line %d (%q) = %v, want unchanged", i, line.Text, line.Kind)
		}
	}
	for i, line := range res.RightLines {
		if line.Kind != diff.Unchanged {
			t.Errorf("right line %d (%q) = %v, want unchanged", i, line.Text, line.Kind)
		}
	}
}

func TestSplitLinesDropsTrailingNewline(t *testing.T) {
	got := splitLines("a\nb\n")
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("splitLines = %v", got)
	}
	if got := splitLines(""); len(got) != 0 {
		t.Errorf("splitLines of empty text = %v, want none", got)
	}
}

func TestUnderPath(t *testing.T) {
	tests := []struct {
		p, root string
		want    bool
	}{
		{"/a", "/a", true},
		{"/a/b", "/a", true},
		{"/ab", "/a", false},
		{"/a", "/a/b", false},
		{"/anything", "/", true},
	}
	for _, tt := range tests {
		if got := underPath(tt.p, tt.root); got != tt.want {
			t.Errorf("underPath(%q, %q) = %v, want %v", tt.p, tt.root, got, tt.want)
		}
	}
}
