package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/jsonlens/jsonlens/internal/model"
	"github.com/jsonlens/jsonlens/internal/storage"
)

func main() {
	numValues := flag.Int("values", 1000, "Approximate number of values to generate")
	output := flag.String("output", "large_test.json", "Output file path")
	depth := flag.Int("depth", 4, "Maximum nesting depth")
	seed := flag.Int64("seed", 42, "Random seed")
	flag.Parse()

	if *numValues < 1 {
		fmt.Fprintf(os.Stderr, "values must be at least 1\n")
		os.Exit(1)
	}

	rng := rand.New(rand.NewSource(*seed))
	remaining := *numValues
	root := generateObject(rng, &remaining, 0, *depth)

	dir := filepath.Dir(*output)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create directory: %v\n", err)
			os.Exit(1)
		}
	}

	if err := storage.SaveDocument(*output, root); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write file: %v\n", err)
		os.Exit(1)
	}

	size := len(root.EncodeJSON(true))
	fmt.Printf("Generated document with ~%d values\n", *numValues-remaining)
	fmt.Printf("Saved to: %s\n", *output)
	fmt.Printf("File size: %.2f MB\n", float64(size)/(1024*1024))
}

func generateObject(rng *rand.Rand, remaining *int, currentDepth, maxDepth int) *model.Value {
	fields := make(map[string]*model.Value)
	numFields := childCount(rng, *remaining)

	for i := 0; i < numFields && *remaining > 0; i++ {
		key := fmt.Sprintf("%s_%d", fieldNames[rng.Intn(len(fieldNames))], i)
		fields[key] = generateValue(rng, remaining, currentDepth+1, maxDepth)
	}

	return model.Object(fields)
}

func generateArray(rng *rand.Rand, remaining *int, currentDepth, maxDepth int) *model.Value {
	numElems := childCount(rng, *remaining)
	elems := make([]*model.Value, 0, numElems)

	for i := 0; i < numElems && *remaining > 0; i++ {
		elems = append(elems, generateValue(rng, remaining, currentDepth+1, maxDepth))
	}

	return model.Array(elems)
}

func generateValue(rng *rand.Rand, remaining *int, currentDepth, maxDepth int) *model.Value {
	*remaining--

	// Containers only until maxDepth, then scalars
	if currentDepth < maxDepth && *remaining > 4 {
		switch rng.Intn(4) {
		case 0:
			return generateObject(rng, remaining, currentDepth, maxDepth)
		case 1:
			return generateArray(rng, remaining, currentDepth, maxDepth)
		}
	}

	switch rng.Intn(4) {
	case 0:
		return model.Number(float64(rng.Intn(100000)))
	case 1:
		return model.Bool(rng.Intn(2) == 0)
	case 2:
		return model.Null()
	default:
		return model.String(descriptions[rng.Intn(len(descriptions))])
	}
}

func childCount(rng *rand.Rand, remaining int) int {
	if remaining > 50 {
		return 3 + rng.Intn(5)
	}
	if remaining > 10 {
		return 2 + rng.Intn(3)
	}
	n := remaining / 2
	if n < 1 {
		n = 1
	}
	return n
}

var fieldNames = []string{
	"id", "name", "status", "config", "items", "metadata",
	"created", "modified", "tags", "settings", "payload", "results",
}

var descriptions = []string{
	"Core functionality",
	"User interface",
	"Performance improvement",
	"Bug fix",
	"New capability",
	"API integration",
	"Data validation",
	"Error handling",
	"Caching layer",
	"Database schema",
	"Authentication",
	"Configuration",
}
