package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/jsonlens/jsonlens/internal/app"
)

func main() {
	logFile, err := os.Create("jsonlens.log")
	if err != nil {
		log.Fatal(err)
	}
	defer logFile.Close()
	log.SetOutput(logFile)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s <file.json> [other.json]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Browse a JSON document, or compare two documents side by side.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	args := flag.Args()
	var application *app.App

	switch len(args) {
	case 1:
		application, err = app.NewApp(args[0])
	case 2:
		application, err = app.NewCompareApp(args[0], args[1])
	default:
		flag.Usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Runtime error: %v\n", err)
		os.Exit(1)
	}
}
