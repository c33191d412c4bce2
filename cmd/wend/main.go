package main

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	apppkg "github.com/korzen-labs/wend/internal/app"
)

func printHelp() {
	fmt.Print(`wend - Terminal file browser

USAGE:
    wend

Starts in the current working directory.

KEYS:
    Up/Down       move the selection cursor / scroll the file view
    Enter         enter directory or view file
    Left/Right    back / forward through visited directories
    PgUp/PgDn     page movement
    Home/End      jump to first / last
    Escape        leave the file view, or exit

OPTIONS:
    -h, --help    Show this help message and exit
`)
}

func main() {
	// Set UTF-8 as fallback encoding so non-ASCII names display correctly.
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "-h", "--help":
			printHelp()
			os.Exit(0)
		}
	}

	app, err := apppkg.NewApplication()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing application: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = app.Close()
	}()

	app.Run()
}
