package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"deckview/internal/app"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: deckview <deck-file-or-directory>")
		os.Exit(1)
	}

	target := filepath.Clean(os.Args[1])
	if err := app.Run(target); err != nil {
		log.Fatal(err)
	}
}
