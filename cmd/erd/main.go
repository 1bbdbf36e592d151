package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/purchasing/database"
	"github.com/purchasing/models"
)

func main() {
	out := flag.String("o", "doc/er_diagram.mmd", "Output file, - for stdout")
	flag.Parse()

	if *out == "-" {
		if err := database.RenderER(os.Stdout, models.AllModels()...); err != nil {
			log.Fatalf("Failed to render diagram: %v", err)
		}
		return
	}

	if err := os.MkdirAll(filepath.Dir(*out), 0o755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", *out, err)
	}
	defer f.Close()

	if err := database.RenderER(f, models.AllModels()...); err != nil {
		log.Fatalf("Failed to render diagram: %v", err)
	}
	log.Printf("ER diagram written to %s", *out)
}
