package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/snapgeo/snapgeo-ocr/internal/extract"
	"github.com/snapgeo/snapgeo-ocr/internal/geo"
	"github.com/snapgeo/snapgeo-ocr/internal/ocr"
	"github.com/snapgeo/snapgeo-ocr/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("snapgeo-ocr %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("snapgeo-ocr - GPS overlay coordinate extraction service")
			fmt.Println()
			fmt.Println("Usage: snapgeo-ocr [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  SNAPGEO_ADDR=:8000           Listen address")
			fmt.Println("  SNAPGEO_LANG=eng             Tesseract language code")
			fmt.Println("  SNAPGEO_CALIBRATION=path     Misread-signature table (YAML)")
			fmt.Println("  SNAPGEO_GAZETTEER=path       Place catalog (YAML)")
			fmt.Println("  SNAPGEO_LOG_LEVEL=debug      Enable per-request pipeline logging")
			return
		}
	}

	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	// Optional .env for local development; absence is not an error.
	if err := godotenv.Load(); err == nil {
		log.Printf("loaded environment from .env")
	}

	engine := ocr.NewTesseract(os.Getenv("SNAPGEO_LANG"))
	if info := ocr.GetEngineInfo(); info.Available {
		log.Printf("tesseract %s available", info.Version)
	} else {
		log.Printf("WARNING: tesseract unavailable: %s", info.Error)
	}

	opts := []extract.Option{}
	if os.Getenv("SNAPGEO_LOG_LEVEL") == "debug" {
		opts = append(opts, extract.WithLogger(log.Default()))
	}
	if path := os.Getenv("SNAPGEO_CALIBRATION"); path != "" {
		table, err := extract.LoadCalibration(path)
		if err != nil {
			log.Fatalf("calibration table: %v", err)
		}
		log.Printf("loaded %d calibration signatures from %s", len(table.Entries), path)
		opts = append(opts, extract.WithCalibration(table))
	}
	if path := os.Getenv("SNAPGEO_GAZETTEER"); path != "" {
		g, err := geo.Load(path)
		if err != nil {
			log.Fatalf("gazetteer: %v", err)
		}
		log.Printf("loaded gazetteer from %s", path)
		opts = append(opts, extract.WithGazetteer(g))
	}

	pipeline := extract.New(engine, opts...)
	srv := server.New(pipeline, server.WithServerLogger(log.Default()))

	addr := os.Getenv("SNAPGEO_ADDR")
	if addr == "" {
		addr = ":8000"
	}
	log.Printf("snapgeo-ocr %s starting", Version)
	if err := srv.Run(addr); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
