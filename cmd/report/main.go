package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/team404/wifi-intel/internal/business/report"
	"github.com/team404/wifi-intel/internal/business/scan"
	"github.com/team404/wifi-intel/internal/platform/config"
)

func main() {
	inPath := flag.String("in", "", "Path to the scan CSV (required)")
	outPath := flag.String("out", "reports/wifi_report.pdf", "Output PDF path")
	title := flag.String("title", "", "Document heading")
	project := flag.String("project", "", "Project subheading")
	subtitle := flag.String("subtitle", "", "Page header subtitle")
	filterSSID := flag.String("filter-ssid", "", "Only include records with this exact SSID")
	appVersion := flag.String("app-version", "", "Version string echoed in the Parameters block")
	configPath := flag.String("config", "", "Optional YAML file with report defaults")
	flag.Parse()

	if *inPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	var defaults config.ReportDefaults
	if *configPath != "" {
		var err error
		defaults, err = config.LoadReportDefaults(*configPath)
		if err != nil {
			log.Fatalf("report config: %v", err)
		}
	}

	meta := report.Meta{
		Title:       fallback(*title, defaults.Title, "Wireless Intelligence Report"),
		Project:     fallback(*project, defaults.Project, "Team 404 Prototype"),
		Subtitle:    fallback(*subtitle, defaults.Subtitle, "Report generated from Wi-Fi scan CSV"),
		SourceFile:  filepath.Base(*inPath),
		FilterSSID:  *filterSSID,
		AppVersion:  fallback(*appVersion, defaults.AppVersion, "0.1.0"),
		GeneratedAt: time.Now(),
	}

	records, err := scan.Load(*inPath)
	if err != nil {
		log.Fatalf("load scan: %v", err)
	}
	groups := scan.Aggregate(records, *filterSSID)
	stats := scan.Stats(records)

	if dir := filepath.Dir(*outPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatalf("create output dir: %v", err)
		}
	}
	if err := report.WritePDF(*outPath, groups, stats, meta); err != nil {
		log.Fatalf("write report: %v", err)
	}
	log.Printf("report written to %s", *outPath)
}

// fallback returns the first non-empty value: explicit flag, config
// file default, then built-in default.
func fallback(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
