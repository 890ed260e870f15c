// Package report renders an aggregated Wi-Fi scan into a paginated PDF
// document: title block, summary, parameters table, and one table row
// per (ssid, bssid) pair.
package report

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/team404/wifi-intel/pkg/model"
)

// Meta carries the document configuration echoed into the title and
// parameters blocks.
type Meta struct {
	Title       string
	Project     string
	Subtitle    string
	SourceFile  string
	FilterSSID  string
	AppVersion  string
	GeneratedAt time.Time
}

const timeFormat = "2006-01-02 15:04:05"

var tableColumns = []struct {
	label string
	width float64
	align string
}{
	{label: "#", width: 8, align: "R"},
	{label: "SSID", width: 30, align: "L"},
	{label: "MAC (BSSID)", width: 33, align: "L"},
	{label: "Frames", width: 13, align: "R"},
	{label: "First Seen", width: 25, align: "L"},
	{label: "Last Seen", width: 25, align: "L"},
	{label: "Min", width: 10, align: "R"},
	{label: "Avg", width: 11, align: "R"},
	{label: "Max", width: 10, align: "R"},
	{label: "Ch", width: 21, align: "L"},
}

// WritePDF renders groups and stats under meta to a PDF file at path.
func WritePDF(path string, groups []model.NetworkGroup, stats model.ScanStats, meta Meta) error {
	pdf := render(groups, stats, meta)
	if err := pdf.Error(); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func render(groups []model.NetworkGroup, stats model.ScanStats, meta Meta) *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(meta.Title, true)
	pdf.SetMargins(12, 25, 12)
	pdf.SetAutoPageBreak(true, 18)
	pdf.AliasNbPages("")

	pdf.SetHeaderFunc(func() {
		pdf.SetY(10)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(100, 6, meta.Title, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(0, 6, meta.Subtitle, "", 1, "R", false, 0, "")
	})
	pdf.SetFooterFunc(func() {
		pdf.SetY(-14)
		pdf.SetFont("Helvetica", "", 8)
		pdf.CellFormat(0, 8, fmt.Sprintf("Page %d/{nb}", pdf.PageNo()), "", 0, "R", false, 0, "")
	})

	pdf.AddPage()
	titleBlock(pdf, meta)
	summaryLine(pdf, stats)
	parametersTable(pdf, stats, meta)
	addressTable(pdf, groups)
	return pdf
}

func titleBlock(pdf *fpdf.Fpdf, meta Meta) {
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, meta.Title, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 5, meta.Project, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, "Generated: "+meta.GeneratedAt.Format("2006-01-02 15:04"), "", 1, "L", false, 0, "")
	pdf.Ln(4)
}

func summaryLine(pdf *fpdf.Fpdf, stats model.ScanStats) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(20, 5, "Summary:", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	line := fmt.Sprintf("%d unique MACs across %d SSIDs, %d frames observed.",
		stats.UniqueBSSIDs, stats.UniqueSSIDs, stats.TotalFrames)
	pdf.CellFormat(0, 5, line, "", 1, "L", false, 0, "")
	pdf.Ln(4)
}

func parametersTable(pdf *fpdf.Fpdf, stats model.ScanStats, meta Meta) {
	filter := meta.FilterSSID
	if filter == "" {
		filter = "(none)"
	}
	timeRange := ""
	if stats.TotalFrames > 0 {
		timeRange = stats.FirstSeen.Format(timeFormat) + " to " + stats.LastSeen.Format(timeFormat)
	}

	rows := [][2]string{
		{"Data file", meta.SourceFile},
		{"Records", strconv.Itoa(stats.TotalFrames)},
		{"Unique SSIDs", strconv.Itoa(stats.UniqueSSIDs)},
		{"Time range", timeRange},
		{"Filter SSID", filter},
		{"App version", meta.AppVersion},
	}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 6, "Parameters", "", 1, "L", false, 0, "")
	pdf.Ln(1)
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetDrawColor(140, 140, 140)
	for _, row := range rows {
		pdf.SetFillColor(245, 245, 245)
		pdf.CellFormat(32, 6, row[0], "1", 0, "L", true, 0, "")
		pdf.CellFormat(0, 6, row[1], "1", 1, "L", false, 0, "")
	}
	pdf.Ln(6)
}

func addressTable(pdf *fpdf.Fpdf, groups []model.NetworkGroup) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 7, "Observed MAC Addresses", "", 1, "L", false, 0, "")
	pdf.Ln(2)

	tableHeader(pdf)

	_, pageH := pdf.GetPageSize()
	row := 0
	for _, g := range groups {
		for _, a := range g.Addresses {
			if pdf.GetY() > pageH-26 {
				pdf.AddPage()
				tableHeader(pdf)
			}
			row++
			fill := row%2 == 0
			cells := []string{
				strconv.Itoa(row),
				g.SSID,
				a.BSSID,
				strconv.Itoa(a.Frames),
				a.FirstSeen.Format(timeFormat),
				a.LastSeen.Format(timeFormat),
				strconv.Itoa(a.MinRSSI),
				fmt.Sprintf("%.1f", a.AvgRSSI),
				strconv.Itoa(a.MaxRSSI),
				channelList(a.Channels),
			}
			pdf.SetFont("Helvetica", "", 7.5)
			pdf.SetFillColor(250, 250, 240)
			for i, col := range tableColumns {
				pdf.CellFormat(col.width, 5.5, cells[i], "1", 0, col.align, fill, 0, "")
			}
			pdf.Ln(-1)
		}
	}

	if row == 0 {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.CellFormat(0, 8, "No observations.", "", 1, "L", false, 0, "")
	}
}

func tableHeader(pdf *fpdf.Fpdf) {
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(220, 220, 220)
	pdf.SetDrawColor(140, 140, 140)
	for _, col := range tableColumns {
		pdf.CellFormat(col.width, 6, col.label, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
}

func channelList(channels []int) string {
	parts := make([]string, len(channels))
	for i, ch := range channels {
		parts[i] = strconv.Itoa(ch)
	}
	return strings.Join(parts, ", ")
}
