package scan

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/team404/wifi-intel/pkg/model"
	"github.com/team404/wifi-intel/pkg/util"
)

// TimestampLayout is the single accepted timestamp format in scan CSVs.
const TimestampLayout = "2006-01-02T15:04:05"

// HiddenSSID is the group key substituted for a blank or missing SSID.
// Hidden networks stay in the dataset; dropping them would break the
// frame accounting.
const HiddenSSID = "(hidden)"

var expectedHeader = []string{"timestamp", "ssid", "bssid", "channel", "rssi"}

// MalformedInputError reports the first invalid row of a scan CSV. Row
// is 1-based and counts the header line, so the first data row is 2.
type MalformedInputError struct {
	Row    int
	Column string
	Reason string
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed input at row %d, column %q: %s", e.Row, e.Column, e.Reason)
}

// Load reads and validates the scan CSV at path.
func Load(path string) ([]model.ScanRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scan csv: %w", err)
	}
	defer f.Close()
	return LoadReader(f)
}

// LoadReader parses CSV text into validated records, preserving row
// order and duplicates. The header must match
// "timestamp,ssid,bssid,channel,rssi" exactly (case-sensitive). The
// first invalid row aborts the whole load; callers never see a
// partially validated dataset. An empty stream, or one holding only
// the header, yields an empty slice.
func LoadReader(r io.Reader) ([]model.ScanRecord, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return []model.ScanRecord{}, nil
	}
	if err != nil {
		return nil, csvRowError(err)
	}
	if !headerMatches(header) {
		return nil, &MalformedInputError{
			Row:    1,
			Column: "header",
			Reason: fmt.Sprintf("got %q, want %q", strings.Join(header, ","), strings.Join(expectedHeader, ",")),
		}
	}

	records := []model.ScanRecord{}
	row := 1
	for {
		fields, err := cr.Read()
		if err == io.EOF {
			return records, nil
		}
		row++
		if err != nil {
			return nil, csvRowError(err)
		}
		rec, err := parseRow(row, fields)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
}

func headerMatches(fields []string) bool {
	if len(fields) != len(expectedHeader) {
		return false
	}
	for i, f := range fields {
		if strings.TrimSpace(f) != expectedHeader[i] {
			return false
		}
	}
	return true
}

func parseRow(row int, fields []string) (model.ScanRecord, error) {
	if len(fields) != len(expectedHeader) {
		return model.ScanRecord{}, &MalformedInputError{
			Row:    row,
			Column: "record",
			Reason: fmt.Sprintf("expected %d fields, got %d", len(expectedHeader), len(fields)),
		}
	}

	// The address pattern is checked before the timestamp so that a row
	// with a garbled hardware address is reported as such even when its
	// timestamp is also unparsable.
	bssid := strings.TrimSpace(fields[2])
	if !util.ValidBSSID(bssid) {
		return model.ScanRecord{}, &MalformedInputError{
			Row:    row,
			Column: "bssid",
			Reason: fmt.Sprintf("%q is not a colon-separated hardware address", fields[2]),
		}
	}

	ts, err := time.Parse(TimestampLayout, strings.TrimSpace(fields[0]))
	if err != nil {
		return model.ScanRecord{}, &MalformedInputError{
			Row:    row,
			Column: "timestamp",
			Reason: fmt.Sprintf("%q does not match %s", fields[0], TimestampLayout),
		}
	}

	ssid := strings.TrimSpace(fields[1])
	if ssid == "" {
		ssid = HiddenSSID
	}

	channel, err := strconv.Atoi(strings.TrimSpace(fields[3]))
	if err != nil || channel <= 0 {
		return model.ScanRecord{}, &MalformedInputError{
			Row:    row,
			Column: "channel",
			Reason: fmt.Sprintf("%q is not a positive integer", fields[3]),
		}
	}

	rssi, err := strconv.Atoi(strings.TrimSpace(fields[4]))
	if err != nil {
		return model.ScanRecord{}, &MalformedInputError{
			Row:    row,
			Column: "rssi",
			Reason: fmt.Sprintf("%q is not an integer", fields[4]),
		}
	}

	return model.ScanRecord{
		Timestamp: ts,
		SSID:      ssid,
		BSSID:     util.NormalizeBSSID(bssid),
		Channel:   channel,
		RSSI:      rssi,
	}, nil
}

// csvRowError converts a csv.Reader failure (bad quoting and the like)
// into the loader's error type, keeping the line number when available.
func csvRowError(err error) error {
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		return &MalformedInputError{
			Row:    parseErr.Line,
			Column: "record",
			Reason: parseErr.Err.Error(),
		}
	}
	return fmt.Errorf("read scan csv: %w", err)
}
