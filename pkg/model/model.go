package model

import "time"

// ScanRecord is one observed Wi-Fi frame from the scan CSV. Records are
// constructed only by the loader, fully validated, and never mutated.
type ScanRecord struct {
	Timestamp time.Time `json:"timestamp"`
	SSID      string    `json:"ssid"`
	BSSID     string    `json:"bssid"`
	Channel   int       `json:"channel"`
	RSSI      int       `json:"rssi"`
}

// AddressSummary aggregates every observation of a single BSSID within
// one network group.
type AddressSummary struct {
	BSSID     string    `json:"bssid"`
	Frames    int       `json:"frames"`
	FirstSeen time.Time `json:"firstSeen"`
	LastSeen  time.Time `json:"lastSeen"`
	MinRSSI   int       `json:"minRssi"`
	AvgRSSI   float64   `json:"avgRssi"`
	MaxRSSI   int       `json:"maxRssi"`
	// LastRSSI is the RSSI of the chronologically latest frame for this
	// BSSID; equal timestamps resolve to the later input row.
	LastRSSI int   `json:"lastRssi"`
	Channels []int `json:"channels"`
}

// NetworkGroup holds the per-BSSID summaries for one SSID. Addresses
// keep the order in which each BSSID first appeared in the input.
type NetworkGroup struct {
	SSID      string           `json:"ssid"`
	Addresses []AddressSummary `json:"addresses"`
}

// Frames returns the total number of frames observed for the group.
func (g NetworkGroup) Frames() int {
	total := 0
	for _, a := range g.Addresses {
		total += a.Frames
	}
	return total
}

// ScanStats pre-aggregates whole-scan metrics for the report parameters
// block and the stats endpoint.
type ScanStats struct {
	TotalFrames  int       `json:"totalFrames"`
	UniqueBSSIDs int       `json:"uniqueBssids"`
	UniqueSSIDs  int       `json:"uniqueSsids"`
	FirstSeen    time.Time `json:"firstSeen,omitempty"`
	LastSeen     time.Time `json:"lastSeen,omitempty"`
}
