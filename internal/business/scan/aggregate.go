package scan

import (
	"sort"
	"time"

	"github.com/team404/wifi-intel/pkg/model"
)

type addressBuilder struct {
	bssid    string
	frames   int
	first    time.Time
	last     time.Time
	minRSSI  int
	maxRSSI  int
	lastRSSI int
	rssiSum  int
	channels map[int]struct{}
}

type groupBuilder struct {
	ssid  string
	order []string
	addrs map[string]*addressBuilder
}

// Aggregate groups records by SSID and summarizes each BSSID within a
// group. Groups appear in first-appearance order of their SSID, and
// addresses in first-appearance order of their BSSID, so the same input
// always yields the same output. A non-empty ssidFilter keeps only
// records whose SSID matches exactly; a filter that matches nothing
// yields an empty slice, not an error. Pure function of its inputs.
func Aggregate(records []model.ScanRecord, ssidFilter string) []model.NetworkGroup {
	var order []string
	groups := make(map[string]*groupBuilder)

	for _, rec := range records {
		if ssidFilter != "" && rec.SSID != ssidFilter {
			continue
		}
		g, ok := groups[rec.SSID]
		if !ok {
			g = &groupBuilder{ssid: rec.SSID, addrs: make(map[string]*addressBuilder)}
			groups[rec.SSID] = g
			order = append(order, rec.SSID)
		}
		g.observe(rec)
	}

	out := make([]model.NetworkGroup, 0, len(order))
	for _, ssid := range order {
		out = append(out, groups[ssid].build())
	}
	return out
}

func (g *groupBuilder) observe(rec model.ScanRecord) {
	a, ok := g.addrs[rec.BSSID]
	if !ok {
		a = &addressBuilder{
			bssid:    rec.BSSID,
			first:    rec.Timestamp,
			last:     rec.Timestamp,
			minRSSI:  rec.RSSI,
			maxRSSI:  rec.RSSI,
			lastRSSI: rec.RSSI,
			channels: make(map[int]struct{}),
		}
		g.addrs[rec.BSSID] = a
		g.order = append(g.order, rec.BSSID)
	}

	a.frames++
	a.rssiSum += rec.RSSI
	a.channels[rec.Channel] = struct{}{}
	if rec.Timestamp.Before(a.first) {
		a.first = rec.Timestamp
	}
	// Ties go to the later input row: last one wins.
	if !rec.Timestamp.Before(a.last) {
		a.last = rec.Timestamp
		a.lastRSSI = rec.RSSI
	}
	if rec.RSSI < a.minRSSI {
		a.minRSSI = rec.RSSI
	}
	if rec.RSSI > a.maxRSSI {
		a.maxRSSI = rec.RSSI
	}
}

func (g *groupBuilder) build() model.NetworkGroup {
	addrs := make([]model.AddressSummary, 0, len(g.order))
	for _, bssid := range g.order {
		a := g.addrs[bssid]
		channels := make([]int, 0, len(a.channels))
		for ch := range a.channels {
			channels = append(channels, ch)
		}
		sort.Ints(channels)
		addrs = append(addrs, model.AddressSummary{
			BSSID:     a.bssid,
			Frames:    a.frames,
			FirstSeen: a.first,
			LastSeen:  a.last,
			MinRSSI:   a.minRSSI,
			AvgRSSI:   float64(a.rssiSum) / float64(a.frames),
			MaxRSSI:   a.maxRSSI,
			LastRSSI:  a.lastRSSI,
			Channels:  channels,
		})
	}
	return model.NetworkGroup{SSID: g.ssid, Addresses: addrs}
}

// Stats reduces the full record set into scan-wide metrics. The hidden
// placeholder does not count as a distinct named network.
func Stats(records []model.ScanRecord) model.ScanStats {
	stats := model.ScanStats{TotalFrames: len(records)}
	bssids := make(map[string]struct{})
	ssids := make(map[string]struct{})

	for i, rec := range records {
		bssids[rec.BSSID] = struct{}{}
		if rec.SSID != HiddenSSID {
			ssids[rec.SSID] = struct{}{}
		}
		if i == 0 || rec.Timestamp.Before(stats.FirstSeen) {
			stats.FirstSeen = rec.Timestamp
		}
		if i == 0 || rec.Timestamp.After(stats.LastSeen) {
			stats.LastSeen = rec.Timestamp
		}
	}

	stats.UniqueBSSIDs = len(bssids)
	stats.UniqueSSIDs = len(ssids)
	return stats
}
