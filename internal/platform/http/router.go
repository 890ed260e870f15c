package http

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/team404/wifi-intel/internal/business/scan"
	"github.com/team404/wifi-intel/pkg/model"
)

// Router wires the listing HTTP handlers. Every request re-reads and
// re-aggregates the scan CSV; there is no shared state across requests
// beyond the read-only input file.
type Router struct {
	csvPath string
	origins string
	log     *zap.Logger
}

// NetworkIndexEntry is one row of the network index view.
type NetworkIndexEntry struct {
	SSID   string `json:"ssid"`
	Frames int    `json:"frames"`
	BSSIDs int    `json:"bssids"`
}

func NewRouter(csvPath, allowedOrigins string, log *zap.Logger) *gin.Engine {
	r := &Router{
		csvPath: csvPath,
		origins: allowedOrigins,
		log:     log,
	}

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), r.corsMiddleware())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		api.GET("/networks", r.listNetworks)
		api.GET("/networks/export", r.exportNetworks)
		api.GET("/networks/:ssid", r.getNetwork)
		api.GET("/stats", r.getStats)
	}

	return router
}

func (r *Router) corsMiddleware() gin.HandlerFunc {
	var trimmed []string
	for _, o := range strings.Split(r.origins, ",") {
		if t := strings.TrimSpace(o); t != "" {
			trimmed = append(trimmed, t)
		}
	}
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		allowed := "*"
		for _, o := range trimmed {
			if o == "*" || o == origin {
				allowed = origin
				break
			}
		}
		c.Header("Access-Control-Allow-Origin", allowed)
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		c.Header("Access-Control-Allow-Methods", "GET, OPTIONS")
		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusNoContent)
			c.Abort()
			return
		}
		c.Next()
	}
}

// load re-reads the scan CSV for one request. A malformed file is a
// server-side data fault; the handler answers 500 with the row and
// column context and the request ends there.
func (r *Router) load(c *gin.Context) ([]model.ScanRecord, bool) {
	records, err := scan.Load(r.csvPath)
	if err != nil {
		r.log.Warn("scan load failed", zap.String("path", r.csvPath), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return nil, false
	}
	return records, true
}

func (r *Router) listNetworks(c *gin.Context) {
	records, ok := r.load(c)
	if !ok {
		return
	}

	q := strings.TrimSpace(c.Query("q"))
	groups := scan.Aggregate(records, "")

	items := make([]NetworkIndexEntry, 0, len(groups))
	for _, g := range groups {
		if q != "" && !strings.Contains(strings.ToLower(g.SSID), strings.ToLower(q)) {
			continue
		}
		items = append(items, NetworkIndexEntry{
			SSID:   g.SSID,
			Frames: g.Frames(),
			BSSIDs: len(g.Addresses),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"total": len(items),
	})
}

func (r *Router) getNetwork(c *gin.Context) {
	records, ok := r.load(c)
	if !ok {
		return
	}

	ssid := c.Param("ssid")
	groups := scan.Aggregate(records, ssid)
	if len(groups) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("unknown ssid %q", ssid)})
		return
	}
	c.JSON(http.StatusOK, groups[0])
}

func (r *Router) getStats(c *gin.Context) {
	records, ok := r.load(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, scan.Stats(records))
}

func (r *Router) exportNetworks(c *gin.Context) {
	records, ok := r.load(c)
	if !ok {
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", "attachment; filename=networks.csv")

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	header := []string{"ssid", "bssid", "frames", "first_seen", "last_seen", "min_rssi", "avg_rssi", "max_rssi", "channels"}
	if err := writer.Write(header); err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	for _, g := range scan.Aggregate(records, "") {
		for _, a := range g.Addresses {
			row := []string{
				g.SSID,
				a.BSSID,
				fmt.Sprintf("%d", a.Frames),
				a.FirstSeen.Format(scan.TimestampLayout),
				a.LastSeen.Format(scan.TimestampLayout),
				fmt.Sprintf("%d", a.MinRSSI),
				fmt.Sprintf("%.1f", a.AvgRSSI),
				fmt.Sprintf("%d", a.MaxRSSI),
				channelField(a.Channels),
			}
			if err := writer.Write(row); err != nil {
				c.Status(http.StatusInternalServerError)
				return
			}
		}
	}
}

func channelField(channels []int) string {
	parts := make([]string, len(channels))
	for i, ch := range channels {
		parts[i] = fmt.Sprintf("%d", ch)
	}
	return strings.Join(parts, " ")
}
