package monitor

import (
	"time"

	"github.com/gin-gonic/gin"

	"micat-content-api/config"
	"micat-content-api/models"
)

var startedAt = time.Now()

// RegisterMonitorPage exposes a small operational status page plus the JSON
// endpoint backing it.
func RegisterMonitorPage(router *gin.Engine) {
	router.GET("/monitor/stats", func(c *gin.Context) {
		snap := config.Store.Snapshot()

		pending := 0
		for _, sub := range snap.Submissions {
			if sub.Status == models.StatusPending || sub.Status == models.StatusUnderReview {
				pending++
			}
		}
		activeUsers := 0
		for _, u := range snap.Users {
			if u.Active {
				activeUsers++
			}
		}

		c.JSON(200, gin.H{
			"uptime_seconds":   int(time.Since(startedAt).Seconds()),
			"submissions":      len(snap.Submissions),
			"review_queue":     pending,
			"users":            len(snap.Users),
			"active_users":     activeUsers,
			"notifications":    len(snap.Notifications),
			"activity_entries": len(snap.ActivityLogs),
			"mail_configured":  config.MailConfigured(),
		})
	})

	router.GET("/monitor", func(c *gin.Context) {
		c.Data(200, "text/html; charset=utf-8", []byte(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1.0" />
  <title>MICAT Content API Monitor</title>
  <style>
    body { background: #0f0f0f; color: #e0e0e0; font-family: -apple-system, 'Segoe UI', Roboto, sans-serif; padding: 40px; }
    h1 { font-size: 1.6rem; margin-bottom: 24px; }
    table { border-collapse: collapse; }
    td { padding: 6px 18px 6px 0; }
    td.v { color: #8ab4f8; font-variant-numeric: tabular-nums; }
  </style>
</head>
<body>
  <h1>MICAT Content Review API</h1>
  <table id="stats"></table>
  <script>
    async function refresh() {
      const res = await fetch('/monitor/stats');
      const data = await res.json();
      document.getElementById('stats').innerHTML = Object.entries(data)
        .map(([k, v]) => '<tr><td>' + k.replaceAll('_', ' ') + '</td><td class="v">' + v + '</td></tr>')
        .join('');
    }
    refresh();
    setInterval(refresh, 5000);
  </script>
</body>
</html>`))
	})
}
