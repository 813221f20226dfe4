// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
	"time"

	"hkminimap/pkg/game/minimap"
)

// SaveLayoutHTML saves the current minimap panel as an SVG inside an HTML
// page named layout-<timestamp>.html in dir
func SaveLayoutHTML(dir string, c *minimap.Controller, now time.Time) (string, error) {
	filename := fmt.Sprintf("layout-%s.html", now.Format("20060102-150405"))
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(RenderLayoutHTML(c)), 0o644); err != nil {
		return "", fmt.Errorf("save layout snapshot: %w", err)
	}
	return path, nil
}

// RenderLayoutHTML builds the snapshot page
func RenderLayoutHTML(c *minimap.Controller) string {
	vp := c.Viewport()
	cont := c.Container()
	s := c.Status()

	var b strings.Builder
	b.WriteString(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Minimap Layout</title>
    <style>
        body {
            background-color: #1a1a2e;
            color: #eee;
            font-family: 'Courier New', monospace;
            padding: 20px;
        }
        .header { color: #bb86fc; font-size: 18px; margin-bottom: 10px; }
        .meta { color: #888; margin-bottom: 20px; }
        svg { background-color: rgba(0, 0, 0, 0.6); outline: 1px solid #fff; }
        .room { fill: #8a9bb0; stroke: #ccd; stroke-width: 1; }
        .room-current { fill: #c4d2e4; }
        .player { fill: #fff; }
    </style>
</head>
<body>
`)

	fmt.Fprintf(&b, `    <div class="header">%s</div>`+"\n", html.EscapeString(s.Scene))
	fmt.Fprintf(&b, `    <div class="meta">zoom %.2f, zone scale %.3f, %d rooms</div>`+"\n", s.Zoom, s.ZoneScale, s.Visuals)
	fmt.Fprintf(&b, `    <svg width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">`+"\n", vp.X, vp.Y, vp.X, vp.Y)

	for _, v := range cont.Visuals {
		r := cont.ScreenRect(v, vp)
		class := "room"
		if v.Current {
			class += " room-current"
		}
		fmt.Fprintf(&b, `        <rect class="%s" x="%.2f" y="%.2f" width="%.2f" height="%.2f" opacity="%.2f"><title>%s</title></rect>`+"\n",
			class, r.MinX, r.MinY, r.Width(), r.Height(), v.Alpha, html.EscapeString(v.Scene))
	}

	const dot = 6.0
	fmt.Fprintf(&b, `        <rect class="player" x="%.2f" y="%.2f" width="%.0f" height="%.0f"/>`+"\n",
		vp.X/2-dot/2, vp.Y/2-dot/2, dot, dot)
	b.WriteString("    </svg>\n</body>\n</html>\n")
	return b.String()
}
