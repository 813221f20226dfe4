// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"hkminimap/pkg/game/minimap"
)

const layoutDumpFilename = "minimap-layout.txt"

// DumpLayoutToFile writes the controller's current layout to
// minimap-layout.txt in dir: metadata, cached zone scales, and one line per
// visual. It returns the absolute path written.
func DumpLayoutToFile(dir string, c *minimap.Controller) (string, error) {
	absPath, err := filepath.Abs(filepath.Join(dir, layoutDumpFilename))
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", fmt.Errorf("create layout dump: %w", err)
	}
	if err := writeLayoutAndClose(f, c); err != nil {
		return "", err
	}
	return absPath, nil
}

// writeLayoutAndClose writes the dump to wc and closes it. A close failure
// is reported when the write itself succeeded.
func writeLayoutAndClose(wc io.WriteCloser, c *minimap.Controller) error {
	if err := WriteLayout(wc, c); err != nil {
		wc.Close()
		return fmt.Errorf("write layout dump: %w", err)
	}
	if err := wc.Close(); err != nil {
		return fmt.Errorf("close layout dump: %w", err)
	}
	return nil
}

// WriteLayout writes the layout dump format to w
func WriteLayout(w io.Writer, c *minimap.Controller) error {
	s := c.Status()
	view := c.View()
	cont := c.Container()
	vp := c.Viewport()

	bw := &errWriter{w: w}
	bw.println("=== MINIMAP LAYOUT DUMP ===")
	bw.println("")
	bw.println("--- Metadata ---")
	bw.printf("scene: %s\n", s.Scene)
	bw.printf("hero_present: %t\n", s.HasHero)
	bw.printf("hero: %v\n", s.Hero)
	bw.printf("rooms_ready: %t\n", s.RoomsReady)
	bw.printf("mapped_rooms: %d\n", s.MappedRooms)
	bw.printf("visible: %t\n", view.Visible)
	bw.printf("dirty: %t\n", view.Dirty)
	bw.printf("zoom: %.3f\n", view.Zoom)
	bw.printf("zone_scale: %.4f\n", c.ZoneScale())
	bw.printf("viewport: %.0fx%.0f\n", vp.X, vp.Y)
	bw.printf("origin: %v\n", view.Origin)
	bw.printf("container_offset: %v\n", cont.Offset)
	bw.printf("container_scale: %.3f\n", cont.Scale)
	bw.println("coordinate_system: container pixels, origin at current room center, Y up")
	bw.println("")

	bw.println("--- Zone scales ---")
	zones := c.Scales().Zones()
	if len(zones) == 0 {
		bw.println("(none)")
	}
	for _, z := range zones {
		v, _ := c.Scales().Cached(z)
		bw.printf("%s: %.4f\n", z, v)
	}
	bw.println("")

	bw.printf("--- Visuals (%d) ---\n", cont.Len())
	visuals := append([]minimap.Visual(nil), cont.Visuals...)
	sort.SliceStable(visuals, func(i, j int) bool { return visuals[i].Scene < visuals[j].Scene })
	for _, v := range visuals {
		marker := " "
		if v.Current {
			marker = "*"
		}
		bw.printf("%s %s pos=%v size=%v alpha=%.2f\n", marker, v.Scene, v.Position, v.Size, v.Alpha)
	}
	return bw.err
}

// errWriter keeps the first write error so the dump body stays linear
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, a ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, a...)
}

func (e *errWriter) println(s string) {
	e.printf("%s\n", s)
}
