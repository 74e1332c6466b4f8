// Package svgvector parses the minimal SVG vocabulary the room-detection
// pipeline's upstream PDF/CAD-to-vector front end is expected to emit:
// straight polylines, polygons, lines, and straight-segment paths, each
// carrying its own stroke width (stroke widths are not inherited from
// ancestor elements; an element without one counts as 1.0). Anything thinner than
// the configured threshold is treated as an annotation and discarded;
// curved path commands are detected and skipped rather than
// approximated, matching the pipeline's stated Non-goal on curved walls.
package svgvector

import (
	"encoding/xml"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/kwv/roomtrace/rooms"
)

// DefaultStrokeThresh is used by Parse callers that don't have a
// specific override (mirrors rooms.DefaultConfig().StrokeThresh).
const DefaultStrokeThresh = 1.5

var pathCommand = regexp.MustCompile(`[MLml]\s*([\d.\-]+)[ ,]([\d.\-]+)`)

// rawElement mirrors just enough of the SVG element shape to read
// stroke-width and the handful of geometry attributes this package
// understands; unknown elements and attributes are ignored.
type rawElement struct {
	XMLName  xml.Name
	Points   string       `xml:"points,attr"`
	X1       string       `xml:"x1,attr"`
	Y1       string       `xml:"y1,attr"`
	X2       string       `xml:"x2,attr"`
	Y2       string       `xml:"y2,attr"`
	D        string       `xml:"d,attr"`
	Style    string       `xml:"style,attr"`
	StrokeWidth string    `xml:"stroke-width,attr"`
	Children []rawElement `xml:",any"`
}

// Parse reads an SVG-like document and returns the polylines whose
// effective stroke width is at least strokeThresh.
//
// Namespace prefixes are stripped from element names, stroke-width is
// read either from the attribute or an inlined `stroke-width:` CSS
// declaration, and only polyline/polygon/line/path(straight-segments-only)
// elements contribute geometry.
func Parse(data []byte, strokeThresh float64) ([]rooms.Polyline, error) {
	var root rawElement
	if err := xml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("svgvector: parse document: %w", err)
	}

	var out []rooms.Polyline
	collect(root, strokeThresh, &out)
	return out, nil
}

func collect(el rawElement, strokeThresh float64, out *[]rooms.Polyline) {
	if pl, ok := elementPolyline(el, strokeThresh); ok {
		*out = append(*out, pl)
	}
	for _, child := range el.Children {
		collect(child, strokeThresh, out)
	}
}

func elementPolyline(el rawElement, strokeThresh float64) (rooms.Polyline, bool) {
	tag := stripNamespace(el.XMLName.Local)
	if effectiveStrokeWidth(el) < strokeThresh {
		return rooms.Polyline{}, false
	}

	switch tag {
	case "polyline", "polygon":
		pts := parseCoordPairs(el.Points)
		if len(pts) < 2 {
			return rooms.Polyline{}, false
		}
		return rooms.Polyline{Points: pts, Closed: tag == "polygon"}, true

	case "line":
		x1, ok1 := parseFloat(el.X1)
		y1, ok2 := parseFloat(el.Y1)
		x2, ok3 := parseFloat(el.X2)
		y2, ok4 := parseFloat(el.Y2)
		if !ok1 || !ok2 || !ok3 || !ok4 {
			return rooms.Polyline{}, false
		}
		return rooms.Polyline{Points: []rooms.Point{{x1, y1}, {x2, y2}}}, true

	case "path":
		pts, straight := parseStraightPath(el.D)
		if !straight || len(pts) < 2 {
			return rooms.Polyline{}, false
		}
		return rooms.Polyline{Points: pts}, true
	}
	return rooms.Polyline{}, false
}

// parseStraightPath accepts only paths built from M/L commands. Any
// other command letter (curves, arcs, closepath) makes the whole path
// unsupported, per the pipeline's Non-goal on curved walls.
func parseStraightPath(d string) ([]rooms.Point, bool) {
	d = strings.TrimSpace(d)
	if d == "" {
		return nil, false
	}
	for _, r := range d {
		if (r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z') && r != 'M' && r != 'L' && r != 'm' && r != 'l' {
			return nil, false
		}
	}
	matches := pathCommand.FindAllStringSubmatch(d, -1)
	if len(matches) < 2 {
		return nil, false
	}
	pts := make([]rooms.Point, 0, len(matches))
	for _, m := range matches {
		x, okx := parseFloat(m[1])
		y, oky := parseFloat(m[2])
		if !okx || !oky {
			return nil, false
		}
		pts = append(pts, rooms.Point{x, y})
	}
	return pts, true
}

func parseCoordPairs(raw string) []rooms.Point {
	raw = strings.ReplaceAll(raw, ",", " ")
	fields := strings.Fields(raw)
	var pts []rooms.Point
	for i := 0; i+1 < len(fields); i += 2 {
		x, okx := parseFloat(fields[i])
		y, oky := parseFloat(fields[i+1])
		if !okx || !oky {
			continue
		}
		pts = append(pts, rooms.Point{x, y})
	}
	return pts
}

func effectiveStrokeWidth(el rawElement) float64 {
	sw := el.StrokeWidth
	if sw == "" {
		sw = el.Style
	}
	if strings.Contains(sw, "stroke-width") {
		parts := strings.SplitN(sw, "stroke-width", 2)
		if len(parts) == 2 {
			rest := strings.TrimPrefix(strings.TrimSpace(parts[1]), ":")
			rest = strings.SplitN(rest, ";", 2)[0]
			sw = strings.TrimSpace(rest)
		}
	}
	if sw == "" {
		return 1.0
	}
	v, ok := parseFloat(sw)
	if !ok {
		return 1.0
	}
	return v
}

func parseFloat(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func stripNamespace(tag string) string {
	if i := strings.LastIndex(tag, ":"); i >= 0 {
		return tag[i+1:]
	}
	return tag
}
