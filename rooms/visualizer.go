package rooms

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/rasterizer"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Visualizer draws the wall segments fed into Identify together with the
// rooms it found, for visual debugging of a single run: one coordinate
// frame, one overlay, no per-source calibration.
//
// Rasterizes vector paths via a Style/RenderPath pipeline and stamps
// labels directly onto the resulting draw.Image with a bitmap font.
type Visualizer struct {
	Segments []Segment
	Rooms    []Room
	Padding  float64
	DPI      float64
}

// NewVisualizer returns a Visualizer with a sensible default padding and
// a screen-resolution DPI suitable for debug viewing.
func NewVisualizer(segs []Segment, rooms []Room) *Visualizer {
	return &Visualizer{Segments: segs, Rooms: rooms, Padding: 20, DPI: 96}
}

var (
	wallColor = color.RGBA{40, 40, 40, 255}
	roomFill  = nrgbaToRGBA(color.NRGBA{80, 160, 255, 60})
	roomEdge  = color.RGBA{20, 90, 200, 255}
	labelCol  = color.RGBA{20, 20, 20, 255}
)

// nrgbaToRGBA premultiplies alpha, as canvas.Paint.Color expects.
func nrgbaToRGBA(c color.NRGBA) color.RGBA {
	if c.A == 0 {
		return color.RGBA{0, 0, 0, 0}
	}
	if c.A == 255 {
		return color.RGBA{c.R, c.G, c.B, 255}
	}
	alpha32 := uint32(c.A)
	return color.RGBA{
		R: uint8((uint32(c.R) * alpha32) / 255),
		G: uint8((uint32(c.G) * alpha32) / 255),
		B: uint8((uint32(c.B) * alpha32) / 255),
		A: c.A,
	}
}

// RenderPNG rasterizes the overlay and writes it as a PNG to w.
func (v *Visualizer) RenderPNG(w io.Writer) error {
	minX, minY, maxX, maxY := v.bounds()
	width := (maxX - minX) + 2*v.Padding
	height := (maxY - minY) + 2*v.Padding
	if width <= 0 {
		width = 2 * v.Padding
	}
	if height <= 0 {
		height = 2 * v.Padding
	}

	rast := rasterizer.New(width, height, canvas.DPI(v.DPI), canvas.DefaultColorSpace)

	toCanvas := func(p Point) (float64, float64) {
		return p.X() - minX + v.Padding, height - (p.Y() - minY + v.Padding)
	}

	bgStyle := canvas.DefaultStyle
	bgStyle.Fill = canvas.Paint{Color: canvas.White}
	bgStyle.Stroke = canvas.Paint{Color: canvas.Transparent}
	rast.RenderPath(canvas.Rectangle(width, height), bgStyle, canvas.Identity)

	roomStyle := canvas.DefaultStyle
	roomStyle.Fill = canvas.Paint{Color: roomFill}
	roomStyle.Stroke = canvas.Paint{Color: roomEdge}
	roomStyle.StrokeWidth = 1.5
	for _, r := range v.Rooms {
		x0, y0 := toCanvas(Point{r.X, r.Y})
		x1, y1 := toCanvas(Point{r.X + r.W, r.Y + r.H})
		path := canvas.Rectangle(x1-x0, y0-y1).Translate(x0, y1)
		rast.RenderPath(path, roomStyle, canvas.Identity)
	}

	wallStyle := canvas.DefaultStyle
	wallStyle.Fill = canvas.Paint{Color: canvas.Transparent}
	wallStyle.Stroke = canvas.Paint{Color: wallColor}
	wallStyle.StrokeWidth = 1.0
	wallStyle.StrokeCapper = canvas.RoundCapper{}
	for _, s := range v.Segments {
		x0, y0 := toCanvas(s.P)
		x1, y1 := toCanvas(s.Q)
		path := &canvas.Path{}
		path.MoveTo(x0, y0)
		path.LineTo(x1, y1)
		rast.RenderPath(path, wallStyle, canvas.Identity)
	}

	for i, r := range v.Rooms {
		x0, y1 := toCanvas(Point{r.X, r.Y})
		drawLabel(rast, int(x0)+2, int(y1)-2, fmt.Sprintf("room %d", i))
	}

	// Rasterizer implements draw.Image (embeds image.Image), so it can be
	// both the font.Drawer destination above and the PNG source here.
	return png.Encode(w, rast)
}

// drawLabel stamps a short text label onto img with a fixed bitmap font.
func drawLabel(img draw.Image, x, y int, text string) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(labelCol),
		Face: basicfont.Face7x13,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)},
	}
	d.DrawString(text)
}

func (v *Visualizer) bounds() (minX, minY, maxX, maxY float64) {
	pts := make([]Point, 0, len(v.Segments)*2+len(v.Rooms)*2)
	for _, s := range v.Segments {
		pts = append(pts, s.P, s.Q)
	}
	for _, r := range v.Rooms {
		pts = append(pts, Point{r.X, r.Y}, Point{r.X + r.W, r.Y + r.H})
	}
	if len(pts) == 0 {
		return 0, 0, 0, 0
	}
	return boundsOf(pts)
}
