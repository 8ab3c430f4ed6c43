// Package overlay draws the dismissable info panel on top of the scene.
//
// The panel is laid out and rasterized on the CPU with the fixed-size
// basicfont face, then uploaded as a single texture whenever its text changes.
package overlay

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Layout constants in pixels.
const (
	Margin        = 10
	Padding       = 10
	LineSpacing   = 4
	ButtonPadding = 6
	ButtonLabel   = "Hide"
)

var (
	backgroundColor = color.RGBA{0, 0, 0, 180}
	titleColor      = color.RGBA{255, 210, 0, 255}
	textColor       = color.RGBA{230, 230, 230, 255}
	buttonColor     = color.RGBA{70, 70, 80, 255}
)

// Rect is an axis-aligned rectangle in window pixels, origin top-left.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Panel holds the info panel's text and visibility.
type Panel struct {
	face    font.Face
	title   string
	lines   []string
	status  string
	visible bool
	dirty   bool
}

// NewPanel creates a visible panel.
func NewPanel(title string, lines []string) *Panel {
	return &Panel{
		face:    basicfont.Face7x13,
		title:   title,
		lines:   append([]string(nil), lines...),
		visible: true,
		dirty:   true,
	}
}

// SetStatus replaces the status line shown under the body text.
func (p *Panel) SetStatus(status string) {
	if status == p.status {
		return
	}
	p.status = status
	p.dirty = true
}

// Show makes the panel visible.
func (p *Panel) Show() {
	p.visible = true
}

// Dismiss hides the panel.
func (p *Panel) Dismiss() {
	p.visible = false
}

// Visible reports whether the panel is drawn.
func (p *Panel) Visible() bool {
	return p.visible
}

// Click handles a left click at (x, y). It returns true when the click hit
// the hide button and the panel was dismissed.
func (p *Panel) Click(x, y int) bool {
	if !p.visible {
		return false
	}
	_, button := p.Layout()
	if !button.Contains(x, y) {
		return false
	}
	p.Dismiss()
	return true
}

// Covers reports whether (x, y) is over the visible panel, so the caller can
// keep clicks on the panel away from the camera.
func (p *Panel) Covers(x, y int) bool {
	if !p.visible {
		return false
	}
	panel, _ := p.Layout()
	return panel.Contains(x, y)
}

func (p *Panel) lineHeight() int {
	return p.face.Metrics().Height.Ceil() + LineSpacing
}

func (p *Panel) textWidth(s string) int {
	return font.MeasureString(p.face, s).Ceil()
}

// rows returns every text row in draw order; the title is row 0.
func (p *Panel) rows() []string {
	rows := make([]string, 0, len(p.lines)+2)
	rows = append(rows, p.title)
	rows = append(rows, p.lines...)
	if p.status != "" {
		rows = append(rows, p.status)
	}
	return rows
}

// Layout returns the panel and hide button rectangles in window pixels.
func (p *Panel) Layout() (panel, button Rect) {
	rows := p.rows()
	lh := p.lineHeight()

	button.W = p.textWidth(ButtonLabel) + 2*ButtonPadding
	button.H = p.face.Metrics().Height.Ceil() + ButtonPadding

	width := button.W
	for _, r := range rows {
		if w := p.textWidth(r); w > width {
			width = w
		}
	}

	panel = Rect{
		X: Margin,
		Y: Margin,
		W: width + 2*Padding,
		H: Padding + len(rows)*lh + button.H + Padding,
	}
	button.X = panel.X + panel.W - Padding - button.W
	button.Y = panel.Y + panel.H - Padding - button.H
	return panel, button
}

// Dirty reports whether the text changed since the last Rasterize.
func (p *Panel) Dirty() bool {
	return p.dirty
}

// Rasterize draws the panel into an RGBA image the size of its layout
// rectangle and clears the dirty flag.
func (p *Panel) Rasterize() *image.RGBA {
	panel, button := p.Layout()
	img := image.NewRGBA(image.Rect(0, 0, panel.W, panel.H))
	draw.Draw(img, img.Bounds(), image.NewUniform(backgroundColor), image.Point{}, draw.Src)

	ascent := p.face.Metrics().Ascent.Ceil()
	lh := p.lineHeight()
	for i, row := range p.rows() {
		col := textColor
		if i == 0 {
			col = titleColor
		}
		p.drawText(img, row, Padding, Padding+i*lh+ascent, col)
	}

	// Button rectangle relative to the panel image.
	br := image.Rect(button.X-panel.X, button.Y-panel.Y, button.X-panel.X+button.W, button.Y-panel.Y+button.H)
	draw.Draw(img, br, image.NewUniform(buttonColor), image.Point{}, draw.Src)
	p.drawText(img, ButtonLabel, br.Min.X+ButtonPadding, br.Min.Y+(button.H-p.face.Metrics().Height.Ceil())/2+ascent, textColor)

	p.dirty = false
	return img
}

func (p *Panel) drawText(dst draw.Image, s string, x, baseline int, col color.Color) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: p.face,
		Dot:  fixed.P(x, baseline),
	}
	d.DrawString(s)
}
