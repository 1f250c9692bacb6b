package gfx

import (
	"fmt"
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/gogfx/gfx/internal/norm"
)

// Pixmap is a rectangular ARGB32 pixel buffer, the simplest concrete
// backing store a software backend can draw into. It implements image.Image
// and draw.Image, so the standard library and x/image operate on it
// directly.
type Pixmap struct {
	rect Rect
	data []ARGB32
}

// NewPixmap creates a pixel buffer covering the given region. The region
// must not overflow the coordinate range and its area must fit in an int32;
// otherwise NewPixmap fails with ErrOverflow.
func NewPixmap(bounds Rect) (*Pixmap, error) {
	if bounds.OverflowsX() || bounds.OverflowsY() {
		return nil, fmt.Errorf("%w: pixmap bounds out of range", ErrOverflow)
	}
	area, err := bounds.Area()
	if err != nil {
		return nil, err
	}
	return &Pixmap{rect: bounds, data: make([]ARGB32, area)}, nil
}

// Rect returns the covered region.
func (p *Pixmap) Rect() Rect { return p.rect }

// Data returns the raw pixels in row-major order.
func (p *Pixmap) Data() []ARGB32 { return p.data }

func (p *Pixmap) index(px, py int32) int {
	return int(py-p.rect.Y())*int(p.rect.XSpan()) + int(px-p.rect.X())
}

// Get returns the pixel at (px, py), or zero outside the buffer.
func (p *Pixmap) Get(px, py int32) ARGB32 {
	if !p.rect.ContainsCoord(px, py) {
		return 0
	}
	return p.data[p.index(px, py)]
}

// SetPix sets the pixel at (px, py). Writes outside the buffer are
// discarded.
func (p *Pixmap) SetPix(px, py int32, c ARGB32) {
	if !p.rect.ContainsCoord(px, py) {
		return
	}
	p.data[p.index(px, py)] = c
}

// Fill sets every pixel of r, clipped to the buffer, to c.
func (p *Pixmap) Fill(r Rect, c ARGB32) {
	r = p.rect.Intersect(r.Trimmed())
	if r.IsEmpty() {
		return
	}
	for py := r.Y(); ; py++ {
		row := p.index(r.X(), py)
		for i := row; i < row+int(r.XSpan()); i++ {
			p.data[i] = c
		}
		if py == r.Y()+r.YSpan()-1 {
			break
		}
	}
}

// ColorModel implements image.Image.
func (p *Pixmap) ColorModel() color.Model {
	return color.ModelFunc(func(c color.Color) color.Color {
		return argb32FromColor(c)
	})
}

// Bounds implements image.Image.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(
		int(p.rect.X()), int(p.rect.Y()),
		int(p.rect.XMaxWide()+1), int(p.rect.YMaxWide()+1),
	)
}

// At implements image.Image.
func (p *Pixmap) At(x, y int) color.Color {
	return p.Get(int32(x), int32(y))
}

// Set implements draw.Image.
func (p *Pixmap) Set(x, y int, c color.Color) {
	p.SetPix(int32(x), int32(y), argb32FromColor(c))
}

// argb32FromColor converts any color.Color, un-premultiplying the way
// color.NRGBAModel does.
func argb32FromColor(c color.Color) ARGB32 {
	switch c := c.(type) {
	case ARGB32:
		return c
	case ARGB64:
		return c.Narrow()
	case Color:
		return c.ARGB32()
	}
	r, g, b, a := c.RGBA()
	if a == 0 {
		return 0
	}
	return NewARGB32(
		norm.U8FromU16(uint16(a)),
		norm.U8FromU16(uint16(r*0xffff/a)),
		norm.U8FromU16(uint16(g*0xffff/a)),
		norm.U8FromU16(uint16(b*0xffff/a)),
	)
}

// PixmapFromImage copies an image into a fresh pixmap covering the image
// bounds. It fails with ErrOverflow when the image bounds do not fit the
// int32 coordinate range.
func PixmapFromImage(img image.Image) (*Pixmap, error) {
	b := img.Bounds()
	if !inInt32(b.Min.X) || !inInt32(b.Min.Y) || !inInt32(b.Dx()) || !inInt32(b.Dy()) {
		return nil, fmt.Errorf("%w: image bounds out of range", ErrOverflow)
	}
	bounds, err := NewRect(int32(b.Min.X), int32(b.Min.Y), int32(b.Dx()), int32(b.Dy()))
	if err != nil {
		return nil, err
	}
	p, err := NewPixmap(bounds)
	if err != nil {
		return nil, err
	}
	logger().Debug("gfx: converting image to pixmap",
		"xSpan", bounds.XSpan(), "ySpan", bounds.YSpan())
	xdraw.Copy(p, b.Min, img, b, xdraw.Src, nil)
	return p, nil
}

func inInt32(v int) bool {
	return v >= math.MinInt32 && v <= math.MaxInt32
}
