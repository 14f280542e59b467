package present

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/present/driver"
)

// SolidBrush is a Resource wrapping a device-side solid color brush.
//
// The color is the semantic value: it survives device loss, and the brush is
// recreated from it on the next initialization sweep. SetColor updates a
// live device brush in place, so no reinitialization is needed while the
// draw context is valid.
//
// Example:
//
//	textBrush := present.NewSolidBrush(gg.Black)
//	surface.AddResource(textBrush)
//	...
//	canvas.SetFillBrush(textBrush.Paint())
type SolidBrush struct {
	color  gg.RGBA
	handle driver.Brush
}

// NewSolidBrush creates an uninitialized solid brush with the given color.
// The device-side brush is created when the owning surface first sweeps its
// resource registry.
func NewSolidBrush(c gg.RGBA) *SolidBrush {
	return &SolidBrush{color: c}
}

// Initialize implements Resource. It creates the device brush from the
// stored color, replacing any prior handle.
func (b *SolidBrush) Initialize(dc driver.DrawContext) error {
	h, err := dc.NewSolidBrush(b.color)
	if err != nil {
		return err
	}
	if b.handle != nil {
		b.handle.Release()
	}
	b.handle = h
	return nil
}

// IsInitialized implements Resource.
func (b *SolidBrush) IsInitialized() bool {
	return b.handle != nil
}

// Reset implements Resource. It drops the device brush; the color is kept.
func (b *SolidBrush) Reset() {
	if b.handle != nil {
		b.handle.Release()
		b.handle = nil
	}
}

// Color returns the current semantic color.
func (b *SolidBrush) Color() gg.RGBA {
	return b.color
}

// SetColor updates the brush color. If a device brush exists the change is
// pushed to it immediately; otherwise it takes effect on the next
// Initialize.
func (b *SolidBrush) SetColor(c gg.RGBA) {
	if b.handle != nil {
		b.handle.SetColor(c)
	}
	b.color = c
}

// Handle returns the device-side brush, or nil while uninitialized.
func (b *SolidBrush) Handle() driver.Brush {
	return b.handle
}

// Paint returns the live gg brush for drawing. If the device brush is not
// initialized it falls back to a plain solid brush with the stored color, so
// render callbacks never observe a nil paint.
func (b *SolidBrush) Paint() gg.Brush {
	if b.handle == nil {
		return gg.Solid(b.color)
	}
	return b.handle.Paint()
}
