// Package render draws the particle system's render points with ebiten
package render

import (
	"image"
	"image/color"

	"github.com/decker502/sparks/pkg/components"
	"github.com/hajimehoshi/ebiten/v2"
)

// MaxPointsPerBatch is the number of points one DrawTriangles call can hold:
// 4 vertices per point and 16-bit indices.
const MaxPointsPerBatch = 65536 / 4

// PointRenderer draws render points as small solid quads on an ebiten image.
//
// Vertex and index buffers are reused between frames (避免每帧分配).
type PointRenderer struct {
	size     float32
	vertices []ebiten.Vertex
	indices  []uint16

	whiteImage *ebiten.Image
}

// NewPointRenderer creates a renderer drawing each point as a size×size quad.
func NewPointRenderer(size float64) *PointRenderer {
	return &PointRenderer{
		size:     float32(size),
		vertices: make([]ebiten.Vertex, 0, 4*1024),
		indices:  make([]uint16, 0, 6*1024),
	}
}

// Draw renders every visible point onto screen.
func (r *PointRenderer) Draw(screen *ebiten.Image, points []components.Vertex) {
	if r.whiteImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		// 使用中心像素作为纹理，避免边缘采样
		r.whiteImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}

	op := &ebiten.DrawTrianglesOptions{}

	for start := 0; start < len(points); start += MaxPointsPerBatch {
		end := min(start+MaxPointsPerBatch, len(points))

		r.vertices, r.indices = buildPointVertices(r.vertices[:0], r.indices[:0], points[start:end], r.size, 1, 1)
		if len(r.vertices) == 0 {
			continue
		}
		screen.DrawTriangles(r.vertices, r.indices, r.whiteImage, op)
	}
}

// buildPointVertices appends one quad per visible point to vs and is.
//
// Colours are passed straight (non-premultiplied), matching the default
// ColorScaleMode of DrawTrianglesOptions. Fully transparent points are
// skipped. points must not hold more than MaxPointsPerBatch entries.
func buildPointVertices(vs []ebiten.Vertex, is []uint16, points []components.Vertex, size float32, srcX, srcY float32) ([]ebiten.Vertex, []uint16) {
	half := size / 2

	for _, p := range points {
		if p.Color.A == 0 {
			continue
		}

		x := float32(p.Position.X)
		y := float32(p.Position.Y)
		cr := float32(p.Color.R) / 255
		cg := float32(p.Color.G) / 255
		cb := float32(p.Color.B) / 255
		ca := float32(p.Color.A) / 255

		base := uint16(len(vs))

		// 左上、右上、左下、右下
		for _, corner := range [4][2]float32{{-half, -half}, {half, -half}, {-half, half}, {half, half}} {
			vs = append(vs, ebiten.Vertex{
				DstX:   x + corner[0],
				DstY:   y + corner[1],
				SrcX:   srcX,
				SrcY:   srcY,
				ColorR: cr,
				ColorG: cg,
				ColorB: cb,
				ColorA: ca,
			})
		}

		is = append(is,
			base+0, base+1, base+2,
			base+1, base+3, base+2,
		)
	}

	return vs, is
}
