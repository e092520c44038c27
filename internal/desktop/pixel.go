package desktop

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

var pixel *ebiten.Image

// whitePixel is the source image for tinted triangles
func whitePixel() *ebiten.Image {
	if pixel == nil {
		pixel = ebiten.NewImage(3, 3)
		pixel.Fill(color.White)
		pixel = pixel.SubImage(pixel.Bounds().Inset(1)).(*ebiten.Image)
	}
	return pixel
}

func fillVertices(vs []ebiten.Vertex, c color.RGBA) {
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(c.R) / 0xff
		vs[i].ColorG = float32(c.G) / 0xff
		vs[i].ColorB = float32(c.B) / 0xff
		vs[i].ColorA = float32(c.A) / 0xff
	}
}
