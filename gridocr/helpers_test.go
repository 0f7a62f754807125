package gridocr

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"testing"
)

const (
	ink        = 200
	background = 20
)

var (
	glyphA  = []string{"###", "#.#", "###", "#.#"}
	glyphA2 = []string{".#.", "#.#", "###", "#.#"}
	glyphB  = []string{"##.", "###", "#.#", "###"}
	glyphC  = []string{"###", "#..", "#..", "###"}
)

var testParams = Params{FontWidth: 3, ColStart: 1, NChar: 2, SignalCutoff: 100}

// render 按参数把字形画到图片上, 绿色/蓝色通道与红色相反, 用来确认只看第一通道
func render(p Params, glyphs ...[]string) *image.RGBA {
	h := len(glyphs[0])
	w := p.ColStart + len(glyphs)*p.FontWidth + 2
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: background, G: 250, B: 250, A: 255})
		}
	}
	for j, g := range glyphs {
		for y, row := range g {
			for x, c := range row {
				if c == '#' {
					img.Set(p.ColStart+j*p.FontWidth+x, y, color.RGBA{R: ink, G: 5, B: 5, A: 255})
				}
			}
		}
	}
	return img
}

func tileOf(g []string) Tile {
	t := Tile{Width: len(g[0]), Height: len(g), Pix: make([]float64, len(g[0])*len(g))}
	for y, row := range g {
		for x, c := range row {
			if c == '#' {
				t.Pix[y*t.Width+x] = 1
			}
		}
	}
	return t
}

func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("创建文件失败: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("写入图片失败: %v", err)
	}
}
