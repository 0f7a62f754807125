package gridocr

import (
	"image"

	"golang.org/x/image/draw"
)

// ExtractSignals 取第一通道按阈值二值化, 再从 ColStart 开始按 FontWidth 切出 NChar 个字符块(从左到右)
func ExtractSignals(img image.Image, p Params) ([]Tile, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if end := p.ColStart + p.NChar*p.FontWidth; end > w {
		return nil, newError(CodeConfiguration, "切分区域越界: 需要宽度 %d, 图片宽度 %d", end, w)
	}

	// 统一转成非预乘 RGBA, 灰度图的第一通道即亮度
	nrgba, ok := img.(*image.NRGBA)
	if !ok {
		nrgba = image.NewNRGBA(image.Rect(0, 0, w, h))
		draw.Draw(nrgba, nrgba.Bounds(), img, b.Min, draw.Src)
	}
	nb := nrgba.Bounds()

	tiles := make([]Tile, p.NChar)
	for j := range tiles {
		x0 := p.ColStart + j*p.FontWidth
		t := Tile{Width: p.FontWidth, Height: h, Pix: make([]float64, p.FontWidth*h)}
		for y := 0; y < h; y++ {
			row := nrgba.PixOffset(nb.Min.X, nb.Min.Y+y)
			for x := 0; x < p.FontWidth; x++ {
				// 等于阈值也算笔画
				if int(nrgba.Pix[row+(x0+x)*4]) >= p.SignalCutoff {
					t.Pix[y*p.FontWidth+x] = 1
				}
			}
		}
		tiles[j] = t
	}
	return tiles, nil
}

func (p Params) validate() error {
	switch {
	case p.FontWidth <= 0:
		return newError(CodeConfiguration, "字符宽度必须大于 0: %d", p.FontWidth)
	case p.NChar <= 0:
		return newError(CodeConfiguration, "字符数必须大于 0: %d", p.NChar)
	case p.ColStart < 0:
		return newError(CodeConfiguration, "起始列不能为负: %d", p.ColStart)
	}
	return nil
}

// At 返回 (x, y) 处的像素值
func (t Tile) At(x, y int) float64 {
	return t.Pix[y*t.Width+x]
}

// Features 按行展开为特征向量
func (t Tile) Features() []float64 {
	f := make([]float64, len(t.Pix))
	copy(f, t.Pix)
	return f
}

// Image 转成黑白灰度图, 笔画为白色
func (t Tile) Image() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, t.Width, t.Height))
	for i, v := range t.Pix {
		if v != 0 {
			img.Pix[i] = 255
		}
	}
	return img
}

// Equal 判断两个字符块是否完全一致
func (t Tile) Equal(o Tile) bool {
	if t.Width != o.Width || t.Height != o.Height || len(t.Pix) != len(o.Pix) {
		return false
	}
	for i := range t.Pix {
		if t.Pix[i] != o.Pix[i] {
			return false
		}
	}
	return true
}
