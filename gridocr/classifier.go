package gridocr

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Fit 用原型表构建 1NN 分类器, 行按字符排序
func Fit(table PrototypeTable) (*Model, error) {
	if len(table) == 0 {
		return nil, newError(CodeConfiguration, "没有可用的原型, 训练集为空")
	}

	labels := table.Labels()
	first := table[labels[0]]
	w, h := first.Width, first.Height
	dim := w * h
	if dim == 0 {
		return nil, newError(CodeConfiguration, "原型尺寸为空: %dx%d", w, h)
	}

	data := make([]float64, 0, len(labels)*dim)
	for _, label := range labels {
		t := table[label]
		if t.Width != w || t.Height != h || len(t.Pix) != dim {
			return nil, newError(CodeConfiguration, "原型 %q 尺寸 %dx%d 与 %dx%d 不一致", label, t.Width, t.Height, w, h)
		}
		data = append(data, t.Pix...)
	}

	return &Model{
		labels:   labels,
		features: mat.NewDense(len(labels), dim, data),
		width:    w,
		height:   h,
	}, nil
}

// Predict 对每个字符块返回欧氏距离最近的原型标签, 距离相同时取排在前面的
func (m *Model) Predict(tiles []Tile) ([]rune, error) {
	rows, dim := m.features.Dims()
	out := make([]rune, len(tiles))
	for i, t := range tiles {
		if t.Width != m.width || t.Height != m.height || len(t.Pix) != dim {
			return nil, newError(CodeInference, "第 %d 个字符块尺寸 %dx%d 与模型 %dx%d 不一致", i, t.Width, t.Height, m.width, m.height)
		}
		best, bestDist := 0, math.Inf(1)
		for r := 0; r < rows; r++ {
			if d := floats.Distance(m.features.RawRowView(r), t.Pix, 2); d < bestDist {
				best, bestDist = r, d
			}
		}
		out[i] = m.labels[best]
	}
	return out, nil
}

// Alphabet 返回模型的字符集(已排序)
func (m *Model) Alphabet() []rune {
	a := make([]rune, len(m.labels))
	copy(a, m.labels)
	return a
}

// Prototype 返回某个字符的原型
func (m *Model) Prototype(label rune) (Tile, bool) {
	for i, l := range m.labels {
		if l == label {
			return Tile{Width: m.width, Height: m.height, Pix: mat.Row(nil, i, m.features)}, true
		}
	}
	return Tile{}, false
}

// TileSize 返回模型要求的字符块尺寸
func (m *Model) TileSize() (width, height int) {
	return m.width, m.height
}
