package gridocr

import (
	"image"
	"log/slog"

	"gonum.org/v1/gonum/mat"
)

// Config gridocr 配置信息
type Config struct {
	InputDir     string // 训练图片目录 (input<idx>.<ext>)
	OutputDir    string // 训练标注目录 (output<idx>.txt)
	ImageExt     string // 训练图片扩展名, 例如 ".jpg"
	FontWidth    int    // 单个字符宽度(像素)
	ColStart     int    // 第一个字符的起始列
	NChar        int    // 每张验证码的字符数
	SignalCutoff int    // 前景阈值, >= 该值视为笔画
	Logger       *slog.Logger
}

// Params 切分参数
type Params struct {
	FontWidth    int
	ColStart     int
	NChar        int
	SignalCutoff int
}

// Tile 二值化后的单个字符块, Pix 按行存储, 取值只有 0 和 1
type Tile struct {
	Width  int
	Height int
	Pix    []float64
}

// Sample 一条训练样本: 图片及其标注
type Sample struct {
	Image image.Image
	Label string
}

// PrototypeTable 每个字符对应一个原型
type PrototypeTable map[rune]Tile

// Model 1NN 分类器拟合结果, 拟合后只读
type Model struct {
	labels   []rune
	features *mat.Dense
	width    int
	height   int
}

// Engine 验证码识别引擎
type Engine struct {
	params Params
	model  *Model
	logger *slog.Logger
}
