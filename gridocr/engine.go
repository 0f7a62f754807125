package gridocr

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/getcharzp/go-gridocr/internal/util"
	"github.com/up-zero/gotool/convertutil"
	"github.com/up-zero/gotool/imageutil"
)

const (
	DefaultFontWidth    = 9
	DefaultColStart     = 5
	DefaultNChar        = 5
	DefaultSignalCutoff = 100
	DefaultImageExt     = ".jpg"
)

// DefaultConfig 默认配置, 只需再填 InputDir 和 OutputDir
func DefaultConfig() Config {
	return Config{
		ImageExt:     DefaultImageExt,
		FontWidth:    DefaultFontWidth,
		ColStart:     DefaultColStart,
		NChar:        DefaultNChar,
		SignalCutoff: DefaultSignalCutoff,
	}
}

// NewEngine 读取训练集, 构建原型表并拟合 1NN 分类器。
// 任一步骤失败都返回 CodeConfiguration 错误, 不会得到半初始化的引擎。
func NewEngine(cfg Config) (*Engine, error) {
	params := new(Params)
	_ = convertutil.CopyProperties(cfg, params)
	if err := params.validate(); err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	ext := cfg.ImageExt
	if ext == "" {
		ext = DefaultImageExt
	}

	pairs, err := util.LoadPairs(cfg.InputDir, cfg.OutputDir, ext)
	if err != nil {
		return nil, wrapError(err, CodeConfiguration, "加载训练集失败")
	}
	samples := make([]Sample, len(pairs))
	for i, p := range pairs {
		samples[i] = Sample{Image: p.Image, Label: p.Label}
	}

	table, err := BuildPrototypes(samples, *params)
	if err != nil {
		return nil, err
	}
	model, err := Fit(table)
	if err != nil {
		return nil, err
	}

	logger.Info("gridocr model fitted",
		"samples", len(samples),
		"alphabet", string(model.labels),
		"font_width", params.FontWidth,
		"col_start", params.ColStart,
		"n_char", params.NChar,
		"signal_cutoff", params.SignalCutoff,
	)

	return &Engine{
		params: *params,
		model:  model,
		logger: logger,
	}, nil
}

// Classification 识别一张验证码图片
func (e *Engine) Classification(img image.Image) (string, error) {
	tiles, err := ExtractSignals(img, e.params)
	if err != nil {
		return "", wrapError(err, CodeInference, "切分图片失败")
	}
	labels, err := e.model.Predict(tiles)
	if err != nil {
		return "", err
	}
	return string(labels), nil
}

// Infer 识别 imagePath 并把结果加换行写入 outputPath(覆盖)。
// 图片不存在返回 CodeNotFound, 其他失败返回 CodeInference, 失败时不写文件也不会 panic。
func (e *Engine) Infer(imagePath, outputPath string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &Error{Code: CodeInference, Message: fmt.Sprintf("识别过程异常: %v", r), Path: imagePath}
		}
		if err != nil {
			e.logger.Warn("gridocr inference failed", "image", imagePath, "output", outputPath, "error", err)
		}
	}()

	if _, statErr := os.Stat(imagePath); statErr != nil {
		if errors.Is(statErr, fs.ErrNotExist) {
			return &Error{Code: CodeNotFound, Message: "图片不存在", Path: imagePath}
		}
		return &Error{Code: CodeInference, Message: "无法访问图片", Path: imagePath, Cause: statErr}
	}

	img, loadErr := util.LoadImage(imagePath)
	if loadErr != nil {
		return &Error{Code: CodeInference, Message: "加载图片失败", Path: imagePath, Cause: loadErr}
	}
	text, clsErr := e.Classification(img)
	if clsErr != nil {
		return &Error{Code: CodeInference, Message: "识别失败", Path: imagePath, Cause: clsErr}
	}
	if writeErr := os.WriteFile(outputPath, []byte(text+"\n"), 0o644); writeErr != nil {
		return &Error{Code: CodeInference, Message: "写入结果失败", Path: outputPath, Cause: writeErr}
	}
	return nil
}

// SavePrototypes 把每个字符的原型保存为 PNG, 文件名为 U+XXXX.png, 便于检查训练数据
func (e *Engine) SavePrototypes(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("创建目录 %s 失败: %w", dir, err)
	}
	for _, label := range e.model.labels {
		t, _ := e.model.Prototype(label)
		if err := imageutil.Save(filepath.Join(dir, PrototypeFileName(label)), t.Image(), 100); err != nil {
			return fmt.Errorf("保存原型 %q 失败: %w", label, err)
		}
	}
	return nil
}

// PrototypeFileName 原型图片文件名
func PrototypeFileName(label rune) string {
	return fmt.Sprintf("%U.png", label)
}

// Alphabet 返回模型字符集
func (e *Engine) Alphabet() []rune {
	return e.model.Alphabet()
}

// Model 返回拟合好的模型
func (e *Engine) Model() *Model {
	return e.model
}

// Params 返回切分参数
func (e *Engine) Params() Params {
	return e.params
}
