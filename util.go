package ocr

import (
	"os"
	"path/filepath"
)

// DefaultDatasetPaths 默认训练集目录: ./input/ 放图片, ./output/ 放标注
// 设置了 GRIDOCR_HOME 时以它为根目录
func DefaultDatasetPaths() (inputDir, outputDir string) {
	baseDir := "."
	if home := os.Getenv("GRIDOCR_HOME"); home != "" {
		baseDir = home
	}
	return filepath.Join(baseDir, "input"), filepath.Join(baseDir, "output")
}

// DefaultConfigFile 默认配置文件路径
func DefaultConfigFile() string {
	baseDir := "."
	if home := os.Getenv("GRIDOCR_HOME"); home != "" {
		baseDir = home
	}
	return filepath.Join(baseDir, "gridocr.yaml")
}
