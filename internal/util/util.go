package util

import (
	"bufio"
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

const (
	InputPrefix  = "input"
	OutputPrefix = "output"
	LabelExt     = ".txt"
)

// Pair 一组训练图片和对应标注
type Pair struct {
	Name  string
	Image image.Image
	Label string
}

// ReadLabel 读取标注文件第一行, 去掉换行符
func ReadLabel(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("无法打开标注文件 %s: %w", path, err)
	}
	defer file.Close()
	scanner := bufio.NewScanner(file)
	if scanner.Scan() {
		return strings.TrimRight(scanner.Text(), "\r\n"), nil
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("读取标注文件时出错: %w", err)
	}
	return "", nil
}

// LoadImage 读取并解码图片
func LoadImage(path string) (image.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("解码图片 %s 失败: %w", path, err)
	}
	return img, nil
}

// LabelName 根据图片文件名计算标注文件名, 不是训练图片时返回 false
func LabelName(fname, ext string) (string, bool) {
	if !strings.HasPrefix(fname, InputPrefix) || !strings.HasSuffix(fname, ext) {
		return "", false
	}
	idx, _, _ := strings.Cut(fname, ".")
	return OutputPrefix + idx[len(InputPrefix):] + LabelExt, true
}

// LoadPairs 扫描 inputDir 中的 input<idx><ext>, 与 outputDir 中的 output<idx>.txt 配对。
// 没有标注文件的图片直接跳过。
func LoadPairs(inputDir, outputDir, ext string) ([]Pair, error) {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, fmt.Errorf("读取图片目录 %s 失败: %w", inputDir, err)
	}

	var pairs []Pair
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		labelName, ok := LabelName(entry.Name(), ext)
		if !ok {
			continue
		}
		labelPath := filepath.Join(outputDir, labelName)
		if _, err := os.Stat(labelPath); err != nil {
			continue
		}

		img, err := LoadImage(filepath.Join(inputDir, entry.Name()))
		if err != nil {
			return nil, err
		}
		label, err := ReadLabel(labelPath)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, Pair{Name: entry.Name(), Image: img, Label: label})
	}
	return pairs, nil
}
