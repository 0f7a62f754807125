package gridocr

import (
	"errors"
	"testing"
)

func TestBuildPrototypesLastWriteWins(t *testing.T) {
	samples := []Sample{
		{Image: render(testParams, glyphA, glyphB), Label: "AB"},
		{Image: render(testParams, glyphA2, glyphC), Label: "AC"},
	}
	table, err := BuildPrototypes(samples, testParams)
	if err != nil {
		t.Fatalf("构建原型失败: %v", err)
	}
	if len(table) != 3 {
		t.Fatalf("len(table) = %d, want 3", len(table))
	}
	if !table['A'].Equal(tileOf(glyphA2)) {
		t.Errorf("A 应为最后一次出现的字符块, got %v", table['A'].Pix)
	}
	if !table['B'].Equal(tileOf(glyphB)) || !table['C'].Equal(tileOf(glyphC)) {
		t.Error("B/C 原型不正确")
	}

	// 顺序反过来, A 取第一张图的字形
	table, err = BuildPrototypes([]Sample{samples[1], samples[0]}, testParams)
	if err != nil {
		t.Fatalf("构建原型失败: %v", err)
	}
	if !table['A'].Equal(tileOf(glyphA)) {
		t.Errorf("A 应为最后一次出现的字符块, got %v", table['A'].Pix)
	}
}

func TestBuildPrototypesTruncates(t *testing.T) {
	samples := []Sample{
		{Image: render(testParams, glyphA, glyphB), Label: "A"},
		{Image: render(testParams, glyphC, glyphB), Label: "CXYZ"},
	}
	table, err := BuildPrototypes(samples, testParams)
	if err != nil {
		t.Fatalf("构建原型失败: %v", err)
	}
	got := string(table.Labels())
	if got != "ACX" {
		t.Errorf("Labels() = %q, want %q", got, "ACX")
	}
	if !table['X'].Equal(tileOf(glyphB)) {
		t.Errorf("X = %v", table['X'].Pix)
	}
}

func TestBuildPrototypesExtractError(t *testing.T) {
	narrow := Params{FontWidth: 3, ColStart: 1, NChar: 5, SignalCutoff: 100}
	_, err := BuildPrototypes([]Sample{{Image: render(testParams, glyphA, glyphB), Label: "AB"}}, narrow)
	if !errors.Is(err, ErrConfiguration) {
		t.Errorf("err = %v, want configuration error", err)
	}
}
