package gridocr

import "slices"

// BuildPrototypes 按位置把字符块和标注字符对应起来, 每个字符只保留最后一次出现的字符块。
// 标注比字符块少时多余的字符块被忽略, 反之亦然。
func BuildPrototypes(samples []Sample, p Params) (PrototypeTable, error) {
	table := make(PrototypeTable)
	for i, s := range samples {
		tiles, err := ExtractSignals(s.Image, p)
		if err != nil {
			return nil, wrapError(err, CodeConfiguration, "第 %d 个样本切分失败", i)
		}
		j := 0
		for _, label := range s.Label {
			if j >= len(tiles) {
				break
			}
			table[label] = tiles[j]
			j++
		}
	}
	return table, nil
}

// Labels 返回按字符排序的标签
func (t PrototypeTable) Labels() []rune {
	labels := make([]rune, 0, len(t))
	for r := range t {
		labels = append(labels, r)
	}
	slices.Sort(labels)
	return labels
}
