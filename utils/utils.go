package utils

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"parkminer/rock-share/global/model/mine"
)

// SortItemsetSupports 支持数降序,同支持数按项标签字典序升序
func SortItemsetSupports(data []mine.ItemsetSupport) {
	sort.SliceStable(data, func(i, j int) bool {
		return data[i].Itemset.Key() < data[j].Itemset.Key() // 升序
	})
	sort.SliceStable(data, func(i, j int) bool {
		return data[i].Count > data[j].Count // 降序
	})
}

// SortRules 置信度降序,再按支持度降序
func SortRules(data []mine.Rule) {
	sort.SliceStable(data, func(i, j int) bool {
		return data[i].CR > data[j].CR // 降序
	})
	sort.SliceStable(data, func(i, j int) bool {
		return data[i].FTR > data[j].FTR // 降序
	})
}

// FormatPercent 比例转成保留一位小数的百分数,如0.125 -> "12.5%"
func FormatPercent(ratio float64) string {
	return fmt.Sprintf("%.1f%%", ratio*100)
}

// FormatThresholdPercent 阈值转百分数,保留原始浮点精度,整数也带一位小数
func FormatThresholdPercent(threshold float64) string {
	s := strconv.FormatFloat(threshold*100, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s + "%"
}
