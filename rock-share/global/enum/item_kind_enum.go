package enum

import "strings"

type ItemKind int

const (
	// AtomicItem 单个字段值形成的项
	AtomicItem ItemKind = iota
	// CompositeItem 违章code+描述拼接的复合项
	CompositeItem
	// HierarchicalItem 罚款档位+复合项拼接的层级项
	HierarchicalItem
)

// KindOf 根据标签的拼接形式判断项的种类
func KindOf(item string) ItemKind {
	if strings.HasPrefix(item, "Violation_") {
		return CompositeItem
	}
	if strings.Contains(item, "_Violation_") {
		return HierarchicalItem
	}
	return AtomicItem
}
