package mine

import (
	"sort"
	"strings"
)

// keySep 项集key的分隔符,取一个不会出现在字段值里的控制字符
const keySep = "\x1f"

// Itemset 不可变项集。内部按字典序排序并去重,Key作为map的键使用
type Itemset struct {
	items []string
	key   string
}

func NewItemset(items ...string) Itemset {
	dedup := make(map[string]struct{}, len(items))
	for _, item := range items {
		dedup[item] = struct{}{}
	}
	sorted := make([]string, 0, len(dedup))
	for item := range dedup {
		sorted = append(sorted, item)
	}
	sort.Strings(sorted)
	return Itemset{items: sorted, key: strings.Join(sorted, keySep)}
}

func (s Itemset) Size() int {
	return len(s.items)
}

// Key 结构相等的项集Key相同,作为各类映射的键
func (s Itemset) Key() string {
	return s.key
}

// Items 返回有序项标签的拷贝
func (s Itemset) Items() []string {
	items := make([]string, len(s.items))
	copy(items, s.items)
	return items
}

func (s Itemset) Has(item string) bool {
	i := sort.SearchStrings(s.items, item)
	return i < len(s.items) && s.items[i] == item
}

// SubsetOf 判断s的每个项是否都在other中,两边都有序,归并扫描
func (s Itemset) SubsetOf(other Itemset) bool {
	if len(s.items) > len(other.items) {
		return false
	}
	i, j := 0, 0
	for i < len(s.items) && j < len(other.items) {
		switch {
		case s.items[i] == other.items[j]:
			i++
			j++
		case s.items[i] > other.items[j]:
			j++
		default:
			return false
		}
	}
	return i == len(s.items)
}

func (s Itemset) Union(other Itemset) Itemset {
	merged := make([]string, 0, len(s.items)+len(other.items))
	merged = append(merged, s.items...)
	merged = append(merged, other.items...)
	return NewItemset(merged...)
}

// Without 去掉一个项,生成新项集
func (s Itemset) Without(item string) Itemset {
	rest := make([]string, 0, len(s.items))
	for _, it := range s.items {
		if it != item {
			rest = append(rest, it)
		}
	}
	return NewItemset(rest...)
}

// Subsets 返回所有去掉一个项的子集,剪枝时用
func (s Itemset) Subsets() []Itemset {
	subs := make([]Itemset, 0, len(s.items))
	for _, item := range s.items {
		subs = append(subs, s.Without(item))
	}
	return subs
}

// String 输出形如[a,b,c],项有序
func (s Itemset) String() string {
	return "[" + strings.Join(s.items, ",") + "]"
}
