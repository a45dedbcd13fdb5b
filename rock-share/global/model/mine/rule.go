package mine

import "fmt"

// ItemsetSupport 项集和它的支持计数
type ItemsetSupport struct {
	Itemset Itemset
	Count   int
}

// FrequentItemsets 频繁项集集合,key为Itemset.Key
type FrequentItemsets map[string]ItemsetSupport

// Rule 关联规则,RHS只有单个项
type Rule struct {
	Ree    string  // 规则的展示形式 [lhs] => [rhs]
	Lhs    Itemset
	Rhs    Itemset
	XSupp  int     // lhs出现的事务数
	XySupp int     // lhs∪rhs出现的事务数
	CR     float64 // support
	FTR    float64 // confidence
}

func NewRule(lhs, rhs Itemset, xSupp, xySupp, total int) Rule {
	return Rule{
		Ree:    fmt.Sprintf("%v => %v", lhs, rhs),
		Lhs:    lhs,
		Rhs:    rhs,
		XSupp:  xSupp,
		XySupp: xySupp,
		CR:     float64(xySupp) / float64(total),
		FTR:    float64(xySupp) / float64(xSupp),
	}
}
