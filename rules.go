package main

import (
	"strings"
	"time"

	"parkminer/mine_config"
	"parkminer/rock-share/base/logger"
	"parkminer/rock-share/global/enum"
	"parkminer/rock-share/global/model/mine"
	"parkminer/utils"
)

// TrivialFilter 判定一条候选规则是否是同义反复,返回true则该规则被丢弃。
// 复合项命名规则将来可能变,所以做成可替换的谓词而不是写死
type TrivialFilter func(lhs mine.Itemset, rhs string) bool

var fineTiers = map[string]bool{
	mine_config.LowFine:    true,
	mine_config.MediumFine: true,
	mine_config.HighFine:   true,
}

// FineTierTrivialFilter 默认过滤:RHS是罚款档位,而LHS里已经有
// "<该档位>_Violation_"开头的层级项时,规则只是把层级项里的信息复述一遍
func FineTierTrivialFilter(lhs mine.Itemset, rhs string) bool {
	if !fineTiers[rhs] {
		return false
	}
	prefix := rhs + mine_config.ItemConn + mine_config.ViolationPrefix
	for _, item := range lhs.Items() {
		if strings.HasPrefix(item, prefix) {
			return true
		}
	}
	return false
}

// GenerateRules 从极大频繁项集生成单项RHS的关联规则并按(置信度,支持度)降序排序。
// RHS只允许普通分类项,违章复合项和层级项都太具体,不作规则头
func GenerateRules(task *MineTask, filter TrivialFilter) []mine.Rule {
	startTime := time.Now().UnixMilli()
	rules := make([]mine.Rule, 0)

	for _, itemset := range task.Maximal {
		if itemset.Size() < 2 {
			continue
		}
		entry, ok := task.SupportCounts[itemset.Key()]
		if !ok {
			continue
		}
		support := entry.Count

		for _, rhsItem := range itemset.Items() {
			if enum.KindOf(rhsItem) != enum.AtomicItem {
				continue
			}
			lhs := itemset.Without(rhsItem)
			if lhs.Size() == 0 {
				continue
			}
			if filter != nil && filter(lhs, rhsItem) {
				continue
			}
			lhsEntry, ok := task.SupportCounts[lhs.Key()]
			if !ok || lhsEntry.Count == 0 {
				// 分母缺失,无法算置信度
				continue
			}
			confidence := float64(support) / float64(lhsEntry.Count)
			if confidence >= task.Confidence {
				rules = append(rules, mine.NewRule(lhs, mine.NewItemset(rhsItem), lhsEntry.Count, support, task.TotalTxn))
			}
		}
	}

	utils.SortRules(rules)
	logger.Infof("taskId:%v, 规则生成完成, 规则数:%v, 耗时%vms",
		task.TaskId, len(rules), time.Now().UnixMilli()-startTime)
	return rules
}
