package main

import (
	"runtime/debug"
	"sync"
	"time"

	cmap "github.com/orcaman/concurrent-map"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"parkminer/mine_config"
	"parkminer/rock-share/base/logger"
	"parkminer/rock-share/global/model/mine"
)

// Apriori 逐层挖掘频繁项集。状态全部落在task上,层与层之间由本循环串行推进
func Apriori(task *MineTask) {
	startTime := time.Now().UnixMilli()

	candidates := singletonCandidates(task)
	logger.Infof("taskId:%v, 1-候选项集数:%v", task.TaskId, len(candidates))
	counts := countSupport(task, candidates)
	frequent := filterFrequent(counts, task.Support, task.TotalTxn)
	accumulate(task, frequent, counts)

	k := 2
	for len(frequent) > 0 {
		cands := generateCandidates(task, frequent, k)
		if len(cands) == 0 {
			break
		}
		counts = countSupport(task, cands)
		frequent = filterFrequent(counts, task.Support, task.TotalTxn)
		logger.Infof("taskId:%v, 第%v层, 候选:%v, 频繁:%v", task.TaskId, k, len(cands), len(frequent))
		accumulate(task, frequent, counts)
		k++
	}
	logger.Infof("taskId:%v, 逐层挖掘结束, 层数:%v, 频繁项集总数:%v, 耗时%vms",
		task.TaskId, k-1, len(task.Frequent), time.Now().UnixMilli()-startTime)
}

// singletonCandidates 第一层候选:出现过的每个项各自成单项集,按key有序保证确定性
func singletonCandidates(task *MineTask) []mine.Itemset {
	items := maps.Keys(task.ItemRows)
	slices.Sort(items)
	candidates := make([]mine.Itemset, 0, len(items))
	for _, item := range items {
		candidates = append(candidates, mine.NewItemset(item))
	}
	return candidates
}

// countSupport 统计每个候选项集的支持数。候选不被任何事务包含时计数为0,也要出现在结果里。
// 实现用倒排位图求交,和逐个事务做子集判断计数一致
func countSupport(task *MineTask, candidates []mine.Itemset) map[string]mine.ItemsetSupport {
	cm := cmap.New()
	partition := len(candidates)/mine_config.MAXCpuNum + 1
	if partition < mine_config.MinCandidatePartition {
		partition = mine_config.MinCandidatePartition
	}

	var wg sync.WaitGroup
	for begin := 0; begin < len(candidates); begin += partition {
		end := begin + partition
		if end > len(candidates) {
			end = len(candidates)
		}
		<-TaskCh
		wg.Add(1)
		go func(chunk []mine.Itemset) {
			defer func() {
				wg.Done()
				TaskCh <- struct{}{}
				if err := recover(); err != nil {
					task.HasError = true
					s := string(debug.Stack())
					logger.Error("recover.err:%v, stack:%v", err, s)
				}
			}()
			for _, candidate := range chunk {
				cm.Set(candidate.Key(), mine.ItemsetSupport{Itemset: candidate, Count: countOne(task, candidate)})
			}
		}(candidates[begin:end])
	}
	wg.Wait()

	counts := make(map[string]mine.ItemsetSupport, cm.Count())
	for kv := range cm.IterBuffered() {
		counts[kv.Key] = kv.Val.(mine.ItemsetSupport)
	}
	return counts
}

// countOne 单个候选的支持数:项位图逐个求交
func countOne(task *MineTask, candidate mine.Itemset) int {
	items := candidate.Items()
	acc, ok := task.ItemRows[items[0]]
	if !ok {
		return 0
	}
	for _, item := range items[1:] {
		rows, ok := task.ItemRows[item]
		if !ok {
			return 0
		}
		acc = acc.And(rows)
		if acc.Empty() {
			return 0
		}
	}
	return acc.Size()
}

// filterFrequent 支持数 >= minSup*total 的候选留下。阈值比较保持原始浮点语义,不取整
func filterFrequent(counts map[string]mine.ItemsetSupport, minSup float64, total int) mine.FrequentItemsets {
	minCount := minSup * float64(total)
	frequent := make(mine.FrequentItemsets)
	for key, entry := range counts {
		if float64(entry.Count) >= minCount {
			frequent[key] = entry
		}
	}
	return frequent
}

// accumulate 频繁项集和本层全部计数并入任务的累积结果
func accumulate(task *MineTask, frequent mine.FrequentItemsets, counts map[string]mine.ItemsetSupport) {
	for key, entry := range frequent {
		task.Frequent[key] = entry
	}
	for key, entry := range counts {
		task.SupportCounts[key] = entry
	}
}

// generateCandidates apriori-gen。两两取并,只留大小恰好为k的,再做(k-1)-子集剪枝。
// 并集生成按前一个下标切片并行
func generateCandidates(task *MineTask, frequent mine.FrequentItemsets, k int) []mine.Itemset {
	freqList := make([]mine.Itemset, 0, len(frequent))
	for _, entry := range frequent {
		freqList = append(freqList, entry.Itemset)
	}
	slices.SortFunc(freqList, func(a, b mine.Itemset) bool {
		return a.Key() < b.Key()
	})

	cm := cmap.New()
	var wg sync.WaitGroup
	for i := range freqList {
		<-TaskCh
		wg.Add(1)
		go func(i int) {
			defer func() {
				wg.Done()
				TaskCh <- struct{}{}
				if err := recover(); err != nil {
					task.HasError = true
					s := string(debug.Stack())
					logger.Error("recover.err:%v, stack:%v", err, s)
				}
			}()
			for j := i + 1; j < len(freqList); j++ {
				union := freqList[i].Union(freqList[j])
				if union.Size() == k {
					cm.Set(union.Key(), union)
				}
			}
		}(i)
	}
	wg.Wait()

	// 剪枝:有任何一个(k-1)-子集不频繁的候选,支持数必然不足,直接丢掉
	candidates := make([]mine.Itemset, 0, cm.Count())
	for kv := range cm.IterBuffered() {
		candidate := kv.Val.(mine.Itemset)
		allFrequent := true
		for _, subset := range candidate.Subsets() {
			if _, ok := frequent[subset.Key()]; !ok {
				allFrequent = false
				break
			}
		}
		if allFrequent {
			candidates = append(candidates, candidate)
		}
	}
	slices.SortFunc(candidates, func(a, b mine.Itemset) bool {
		return a.Key() < b.Key()
	})
	return candidates
}
