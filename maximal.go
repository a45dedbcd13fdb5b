package main

import (
	"golang.org/x/exp/slices"

	"parkminer/rock-share/global/model/mine"
)

// FindMaximalItemsets 提取极大频繁项集:按大小降序处理,
// 不是任何已接收极大项集的子集才保留。同大小之间子集判断不会命中,顺序无关紧要
func FindMaximalItemsets(frequent mine.FrequentItemsets) []mine.Itemset {
	all := make([]mine.Itemset, 0, len(frequent))
	for _, entry := range frequent {
		all = append(all, entry.Itemset)
	}
	slices.SortFunc(all, func(a, b mine.Itemset) bool {
		if a.Size() != b.Size() {
			return a.Size() > b.Size()
		}
		return a.Key() < b.Key()
	})

	maximal := make([]mine.Itemset, 0)
	for _, itemset := range all {
		absorbed := false
		for _, other := range maximal {
			if itemset.SubsetOf(other) {
				absorbed = true
				break
			}
		}
		if !absorbed {
			maximal = append(maximal, itemset)
		}
	}
	return maximal
}
