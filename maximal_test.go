package main

import (
	"testing"

	"parkminer/rock-share/global/model/mine"
)

func TestFindMaximalItemsets(t *testing.T) {
	frequent := make(mine.FrequentItemsets)
	for _, items := range [][]string{
		{"A"}, {"B"}, {"C"}, {"D"},
		{"A", "B"}, {"A", "C"},
		{"A", "B", "C"},
	} {
		s := mine.NewItemset(items...)
		frequent[s.Key()] = mine.ItemsetSupport{Itemset: s, Count: 1}
	}

	maximal := FindMaximalItemsets(frequent)

	// ABC吸收了A,B,C,AB,AC; D是独立的单项集
	if len(maximal) != 2 {
		t.Fatalf("want 2 maximal itemsets, got %d: %v", len(maximal), maximal)
	}

	// 极大集合内部互不为子集
	for i, a := range maximal {
		for j, b := range maximal {
			if i != j && a.SubsetOf(b) {
				t.Fatalf("maximal itemset %v is subset of %v", a, b)
			}
		}
	}

	// 每个频繁项集都被某个极大项集覆盖
	for _, entry := range frequent {
		covered := false
		for _, m := range maximal {
			if entry.Itemset.SubsetOf(m) {
				covered = true
				break
			}
		}
		if !covered {
			t.Fatalf("frequent itemset %v not covered by any maximal itemset", entry.Itemset)
		}
	}
}

func TestFindMaximalItemsetsEmpty(t *testing.T) {
	maximal := FindMaximalItemsets(mine.FrequentItemsets{})
	if len(maximal) != 0 {
		t.Fatalf("empty frequent collection should give no maximal itemsets, got %d", len(maximal))
	}
}
