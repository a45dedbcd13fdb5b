package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"parkminer/rock-share/global/model/mine"
	"parkminer/utils"
)

// BuildReport 生成两段式文本报告:频繁项集段 + 高置信度规则段
func BuildReport(task *MineTask) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("==Frequent itemsets (min_sup=%s)\n", utils.FormatThresholdPercent(task.Support)))
	entries := make([]mine.ItemsetSupport, 0, len(task.Frequent))
	for _, entry := range task.Frequent {
		entries = append(entries, entry)
	}
	utils.SortItemsetSupports(entries)
	for _, entry := range entries {
		ratio := float64(entry.Count) / float64(task.TotalTxn)
		sb.WriteString(fmt.Sprintf("%v, %s\n", entry.Itemset, utils.FormatPercent(ratio)))
	}

	sb.WriteString(fmt.Sprintf("\n==High-confidence association rules (min_conf=%s)\n", utils.FormatThresholdPercent(task.Confidence)))
	for _, rule := range task.Rules {
		sb.WriteString(fmt.Sprintf("%v => %v (Conf: %s, Supp: %s)\n",
			rule.Lhs, rule.Rhs, utils.FormatPercent(rule.FTR), utils.FormatPercent(rule.CR)))
	}
	return sb.String()
}

// WriteReport 报告落盘
func WriteReport(task *MineTask, path string) error {
	return utils.CreateTextFile(path, BuildReport(task))
}

// printSummary 挖掘结果摘要表,打到stderr,不混进报告
func printSummary(task *MineTask, resultPath string, spentMs int64) {
	sizeCount := make(map[int]int)
	maxSize := 0
	for _, entry := range task.Frequent {
		sizeCount[entry.Itemset.Size()]++
		if entry.Itemset.Size() > maxSize {
			maxSize = entry.Itemset.Size()
		}
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stderr)
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Metric", Align: text.AlignCenter, AlignHeader: text.AlignCenter, WidthMax: 30, WidthMin: 30},
		{Name: "Value", AlignHeader: text.AlignCenter, WidthMax: 50, WidthMin: 20},
	})
	t.SetTitle("MINE RESULT SUMMARY")
	t.AppendHeader(table.Row{"Metric", "Value"})
	t.AppendRow(table.Row{"transactions", task.TotalTxn})
	t.AppendRow(table.Row{"min_sup", task.Support})
	t.AppendRow(table.Row{"min_conf", task.Confidence})
	for k := 1; k <= maxSize; k++ {
		t.AppendRow(table.Row{fmt.Sprintf("frequent %d-itemsets", k), sizeCount[k]})
	}
	t.AppendRow(table.Row{"maximal itemsets", len(task.Maximal)})
	t.AppendRow(table.Row{"rules", len(task.Rules)})
	t.AppendRow(table.Row{"result path", resultPath})
	t.AppendRow(table.Row{"spent(ms)", spentMs})
	t.Render()
}
