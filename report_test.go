package main

import (
	"strings"
	"testing"

	"parkminer/rock-share/global/model/mine"
)

func TestBuildReport(t *testing.T) {
	task := newTestTask(t, 0.5, 0.7,
		mine.NewTransaction("A", "B"),
		mine.NewTransaction("A", "B"),
		mine.NewTransaction("A"),
		mine.NewTransaction("B"),
	)
	Apriori(task)
	task.Maximal = FindMaximalItemsets(task.Frequent)
	task.Rules = GenerateRules(task, FineTierTrivialFilter)

	report := BuildReport(task)
	lines := strings.Split(report, "\n")

	if lines[0] != "==Frequent itemsets (min_sup=50.0%)" {
		t.Fatalf("unexpected itemset header: %q", lines[0])
	}
	// A和B支持数3,AB支持数2;同支持数按标签升序
	if lines[1] != "[A], 75.0%" || lines[2] != "[B], 75.0%" || lines[3] != "[A,B], 50.0%" {
		t.Fatalf("unexpected itemset lines: %q %q %q", lines[1], lines[2], lines[3])
	}
	if lines[4] != "" || lines[5] != "==High-confidence association rules (min_conf=70.0%)" {
		t.Fatalf("unexpected rule header: %q %q", lines[4], lines[5])
	}
	// conf(A=>B)=conf(B=>A)=2/3<0.7,规则段必须为空
	if len(lines) != 7 || lines[6] != "" {
		t.Fatalf("rule section should be empty, got %q", lines[6:])
	}
}

func TestBuildReportRuleLine(t *testing.T) {
	task := newTestTask(t, 0.5, 0.5,
		mine.NewTransaction("A", "B"),
		mine.NewTransaction("A", "B"),
		mine.NewTransaction("A"),
	)
	Apriori(task)
	task.Maximal = FindMaximalItemsets(task.Frequent)
	task.Rules = GenerateRules(task, FineTierTrivialFilter)

	report := BuildReport(task)
	// B=>A置信度1.0排最前,A=>B置信度2/3
	if !strings.Contains(report, "[B] => [A] (Conf: 100.0%, Supp: 66.7%)") {
		t.Fatalf("missing B=>A rule line in report:\n%s", report)
	}
	if !strings.Contains(report, "[A] => [B] (Conf: 66.7%, Supp: 66.7%)") {
		t.Fatalf("missing A=>B rule line in report:\n%s", report)
	}
	ruleSection := report[strings.Index(report, "==High-confidence"):]
	if strings.Index(ruleSection, "[B] => [A]") > strings.Index(ruleSection, "[A] => [B]") {
		t.Fatalf("rules out of order:\n%s", ruleSection)
	}
}
