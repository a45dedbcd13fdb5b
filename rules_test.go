package main

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"parkminer/rock-share/global/model/mine"
)

func TestGenerateRules(t *testing.T) {
	Convey("TestGenerateRules", t, func() {
		violation := "Violation_21_NO PARKING-STREET CLEANING"
		hier := "Medium Fine_" + violation

		// 3条事务里2条是布鲁克林早高峰的21号违章
		txn := mine.NewTransaction("Brooklyn", "Morning", "Medium Fine", violation, hier)
		task := newTestTask(t, 0.5, 0.6,
			txn,
			txn,
			mine.NewTransaction("Queens", "Evening", "Low Fine"),
		)
		Apriori(task)
		task.Maximal = FindMaximalItemsets(task.Frequent)
		rules := GenerateRules(task, FineTierTrivialFilter)

		Convey("no rule has a composite or hierarchical RHS", func() {
			for _, rule := range rules {
				for _, item := range rule.Rhs.Items() {
					So(item, ShouldNotEqual, violation)
					So(item, ShouldNotEqual, hier)
				}
			}
		})

		Convey("fine tier RHS is trivial when LHS carries the matching hierarchical item", func() {
			for _, rule := range rules {
				if rule.Rhs.Has("Medium Fine") {
					So(rule.Lhs.Has(hier), ShouldBeFalse)
				}
			}
		})

		Convey("confidence of every emitted rule is within [min_conf, 1]", func() {
			So(len(rules), ShouldBeGreaterThan, 0)
			for _, rule := range rules {
				So(rule.FTR, ShouldBeGreaterThanOrEqualTo, task.Confidence)
				So(rule.FTR, ShouldBeLessThanOrEqualTo, 1.0)
				So(rule.CR, ShouldBeGreaterThan, 0)
				So(rule.CR, ShouldBeLessThanOrEqualTo, 1.0)
			}
		})

		Convey("rules are ranked by confidence desc then support desc", func() {
			for i := 1; i < len(rules); i++ {
				if rules[i-1].FTR == rules[i].FTR {
					So(rules[i-1].CR, ShouldBeGreaterThanOrEqualTo, rules[i].CR)
				} else {
					So(rules[i-1].FTR, ShouldBeGreaterThan, rules[i].FTR)
				}
			}
		})
	})
}

func TestGenerateRulesSingletonsOnly(t *testing.T) {
	// 只有单项事务时不可能有size>=2的极大项集,规则为空
	task := newTestTask(t, 0.5, 0.5,
		mine.NewTransaction("A"),
		mine.NewTransaction("A"),
	)
	Apriori(task)
	task.Maximal = FindMaximalItemsets(task.Frequent)
	rules := GenerateRules(task, FineTierTrivialFilter)
	if len(rules) != 0 {
		t.Fatalf("singleton-only transactions should give no rules, got %d", len(rules))
	}
	if len(task.Maximal) != 1 {
		t.Fatalf("want the single 1-itemset as maximal, got %d", len(task.Maximal))
	}
}

func TestFineTierTrivialFilter(t *testing.T) {
	Convey("TestFineTierTrivialFilter", t, func() {
		hier := "Low Fine_Violation_40_FIRE HYDRANT"

		Convey("matching tier and hierarchical item is trivial", func() {
			So(FineTierTrivialFilter(mine.NewItemset("Bronx", hier), "Low Fine"), ShouldBeTrue)
		})
		Convey("different tier is not trivial", func() {
			So(FineTierTrivialFilter(mine.NewItemset("Bronx", hier), "High Fine"), ShouldBeFalse)
		})
		Convey("non fine-tier RHS is never trivial", func() {
			So(FineTierTrivialFilter(mine.NewItemset(hier), "Bronx"), ShouldBeFalse)
		})
		Convey("tier RHS without hierarchical LHS item is not trivial", func() {
			So(FineTierTrivialFilter(mine.NewItemset("Bronx", "Morning"), "Low Fine"), ShouldBeFalse)
		})
	})
}
