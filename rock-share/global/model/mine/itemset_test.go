package mine

import (
	"testing"
)

func TestNewItemset(t *testing.T) {
	a := NewItemset("C", "A", "B", "A")
	if a.Size() != 3 {
		t.Fatalf("duplicates should collapse, got size %d", a.Size())
	}
	b := NewItemset("B", "C", "A")
	if a.Key() != b.Key() {
		t.Fatalf("itemsets with same items must have equal keys: %q vs %q", a.Key(), b.Key())
	}
	if a.String() != "[A,B,C]" {
		t.Fatalf("items should print sorted, got %s", a)
	}
}

func TestItemsetSubsetOf(t *testing.T) {
	abc := NewItemset("A", "B", "C")
	ab := NewItemset("A", "B")
	ad := NewItemset("A", "D")

	if !ab.SubsetOf(abc) {
		t.Fatal("AB should be subset of ABC")
	}
	if abc.SubsetOf(ab) {
		t.Fatal("ABC is not subset of AB")
	}
	if ad.SubsetOf(abc) {
		t.Fatal("AD is not subset of ABC")
	}
	if !abc.SubsetOf(abc) {
		t.Fatal("an itemset is subset of itself")
	}
}

func TestItemsetUnionWithout(t *testing.T) {
	ab := NewItemset("A", "B")
	bc := NewItemset("B", "C")

	union := ab.Union(bc)
	if union.Key() != NewItemset("A", "B", "C").Key() {
		t.Fatalf("unexpected union: %v", union)
	}

	rest := union.Without("B")
	if rest.Key() != NewItemset("A", "C").Key() {
		t.Fatalf("unexpected Without result: %v", rest)
	}
	// 原项集不能被改动
	if union.Size() != 3 || !union.Has("B") {
		t.Fatalf("Without must not mutate the receiver: %v", union)
	}
}

func TestItemsetSubsets(t *testing.T) {
	abc := NewItemset("A", "B", "C")
	subs := abc.Subsets()
	if len(subs) != 3 {
		t.Fatalf("want 3 subsets of size 2, got %d", len(subs))
	}
	for _, sub := range subs {
		if sub.Size() != 2 || !sub.SubsetOf(abc) {
			t.Fatalf("bad subset %v", sub)
		}
	}
}

func TestTransactionContainsItemset(t *testing.T) {
	txn := NewTransaction("A", "B", "C")
	if !txn.ContainsItemset(NewItemset("A", "C")) {
		t.Fatal("txn should contain AC")
	}
	if txn.ContainsItemset(NewItemset("A", "D")) {
		t.Fatal("txn should not contain AD")
	}
	if !txn.ContainsItemset(NewItemset()) {
		t.Fatal("empty itemset is contained in everything")
	}
}
