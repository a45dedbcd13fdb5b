package mine

// Transaction 一条事务,摄入时构建一次,之后只读
type Transaction map[string]struct{}

func NewTransaction(items ...string) Transaction {
	t := make(Transaction, len(items))
	for _, item := range items {
		t[item] = struct{}{}
	}
	return t
}

func (t Transaction) Has(item string) bool {
	_, ok := t[item]
	return ok
}

// ContainsItemset 事务是否是项集的超集
func (t Transaction) ContainsItemset(s Itemset) bool {
	for _, item := range s.items {
		if !t.Has(item) {
			return false
		}
	}
	return true
}
