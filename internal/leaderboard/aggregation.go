package leaderboard

import "sort"

// Aggregation groups metric sets by canonical model id, then canonical
// strategy id.
type Aggregation map[string]map[string]*MetricSet

// Set stores the metrics for a (model, strategy) pair, replacing any earlier
// value for the same pair.
func (a Aggregation) Set(model, strategy string, metrics *MetricSet) {
	byStrategy, ok := a[model]
	if !ok {
		byStrategy = make(map[string]*MetricSet)
		a[model] = byStrategy
	}
	byStrategy[strategy] = metrics
}

// Get returns the metrics for a (model, strategy) pair.
func (a Aggregation) Get(model, strategy string) (*MetricSet, bool) {
	m, ok := a[model][strategy]
	return m, ok
}

// Models returns the model ids in lexicographic order.
func (a Aggregation) Models() []string {
	return sortedKeys(a)
}

// Strategies returns the strategy ids recorded for model in lexicographic order.
func (a Aggregation) Strategies(model string) []string {
	return sortedKeys(a[model])
}

// NameSet is a set of raw names.
type NameSet map[string]struct{}

func (s NameSet) Add(name string) {
	s[name] = struct{}{}
}

func (s NameSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Sorted returns the names in lexicographic order.
func (s NameSet) Sorted() []string {
	return sortedKeys(s)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
