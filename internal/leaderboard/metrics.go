package leaderboard

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// thresholds is the fixed, ordered set of accuracy cutoffs. Both the expected
// input columns and the "thresholds" list of every record follow this order.
var thresholds = []int{80, 75, 70}

var thresholdColumns = map[int]string{
	80: "epw80",
	75: "epw75",
	70: "epw70",
}

// Thresholds returns the threshold set in declared order.
func Thresholds() []int {
	out := make([]int, len(thresholds))
	copy(out, thresholds)
	return out
}

// Column returns the input column that holds the metric for a threshold.
func Column(threshold int) string {
	return thresholdColumns[threshold]
}

// Round rounds v to two decimal places using correct decimal rounding of the
// binary value, so 2.675 (stored as 2.67499...) rounds down.
func Round(v float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	if err != nil {
		return v
	}
	return r
}

// Metric is a single rounded metric value. It serializes in the shortest
// round-tripping form, always with a fractional part (80 is written as 80.0),
// switching to exponent notation below 1e-4 and from 1e16 up.
type Metric float64

func (m Metric) MarshalJSON() ([]byte, error) {
	f := float64(m)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("metric %v is not representable in JSON", f)
	}
	if f != 0 {
		if a := math.Abs(f); a < 1e-4 || a >= 1e16 {
			return []byte(strconv.FormatFloat(f, 'e', -1, 64)), nil
		}
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return []byte(s), nil
}

// MetricSet maps threshold labels ("80", "75", ...) to metric values for one
// (model, strategy) pair. Keys keep insertion order when serialized.
type MetricSet struct {
	values *orderedmap.OrderedMap[string, Metric]
}

// NewMetricSet returns an empty MetricSet.
func NewMetricSet() *MetricSet {
	return &MetricSet{values: orderedmap.New[string, Metric]()}
}

// Set stores the value for a threshold, rounded to two decimal places.
func (s *MetricSet) Set(threshold int, v float64) {
	s.init()
	s.values.Set(strconv.Itoa(threshold), Metric(Round(v)))
}

// Get returns the value stored for a threshold.
func (s *MetricSet) Get(threshold int) (float64, bool) {
	if s == nil || s.values == nil {
		return 0, false
	}
	v, ok := s.values.Get(strconv.Itoa(threshold))
	return float64(v), ok
}

// Len returns the number of thresholds in the set.
func (s *MetricSet) Len() int {
	if s == nil || s.values == nil {
		return 0
	}
	return s.values.Len()
}

// Labels returns the threshold labels in insertion order.
func (s *MetricSet) Labels() []string {
	if s == nil || s.values == nil {
		return nil
	}
	labels := make([]string, 0, s.values.Len())
	for p := s.values.Oldest(); p != nil; p = p.Next() {
		labels = append(labels, p.Key)
	}
	return labels
}

// Equal reports whether both sets hold the same labels, in the same order,
// with the same values.
func (s *MetricSet) Equal(other *MetricSet) bool {
	if s.Len() != other.Len() {
		return false
	}
	if s.Len() == 0 {
		return true
	}
	a, b := s.values.Oldest(), other.values.Oldest()
	for ; a != nil && b != nil; a, b = a.Next(), b.Next() {
		if a.Key != b.Key || a.Value != b.Value {
			return false
		}
	}
	return a == nil && b == nil
}

func (s *MetricSet) MarshalJSON() ([]byte, error) {
	s.init()
	return s.values.MarshalJSON()
}

func (s *MetricSet) UnmarshalJSON(data []byte) error {
	s.values = orderedmap.New[string, Metric]()
	if err := s.values.UnmarshalJSON(data); err != nil {
		return fmt.Errorf("decoding metric set: %w", err)
	}
	return nil
}

func (s *MetricSet) String() string {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Sprintf("<invalid metric set: %v>", err)
	}
	return string(data)
}

func (s *MetricSet) init() {
	if s.values == nil {
		s.values = orderedmap.New[string, Metric]()
	}
}
