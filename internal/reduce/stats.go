package reduce

import (
	"fmt"
	"io"
	"sort"
)

// ruleKey identifies a single catalogue rule for per-rule statistics: the
// owning method name plus the rule's index within its catalogue
// (unbounded rules, border-delimited rules, or sub-expression variants
// all share this scheme).
type ruleKey struct {
	method string
	index  int
	label  string
}

// Stats accumulates per-method and per-rule success/failure counters plus
// the cache-hit count and original length needed for the final
// percent-reduction report.
type Stats struct {
	methodSuccess map[string]int
	methodFailure map[string]int
	ruleSuccess   map[ruleKey]int
	ruleFailure   map[ruleKey]int
	origLength    int
	cacheHits     int
}

// NewStats returns an empty [Stats] snapshot, recording origLength for the
// final percent-reduction calculation.
func NewStats(origLength int) *Stats {
	return &Stats{
		methodSuccess: map[string]int{},
		methodFailure: map[string]int{},
		ruleSuccess:   map[ruleKey]int{},
		ruleFailure:   map[ruleKey]int{},
		origLength:    origLength,
	}
}

// RecordMethod records a trial outcome for method.
func (s *Stats) RecordMethod(method string, accepted bool) {
	if accepted {
		s.methodSuccess[method]++
	} else {
		s.methodFailure[method]++
	}
}

// RecordRule records a trial outcome for a specific catalogue rule within
// method, identified by its position in the catalogue and a short label
// (e.g. the replacement pattern) used for the final report.
func (s *Stats) RecordRule(method string, index int, label string, accepted bool) {
	key := ruleKey{method: method, index: index, label: label}
	if accepted {
		s.ruleSuccess[key]++
	} else {
		s.ruleFailure[key]++
	}
}

// SetCacheHits records the run's final trial-cache hit count, for the
// report and JSON snapshot.
func (s *Stats) SetCacheHits(n int) {
	s.cacheHits = n
}

// MethodSuccesses returns the number of accepted trials for method.
func (s *Stats) MethodSuccesses(method string) int {
	return s.methodSuccess[method]
}

// MethodFailures returns the number of rejected trials for method.
func (s *Stats) MethodFailures(method string) int {
	return s.methodFailure[method]
}

// PercentReduction returns the percentage by which currentLength is
// smaller than the original length, 0 if there has been no reduction yet.
func (s *Stats) PercentReduction(currentLength int) float64 {
	if s.origLength == 0 {
		return 0
	}

	reduced := s.origLength - currentLength
	if reduced <= 0 {
		return 0
	}

	return 100 * float64(reduced) / float64(s.origLength)
}

// MethodSnapshot is one method's totals, for [Stats.Snapshot].
type MethodSnapshot struct {
	Method  string `json:"method"`
	Success int    `json:"success"`
	Failure int    `json:"failure"`
}

// Snapshot is a JSON-serializable view of the run's statistics, used by
// the --stats-json flag.
type Snapshot struct {
	Methods          []MethodSnapshot `json:"methods"`
	OrigLength       int               `json:"orig_length"`
	FinalLength      int               `json:"final_length"`
	PercentReduction float64           `json:"percent_reduction"`
	CacheHits        int               `json:"cache_hits"`
}

// Snapshot returns a JSON-serializable view of s as of finalLength.
func (s *Stats) Snapshot(finalLength int) Snapshot {
	methods := make([]string, 0, len(s.methodSuccess)+len(s.methodFailure))
	seen := map[string]bool{}

	for m := range s.methodSuccess {
		if !seen[m] {
			methods = append(methods, m)
			seen[m] = true
		}
	}

	for m := range s.methodFailure {
		if !seen[m] {
			methods = append(methods, m)
			seen[m] = true
		}
	}

	sort.Strings(methods)

	snaps := make([]MethodSnapshot, 0, len(methods))
	for _, m := range methods {
		snaps = append(snaps, MethodSnapshot{
			Method:  m,
			Success: s.methodSuccess[m],
			Failure: s.methodFailure[m],
		})
	}

	return Snapshot{
		Methods:          snaps,
		OrigLength:       s.origLength,
		FinalLength:      finalLength,
		PercentReduction: s.PercentReduction(finalLength),
		CacheHits:        s.cacheHits,
	}
}

// Report writes the final, human-readable report: per-method totals, then
// per-rule totals with zero-success-and-zero-failure rules suppressed,
// then the overall percent reduction.
func (s *Stats) Report(w io.Writer, finalLength int) {
	methods := make([]string, 0, len(s.methodSuccess)+len(s.methodFailure))
	seen := map[string]bool{}

	for m := range s.methodSuccess {
		if !seen[m] {
			methods = append(methods, m)
			seen[m] = true
		}
	}

	for m := range s.methodFailure {
		if !seen[m] {
			methods = append(methods, m)
			seen[m] = true
		}
	}

	sort.Strings(methods)

	fmt.Fprintln(w, "method statistics:")

	for _, m := range methods {
		fmt.Fprintf(w, "  %-16s success=%d failure=%d\n", m, s.methodSuccess[m], s.methodFailure[m])
	}

	type reportedRule struct {
		key     ruleKey
		success int
		failure int
	}

	rules := map[ruleKey]*reportedRule{}

	for k, v := range s.ruleSuccess {
		rules[k] = &reportedRule{key: k, success: v}
	}

	for k, v := range s.ruleFailure {
		if r, ok := rules[k]; ok {
			r.failure = v
		} else {
			rules[k] = &reportedRule{key: k, failure: v}
		}
	}

	sortedKeys := make([]ruleKey, 0, len(rules))
	for k := range rules {
		sortedKeys = append(sortedKeys, k)
	}

	sort.Slice(sortedKeys, func(i, j int) bool {
		if sortedKeys[i].method != sortedKeys[j].method {
			return sortedKeys[i].method < sortedKeys[j].method
		}

		return sortedKeys[i].index < sortedKeys[j].index
	})

	printed := false

	for _, k := range sortedKeys {
		r := rules[k]
		if r.success == 0 && r.failure == 0 {
			continue // a rule with no recorded trials is omitted entirely
		}

		if !printed {
			fmt.Fprintln(w, "rule statistics:")

			printed = true
		}

		fmt.Fprintf(w, "  %-16s [%d] %-24s success=%d failure=%d\n", k.method, k.index, k.label, r.success, r.failure)
	}

	fmt.Fprintf(w, "final: %d -> %d bytes (%.1f%% reduction), %d cache hits\n", s.origLength, finalLength, s.PercentReduction(finalLength), s.cacheHits)
}
