// Package idmap translates the raw model and unmasking-strategy names found
// in benchmark tables into the short canonical identifiers used for the
// leaderboard records.
package idmap

import "sort"

var models = map[string]string{
	"LLaDA-1.0-8B":       "llada10",
	"LLaDA-1.5-8B":       "llada15",
	"dream-7B":           "dream",
	"DiffuCoder-7B":      "diffucoder",
	"dParallel-Dream-7B": "dparallel-dream",
	"dParallel-LLaDA-8B": "dparallel-llada",
	"LLaDA-2.0-Mini":     "llada20-mini",
	"LLaDA-2.0-Mini-CAP": "llada20-mini-cap",
	"LLaDA-2.1-Mini":     "llada21-mini",
	"LLaDA-MoE-7B":       "llada-moe",
	"LLaDA-MoE-7B-TD":    "llada-moe-td",
	"SDAR-1.7B":          "sdar-1.7b",
	"SDAR-4B":            "sdar-4b",
	"SDAR-8B":            "sdar-8b",
	"SDAR-Trado-4B":      "sdar-trado-4b",
	"SDAR-Trado-8B":      "sdar-trado-8b",
}

var strategies = map[string]string{
	"random":                           "random",
	"left_to_right":                    "l2r",
	"low_confidence_threshold":         "confidence-threshold",
	"low_confidence":                   "confidence-topk",
	"low_confidence_factor":            "confidence-factor",
	"entropy":                          "entropy-topk",
	"apd":                              "apd",
	"slow_fast":                        "slowfast",
	"dus":                              "dus",
	"wino":                             "wino",
	"topk_margin":                      "topk-margin",
	"klass":                            "klass",
	"low_confidence_eb":                "confidence-eb",
	"low_confidence_pc_sampler":        "confidence-pc-sampler",
	"random_pc_sampler":                "random-pc-sampler",
	"low_confidence_threshold_quality": "confidence-threshold-quality",
	"low_confidence_threshold_speed":   "confidence-threshold-speed",
}

// Pair is one raw name and the canonical identifier it maps to.
type Pair struct {
	Raw       string `json:"raw"`
	Canonical string `json:"canonical"`
}

// Model returns the canonical identifier for a raw model name. The boolean
// is false when the model is not tracked; callers skip such rows.
func Model(raw string) (string, bool) {
	id, ok := models[raw]
	return id, ok
}

// Strategy returns the canonical identifier for a raw unmasking strategy name.
func Strategy(raw string) (string, bool) {
	id, ok := strategies[raw]
	return id, ok
}

// Models lists the model table sorted by raw name.
func Models() []Pair {
	return pairs(models)
}

// Strategies lists the strategy table sorted by raw name.
func Strategies() []Pair {
	return pairs(strategies)
}

func pairs(m map[string]string) []Pair {
	out := make([]Pair, 0, len(m))
	for raw, id := range m {
		out = append(out, Pair{Raw: raw, Canonical: id})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Raw < out[j].Raw })
	return out
}
