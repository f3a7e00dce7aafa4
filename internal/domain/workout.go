package domain

import "slices"

// Item is one line of a workout block. The structured fields are the source
// of truth; Text is derived from them by the planner's formatter.
type Item struct {
	Instruction  string  `json:"instruction"`
	DistanceM    int     `json:"distance_m,omitempty"`
	Reps         int     `json:"reps,omitempty"`
	RepDistanceM int     `json:"rep_distance_m,omitempty"`
	RestSec      int     `json:"rest_sec,omitempty"`
	TimeBased    bool    `json:"time_based,omitempty"`
	EffortMin    float64 `json:"effort_min,omitempty"`
	RestNote     string  `json:"rest_note,omitempty"`
	Cue          string  `json:"cue,omitempty"`
	Text         string  `json:"text"`
}

// IsRepeat reports whether the item is a reps x distance set.
func (it Item) IsRepeat() bool {
	return it.Reps > 0 && it.RepDistanceM > 0
}

// TotalDistanceM is the distance the item covers.
func (it Item) TotalDistanceM() int {
	if it.IsRepeat() {
		return it.Reps * it.RepDistanceM
	}
	return it.DistanceM
}

type Block struct {
	Label string `json:"label"`
	Items []Item `json:"items"`
}

// SumDistanceM adds up every item across blocks.
func SumDistanceM(blocks []Block) int {
	total := 0
	for _, b := range blocks {
		for _, it := range b.Items {
			total += it.TotalDistanceM()
		}
	}
	return total
}

// CloneBlocks deep-copies a structure so callers can rewrite items freely.
func CloneBlocks(blocks []Block) []Block {
	out := make([]Block, len(blocks))
	for i, b := range blocks {
		out[i] = Block{Label: b.Label, Items: slices.Clone(b.Items)}
		if out[i].Items == nil {
			out[i].Items = []Item{}
		}
	}
	return out
}

// WorkoutTemplate is immutable reference data from the catalog.
type WorkoutTemplate struct {
	ID              string      `json:"id"`
	Source          string      `json:"source"`
	Name            string      `json:"name"`
	Phases          []Phase     `json:"phases"`
	Intensity       Intensity   `json:"intensity"`
	Tags            []string    `json:"tags"`
	Environment     SessionType `json:"environment"`
	BaseDistanceM   int         `json:"base_distance_m"`
	BaseDurationMin int         `json:"base_duration_min"`
	Structure       []Block     `json:"structure"`
}

func (t WorkoutTemplate) HasTag(tag string) bool {
	return slices.Contains(t.Tags, tag)
}

func (t WorkoutTemplate) InPhase(p Phase) bool {
	return slices.Contains(t.Phases, p)
}

func (t WorkoutTemplate) IsRest() bool {
	return t.Intensity == IntensityRest
}
