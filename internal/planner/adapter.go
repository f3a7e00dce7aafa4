package planner

import (
	"fmt"
	"math"
	"regexp"
	"slices"
	"strings"

	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/domain"
)

const (
	defaultPacePer100Min = 2.0
	sightingMinM         = 400
	splitMinM            = 800
	splitSegmentM        = 400
	splitRestSec         = 15
	shortFloatNote       = "20s easy float"

	SightingCue = "sight every 6-8 strokes"
	SafetyNote  = "Never swim open water alone: bring a buddy or swim where there is supervision, and use a tow float."
)

// OpenWaterAddons are appended to every open-water session.
var OpenWaterAddons = []string{
	"Sighting cadence: lift your eyes every 6-8 strokes and pick a fixed landmark",
	"Buoy turns: practise tight turns around a buoy or marker at least twice",
}

var sightingPhrase = regexp.MustCompile(`(?i)[,;]?\s*(?:with\s+|and\s+)?\bsight(?:ing)?\b(?:\s+every\s+\d+(?:-\d+)?\s+strokes)?`)

// ToOpenWater turns rest-interval repeats into time-based efforts and adds
// sighting cues, addons and the safety note.
func ToOpenWater(s domain.PlanSession, m domain.Metrics) domain.PlanSession {
	pacePer100 := defaultPacePer100Min
	if m.AvgPaceMinPerKm != nil && *m.AvgPaceMinPerKm > 0 {
		pacePer100 = *m.AvgPaceMinPerKm / 10
	}

	out := s
	out.Type = domain.SessionOpenWater
	out.Structure = domain.CloneBlocks(s.Structure)
	for bi := range out.Structure {
		for ii, it := range out.Structure[bi].Items {
			switch {
			case it.IsRepeat() && it.RestSec > 0 && !it.TimeBased:
				it.TimeBased = true
				it.EffortMin = round1(float64(it.RepDistanceM) / 100 * pacePer100)
				it.RestNote = floatNote(it.RestSec)
			case !it.IsRepeat() && it.DistanceM >= sightingMinM && it.Cue == "":
				it.Cue = SightingCue
			}
			out.Structure[bi].Items[ii] = it
		}
	}
	renderText(out.Structure)

	out.OpenWaterAddons = slices.Clone(OpenWaterAddons)
	note := SafetyNote
	out.SafetyNote = &note
	return out
}

// ToPool breaks long continuous swims into segments and strips sighting
// wording. Addons and the safety note are left for the caller to clear.
func ToPool(s domain.PlanSession) domain.PlanSession {
	out := s
	out.Type = domain.SessionPool
	out.Structure = domain.CloneBlocks(s.Structure)
	for bi := range out.Structure {
		for ii, it := range out.Structure[bi].Items {
			if !it.IsRepeat() && it.DistanceM >= splitMinM {
				segments := int(math.Ceil(float64(it.DistanceM) / splitSegmentM))
				it.Reps = segments
				it.RepDistanceM = roundTo(float64(it.DistanceM)/float64(segments), plainRoundM)
				it.DistanceM = 0
				it.RestSec = splitRestSec
			}
			it.Instruction = stripSighting(it.Instruction)
			if strings.Contains(strings.ToLower(it.Cue), "sight") {
				it.Cue = ""
			}
			out.Structure[bi].Items[ii] = it
		}
	}
	renderText(out.Structure)
	return out
}

func floatNote(restSec int) string {
	if restSec < 30 {
		return shortFloatNote
	}
	return fmt.Sprintf("%ds easy float", roundTo(float64(restSec), 10))
}

func stripSighting(s string) string {
	cleaned := sightingPhrase.ReplaceAllString(s, "")
	return strings.TrimRight(strings.TrimSpace(cleaned), ",;")
}
