package catalog

import (
	"fmt"

	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/domain"
)

var validIntensities = map[domain.Intensity]bool{
	domain.IntensityEasy:     true,
	domain.IntensityModerate: true,
	domain.IntensityHard:     true,
	domain.IntensityRest:     true,
}

var validPhases = map[domain.Phase]bool{
	domain.PhaseBuild:   true,
	domain.PhaseSharpen: true,
	domain.PhaseTaper:   true,
}

// Validate checks templates for structural errors.
// Returns a slice of errors (empty if valid).
func Validate(templates []domain.WorkoutTemplate) []error {
	var errs []error
	seen := map[string]bool{}

	for i, t := range templates {
		if t.ID == "" {
			errs = append(errs, fmt.Errorf("template[%d]: id is required", i))
		}
		if seen[t.ID] {
			errs = append(errs, fmt.Errorf("template[%d]: duplicate id %q", i, t.ID))
		}
		seen[t.ID] = true
		if t.Name == "" {
			errs = append(errs, fmt.Errorf("template %q: name is required", t.ID))
		}
		if !validIntensities[t.Intensity] {
			errs = append(errs, fmt.Errorf("template %q: invalid intensity %q", t.ID, t.Intensity))
		}
		if len(t.Phases) == 0 {
			errs = append(errs, fmt.Errorf("template %q: at least one phase is required", t.ID))
		}
		for _, p := range t.Phases {
			if !validPhases[p] {
				errs = append(errs, fmt.Errorf("template %q: invalid phase %q", t.ID, p))
			}
		}

		if t.IsRest() {
			if t.BaseDistanceM != 0 || domain.SumDistanceM(t.Structure) != 0 {
				errs = append(errs, fmt.Errorf("template %q: rest templates carry no distance", t.ID))
			}
			continue
		}

		if t.BaseDistanceM <= 0 {
			errs = append(errs, fmt.Errorf("template %q: base distance must be positive", t.ID))
		}
		if sum := domain.SumDistanceM(t.Structure); sum != t.BaseDistanceM {
			errs = append(errs, fmt.Errorf("template %q: structure sums to %dm, base distance is %dm", t.ID, sum, t.BaseDistanceM))
		}
		for bi, b := range t.Structure {
			for ii, it := range b.Items {
				if it.Instruction == "" {
					errs = append(errs, fmt.Errorf("template %q: block[%d] item[%d]: instruction is required", t.ID, bi, ii))
				}
				if (it.Reps > 0) != (it.RepDistanceM > 0) {
					errs = append(errs, fmt.Errorf("template %q: block[%d] item[%d]: reps and rep distance go together", t.ID, bi, ii))
				}
				if it.IsRepeat() && it.DistanceM != 0 {
					errs = append(errs, fmt.Errorf("template %q: block[%d] item[%d]: repeat items carry no flat distance", t.ID, bi, ii))
				}
			}
		}
	}

	return errs
}
