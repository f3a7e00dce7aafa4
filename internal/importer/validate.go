package importer

import (
	"fmt"
	"strings"

	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/domain"
)

// ValidateImportSchema checks the file before conversion and returns every
// problem found, each prefixed with its path in the document.
func ValidateImportSchema(schema *ImportSchema) []error {
	var errs []error

	if schema.Profile != nil {
		p := *schema.Profile
		if p.Tone == "" {
			p.Tone = domain.ToneNeutral
		}
		if err := p.Validate(); err != nil {
			for _, line := range strings.Split(err.Error(), "\n") {
				errs = append(errs, fmt.Errorf("profile: %s", line))
			}
		}
	}

	if schema.Profile == nil && len(schema.Sessions) == 0 {
		errs = append(errs, fmt.Errorf("import file has no profile and no sessions"))
	}

	seen := make(map[string]int, len(schema.Sessions))
	for i, s := range schema.Sessions {
		path := fmt.Sprintf("sessions[%d]", i)
		errs = append(errs, validateSession(path, s)...)

		key := fmt.Sprintf("%s|%s|%d|%s", s.Date, s.Type, s.DistanceM, s.Notes)
		if j, dup := seen[key]; dup {
			errs = append(errs, fmt.Errorf("%s: duplicates sessions[%d]", path, j))
			continue
		}
		seen[key] = i
	}

	return errs
}

func validateSession(path string, s SessionImport) []error {
	var errs []error

	if s.Date == "" {
		errs = append(errs, fmt.Errorf("%s.date is required", path))
	} else if _, err := domain.ParseDate(s.Date); err != nil {
		errs = append(errs, fmt.Errorf("%s.date: invalid date format %q (expected YYYY-MM-DD)", path, s.Date))
	}
	if !domain.ValidSessionTypes[domain.SessionType(s.Type)] {
		errs = append(errs, fmt.Errorf("%s.type: invalid value %q", path, s.Type))
	}
	if s.DistanceM <= 0 {
		errs = append(errs, fmt.Errorf("%s.distance_m must be positive", path))
	}
	if s.TimeMin != nil && *s.TimeMin < 0 {
		errs = append(errs, fmt.Errorf("%s.time_min must not be negative", path))
	}
	if s.Effort != "" && !domain.ValidEffortLevels[domain.EffortLevel(s.Effort)] {
		errs = append(errs, fmt.Errorf("%s.effort: invalid value %q", path, s.Effort))
	}
	if s.RPE != nil && (*s.RPE < 1 || *s.RPE > 10) {
		errs = append(errs, fmt.Errorf("%s.rpe %d out of range 1-10", path, *s.RPE))
	}
	if s.Effort == "" && s.RPE == nil {
		errs = append(errs, fmt.Errorf("%s: either effort or rpe is required", path))
	}

	return errs
}
