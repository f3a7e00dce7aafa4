package polish

import (
	"errors"
	"fmt"
	"strings"
)

const (
	maxWhyWords     = 80
	maxTechniqueCue = 3
	maxFlags        = 4
)

// ValidateCoaching rejects output that breaks the response shape. The word
// limit is looser than the prompt asks for.
func ValidateCoaching(c Coaching) error {
	var errs []error
	why := strings.TrimSpace(c.WhyThis)
	if why == "" {
		errs = append(errs, errors.New("why_this is required"))
	} else if n := len(strings.Fields(why)); n > maxWhyWords {
		errs = append(errs, fmt.Errorf("why_this has %d words, limit is %d", n, maxWhyWords))
	}
	if len(c.TechniqueFocus) > maxTechniqueCue {
		errs = append(errs, fmt.Errorf("technique_focus has %d entries, limit is %d", len(c.TechniqueFocus), maxTechniqueCue))
	}
	if len(c.Flags) > maxFlags {
		errs = append(errs, fmt.Errorf("flags has %d entries, limit is %d", len(c.Flags), maxFlags))
	}
	for i, cue := range c.TechniqueFocus {
		if strings.TrimSpace(cue) == "" {
			errs = append(errs, fmt.Errorf("technique_focus[%d] is empty", i))
		}
	}
	for i, flag := range c.Flags {
		if strings.TrimSpace(flag) == "" {
			errs = append(errs, fmt.Errorf("flags[%d] is empty", i))
		}
	}
	return errors.Join(errs...)
}
