package cli

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/domain"
	"github.com/spf13/pflag"
)

var (
	_ pflag.Value = (*sessionTypeValue)(nil)
	_ pflag.Value = (*effortValue)(nil)
	_ pflag.Value = (*weekdaysValue)(nil)
)

// sessionTypeValue accepts pool or open water, tolerating "open-water" and "ow".
type sessionTypeValue domain.SessionType

func (v *sessionTypeValue) String() string { return string(*v) }

func (v *sessionTypeValue) Set(s string) error {
	t, err := parseSessionType(s)
	if err != nil {
		return err
	}
	*v = sessionTypeValue(t)
	return nil
}

func (v *sessionTypeValue) Type() string { return "pool|open_water" }

func parseSessionType(s string) (domain.SessionType, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	if norm == "ow" || norm == "openwater" {
		norm = string(domain.SessionOpenWater)
	}
	t := domain.SessionType(norm)
	if !domain.ValidSessionTypes[t] {
		return "", fmt.Errorf("invalid session type %q (use pool or open_water)", s)
	}
	return t, nil
}

type effortValue domain.EffortLevel

func (v *effortValue) String() string { return string(*v) }

func (v *effortValue) Set(s string) error {
	e := domain.EffortLevel(strings.ToLower(strings.TrimSpace(s)))
	if !domain.ValidEffortLevels[e] {
		return fmt.Errorf("invalid effort %q (use easy, moderate or hard)", s)
	}
	*v = effortValue(e)
	return nil
}

func (v *effortValue) Type() string { return "easy|moderate|hard" }

// weekdaysValue parses a comma list such as "mon,wed,sat".
type weekdaysValue []time.Weekday

func (v *weekdaysValue) String() string {
	names := make([]string, len(*v))
	for i, d := range *v {
		names[i] = strings.ToLower(d.String()[:3])
	}
	return strings.Join(names, ",")
}

func (v *weekdaysValue) Set(s string) error {
	var days []time.Weekday
	for _, part := range strings.Split(s, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "" {
			continue
		}
		d, ok := parseWeekday(part)
		if !ok {
			return fmt.Errorf("invalid weekday %q", part)
		}
		if !slices.Contains(days, d) {
			days = append(days, d)
		}
	}
	slices.Sort(days)
	*v = days
	return nil
}

func (v *weekdaysValue) Type() string { return "days" }

func parseWeekday(s string) (time.Weekday, bool) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		name := strings.ToLower(d.String())
		if s == name || (len(s) >= 3 && strings.HasPrefix(name, s)) {
			return d, true
		}
	}
	return 0, false
}
