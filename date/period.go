package date

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/meenmo/filib/utils"
)

// Period is a relative time span such as "3M", "1Y", "2W" or "10D".
type Period struct {
	Months int
	Days   int
}

// ParsePeriod parses a tenor string of the form <n><unit> with unit D, W, M or Y.
func ParsePeriod(s string) (Period, error) {
	str := strings.ToUpper(strings.TrimSpace(s))
	if len(str) < 2 {
		return Period{}, fmt.Errorf("ParsePeriod: malformed tenor %q", s)
	}
	n, err := strconv.Atoi(str[:len(str)-1])
	if err != nil {
		return Period{}, fmt.Errorf("ParsePeriod: malformed tenor %q", s)
	}
	switch str[len(str)-1] {
	case 'D':
		return Period{Days: n}, nil
	case 'W':
		return Period{Days: 7 * n}, nil
	case 'M':
		return Period{Months: n}, nil
	case 'Y':
		return Period{Months: 12 * n}, nil
	default:
		return Period{}, fmt.Errorf("ParsePeriod: unknown unit in tenor %q", s)
	}
}

// MustPeriod parses a tenor and panics on malformed input. For use with literals.
func MustPeriod(s string) Period {
	p, err := ParsePeriod(s)
	if err != nil {
		panic(err)
	}
	return p
}

// IsZero reports whether the period spans no time.
func (p Period) IsZero() bool {
	return p.Months == 0 && p.Days == 0
}

// AddTo advances t by the period, using EDATE month semantics.
func (p Period) AddTo(t time.Time) time.Time {
	if p.Months != 0 {
		t = utils.AddMonth(t, p.Months)
	}
	if p.Days != 0 {
		t = t.AddDate(0, 0, p.Days)
	}
	return t
}

// Negated returns the period with both components sign-flipped.
func (p Period) Negated() Period {
	return Period{Months: -p.Months, Days: -p.Days}
}

func (p Period) String() string {
	if p.Months != 0 && p.Days == 0 {
		if p.Months%12 == 0 {
			return fmt.Sprintf("%dY", p.Months/12)
		}
		return fmt.Sprintf("%dM", p.Months)
	}
	if p.Months == 0 {
		return fmt.Sprintf("%dD", p.Days)
	}
	return fmt.Sprintf("%dM%dD", p.Months, p.Days)
}
