package chartdata

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/etnz/chartdata/date"
)

// Day counts used to resolve durations. They are deliberately approximate: a
// duration only picks a chart window and a decimation factor.
const (
	DaysPerMonth = 31
	DaysPerYear  = 365
)

// Chart point budget defaults.
const (
	// DefaultWindowDays is the window used when the duration is Max.
	DefaultWindowDays = 4 * DaysPerYear
	// DecimationThresholdDays is the window length above which charts are thinned.
	DecimationThresholdDays = 300
	// CoarseDecimation is the decimation factor of windows above the threshold.
	CoarseDecimation = 3
)

// Settings holds the chart point budget.
type Settings struct {
	DefaultWindowDays       int
	DecimationThresholdDays int
	CoarseDecimation        int
}

// DefaultSettings returns the settings built from the package defaults.
func DefaultSettings() Settings {
	return Settings{
		DefaultWindowDays:       DefaultWindowDays,
		DecimationThresholdDays: DecimationThresholdDays,
		CoarseDecimation:        CoarseDecimation,
	}
}

// Duration is a user selected time window, like "3 months".
//
// It is one of Days, Months, Years, Composite or Max.
type Duration interface {
	fmt.Stringer
	isDuration()
}

// Days is a duration in days.
type Days int

// Months is a duration in months, of DaysPerMonth days each.
type Months int

// Years is a duration in years, of DaysPerYear days each.
type Years int

// Composite adds up days, months and years, as in {"months": 1, "days": 15}.
type Composite struct{ Days, Months, Years int }

// Max is the unbounded duration.
type Max struct{}

func (Days) isDuration()      {}
func (Months) isDuration()    {}
func (Years) isDuration()     {}
func (Composite) isDuration() {}
func (Max) isDuration()       {}

func (d Days) String() string   { return strconv.Itoa(int(d)) + "d" }
func (m Months) String() string { return strconv.Itoa(int(m)) + "m" }
func (y Years) String() string  { return strconv.Itoa(int(y)) + "y" }
func (Max) String() string      { return "max" }
func (c Composite) String() string {
	var parts []string
	if c.Years != 0 {
		parts = append(parts, Years(c.Years).String())
	}
	if c.Months != 0 {
		parts = append(parts, Months(c.Months).String())
	}
	if c.Days != 0 || len(parts) == 0 {
		parts = append(parts, Days(c.Days).String())
	}
	return strings.Join(parts, "")
}

// Resolve returns the number of days in d. It returns false for Max or nil, the
// caller then applies its own default.
func Resolve(d Duration) (days int, ok bool) {
	switch d := d.(type) {
	case nil, Max:
		return 0, false
	case Days:
		return int(d), true
	case Months:
		return int(d) * DaysPerMonth, true
	case Years:
		return int(d) * DaysPerYear, true
	case Composite:
		return d.Days + d.Months*DaysPerMonth + d.Years*DaysPerYear, true
	default:
		panic(fmt.Sprintf("unknown duration type %T", d))
	}
}

var durationRE = regexp.MustCompile(`^(?:(\d+)y)?(?:(\d+)m)?(?:(\d+)d)?$`)

// ParseDuration parses durations like "10d", "3m", "1y", "1y6m" or "max".
func ParseDuration(str string) (Duration, error) {
	str = strings.ToLower(strings.TrimSpace(str))
	if str == "max" || str == "all" {
		return Max{}, nil
	}
	match := durationRE.FindStringSubmatch(str)
	if str == "" || match == nil {
		return nil, fmt.Errorf("invalid duration %q want a number followed by d, m or y, or max", str)
	}
	var c Composite
	for i, field := range []*int{&c.Years, &c.Months, &c.Days} {
		if match[i+1] == "" {
			continue
		}
		n, err := strconv.Atoi(match[i+1])
		if err != nil {
			// This should not happen given the regex
			return nil, fmt.Errorf("invalid number in duration %q: %w", str, err)
		}
		*field = n
	}
	return c.simplify(), nil
}

// simplify returns the single unit duration equivalent to c if there is one.
func (c Composite) simplify() Duration {
	switch {
	case c.Months == 0 && c.Years == 0:
		return Days(c.Days)
	case c.Days == 0 && c.Years == 0:
		return Months(c.Months)
	case c.Days == 0 && c.Months == 0:
		return Years(c.Years)
	default:
		return c
	}
}

// DecodeDuration decodes a JSON duration: null, a string accepted by
// ParseDuration, or an object with days, months and years fields.
func DecodeDuration(data []byte) (Duration, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return Max{}, nil
	}
	if data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return nil, err
		}
		return ParseDuration(str)
	}
	var obj struct {
		Days   *int `json:"days"`
		Months *int `json:"months"`
		Years  *int `json:"years"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, fmt.Errorf("invalid duration %s: %w", data, err)
	}
	if obj.Days == nil && obj.Months == nil && obj.Years == nil {
		return Max{}, nil
	}
	var c Composite
	if obj.Days != nil {
		c.Days = *obj.Days
	}
	if obj.Months != nil {
		c.Months = *obj.Months
	}
	if obj.Years != nil {
		c.Years = *obj.Years
	}
	return c.simplify(), nil
}

// WindowDays returns the number of days in d, or the default of s for Max.
func (s Settings) WindowDays(d Duration) int {
	if days, ok := Resolve(d); ok {
		return days
	}
	return s.DefaultWindowDays
}

// Window returns the range of dates a chart of duration d ending on end covers.
func (s Settings) Window(d Duration, end date.Date) date.Range {
	return date.NewRange(end.Add(-s.WindowDays(d)), end)
}

// DecimationEvery returns the decimation factor of a window of that many days.
func (s Settings) DecimationEvery(days int) int {
	if days > s.DecimationThresholdDays && s.CoarseDecimation > 1 {
		return s.CoarseDecimation
	}
	return 1
}
