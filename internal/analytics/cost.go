package analytics

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/tbourn/platform-dashboard/internal/domain"
)

// Monthly unit charges applied on top of a platform's base price.
const (
	PerUserMonthly     = 10.0
	PerGBMonthly       = 0.5
	PerFeatureMonthly  = 5.0
	AnnualSavingsRatio = 0.10
)

// ErrInvalidCostInput is returned when a CostInput fails validation.
var ErrInvalidCostInput = errors.New("invalid cost input")

// Period selects which cost column a report highlights.
type Period string

const (
	PeriodMonthly  Period = "Monthly"
	PeriodAnnually Period = "Annually"
)

// ParsePeriod accepts "monthly"/"annually" in any case, plus the short forms
// "month", "annual" and "yearly". Blank input means PeriodMonthly.
func ParsePeriod(s string) (Period, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "monthly", "month":
		return PeriodMonthly, nil
	case "annually", "annual", "yearly":
		return PeriodAnnually, nil
	}
	return "", fmt.Errorf("%w: unknown period %q", ErrInvalidCostInput, s)
}

// CostInput describes the workload being priced.
type CostInput struct {
	Users     int
	StorageGB int
	Features  int
	Period    Period
}

// Validate enforces users ≥ 1, storage ≥ 1 GB, features ≥ 0 and a known period.
func (in CostInput) Validate() error {
	switch {
	case in.Users < 1:
		return fmt.Errorf("%w: users must be at least 1", ErrInvalidCostInput)
	case in.StorageGB < 1:
		return fmt.Errorf("%w: storage_gb must be at least 1", ErrInvalidCostInput)
	case in.Features < 0:
		return fmt.Errorf("%w: features must not be negative", ErrInvalidCostInput)
	case in.Period != PeriodMonthly && in.Period != PeriodAnnually:
		return fmt.Errorf("%w: unknown period %q", ErrInvalidCostInput, in.Period)
	}
	return nil
}

// CostLine is the estimate for one platform.
type CostLine struct {
	Platform      string  `json:"platform"`
	BasePrice     float64 `json:"base_price"`
	Monthly       float64 `json:"monthly"`
	Annual        float64 `json:"annual"`
	AnnualSavings float64 `json:"annual_savings"`
	Selected      float64 `json:"selected"`
}

// CostReport lists estimates in catalog order. Excluded names platforms whose
// price descriptor carries no dollar amount.
type CostReport struct {
	Period   Period     `json:"period"`
	Lines    []CostLine `json:"lines"`
	Excluded []string   `json:"excluded"`
}

// MonthlyCost = base + users*10 + storageGB*0.5 + features*5.
func MonthlyCost(base float64, users, storageGB, features int) float64 {
	return base +
		float64(users)*PerUserMonthly +
		float64(storageGB)*PerGBMonthly +
		float64(features)*PerFeatureMonthly
}

// EstimateCosts prices every platform with a numeric base price.
func EstimateCosts(platforms []domain.Platform, in CostInput) (CostReport, error) {
	if in.Period == "" {
		in.Period = PeriodMonthly
	}
	if err := in.Validate(); err != nil {
		return CostReport{}, err
	}

	rep := CostReport{Period: in.Period, Lines: []CostLine{}, Excluded: []string{}}
	for _, p := range platforms {
		base, ok := ParseBasePrice(p.PriceRange)
		if !ok {
			rep.Excluded = append(rep.Excluded, p.Name)
			continue
		}
		monthly := MonthlyCost(base, in.Users, in.StorageGB, in.Features)
		line := CostLine{
			Platform:      p.Name,
			BasePrice:     base,
			Monthly:       monthly,
			Annual:        monthly * 12,
			AnnualSavings: monthly * 12 * AnnualSavingsRatio,
		}
		line.Selected = line.Monthly
		if in.Period == PeriodAnnually {
			line.Selected = line.Annual
		}
		rep.Lines = append(rep.Lines, line)
	}
	return rep, nil
}

var dollarRE = regexp.MustCompile(`\$\s*([0-9][0-9,]*(?:\.[0-9]+)?)`)

// ParseBasePrice extracts the first dollar amount of a price descriptor,
// i.e. the lower bound of "$25-299/mo". Descriptors without one ("Custom",
// "Contact sales") report false.
func ParseBasePrice(descriptor string) (float64, bool) {
	m := dollarRE.FindStringSubmatch(descriptor)
	if m == nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

var usd = message.NewPrinter(language.English)

// FormatUSD renders v as "$1,080.00".
func FormatUSD(v float64) string {
	if v < 0 {
		return "-" + usd.Sprintf("$%.2f", -v)
	}
	return usd.Sprintf("$%.2f", v)
}

// CostDisplay is a CostLine with every amount rendered by FormatUSD.
type CostDisplay struct {
	Platform      string `json:"platform"`
	BasePrice     string `json:"base_price"`
	Monthly       string `json:"monthly"`
	Annual        string `json:"annual"`
	AnnualSavings string `json:"annual_savings"`
	Selected      string `json:"selected"`
}

// Display formats l for presentation.
func (l CostLine) Display() CostDisplay {
	return CostDisplay{
		Platform:      l.Platform,
		BasePrice:     FormatUSD(l.BasePrice),
		Monthly:       FormatUSD(l.Monthly),
		Annual:        FormatUSD(l.Annual),
		AnnualSavings: FormatUSD(l.AnnualSavings),
		Selected:      FormatUSD(l.Selected),
	}
}
