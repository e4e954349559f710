package reconcile

import (
	"fmt"
	"math"
	"strconv"
)

// Fixed assumptions for the repayment example: a 30000 notional loan
// repaid over one year with monthly compounding.
const (
	loanAmount         = 30000
	compoundingPeriods = 12
)

// Feed attribute names carrying the cost inputs.
const (
	nominalRateField    = "kredittkort_nominell_rente"
	annualFeeField      = "kredittkort_kort_arsgebyr"
	installmentFeeField = "kredittkort_termingebyr"
)

// CostResult carries the two derived cost fields.
type CostResult struct {
	// EffectiveRate is the fee-adjusted effective annual rate as a
	// percentage with two decimals, e.g. "24.58%".
	EffectiveRate string
	// Example is the fixed-template repayment example sentence.
	Example string
}

// CalculateCost derives the effective rate and repayment example from
// the entry's nominal rate and fees. Missing inputs default to zero;
// a present but non-numeric input fails the whole calculation, in
// which case the entry simply gets no cost fields.
func CalculateCost(fields map[string]string) (*CostResult, error) {
	nominalPct, err := parseField(fields, nominalRateField)
	if err != nil {
		return nil, err
	}
	annualFee, err := parseField(fields, annualFeeField)
	if err != nil {
		return nil, err
	}
	installmentFee, err := parseField(fields, installmentFeeField)
	if err != nil {
		return nil, err
	}

	nominal := nominalPct / 100
	effectiveRate := math.Pow(1+nominal/compoundingPeriods, compoundingPeriods) - 1

	totalFees := annualFee + installmentFee*compoundingPeriods
	totalInterest := loanAmount * effectiveRate
	totalCost := totalFees + totalInterest

	adjustedRate := totalCost / loanAmount
	totalAmount := loanAmount + totalCost

	example := fmt.Sprintf(
		"Nom.rente %.2f%%, eff.rente %.2f%%, lånebeløp %d, nedbetalt o/ 12 måneder, kost: %.0f, tot: %.0f.",
		nominalPct, adjustedRate*100, loanAmount, totalCost, totalAmount)

	return &CostResult{
		EffectiveRate: fmt.Sprintf("%.2f%%", adjustedRate*100),
		Example:       example,
	}, nil
}

func parseField(fields map[string]string, name string) (float64, error) {
	value, ok := fields[name]
	if !ok {
		return 0, nil
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("field %s: invalid number %q", name, value)
	}

	return f, nil
}
