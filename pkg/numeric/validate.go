package numeric

import (
	"github.com/shopspring/decimal"
)

// ValidationStatus is the outcome of one row's total check.
type ValidationStatus string

const (
	// StatusSkipped marks rows with too few numeric cells to identify a total.
	StatusSkipped ValidationStatus = "skipped"
	// StatusPass marks rows whose last numeric cell equals the sum of the rest.
	StatusPass ValidationStatus = "pass"
	// StatusMismatch marks rows whose presumed total disagrees with the sum.
	StatusMismatch ValidationStatus = "mismatch"
)

// RowValidation reports the total check for one row. Expected, Computed
// and Diff are exact decimal strings; mismatches are data for review, not
// errors.
type RowValidation struct {
	Row      int              `json:"row"`
	Status   ValidationStatus `json:"status"`
	Reason   string           `json:"reason,omitempty"`
	Expected string           `json:"expected,omitempty"`
	Computed string           `json:"computed,omitempty"`
	Diff     string           `json:"diff,omitempty"`
}

// ToDecimal converts a normalized number string to an exact decimal.
func ToDecimal(s string) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

// ValidateRowTotals checks each row for the "parts sum to total" shape:
// the last numeric cell is presumed to be a total of the preceding numeric
// cells. Rows with fewer than three numeric cells are ambiguous and
// skipped. All arithmetic is exact decimal; normalized strings are never
// parsed as floats.
func ValidateRowTotals(rows [][]string, format Format) []RowValidation {
	validations := make([]RowValidation, 0, len(rows))

	for rowIdx, row := range rows {
		var nums []decimal.Decimal
		for _, cell := range row {
			normalized, ok := Normalize(cell, format)
			if !ok {
				continue
			}
			if d, ok := ToDecimal(normalized); ok {
				nums = append(nums, d)
			}
		}

		if len(nums) < 3 {
			validations = append(validations, RowValidation{
				Row:    rowIdx,
				Status: StatusSkipped,
				Reason: "fewer than 3 numeric cells",
			})
			continue
		}

		total := nums[len(nums)-1]
		sum := decimal.Zero
		for _, d := range nums[:len(nums)-1] {
			sum = sum.Add(d)
		}

		if sum.Equal(total) {
			validations = append(validations, RowValidation{
				Row:      rowIdx,
				Status:   StatusPass,
				Expected: total.String(),
				Computed: sum.String(),
			})
		} else {
			validations = append(validations, RowValidation{
				Row:      rowIdx,
				Status:   StatusMismatch,
				Expected: total.String(),
				Computed: sum.String(),
				Diff:     sum.Sub(total).Abs().String(),
			})
		}
	}

	return validations
}
