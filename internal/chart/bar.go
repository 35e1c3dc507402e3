package chart

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/javohir/hamyon/internal/domain"
)

const (
	// barWidthRatio sizes a bar relative to its group slot, capped at
	// maxBarWidth so wide tracks don't produce fat bars.
	barWidthRatio = 0.28
	maxBarWidth   = 28

	// barPairGap separates the income and expense bars within a group.
	barPairGap = 6
)

// BarGroup is the drawing instruction for one month: two bars and a label
// anchor. X offsets are relative to the track's left edge; heights grow
// upward from the track's baseline.
type BarGroup struct {
	Label         string  `json:"label"`
	IncomeX       float64 `json:"income_x"`
	IncomeHeight  float64 `json:"income_height"`
	ExpenseX      float64 `json:"expense_x"`
	ExpenseHeight float64 `json:"expense_height"`
	LabelX        float64 `json:"label_x"`
}

// BarLayout is the full set of bar chart drawing instructions.
// Empty is the sentinel for no data or all-zero months.
type BarLayout struct {
	Empty    bool            `json:"empty"`
	Width    float64         `json:"width"`
	Height   float64         `json:"height"`
	BarWidth float64         `json:"bar_width"`
	Max      decimal.Decimal `json:"max"`
	Groups   []BarGroup      `json:"groups,omitempty"`
}

// Bars lays out one group per month on a track of the given size. The track
// is split into equal slots; every bar height is scaled against the largest
// single value in the input (income or expense, floored at 1 so an all-zero
// month divides cleanly). A zero value yields a zero-height bar.
func Bars(data []domain.MonthlyBar, width, height float64) BarLayout {
	if len(data) == 0 {
		return BarLayout{Empty: true}
	}

	max := decimal.NewFromInt(1)
	allZero := true
	for _, d := range data {
		if !d.Income.IsZero() || !d.Expense.IsZero() {
			allZero = false
		}
		if d.Income.GreaterThan(max) {
			max = d.Income
		}
		if d.Expense.GreaterThan(max) {
			max = d.Expense
		}
	}

	if allZero {
		return BarLayout{Empty: true}
	}

	maxF, _ := max.Float64()
	groupWidth := width / float64(len(data))
	barWidth := math.Min(groupWidth*barWidthRatio, maxBarWidth)

	layout := BarLayout{
		Width:    width,
		Height:   height,
		BarWidth: barWidth,
		Max:      max,
		Groups:   make([]BarGroup, 0, len(data)),
	}

	for i, d := range data {
		x := float64(i)*groupWidth + (groupWidth-2*barWidth-barPairGap)/2
		incomeF, _ := d.Income.Float64()
		expenseF, _ := d.Expense.Float64()

		layout.Groups = append(layout.Groups, BarGroup{
			Label:         d.Label,
			IncomeX:       x,
			IncomeHeight:  incomeF / maxF * height,
			ExpenseX:      x + barWidth + barPairGap,
			ExpenseHeight: expenseF / maxF * height,
			LabelX:        float64(i)*groupWidth + groupWidth/2,
		})
	}

	return layout
}
