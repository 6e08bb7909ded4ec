package profit

import (
	"math"
	"testing"
)

func almost(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestCalculate(t *testing.T) {
	got := Calculate(Input{
		CostPrice:     50,
		SellingPrice:  120,
		ShippingCost:  10,
		MarketingCost: 5,
		Discount:      20,
		TaxRate:       10,
	})

	if !almost(got.NetRevenue, 100) {
		t.Errorf("NetRevenue = %v, want 100", got.NetRevenue)
	}
	if !almost(got.TaxAmount, 10) {
		t.Errorf("TaxAmount = %v, want 10", got.TaxAmount)
	}
	if !almost(got.TotalVariableCost, 75) {
		t.Errorf("TotalVariableCost = %v, want 75", got.TotalVariableCost)
	}
	if !almost(got.UnitProfit, 25) {
		t.Errorf("UnitProfit = %v, want 25", got.UnitProfit)
	}
	if !almost(got.Margin, 25) {
		t.Errorf("Margin = %v, want 25", got.Margin)
	}
	if !almost(got.ROI, 100.0/3) {
		t.Errorf("ROI = %v, want 33.33...", got.ROI)
	}
}

func TestCalculate_LossIsNegativeNotError(t *testing.T) {
	got := Calculate(Input{CostPrice: 100, SellingPrice: 50})
	if got.UnitProfit >= 0 {
		t.Errorf("UnitProfit = %v, want negative", got.UnitProfit)
	}
	if got.Margin >= 0 {
		t.Errorf("Margin = %v, want negative", got.Margin)
	}
}

func TestCalculate_ZeroGuards(t *testing.T) {
	got := Calculate(Input{})
	if got.Margin != 0 || got.ROI != 0 {
		t.Errorf("margin/roi = %v/%v, want 0/0 on zero revenue and cost", got.Margin, got.ROI)
	}
}

func TestSensitivity(t *testing.T) {
	in := Input{CostPrice: 50, SellingPrice: 100}
	steps := []float64{0.9, 1.0, 1.1}
	matrix := Sensitivity(in, steps, steps)

	if len(matrix) != 3 || len(matrix[0]) != 3 {
		t.Fatalf("matrix is %dx%d, want 3x3", len(matrix), len(matrix[0]))
	}
	// Center cell is the base scenario.
	if !almost(matrix[1][1], Calculate(in).UnitProfit) {
		t.Errorf("center = %v, want base profit %v", matrix[1][1], Calculate(in).UnitProfit)
	}
	// Higher price, lower cost is the best corner; the opposite the worst.
	if matrix[2][0] <= matrix[0][2] {
		t.Errorf("best corner %v should beat worst corner %v", matrix[2][0], matrix[0][2])
	}
}
