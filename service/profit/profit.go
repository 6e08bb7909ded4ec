// Package profit implements the per-unit economics calculator behind the
// admin "profit intelligence" screen.
package profit

// Input is one unit-economics scenario. Discount is a fixed amount off the
// selling price; TaxRate is a percentage of net revenue.
type Input struct {
	CostPrice     float64 `json:"costPrice"`
	SellingPrice  float64 `json:"sellingPrice"`
	ShippingCost  float64 `json:"shippingCost"`
	MarketingCost float64 `json:"marketingCost"`
	Discount      float64 `json:"discount"`
	TaxRate       float64 `json:"taxRate"`
}

type Stats struct {
	NetRevenue        float64 `json:"netRevenue"`
	TaxAmount         float64 `json:"taxAmount"`
	TotalVariableCost float64 `json:"totalVariableCost"`
	UnitProfit        float64 `json:"unitProfit"`
	Margin            float64 `json:"margin"`
	ROI               float64 `json:"roi"`
}

// Calculate derives per-unit profit stats. Total over the inputs: a
// loss-making scenario yields negative profit, never an error.
func Calculate(in Input) Stats {
	netRevenue := in.SellingPrice - in.Discount
	taxAmount := netRevenue * (in.TaxRate / 100)
	totalVariableCost := in.CostPrice + in.ShippingCost + in.MarketingCost + taxAmount
	unitProfit := netRevenue - totalVariableCost

	var margin, roi float64
	if netRevenue > 0 {
		margin = unitProfit / netRevenue * 100
	}
	if totalVariableCost > 0 {
		roi = unitProfit / totalVariableCost * 100
	}
	return Stats{
		NetRevenue:        netRevenue,
		TaxAmount:         taxAmount,
		TotalVariableCost: totalVariableCost,
		UnitProfit:        unitProfit,
		Margin:            margin,
		ROI:               roi,
	}
}

// Sensitivity evaluates unit profit across price/cost multipliers, mirroring
// the admin matrix view (e.g. 0.9/1.0/1.1 on both axes). Rows are price
// multipliers, columns cost multipliers.
func Sensitivity(in Input, priceSteps, costSteps []float64) [][]float64 {
	out := make([][]float64, len(priceSteps))
	for i, ps := range priceSteps {
		row := make([]float64, len(costSteps))
		for j, cs := range costSteps {
			scenario := in
			scenario.SellingPrice = in.SellingPrice * ps
			scenario.CostPrice = in.CostPrice * cs
			row[j] = Calculate(scenario).UnitProfit
		}
		out[i] = row
	}
	return out
}
