package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"NovaQuant/internal/model"
)

func money(cents int64) string {
	return "$" + humanize.CommafWithDigits(float64(cents)/100, 2)
}

func capital(v float64) string {
	return "$" + humanize.CommafWithDigits(v, 0)
}

// FormatAdvice renders the advisory summary as a plain-text report.
func FormatAdvice(data model.GrowthToolkitData, advice *model.PlanAdvice) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Plan advice | %s\n\n", time.Now().Format("2006-01-02")))
	b.WriteString(fmt.Sprintf("Profile: %s | horizon: %d years | savings rate: %.0f%%\n\n",
		data.RiskProfile, data.HorizonYears, data.SavingsRatePct))

	sim := advice.Simulation
	b.WriteString("Monte-Carlo terminal capital:\n")
	b.WriteString(fmt.Sprintf("  P10 %s | P50 %s | P90 %s\n",
		capital(sim.NominalP10), capital(sim.NominalP50), capital(sim.NominalP90)))
	b.WriteString(fmt.Sprintf("  P50 real (inflation-adjusted): %s\n", capital(sim.RealP50)))
	b.WriteString(fmt.Sprintf("  Probability of reaching %s: %.1f%%\n\n",
		capital(data.Simulation.TargetCapital), sim.ProbabilityToReachTarget*100))

	b.WriteString("Rebalance actions:\n")
	for _, a := range advice.Actions {
		b.WriteString(fmt.Sprintf("  %-12s %-4s (drift %+.1f%%, priority %s)\n",
			a.Asset, a.Action, a.Drift, a.Priority))
	}

	b.WriteString("\nGuardrails:\n")
	for _, s := range advice.Signals {
		b.WriteString(fmt.Sprintf("  [%s] %s: %s\n",
			strings.ToUpper(string(s.Level)), s.Title, s.Description))
	}

	return b.String()
}

// FormatOverview renders the paper account state for display.
func FormatOverview(ov model.TradingOverview) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Paper account | %s\n\n", time.Now().Format("2006-01-02 15:04")))
	b.WriteString(fmt.Sprintf("Cash: %s\n", money(ov.Account.CashCents)))
	b.WriteString(fmt.Sprintf("Positions value: %s\n", money(ov.Account.PositionsValueCents)))
	b.WriteString(fmt.Sprintf("Equity: %s\n", money(ov.Account.EquityCents)))
	b.WriteString(fmt.Sprintf("Realized P&L: %s\n", money(ov.Account.RealizedPnlCents)))

	if len(ov.Positions) > 0 {
		b.WriteString("\nPositions:\n")
		for _, p := range ov.Positions {
			b.WriteString(fmt.Sprintf("  %-8s %s @ %s | market %s | unrealized %s\n",
				p.Symbol, p.Quantity.String(), money(p.AvgPriceCents),
				money(p.MarketValueCents), money(p.UnrealizedPnlCents)))
		}
	}

	b.WriteString(fmt.Sprintf("\nOrders on record: %d\n", len(ov.RecentOrders)))
	return b.String()
}

// FormatOrder renders one order result as a single line.
func FormatOrder(o model.Order) string {
	if o.Status == model.StatusRejected {
		return fmt.Sprintf("rejected %s %s %s: %s", o.Side, o.Quantity.String(), o.Symbol, o.Reason)
	}
	return fmt.Sprintf("filled %s %s %s @ %s", o.Side, o.Quantity.String(), o.Symbol, money(o.FillPriceCents))
}
