// Command swapflows prints the per-leg cashflow schedule of an RFR swap.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/meenmo/filib/date"
	"github.com/meenmo/filib/market"
	"github.com/meenmo/filib/product"
	"github.com/meenmo/filib/utils"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("swapflows", flag.ContinueOnError)
	fs.SetOutput(stderr)

	effectiveStr := fs.String("effective", "", "effective date (YYYY-MM-DD, required)")
	termStr := fs.String("term", "", "termination date or tenor, e.g. 2030-01-15 or 5Y (required)")
	index := fs.String("index", "SOFR", "overnight index name")
	fixedRate := fs.Float64("rate", 0, "fixed rate as a decimal, e.g. 0.042")
	notional := fs.Float64("notional", 1_000_000, "notional amount")
	direction := fs.String("direction", "PAY", "PAY or RECEIVE the fixed leg")
	periodStr := fs.String("period", "3M", "accrual period tenor")
	basisStr := fs.String("basis", "ACT/360", "accrual basis")
	spread := fs.Float64("spread", 0, "floating leg spread")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *effectiveStr == "" || *termStr == "" {
		fmt.Fprintln(stderr, "swapflows: -effective and -term are required")
		fs.Usage()
		return 2
	}

	effective, err := utils.ParseDate(*effectiveStr)
	if err != nil {
		fmt.Fprintf(stderr, "swapflows: bad -effective: %v\n", err)
		return 2
	}
	termination, err := date.ParseTermOrDate(*termStr)
	if err != nil {
		fmt.Fprintf(stderr, "swapflows: bad -term: %v\n", err)
		return 2
	}
	period, err := date.ParsePeriod(*periodStr)
	if err != nil {
		fmt.Fprintf(stderr, "swapflows: bad -period: %v\n", err)
		return 2
	}
	basis, err := market.ParseAccrualBasis(*basisStr)
	if err != nil {
		fmt.Fprintf(stderr, "swapflows: bad -basis: %v\n", err)
		return 2
	}
	payOrRec := product.Pay
	if *direction == "RECEIVE" || *direction == "REC" {
		payOrRec = product.Receive
	}

	swap, err := product.NewRFRSwap(market.DefaultIndexRegistry(), product.RFRSwapParams{
		EffectiveDate: effective,
		Termination:   termination,
		Index:         *index,
		FixedRate:     *fixedRate,
		PayOrReceive:  payOrRec,
		Notional:      *notional,
		AccrualPeriod: period,
		AccrualBasis:  basis,
		Spread:        *spread,
	})
	if err != nil {
		fmt.Fprintf(stderr, "swapflows: %v\n", err)
		return 1
	}

	fmt.Fprintf(stdout, "RFR swap %s %s, %s -> %s, fixed %.4f%%, notional %.2f %s\n",
		swap.PayOrReceive(), swap.IndexName(),
		utils.FormatDate(swap.EffectiveDate()), utils.FormatDate(swap.TerminationDate()),
		*fixedRate*100, *notional, swap.Currency())

	printLeg(stdout, "Fixed leg", swap.FixedLeg())
	printLeg(stdout, "Floating leg", swap.FloatingLeg())
	return 0
}

func printLeg(w io.Writer, name string, leg *product.InterestRateStream) {
	fmt.Fprintf(w, "\n%s (%d cashflows)\n", name, leg.NumCashflows())
	fmt.Fprintf(w, "%-4s %-12s %-12s %-12s %16s\n", "#", "start", "end", "payment", "notional")

	for i := 0; i < leg.NumCashflows(); i++ {
		cf, err := leg.Cashflow(i)
		if err != nil {
			fmt.Fprintf(w, "%-4d <error: %v>\n", i, err)
			continue
		}
		payment := ""
		switch p := cf.(type) {
		case *product.FixedAccrued:
			payment = utils.FormatDate(p.PaymentDate())
		case *product.OvernightIndexCashflow:
			payment = utils.FormatDate(p.PaymentDate())
		}
		fmt.Fprintf(w, "%-4d %-12s %-12s %-12s %16.2f\n",
			i, utils.FormatDate(cf.FirstDate()), utils.FormatDate(cf.LastDate()),
			payment, cf.Notional())
	}
}
