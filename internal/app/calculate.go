package app

import (
	"fmt"
	"io"
	"text/tabwriter"

	"subplan/internal/config"
	"subplan/internal/domain"
	"subplan/internal/ledger"
	"subplan/internal/netmath"
	"subplan/internal/plan"
)

// Result is one completed pipeline run: the resolved plan, its
// enumerated ranges, and what the ledger did with the entry.
type Result struct {
	Plan    plan.Plan
	Ranges  []plan.Range
	Entry   domain.Entry
	Outcome ledger.Outcome
}

// runCalculation drives the full pipeline for three caller-supplied
// strings: resolve the original prefix, plan the new one, enumerate the
// ranges, and record the summary row. Any failure aborts before the
// ledger is touched.
func runCalculation(mode plan.Mode, baseIP, maskArg, requirement string) (*Result, error) {
	addr, err := netmath.ParseAddr(baseIP)
	if err != nil {
		return nil, err
	}
	originalPrefix, err := netmath.ResolvePrefix(maskArg)
	if err != nil {
		return nil, err
	}
	required, err := plan.ParseRequirement(requirement)
	if err != nil {
		return nil, err
	}

	var p plan.Plan
	if mode == plan.ByRequiredCount {
		p, err = plan.ByCount(originalPrefix, required)
	} else {
		p, err = plan.ByHosts(originalPrefix, required)
	}
	if err != nil {
		return nil, err
	}

	ranges := plan.Enumerate(p, addr)

	baseMask, _ := netmath.PrefixToMask(originalPrefix)
	newMask, _ := netmath.PrefixToMask(p.NewPrefix)
	entry := domain.Entry{
		ID:           ledger.NewEntryID(),
		BaseIP:       netmath.FormatAddr(addr),
		BaseMask:     netmath.FormatAddr(baseMask),
		Requested:    required,
		NewPrefix:    p.NewPrefix,
		NewMask:      netmath.FormatAddr(newMask),
		BlockSize:    p.BlockSize(),
		TotalSubnets: p.TotalSubnets(),
		Subnets:      ledger.SerializeRanges(ranges),
	}

	outcome, err := ledgerForMode(mode).Record(entry)
	if err != nil {
		return nil, err
	}

	return &Result{Plan: p, Ranges: ranges, Entry: entry, Outcome: outcome}, nil
}

func ledgerForMode(mode plan.Mode) *ledger.Ledger {
	if mode == plan.ByRequiredCount {
		return ledger.NewCountLedger(config.CountLedgerPath())
	}
	return ledger.NewHostLedger(config.HostLedgerPath())
}

func printResult(w io.Writer, r *Result) {
	e := r.Entry
	fmt.Fprintf(w, "\nBase network:   %s / %s\n", e.BaseIP, e.BaseMask)
	fmt.Fprintf(w, "New prefix:     /%d (%s)\n", e.NewPrefix, e.NewMask)
	fmt.Fprintf(w, "Borrowed bits:  %d\n", r.Plan.BorrowedBits())
	fmt.Fprintf(w, "Block size:     %d addresses\n", e.BlockSize)
	fmt.Fprintf(w, "Total subnets:  %d\n", e.TotalSubnets)
	fmt.Fprintf(w, "Usable hosts:   %d per subnet\n", r.Plan.UsableHosts())
	fmt.Fprintf(w, "Ledger:         %s\n\n", r.Outcome)

	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "#\tNETWORK\tFIRST\tLAST\tBROADCAST")
	for _, rng := range r.Ranges {
		first, last := "N/A", "N/A"
		if rng.HasUsable {
			first = netmath.FormatAddr(rng.FirstUsable)
			last = netmath.FormatAddr(rng.LastUsable)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			rng.Index, netmath.FormatAddr(rng.Network), first, last, netmath.FormatAddr(rng.Broadcast))
	}
	tw.Flush()
	fmt.Fprintln(w)
}
