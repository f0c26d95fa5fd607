package app

import (
	"errors"
	"os"
	"strings"
	"testing"

	"subplan/internal/config"
	"subplan/internal/ledger"
	"subplan/internal/netmath"
	"subplan/internal/plan"
)

func setupAppTest(t *testing.T) {
	t.Helper()

	orig := config.GetConfig()
	t.Cleanup(func() { config.SetConfig(orig) })
	t.Chdir(t.TempDir())

	var cfg config.Config
	cfg.Ledger.Directory = "data"
	cfg.Ledger.HostFile = "subnets_by_hosts.csv"
	cfg.Ledger.CountFile = "subnets_by_count.csv"
	cfg.Probe.TimeoutSeconds = 1
	config.SetConfig(cfg)
}

func TestRunCalculationByHosts(t *testing.T) {
	setupAppTest(t)

	result, err := runCalculation(plan.ByRequiredHosts, "192.168.1.0", "255.255.255.0", "40")
	if err != nil {
		t.Fatalf("runCalculation: %v", err)
	}

	if result.Entry.NewPrefix != 26 || result.Entry.NewMask != "255.255.255.192" {
		t.Fatalf("planned /%d (%s), want /26 (255.255.255.192)", result.Entry.NewPrefix, result.Entry.NewMask)
	}
	if len(result.Ranges) != 4 {
		t.Fatalf("enumerated %d ranges, want 4", len(result.Ranges))
	}
	if result.Outcome != ledger.Appended {
		t.Fatalf("outcome = %v, want appended", result.Outcome)
	}
	if !strings.Contains(result.Entry.Subnets, "Subnet 4 : 192.168.1.192 - 192.168.1.255; ") {
		t.Fatalf("serialized subnets missing final segment: %q", result.Entry.Subnets)
	}

	if _, err := os.Stat(config.HostLedgerPath()); err != nil {
		t.Fatalf("host ledger file was not written: %v", err)
	}
}

func TestRunCalculationSkipsDuplicates(t *testing.T) {
	setupAppTest(t)

	first, err := runCalculation(plan.ByRequiredCount, "172.16.0.0", "/16", "4")
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	if first.Outcome != ledger.Appended {
		t.Fatalf("first outcome = %v, want appended", first.Outcome)
	}

	second, err := runCalculation(plan.ByRequiredCount, "172.16.0.0", "/16", "4")
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if second.Outcome != ledger.SkippedDuplicate {
		t.Fatalf("second outcome = %v, want skipped duplicate", second.Outcome)
	}
}

func TestRunCalculationAcceptsDottedAndPrefixMasks(t *testing.T) {
	setupAppTest(t)

	dotted, err := runCalculation(plan.ByRequiredHosts, "10.0.0.0", "255.255.255.0", "40")
	if err != nil {
		t.Fatalf("dotted mask run: %v", err)
	}
	slashed, err := runCalculation(plan.ByRequiredHosts, "10.0.1.0", "/24", "40")
	if err != nil {
		t.Fatalf("prefix run: %v", err)
	}
	if dotted.Entry.NewPrefix != slashed.Entry.NewPrefix {
		t.Fatalf("dotted and prefix inputs disagree: /%d vs /%d", dotted.Entry.NewPrefix, slashed.Entry.NewPrefix)
	}
}

func TestRunCalculationFailuresLeaveLedgerUntouched(t *testing.T) {
	setupAppTest(t)

	cases := []struct {
		name        string
		base        string
		mask        string
		requirement string
		want        error
	}{
		{"bad address", "300.0.0.1", "/24", "10", netmath.ErrInvalidAddress},
		{"bad mask", "10.0.0.0", "255.255.0.1", "10", netmath.ErrNonContiguousMask},
		{"bad requirement", "10.0.0.0", "/24", "ten", plan.ErrNonIntegerRequirement},
		{"unsatisfiable", "10.0.0.0", "/31", "1", plan.ErrHostsUnsatisfiable},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := runCalculation(plan.ByRequiredHosts, tc.base, tc.mask, tc.requirement); !errors.Is(err, tc.want) {
				t.Fatalf("err = %v, want %v", err, tc.want)
			}
		})
	}

	if _, err := os.Stat(config.HostLedgerPath()); !os.IsNotExist(err) {
		t.Fatalf("ledger file exists after failed runs only: %v", err)
	}
}

func TestPrintResultMarksUnusableRanges(t *testing.T) {
	setupAppTest(t)

	result, err := runCalculation(plan.ByRequiredCount, "10.0.0.0", "/30", "2")
	if err != nil {
		t.Fatalf("runCalculation: %v", err)
	}

	var buf strings.Builder
	printResult(&buf, result)

	out := buf.String()
	if !strings.Contains(out, "N/A") {
		t.Fatalf("output does not mark /31 usable hosts as N/A:\n%s", out)
	}
	if !strings.Contains(out, "Total subnets:  2") {
		t.Fatalf("output missing subnet total:\n%s", out)
	}
}
