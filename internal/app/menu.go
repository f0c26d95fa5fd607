package app

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/log"

	"subplan/internal/config"
	"subplan/internal/netinfo"
	"subplan/internal/plan"
)

const menuText = `
SUBNET PLANNER
 1) Plan subnets by required hosts
 2) Plan subnets by required subnet count
 3) Show local interfaces
 4) Connectivity probe
 5) Import ledgers into the database
 0) Quit
`

func runMenu(in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprint(out, menuText, "\nChoice: ")
		if !scanner.Scan() {
			return scanner.Err()
		}

		switch strings.TrimSpace(scanner.Text()) {
		case "1":
			menuCalculation(scanner, out, plan.ByRequiredHosts)
		case "2":
			menuCalculation(scanner, out, plan.ByRequiredCount)
		case "3":
			menuInterfaces(out)
		case "4":
			menuProbe(scanner, out)
		case "5":
			if err := runImport(); err != nil {
				log.Error("Ledger import failed", "error", err)
			}
		case "0", "q":
			return nil
		default:
			fmt.Fprintln(out, "Unknown choice")
		}
	}
}

func prompt(scanner *bufio.Scanner, out io.Writer, label string) (string, bool) {
	fmt.Fprintf(out, "%s: ", label)
	if !scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(scanner.Text()), true
}

func menuCalculation(scanner *bufio.Scanner, out io.Writer, mode plan.Mode) {
	base, ok := prompt(scanner, out, "Base network address")
	if !ok {
		return
	}
	mask, ok := prompt(scanner, out, "Mask (dotted) or prefix length")
	if !ok {
		return
	}

	label := "Required hosts per subnet"
	if mode == plan.ByRequiredCount {
		label = "Required number of subnets"
	}
	requirement, ok := prompt(scanner, out, label)
	if !ok {
		return
	}

	result, err := runCalculation(mode, base, mask, requirement)
	if err != nil {
		log.Error("Calculation failed", "error", err)
		return
	}
	printResult(out, result)
}

func menuInterfaces(out io.Writer) {
	interfaces, err := netinfo.LocalInterfaces()
	if err != nil {
		log.Error("Could not list interfaces", "error", err)
		return
	}

	tw := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "NAME\tADDRESS\tMASK\tMAC\tUP")
	for _, iface := range interfaces {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%v\n", iface.Name, iface.Addr, iface.Mask, iface.MAC, iface.IsUp)
	}
	tw.Flush()
}

func menuProbe(scanner *bufio.Scanner, out io.Writer) {
	host, ok := prompt(scanner, out, "Host to probe")
	if !ok || host == "" {
		return
	}

	timeout := time.Duration(config.GetConfig().Probe.TimeoutSeconds) * time.Second
	if timeout == 0 {
		timeout = 4 * time.Second
	}

	rtt, err := netinfo.Probe(host, timeout)
	if err != nil {
		log.Error("Probe failed", "host", host, "error", err)
		return
	}
	fmt.Fprintf(out, "Reply from %s in %s\n", host, rtt)
}
