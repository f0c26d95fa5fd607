package app

import (
	"errors"
	"flag"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"subplan/internal/config"
	"subplan/internal/database"
	"subplan/internal/plan"
)

func Run() error {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found. Falling back to system environment variables.")
	}

	log.SetLevel(log.InfoLevel)

	baseFlag := flag.String("base", "", "Base network address for a one-shot calculation")
	maskFlag := flag.String("mask", "", "Original mask, dotted or prefix length")
	hostsFlag := flag.String("hosts", "", "Required usable hosts per subnet")
	subnetsFlag := flag.String("subnets", "", "Required number of subnets")
	importFlag := flag.Bool("import", false, "Import the ledger files into the database and exit")
	flag.Parse()

	config.ReadSettings()

	if *importFlag {
		return runImport()
	}

	if *baseFlag != "" {
		return runOneShot(*baseFlag, *maskFlag, *hostsFlag, *subnetsFlag)
	}

	return runMenu(os.Stdin, os.Stdout)
}

func runOneShot(base, mask, hosts, subnets string) error {
	var mode plan.Mode
	var requirement string

	switch {
	case hosts != "" && subnets != "":
		return errors.New("choose either -hosts or -subnets, not both")
	case hosts != "":
		mode, requirement = plan.ByRequiredHosts, hosts
	case subnets != "":
		mode, requirement = plan.ByRequiredCount, subnets
	default:
		return errors.New("one of -hosts or -subnets is required with -base")
	}

	result, err := runCalculation(mode, base, mask, requirement)
	if err != nil {
		return err
	}
	printResult(os.Stdout, result)
	return nil
}

func runImport() error {
	db, err := database.SetupDB()
	if err != nil {
		return err
	}

	result, err := database.ImportLedgers(db, config.HostLedgerPath(), config.CountLedgerPath())
	if err != nil {
		return err
	}

	log.Info("Ledger import finished",
		"host_imported", result.HostImported,
		"host_skipped", result.HostSkipped,
		"count_imported", result.CountImported,
		"count_skipped", result.CountSkipped,
	)
	return nil
}
