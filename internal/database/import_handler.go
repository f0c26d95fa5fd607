package database

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"subplan/internal/domain"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ImportResult reports how many ledger rows each mode contributed.
// Rows already present under their dedup key count as skipped.
type ImportResult struct {
	HostImported  int64
	HostSkipped   int64
	CountImported int64
	CountSkipped  int64
}

// ImportLedgers loads both ledger files into the database. Inserts use
// ON CONFLICT DO NOTHING over the (base_net_ip, base_mask, requested)
// unique index, so re-importing is idempotent and stays consistent with
// the ledger's own duplicate suppression. The two files touch disjoint
// tables and are imported concurrently.
func ImportLedgers(db *gorm.DB, hostPath, countPath string) (ImportResult, error) {
	var result ImportResult
	var g errgroup.Group

	g.Go(func() error {
		imported, skipped, err := importHostLedger(db, hostPath)
		result.HostImported, result.HostSkipped = imported, skipped
		return err
	})
	g.Go(func() error {
		imported, skipped, err := importCountLedger(db, countPath)
		result.CountImported, result.CountSkipped = imported, skipped
		return err
	})

	if err := g.Wait(); err != nil {
		return result, err
	}
	return result, nil
}

func importHostLedger(db *gorm.DB, path string) (imported, skipped int64, err error) {
	rows, err := readLedgerRows(path)
	if err != nil {
		return 0, 0, err
	}

	for _, row := range rows {
		record, err := hostCalculationFromRow(row)
		if err != nil {
			log.Warn("Skipping malformed host ledger row", "row", row[0], "error", err)
			continue
		}

		res := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "base_net_ip"}, {Name: "base_mask"}, {Name: "nr_of_hosts"}},
			DoNothing: true,
		}).Create(&record)
		if res.Error != nil {
			return imported, skipped, fmt.Errorf("import host row %s: %w", record.LedgerID, res.Error)
		}
		if res.RowsAffected == 0 {
			skipped++
		} else {
			imported++
		}
	}
	return imported, skipped, nil
}

func importCountLedger(db *gorm.DB, path string) (imported, skipped int64, err error) {
	rows, err := readLedgerRows(path)
	if err != nil {
		return 0, 0, err
	}

	for _, row := range rows {
		record, err := countCalculationFromRow(row)
		if err != nil {
			log.Warn("Skipping malformed count ledger row", "row", row[0], "error", err)
			continue
		}

		res := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "base_net_ip"}, {Name: "base_mask"}, {Name: "nr_of_sn"}},
			DoNothing: true,
		}).Create(&record)
		if res.Error != nil {
			return imported, skipped, fmt.Errorf("import count row %s: %w", record.LedgerID, res.Error)
		}
		if res.RowsAffected == 0 {
			skipped++
		} else {
			imported++
		}
	}
	return imported, skipped, nil
}

// readLedgerRows returns the data rows of a ledger file, header
// excluded. A missing file is an empty ledger, not a failure.
func readLedgerRows(path string) ([][]string, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		log.Warn("Ledger file not found, nothing to import", "path", path)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open ledger %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	var rows [][]string
	header := true
	for {
		record, err := r.Read()
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read ledger %s: %w", path, err)
		}
		if header {
			header = false
			continue
		}
		rows = append(rows, record)
	}
}

func hostCalculationFromRow(row []string) (domain.HostCalculation, error) {
	fields, err := numericRowFields(row)
	if err != nil {
		return domain.HostCalculation{}, err
	}

	return domain.HostCalculation{
		LedgerID:      row[0],
		BaseNetIP:     row[1],
		BaseMask:      row[2],
		Hosts:         fields.requested,
		NewPrefix:     fields.newPrefix,
		NewMask:       row[5],
		AddrPerSubnet: fields.addrPerSubnet,
		TotalSubnets:  fields.totalSubnets,
		Subnets:       row[8],
	}, nil
}

func countCalculationFromRow(row []string) (domain.CountCalculation, error) {
	fields, err := numericRowFields(row)
	if err != nil {
		return domain.CountCalculation{}, err
	}

	return domain.CountCalculation{
		LedgerID:      row[0],
		BaseNetIP:     row[1],
		BaseMask:      row[2],
		Subnets:       fields.requested,
		NewPrefix:     fields.newPrefix,
		NewMask:       row[5],
		AddrPerSubnet: fields.addrPerSubnet,
		TotalSubnets:  fields.totalSubnets,
		SubnetList:    row[8],
	}, nil
}

type rowFields struct {
	requested     uint32
	newPrefix     uint8
	addrPerSubnet uint64
	totalSubnets  uint64
}

func numericRowFields(row []string) (rowFields, error) {
	if len(row) != 9 {
		return rowFields{}, fmt.Errorf("expected 9 columns, got %d", len(row))
	}

	requested, err := strconv.ParseUint(row[3], 10, 32)
	if err != nil {
		return rowFields{}, fmt.Errorf("requested quantity %q: %w", row[3], err)
	}
	newPrefix, err := strconv.ParseUint(row[4], 10, 8)
	if err != nil || newPrefix > 32 {
		return rowFields{}, fmt.Errorf("new prefix %q is not a prefix length", row[4])
	}
	addrPerSubnet, err := strconv.ParseUint(row[6], 10, 64)
	if err != nil {
		return rowFields{}, fmt.Errorf("addr_per_subnet %q: %w", row[6], err)
	}
	totalSubnets, err := strconv.ParseUint(row[7], 10, 64)
	if err != nil {
		return rowFields{}, fmt.Errorf("total_subnets %q: %w", row[7], err)
	}

	return rowFields{
		requested:     uint32(requested),
		newPrefix:     uint8(newPrefix),
		addrPerSubnet: addrPerSubnet,
		totalSubnets:  totalSubnets,
	}, nil
}
