// Package ledger keeps the append-only record of performed
// calculations, one store per planning mode, with duplicate
// suppression on the calculation's identity key.
package ledger

import (
	"errors"
	"fmt"
	"strconv"

	"subplan/internal/domain"
)

// Outcome reports what Record did. A skipped duplicate is a normal
// result, not a failure.
type Outcome int

const (
	Appended Outcome = iota
	SkippedDuplicate
)

func (o Outcome) String() string {
	if o == SkippedDuplicate {
		return "skipped duplicate"
	}
	return "appended"
}

// ErrWrite wraps any store failure. The ledger is left untouched when
// it is returned.
var ErrWrite = errors.New("ledger write failed")

// Key identifies a calculation for duplicate detection. Fields are
// compared as formatted strings, matching what the rows hold.
type Key struct {
	BaseIP    string
	BaseMask  string
	Requested string
}

// Store is the persistence contract: append one row, or scan for a
// previously recorded key. The CSV implementation is the default; an
// indexed store can replace it without changing the ledger's behavior.
type Store interface {
	Append(row []string) error
	Find(key Key) (bool, error)
}

// Column layouts are fixed: the database import step and any external
// consumer rely on the order and names staying stable.
var (
	HostHeader  = []string{"ID", "base_net_IP", "base_mask", "nr_of_hosts", "new_prefix", "new_mask", "addr_per_subnet", "total_subnets", "subnets"}
	CountHeader = []string{"ID", "base_net_IP", "base_mask", "nr_of_sn", "new_prefix", "new_mask", "addr_per_subnet", "total_subnets", "subnets"}
)

type Ledger struct {
	store Store
}

func New(store Store) *Ledger {
	return &Ledger{store: store}
}

// NewHostLedger opens the host-mode ledger backed by a CSV file.
func NewHostLedger(path string) *Ledger {
	return New(NewCSVStore(path, HostHeader))
}

// NewCountLedger opens the count-mode ledger backed by a CSV file.
func NewCountLedger(path string) *Ledger {
	return New(NewCSVStore(path, CountHeader))
}

// Record appends the entry unless a row with the same
// (base IP, base mask, requested quantity) already exists.
func (l *Ledger) Record(e domain.Entry) (Outcome, error) {
	key := Key{BaseIP: e.BaseIP, BaseMask: e.BaseMask, Requested: strconv.Itoa(e.Requested)}

	found, err := l.store.Find(key)
	if err != nil {
		return 0, fmt.Errorf("%w: duplicate scan: %v", ErrWrite, err)
	}
	if found {
		return SkippedDuplicate, nil
	}

	row := []string{
		e.ID,
		e.BaseIP,
		e.BaseMask,
		strconv.Itoa(e.Requested),
		strconv.Itoa(e.NewPrefix),
		e.NewMask,
		strconv.FormatUint(e.BlockSize, 10),
		strconv.FormatUint(e.TotalSubnets, 10),
		e.Subnets,
	}
	if err := l.store.Append(row); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return Appended, nil
}
