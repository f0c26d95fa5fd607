// Package plan resolves subnet sizing requirements into concrete
// prefixes and enumerates the resulting address ranges.
package plan

import (
	"errors"
	"fmt"
	"math/bits"
	"strconv"
	"strings"

	"subplan/internal/netmath"
)

// Mode selects how a requirement is interpreted and, later, how the
// enumeration base is aligned.
type Mode int

const (
	// ByRequiredHosts subdivides the original network into the smallest
	// subnets that still hold the requested host count.
	ByRequiredHosts Mode = iota
	// ByRequiredCount borrows just enough bits to produce the requested
	// number of subnets.
	ByRequiredCount
)

var (
	ErrHostsUnsatisfiable    = errors.New("host requirement exceeds network capacity")
	ErrPrefixOverflow        = errors.New("not enough host bits to borrow")
	ErrNonIntegerRequirement = errors.New("requirement must be a non-negative integer")
)

// Plan is a resolved subdivision of an original network.
type Plan struct {
	Mode           Mode
	OriginalPrefix int
	NewPrefix      int
}

// BorrowedBits is the number of mask bits taken from the host portion.
func (p Plan) BorrowedBits() int { return p.NewPrefix - p.OriginalPrefix }

// BlockSize is the address count of one subnet, 2^(32-newPrefix).
func (p Plan) BlockSize() uint64 { return 1 << (32 - p.NewPrefix) }

// TotalSubnets is the number of subnets the plan produces.
func (p Plan) TotalSubnets() uint64 { return 1 << p.BorrowedBits() }

// UsableHosts is the per-subnet host capacity under the classical rule:
// zero for /31 and /32, otherwise block size minus network and broadcast.
func (p Plan) UsableHosts() uint64 { return usableHosts(p.NewPrefix) }

func usableHosts(prefix int) uint64 {
	hostBits := 32 - prefix
	if hostBits <= 1 {
		return 0
	}
	return (1 << hostBits) - 2
}

// ParseRequirement validates the caller-supplied requirement string.
func ParseRequirement(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %q", ErrNonIntegerRequirement, s)
	}
	return n, nil
}

// ByHosts returns the most specific prefix within [originalPrefix,32]
// whose usable host capacity satisfies requiredHosts. A requirement of
// zero leaves the network undivided.
//
// The original search walked candidates from /32 down to the original
// prefix and stopped at the first fit; the bit-width derivation below is
// equivalent, including the zero-usable /31 and /32 rule, because
// capacity grows strictly as the prefix shortens.
func ByHosts(originalPrefix, requiredHosts int) (Plan, error) {
	if originalPrefix < 0 || originalPrefix > 32 {
		return Plan{}, fmt.Errorf("%w: %d", netmath.ErrInvalidPrefix, originalPrefix)
	}
	if requiredHosts < 0 {
		return Plan{}, fmt.Errorf("%w: %d", ErrNonIntegerRequirement, requiredHosts)
	}

	p := Plan{Mode: ByRequiredHosts, OriginalPrefix: originalPrefix, NewPrefix: originalPrefix}
	if requiredHosts == 0 {
		return p, nil
	}

	// Smallest host-bit width with 2^h-2 >= requiredHosts, never below
	// the 2 bits a usable subnet needs.
	hostBits := bits.Len(uint(requiredHosts + 1))
	if hostBits < 2 {
		hostBits = 2
	}

	p.NewPrefix = 32 - hostBits
	if p.NewPrefix < originalPrefix {
		return Plan{}, fmt.Errorf("%w: %d hosts do not fit in a /%d", ErrHostsUnsatisfiable, requiredHosts, originalPrefix)
	}
	return p, nil
}

// ByCount borrows the minimal number of bits so that the original
// network splits into at least requestedSubnets pieces.
func ByCount(originalPrefix, requestedSubnets int) (Plan, error) {
	if originalPrefix < 0 || originalPrefix > 32 {
		return Plan{}, fmt.Errorf("%w: %d", netmath.ErrInvalidPrefix, originalPrefix)
	}

	borrow := minBorrowBits(requestedSubnets)
	newPrefix := originalPrefix + borrow
	if newPrefix > 32 {
		return Plan{}, fmt.Errorf("%w: %d subnets need %d bits beyond /%d", ErrPrefixOverflow, requestedSubnets, borrow, originalPrefix)
	}

	return Plan{Mode: ByRequiredCount, OriginalPrefix: originalPrefix, NewPrefix: newPrefix}, nil
}

// minBorrowBits is the smallest n with 2^n >= requested; zero for
// non-positive requests.
func minBorrowBits(requested int) int {
	if requested <= 0 {
		return 0
	}
	return bits.Len(uint(requested - 1))
}
