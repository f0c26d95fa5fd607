package ledger

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"subplan/internal/netmath"
	"subplan/internal/plan"
)

// NewEntryID returns a fresh row id. Nanosecond timestamps are unique
// enough for a single-process appender.
func NewEntryID() string {
	return strconv.FormatInt(time.Now().UnixNano(), 10)
}

// SerializeRanges flattens the enumerated subnets into the single text
// field a ledger row carries: repeated "Subnet <n> : <network> -
// <broadcast>; " segments, so one calculation stays one row no matter
// how many subnets it produced.
func SerializeRanges(ranges []plan.Range) string {
	var b strings.Builder
	for _, r := range ranges {
		fmt.Fprintf(&b, "Subnet %d : %s - %s; ", r.Index, netmath.FormatAddr(r.Network), netmath.FormatAddr(r.Broadcast))
	}
	return b.String()
}
