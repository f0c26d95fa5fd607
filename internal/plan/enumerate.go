package plan

import "subplan/internal/netmath"

// Range is one enumerated subnet. FirstUsable and LastUsable only hold
// meaningful addresses when HasUsable is set; /31 and /32 blocks have
// no usable hosts to report.
type Range struct {
	Index       int
	Network     uint32
	Broadcast   uint32
	FirstUsable uint32
	LastUsable  uint32
	HasUsable   bool
}

// Enumerate materializes the plan's subnets in ascending address order,
// 1-indexed.
//
// The enumeration base depends on the mode: host-based plans subdivide
// strictly inside the original block, so the base address is masked with
// the original prefix; count-based plans realign to the new, narrower
// block boundary. The two modes are deliberately not interchangeable.
func Enumerate(p Plan, baseAddr uint32) []Range {
	alignPrefix := p.OriginalPrefix
	if p.Mode == ByRequiredCount {
		alignPrefix = p.NewPrefix
	}
	mask, _ := netmath.PrefixToMask(alignPrefix)
	base := uint64(baseAddr & mask)

	block := p.BlockSize()
	total := p.TotalSubnets()

	ranges := make([]Range, 0, total)
	for i := uint64(0); i < total; i++ {
		network := base + i*block
		broadcast := network + block - 1

		r := Range{
			Index:     int(i) + 1,
			Network:   uint32(network),
			Broadcast: uint32(broadcast),
		}
		if block > 2 {
			r.FirstUsable = uint32(network + 1)
			r.LastUsable = uint32(broadcast - 1)
			r.HasUsable = true
		}
		ranges = append(ranges, r)
	}
	return ranges
}
