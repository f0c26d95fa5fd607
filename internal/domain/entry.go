package domain

// Entry is one completed calculation as the ledger records it. The
// identity of an entry is (BaseIP, BaseMask, Requested); the ID is a
// fresh unique value and takes no part in duplicate detection.
type Entry struct {
	ID           string
	BaseIP       string
	BaseMask     string
	Requested    int
	NewPrefix    int
	NewMask      string
	BlockSize    uint64
	TotalSubnets uint64
	Subnets      string
}
