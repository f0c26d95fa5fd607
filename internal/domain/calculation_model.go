package domain

import "time"

// HostCalculation mirrors one host-mode ledger row in the database. The
// composite unique index repeats the ledger's own dedup key so the
// import step cannot diverge from the file's semantics.
type HostCalculation struct {
	ID            uint64 `gorm:"primaryKey;autoIncrement"`
	LedgerID      string `gorm:"size:32;not null"`
	BaseNetIP     string `gorm:"column:base_net_ip;size:15;not null;uniqueIndex:idx_host_calc_key,priority:1"`
	BaseMask      string `gorm:"column:base_mask;size:15;not null;uniqueIndex:idx_host_calc_key,priority:2"`
	Hosts         uint32 `gorm:"column:nr_of_hosts;not null;uniqueIndex:idx_host_calc_key,priority:3"`
	NewPrefix     uint8  `gorm:"column:new_prefix;not null"`
	NewMask       string `gorm:"column:new_mask;size:15;not null"`
	AddrPerSubnet uint64 `gorm:"column:addr_per_subnet;not null"`
	TotalSubnets  uint64 `gorm:"column:total_subnets;not null"`
	Subnets       string `gorm:"column:subnets;type:text"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// CountCalculation mirrors one count-mode ledger row in the database.
type CountCalculation struct {
	ID            uint64 `gorm:"primaryKey;autoIncrement"`
	LedgerID      string `gorm:"size:32;not null"`
	BaseNetIP     string `gorm:"column:base_net_ip;size:15;not null;uniqueIndex:idx_count_calc_key,priority:1"`
	BaseMask      string `gorm:"column:base_mask;size:15;not null;uniqueIndex:idx_count_calc_key,priority:2"`
	Subnets       uint32 `gorm:"column:nr_of_sn;not null;uniqueIndex:idx_count_calc_key,priority:3"`
	NewPrefix     uint8  `gorm:"column:new_prefix;not null"`
	NewMask       string `gorm:"column:new_mask;size:15;not null"`
	AddrPerSubnet uint64 `gorm:"column:addr_per_subnet;not null"`
	TotalSubnets  uint64 `gorm:"column:total_subnets;not null"`
	SubnetList    string `gorm:"column:subnets;type:text"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
}
