package models

// Revenue is one month's aggregated revenue, amount in minor currency units.
type Revenue struct {
	Month   string `gorm:"primaryKey" json:"month"`
	Revenue int64  `json:"revenue"`
}
