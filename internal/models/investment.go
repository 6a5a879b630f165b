package models

// AssetType represents the kind of asset an investment holds.
type AssetType string

const (
	AssetTypeStock      AssetType = "stock"
	AssetTypeETF        AssetType = "etf"
	AssetTypeBond       AssetType = "bond"
	AssetTypeCrypto     AssetType = "crypto"
	AssetTypeMutualFund AssetType = "mutual_fund"
	AssetTypeREIT       AssetType = "reit"
)

// Investment represents a holding of a specific asset. Prices are in cents.
// Market value (Quantity x CurrentPrice) is derived at query time and never
// persisted.
type Investment struct {
	Base
	UserID        string    `gorm:"type:uuid;not null;index" json:"user_id"`
	AssetName     string    `gorm:"not null" json:"asset_name"`
	Type          AssetType `gorm:"not null" json:"type"`
	Quantity      float64   `gorm:"not null" json:"quantity"`
	PurchasePrice int64     `gorm:"type:bigint;not null" json:"purchase_price"`
	CurrentPrice  int64     `gorm:"type:bigint;not null" json:"current_price"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

// MarketValue returns the holding's current value in cents.
func (i *Investment) MarketValue() int64 {
	return int64(i.Quantity * float64(i.CurrentPrice))
}
