package scope

import "gorm.io/gorm"

// CatalogOrder is the stable insertion order the matcher relies on for tie-breaks.
func CatalogOrder(db *gorm.DB) *gorm.DB {
	return db.Order("created_at ASC").Order("id ASC")
}

func OrderByTimestampDesc(db *gorm.DB) *gorm.DB {
	return db.Order("recorded_at DESC")
}
