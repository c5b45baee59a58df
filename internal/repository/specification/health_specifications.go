package specification

import (
	"time"

	"gorm.io/gorm"
)

type ByDataType struct {
	DataType string
}

func (s ByDataType) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("data_type = ?", s.DataType)
}

// RecordedOnOrAfter is the inclusive lower bound of a recorded-time range
type RecordedOnOrAfter struct {
	At time.Time
}

func (s RecordedOnOrAfter) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("recorded_at >= ?", s.At)
}

// RecordedOnOrBefore is the inclusive upper bound of a recorded-time range
type RecordedOnOrBefore struct {
	At time.Time
}

func (s RecordedOnOrBefore) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("recorded_at <= ?", s.At)
}
