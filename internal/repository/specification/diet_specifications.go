package specification

import (
	"time"

	"gorm.io/gorm"
)

// LoggedBetween filters log rows whose logged_at falls in [From, To).
type LoggedBetween struct {
	From time.Time
	To   time.Time
}

func (s LoggedBetween) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("logged_at >= ? AND logged_at < ?", s.From, s.To)
}

// StartsBetween filters activities whose start_time falls in [From, To).
type StartsBetween struct {
	From time.Time
	To   time.Time
}

func (s StartsBetween) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("start_time >= ? AND start_time < ?", s.From, s.To)
}

// ByOrderID filters transactions by Midtrans order id.
type ByOrderID struct {
	OrderID string
}

func (s ByOrderID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("order_id = ?", s.OrderID)
}

// ByEmail filters users by email.
type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email = ?", s.Email)
}

// StartsAfter filters activities starting at or after From.
type StartsAfter struct {
	From time.Time
}

func (s StartsAfter) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("start_time >= ?", s.From)
}

// Unsynced filters activities with no calendar mirror yet.
// EndsOnOrAfter keeps rows whose end_date has not passed yet.
type EndsOnOrAfter struct {
	From time.Time
}

func (s EndsOnOrAfter) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("end_date >= ?", s.From)
}

type Unsynced struct{}

func (s Unsynced) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("synced = ?", false)
}
