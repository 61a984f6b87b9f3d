package models

import "time"

// Category is one of the fixed transaction categories offered to users.
type Category string

const (
	CategoryFood           Category = "food"
	CategoryShopping       Category = "shopping"
	CategoryTransportation Category = "transportation"
	CategoryEntertainment  Category = "entertainment"
	CategoryUtilities      Category = "utilities"
	CategoryHealth         Category = "health"
	CategoryIncome         Category = "income"
	CategoryOther          Category = "other"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryFood,
	CategoryShopping,
	CategoryTransportation,
	CategoryEntertainment,
	CategoryUtilities,
	CategoryHealth,
	CategoryIncome,
	CategoryOther,
}

// IsValid reports whether c is one of the fixed categories.
func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Transaction is a single signed monetary event attributed to one card.
// Amount is in cents: negative for expenses, positive for income.
type Transaction struct {
	Base
	UserID      string    `gorm:"type:text;not null;index" json:"user_id"`
	CardID      string    `gorm:"type:uuid;not null;index" json:"card_id"`
	Date        time.Time `gorm:"type:date;not null;index" json:"date"`
	Description string    `gorm:"not null" json:"description"`
	Amount      int64     `gorm:"type:bigint;not null" json:"amount"`
	Category    Category  `gorm:"not null;check:chk_transactions_category,category IN ('food','shopping','transportation','entertainment','utilities','health','income','other')" json:"category"`

	Card *Card `gorm:"foreignKey:CardID" json:"-"`
}
