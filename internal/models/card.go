package models

// MaxUserIDLength bounds the identity provider's user id. Ids are opaque:
// UUIDs from Supabase, 28-character UIDs from Firebase.
const MaxUserIDLength = 128

// Card is a payment account with a running balance in cents.
//
// Balance only changes through the balance reconciler: it is the opening
// balance plus the signed amount of every transaction recorded against it.
type Card struct {
	Base
	UserID   string `gorm:"type:text;not null;index" json:"user_id"`
	Name     string `gorm:"not null" json:"name"`
	Balance  int64  `gorm:"type:bigint;not null;default:0" json:"balance"`
	LastFour string `gorm:"size:4;not null;check:chk_cards_last_four,length(last_four) = 4" json:"last_four"`
}
