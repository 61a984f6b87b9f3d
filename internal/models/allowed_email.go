package models

// AllowedEmail is an address permitted to use the application. Uniqueness
// ignores case.
type AllowedEmail struct {
	Base
	Email string `gorm:"not null;uniqueIndex:idx_whitelisted_emails_email,expression:lower(email)" json:"email"`
}

// TableName keeps the table name used by the existing deployments.
func (AllowedEmail) TableName() string {
	return "whitelisted_emails"
}
