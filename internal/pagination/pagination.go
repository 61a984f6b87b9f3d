// Package pagination bounds list queries.
package pagination

import "gorm.io/gorm"

const (
	// DefaultLimit is the number of recent transactions shown when the
	// caller does not ask for a specific count.
	DefaultLimit = 10
	// MaxLimit caps a single list request.
	MaxLimit = 100
)

// LimitRequest holds the limit parameter parsed from the query string.
type LimitRequest struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=100"`
}

// Defaults fills in fallback when no limit was provided.
func (r *LimitRequest) Defaults(fallback int) {
	if r.Limit == 0 {
		r.Limit = fallback
	}
	if r.Limit <= 0 {
		r.Limit = DefaultLimit
	}
	if r.Limit > MaxLimit {
		r.Limit = MaxLimit
	}
}

// ListResponse wraps a list of items with the limit that produced it.
type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Limit int `json:"limit"`
}

// NewListResponse creates a ListResponse, rendering a nil slice as [].
func NewListResponse[T any](data []T, limit int) ListResponse[T] {
	if data == nil {
		data = []T{}
	}
	return ListResponse[T]{Data: data, Limit: limit}
}

// Limit returns a GORM scope that applies LIMIT n.
func Limit(n int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Limit(n)
	}
}
