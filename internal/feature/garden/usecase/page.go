package usecase

const (
	// DefaultLimit is the page size used when the caller gives none.
	DefaultLimit = 100
	// MaxLimit caps every page.
	MaxLimit = 100
)

// Page is a normalized offset/limit window.
type Page struct {
	Offset int
	Limit  int
}

// NewPage clamps offset to >= 0 and limit to [1, MaxLimit], substituting
// DefaultLimit for a non-positive limit.
func NewPage(offset, limit int) Page {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Page{Offset: offset, Limit: limit}
}
