package shared

// Filter carries the pagination, ordering and search options repositories
// accept on list queries. Filters holds column-specific predicates; keys are
// validated against a whitelist at the persistence layer.
type Filter struct {
	Page     int
	PageSize int
	OrderBy  string
	OrderDir string
	Search   string
	Filters  map[string]interface{}
}

// DefaultFilter returns a filter with default pagination and ordering
func DefaultFilter() Filter {
	return Filter{
		Page:     1,
		PageSize: 20,
		OrderBy:  "created_at",
		OrderDir: "desc",
		Filters:  make(map[string]interface{}),
	}
}
