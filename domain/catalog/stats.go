package catalog

// OtherBucket collects values outside the known enumeration.
const OtherBucket = "other"

// StatusCounts is a count of items by status. Total always equals the sum of ByStatus.
type StatusCounts struct {
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"byStatus"`
}

// NewStatusCounts returns zeroed buckets for the given statuses.
func NewStatusCounts(statuses []string) StatusCounts {
	c := StatusCounts{ByStatus: make(map[string]int, len(statuses))}
	for _, s := range statuses {
		c.ByStatus[s] = 0
	}
	return c
}

// Add counts one item. Unknown or empty statuses land in OtherBucket.
func (c *StatusCounts) Add(status string) {
	c.Total++
	c.ByStatus[bucket(c.ByStatus, status)]++
}

// Sum adds up the buckets.
func (c StatusCounts) Sum() int {
	n := 0
	for _, v := range c.ByStatus {
		n += v
	}
	return n
}

func bucket(known map[string]int, value string) string {
	if _, ok := known[value]; ok && value != "" {
		return value
	}
	return OtherBucket
}

// ListResult is a page of items plus the number of items matching the filter.
type ListResult[T any] struct {
	Items      []T `json:"items"`
	TotalCount int `json:"totalCount"`
}

// Summary is the dashboard payload of GET /api/stats.
type Summary struct {
	Users     StatusCounts `json:"users"`
	Products  StatusCounts `json:"products"`
	Providers StatusCounts `json:"providers"`
}
