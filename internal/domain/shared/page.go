package shared

// PageRequest describes one slice of a larger result set. Number is
// zero-based; normalization from the 1-based wire parameter happens at
// the application layer.
type PageRequest struct {
	Number int
	Size   int
}

// Offset returns the row offset for this page
func (p PageRequest) Offset() int {
	return p.Number * p.Size
}

// Page holds one slice of results plus pagination metadata
type Page[T any] struct {
	Content          []T
	Number           int
	Size             int
	TotalElements    int64
	TotalPages       int
	First            bool
	Last             bool
	NumberOfElements int
}

// NewPage builds a page and derives the metadata from the request and
// the total match count
func NewPage[T any](content []T, req PageRequest, total int64) Page[T] {
	totalPages := 0
	if req.Size > 0 {
		totalPages = int(total) / req.Size
		if int(total)%req.Size > 0 {
			totalPages++
		}
	}
	return Page[T]{
		Content:          content,
		Number:           req.Number,
		Size:             req.Size,
		TotalElements:    total,
		TotalPages:       totalPages,
		First:            req.Number == 0,
		Last:             req.Number >= totalPages-1,
		NumberOfElements: len(content),
	}
}
