package dto

import "github.com/brewery/backend/internal/domain/shared"

// PageResponse is the wire shape of one page of results
type PageResponse[T any] struct {
	Content          []T   `json:"content"`
	Number           int   `json:"number"`
	Size             int   `json:"size"`
	TotalElements    int64 `json:"totalElements"`
	TotalPages       int   `json:"totalPages"`
	First            bool  `json:"first"`
	Last             bool  `json:"last"`
	NumberOfElements int   `json:"numberOfElements"`
}

// NewPageResponse adapts a domain page for serialization
func NewPageResponse[T any](page shared.Page[T]) PageResponse[T] {
	content := page.Content
	if content == nil {
		content = []T{}
	}
	return PageResponse[T]{
		Content:          content,
		Number:           page.Number,
		Size:             page.Size,
		TotalElements:    page.TotalElements,
		TotalPages:       page.TotalPages,
		First:            page.First,
		Last:             page.Last,
		NumberOfElements: page.NumberOfElements,
	}
}
