package response

import "cashdrawer-api/internal/usecase/queries"

type Envelope[T any] struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Data       T      `json:"data"`
}

type ListEnvelope[T any] struct {
	StatusCode     int            `json:"statusCode"`
	Message        string         `json:"message"`
	Data           []T            `json:"data"`
	PaginationMeta PaginationMeta `json:"paginationMeta"`
}

type PaginationMeta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	HasNext    bool  `json:"hasNext"`
	HasPrev    bool  `json:"hasPrev"`
}

func NewEnvelope[T any](status int, msg string, data T) Envelope[T] {
	return Envelope[T]{StatusCode: status, Message: msg, Data: data}
}

func NewListEnvelope[T any](status int, msg string, data []T, meta queries.PageMeta) ListEnvelope[T] {
	if data == nil {
		data = []T{}
	}
	return ListEnvelope[T]{
		StatusCode:     status,
		Message:        msg,
		Data:           data,
		PaginationMeta: PaginationMeta(meta),
	}
}
