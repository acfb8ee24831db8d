package dto

// Result wraps a list response with its length.
type Result[T any] struct {
	Count int `json:"count"`
	Data  []T `json:"data"`
}

func NewResult[T any](data []T) Result[T] {
	if data == nil {
		data = []T{}
	}
	return Result[T]{Count: len(data), Data: data}
}
