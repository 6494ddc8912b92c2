package querier

import (
	"math"

	"github.com/cosmos/cosmos-sdk/types/query"
)

// DefaultPageRequest returns the page request attached to list queries when
// the caller passes none: the whole collection, with the total counted.
// Each call returns a fresh value callers may modify field by field.
func DefaultPageRequest() *query.PageRequest {
	return &query.PageRequest{
		Key:        nil,
		Offset:     0,
		Limit:      math.MaxUint64,
		CountTotal: true,
		Reverse:    false,
	}
}

func pageRequestOrDefault(pagination *query.PageRequest) *query.PageRequest {
	if pagination == nil {
		return DefaultPageRequest()
	}
	return pagination
}
