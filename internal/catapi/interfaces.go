package catapi

import (
	"context"

	"github.com/ytget/catswipe/internal/model"
)

// Source defines the interface for fetching one cat at a time.
type Source interface {
	// FetchOne returns a record with its image preloaded, or nil when the
	// record itself could not be fetched or parsed.
	FetchOne(ctx context.Context) *model.CatRecord
}
