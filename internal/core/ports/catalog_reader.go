package ports

import (
	"context"

	"fulfilment/internal/core/domain/model/catalog"
	"fulfilment/internal/core/domain/model/kernel"
)

// CatalogReader defines read-only access to the warehouse catalog.
// The fulfilment engine resolves replacement candidates through this port;
// it never writes to the catalog.
type CatalogReader interface {
	// FindMany resolves catalog records for the given identifiers in one bulk
	// lookup. Identifiers without a record are simply absent from the result
	// map; that is not an error.
	FindMany(ctx context.Context, ids []kernel.CatalogEntryID) (map[kernel.CatalogEntryID]catalog.Entry, error)

	// FindOne resolves a single catalog record. The boolean reports whether
	// the record exists; a missing record is not an error.
	FindOne(ctx context.Context, id kernel.CatalogEntryID) (catalog.Entry, bool, error)
}
