package catalog

import (
	"context"

	"github.com/Debian/apt/internal/core/ports"
	"github.com/grindlemire/graft"
	"github.com/spf13/afero"
)

// NodeID is the unique identifier for the catalog store Graft node.
const NodeID graft.ID = "adapter.catalog_store"

func init() {
	graft.Register(graft.Node[ports.CatalogStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.CatalogStore, error) {
			return NewStore(afero.NewOsFs()), nil
		},
	})
}
