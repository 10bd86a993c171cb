package dashboard_stats

import (
	"github.com/git-senpai/fashion-sub001/models"
)

// Snapshot is an immutable set of raw entity collections retrieved at one
// point in time. Each collection is independently fetched and independently
// fallible upstream; a source that failed arrives here as an empty slice.
// Nil slices are valid and treated as empty everywhere in this package.
type Snapshot struct {
	Orders     []models.OrderWithItems
	Users      []models.User
	Products   []models.Product
	Categories []models.Category
	Addresses  []models.Address
}
