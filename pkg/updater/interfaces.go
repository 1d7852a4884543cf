package updater

import (
	"context"

	"github.com/kanopy-platform/mawaws/pkg/atlas"
)

type (
	// Supplies the authoritative CIDR blocks for a service in a region
	RangeProvider interface {
		Fetch(ctx context.Context, service, region string) ([]string, error)
	}

	// Reads and appends to a group's access list
	AccessListClient interface {
		GetAccessList(ctx context.Context, groupID string) ([]atlas.AccessListEntry, error)
		AppendEntries(ctx context.Context, groupID string, entries []atlas.AccessListEntry) (int, error)
	}
)
