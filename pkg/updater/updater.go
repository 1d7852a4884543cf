package updater

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/kanopy-platform/mawaws/pkg/atlas"
	"github.com/kanopy-platform/mawaws/pkg/reconcile"
)

type Request struct {
	GroupID string
	Service string
	Region  string
}

// Comment is the provenance note stored with every entry the updater adds.
func (r Request) Comment() string {
	return fmt.Sprintf("AWS %s %s", r.Service, r.Region)
}

type Report struct {
	ExistingCount int
	Added         []atlas.AccessListEntry
	// CIDRs only present in the access list. They are reported, never removed.
	Removed       []string
	TotalCount    int
	DryRun        bool
}

type Updater struct {
	ranges     RangeProvider
	accessList AccessListClient
	log        *zap.Logger
	dryRun     bool
}

func New(ranges RangeProvider, accessList AccessListClient, opts ...updaterOption) *Updater {
	u := &Updater{
		ranges:     ranges,
		accessList: accessList,
		log:        zap.NewNop(),
	}

	for _, opt := range opts {
		opt(u)
	}

	return u
}

func (u *Updater) Update(ctx context.Context, req Request) (*Report, error) {
	log := u.log.With(zap.String("groupid", req.GroupID), zap.String("service", req.Service), zap.String("region", req.Region))
	log.Info("performing whitelist update")

	var desired []string
	var current []atlas.AccessListEntry

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		ips, err := u.ranges.Fetch(gctx, req.Service, req.Region)
		if err != nil {
			return fmt.Errorf("fetching ip ranges: %w", err)
		}
		desired = ips
		return nil
	})
	g.Go(func() error {
		entries, err := u.accessList.GetAccessList(gctx, req.GroupID)
		if err != nil {
			return fmt.Errorf("fetching current access list: %w", err)
		}
		current = entries
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	existing := make([]string, 0, len(current))
	for _, e := range current {
		existing = append(existing, e.CIDRBlock)
	}
	log.Info("access list records exist currently", zap.Int("count", len(existing)), zap.Int("ip-ranges", len(desired)))
	debugDump(log, "existing access list CIDRs", existing)

	diff := reconcile.CIDRs(existing, desired)
	if len(diff.Removed) > 0 {
		log.Debug("access list CIDRs not in published ip ranges are left untouched", zap.Strings("cidrs", diff.Removed))
	}

	report := &Report{
		ExistingCount: len(existing),
		Added:         make([]atlas.AccessListEntry, 0, len(diff.Added)),
		Removed:       diff.Removed,
		DryRun:        u.dryRun,
	}
	for _, cidr := range diff.Added {
		report.Added = append(report.Added, atlas.AccessListEntry{
			CIDRBlock: cidr,
			Comment:   req.Comment(),
		})
	}
	debugDump(log, "new access list records to be added", report.Added)

	switch {
	case u.dryRun:
		log.Info("dry-run, skipping access list update", zap.Int("added", len(report.Added)))
		report.TotalCount = report.ExistingCount + len(report.Added)
	case len(report.Added) == 0:
		log.Info("access list already contains every published ip range")
		report.TotalCount = report.ExistingCount
	default:
		total, err := u.accessList.AppendEntries(ctx, req.GroupID, report.Added)
		if err != nil {
			return nil, fmt.Errorf("appending access list entries: %w", err)
		}
		report.TotalCount = total
	}

	return report, nil
}

func debugDump(log *zap.Logger, msg string, v interface{}) {
	if !log.Core().Enabled(zap.DebugLevel) {
		return
	}

	out, err := yaml.Marshal(v)
	if err != nil {
		log.Debug(msg, zap.Error(err))
		return
	}
	log.Debug(msg + ":\n" + string(out))
}
