package cli

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/kanopy-platform/mawaws/pkg/atlas"
	mwerrors "github.com/kanopy-platform/mawaws/pkg/errors"
	"github.com/kanopy-platform/mawaws/pkg/iplister/clients/aws"
	"github.com/kanopy-platform/mawaws/pkg/updater"
)

func (c *RootCommand) dispatch(ctx context.Context, out io.Writer, cmd command) error {
	if ctx == nil {
		ctx = context.Background()
	}

	switch cmd := cmd.(type) {
	case listGroupsCommand:
		return c.listGroups(ctx, out, cmd)
	case updateWhitelistCommand:
		return c.updateWhitelist(ctx, out, cmd)
	default:
		return fmt.Errorf("unsupported command %T", cmd)
	}
}

func (c *RootCommand) listGroups(ctx context.Context, out io.Writer, cmd listGroupsCommand) error {
	c.log.Info("listing MongoDB Atlas groups (AKA projects)")

	groups, err := newAtlasClient(cmd.atlas).ListGroups(ctx)
	if err != nil {
		return fmt.Errorf("failed to list groups: %w", err)
	}
	c.log.Debug("full group list response", zap.Any("groups", groups))

	fmt.Fprintln(out, "Available groups:")
	for _, g := range groups {
		fmt.Fprintf(out, "  %s: %s\n", g.ID, g.Name)
	}

	return nil
}

func (c *RootCommand) updateWhitelist(ctx context.Context, out io.Writer, cmd updateWhitelistCommand) error {
	c.log.Info(fmt.Sprintf("using AWS region '%s' and service '%s'", cmd.request.Region, cmd.request.Service))

	opts := []aws.ProviderOption{
		aws.WithURL(cmd.ipRangesURL),
		aws.WithTimeout(cmd.atlas.timeout),
	}
	if cmd.ipRangesFile != "" {
		opts = append(opts, aws.WithFile(cmd.ipRangesFile))
	}

	u := updater.New(
		aws.New(opts...),
		newAtlasClient(cmd.atlas),
		updater.WithLogger(c.log),
		updater.WithDryRun(cmd.dryRun),
	)

	report, err := u.Update(ctx, cmd.request)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%d item(s) to be added\n", len(report.Added))
	if report.DryRun {
		for _, e := range report.Added {
			fmt.Fprintf(out, "  %s (%s)\n", e.CIDRBlock, e.Comment)
		}
		fmt.Fprintf(out, "%d records would exist after the update\n", report.TotalCount)
		return nil
	}
	fmt.Fprintf(out, "%d records exist now\n", report.TotalCount)

	return nil
}

func newAtlasClient(o atlasOptions) *atlas.Client {
	return atlas.New(o.apiURL, atlas.WithBasicAuth(o.user, o.key), atlas.WithTimeout(o.timeout))
}

// fail logs the full error detail at debug level and hands the error back to cobra.
func (c *RootCommand) fail(err error) error {
	if err == nil {
		return nil
	}

	c.log.Debug("something broke, more details to follow",
		zap.String("kind", mwerrors.KindOf(err).String()),
		zap.Error(err),
	)
	return err
}
