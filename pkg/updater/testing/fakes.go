package testing

import (
	"context"

	"github.com/kanopy-platform/mawaws/pkg/atlas"
)

type FakeRangeProvider struct {
	IPs   []string
	Err   error
	Calls int
}

func (f *FakeRangeProvider) Fetch(ctx context.Context, service, region string) ([]string, error) {
	f.Calls++
	if f.Err != nil {
		return nil, f.Err
	}
	return f.IPs, nil
}

type FakeAccessListClient struct {
	Entries    []atlas.AccessListEntry
	GetErr     error
	AppendErr  error
	TotalCount int

	GetCalls    int
	AppendCalls int
	Appended    []atlas.AccessListEntry
}

func (f *FakeAccessListClient) GetAccessList(ctx context.Context, groupID string) ([]atlas.AccessListEntry, error) {
	f.GetCalls++
	if f.GetErr != nil {
		return nil, f.GetErr
	}
	return f.Entries, nil
}

func (f *FakeAccessListClient) AppendEntries(ctx context.Context, groupID string, entries []atlas.AccessListEntry) (int, error) {
	f.AppendCalls++
	if f.AppendErr != nil {
		return 0, f.AppendErr
	}
	f.Appended = append(f.Appended, entries...)
	return f.TotalCount, nil
}
