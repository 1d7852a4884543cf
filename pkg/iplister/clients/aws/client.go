package aws

import (
	"context"
	"net/http"
	"time"

	"github.com/kanopy-platform/mawaws/pkg/iplister"
	"github.com/kanopy-platform/mawaws/pkg/iplister/decoder/awsipranges"
	"github.com/kanopy-platform/mawaws/pkg/iplister/reader/file"
	httpreader "github.com/kanopy-platform/mawaws/pkg/iplister/reader/http"
)

const IPRangesURL string = "https://ip-ranges.amazonaws.com/ip-ranges.json"

// Provider fetches the published AWS ip ranges, from IPRangesURL unless overridden.
type Provider struct {
	url      string
	filename string
	timeout  time.Duration
	client   *http.Client
}

func New(opts ...ProviderOption) *Provider {
	p := &Provider{
		url:     IPRangesURL,
		timeout: time.Minute,
		client:  http.DefaultClient,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

func (p *Provider) Fetch(ctx context.Context, service, region string) ([]string, error) {
	return p.lister(service, region).GetIPs(ctx)
}

func (p *Provider) lister(service, region string) *iplister.IPLister {
	var reader iplister.Reader = httpreader.New(p.url, httpreader.WithClient(p.client))
	if p.filename != "" {
		reader = file.New(p.filename)
	}

	return iplister.New(reader, awsipranges.New(service, region), iplister.WithTimeout(p.timeout))
}
