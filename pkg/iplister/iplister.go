package iplister

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	mwerrors "github.com/kanopy-platform/mawaws/pkg/errors"
)

const (
	defaultTimeout = time.Minute
)

type IPLister struct {
	reader  Reader
	decoder Decoder
	timeout time.Duration
}

func New(reader Reader, decoder Decoder, opts ...iplisterOption) *IPLister {
	i := &IPLister{
		reader:  reader,
		decoder: decoder,
		timeout: defaultTimeout,
	}

	for _, opt := range opts {
		opt(i)
	}

	return i
}

// GetIPs reads and decodes the configured source. Every failure is a ProviderError.
func (i *IPLister) GetIPs(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, i.timeout)
	defer cancel()

	reader, err := i.reader.Data(ctx)
	if err != nil {
		return nil, mwerrors.NewProviderError(fmt.Errorf("reading ip ranges: %w", err))
	}
	defer reader.Close()

	ipList, err := i.decoder.Decode(reader)
	if err != nil {
		return nil, mwerrors.NewProviderError(fmt.Errorf("decoding ip ranges: %w", err))
	}

	if err := ValidateCIDRs(ipList); err != nil {
		return nil, mwerrors.NewProviderError(err)
	}

	return ipList, nil
}

func ValidateCIDRs(list []string) error {
	errs := []error{}

	for _, cidr := range list {
		_, _, err := net.ParseCIDR(cidr)
		if err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
