package awsipranges

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Structs for marshalling in data from https://ip-ranges.amazonaws.com/ip-ranges.json
type (
	awsPrefix struct {
		IPPrefix           string `json:"ip_prefix"`
		Region             string `json:"region"`
		Service            string `json:"service"`
		NetworkBorderGroup string `json:"network_border_group"`
	}

	awsIPRanges struct {
		SyncToken  string      `json:"syncToken"`
		CreateDate string      `json:"createDate"`
		Prefixes   []awsPrefix `json:"prefixes"`
	}
)

// AWSIPRanges selects the IPv4 prefixes published for one service in one region.
type AWSIPRanges struct {
	service string
	region  string
}

func New(service, region string) *AWSIPRanges {
	return &AWSIPRanges{
		service: service,
		region:  region,
	}
}

func (a *AWSIPRanges) Decode(data io.ReadCloser) ([]string, error) {
	var resp awsIPRanges

	err := json.NewDecoder(data).Decode(&resp)
	if err != nil {
		return nil, err
	}

	if resp.Prefixes == nil {
		return nil, fmt.Errorf("ip ranges document has no prefixes")
	}

	ips := resp.extractCIDRs(a.service, a.region)
	if len(ips) == 0 {
		return nil, fmt.Errorf("no ip ranges found for service %q in region %q (syncToken %s)", a.service, a.region, resp.SyncToken)
	}

	return ips, nil
}

func (r *awsIPRanges) extractCIDRs(service, region string) []string {
	res := []string{}
	seen := map[string]bool{}

	for _, p := range r.Prefixes {
		if !strings.EqualFold(p.Service, service) || !strings.EqualFold(p.Region, region) {
			continue
		}
		if seen[p.IPPrefix] {
			continue
		}
		seen[p.IPPrefix] = true
		res = append(res, p.IPPrefix)
	}

	return res
}
