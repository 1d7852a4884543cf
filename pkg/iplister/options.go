package iplister

import "time"

type iplisterOption func(*IPLister)

// WithTimeout bounds a single GetIPs call. Non-positive values keep the default.
func WithTimeout(timeout time.Duration) iplisterOption {
	return func(i *IPLister) {
		if timeout > 0 {
			i.timeout = timeout
		}
	}
}
