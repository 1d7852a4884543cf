package updater

import "go.uber.org/zap"

type updaterOption func(*Updater)

func WithLogger(log *zap.Logger) updaterOption {
	return func(u *Updater) {
		u.log = log
	}
}

// WithDryRun computes the update without writing to the access list.
func WithDryRun(dryRun bool) updaterOption {
	return func(u *Updater) {
		u.dryRun = dryRun
	}
}
