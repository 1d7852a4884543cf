package reconcile

// Result holds the difference between an existing and a desired set of CIDR blocks.
// Removed is informational only; nothing deletes access list entries.
type Result struct {
	Added   []string
	Removed []string
}

// CIDRs computes desired - existing and existing - desired by exact string match.
// Added keeps the order of desired and Removed the order of existing; duplicates collapse.
func CIDRs(existing, desired []string) Result {
	existingSet := toSet(existing)
	desiredSet := toSet(desired)

	return Result{
		Added:   difference(desired, existingSet),
		Removed: difference(existing, desiredSet),
	}
}

func toSet(list []string) map[string]struct{} {
	out := make(map[string]struct{}, len(list))
	for _, v := range list {
		out[v] = struct{}{}
	}
	return out
}

func difference(list []string, exclude map[string]struct{}) []string {
	out := []string{}
	seen := map[string]struct{}{}

	for _, v := range list {
		if _, ok := exclude[v]; ok {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}

	return out
}
