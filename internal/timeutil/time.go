package timeutil

import "time"

// Radio 47 broadcasts from Kenya, which has no DST.
func LocationEAT() *time.Location {
	return time.FixedZone("Africa/Nairobi", 3*60*60)
}
