package testutil

import "github.com/pkg/errors"

// errors.As from github.com/pkg/errors extended to also handle nil.
// First argument is gotErr, second is the expected wantErr.
func ErrorsAs(err error, target interface{}) bool {
	// nil vs nil comparison
	if err == target {
		return true
	}

	// errors.As panics on a nil target, so guard against it
	if err != nil && target == nil {
		return false
	}

	return errors.As(err, &target)
}
