package shrink

import "github.com/pkg/errors"

// Contract violations (mismatched parallel lists, bad raster dimensions) can
// surface several layers down inside target composition. Threading error
// returns through every little geometric helper would add a ton of noise for
// conditions that are always caller bugs. Instead, we panic with a typed
// error, and the exported entry points recover to convert it into an
// ordinary error return.

type contractError error

// Panic with a contractError.
func fatalf(format string, args ...interface{}) {
	panic(contractError(errors.Errorf(format, args...)))
}

func handleContractPanic(r interface{}, err *error) {
	if r == nil {
		return
	}
	if cerr, ok := r.(contractError); ok {
		*err = cerr
		return
	}
	panic(r)
}
