package outcome

import (
	"context"
	"errors"
	"reflect"
)

// IsNil answers true for untyped nil and for nil pointers boxed in an
// interface. The foreign-value probes rely on this to reject nil *Result
// pointers before any method call can dereference them.
func IsNil(i any) bool {
	if i == nil {
		return true
	}
	v := reflect.ValueOf(i)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

// GetErrors flattens err into its accumulated parts. Joined errors unwrap
// to their full list, a plain error yields itself, nil yields nothing.
func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}
	return []error{err}
}

// IsCancellation reports whether err originates from a cancelled or expired
// context anywhere in its chain.
func IsCancellation(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
