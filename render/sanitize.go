package render

import (
	"github.com/microcosm-cc/bluemonday"
	"github.com/pkg/errors"
)

// Sanitizer policy names accepted by PolicyByName.
const (
	PolicyNone   = "none"
	PolicyUGC    = "ugc"
	PolicyStrict = "strict"
)

// PolicyByName returns the bluemonday policy for name. "none" and "" return
// a nil Sanitizer, which leaves comment markup untouched.
func PolicyByName(name string) (Sanitizer, error) {
	switch name {
	case "", PolicyNone:
		return nil, nil
	case PolicyUGC:
		return bluemonday.UGCPolicy(), nil
	case PolicyStrict:
		return bluemonday.StrictPolicy(), nil
	}
	return nil, errors.Errorf("unknown sanitize policy %q", name)
}
