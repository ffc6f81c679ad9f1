package instantiate

import "errors"

// ErrDomain is returned when an instantiator variant is applied to a
// formula outside its expected fragment: Inf refuses any formula
// containing RN, Sup refuses any formula containing UN.
var ErrDomain = errors.New("instantiate: formula outside the instantiator's domain fragment")
