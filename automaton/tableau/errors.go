package tableau

import "errors"

// ErrUnexpectedKind is an InvariantViolation (§7): fire() encountered a
// term kind it should never see at a fire-ready pseudo-node (Binary and
// Mult terms are always fully reduced away before firing).
var ErrUnexpectedKind = errors.New("tableau: unexpected term kind at fire time")
