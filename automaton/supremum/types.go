package supremum

import "fmt"

// Result is SUP's output (§4.7): either "infinite" (no finite best value
// within bound exists among accepting runs) or a finite best value.
type Result struct {
	Infinite bool
	Value    int
}

func (r Result) String() string {
	if r.Infinite {
		return "infinite"
	}
	return fmt.Sprintf("%d", r.Value)
}

// Infinite is the {infinite: true} result.
func Infinite() Result { return Result{Infinite: true} }

// Finite wraps a non-negative best value.
func Finite(v int) Result { return Result{Value: v} }
