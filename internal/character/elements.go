package character

import "fmt"

// Each element is strong against exactly one other, forming a cycle.
var elementCounters = map[string]string{
	"water":    "fire",
	"fire":     "wind",
	"wind":     "iron",
	"iron":     "electric",
	"electric": "water",
}

// Counters reports whether the source element has elemental advantage over
// the target element.
func Counters(source, target string) (bool, error) {
	beats, ok := elementCounters[source]
	if !ok {
		return false, fmt.Errorf("%q is not an element", source)
	}
	if _, ok := elementCounters[target]; !ok {
		return false, fmt.Errorf("%q is not an element", target)
	}
	return beats == target, nil
}
