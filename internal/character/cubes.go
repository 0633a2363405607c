package character

import "fmt"

// CubeLevels holds the percentage a harmony cube grants at levels 0 through 3.
type CubeLevels [4]float64

// Cube reference values. Resilience is keyed "reload" after the stat it
// actually moves.
var cubeTable = map[string]CubeLevels{
	"reload":    {0, 14.84, 22.27, 29.69},
	"bastion":   {0, 0.1, 0.2, 0.3},
	"adjutant":  {0, 1.06, 1.59, 2.12},
	"wingman":   {0, 14.84, 22.27, 29.69},
	"onslaught": {0, 2.54, 3.81, 5.09},
	"assault":   {0, 2.54, 3.81, 5.09},
}

// CubeValue returns the named cube's percentage at the given level.
func CubeValue(name string, level int) (float64, error) {
	levels, ok := cubeTable[name]
	if !ok {
		return 0, fmt.Errorf("unknown cube %q", name)
	}
	if level < 0 || level >= len(levels) {
		return 0, fmt.Errorf("cube level %d out of range", level)
	}
	return levels[level], nil
}
