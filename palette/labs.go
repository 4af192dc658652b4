package palette

import (
	"github.com/kovidgoyal/go-parallel"

	"github.com/mmuldo/hueorder/space"
)

// Below this many colors the conversion is not worth spreading over
// goroutines.
const parallelThreshold = 512

// Labs converts every item to CIELAB relative to w, using project to get
// at its RGB.
func Labs[T any](w *space.White, items []T, project func(T) space.RGB) []space.Lab {
	labs := make([]space.Lab, len(items))
	convert := func(start, limit int) {
		for i := start; i < limit; i++ {
			labs[i] = w.RGBToLab(project(items[i]))
		}
	}
	if len(items) < parallelThreshold {
		convert(0, len(items))
		return labs
	}
	if err := parallel.Run_in_parallel_over_range(0, convert, 0, len(items)); err != nil {
		Logger().Warn("parallel Lab conversion failed, retrying serially", "colors", len(items), "err", err)
		convert(0, len(items))
	}
	return labs
}
