// Package palette orders palettes so that neighboring colors are
// perceptually close.
package palette

import (
	"cmp"
	"math"
	"math/rand/v2"
	"slices"

	"github.com/mmuldo/hueorder/deltae"
	"github.com/mmuldo/hueorder/space"
)

// Shuffle permutes items in place with a Fisher-Yates shuffle and returns
// it.
func Shuffle[T any](items []T) []T {
	for i := len(items) - 1; i > 0; i-- {
		j := rand.IntN(i + 1)
		items[i], items[j] = items[j], items[i]
	}
	return items
}

// Reverse reverses items in place and returns it.
func Reverse[T any](items []T) []T {
	slices.Reverse(items)
	return items
}

// DiffLuminance is the luma of a minus the luma of b.
func DiffLuminance(a, b space.RGB) float64 {
	return space.Gray(a) - space.Gray(b)
}

// TSPGreedy orders items with the nearest-neighbor heuristic for the
// traveling salesman problem. The first item stays first; after that each
// step moves to the remaining item closest to the current one under diff,
// the earliest item winning ties. The distance is evaluated as
// diff(current, candidate), which matters for asymmetric formulas such as
// CIE94. items is not modified.
//
// This takes O(n²) evaluations of diff and is meant for palettes of up to a
// few hundred colors.
func TSPGreedy[T any](w *space.White, items []T, project func(T) space.RGB, diff deltae.Func) []T {
	if len(items) == 0 {
		return []T{}
	}
	Logger().Debug("greedy palette walk", "colors", len(items), "white", w.String())
	labs := Labs(w, items, project)
	remaining := make([]int, len(items)-1)
	for i := range remaining {
		remaining[i] = i + 1
	}
	result := make([]T, 1, len(items))
	result[0] = items[0]
	pivot := labs[0]
	for len(remaining) > 0 {
		best, bestDist := 0, math.Inf(1)
		for k, idx := range remaining {
			if d := diff(pivot, labs[idx]); d < bestDist {
				best, bestDist = k, d
			}
		}
		next := remaining[best]
		remaining = slices.Delete(remaining, best, best+1)
		result = append(result, items[next])
		pivot = labs[next]
	}
	return result
}

// SortColors returns a reordered copy of colors. project extracts the RGB of
// an item. Methods outside the enumeration fall back to DefaultMethod.
func SortColors[T any](w *space.White, colors []T, method Method, project func(T) space.RGB) []T {
	if !method.Valid() {
		Logger().Debug("unknown sort method, using default", "method", int(method), "default", DefaultMethod.String())
		method = DefaultMethod
	}
	result := slices.Clone(colors)
	if result == nil {
		result = []T{}
	}
	switch method {
	case Luminance:
		slices.SortStableFunc(result, func(a, b T) int {
			return cmp.Compare(space.Gray(project(a)), space.Gray(project(b)))
		})
		return result
	case Random:
		return Shuffle(result)
	case Reversion:
		return Reverse(result)
	}
	return TSPGreedy(w, result, project, method.DiffFunc())
}

// SortRGBs is SortColors for plain RGB colors.
func SortRGBs(w *space.White, rgbs []space.RGB, method Method) []space.RGB {
	return SortColors(w, rgbs, method, func(c space.RGB) space.RGB { return c })
}
