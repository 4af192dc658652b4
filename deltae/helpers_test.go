package deltae

import (
	"math"

	"github.com/mmuldo/hueorder/numeric"
)

func cosd(deg float64) float64 { return math.Cos(numeric.Deg2Rad(deg)) }
