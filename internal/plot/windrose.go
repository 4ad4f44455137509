package plot

import (
	"fmt"
	"math"

	"github.com/ficus22/meteo-dashboard/internal/dataset"
	"github.com/ficus22/meteo-dashboard/internal/domain"
)

// sectorNames are the 16 compass sectors, 22.5° wide, centered on north.
var sectorNames = []string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

// speedBands are the lower bounds of the wind-speed bands in m/s. The last
// band is open-ended.
var speedBands = []float64{0, 2, 4, 6, 8}

// WindRoseSpec describes a polar frequency chart: Counts[band][sector] is
// the number of observations whose wind fell in that sector and band.
type WindRoseSpec struct {
	Kind    string   `json:"kind"`
	Title   string   `json:"title"`
	Sectors []string `json:"sectors"`
	Bands   []string `json:"bands"`
	Counts  [][]int  `json:"counts"`
}

// WindRose bins the table's (direction, speed) pairs into compass sectors
// and speed bands. An empty table produces an all-zero matrix.
func WindRose(sub *dataset.Table) WindRoseSpec {
	counts := make([][]int, len(speedBands))
	for i := range counts {
		counts[i] = make([]int, len(sectorNames))
	}

	dirs := sub.Column(domain.ColumnWindDirection)
	speeds := sub.Column(domain.ColumnWindSpeed)
	for i := range dirs {
		counts[bandIndex(speeds[i])][sectorIndex(dirs[i])]++
	}

	return WindRoseSpec{
		Kind:    KindWindRose,
		Title:   "Wind rose",
		Sectors: append([]string(nil), sectorNames...),
		Bands:   bandLabels(),
		Counts:  counts,
	}
}

// sectorIndex maps a direction in degrees to its compass sector. Directions
// are normalized into [0,360); the north sector spans [348.75, 11.25).
func sectorIndex(deg float64) int {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	idx := int(math.Mod(d+11.25, 360) / 22.5)
	if idx >= len(sectorNames) {
		idx = len(sectorNames) - 1
	}
	return idx
}

// bandIndex maps a wind speed to its band. Negative speeds (absent in real
// data) clamp to the first band.
func bandIndex(speed float64) int {
	for i := len(speedBands) - 1; i > 0; i-- {
		if speed >= speedBands[i] {
			return i
		}
	}
	return 0
}

func bandLabels() []string {
	labels := make([]string, len(speedBands))
	for i, lo := range speedBands {
		if i == len(speedBands)-1 {
			labels[i] = fmt.Sprintf("≥%g m/s", lo)
			continue
		}
		labels[i] = fmt.Sprintf("%g-%g m/s", lo, speedBands[i+1])
	}
	return labels
}
