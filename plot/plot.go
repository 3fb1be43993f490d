/*Package plot draws galaxy maps and sweep results with matplotlib.

Figures are queued by the functions in this package and only written when
Execute is called, which requires python and matplotlib to be installed.
*/
package plot

import (
	"fmt"

	plt "github.com/phil-mansfield/pyplot"

	"github.com/phil-mansfield/gobubble/galaxy"
	"github.com/phil-mansfield/gobubble/mcs"
)

const (
	// Above this many civilizations they are drawn as single pixels.
	pixelCivs  = 2500
	ringPoints = 256
)

// Execute writes every queued figure.
func Execute() { plt.Execute() }

// Summary is the text printed on a galaxy map.
type Summary struct {
	Diameter float64
	Count    int
	Cases    int
	Result   *mcs.Result
}

// Text returns the lines printed above a galaxy map. Probabilities are left
// out if there is no Result.
func (sum *Summary) Text() string {
	text := fmt.Sprintf(
		"Diameter of radio bubbles = %g LY\n"+
			"Number of advanced civilizations = %d",
		sum.Diameter, sum.Count,
	)
	if sum.Result == nil {
		return text
	}
	return text + fmt.Sprintf(
		"\nSingle case probability of detection = %.4f\n"+
			"Probability of detection for %d case(s) = %.4f",
		sum.Result.SingleCase, sum.Cases, sum.Result.Overall,
	)
}

// civMarker returns the marker used for count civilizations.
func civMarker(count int) string {
	if count > pixelCivs {
		return ","
	}
	return "+"
}

// GalaxyMap queues a map of the galaxy with the civilizations of m drawn in
// red, to be saved as fname.
func GalaxyMap(fname string, m *galaxy.Map, sum *Summary) {
	plt.Figure(plt.FigSize(10, 8))

	plotStars(m.Stars)
	hx, hy := split(m.Haze)
	plt.Plot(hx, hy, ",", plt.C("DimGray"))

	cx, cy := split(m.Civilizations)
	plt.Plot(cx, cy, civMarker(sum.Count), plt.C("red"))

	plt.Title(sum.Text())
	plt.XLabel(fmt.Sprintf(
		"DISPLAYING %d CIVILIZATIONS (RED), SHOWING FINAL SIMULATION",
		len(m.Civilizations),
	), plt.FontSize(11))

	setSquareLim(float64(m.Radius) * 1.3)
	plt.SaveFig(fname)
}

// plotStars draws spiral arm stars grouped by marker size.
func plotStars(stars []galaxy.Star) {
	groups := [3][]galaxy.Point{}
	for _, s := range stars {
		groups[s.Size] = append(groups[s.Size], s.Point)
	}

	markers := [3]string{",", ".", "o"}
	for size, pts := range groups {
		if len(pts) == 0 {
			continue
		}
		xs, ys := split(pts)
		plt.Plot(xs, ys, markers[size], plt.C("DarkSlateGray"))
	}
}

// SweepPlot queues a plot of detection probability against bubble diameter.
func SweepPlot(fname string, diameters []float64, results []*mcs.Result) {
	single := make([]float64, len(results))
	overall := make([]float64, len(results))
	for i, res := range results {
		single[i], overall[i] = res.SingleCase, res.Overall
	}

	plt.Figure()
	plt.Plot(diameters, overall, "o-", plt.LW(2), plt.C("DarkSlateBlue"))
	plt.Plot(diameters, single, "x", plt.C("DeepPink"))
	plt.XLabel(`Bubble diameter [LY]`, plt.FontSize(16))
	plt.YLabel(`Probability of detection`, plt.FontSize(16))
	plt.YLim(0, 1)
	plt.Grid(plt.Axis("y"))
	plt.SaveFig(fname)
}

// ExpansionMap queues a map of the galaxy with an empire's expansion rings
// centered on home.
func ExpansionMap(
	fname string, m *galaxy.Map, home galaxy.Point, rings []galaxy.Ring,
	speed float64,
) {
	plt.Figure(plt.FigSize(12, 8))

	plotStars(m.Stars)
	hx, hy := split(m.Haze)
	plt.Plot(hx, hy, ",", plt.C("DimGray"))

	for _, ring := range rings {
		xs, ys := split(galaxy.Circle(home, ring.Radius, ringPoints))
		plt.Plot(xs, ys, plt.LW(2), plt.C("red"))
	}
	plt.Plot([]float64{home.X}, []float64{home.Y}, "o", plt.C("red"))
	plt.Title(expansionTitle(rings, speed))

	setSquareLim(float64(m.Radius) * 1.3)
	plt.SaveFig(fname)
}

// expansionTitle describes the rings drawn on an expansion map.
func expansionTitle(rings []galaxy.Ring, speed float64) string {
	increment, years := 0, 0
	if len(rings) > 1 {
		increment = rings[1].Years - rings[0].Years
	}
	if len(rings) > 0 {
		years = rings[len(rings)-1].Years
	}
	return fmt.Sprintf(
		"Increment = %d years, Velocity as fraction of Light = %g\n"+
			"Years = %d", increment, speed, years,
	)
}

func setSquareLim(r float64) {
	plt.XLim(-r, +r)
	plt.YLim(-r, +r)
}

func split(pts []galaxy.Point) (xs, ys []float64) {
	xs, ys = make([]float64, len(pts)), make([]float64, len(pts))
	for i := range pts {
		xs[i], ys[i] = pts[i].X, pts[i].Y
	}
	return xs, ys
}
