package mcs

import (
	"io/ioutil"
	"log"
	"math/rand"

	"github.com/phil-mansfield/gobubble/geom"
)

// CaseResult is the outcome of a single trial.
type CaseResult struct {
	// Case is the 1-indexed trial number.
	Case int
	Tally
}

// Result is the outcome of a full run.
type Result struct {
	Bubble geom.Bubble
	Grid   *geom.Grid
	Cases  []CaseResult

	// TotalIsolated is the sum of Isolated over all cases.
	TotalIsolated int
	// SingleCase is the detection probability of the final case only.
	SingleCase float64
	// Overall is the detection probability over every case.
	Overall float64
}

// drawBatch is the most locations held in memory at once.
const drawBatch = 1 << 12

// Runner repeatedly scatters civilizations over a grid.
type Runner struct {
	g       *geom.Grid
	sampler *Sampler
	counter *Counter
	buf     []Location
	log     *log.Logger
}

// NewRunner returns a Runner which draws from src and writes one line per
// case to logger. A nil logger discards output.
func NewRunner(g *geom.Grid, src Source, logger *log.Logger) *Runner {
	n := g.AdjustedCount
	if n > drawBatch {
		n = drawBatch
	}
	return &Runner{
		g:       g,
		sampler: NewSampler(src, g),
		counter: NewCounter(g, g.AdjustedCount),
		buf:     make([]Location, n),
		log:     orDiscard(logger),
	}
}

// Case runs one trial: it places AdjustedCount civilizations and tallies
// the cells they land in. Locations are drawn drawBatch at a time.
func (r *Runner) Case(i int) CaseResult {
	r.counter.Reset()
	for left := r.g.AdjustedCount; left > 0; left -= len(r.buf) {
		buf := r.buf
		if left < len(buf) {
			buf = buf[:left]
		}
		r.sampler.Fill(buf)
		r.counter.AddAll(buf)
	}
	return CaseResult{Case: i, Tally: r.counter.Tally()}
}

// Run runs cases trials in order.
func (r *Runner) Run(cases int) []CaseResult {
	out := make([]CaseResult, cases)
	for i := range out {
		r.log.Printf("running case %d ...", i+1)
		out[i] = r.Case(i + 1)
		r.log.Printf("number cells with only one civ = %d", out[i].Isolated)
	}
	return out
}

// Run builds the grid described by opt and returns the detection
// probabilities. If src is nil, a math/rand source seeded with opt.Seed is
// used. No result is returned alongside an error.
func Run(opt Options, src Source, logger *log.Logger) (*Result, error) {
	logger = orDiscard(logger)
	if err := opt.Check(); err != nil {
		return nil, err
	}

	bubble, err := geom.NewBubble(opt.Diameter)
	if err != nil {
		return nil, err
	}
	g, err := geom.NewGrid(opt.Disc, bubble, opt.Count)
	if err != nil {
		return nil, err
	}

	logger.Printf("mcs vol / disc vol = %g", g.VolumeRatio)
	logger.Printf("volume-adjusted number of civilizations = %d",
		g.PreReductionCount)
	if g.Reduced {
		logger.Printf("vol-adjusted number of civilizations / 4 = %d",
			g.AdjustedCount)
	}

	// Fail before sampling so that nothing partial is produced.
	if _, _, err := Estimate(0, 0, opt.Cases, g.AdjustedCount); err != nil {
		return nil, err
	}

	if src == nil {
		src = rand.New(rand.NewSource(opt.Seed))
	}
	res := &Result{Bubble: bubble, Grid: g}
	res.Cases = NewRunner(g, src, logger).Run(opt.Cases)
	for _, c := range res.Cases {
		res.TotalIsolated += c.Isolated
	}

	last := res.Cases[len(res.Cases)-1].Isolated
	res.SingleCase, res.Overall, err = Estimate(
		last, res.TotalIsolated, opt.Cases, g.AdjustedCount,
	)
	if err != nil {
		return nil, err
	}
	return res, nil
}

func orDiscard(logger *log.Logger) *log.Logger {
	if logger == nil {
		return log.New(ioutil.Discard, "", 0)
	}
	return logger
}
