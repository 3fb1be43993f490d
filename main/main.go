package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"runtime/pprof"
	"strings"

	"github.com/phil-mansfield/gobubble/galaxy"
	"github.com/phil-mansfield/gobubble/geom"
	"github.com/phil-mansfield/gobubble/io"
	"github.com/phil-mansfield/gobubble/mcs"
	"github.com/phil-mansfield/gobubble/plot"
)

// FileGroup contains utility files for logging and writing profiles to.
type FileGroup struct {
	log, prof *os.File
}

// Close closes the files inside FileGroup.
func (fg *FileGroup) Close() {
	if fg.log != nil {
		err := fg.log.Close()
		if err != nil { log.Fatal(err.Error()) }
	}

	if fg.prof != nil {
		pprof.StopCPUProfile()
		err := fg.prof.Close()
		if err != nil { log.Fatal(err.Error()) }
	}
}

func main() {
	var (
		simulate, sweep, expansion, exampleConfig string
	)
	vars := map[string]*string{
		"Simulate":      &simulate,
		"Sweep":         &sweep,
		"Expansion":     &expansion,
		"ExampleConfig": &exampleConfig,
	}

	flag.StringVar(
		&simulate, "Simulate", "",
		"Configuration file for [Simulate] mode.",
	)
	flag.StringVar(
		&sweep, "Sweep", "",
		"Configuration file for [Sweep] mode.",
	)
	flag.StringVar(
		&expansion, "Expansion", "",
		"Configuration file for [Expansion] mode.",
	)
	flag.StringVar(
		&exampleConfig,
		"ExampleConfig", "", "Prints an example configuration file of the "+
			"specified type to stdout. Accepted arguments are 'Simulate', "+
			"'Sweep', and 'Expansion'.",
	)

	flag.Parse()

	modeName, err := getModeName(vars)
	if err != nil { log.Fatal(err.Error()) }

	switch modeName {
	case "Simulate":
		con, err := io.ReadSimulateConfig(simulate)
		if err != nil { log.Fatal(err.Error()) }
		simulateMain(con)

	case "Sweep":
		con, err := io.ReadSweepConfig(sweep)
		if err != nil { log.Fatal(err.Error()) }
		sweepMain(con)

	case "Expansion":
		con, err := io.ReadExpansionConfig(expansion)
		if err != nil { log.Fatal(err.Error()) }
		expansionMain(con)

	case "ExampleConfig":
		switch exampleConfig {
		case "Simulate":
			fmt.Println(io.ExampleSimulateFile)
		case "Sweep":
			fmt.Println(io.ExampleSweepFile)
		case "Expansion":
			fmt.Println(io.ExampleExpansionFile)
		default:
			log.Fatal(
				"Unrecognized 'ExampleConfig' argument. Only recognized " +
					"arguments are 'Simulate', 'Sweep', and 'Expansion'.",
			)
		}
	default:
		panic("Impossible")
	}
}

// getModeName returns the name of the mode and fails with a descriptive error
// if the user provided less or more than one mode flag.
func getModeName(vars map[string]*string) (string, error) {
	setNames := []string{}

	for name, varPtr := range vars {
		if *varPtr != "" { setNames = append(setNames, name) }
	}

	if len(setNames) == 0 {
		return "", fmt.Errorf("No flags have been set.")
	}

	if len(setNames) > 1 {
		return "", fmt.Errorf(
			"The following flags were set: %s, but gobubble "+
				"only accepts one flag at a time.",
			strings.Join(setNames, ", "),
		)
	}

	return setNames[0], nil
}

// setupIO points the standard logger at logFile and starts a CPU profile in
// profFile. Either may be empty.
func setupIO(logFile, profFile string) *FileGroup {
	var err error
	fg := new(FileGroup)

	if logFile != "" {
		fg.log, err = os.Create(logFile)
		if err != nil { log.Fatal(err.Error()) }
		log.SetOutput(fg.log)
	}

	if profFile != "" {
		fg.prof, err = os.Create(profFile)
		if err != nil { log.Fatal(err.Error()) }
		err = pprof.StartCPUProfile(fg.prof)
		if err != nil { log.Fatal(err.Error()) }
	}

	return fg
}

// simulateMain runs a single simulation and optionally draws its map.
func simulateMain(con *io.SimulateConfig) {
	fg := setupIO(con.LogFile, con.ProfileFile)
	defer fg.Close()

	opt, err := con.Options()
	if err != nil { log.Fatal(err.Error()) }

	logger := log.New(log.Writer(), "", log.Flags())
	src := rand.New(rand.NewSource(opt.Seed))
	res, err := mcs.Run(opt, src, logger)
	if err != nil { log.Fatal(err.Error()) }

	sum := &plot.Summary{
		Diameter: res.Bubble.Diameter, Count: opt.Count,
		Cases: opt.Cases, Result: res,
	}
	fmt.Println(sum.Text())

	if !con.ValidMap() { return }

	// The display points share no state with the simulation.
	mapSrc := rand.New(rand.NewSource(opt.Seed + 1))
	m, err := galaxy.NewMap(mapSrc, opt.Disc, res.Bubble, opt.Count)
	if err != nil { log.Fatal(err.Error()) }

	log.Printf("Writing map to %s", con.Map)
	plot.GalaxyMap(con.Map, m, sum)
	plot.Execute()
}

// sweepMain runs one simulation per row of a sweep table and prints a
// table of results.
func sweepMain(con *io.SweepConfig) {
	fg := setupIO(con.LogFile, con.ProfileFile)
	defer fg.Close()

	rows, err := io.ReadSweep(con)
	if err != nil { log.Fatal(err.Error()) }
	log.Printf("Read %d runs from %s", len(rows), con.Input)

	logger := log.New(log.Writer(), "", log.Flags())
	diameters := make([]float64, len(rows))
	results := make([]*mcs.Result, len(rows))

	fmt.Println(sweepHeader())
	for i, row := range rows {
		res, err := mcs.Run(con.Options(row), nil, logger)
		if err != nil {
			log.Fatalf("Row %d (diameter %g, count %d): %s",
				i, row.Diameter, row.Count, err.Error())
		}
		diameters[i], results[i] = res.Bubble.Diameter, res

		fmt.Println(sweepRow(row.Count, res))
	}

	if !con.ValidPlot() { return }
	log.Printf("Writing plot to %s", con.Plot)
	plot.SweepPlot(con.Plot, diameters, results)
	plot.Execute()
}

func sweepHeader() string {
	return fmt.Sprintf("# %8s %10s %10s %8s %8s",
		"diameter", "count", "adjusted", "single", "overall")
}

// sweepRow formats the result of one sweep run, where count is the nominal
// number of civilizations.
func sweepRow(count int, res *mcs.Result) string {
	return fmt.Sprintf("  %8g %10d %10d %8.4f %8.4f", res.Bubble.Diameter,
		count, res.Grid.AdjustedCount, res.SingleCase, res.Overall)
}

// expansionMain draws the expansion rings of an empire on a galaxy map.
func expansionMain(con *io.ExpansionConfig) {
	fg := setupIO(con.LogFile, con.ProfileFile)
	defer fg.Close()

	rings, err := galaxy.ExpansionRadii(
		con.MaxYears, con.Intervals, con.Speed, con.Unit,
	)
	if err != nil { log.Fatal(err.Error()) }

	radius := int(math.RoundToEven(geom.MilkyWayRadius / con.Unit))
	m := galaxy.NewExpansionMap(rand.New(rand.NewSource(con.Seed)), radius)
	for _, ring := range rings {
		log.Printf("Years = %d, radius = %.4g", ring.Years, ring.Radius)
	}

	log.Printf("Writing map to %s", con.Map)
	home := galaxy.Point{X: con.HomeX, Y: con.HomeY}
	plot.ExpansionMap(con.Map, m, home, rings, con.Speed)
	plot.Execute()
}
