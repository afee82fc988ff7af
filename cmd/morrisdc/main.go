// Command morrisdc reads a line-based STNU description from a file and
// reports whether the network is Dynamically Controllable. It is a
// thin external collaborator around package dc — file formats, flags,
// and logging live here, never in the core.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/katalvlaran/morrisdc/dc"
	"github.com/katalvlaran/morrisdc/network"
)

func main() {
	file := flag.String("file", "", "path to a line-based network file (required)")
	verbose := flag.Bool("verbose", false, "log per-round solver progress")
	configPath := flag.String("config", "", "optional YAML file overriding -file/-verbose")
	flag.Parse()

	if *configPath != "" {
		overrides, err := loadConfigFile(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "morrisdc: %v\n", err)
			os.Exit(2)
		}
		if overrides.File != "" {
			*file = overrides.File
		}
		if overrides.Verbose {
			*verbose = true
		}
	}

	setupLogging(*verbose)

	if *file == "" {
		fmt.Fprintln(os.Stderr, "morrisdc: -file is required")
		os.Exit(2)
	}

	net, err := parseNetworkFile(*file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "morrisdc: %v\n", err)
		os.Exit(1)
	}

	result, err := decide(net, *verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "morrisdc: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(result)
}

func decide(net *network.Network, verbose bool) (dc.Result, error) {
	if !verbose {
		return dc.DecideDC(net)
	}

	result, trace, err := dc.Solve(context.Background(), net, dc.WithTrace())
	for _, round := range trace {
		log.Info().
			Int("round", round.Round).
			Int("lower_case_edges", round.LowerCaseEdges).
			Int("new_edges", round.NewEdges).
			Msg("solver round complete")
	}

	return result, err
}

func setupLogging(verbose bool) {
	level := zerolog.Disabled
	if verbose {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger()
}
