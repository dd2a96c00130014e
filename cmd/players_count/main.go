package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"parkour_scoreboard/counter"
	"parkour_scoreboard/logging"

	"github.com/pkg/errors"
)

const usage = `Incorrect format. Expected use:
	players_count [path/to/maps.json] [path/to/configurations.json] [path/to/scores.json] [event_id]
	players_count -routes [path/to/maps.json] [path/to/routes.json] [path/to/scores.json] [event_id]
	players_count [path/to/maps.json] [path/to/scores.json] [event_id]`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout io.Writer, stderr io.Writer) int {
	fs := flag.NewFlagSet("players_count", flag.ContinueOnError)
	fs.SetOutput(stderr)
	routes := fs.Bool("routes", false, "the intermediate table holds routes, whatever its file name")
	debug := fs.Bool("debug", false, "log debug output to stderr")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintln(stderr, usage)
		return 0
	}

	logging.BootstrapLogger(*debug)
	logging.Log.SetOutput(stderr)

	opt, ok := parseOptions(fs.Args(), *routes)
	if !ok {
		// Wrong arity reports and returns without failing.
		fmt.Fprintln(stderr, usage)
		return 0
	}
	logging.Log.Debugf("counting players with %+v", opt)

	_, err := counter.Run(stdout, opt)
	if err != nil {
		var ce *counter.Error
		if errors.As(err, &ce) {
			if ce.Err != nil {
				logging.Log.Debugf("%+v", ce.Err)
			}
			fmt.Fprintln(stderr, ce.Error())
			return ce.Code
		}
		fmt.Fprintln(stderr, err)
		return 1
	}

	return 0
}

func parseOptions(args []string, routes bool) (counter.Options, bool) {
	switch len(args) {
	case 3:
		if routes {
			return counter.Options{}, false
		}
		return counter.Options{
			MapsPath:   args[0],
			ScoresPath: args[1],
			EventID:    args[2],
		}, true

	case 4:
		link := counter.Configurations
		if routes || isRoutesFile(args[1]) {
			link = counter.Routes
		}
		return counter.Options{
			MapsPath:   args[0],
			LinksPath:  args[1],
			Link:       link,
			ScoresPath: args[2],
			EventID:    args[3],
		}, true
	}

	return counter.Options{}, false
}

// isRoutesFile tells the routes form from the configurations form by the
// intermediate file name.
func isRoutesFile(path string) bool {
	return strings.EqualFold(filepath.Base(path), "routes.json")
}
