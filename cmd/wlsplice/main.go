package main

import (
	"fmt"
	"io"
	"os"

	"github.com/ddkwork/golibrary/mylog"
	"github.com/ogier/pflag"

	"github.com/jeffwilliams/wiredlist/internal/circ"
	adebug "github.com/jeffwilliams/wiredlist/internal/debug"
	"github.com/jeffwilliams/wiredlist/internal/script"
)

var (
	optScript         = pflag.StringP("script", "s", "", "Splice script to run. May also be given as the only argument")
	optFormat         = pflag.StringP("format", "f", "", "Output format, text or csv. Overrides the settings file")
	optHistory        = pflag.IntP("history", "n", 0, "Number of list snapshots to print when a step fails. Overrides the settings file")
	optDebugStdout    = pflag.BoolP("dbg", "b", false, "Print debug logs to stdout")
	optDumpLog        = pflag.Bool("dump-log", false, "Print the debug log to stderr on exit")
	optProfile        = pflag.StringP("profile", "p", "", "Profile the run: cpu or heap. The profile file location is printed to stdout.")
	optSettings       = pflag.String("settings", "", "Settings file to use instead of the one in the config directory")
	optSampleSettings = pflag.Bool("sample-settings", false, "Print a sample settings file and exit")
)

var debugLog = adebug.New(100)

func main() {
	mylog.Call(func() { run() })
}

func run() {
	parseAndValidateOptions()

	if *optSampleSettings {
		fmt.Print(GenerateSampleSettings())
		return
	}

	if *optProfile != "" {
		mylog.Check(startProfiling(ProfileCategory(*optProfile)))
		defer stopProfiling()
	}
	if *optDumpLog {
		defer dumpLog(os.Stderr)
	}

	LoadSettings()
	initDebugging()

	path := *optScript
	if path == "" {
		path = pflag.Arg(0)
	}
	s := mylog.Check2(script.LoadFile(path))
	log(LogCatgScript, "loaded %s: %d lists, %d steps\n", path, len(s.Lists), len(s.Steps))
	mylog.Check(s.Validate())

	mylog.Check(runScript(os.Stdout, os.Stderr, s, settings))
}

func parseAndValidateOptions() {
	pflag.Usage = usage
	pflag.Parse()

	if *optSampleSettings {
		return
	}
	if *optScript == "" && pflag.NArg() != 1 {
		usage()
		os.Exit(1)
	}
	if *optScript != "" && pflag.NArg() > 0 {
		fmt.Printf("A script cannot be given as an argument when the option --script is used\n")
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stdout, "Usage: %s [options] [script.toml]\n", os.Args[0])
	pflag.PrintDefaults()
}

// runScript runs every step of s, writing the lists after each one to out.
// When a step fails the most recent snapshots are written to errOut.
func runScript(out, errOut io.Writer, s *script.Script, settings Settings) error {
	o, err := newOutput(out, settings.Output)
	if err != nil {
		return err
	}

	history := circ.New[script.Snapshot](settings.History.Size)
	r := script.NewRunner(s)

	start := script.Take(-1, script.Step{Op: "start"}, r.Lists())
	history.Add(start)
	if err := o.Write(start); err != nil {
		return err
	}

	var writeErr error
	r.Observe(func(i int, st script.Step, lists *script.Registry) {
		snap := script.Take(i, st, lists)
		history.Add(snap)
		if writeErr == nil {
			writeErr = o.Write(snap)
		}
	})

	runErr := r.Run(s.Steps)
	if err := o.Flush(); err != nil {
		return err
	}
	if writeErr != nil {
		return writeErr
	}
	if runErr != nil {
		log(LogCatgScript, "%v\n", runErr)
		fmt.Fprintf(errOut, "%v\nlast %d states:\n", runErr, history.Len())
		history.Each(func(snap script.Snapshot) {
			fmt.Fprint(errOut, snap)
		})
		return runErr
	}
	return nil
}

func log(category, message string, args ...interface{}) {
	if *optDebugStdout {
		fmt.Printf(message, args...)
	}
	debugLog.Addf(category, message, args...)
}
