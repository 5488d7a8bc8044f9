// Command umbra is a UCI chess engine.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/umbrachess/umbra/internal/config"
	"github.com/umbrachess/umbra/internal/movegen"
	"github.com/umbrachess/umbra/internal/position"
	"github.com/umbrachess/umbra/internal/uci"
	"github.com/umbrachess/umbra/internal/version"
)

var out = message.NewPrinter(language.English)

func main() {
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "./umbra.toml", "path to configuration settings file")
	perft := flag.Int("perft", 0, "runs perft on the given position to the given depth and exits\nuse -fen to provide a position other than the start position")
	fen := flag.String("fen", position.StartFen, "fen for -perft")
	cpuprofile := flag.Bool("cpuprofile", false, "writes a CPU profile (cpu.pprof) for the duration of the run")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	if *cpuprofile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	config.ConfFile = *configFile
	config.Setup()

	if *perft != 0 {
		runPerft(*fen, *perft)
		return
	}

	e := uci.NewEngine(os.Stdout)
	os.Exit(e.Loop(os.Stdin))
}

func runPerft(fen string, depth int) {
	pos, err := position.NewPosition(fen)
	if err != nil {
		fmt.Println(err)
		return
	}
	for d := 1; d <= depth; d++ {
		nodes := movegen.Perft(*pos, d)
		out.Printf("perft %d : %d\n", d, nodes)
	}
}

func printVersionInfo() {
	out.Printf("%s %s\n", version.Name, version.Version)
	out.Println("Environment:")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	cwd, _ := os.Getwd()
	out.Printf("  Working directory: %s\n", cwd)
}
