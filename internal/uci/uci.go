// Package uci is the Universal Chess Interface front-end: it parses the
// UCI text protocol, drives the search, and formats its results back as
// UCI lines. It is ambient plumbing around the search-and-evaluation
// core, not itself part of the tightly-coupled subsystems that core
// covers.
package uci

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/umbrachess/umbra/internal/config"
	"github.com/umbrachess/umbra/internal/logging"
	"github.com/umbrachess/umbra/internal/position"
	"github.com/umbrachess/umbra/internal/search"
	"github.com/umbrachess/umbra/internal/transpositiontable"
	. "github.com/umbrachess/umbra/internal/types"
	"github.com/umbrachess/umbra/internal/version"
)

// safetyMargin is subtracted from a computed per-move budget so the
// search's own polling overhead never overshoots the caller's clock.
const safetyMargin = 30 * time.Millisecond

// Engine holds one UCI session's state: the current position, the
// process-wide transposition table, and the searcher that owns it.
type Engine struct {
	pos      position.Position
	tt       *transpositiontable.Table
	searcher *search.Searcher
	out      io.Writer
	log      *fmtLogger
}

// fmtLogger is a minimal adapter so uci.go doesn't need to know
// op/go-logging's call shape at every log site.
type fmtLogger struct{ enabled bool }

func (l *fmtLogger) line(dir, s string) {
	if l.enabled {
		logging.GetUciLog().Debugf("%s %s", dir, s)
	}
}

// NewEngine builds an Engine that writes UCI output to out.
func NewEngine(out io.Writer) *Engine {
	config.Setup()
	tt := transpositiontable.New(config.Settings.Search.HashSizeMB)
	return &Engine{
		pos:      position.StartPosition(),
		tt:       tt,
		searcher: search.NewSearcher(tt),
		out:      out,
		log:      &fmtLogger{enabled: true},
	}
}

// Loop reads UCI commands from in until "quit" or end of input, and
// returns the process exit code (0 on clean shutdown).
func (e *Engine) Loop(in io.Reader) int {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		e.log.line("<", line)
		if quit := e.dispatch(line); quit {
			return 0
		}
	}
	return 0
}

func (e *Engine) send(format string, a ...interface{}) {
	s := fmt.Sprintf(format, a...)
	e.log.line(">", s)
	fmt.Fprintln(e.out, s)
}

func (e *Engine) dispatch(line string) (quit bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	switch fields[0] {
	case "uci":
		e.send("id name %s %s", version.Name, version.Version)
		e.send("id author %s", version.Author)
		e.send("option name Hash type spin default %d min 1 max 4096", config.Settings.Search.HashSizeMB)
		e.send("uciok")
	case "isready":
		e.send("readyok")
	case "ucinewgame":
		e.tt.Clear()
		e.pos = position.StartPosition()
	case "setoption":
		e.handleSetOption(fields[1:])
	case "position":
		e.handlePosition(fields[1:])
	case "go":
		e.handleGo(fields[1:])
	case "quit":
		return true
	}
	return false
}

func (e *Engine) handleSetOption(args []string) {
	// name Hash value <MB>
	var name, value string
	mode := ""
	for _, a := range args {
		switch a {
		case "name":
			mode = "name"
			continue
		case "value":
			mode = "value"
			continue
		}
		switch mode {
		case "name":
			if name != "" {
				name += " "
			}
			name += a
		case "value":
			if value != "" {
				value += " "
			}
			value += a
		}
	}
	if strings.EqualFold(name, "Hash") {
		if mb, err := strconv.Atoi(value); err == nil {
			config.SetHashSizeMB(mb)
			e.tt = transpositiontable.New(mb)
			e.searcher = search.NewSearcher(e.tt)
		}
	}
}

func (e *Engine) handlePosition(args []string) {
	if len(args) == 0 {
		return
	}
	idx := 0
	var p *position.Position
	var err error
	switch args[0] {
	case "startpos":
		sp := position.StartPosition()
		p = &sp
		idx = 1
	case "fen":
		idx = 1
		fenFields := []string{}
		for idx < len(args) && args[idx] != "moves" {
			fenFields = append(fenFields, args[idx])
			idx++
		}
		p, err = position.NewPosition(strings.Join(fenFields, " "))
		if err != nil {
			return
		}
	default:
		return
	}

	if idx < len(args) && args[idx] == "moves" {
		idx++
		for ; idx < len(args); idx++ {
			m, ok := MoveFromUCI(p, args[idx])
			if !ok {
				break
			}
			next := p.MakeMove(m)
			p = &next
		}
	}
	e.pos = *p
}

func (e *Engine) handleGo(args []string) {
	var wtime, winc, btime, binc, movestogo, movetime, depth int
	for i := 0; i < len(args); i++ {
		val := func() int {
			if i+1 < len(args) {
				n, _ := strconv.Atoi(args[i+1])
				return n
			}
			return 0
		}
		switch args[i] {
		case "wtime":
			wtime = val()
			i++
		case "winc":
			winc = val()
			i++
		case "btime":
			btime = val()
			i++
		case "binc":
			binc = val()
			i++
		case "movestogo":
			movestogo = val()
			i++
		case "movetime":
			movetime = val()
			i++
		case "depth":
			depth = val()
			i++
		}
	}

	deadline := e.computeDeadline(wtime, winc, btime, binc, movestogo, movetime)
	limits := search.Limits{Deadline: deadline, MaxDepth: depth}

	result := e.searcher.Run(e.pos, limits, func(r search.Result) {
		e.send("info depth %d score %s nodes %d pv %s", r.Depth, formatScore(r.Score), r.Nodes, formatPV(r.PV))
	})

	if result.BestMove == MoveNone {
		e.send("bestmove 0000")
		return
	}
	e.send("bestmove %s", result.BestMove.String())
}

// computeDeadline converts remote clock parameters into a wall-clock
// absolute deadline. This conversion is ambient UCI-layer plumbing; the
// search core only consumes the resulting deadline.
func (e *Engine) computeDeadline(wtime, winc, btime, binc, movestogo, movetime int) time.Time {
	if movetime > 0 {
		return time.Now().Add(time.Duration(movetime)*time.Millisecond - safetyMargin)
	}

	myTime, myInc := wtime, winc
	if e.pos.SideToMove() == Black {
		myTime, myInc = btime, binc
	}
	if myTime <= 0 {
		return time.Time{}
	}

	slices := movestogo
	if slices <= 0 {
		slices = 30
	}
	budget := myTime/slices + myInc
	if budget <= 0 {
		budget = 50
	}
	return time.Now().Add(time.Duration(budget)*time.Millisecond - safetyMargin)
}

func formatScore(v Value) string {
	if IsMateScore(v) {
		var n int
		if v > 0 {
			n = (int(Mate-v) + 1) / 2
		} else {
			n = -((int(Mate+v) + 1) / 2)
		}
		return fmt.Sprintf("mate %d", n)
	}
	return fmt.Sprintf("cp %d", v)
}

func formatPV(pv []Move) string {
	parts := make([]string, len(pv))
	for i, m := range pv {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}
