package core

import (
	"errors"
	"io"
	"log"
	"log/slog"
	"net/http"
	_ "net/http/pprof"
	"os"
	"path"
	"runtime/trace"

	"github.com/encodeous/bestpath/state"
	"github.com/encodeous/tint"
	slogmulti "github.com/samber/slog-multi"
)

func setupDebugging() func() {
	stop := func() {}
	if state.DBG_trace {
		f, err := os.Create("trace.out")
		if err != nil {
			log.Fatal(err)
		}
		err = trace.Start(f)
		if err != nil {
			_ = f.Close()
			return stop
		}
		stop = func() {
			trace.Stop()
			_ = f.Close()
		}
		log.Println("Started tracing")
	}
	if state.DBG_debug {
		go func() {
			log.Println(http.ListenAndServe(state.DebugListenAddr, nil))
		}()
	}
	return stop
}

// NewLogger builds the console logger, optionally fanned out to a log file. The returned closer releases the file.
func NewLogger(name string, level slog.Level, logPath string) (*slog.Logger, io.Closer, error) {
	handlers := make([]slog.Handler, 0)
	handlers = append(handlers,
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:        level,
			AddSource:    false,
			CustomPrefix: name,
			ReplaceAttr: func(groups []string, attr slog.Attr) slog.Attr {
				if attr.Key == "time" {
					return slog.Attr{}
				}
				return attr
			},
		}))

	var closer io.Closer = nopCloser{}
	if logPath != "" {
		err := os.MkdirAll(path.Dir(logPath), 0700)
		if err != nil {
			return nil, nil, err
		}
		f, err := os.OpenFile(logPath, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0600)
		if err != nil {
			return nil, nil, err
		}
		handlers = append(handlers, slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
		closer = f
	}

	return slog.New(slogmulti.Fanout(handlers...)), closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// StepFunc is called after every advertisement with the decision and the table as it stands afterwards
type StepFunc func(adv state.Advertisement, d state.Decision, table []state.TableEntry)

// Replay feeds advertisements to the router in order
func Replay(r *Router, advs []state.Advertisement, step StepFunc) []state.Decision {
	decisions := make([]state.Decision, 0, len(advs))
	for _, adv := range advs {
		d := r.Receive(adv)
		decisions = append(decisions, d)
		if step != nil {
			step(adv, d, r.Snapshot())
		}
	}
	return decisions
}

// Result is the outcome of running a scenario
type Result struct {
	Decisions []state.Decision
	Table     []state.TableEntry
	// History holds the retained decisions of every destination that was advertised
	History map[state.Destination][]state.Decision
}

// Start validates the scenario, builds its router, replays every advertisement and tears the router down again.
func Start(cfg *state.ScenarioCfg, logLevel slog.Level, step StepFunc) (*Result, error) {
	stopDebugging := setupDebugging()
	defer stopDebugging()

	err := state.ScenarioValidator(cfg)
	if err != nil {
		return nil, err
	}

	logger, closer, err := NewLogger(cfg.Router.Name, logLevel, cfg.Router.LogPath)
	if err != nil {
		return nil, err
	}
	defer closer.Close()

	r, err := NewRouter(cfg.Router, logger)
	if err != nil {
		return nil, err
	}

	logger.Info("replaying advertisements", "count", len(cfg.Advertisements))
	decisions := Replay(r, cfg.Advertisements, step)
	res := &Result{
		Decisions: decisions,
		Table:     r.Snapshot(),
		History:   make(map[state.Destination][]state.Decision),
	}
	for _, d := range decisions {
		if _, ok := res.History[d.Destination]; !ok {
			res.History[d.Destination] = r.History(d.Destination)
		}
	}

	err = r.Close()
	if err != nil {
		return nil, errors.Join(errors.New("failed to stop router"), err)
	}
	logger.Info("replay complete", "routes", len(res.Table))
	return res, nil
}
