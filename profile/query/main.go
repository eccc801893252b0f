// Profiling:
// go build ./profile/query
// RETSU_PROFILE_MODE=cpu ./query
// go tool pprof -http=":8000" -nodefraction=0.001 ./query cpu.pprof

package main

import (
	"os"

	"github.com/edwinsyarief/retsu"
	"github.com/edwinsyarief/retsu/internal/envconfig"
	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
)

type comp1 struct {
	V int64
	W int64
}

type comp2 struct {
	V int64
	W int64
}

type comp3 struct {
	V int64
	W int64
}

type comp4 struct {
	V int64
	W int64
}

type comp5 struct {
	V int64
	W int64
}

func main() {
	cfg, err := envconfig.Load()
	if err != nil {
		logrus.WithError(err).Error("invalid configuration")
		os.Exit(1)
	}
	log := cfg.Logger()
	mode := profile.CPUProfile
	if cfg.ProfileMode == envconfig.ModeMem {
		mode = profile.MemProfileAllocs
	}
	p := profile.Start(mode, profile.ProfilePath(cfg.ProfilePath), profile.NoShutdownHook, profile.Quiet)
	sum := run(cfg.Rounds, cfg.Iterations, cfg.Entities, log.WithField("component", "table"))
	p.Stop()
	log.WithFields(logrus.Fields{
		"rounds":   cfg.Rounds,
		"iters":    cfg.Iterations,
		"entities": cfg.Entities,
		"sum":      sum,
		"mode":     cfg.ProfileMode,
	}).Info("query profile written")
}

// run spreads entities over three archetypes and iterates a five-column
// filter and a two-column view over them.
func run(rounds, iters, numEntities int, log *logrus.Entry) int64 {
	var sum int64
	for range rounds {
		t := retsu.NewTable(numEntities, retsu.WithLogger(log))
		query := retsu.NewFilter5[comp1, comp2, comp3, comp4, comp5](t)
		view := retsu.NewView[movers, mover](t)
		retsu.NewBuilder5[comp1, comp2, comp3, comp4, comp5](t).NewEntities(numEntities / 2)
		retsu.NewBuilder2[comp1, comp2](t).NewEntities(numEntities / 4)
		retsu.NewBuilder[comp1](t).NewEntities(numEntities - numEntities/2 - numEntities/4)

		for range iters {
			query.Reset()
			for query.Next() {
				c1, c2, _, _, c5 := query.Get()
				c1.V += c2.V
				c5.W += c1.W
			}
			for m := range view.Iter() {
				m.a.V++
				sum += m.b.V
			}
		}
	}
	return sum
}

type movers struct{}

type mover struct {
	a *comp1
	b *comp2
}

func (movers) Declare(b *retsu.ViewBuilder) {
	retsu.Mut[comp1](b)
	retsu.Ref[comp2](b)
}

func (movers) Fetch(c *retsu.ViewCursor) mover {
	return mover{a: retsu.Deref[comp1](c), b: retsu.Deref[comp2](c)}
}
