// Profiling:
// go build ./profile/entities
// RETSU_PROFILE_MODE=mem ./entities
// go tool pprof -http=":8000" -nodefraction=0.001 ./entities mem.pprof

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

func main() {
	cfg, err := envconfig.Load()
	if err != nil {
		logrus.WithError(err).Error("invalid configuration")
		os.Exit(1)
	}
	log := cfg.Logger()
	mode := profile.MemProfileAllocs
	if cfg.ProfileMode == envconfig.ModeCPU {
		mode = profile.CPUProfile
	}
	p := profile.Start(mode, profile.ProfilePath(cfg.ProfilePath), profile.NoShutdownHook, profile.Quiet)
	n := run(cfg.Rounds, cfg.Iterations, cfg.Entities, log.WithField("component", "table"))
	p.Stop()
	log.WithFields(logrus.Fields{
		"rounds":   cfg.Rounds,
		"iters":    cfg.Iterations,
		"entities": n,
		"mode":     cfg.ProfileMode,
	}).Info("spawn profile written")
}

// run spawns numEntities entities per iteration, alternating between the
// typed builder and the generic bundle path, then sums them with a filter.
func run(rounds, iters, numEntities int, log *logrus.Entry) int {
	total := 0
	for range rounds {
		t := retsu.NewTable(numEntities, retsu.WithLogger(log))
		query := retsu.NewFilter2[comp1, comp2](t)
		batch := retsu.NewBuilder2[comp1, comp2](t)
		plan := retsu.CompileInsert[pair](t)
		for i := range iters {
			if i%2 == 0 {
				batch.NewEntitiesWithValueSet(numEntities, comp1{V: 1}, comp2{V: 2, W: 3})
				continue
			}
			for range numEntities {
				plan.Spawn(pair{a: comp1{V: 1}, b: comp2{V: 2, W: 3}})
			}
		}
		query.Reset()
		for query.Next() {
			c1, c2 := query.Get()
			c1.V += c2.V
			c1.W += c2.W
		}
		total += t.Len()
	}
	return total
}

type pair struct {
	a comp1
	b comp2
}

func (pair) Declare(b *retsu.InsertBuilder) {
	retsu.Declare[comp1](b)
	retsu.Declare[comp2](b)
}

func (p pair) Write(c *retsu.InsertCursor) {
	retsu.Put(c, p.a)
	retsu.Put(c, p.b)
}
