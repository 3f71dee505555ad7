package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"
	"time"

	"auto-timer/pkg/debug"
	"auto-timer/pkg/env_config"
	"auto-timer/pkg/measure"
	"auto-timer/pkg/registry"
	"auto-timer/pkg/stats"
	"auto-timer/pkg/timer"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

var (
	FLAGS_duration    int
	FLAGS_workers     int
	FLAGS_warmup_time int
	FLAGS_payload     int
	FLAGS_window      int
	FLAGS_min_log     float64
	FLAGS_style       string
	FLAGS_profile     string
)

func init() {
	env_config.SetLogLevelFromEnv()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}

func getLogStyle(styleStr string) timer.LogStyle {
	var style timer.LogStyle
	if styleStr == "seconds" {
		style = timer.SECONDS
	} else if styleStr == "pretty" {
		style = timer.PRETTY
	} else if styleStr == "" {
		style = env_config.LogStyleFromEnv()
	} else {
		log.Error().Msgf("log style is not recognized; default back to pretty")
		style = timer.PRETTY
	}
	return style
}

func spin(random *rand.Rand, payload int) float64 {
	acc := float64(0)
	iters := payload/2 + random.Intn(payload+1)
	for i := 0; i < iters; i++ {
		acc += math.Sqrt(float64(i))
	}
	return acc
}

type workerConfig struct {
	reg     *registry.Registry
	elapsed *stats.ConcurrentCollector[float64]
	spinLat *stats.ConcurrentCollector[int64]
	prof    *env_config.Profile
	style   timer.LogStyle
	minLog  float64
	collect bool
}

type workerOutput struct {
	window    stats.WindowSnapshot
	processed uint64
	checksum  float64
}

func runWorker(ctx context.Context, idx int, cfg workerConfig, out *workerOutput) error {
	debug.Fprintf(os.Stderr, "worker-%d starting\n", idx)
	random := rand.New(rand.NewSource(int64(idx) + 42))
	warmup := stats.NewWarmupChecker(time.Duration(FLAGS_warmup_time) * time.Second)
	rate := stats.NewRateCounter(fmt.Sprintf("worker-%d", idx), 2*time.Second)
	recent := stats.NewWindowedCollector(fmt.Sprintf("worker-%d recent", idx), FLAGS_window)

	iterMsg := fmt.Sprintf("worker-%d slow iteration", idx)
	iterLogger := timer.DefaultLogger(cfg.style)
	phase := timer.NewWithLogger(fmt.Sprintf("worker-%d run", idx), 0, iterLogger)
	defer phase.Stop()

	duration := time.Duration(FLAGS_duration) * time.Second
	warmup.StartWarmup()
	for warmup.ElapsedSinceInitial() < duration {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		t := timer.NewWithLogger(iterMsg, cfg.minLog, iterLogger)
		begin := measure.Begin()
		out.checksum += spin(random, FLAGS_payload)
		if measure.Enabled {
			cfg.spinLat.AddSample(measure.Since(begin).Microseconds())
		}
		sec := t.Stop()

		warmup.Check()
		if cfg.collect && warmup.AfterWarmup() {
			cfg.elapsed.AddSample(sec)
			recent.AddSample(sec)
			cfg.reg.Observe("iteration", sec)
		}
		rate.Tick(1)
		out.processed += 1
		if out.processed%100000 == 0 {
			phase.Logf("worker-%d crossed %d ops", idx, out.processed)
		}
	}

	var drain *timer.AutoTimer
	if cfg.prof != nil {
		drain = cfg.prof.NewTimer("drain", fmt.Sprintf("worker-%d drained", idx))
	} else {
		drain = cfg.reg.Timer("drain", fmt.Sprintf("worker-%d drained", idx))
	}
	time.Sleep(time.Duration(random.Intn(5)+1) * time.Millisecond)
	drain.Stop()

	out.window = recent.Snapshot()
	debug.Fprintf(os.Stderr, "worker-%d checksum %v\n", idx, out.checksum)
	return nil
}

func main() {
	flag.StringVar(&FLAGS_style, "style", "", "log style: seconds or pretty")
	flag.StringVar(&FLAGS_profile, "profile", "", "path to a json file that stores timing profile")
	flag.IntVar(&FLAGS_duration, "duration", 10, "")
	flag.IntVar(&FLAGS_workers, "workers", 2, "")
	flag.IntVar(&FLAGS_warmup_time, "warmup_time", 0, "warmup time")
	flag.IntVar(&FLAGS_payload, "payload", 4096, "spin iterations per op")
	flag.IntVar(&FLAGS_window, "window", 1024, "rolling window capacity per worker")
	flag.Float64Var(&FLAGS_min_log, "min_log", 0.05, "only log scopes slower than this many seconds; negative reads TIMER_MIN_LOG")
	flag.Parse()

	if FLAGS_duration <= 0 {
		panic("should specify positive duration")
	}
	if FLAGS_workers < 1 {
		panic("should specify at least one worker")
	}
	if FLAGS_payload < 1 {
		panic("should specify positive payload")
	}

	style := getLogStyle(FLAGS_style)
	minLog := FLAGS_min_log
	if minLog < 0 {
		minLog = env_config.MinTimeToLogFromEnv()
	}
	var prof *env_config.Profile
	if FLAGS_profile != "" {
		var err error
		prof, err = env_config.LoadProfile(FLAGS_profile)
		if err != nil {
			panic(err)
		}
		style = prof.Style
		minLog = prof.MinFor("iteration")
	}
	if env_config.TIMING_DISABLED {
		log.Info().Msgf("sample collection disabled by TIMER_DISABLE")
	}

	total := timer.NewWithLogger("timerbench", 0, timer.DefaultLogger(style))
	defer total.Stop()

	cfg := workerConfig{
		reg:     registry.New(),
		elapsed: stats.NewConcurrentCollector[float64]("iteration_elapsed", 5*time.Second),
		spinLat: stats.NewConcurrentCollector[int64]("spin_us", 5*time.Second),
		prof:    prof,
		style:   style,
		minLog:  minLog,
		collect: !env_config.TIMING_DISABLED,
	}

	outputs := make([]workerOutput, FLAGS_workers)
	g, gctx := errgroup.WithContext(context.Background())
	for i := 0; i < FLAGS_workers; i++ {
		idx := i
		g.Go(func() error {
			return runWorker(gctx, idx, cfg, &outputs[idx])
		})
	}
	if err := g.Wait(); err != nil {
		panic(err)
	}
	total.Logf("all %d workers joined", FLAGS_workers)

	processed := uint64(0)
	for i := 0; i < FLAGS_workers; i++ {
		processed += outputs[i].processed
		if outputs[i].window.Count != 0 {
			fmt.Fprintf(os.Stderr, "%v\n", outputs[i].window)
		}
	}
	fmt.Fprintf(os.Stderr, "total throughput %v (op/s)\n\n",
		float64(processed)/float64(FLAGS_duration))
	cfg.elapsed.PrintRemainingStats()
	if measure.Enabled {
		cfg.spinLat.PrintRemainingStats()
	}
	timer.Measure("dump label registry", func() {
		cfg.reg.DumpTo(os.Stderr)
	})
}
