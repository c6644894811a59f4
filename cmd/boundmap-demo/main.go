// Command boundmap-demo runs a fixed sequence of operations on a BoundMap and prints what each returns.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/g-m-twostay/go-boundmap/Maps/BoundMap"
)

type options struct {
	capacity int
	pow2     bool
	seed     uint
	verbose  bool
}

func parseFlags(args []string) (options, error) {
	var o options
	fs := pflag.NewFlagSet("boundmap-demo", pflag.ContinueOnError)
	fs.IntVarP(&o.capacity, "capacity", "c", 20, "number of keys the map can hold")
	fs.BoolVar(&o.pow2, "pow2", false, "round the bucket array up to a power of two and index by masking")
	fs.UintVar(&o.seed, "seed", 0, "seed for the xxhash key hasher")
	fs.BoolVarP(&o.verbose, "verbose", "v", false, "log every operation")
	return o, fs.Parse(args)
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if verbose {
		cfg.Level.SetLevel(zapcore.DebugLevel)
	}
	return cfg.Build()
}

// run performs the demo sequence, printing results to out.
func run(o options, out io.Writer, log *zap.Logger) error {
	policy := BoundMap.Modulo
	if o.pow2 {
		policy = BoundMap.PowerOfTwo
	}
	M, err := BoundMap.New[string](o.capacity, BoundMap.WithSeed(o.seed), BoundMap.WithIndexPolicy(policy))
	if err != nil {
		return err
	}
	log.Info("map created", zap.Int("capacity", M.Cap()), zap.Stringer("policy", policy), zap.Uint("seed", o.seed))

	for i := 1; i <= 4; i++ {
		k, v := fmt.Sprintf("k%d", i), fmt.Sprintf("v%d", i)
		ok := M.Set(k, v)
		log.Debug("set", zap.String("key", k), zap.String("value", v), zap.Bool("stored", ok))
	}

	printGet := func(k string) {
		if v, ok := M.Get(k); ok {
			fmt.Fprintln(out, v)
		} else {
			fmt.Fprintln(out, "<absent>")
		}
	}
	printGet("k4")
	v, ok := M.Delete("k4")
	log.Debug("delete", zap.String("key", "k4"), zap.String("value", v), zap.Bool("deleted", ok))
	printGet("k4")
	fmt.Fprintln(out, M.Len())
	fmt.Fprintf(out, "%.2f\n", M.Load())

	if err = M.Verify(); err != nil {
		return err
	}
	s := M.Stats()
	log.Info("done",
		zap.Int("len", M.Len()),
		zap.Float64("load", M.Load()),
		zap.Uint("buckets", s.Buckets),
		zap.Uint("usedBuckets", s.UsedBuckets),
		zap.Uint("longestChain", s.LongestChain),
		zap.Uint("free", s.Free))
	return nil
}

func main() {
	o, err := parseFlags(os.Args[1:])
	if err != nil {
		if err == pflag.ErrHelp {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	log, err := newLogger(o.verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	if err = run(o, os.Stdout, log); err != nil {
		log.Error("demo failed", zap.Error(err))
		os.Exit(1)
	}
}
