// Command towerbench runs a mixed random workload of insert/get/remove
// against a skiplist.List[int] and a contiguous-array baseline, and
// reports wall-clock totals for each (spec.md §6).
package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"skiptower/pkg/skiplist"
)

// config mirrors SPEC_FULL.md's benchmark-config shape. Fields absent
// from the YAML file keep defaultConfig's values (70/20/10 split);
// fields present in it, including explicit zeros, replace them.
type config struct {
	Operations   int    `yaml:"operations"`
	InsertWeight int    `yaml:"insertWeight"`
	GetWeight    int    `yaml:"getWeight"`
	RemoveWeight int    `yaml:"removeWeight"`
	Seed         uint64 `yaml:"seed"`
}

func defaultConfig() config {
	return config{
		Operations:   100_000,
		InsertWeight: 70,
		GetWeight:    20,
		RemoveWeight: 10,
		Seed:         1,
	}
}

func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// op is one step of the pregenerated workload. kind is 0 (insert), 1
// (get), or 2 (remove); idx and value are only meaningful for the
// kinds that use them.
type op struct {
	kind  int
	idx   int
	value int
}

// generateWorkload produces a fixed sequence of operations up front so
// both structures under test replay the exact same workload.
func generateWorkload(cfg config) []op {
	total := cfg.InsertWeight + cfg.GetWeight + cfg.RemoveWeight
	r := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))

	ops := make([]op, 0, cfg.Operations)
	size := 0
	for n := 0; n < cfg.Operations; n++ {
		pick := r.IntN(total)
		switch {
		case size == 0 || pick < cfg.InsertWeight:
			idx := r.IntN(size + 1)
			ops = append(ops, op{kind: 0, idx: idx, value: r.IntN(1 << 30)})
			size++
		case pick < cfg.InsertWeight+cfg.GetWeight:
			ops = append(ops, op{kind: 1, idx: r.IntN(size)})
		default:
			ops = append(ops, op{kind: 2, idx: r.IntN(size)})
			size--
		}
	}
	return ops
}

func runSkiplist(ops []op) time.Duration {
	l := skiplist.New[int]()
	start := time.Now()
	for _, o := range ops {
		switch o.kind {
		case 0:
			_ = l.Insert(o.idx, o.value)
		case 1:
			_, _ = l.Get(o.idx)
		case 2:
			_, _ = l.Remove(o.idx)
		}
	}
	return time.Since(start)
}

func runArray(ops []op) time.Duration {
	s := make([]int, 0, len(ops))
	start := time.Now()
	for _, o := range ops {
		switch o.kind {
		case 0:
			s = append(s, 0)
			copy(s[o.idx+1:], s[o.idx:])
			s[o.idx] = o.value
		case 1:
			_ = s[o.idx]
		case 2:
			s = append(s[:o.idx], s[o.idx+1:]...)
		}
	}
	return time.Since(start)
}

func main() {
	configPath := flag.String("config", "", "path to a YAML workload config (optional)")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ops := generateWorkload(cfg)

	towerElapsed := runSkiplist(ops)
	arrayElapsed := runArray(ops)

	fmt.Printf("operations:   %d\n", cfg.Operations)
	fmt.Printf("weights:      insert=%d get=%d remove=%d\n", cfg.InsertWeight, cfg.GetWeight, cfg.RemoveWeight)
	fmt.Printf("skiplist:     %v\n", towerElapsed)
	fmt.Printf("array:        %v\n", arrayElapsed)
}
