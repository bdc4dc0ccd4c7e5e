// orbital-plot prints a static report of one hydrogen orbital
package main

import (
	"fmt"
	"os"

	"github.com/lixenwraith/orbital/config"
	"github.com/lixenwraith/orbital/orbital"
	"github.com/lixenwraith/orbital/plot"
)

func main() {
	cfg, err := config.Load(os.Args[0], os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "orbital-plot: %v\n", err)
		os.Exit(2)
	}

	out, err := report(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "orbital-plot: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(out)
}

func report(cfg *config.Config) (string, error) {
	q, err := cfg.QuantumNumbers()
	if err != nil {
		return "", err
	}
	m := orbital.New()
	m.SetQuantumNumbers(q)
	m.SetDensityMode(cfg.Density)
	if cfg.Workers > 0 {
		m.SetWorkers(cfg.Workers)
	}
	return plot.Render(m, cfg.Width, cfg.Height)
}
