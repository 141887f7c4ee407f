package main

import (
	"flag"
	"fmt"
	"ilm-dashboard/cmd/sheetgen/engine"
	"os"
)

func main() {
	out := flag.String("out", "ILM_demo.xlsx", "Output workbook path")
	vaCount := flag.Int("va", 60, "Number of Virtual Access rows to generate")
	taCount := flag.Int("ta", 40, "Number of Transnational Access rows to generate")
	seed := flag.Int64("seed", 42, "Random seed")
	flag.Parse()

	cfg := engine.GeneratorConfig{
		VACount: *vaCount,
		TACount: *taCount,
		Seed:    *seed,
	}

	fmt.Printf("Generating demo workbook (VA: %d, TA: %d) to %s...\n", cfg.VACount, cfg.TACount, *out)

	if err := engine.Generate(cfg, *out); err != nil {
		fmt.Printf("Failed to generate workbook: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Done.")
}
