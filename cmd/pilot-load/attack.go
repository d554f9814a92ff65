package main

import (
	"fmt"
	"os"
	"time"

	vegeta "github.com/tsenart/vegeta/v12/lib"
)

// runAttack drives traffic at the service and prints a vegeta text report.
func runAttack(cfg Config) error {
	targeter, err := targeterFor(cfg)
	if err != nil {
		return err
	}

	rate := vegeta.Rate{Freq: cfg.Rate, Per: time.Second}
	attacker := vegeta.NewAttacker(
		vegeta.KeepAlive(true),
		vegeta.Timeout(5*time.Second),
		vegeta.HTTP2(false),
	)

	fmt.Printf("Starting %s attack: rate=%d/s duration=%s target=%s\n",
		cfg.Scenario, cfg.Rate, cfg.Duration, cfg.TargetURL)

	var metrics vegeta.Metrics
	for res := range attacker.Attack(targeter, rate, cfg.Duration, cfg.Scenario) {
		metrics.Add(res)
	}
	metrics.Close()

	reporter := vegeta.NewTextReporter(&metrics)
	return reporter.Report(os.Stdout)
}
