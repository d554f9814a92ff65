package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Optionally degrade the service first, so the report shows how the
	// health endpoint behaves under failure injection.
	if cfg.Probability > 0 {
		if err := setChaos(cfg.TargetURL, "degraded", cfg.Probability); err != nil {
			return fmt.Errorf("enable chaos: %w", err)
		}
		fmt.Printf("Chaos enabled: health will fail with probability %g\n", cfg.Probability)
		defer func() {
			if err := setChaos(cfg.TargetURL, "reset", 0); err != nil {
				fmt.Fprintf(os.Stderr, "reset chaos: %v\n", err)
				return
			}
			fmt.Println("Chaos reset: service restored")
		}()
	}

	return runAttack(cfg)
}

// setChaos drives the service's chaos-control endpoint.
func setChaos(baseURL, mode string, probability float64) error {
	url := fmt.Sprintf("%s/simulate-crash?mode=%s", baseURL, mode)
	if mode == "degraded" {
		url = fmt.Sprintf("%s&probability=%g", url, probability)
	}

	resp, err := http.Post(url, "", nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}
	return nil
}
