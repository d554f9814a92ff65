package main

import (
	"net/http"
	"strings"
	"testing"

	vegeta "github.com/tsenart/vegeta/v12/lib"
)

func TestTargeterForHealth(t *testing.T) {
	cfg := Config{TargetURL: "http://pilot.test:8080", Scenario: "health"}
	targeter, err := targeterFor(cfg)
	if err != nil {
		t.Fatal(err)
	}

	var tgt vegeta.Target
	if err := targeter(&tgt); err != nil {
		t.Fatal(err)
	}
	if tgt.Method != http.MethodGet {
		t.Errorf("method = %q, want GET", tgt.Method)
	}
	if tgt.URL != "http://pilot.test:8080/health" {
		t.Errorf("url = %q", tgt.URL)
	}
}

func TestTargeterForMixedCoversAllEndpoints(t *testing.T) {
	cfg := Config{TargetURL: "http://pilot.test:8080", Scenario: "mixed"}
	targeter, err := targeterFor(cfg)
	if err != nil {
		t.Fatal(err)
	}

	seen := map[string]bool{}
	for i := 0; i < 6; i++ {
		var tgt vegeta.Target
		if err := targeter(&tgt); err != nil {
			t.Fatal(err)
		}
		if tgt.Method != http.MethodGet {
			t.Errorf("method = %q, want GET", tgt.Method)
		}
		seen[strings.TrimPrefix(tgt.URL, cfg.TargetURL)] = true
	}
	for _, path := range []string{"/", "/health", "/metrics"} {
		if !seen[path] {
			t.Errorf("mixed scenario never hit %s (saw %v)", path, seen)
		}
	}
}

func TestTargeterForUnknownScenario(t *testing.T) {
	_, err := targeterFor(Config{Scenario: "stampede"})
	if err == nil {
		t.Fatal("expected an error for an unknown scenario")
	}
	if !strings.Contains(err.Error(), "stampede") {
		t.Errorf("error = %q, want it to name the scenario", err)
	}
}
