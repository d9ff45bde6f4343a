package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"text/tabwriter"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/taskan-dev/taskan/internal/config"
	"github.com/taskan-dev/taskan/internal/domain"
	"github.com/taskan-dev/taskan/internal/logger"
	"github.com/taskan-dev/taskan/internal/metrics"
	"github.com/taskan-dev/taskan/internal/recommend"
	"github.com/taskan-dev/taskan/internal/setup"
	"github.com/taskan-dev/taskan/internal/snapshot"
)

func main() {
	var configPath, snapshotPath string
	flag.StringVar(&configPath, "config", "", "path to yaml config")
	flag.StringVar(&snapshotPath, "snapshot", "", "board snapshot to evaluate (overrides config)")
	flag.Parse()

	cfg := config.Default()
	if configPath != "" {
		cfg = config.MustLoad(configPath)
	}
	logger.Initialize(cfg.LogLevel, cfg.LogJSON)

	if cfg.MetricsAddr != "" {
		go serveMetrics(cfg.MetricsAddr)
	}

	if snapshotPath == "" {
		snapshotPath = cfg.Snapshot
	}

	advisories, err := evaluate(snapshotPath)
	if err != nil {
		logger.Log.Error("evaluation failed", "err", err)
		os.Exit(1)
	}
	printAdvisories(advisories)
}

// evaluate runs the engine over the snapshot when one is given, otherwise
// over the seeded demo board via the full service stack.
func evaluate(snapshotPath string) ([]domain.Advisory, error) {
	if snapshotPath != "" {
		board, err := snapshot.Load(snapshotPath)
		if err != nil {
			return nil, err
		}
		start := time.Now()
		advisories := recommend.Evaluate(board, time.Now())
		metrics.ObserveEvaluation(advisories, time.Since(start))
		return advisories, nil
	}

	deps := setup.SetupDependencies()
	userId, boardId, err := setup.SeedDemo(deps)
	if err != nil {
		return nil, err
	}
	return deps.Recommendations.ForBoard(userId, boardId)
}

func serveMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	logger.Log.Info("serving metrics", "addr", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Log.Error("metrics listener failed", "err", err)
	}
}

func printAdvisories(advisories []domain.Advisory) {
	if len(advisories) == 0 {
		fmt.Println("No advisories: the board looks healthy.")
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SEVERITY\tTYPE\tCARD\tREASON\tACTION")
	for _, a := range advisories {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", a.Severity, a.Type, a.CardTitle, a.Reason, a.Action)
	}
	w.Flush()
}
