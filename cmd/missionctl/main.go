// File path: cmd/missionctl/main.go
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/openclaw/mission-control/internal/api"
	"github.com/openclaw/mission-control/internal/bridge"
	"github.com/openclaw/mission-control/internal/common"
	"github.com/openclaw/mission-control/internal/llm"
	"github.com/openclaw/mission-control/internal/sqlite"
)

func main() {
	logger := common.Logger()

	if err := godotenv.Load(); err != nil {
		logger.Warn("missionctl: .env file not loaded", "error", err)
	} else {
		logger.Info("missionctl: environment loaded from .env")
	}

	addr := flag.String("addr", ":3000", "listen address")
	dbPath := flag.String("db", defaultDBPath(), "path to the mission control database")
	flag.Parse()

	logger.Info("missionctl: startup initiated", "addr", *addr, "db", *dbPath)

	store, err := sqlite.Open(*dbPath)
	if err != nil {
		logger.Error("missionctl: store open failed", "error", err)
		fmt.Println("store error:", err)
		os.Exit(1)
	}
	defer store.Close()

	provider := llm.NewProvider()
	logger.Info("missionctl: completion provider ready", "provider", provider.Name())

	server, err := api.NewServer(store, provider, bridge.New())
	if err != nil {
		logger.Error("missionctl: server construction failed", "error", err)
		fmt.Println("server error:", err)
		os.Exit(1)
	}

	logger.Info("missionctl: server listening", "addr", *addr, "health", "/healthz")
	fmt.Printf("Serving on %s\n", *addr)
	reachable := *addr
	if strings.HasPrefix(reachable, ":") {
		reachable = "localhost" + reachable
	}
	logger.Info("missionctl: verify reachability", "suggestion", fmt.Sprintf("curl http://%s/healthz", reachable))
	if err := http.ListenAndServe(*addr, server); err != nil {
		logger.Error("missionctl: server stopped", "error", err)
		fmt.Println("server stopped:", err)
	}
}

func defaultDBPath() string {
	if env := strings.TrimSpace(os.Getenv("MISSION_DB_PATH")); env != "" {
		return env
	}
	return filepath.Join("data", "mission_control.db")
}
