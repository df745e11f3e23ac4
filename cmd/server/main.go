package main

import (
	"fmt"
	"os"

	"reqtrack/internal/api"
	"reqtrack/internal/config"
	"reqtrack/internal/db"
	redisdb "reqtrack/internal/redis"
)

func main() {
	path := os.Getenv("REQTRACK_CONFIG")
	if path == "" {
		path = "config.json"
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	if err := db.Init(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "DB init error: %v\n", err)
		os.Exit(1)
	}
	rdb := redisdb.NewClient(cfg)

	r := api.SetupRouter(cfg, rdb)
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	fmt.Printf("Starting server on %s\n", addr)
	if err := r.Run(addr); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
