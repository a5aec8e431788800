// Command strategyserver runs the HTTP API described in SPEC_FULL.md's
// REQUEST SURFACE section, generalizing the teacher's cmd/bgserver to all
// six registered games.
package main

import (
	"flag"
	"log"

	"github.com/yourusername/stratengine/pkg/api"
	"github.com/yourusername/stratengine/pkg/strategy"
)

const version = "0.1.0"

func main() {
	host := flag.String("host", "localhost", "address to bind to")
	port := flag.Int("port", 8080, "port to listen on")
	maxFast := flag.Int("max-fast-workers", 100, "max concurrent move requests")
	maxSlow := flag.Int("max-slow-workers", 4, "max concurrent rollout-analysis requests")
	flag.Parse()

	for _, name := range strategy.Names() {
		if _, err := strategy.LoadTuning(name); err != nil {
			log.Fatalf("strategyserver: %v", err)
		}
	}

	config := api.DefaultConfig()
	config.Host = *host
	config.Port = *port
	config.MaxFastWorkers = *maxFast
	config.MaxSlowWorkers = *maxSlow

	server := api.NewServer(config, version)
	if err := server.ListenAndServeWithGracefulShutdown(); err != nil {
		log.Fatalf("strategyserver: %v", err)
	}
}
