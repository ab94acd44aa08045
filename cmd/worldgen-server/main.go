// Command worldgen-server exposes noise generation over HTTP and
// websocket, with a SQLite chunk cache.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	platformcmd "github.com/louisbranch/worldgen/internal/platform/cmd"
	"github.com/louisbranch/worldgen/internal/platform/config"
	"github.com/louisbranch/worldgen/internal/server"
	"github.com/louisbranch/worldgen/internal/storage/sqlite"
	"github.com/louisbranch/worldgen/internal/telemetry"
)

type serverConfig struct {
	Addr         string        `env:"WORLDGEN_SERVER_ADDR" envDefault:"localhost:9810"`
	DBPath       string        `env:"WORLDGEN_DB_PATH" envDefault:"worldgen.db"`
	ReadTimeout  time.Duration `env:"WORLDGEN_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"WORLDGEN_WRITE_TIMEOUT" envDefault:"30s"`
}

func main() {
	var cfg serverConfig
	fs := flag.NewFlagSet(platformcmd.ServiceServer, flag.ExitOnError)
	err := platformcmd.ParseConfigFromArgs(&cfg, fs, os.Args[1:], func(cfg *serverConfig, fs *flag.FlagSet) {
		fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "HTTP listen address")
		fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "SQLite chunk cache path")
	})
	if err != nil {
		config.Exitf("parse config: %v", err)
	}

	log.SetPrefix("[WORLDGEN] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		config.Exitf("open store: %v", err)
	}
	defer store.Close()

	srv := server.New(server.Config{
		Addr:         cfg.Addr,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}, store, telemetry.NewEmitter(store))

	if err := platformcmd.RunWithTelemetry(ctx, platformcmd.ServiceServer, srv.Run); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}
