// Package main runs the Mapforge chain indexing daemon.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/mapforge-game/mapforge-contract/indexer"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"go.uber.org/zap"
)

// Config groups the environment settings of the indexing daemon.
type Config struct {
	Endpoint       string        `env:"MAPFORGE_INDEXER_ENDPOINT" envDefault:"http://localhost:30333"`
	GameContract   string        `env:"MAPFORGE_INDEXER_GAME_CONTRACT,required"`
	CouponContract string        `env:"MAPFORGE_INDEXER_COUPON_CONTRACT,required"`
	StoragePath    string        `env:"MAPFORGE_INDEXER_STORAGE" envDefault:"mapforge-index.db"`
	PollInterval   time.Duration `env:"MAPFORGE_INDEXER_POLL_INTERVAL" envDefault:"5s"`
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	gameHash, err := address.StringToUint160(cfg.GameContract)
	if err != nil {
		return fmt.Errorf("bad game contract address: %w", err)
	}
	couponHash, err := address.StringToUint160(cfg.CouponContract)
	if err != nil {
		return fmt.Errorf("bad coupon contract address: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c, err := rpcclient.New(ctx, cfg.Endpoint, rpcclient.Options{})
	if err != nil {
		return fmt.Errorf("init RPC client: %w", err)
	}
	if err := c.Init(); err != nil {
		return fmt.Errorf("initial RPC connection: %w", err)
	}

	s, err := indexer.OpenStore(cfg.StoragePath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer func() { _ = s.Close() }()

	l, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = l.Sync() }()

	x, err := indexer.New(indexer.Prm{
		Logger:         l,
		Blockchain:     c,
		Storage:        s,
		GameContract:   gameHash,
		CouponContract: couponHash,
		PollInterval:   cfg.PollInterval,
	})
	if err != nil {
		return fmt.Errorf("init indexer: %w", err)
	}

	return x.Run(ctx)
}
