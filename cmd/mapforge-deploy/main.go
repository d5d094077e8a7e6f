// Package main provides a command deploying the Mapforge contracts to a Neo
// blockchain.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/mapforge-game/mapforge-contract/deploy"
	"github.com/mapforge-game/mapforge-contract/internal/compile"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"go.uber.org/zap"
)

// Env var with the password of the deployer wallet account.
const passwordEnv = "MAPFORGE_DEPLOY_PASSWORD"

func main() {
	neoRPCEndpoint := flag.String("rpc", "", "Network address of the Neo RPC server")
	walletPath := flag.String("wallet", "", "Path to the NEP-6 wallet of the deployer")
	couponDir := flag.String("coupon", "coupon", "Path to the coupon contract source directory")
	gameDir := flag.String("game", "game", "Path to the game contract source directory")

	flag.Parse()

	switch {
	case *neoRPCEndpoint == "":
		log.Fatal("missing Neo RPC endpoint")
	case *walletPath == "":
		log.Fatal("missing deployer wallet")
	}

	err := deployContracts(*neoRPCEndpoint, *walletPath, *couponDir, *gameDir)
	if err != nil {
		log.Fatal(err)
	}

	log.Println("Mapforge contracts are successfully synchronized with the chain")
}

func deployContracts(neoRPCEndpoint, walletPath, couponDir, gameDir string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	w, err := wallet.NewWalletFromFile(walletPath)
	if err != nil {
		return fmt.Errorf("read deployer wallet: %w", err)
	}

	acc := w.GetAccount(w.GetChangeAddress())
	if acc == nil {
		return errors.New("deployer wallet has no accounts")
	}

	err = acc.Decrypt(os.Getenv(passwordEnv), w.Scrypt)
	if err != nil {
		return fmt.Errorf("unlock deployer account: %w", err)
	}

	couponCtr, err := compile.ContractInfo(acc.ScriptHash(), couponDir)
	if err != nil {
		return fmt.Errorf("build coupon contract: %w", err)
	}

	gameCtr, err := compile.ContractInfo(acc.ScriptHash(), gameDir)
	if err != nil {
		return fmt.Errorf("build game contract: %w", err)
	}

	c, err := rpcclient.New(ctx, neoRPCEndpoint, rpcclient.Options{})
	if err != nil {
		return fmt.Errorf("init RPC client: %w", err)
	}
	err = c.Init()
	if err != nil {
		return fmt.Errorf("initial RPC connection: %w", err)
	}

	l, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = l.Sync() }()

	return deploy.Deploy(ctx, deploy.Prm{
		Logger:       l,
		Blockchain:   c,
		LocalAccount: acc,
		CouponContract: deploy.CouponContractPrm{
			Common: deploy.CommonDeployPrm{
				NEF:      *couponCtr.NEF,
				Manifest: *couponCtr.Manifest,
			},
		},
		GameContract: deploy.GameContractPrm{
			Common: deploy.CommonDeployPrm{
				NEF:      *gameCtr.NEF,
				Manifest: *gameCtr.Manifest,
			},
		},
	})
}
