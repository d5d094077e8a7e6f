package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/big"
	"os"

	"github.com/mapforge-game/mapforge-contract/rpc/coupon"
	"github.com/mapforge-game/mapforge-contract/rpc/game"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/invoker"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

func initClient(addr string) (*rpcclient.Client, error) {
	c, err := rpcclient.New(context.Background(), addr, rpcclient.Options{})
	if err != nil {
		return nil, fmt.Errorf("RPC: %w", err)
	}
	err = c.Init()
	if err != nil {
		return nil, fmt.Errorf("RPC init: %w", err)
	}
	return c, nil
}

// cliMain sums all pending rewards of the game contract and checks that its
// coupon custody balance covers them. Every winner claim transfers coupons
// out of the custody, so pending rewards exceeding it mean lost funds.
func cliMain() error {
	flag.Parse()

	args := flag.Args()
	if len(args) < 2 {
		return errors.New("usage: program <RPC_NODE> <GAME_CONTRACT>")
	}

	rpcAddress := args[0]
	gameContractAddress := args[1]

	gameHash, err := address.StringToUint160(gameContractAddress)
	if err != nil {
		return fmt.Errorf("bad contract address: %w", err)
	}

	c, err := initClient(rpcAddress)
	if err != nil {
		return err
	}

	inv := invoker.New(c, nil)
	gameReader := game.NewReader(inv, gameHash)

	couponHash, err := gameReader.Coupon()
	if err != nil {
		return fmt.Errorf("can't get coupon contract address: %w", err)
	}

	couponReader := coupon.NewReader(inv, couponHash)
	custody, err := couponReader.BalanceOf(gameHash)
	if err != nil {
		return fmt.Errorf("can't get custody balance: %w", err)
	}

	revenue, err := gameReader.Revenue()
	if err != nil {
		return fmt.Errorf("can't get protocol revenue: %w", err)
	}

	sess, iter, err := gameReader.IterateRewards()
	if err != nil {
		return fmt.Errorf("can't list pending rewards: %w", err)
	}
	defer inv.TerminateSession(sess)

	var (
		nRewards int
		pending  = new(big.Int)
	)
	items, err := inv.TraverseIterator(sess, &iter, 0)
	for ; err == nil && len(items) > 0; items, err = inv.TraverseIterator(sess, &iter, 0) {
		for _, item := range items {
			pair, ok := item.Value().([]stackitem.Item)
			if !ok || len(pair) != 2 {
				return fmt.Errorf("unexpected reward iterator item type %v", item.Type())
			}
			accB, err := pair[0].TryBytes()
			if err != nil {
				return fmt.Errorf("can't get reward account: %w", err)
			}
			amount, err := pair[1].TryInteger()
			if err != nil {
				return fmt.Errorf("can't get reward amount: %w", err)
			}

			accS := fmt.Sprintf("%x", accB)
			if len(accB) == util.Uint160Size {
				acc, _ := util.Uint160DecodeBytesBE(accB)
				accS = address.Uint160ToString(acc)
			}
			fmt.Println(accS, amount)

			pending.Add(pending, amount)
			nRewards++
		}
	}
	if err != nil {
		return fmt.Errorf("can't traverse pending rewards: %w", err)
	}

	fmt.Println(nRewards, "pending rewards, total:", pending, "coupons")
	fmt.Println("protocol revenue:", revenue, "GAS fractions")
	fmt.Println("contract custody:", custody, "coupons")

	if pending.Cmp(custody) > 0 {
		return fmt.Errorf("custody shortfall: %s coupons owed, %s held", pending, custody)
	}

	fmt.Println("OK: custody covers all pending rewards")
	return nil
}

func main() {
	if err := cliMain(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
