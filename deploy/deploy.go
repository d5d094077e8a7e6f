// Package deploy provides Mapforge contracts deployment functionality.
package deploy

import (
	"context"
	"errors"
	"fmt"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/management"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"go.uber.org/zap"
)

// Blockchain groups services provided by a particular Neo blockchain instance
// needed for Mapforge contracts deployment.
type Blockchain interface {
	actor.RPCActor

	// GetContractStateByHash returns state of the contract deployed at the
	// given address or an error if there is no such contract.
	GetContractStateByHash(util.Uint160) (*state.Contract, error)
}

// CommonDeployPrm groups common deployment parameters of the smart contract.
type CommonDeployPrm struct {
	NEF      nef.File
	Manifest manifest.Manifest
}

// CouponContractPrm groups deployment parameters of the Mapforge Coupon
// contract.
type CouponContractPrm struct {
	Common CommonDeployPrm
}

// GameContractPrm groups deployment parameters of the Mapforge Game contract.
type GameContractPrm struct {
	Common CommonDeployPrm
}

// Prm groups parameters of Mapforge contracts deployment.
type Prm struct {
	// Writes progress into the log.
	Logger *zap.Logger

	// Particular Neo blockchain instance to be used as Mapforge sidechain.
	Blockchain Blockchain

	// Local process account used for transaction signing. It pays for the
	// deployment and becomes the initial owner of both contracts.
	LocalAccount *wallet.Account

	CouponContract CouponContractPrm
	GameContract   GameContractPrm
}

// Deploy initializes Mapforge contracts on the Neo blockchain represented by
// the given Prm. The coupon and game contracts reference each other, so their
// addresses are pre-calculated from the deployer account and passed to the
// counterpart constructor. Deploy is idempotent: contracts already present on
// the chain are left untouched.
//
// Deploy logs progress details via the provided zap.Logger.
func Deploy(ctx context.Context, prm Prm) error {
	switch {
	case prm.Logger == nil:
		return errors.New("missing logger")
	case prm.Blockchain == nil:
		return errors.New("missing blockchain client")
	case prm.LocalAccount == nil:
		return errors.New("missing local account")
	}

	deployer, err := actor.NewSimple(prm.Blockchain, prm.LocalAccount)
	if err != nil {
		return fmt.Errorf("init transaction sender from local account: %w", err)
	}

	sender := prm.LocalAccount.ScriptHash()
	couponHash := state.CreateContractHash(sender, prm.CouponContract.Common.NEF.Checksum, prm.CouponContract.Common.Manifest.Name)
	gameHash := state.CreateContractHash(sender, prm.GameContract.Common.NEF.Checksum, prm.GameContract.Common.Manifest.Name)

	prm.Logger.Info("pre-calculated addresses of the Mapforge contracts",
		zap.Stringer("coupon", couponHash), zap.Stringer("game", gameHash))

	syncPrm := syncContractPrm{
		logger:     prm.Logger,
		blockchain: prm.Blockchain,
		deployer:   deployer,
	}

	syncPrm.localNEF = prm.CouponContract.Common.NEF
	syncPrm.localManifest = prm.CouponContract.Common.Manifest
	syncPrm.deployArgs = []interface{}{gameHash}

	err = syncContract(ctx, syncPrm, couponHash)
	if err != nil {
		return fmt.Errorf("sync Mapforge Coupon contract with the chain: %w", err)
	}

	syncPrm.localNEF = prm.GameContract.Common.NEF
	syncPrm.localManifest = prm.GameContract.Common.Manifest
	syncPrm.deployArgs = []interface{}{couponHash}

	err = syncContract(ctx, syncPrm, gameHash)
	if err != nil {
		return fmt.Errorf("sync Mapforge Game contract with the chain: %w", err)
	}

	return nil
}

// syncContractPrm groups parameters of syncContract.
type syncContractPrm struct {
	logger *zap.Logger

	blockchain Blockchain
	deployer   *actor.Actor

	localNEF      nef.File
	localManifest manifest.Manifest
	deployArgs    []interface{}
}

// syncContract deploys the local contract on the underlying chain unless the
// contract with the pre-calculated address is already there.
func syncContract(ctx context.Context, prm syncContractPrm, expectedHash util.Uint160) error {
	l := prm.logger.With(zap.String("contract", prm.localManifest.Name), zap.Stringer("address", expectedHash))

	if ctx.Err() != nil {
		return fmt.Errorf("wait for the contract synchronization: %w", ctx.Err())
	}

	onChainState, err := prm.blockchain.GetContractStateByHash(expectedHash)
	if err == nil {
		if onChainState.NEF.Checksum != prm.localNEF.Checksum {
			l.Info("contract is already on the chain but differs from the local one, update is needed")
		} else {
			l.Info("contract is already on the chain, deployment is not needed")
		}
		return nil
	}

	l.Info("contract is missing on the chain, deployment is needed")

	txHash, vub, err := management.New(prm.deployer).Deploy(&prm.localNEF, &prm.localManifest, prm.deployArgs)
	if err != nil {
		return fmt.Errorf("send transaction deploying the contract: %w", err)
	}

	l.Info("transaction deploying the contract has been successfully sent, waiting for the result...",
		zap.Stringer("tx", txHash), zap.Uint32("vub", vub))

	res, err := prm.deployer.Wait(txHash, vub, nil)
	if err != nil {
		return fmt.Errorf("wait for the transaction deploying the contract to be accepted: %w", err)
	}

	if res.VMState != vmstate.Halt {
		return fmt.Errorf("transaction deploying the contract failed: %s", res.FaultException)
	}

	l.Info("the contract has been successfully deployed")

	return nil
}
