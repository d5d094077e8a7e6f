// Package indexer mirrors Mapforge contract activity into a local database
// for offchain processing.
package indexer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mapforge-game/mapforge-contract/rpc/game"
	"github.com/nspcc-dev/neo-go/pkg/core/block"
	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/trigger"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"go.uber.org/zap"
)

// Blockchain groups services provided by a particular Neo blockchain instance
// needed to index Mapforge contract activity.
type Blockchain interface {
	// GetBlockCount returns the number of blocks in the chain.
	GetBlockCount() (uint32, error)

	// GetBlockByIndex returns the block with the given index.
	GetBlockByIndex(uint32) (*block.Block, error)

	// GetApplicationLog returns the application execution log of the given
	// transaction.
	GetApplicationLog(util.Uint256, *trigger.Type) (*result.ApplicationLog, error)
}

// Prm groups parameters of the Indexer.
type Prm struct {
	// Writes progress into the log.
	Logger *zap.Logger

	// Particular Neo blockchain instance hosting the Mapforge contracts.
	Blockchain Blockchain

	// Local database receiving the indexed records.
	Storage *Store

	// Addresses of the deployed Mapforge contracts.
	GameContract   util.Uint160
	CouponContract util.Uint160

	// How often the chain tip is polled for new blocks. Defaults to 5s.
	PollInterval time.Duration
}

// Indexer polls the Neo blockchain for new blocks, decodes notifications of
// the Mapforge contracts and persists them into the local Store. The last
// fully processed height is tracked in the Store, so a restarted Indexer
// continues where the previous one stopped.
type Indexer struct {
	log    *zap.Logger
	chain  Blockchain
	store  *Store
	game   util.Uint160
	coupon util.Uint160

	interval time.Duration
}

// New creates a new Indexer from the given parameters.
func New(prm Prm) (*Indexer, error) {
	switch {
	case prm.Logger == nil:
		return nil, errors.New("missing logger")
	case prm.Blockchain == nil:
		return nil, errors.New("missing blockchain client")
	case prm.Storage == nil:
		return nil, errors.New("missing storage")
	case prm.GameContract.Equals(util.Uint160{}):
		return nil, errors.New("missing game contract address")
	case prm.CouponContract.Equals(util.Uint160{}):
		return nil, errors.New("missing coupon contract address")
	}

	if prm.PollInterval <= 0 {
		prm.PollInterval = 5 * time.Second
	}

	return &Indexer{
		log:      prm.Logger,
		chain:    prm.Blockchain,
		store:    prm.Storage,
		game:     prm.GameContract,
		coupon:   prm.CouponContract,
		interval: prm.PollInterval,
	}, nil
}

// Run processes blocks until the given context is done. Chain access failures
// are retried on the next poll, storage failures abort the run.
func (x *Indexer) Run(ctx context.Context) error {
	next, ok, err := x.store.Height(ctx)
	if err != nil {
		return fmt.Errorf("read last processed height: %w", err)
	}
	if ok {
		next++
	}

	x.log.Info("starting to index Mapforge contract activity",
		zap.Uint32("from", next),
		zap.Stringer("game", x.game),
		zap.Stringer("coupon", x.coupon))

	for {
		count, err := x.chain.GetBlockCount()
		if err != nil {
			x.log.Warn("can't get current block count", zap.Error(err))
			count = next
		}

		for next < count && ctx.Err() == nil {
			b, err := x.chain.GetBlockByIndex(next)
			if err != nil {
				x.log.Warn("can't get next block, will retry",
					zap.Uint32("index", next), zap.Error(err))
				break
			}

			err = x.processBlock(ctx, b)
			if err != nil {
				var chainErr *chainError
				if errors.As(err, &chainErr) {
					x.log.Warn("can't process block, will retry",
						zap.Uint32("index", next), zap.Error(err))
					break
				}
				return fmt.Errorf("process block #%d: %w", next, err)
			}

			err = x.store.SaveHeight(ctx, next)
			if err != nil {
				return fmt.Errorf("save processed height #%d: %w", next, err)
			}

			next++
		}

		select {
		case <-ctx.Done():
			x.log.Info("stopping the indexer", zap.Uint32("height", next))
			return nil
		case <-time.After(x.interval):
		}
	}
}

// chainError marks block processing failures caused by chain access, they are
// retried instead of aborting the run.
type chainError struct {
	err error
}

func (e *chainError) Error() string { return e.err.Error() }
func (e *chainError) Unwrap() error { return e.err }

func (x *Indexer) processBlock(ctx context.Context, b *block.Block) error {
	for _, tx := range b.Transactions {
		l, err := x.chain.GetApplicationLog(tx.Hash(), nil)
		if err != nil {
			return &chainError{fmt.Errorf("get application log of transaction %s: %w", tx.Hash().StringLE(), err)}
		}

		for i := range l.Executions {
			if l.Executions[i].VMState != vmstate.Halt {
				continue
			}

			for _, ev := range l.Executions[i].Events {
				switch {
				case ev.ScriptHash.Equals(x.game):
					err = x.processGameEvent(ctx, b, tx.Hash(), ev)
				case ev.ScriptHash.Equals(x.coupon):
					err = x.processCouponEvent(ctx, b, tx.Hash(), ev)
				default:
					continue
				}
				if err != nil {
					return err
				}
			}
		}
	}

	return nil
}

func (x *Indexer) processGameEvent(ctx context.Context, b *block.Block, txHash util.Uint256, ev state.NotificationEvent) error {
	decode := func(e interface{ FromStackItem(*stackitem.Array) error }) bool {
		if err := e.FromStackItem(ev.Item); err != nil {
			x.log.Warn("malformed game contract notification, skipping",
				zap.String("event", ev.Name), zap.Stringer("tx", txHash), zap.Error(err))
			return false
		}
		return true
	}

	var err error

	switch ev.Name {
	case "Build":
		var e game.BuildEvent
		if !decode(&e) {
			return nil
		}
		err = x.store.PutPayment(ctx, Payment{
			TxHash:     txHash,
			PaymentID:  e.PaymentId,
			Kind:       PaymentBuild,
			Detail:     e.Level,
			Payer:      e.Payer,
			Amount:     e.Amount.Int64(),
			IncludeFee: e.IncludeFee.Int64(),
			Height:     b.Index,
			BlockTime:  b.Timestamp,
		})
	case "Create":
		var e game.CreateEvent
		if !decode(&e) {
			return nil
		}
		err = x.store.PutPayment(ctx, Payment{
			TxHash:     txHash,
			PaymentID:  e.PaymentId,
			Kind:       PaymentCreate,
			Detail:     e.Mode,
			MapID:      e.MapId,
			Payer:      e.Payer,
			Amount:     e.Amount.Int64(),
			IncludeFee: e.IncludeFee.Int64(),
			Height:     b.Index,
			BlockTime:  b.Timestamp,
		})
	case "Ready":
		var e game.ReadyEvent
		if !decode(&e) {
			return nil
		}
		err = x.store.PutPayment(ctx, Payment{
			TxHash:     txHash,
			PaymentID:  e.PaymentId,
			Kind:       PaymentReady,
			MapID:      e.MapId,
			Payer:      e.Payer,
			Amount:     e.Amount.Int64(),
			IncludeFee: e.IncludeFee.Int64(),
			Height:     b.Index,
			BlockTime:  b.Timestamp,
		})
	case "Upload":
		var e game.UploadEvent
		if !decode(&e) {
			return nil
		}
		err = x.store.PutUpload(ctx, Upload{
			TxHash:    txHash,
			MapID:     e.MapId,
			Player:    e.Player,
			UseTime:   e.UseTime.Int64(),
			Height:    b.Index,
			BlockTime: b.Timestamp,
		})
	case "Settle":
		var e game.SettleEvent
		if !decode(&e) {
			return nil
		}
		err = x.store.PutSettlement(ctx, Settlement{
			TxHash:    txHash,
			MapID:     e.MapId,
			Kind:      SettlementSettle,
			Account:   e.Builder,
			Amount:    e.Amount.Int64(),
			Height:    b.Index,
			BlockTime: b.Timestamp,
		})
	case "Share":
		var e game.ShareEvent
		if !decode(&e) {
			return nil
		}
		err = x.store.PutSettlement(ctx, Settlement{
			TxHash:    txHash,
			MapID:     e.MapId,
			Kind:      SettlementShare,
			Amount:    e.Amount.Int64(),
			Height:    b.Index,
			BlockTime: b.Timestamp,
		})
	case "Distribute":
		var e game.DistributeEvent
		if !decode(&e) {
			return nil
		}
		err = x.store.PutSettlement(ctx, Settlement{
			TxHash:    txHash,
			MapID:     e.MapId,
			Kind:      SettlementDistribute,
			Account:   e.Winner,
			Amount:    e.Amount.Int64(),
			Height:    b.Index,
			BlockTime: b.Timestamp,
		})
	case "SetFeeConfig":
		var e game.SetFeeConfigEvent
		if !decode(&e) {
			return nil
		}
		x.log.Info("protocol fee config changed",
			zap.Int64("factor", e.Factor.Int64()),
			zap.Int64("scaleDecimals", e.ScaleDecimals.Int64()),
			zap.Int64("exitMultiplier", e.ExitMultiplier.Int64()),
			zap.Stringer("tx", txHash))
	case "SetOwner":
		var e game.SetOwnerEvent
		if !decode(&e) {
			return nil
		}
		x.log.Info("contract owner changed",
			zap.Stringer("owner", e.Owner),
			zap.Stringer("tx", txHash))
	default:
		return nil
	}

	if err != nil {
		return fmt.Errorf("handle %s notification: %w", ev.Name, err)
	}
	return nil
}

// processCouponEvent indexes coupon movements. Only TransferX notifications
// are read: the contract emits them next to every NEP-17 Transfer with the
// same accounts and amount plus the attached details. Mints carry a null
// sender, burns a null receiver, so the fields are decoded leniently.
func (x *Indexer) processCouponEvent(ctx context.Context, b *block.Block, txHash util.Uint256, ev state.NotificationEvent) error {
	if ev.Name != "TransferX" {
		return nil
	}

	itms, ok := ev.Item.Value().([]stackitem.Item)
	if !ok || len(itms) != 4 {
		x.log.Warn("malformed coupon TransferX notification, skipping",
			zap.Stringer("tx", txHash), zap.Int("items", len(itms)))
		return nil
	}

	var t CouponTransfer
	t.TxHash = txHash
	t.Height = b.Index
	t.BlockTime = b.Timestamp

	if fromB, _ := itms[0].TryBytes(); len(fromB) == util.Uint160Size {
		t.From, _ = util.Uint160DecodeBytesBE(fromB)
	}
	if toB, _ := itms[1].TryBytes(); len(toB) == util.Uint160Size {
		t.To, _ = util.Uint160DecodeBytesBE(toB)
	}
	amount, err := itms[2].TryInteger()
	if err != nil {
		x.log.Warn("malformed coupon TransferX amount, skipping",
			zap.Stringer("tx", txHash), zap.Error(err))
		return nil
	}
	t.Amount = amount.Int64()
	t.Details, _ = itms[3].TryBytes()

	if err := x.store.PutCouponTransfer(ctx, t); err != nil {
		return fmt.Errorf("handle TransferX notification: %w", err)
	}
	return nil
}
