// Package game contains RPC wrappers for Mapforge Game contract.
package game

import (
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"math/big"
	"unicode/utf8"
)

// GameFeeConfig is a contract-specific game.FeeConfig type used by its methods.
type GameFeeConfig struct {
	Factor *big.Int
	ScaleDecimals *big.Int
	ExitMultiplier *big.Int
}

// BuildEvent represents "Build" event emitted by the contract.
type BuildEvent struct {
	PaymentId string
	Level string
	Payer util.Uint160
	Amount *big.Int
	IncludeFee *big.Int
}

// CreateEvent represents "Create" event emitted by the contract.
type CreateEvent struct {
	PaymentId string
	MapId string
	Mode string
	Payer util.Uint160
	Amount *big.Int
	IncludeFee *big.Int
}

// ReadyEvent represents "Ready" event emitted by the contract.
type ReadyEvent struct {
	PaymentId string
	MapId string
	Payer util.Uint160
	Amount *big.Int
	IncludeFee *big.Int
}

// UploadEvent represents "Upload" event emitted by the contract.
type UploadEvent struct {
	Player util.Uint160
	MapId string
	UseTime *big.Int
}

// SettleEvent represents "Settle" event emitted by the contract.
type SettleEvent struct {
	MapId string
	Builder util.Uint160
	Amount *big.Int
}

// ShareEvent represents "Share" event emitted by the contract.
type ShareEvent struct {
	MapId string
	Amount *big.Int
}

// DistributeEvent represents "Distribute" event emitted by the contract.
type DistributeEvent struct {
	MapId string
	Winner util.Uint160
	Amount *big.Int
}

// SetFeeConfigEvent represents "SetFeeConfig" event emitted by the contract.
type SetFeeConfigEvent struct {
	Factor *big.Int
	ScaleDecimals *big.Int
	ExitMultiplier *big.Int
}

// SetOwnerEvent represents "SetOwner" event emitted by the contract.
type SetOwnerEvent struct {
	Owner util.Uint160
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
	CallAndExpandIterator(contract util.Uint160, method string, maxItems int, params ...any) (*result.Invoke, error)
	TerminateSession(sessionID uuid.UUID) error
	TraverseIterator(sessionID uuid.UUID, iterator *result.Iterator, num int) ([]stackitem.Item, error)
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeRun(script []byte) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	SendRun(script []byte) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	invoker Invoker
	hash util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	actor Actor
	hash util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	return &Contract{ContractReader{actor, hash}, actor, hash}
}

// Coupon invokes `coupon` method of contract.
func (c *ContractReader) Coupon() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "coupon"))
}

// IterateRewards invokes `iterateRewards` method of contract.
func (c *ContractReader) IterateRewards() (uuid.UUID, result.Iterator, error) {
	return unwrap.SessionIterator(c.invoker.Call(c.hash, "iterateRewards"))
}

// IterateRewardsExpanded is similar to IterateRewards (uses the same contract
// method), but can be useful if the server used doesn't support sessions and
// doesn't expand iterators. It creates a script that will get the specified
// number of result items from the iterator right in the VM and return them to
// you. It's only limited by VM stack and GAS available for RPC invocations.
func (c *ContractReader) IterateRewardsExpanded(_numOfIteratorItems int) ([]stackitem.Item, error) {
	return unwrap.Array(c.invoker.CallAndExpandIterator(c.hash, "iterateRewards", _numOfIteratorItems))
}

// Owner invokes `owner` method of contract.
func (c *ContractReader) Owner() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "owner"))
}

// ProtocolFee invokes `protocolFee` method of contract.
func (c *ContractReader) ProtocolFee() (*GameFeeConfig, error) {
	return itemToGameFeeConfig(unwrap.Item(c.invoker.Call(c.hash, "protocolFee")))
}

// Revenue invokes `revenue` method of contract.
func (c *ContractReader) Revenue() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "revenue"))
}

// RewardOf invokes `rewardOf` method of contract.
func (c *ContractReader) RewardOf(account util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "rewardOf", account))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// BuildMap creates a transaction invoking `buildMap` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) BuildMap(payer util.Uint160, paymentID string, level string, amount *big.Int, includeFee *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "buildMap", payer, paymentID, level, amount, includeFee)
}

// BuildMapTransaction creates a transaction invoking `buildMap` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) BuildMapTransaction(payer util.Uint160, paymentID string, level string, amount *big.Int, includeFee *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "buildMap", payer, paymentID, level, amount, includeFee)
}

// BuildMapUnsigned creates a transaction invoking `buildMap` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) BuildMapUnsigned(payer util.Uint160, paymentID string, level string, amount *big.Int, includeFee *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "buildMap", nil, payer, paymentID, level, amount, includeFee)
}

// Claim creates a transaction invoking `claim` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Claim(from util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "claim", from)
}

// ClaimTransaction creates a transaction invoking `claim` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ClaimTransaction(from util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "claim", from)
}

// ClaimUnsigned creates a transaction invoking `claim` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ClaimUnsigned(from util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "claim", nil, from)
}

// ClaimRevenue creates a transaction invoking `claimRevenue` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ClaimRevenue() (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "claimRevenue")
}

// ClaimRevenueTransaction creates a transaction invoking `claimRevenue` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ClaimRevenueTransaction() (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "claimRevenue")
}

// ClaimRevenueUnsigned creates a transaction invoking `claimRevenue` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ClaimRevenueUnsigned() (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "claimRevenue", nil)
}

// CreateSpace creates a transaction invoking `createSpace` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) CreateSpace(payer util.Uint160, paymentID string, mapID string, mode string, amount *big.Int, includeFee *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "createSpace", payer, paymentID, mapID, mode, amount, includeFee)
}

// CreateSpaceTransaction creates a transaction invoking `createSpace` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) CreateSpaceTransaction(payer util.Uint160, paymentID string, mapID string, mode string, amount *big.Int, includeFee *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "createSpace", payer, paymentID, mapID, mode, amount, includeFee)
}

// CreateSpaceUnsigned creates a transaction invoking `createSpace` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) CreateSpaceUnsigned(payer util.Uint160, paymentID string, mapID string, mode string, amount *big.Int, includeFee *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "createSpace", nil, payer, paymentID, mapID, mode, amount, includeFee)
}

// Pawn creates a transaction invoking `pawn` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Pawn(from util.Uint160, amount *big.Int, value *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "pawn", from, amount, value)
}

// PawnTransaction creates a transaction invoking `pawn` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) PawnTransaction(from util.Uint160, amount *big.Int, value *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "pawn", from, amount, value)
}

// PawnUnsigned creates a transaction invoking `pawn` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) PawnUnsigned(from util.Uint160, amount *big.Int, value *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "pawn", nil, from, amount, value)
}

// ReadyAt creates a transaction invoking `readyAt` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ReadyAt(payer util.Uint160, paymentID string, mapID string, amount *big.Int, includeFee *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "readyAt", payer, paymentID, mapID, amount, includeFee)
}

// ReadyAtTransaction creates a transaction invoking `readyAt` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ReadyAtTransaction(payer util.Uint160, paymentID string, mapID string, amount *big.Int, includeFee *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "readyAt", payer, paymentID, mapID, amount, includeFee)
}

// ReadyAtUnsigned creates a transaction invoking `readyAt` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ReadyAtUnsigned(payer util.Uint160, paymentID string, mapID string, amount *big.Int, includeFee *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "readyAt", nil, payer, paymentID, mapID, amount, includeFee)
}

// Redeem creates a transaction invoking `redeem` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Redeem(from util.Uint160, amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "redeem", from, amount)
}

// RedeemTransaction creates a transaction invoking `redeem` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RedeemTransaction(from util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "redeem", from, amount)
}

// RedeemUnsigned creates a transaction invoking `redeem` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RedeemUnsigned(from util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "redeem", nil, from, amount)
}

// Settle creates a transaction invoking `settle` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Settle(mapID string, builder util.Uint160, builderReward *big.Int, protocolShare *big.Int, winners []util.Uint160, distributions []*big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "settle", mapID, builder, builderReward, protocolShare, winners, distributions)
}

// SettleTransaction creates a transaction invoking `settle` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SettleTransaction(mapID string, builder util.Uint160, builderReward *big.Int, protocolShare *big.Int, winners []util.Uint160, distributions []*big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "settle", mapID, builder, builderReward, protocolShare, winners, distributions)
}

// SettleUnsigned creates a transaction invoking `settle` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SettleUnsigned(mapID string, builder util.Uint160, builderReward *big.Int, protocolShare *big.Int, winners []util.Uint160, distributions []*big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "settle", nil, mapID, builder, builderReward, protocolShare, winners, distributions)
}

// TransferOwnership creates a transaction invoking `transferOwnership` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) TransferOwnership(newOwner util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "transferOwnership", newOwner)
}

// TransferOwnershipTransaction creates a transaction invoking `transferOwnership` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) TransferOwnershipTransaction(newOwner util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "transferOwnership", newOwner)
}

// TransferOwnershipUnsigned creates a transaction invoking `transferOwnership` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) TransferOwnershipUnsigned(newOwner util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "transferOwnership", nil, newOwner)
}

// Update creates a transaction invoking `update` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Update(script []byte, manifest []byte, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "update", script, manifest, data)
}

// UpdateTransaction creates a transaction invoking `update` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateTransaction(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "update", script, manifest, data)
}

// UpdateUnsigned creates a transaction invoking `update` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateUnsigned(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "update", nil, script, manifest, data)
}

// UpdateProtocolFee creates a transaction invoking `updateProtocolFee` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) UpdateProtocolFee(factor *big.Int, scaleDecimals *big.Int, exitMultiplier *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "updateProtocolFee", factor, scaleDecimals, exitMultiplier)
}

// UpdateProtocolFeeTransaction creates a transaction invoking `updateProtocolFee` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateProtocolFeeTransaction(factor *big.Int, scaleDecimals *big.Int, exitMultiplier *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "updateProtocolFee", factor, scaleDecimals, exitMultiplier)
}

// UpdateProtocolFeeUnsigned creates a transaction invoking `updateProtocolFee` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateProtocolFeeUnsigned(factor *big.Int, scaleDecimals *big.Int, exitMultiplier *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "updateProtocolFee", nil, factor, scaleDecimals, exitMultiplier)
}

// Upload creates a transaction invoking `upload` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Upload(player util.Uint160, mapID string, useTime *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "upload", player, mapID, useTime)
}

// UploadTransaction creates a transaction invoking `upload` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UploadTransaction(player util.Uint160, mapID string, useTime *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "upload", player, mapID, useTime)
}

// UploadUnsigned creates a transaction invoking `upload` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UploadUnsigned(player util.Uint160, mapID string, useTime *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "upload", nil, player, mapID, useTime)
}

// itemToGameFeeConfig converts stack item into *GameFeeConfig.
func itemToGameFeeConfig(item stackitem.Item, err error) (*GameFeeConfig, error) {
	if err != nil {
		return nil, err
	}
	var res = new(GameFeeConfig)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of GameFeeConfig from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *GameFeeConfig) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.Factor, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Factor: %w", err)
	}

	index++
	res.ScaleDecimals, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ScaleDecimals: %w", err)
	}

	index++
	res.ExitMultiplier, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ExitMultiplier: %w", err)
	}

	return nil
}

// BuildEventsFromApplicationLog retrieves a set of all emitted events
// with "Build" name from the provided [result.ApplicationLog].
func BuildEventsFromApplicationLog(log *result.ApplicationLog) ([]*BuildEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*BuildEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Build" {
				continue
			}
			event := new(BuildEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize BuildEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to BuildEvent or
// returns an error if it's not possible to do to so.
func (e *BuildEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 5 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.PaymentId, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field PaymentId: %w", err)
	}

	index++
	e.Level, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Level: %w", err)
	}

	index++
	e.Payer, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Payer: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	index++
	e.IncludeFee, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field IncludeFee: %w", err)
	}

	return nil
}

// CreateEventsFromApplicationLog retrieves a set of all emitted events
// with "Create" name from the provided [result.ApplicationLog].
func CreateEventsFromApplicationLog(log *result.ApplicationLog) ([]*CreateEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*CreateEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Create" {
				continue
			}
			event := new(CreateEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize CreateEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to CreateEvent or
// returns an error if it's not possible to do to so.
func (e *CreateEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 6 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.PaymentId, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field PaymentId: %w", err)
	}

	index++
	e.MapId, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field MapId: %w", err)
	}

	index++
	e.Mode, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Mode: %w", err)
	}

	index++
	e.Payer, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Payer: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	index++
	e.IncludeFee, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field IncludeFee: %w", err)
	}

	return nil
}

// ReadyEventsFromApplicationLog retrieves a set of all emitted events
// with "Ready" name from the provided [result.ApplicationLog].
func ReadyEventsFromApplicationLog(log *result.ApplicationLog) ([]*ReadyEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ReadyEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Ready" {
				continue
			}
			event := new(ReadyEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ReadyEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ReadyEvent or
// returns an error if it's not possible to do to so.
func (e *ReadyEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 5 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.PaymentId, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field PaymentId: %w", err)
	}

	index++
	e.MapId, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field MapId: %w", err)
	}

	index++
	e.Payer, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Payer: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	index++
	e.IncludeFee, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field IncludeFee: %w", err)
	}

	return nil
}

// UploadEventsFromApplicationLog retrieves a set of all emitted events
// with "Upload" name from the provided [result.ApplicationLog].
func UploadEventsFromApplicationLog(log *result.ApplicationLog) ([]*UploadEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*UploadEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Upload" {
				continue
			}
			event := new(UploadEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize UploadEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to UploadEvent or
// returns an error if it's not possible to do to so.
func (e *UploadEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Player, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Player: %w", err)
	}

	index++
	e.MapId, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field MapId: %w", err)
	}

	index++
	e.UseTime, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field UseTime: %w", err)
	}

	return nil
}

// SettleEventsFromApplicationLog retrieves a set of all emitted events
// with "Settle" name from the provided [result.ApplicationLog].
func SettleEventsFromApplicationLog(log *result.ApplicationLog) ([]*SettleEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*SettleEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Settle" {
				continue
			}
			event := new(SettleEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize SettleEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to SettleEvent or
// returns an error if it's not possible to do to so.
func (e *SettleEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.MapId, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field MapId: %w", err)
	}

	index++
	e.Builder, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Builder: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// ShareEventsFromApplicationLog retrieves a set of all emitted events
// with "Share" name from the provided [result.ApplicationLog].
func ShareEventsFromApplicationLog(log *result.ApplicationLog) ([]*ShareEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ShareEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Share" {
				continue
			}
			event := new(ShareEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ShareEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ShareEvent or
// returns an error if it's not possible to do to so.
func (e *ShareEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.MapId, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field MapId: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// DistributeEventsFromApplicationLog retrieves a set of all emitted events
// with "Distribute" name from the provided [result.ApplicationLog].
func DistributeEventsFromApplicationLog(log *result.ApplicationLog) ([]*DistributeEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*DistributeEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Distribute" {
				continue
			}
			event := new(DistributeEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize DistributeEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to DistributeEvent or
// returns an error if it's not possible to do to so.
func (e *DistributeEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.MapId, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field MapId: %w", err)
	}

	index++
	e.Winner, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Winner: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// SetFeeConfigEventsFromApplicationLog retrieves a set of all emitted events
// with "SetFeeConfig" name from the provided [result.ApplicationLog].
func SetFeeConfigEventsFromApplicationLog(log *result.ApplicationLog) ([]*SetFeeConfigEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*SetFeeConfigEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "SetFeeConfig" {
				continue
			}
			event := new(SetFeeConfigEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize SetFeeConfigEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to SetFeeConfigEvent or
// returns an error if it's not possible to do to so.
func (e *SetFeeConfigEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Factor, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Factor: %w", err)
	}

	index++
	e.ScaleDecimals, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ScaleDecimals: %w", err)
	}

	index++
	e.ExitMultiplier, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ExitMultiplier: %w", err)
	}

	return nil
}

// SetOwnerEventsFromApplicationLog retrieves a set of all emitted events
// with "SetOwner" name from the provided [result.ApplicationLog].
func SetOwnerEventsFromApplicationLog(log *result.ApplicationLog) ([]*SetOwnerEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*SetOwnerEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "SetOwner" {
				continue
			}
			event := new(SetOwnerEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize SetOwnerEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to SetOwnerEvent or
// returns an error if it's not possible to do to so.
func (e *SetOwnerEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 1 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Owner, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	return nil
}
