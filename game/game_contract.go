package game

import (
	"github.com/mapforge-game/mapforge-contract/common"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/gas"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// FeeConfig is the bounds-checked protocol fee configuration. It is stored
// and replaced as a whole, a partially updated config can never be observed.
type FeeConfig struct {
	// Multiplier applied to the exchange base, within [1, 9].
	Factor int
	// Decimal exponent of the fee divisor, within [2, 18].
	ScaleDecimals int
	// Extra fee multiplier of the redeem leg, within [1, 5].
	ExitMultiplier int
}

const (
	// ErrInvalidExchangeAmount is thrown when a non-positive amount is
	// pawned or redeemed.
	ErrInvalidExchangeAmount = "invalid exchange amount"
	// ErrExchangeLimit is thrown when the exchange amount is too big.
	ErrExchangeLimit = "exchange amount out of limit"
	// ErrInsufficientFunds is thrown when the supplied value does not cover
	// the exchange base plus the protocol fee. The full message carries the
	// required and supplied values.
	ErrInsufficientFunds = "insufficient funds"
	// ErrInvalidFeeConfig is thrown when a proposed fee configuration
	// violates any of the FeeConfig bounds.
	ErrInvalidFeeConfig = "invalid protocol fee config"
	// ErrInvalidPaymentAmount is thrown when a non-positive amount is paid
	// for a game action.
	ErrInvalidPaymentAmount = "invalid payment amount"
	// ErrInvalidProtocolFee is thrown when the fee portion of a payment
	// exceeds the payment itself.
	ErrInvalidProtocolFee = "invalid protocol fee"
	// ErrInvalidParam is thrown on malformed settlement arguments.
	ErrInvalidParam = "invalid parameter"
)

const (
	// ExchangeRate is the amount of GAS (fixed8) backing one coupon.
	ExchangeRate = 10_000
	// FeeUpperLimit caps a single entry fee at 1 GAS regardless of the
	// exchange size. The redeem leg is capped at FeeUpperLimit times the
	// configured exit multiplier.
	FeeUpperLimit = 1_0000_0000
	// MaxExchangeAmount bounds a single exchange so that its GAS base stays
	// inside the 2**53-1 JSON integer bound.
	MaxExchangeAmount = 100_000_000
	// UseTimeUnfinished is the Upload sentinel for a session the player
	// did not finish.
	UseTimeUnfinished = 9007199254740991
)

const (
	minFeeFactor      = 1
	maxFeeFactor      = 9
	minScaleDecimals  = 2
	maxScaleDecimals  = 18
	minExitMultiplier = 1
	maxExitMultiplier = 5

	defaultFeeFactor      = 3
	defaultScaleDecimals  = 3
	defaultExitMultiplier = 2
)

const (
	ownerKey          = "contractOwner"
	couponContractKey = "couponScriptHash"
	feeConfigKey      = "protocolFeeConfig"
	revenueKey        = "protocolRevenue"
	guardKey          = "transferLock"

	rewardPrefix = 'r'
)

// nolint:deadcode,unused
func _deploy(data interface{}, isUpdate bool) {
	ctx := storage.GetContext()
	if isUpdate {
		args := data.([]interface{})
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	args := data.(struct {
		addrCoupon interop.Hash160
	})

	if len(args.addrCoupon) != interop.Hash160Len {
		panic("incorrect length of coupon contract script hash")
	}

	tx := runtime.GetScriptContainer()

	storage.Put(ctx, ownerKey, tx.Sender)
	storage.Put(ctx, couponContractKey, args.addrCoupon)
	common.SetSerialized(ctx, feeConfigKey, FeeConfig{
		Factor:         defaultFeeFactor,
		ScaleDecimals:  defaultScaleDecimals,
		ExitMultiplier: defaultExitMultiplier,
	})

	runtime.Log("game contract initialized")
}

// Update method updates contract source code and manifest. Can be invoked
// only by the contract owner.
func Update(script []byte, manifest []byte, data interface{}) {
	ctx := storage.GetReadOnlyContext()
	common.CheckOwnerWitness(ownerAddr(ctx))

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("game contract updated")
}

// Pawn is a method that exchanges GAS for freshly minted coupons at the
// fixed rate. The supplied value must cover the exchange base plus the
// protocol entry fee; the whole value is pulled from the account and any
// excess over the requirement is retained by the contract, not refunded.
//
// Produces coupon Transfer and TransferX notifications and a GAS Transfer
// notification.
func Pawn(from interop.Hash160, amount, value int) {
	ctx := storage.GetContext()

	if !isUsableAddress(from) {
		panic(common.ErrWitnessFailed)
	}
	if amount <= 0 {
		panic(ErrInvalidExchangeAmount)
	}
	if amount > MaxExchangeAmount {
		panic(ErrExchangeLimit)
	}

	base := amount * ExchangeRate
	fee := entryFee(getFeeConfig(ctx), base)
	required := base + fee
	if value < required {
		panic(ErrInsufficientFunds +
			": required " + std.Itoa(required, 10) +
			", supplied " + std.Itoa(value, 10))
	}

	self := runtime.GetExecutingScriptHash()
	if !gas.Transfer(from, self, value, nil) {
		panic("pawn: failed to transfer funds, aborting")
	}

	addRevenue(ctx, fee)
	contract.Call(couponAddr(ctx), "mint", contract.All,
		from, amount, common.PawnTransferDetails())
}

// Redeem is a method that burns the account's coupons and pays the GAS base
// back minus the protocol exit fee. The burn settles before any value leaves
// the contract, and the method is closed to reentry for the duration of the
// payout.
//
// Produces coupon Transfer and TransferX notifications and a GAS Transfer
// notification.
func Redeem(from interop.Hash160, amount int) {
	ctx := storage.GetContext()
	common.EnterGuard(ctx, guardKey)

	if !isUsableAddress(from) {
		panic(common.ErrWitnessFailed)
	}
	if amount <= 0 {
		panic(ErrInvalidExchangeAmount)
	}
	if amount > MaxExchangeAmount {
		panic(ErrExchangeLimit)
	}

	contract.Call(couponAddr(ctx), "burn", contract.All,
		from, amount, common.RedeemTransferDetails())

	base := amount * ExchangeRate
	fee := exitFee(getFeeConfig(ctx), base)
	payout := base - fee
	if payout < 0 {
		panic("negative payout")
	}

	addRevenue(ctx, fee)

	self := runtime.GetExecutingScriptHash()
	if !gas.Transfer(self, from, payout, nil) {
		panic("redeem: failed to transfer funds, aborting")
	}

	common.LeaveGuard(ctx, guardKey)
}

// UpdateProtocolFee is a method that replaces the protocol fee configuration.
// Can be invoked only by the contract owner. All three bounds are validated
// together and any violation rejects the whole update.
//
// Produces SetFeeConfig notification.
func UpdateProtocolFee(factor, scaleDecimals, exitMultiplier int) {
	ctx := storage.GetContext()
	common.CheckOwnerWitness(ownerAddr(ctx))

	if factor < minFeeFactor || factor > maxFeeFactor ||
		scaleDecimals < minScaleDecimals || scaleDecimals > maxScaleDecimals ||
		exitMultiplier < minExitMultiplier || exitMultiplier > maxExitMultiplier {
		panic(ErrInvalidFeeConfig)
	}

	common.SetSerialized(ctx, feeConfigKey, FeeConfig{
		Factor:         factor,
		ScaleDecimals:  scaleDecimals,
		ExitMultiplier: exitMultiplier,
	})

	runtime.Notify("SetFeeConfig", factor, scaleDecimals, exitMultiplier)
}

// ClaimRevenue is a method that withdraws the accumulated protocol fees to
// the contract owner. Can be invoked only by the contract owner. The revenue
// accumulator is zeroed before the GAS payout is made.
//
// Produces GAS Transfer notification.
func ClaimRevenue() {
	ctx := storage.GetContext()
	owner := ownerAddr(ctx)
	common.CheckOwnerWitness(owner)

	amount := common.GetIntOrZero(ctx, revenueKey)
	storage.Put(ctx, revenueKey, 0)

	self := runtime.GetExecutingScriptHash()
	if !gas.Transfer(self, owner, amount, nil) {
		panic("claimRevenue: failed to transfer funds, aborting")
	}
}

// BuildMap is a method that records a paid map build. The payment is moved
// into the contract's custody and the fee portion is credited to the owner's
// reward balance. The payment identifier and level are opaque labels chosen
// by the backend, the ledger does not validate them.
//
// Produces Build notification along with coupon Transfer and TransferX
// notifications.
func BuildMap(payer interop.Hash160, paymentID, level string, amount, includeFee int) {
	ctx := storage.GetContext()
	pay(ctx, payer, paymentID, amount, includeFee)
	runtime.Notify("Build", paymentID, level, payer, amount, includeFee)
}

// CreateSpace is a method that records a paid play space creation within a
// map. Payment handling is the same as in BuildMap.
//
// Produces Create notification along with coupon Transfer and TransferX
// notifications.
func CreateSpace(payer interop.Hash160, paymentID, mapID, mode string, amount, includeFee int) {
	ctx := storage.GetContext()
	pay(ctx, payer, paymentID, amount, includeFee)
	runtime.Notify("Create", paymentID, mapID, mode, payer, amount, includeFee)
}

// ReadyAt is a method that records a paid ready-up stake for a map session.
// Payment handling is the same as in BuildMap.
//
// Produces Ready notification along with coupon Transfer and TransferX
// notifications.
func ReadyAt(payer interop.Hash160, paymentID, mapID string, amount, includeFee int) {
	ctx := storage.GetContext()
	pay(ctx, payer, paymentID, amount, includeFee)
	runtime.Notify("Ready", paymentID, mapID, payer, amount, includeFee)
}

// Upload is a method that records a session completion time reported by the
// game backend. Can be invoked only by the contract owner. It mutates no
// state. UseTimeUnfinished as useTime marks a session the player did not
// finish.
//
// Produces Upload notification.
func Upload(player interop.Hash160, mapID string, useTime int) {
	ctx := storage.GetReadOnlyContext()
	common.CheckOwnerWitness(ownerAddr(ctx))

	runtime.Notify("Upload", player, mapID, useTime)
}

// Settle is a method that credits the rewards of a finished map session:
// the builder's cut, the protocol's share (to the owner) and one
// distribution per winner, in order. Can be invoked only by the contract
// owner, which computes the split off-chain; the ledger bookkeeps what it
// is told and checks nothing against custody. Winners and distributions
// must have equal length, a mismatch rejects the whole call.
//
// Produces Settle, Share and one Distribute notification per winner.
func Settle(mapID string, builder interop.Hash160, builderReward, protocolShare int, winners []interop.Hash160, distributions []int) {
	ctx := storage.GetContext()
	owner := ownerAddr(ctx)
	common.CheckOwnerWitness(owner)

	if len(winners) != len(distributions) {
		panic(ErrInvalidParam)
	}
	if len(builder) != interop.Hash160Len || builderReward < 0 || protocolShare < 0 {
		panic(ErrInvalidParam)
	}
	for i := range winners {
		if len(winners[i]) != interop.Hash160Len || distributions[i] < 0 {
			panic(ErrInvalidParam)
		}
	}

	addReward(ctx, builder, builderReward)
	runtime.Notify("Settle", mapID, builder, builderReward)

	addReward(ctx, owner, protocolShare)
	runtime.Notify("Share", mapID, protocolShare)

	for i := range winners {
		addReward(ctx, winners[i], distributions[i])
		runtime.Notify("Distribute", mapID, winners[i], distributions[i])
	}
}

// Claim is a method that pays the account's accumulated reward balance out
// of the contract's custody. The balance is zeroed before the coupon
// transfer executes and the method is closed to reentry. Claiming a zero
// balance is a valid no-op.
//
// Produces coupon Transfer and TransferX notifications.
func Claim(from interop.Hash160) {
	ctx := storage.GetContext()
	common.EnterGuard(ctx, guardKey)

	if !isUsableAddress(from) {
		panic(common.ErrWitnessFailed)
	}

	key := rewardKey(from)
	amount := common.GetIntOrZero(ctx, key)
	storage.Put(ctx, key, 0)

	self := runtime.GetExecutingScriptHash()
	contract.Call(couponAddr(ctx), "transferX", contract.All,
		self, from, amount, common.ClaimTransferDetails())

	common.LeaveGuard(ctx, guardKey)
}

// TransferOwnership is a method that replaces the contract owner. Can be
// invoked only by the current owner.
//
// Produces SetOwner notification.
func TransferOwnership(newOwner interop.Hash160) {
	ctx := storage.GetContext()
	common.CheckOwnerWitness(ownerAddr(ctx))

	if len(newOwner) != interop.Hash160Len {
		panic(ErrInvalidParam)
	}

	storage.Put(ctx, ownerKey, newOwner)
	runtime.Notify("SetOwner", newOwner)
}

// OnNEP17Payment accepts GAS transfers into the contract (pawn pulls and
// payout reserve funding) and rejects every other asset.
func OnNEP17Payment(from interop.Hash160, amount int, data interface{}) {
	caller := runtime.GetCallingScriptHash()
	if !common.BytesEqual(caller, interop.Hash160(gas.Hash)) {
		panic("onNEP17Payment: only GAS is accepted")
	}
}

// Owner returns the contract owner.
func Owner() interop.Hash160 {
	ctx := storage.GetReadOnlyContext()
	return ownerAddr(ctx)
}

// Coupon returns the script hash of the coupon contract the ledger settles
// in.
func Coupon() interop.Hash160 {
	ctx := storage.GetReadOnlyContext()
	return couponAddr(ctx)
}

// ProtocolFee returns the current protocol fee configuration.
func ProtocolFee() FeeConfig {
	ctx := storage.GetReadOnlyContext()
	return getFeeConfig(ctx)
}

// Revenue returns the protocol fees accumulated since the last withdrawal,
// in GAS fixed8 units.
func Revenue() int {
	ctx := storage.GetReadOnlyContext()
	return common.GetIntOrZero(ctx, revenueKey)
}

// RewardOf returns the claimable reward balance of the account, in coupons.
func RewardOf(account interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return common.GetIntOrZero(ctx, rewardKey(account))
}

// IterateRewards returns an iterator over all reward balance entries. Keys
// are account script hashes, values are coupon amounts.
func IterateRewards() iterator.Iterator {
	ctx := storage.GetReadOnlyContext()
	return storage.Find(ctx, []byte{rewardPrefix}, storage.RemovePrefix)
}

// Version returns version of the contract.
func Version() int {
	return common.Version
}

// entryFee computes the pawn leg fee for the GAS base.
func entryFee(cfg FeeConfig, base int) int {
	fee := base * cfg.Factor / pow10(cfg.ScaleDecimals)
	if fee > FeeUpperLimit {
		fee = FeeUpperLimit
	}
	return fee
}

// exitFee computes the redeem leg fee for the GAS base. Both the fee and its
// cap scale with the exit multiplier, and the config bounds keep the result
// strictly below base.
func exitFee(cfg FeeConfig, base int) int {
	fee := base * cfg.Factor * cfg.ExitMultiplier / pow10(cfg.ScaleDecimals)
	limit := FeeUpperLimit * cfg.ExitMultiplier
	if fee > limit {
		fee = limit
	}
	return fee
}

func pow10(n int) int {
	r := 1
	for i := 0; i < n; i++ {
		r = r * 10
	}
	return r
}

// pay moves the payment into the contract's custody and credits the fee
// portion to the owner's reward balance.
func pay(ctx storage.Context, payer interop.Hash160, paymentID string, amount, includeFee int) {
	if !isUsableAddress(payer) {
		panic(common.ErrWitnessFailed)
	}
	if amount <= 0 {
		panic(ErrInvalidPaymentAmount)
	}
	if includeFee < 0 || includeFee > amount {
		panic(ErrInvalidProtocolFee)
	}

	self := runtime.GetExecutingScriptHash()
	contract.Call(couponAddr(ctx), "transferX", contract.All,
		payer, self, amount, common.PaymentTransferDetails(paymentID))

	addReward(ctx, ownerAddr(ctx), includeFee)
}

func ownerAddr(ctx storage.Context) interop.Hash160 {
	return storage.Get(ctx, ownerKey).(interop.Hash160)
}

func couponAddr(ctx storage.Context) interop.Hash160 {
	return storage.Get(ctx, couponContractKey).(interop.Hash160)
}

func getFeeConfig(ctx storage.Context) FeeConfig {
	data := storage.Get(ctx, feeConfigKey)
	return std.Deserialize(data.([]byte)).(FeeConfig)
}

func addRevenue(ctx storage.Context, amount int) {
	storage.Put(ctx, revenueKey, common.GetIntOrZero(ctx, revenueKey)+amount)
}

func rewardKey(account interop.Hash160) []byte {
	return append([]byte{rewardPrefix}, account...)
}

func addReward(ctx storage.Context, account interop.Hash160, amount int) {
	key := rewardKey(account)
	storage.Put(ctx, key, common.GetIntOrZero(ctx, key)+amount)
}

// isUsableAddress checks if the sender is either a signing account or the
// calling smart contract itself.
func isUsableAddress(addr interop.Hash160) bool {
	if len(addr) == interop.Hash160Len {
		if runtime.CheckWitness(addr) {
			return true
		}

		callingScriptHash := runtime.GetCallingScriptHash()
		if common.BytesEqual(callingScriptHash, addr) {
			return true
		}
	}

	return false
}
