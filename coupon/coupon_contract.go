package coupon

import (
	"github.com/mapforge-game/mapforge-contract/common"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// Token holds all token info.
type Token struct {
	// Ticker symbol
	Symbol string
	// Amount of decimals
	Decimals int
	// Storage key for circulation value
	CirculationKey string
}

const (
	symbol      = "MFC"
	decimals    = 0
	circulation = "CouponSupply"

	ownerKey        = "contractOwner"
	gameContractKey = "gameScriptHash"
)

// ErrGameOnly is thrown when a method reserved for the game contract is
// invoked from anywhere else.
const ErrGameOnly = "must be invoked by the game contract"

var token Token

func createToken() Token {
	return Token{
		Symbol:         symbol,
		Decimals:       decimals,
		CirculationKey: circulation,
	}
}

func init() {
	token = createToken()
}

// nolint:deadcode,unused
func _deploy(data interface{}, isUpdate bool) {
	ctx := storage.GetContext()
	if isUpdate {
		args := data.([]interface{})
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	args := data.(struct {
		addrGame interop.Hash160
	})

	if len(args.addrGame) != interop.Hash160Len {
		panic("incorrect length of game contract script hash")
	}

	tx := runtime.GetScriptContainer()

	storage.Put(ctx, ownerKey, tx.Sender)
	storage.Put(ctx, gameContractKey, args.addrGame)

	runtime.Log("coupon contract initialized")
}

// Update method updates contract source code and manifest. Can be invoked
// only by the contract owner.
func Update(script []byte, manifest []byte, data interface{}) {
	ctx := storage.GetReadOnlyContext()
	owner := storage.Get(ctx, ownerKey).(interop.Hash160)
	common.CheckOwnerWitness(owner)

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("coupon contract updated")
}

// Symbol is a NEP-17 standard method that returns the coupon ticker.
func Symbol() string {
	return token.Symbol
}

// Decimals is a NEP-17 standard method that returns precision of the coupon
// asset. Coupons are indivisible, so it is always zero.
func Decimals() int {
	return token.Decimals
}

// TotalSupply is a NEP-17 standard method that returns the amount of coupons
// in circulation, i.e. minted by the exchange and not yet redeemed.
func TotalSupply() int {
	ctx := storage.GetReadOnlyContext()
	return token.getSupply(ctx)
}

// BalanceOf is a NEP-17 standard method that returns the coupon balance of
// the specified account.
func BalanceOf(account interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return token.balanceOf(ctx, account)
}

// Transfer is a NEP-17 standard method that transfers coupons from one
// account to another. Can be invoked only by the account owner.
//
// Produces Transfer and TransferX notifications. TransferX notification
// will have empty details field.
func Transfer(from, to interop.Hash160, amount int, data interface{}) bool {
	ctx := storage.GetContext()
	return token.transfer(ctx, from, to, amount, false, nil)
}

// TransferX is a method for coupon transfers performed on behalf of an
// account. Can be invoked only by the game contract, which debits payers
// into its custody and pays claimed rewards out of it; the payer's
// authorization is their witness on the game contract entry point.
//
// Produces Transfer and TransferX notifications.
func TransferX(from, to interop.Hash160, amount int, details []byte) {
	ctx := storage.GetContext()
	requireGameContract(ctx)

	result := token.transfer(ctx, from, to, amount, true, details)
	if !result {
		panic("can't transfer assets")
	}
}

// Mint creates the specified amount of coupons on the account and increases
// total supply. Can be invoked only by the game contract when a pawn payment
// has been collected.
//
// Produces Transfer and TransferX notifications with empty sender.
func Mint(to interop.Hash160, amount int, details []byte) {
	ctx := storage.GetContext()
	requireGameContract(ctx)

	ok := token.transfer(ctx, nil, to, amount, true, details)
	if !ok {
		panic("can't transfer assets")
	}

	supply := token.getSupply(ctx)
	supply = supply + amount
	storage.Put(ctx, token.CirculationKey, supply)
	runtime.Log("assets were minted")
}

// Burn destroys the specified amount of coupons on the account and decreases
// total supply. Can be invoked only by the game contract before a redemption
// payout is made.
//
// Produces Transfer and TransferX notifications with empty receiver.
func Burn(from interop.Hash160, amount int, details []byte) {
	ctx := storage.GetContext()
	requireGameContract(ctx)

	ok := token.transfer(ctx, from, nil, amount, true, details)
	if !ok {
		panic("can't transfer assets")
	}

	supply := token.getSupply(ctx)
	if supply < amount {
		panic("negative supply after burn")
	}

	supply = supply - amount
	storage.Put(ctx, token.CirculationKey, supply)
	runtime.Log("assets were burned")
}

// Version returns version of the contract.
func Version() int {
	return common.Version
}

// getSupply gets the token totalSupply value from VM storage.
func (t Token) getSupply(ctx storage.Context) int {
	return common.GetIntOrZero(ctx, t.CirculationKey)
}

// balanceOf gets the token balance of a specific address.
func (t Token) balanceOf(ctx storage.Context, holder interop.Hash160) int {
	return common.GetIntOrZero(ctx, holder)
}

func (t Token) transfer(ctx storage.Context, from, to interop.Hash160, amount int, trusted bool, details []byte) bool {
	balanceFrom, ok := t.canTransfer(ctx, from, to, amount, trusted)
	if !ok {
		return false
	}

	if len(from) == interop.Hash160Len {
		// Drained accounts keep a zero entry, the ledger never deletes them.
		storage.Put(ctx, from, balanceFrom-amount)
	}

	if len(to) == interop.Hash160Len {
		balanceTo := t.balanceOf(ctx, to)
		storage.Put(ctx, to, balanceTo+amount)
	}

	runtime.Notify("Transfer", from, to, amount)
	runtime.Notify("TransferX", from, to, amount, details)

	return true
}

// canTransfer returns the balance the sender can spend from.
func (t Token) canTransfer(ctx storage.Context, from, to interop.Hash160, amount int, trusted bool) (int, bool) {
	if amount < 0 {
		runtime.Log("negative amount")
		return 0, false
	}

	if !trusted {
		if len(to) != interop.Hash160Len || !isUsableAddress(from) {
			runtime.Log("bad script hashes")
			return 0, false
		}
	} else if len(from) == 0 {
		return 0, true
	}

	balanceFrom := t.balanceOf(ctx, from)
	if balanceFrom < amount {
		runtime.Log("not enough assets")
		return 0, false
	}

	return balanceFrom, true
}

// isUsableAddress checks if the sender is either a signing account or the
// calling smart contract itself.
func isUsableAddress(addr interop.Hash160) bool {
	if len(addr) == interop.Hash160Len {
		if runtime.CheckWitness(addr) {
			return true
		}

		// Check if a smart contract is calling script hash
		callingScriptHash := runtime.GetCallingScriptHash()
		if common.BytesEqual(callingScriptHash, addr) {
			return true
		}
	}

	return false
}

func requireGameContract(ctx storage.Context) {
	if !common.FromKnownContract(ctx, runtime.GetCallingScriptHash(), gameContractKey) {
		panic(ErrGameOnly)
	}
}
