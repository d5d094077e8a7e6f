package reenter

import (
	"github.com/mapforge-game/mapforge-contract/common"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/gas"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// Malicious GAS recipient for guard tests: when a game contract payout hits
// OnNEP17Payment, it re-enters the configured game contract method.

const (
	gameKey = "gameScriptHash"
	modeKey = "reentryMode"
)

// nolint:deadcode,unused
func _deploy(data interface{}, isUpdate bool) {
	if isUpdate {
		return
	}

	args := data.(struct {
		addrGame interop.Hash160
	})
	storage.Put(storage.GetContext(), gameKey, args.addrGame)
}

// SetMode picks the method to re-enter from the payout callback: "redeem",
// "claim" or "" for none.
func SetMode(mode string) {
	storage.Put(storage.GetContext(), modeKey, mode)
}

// Loot redeems the contract's own coupons, triggering a GAS payout back to
// this contract.
func Loot(amount int) {
	game := gameAddr()
	contract.Call(game, "redeem", contract.All, runtime.GetExecutingScriptHash(), amount)
}

// Drain claims the contract's own reward balance.
func Drain() {
	game := gameAddr()
	contract.Call(game, "claim", contract.All, runtime.GetExecutingScriptHash())
}

func OnNEP17Payment(from interop.Hash160, amount int, data interface{}) {
	caller := runtime.GetCallingScriptHash()
	if !common.BytesEqual(caller, interop.Hash160(gas.Hash)) {
		panic("unsupported token")
	}

	game := gameAddr()
	if !common.BytesEqual(from, game) {
		// Plain funding transfer.
		return
	}

	mode := storage.Get(storage.GetReadOnlyContext(), modeKey)
	if mode == nil {
		return
	}

	self := runtime.GetExecutingScriptHash()
	switch string(mode.([]byte)) {
	case "redeem":
		contract.Call(game, "redeem", contract.All, self, 1)
	case "claim":
		contract.Call(game, "claim", contract.All, self)
	}
}

func gameAddr() interop.Hash160 {
	return storage.Get(storage.GetReadOnlyContext(), gameKey).(interop.Hash160)
}
