package tests

import (
	"math/big"
	"path"
	"testing"

	"github.com/mapforge-game/mapforge-contract/common"
	"github.com/mapforge-game/mapforge-contract/game"
	"github.com/nspcc-dev/neo-go/pkg/core/interop/storage"
	"github.com/nspcc-dev/neo-go/pkg/core/native/nativenames"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

const gamePath = "../game"

// newGameInvoker deploys the coupon and game contracts wired to each other.
// Both script hashes are known before deployment, which resolves the circular
// constructor arguments.
func newGameInvoker(t *testing.T) (*neotest.Executor, *neotest.ContractInvoker, *neotest.ContractInvoker) {
	e := newExecutor(t)

	ctrCoupon := neotest.CompileFile(t, e.CommitteeHash, couponPath, path.Join(couponPath, "config.yml"))
	ctrGame := neotest.CompileFile(t, e.CommitteeHash, gamePath, path.Join(gamePath, "config.yml"))

	e.DeployContract(t, ctrCoupon, []interface{}{ctrGame.Hash})
	e.DeployContract(t, ctrGame, []interface{}{ctrCoupon.Hash})

	return e, e.CommitteeInvoker(ctrGame.Hash), e.CommitteeInvoker(ctrCoupon.Hash)
}

// requiredGAS is the exact pawn requirement for the amount under the
// deployment default fee config (factor 3, scale 10^3, exit multiplier 2).
func requiredGAS(amount int64) int64 {
	base := amount * game.ExchangeRate
	fee := base * 3 / 1000
	if fee > game.FeeUpperLimit {
		fee = game.FeeUpperLimit
	}
	return base + fee
}

func pawnExact(t *testing.T, cGame *neotest.ContractInvoker, acc neotest.Signer, amount int64) {
	cGame.WithSigners(acc).Invoke(t, stackitem.Null{}, "pawn",
		acc.ScriptHash(), amount, requiredGAS(amount))
}

func checkFeeConfig(t *testing.T, cGame *neotest.ContractInvoker, factor, scaleDecimals, exitMultiplier int64) {
	s, err := cGame.TestInvoke(t, "protocolFee")
	require.NoError(t, err)
	require.Equal(t, 1, s.Len())

	items := s.Top().Array()
	require.Equal(t, 3, len(items))
	require.Equal(t, factor, items[0].Value().(*big.Int).Int64())
	require.Equal(t, scaleDecimals, items[1].Value().(*big.Int).Int64())
	require.Equal(t, exitMultiplier, items[2].Value().(*big.Int).Int64())
}

// checkRewardInvariant sums every reward balance entry and requires the total
// to stay within the coupons held in the game contract's custody.
func checkRewardInvariant(t *testing.T, cGame, cCoupon *neotest.ContractInvoker) {
	s, err := cGame.TestInvoke(t, "iterateRewards")
	require.NoError(t, err)
	iter, ok := s.Pop().Value().(*storage.Iterator)
	require.True(t, ok)

	total := int64(0)
	for _, kv := range iteratorToArray(iter) {
		pair := kv.Value().([]stackitem.Item)
		require.Equal(t, 2, len(pair))
		v, err := pair[1].TryInteger()
		require.NoError(t, err)
		total += v.Int64()
	}

	s, err = cCoupon.TestInvoke(t, "balanceOf", cGame.Hash)
	require.NoError(t, err)
	require.LessOrEqual(t, total, s.Top().BigInt().Int64())
}

func TestGameDeploy(t *testing.T) {
	e, cGame, cCoupon := newGameInvoker(t)

	cGame.Invoke(t, e.CommitteeHash.BytesBE(), "owner")
	cGame.Invoke(t, cCoupon.Hash.BytesBE(), "coupon")
	cGame.Invoke(t, int64(0), "revenue")
	cGame.Invoke(t, int64(common.Version), "version")
	checkFeeConfig(t, cGame, 3, 3, 2)
}

func TestOnNEP17Payment(t *testing.T) {
	e, cGame, _ := newGameInvoker(t)

	cGas := e.CommitteeInvoker(e.NativeHash(t, nativenames.Gas))
	cNeo := e.CommitteeInvoker(e.NativeHash(t, nativenames.Neo))

	// Direct GAS transfers fund the payout reserve.
	cGas.Invoke(t, true, "transfer", e.CommitteeHash, cGame.Hash, int64(1_0000_0000), nil)

	cNeo.InvokeFail(t, "only GAS is accepted", "transfer", e.CommitteeHash, cGame.Hash, int64(1), nil)
}

func TestPawn(t *testing.T) {
	e, cGame, cCoupon := newGameInvoker(t)

	acc := cGame.NewAccount(t)
	accHash := acc.ScriptHash()
	cAcc := cGame.WithSigners(acc)

	const (
		amount   = 10000
		base     = amount * game.ExchangeRate
		fee      = 30_0000
		required = base + fee
	)

	cAcc.InvokeFail(t, game.ErrInvalidExchangeAmount, "pawn", accHash, int64(0), int64(required))
	cAcc.InvokeFail(t, game.ErrInvalidExchangeAmount, "pawn", accHash, int64(-5), int64(required))
	cAcc.InvokeFail(t, game.ErrExchangeLimit, "pawn", accHash, int64(game.MaxExchangeAmount+1), int64(required))
	cAcc.InvokeFail(t, game.ErrInsufficientFunds+": required 100300000, supplied 100299999",
		"pawn", accHash, int64(amount), int64(required-1))
	cGame.WithSigners(e.NewAccount(t)).InvokeFail(t, common.ErrWitnessFailed,
		"pawn", accHash, int64(amount), int64(required))

	h := cAcc.Invoke(t, stackitem.Null{}, "pawn", accHash, int64(amount), int64(required))
	aer := cAcc.CheckHalt(t, h)
	xfers := filterEvents(aer, "TransferX")
	require.Equal(t, 1, len(xfers))
	items := xfers[0].Item.Value().([]stackitem.Item)
	require.Equal(t, 4, len(items))
	details, err := items[3].TryBytes()
	require.NoError(t, err)
	require.Equal(t, []byte{0x01}, details)

	cCoupon.Invoke(t, int64(amount), "balanceOf", accHash)
	cCoupon.Invoke(t, int64(amount), "totalSupply")
	cGame.Invoke(t, int64(fee), "revenue")

	// Contracts pay no transaction fees, the custody balance is exact.
	cGas := e.CommitteeInvoker(e.NativeHash(t, nativenames.Gas))
	cGas.Invoke(t, int64(required), "balanceOf", cGame.Hash)

	// Any value over the requirement is retained by the contract, not
	// refunded.
	cAcc.Invoke(t, stackitem.Null{}, "pawn", accHash, int64(amount), int64(required+500))
	cGas.Invoke(t, int64(2*required+500), "balanceOf", cGame.Hash)
	cCoupon.Invoke(t, int64(2*amount), "balanceOf", accHash)
	cGame.Invoke(t, int64(2*fee), "revenue")
}

func TestFeeCap(t *testing.T) {
	e, cGame, cCoupon := newGameInvoker(t)

	// The raw fee on both legs would be 1.2 GAS, over the upper limit.
	const amount = 40_000_000
	base := int64(amount) * game.ExchangeRate

	cGame.Invoke(t, stackitem.Null{}, "pawn", e.CommitteeHash, int64(amount), base+game.FeeUpperLimit)
	cGame.Invoke(t, int64(game.FeeUpperLimit), "revenue")
	cCoupon.Invoke(t, int64(amount), "balanceOf", e.CommitteeHash)

	// The exit cap scales with the exit multiplier.
	cGame.Invoke(t, stackitem.Null{}, "redeem", e.CommitteeHash, int64(amount))
	cGame.Invoke(t, int64(3*game.FeeUpperLimit), "revenue")
	cCoupon.Invoke(t, int64(0), "balanceOf", e.CommitteeHash)
}

func TestRedeem(t *testing.T) {
	e, cGame, cCoupon := newGameInvoker(t)

	acc := cGame.NewAccount(t)
	accHash := acc.ScriptHash()
	cAcc := cGame.WithSigners(acc)

	const (
		amount = 10000
		base   = amount * game.ExchangeRate
		entry  = 30_0000
		exit   = 60_0000
	)

	pawnExact(t, cGame, acc, amount)

	cAcc.InvokeFail(t, game.ErrInvalidExchangeAmount, "redeem", accHash, int64(0))
	cAcc.InvokeFail(t, game.ErrInvalidExchangeAmount, "redeem", accHash, int64(-1))
	cAcc.InvokeFail(t, game.ErrExchangeLimit, "redeem", accHash, int64(game.MaxExchangeAmount+1))
	cGame.WithSigners(e.NewAccount(t)).InvokeFail(t, common.ErrWitnessFailed, "redeem", accHash, int64(amount))
	cAcc.InvokeFail(t, "can't transfer assets", "redeem", accHash, int64(amount+1))

	gasHash := e.NativeHash(t, nativenames.Gas)

	h := cAcc.Invoke(t, stackitem.Null{}, "redeem", accHash, int64(amount))
	aer := cAcc.CheckHalt(t, h)

	var payout *big.Int
	for _, ev := range aer.Events {
		if ev.Name != "Transfer" || !ev.ScriptHash.Equals(gasHash) {
			continue
		}
		items := ev.Item.Value().([]stackitem.Item)
		to, err := items[1].TryBytes()
		require.NoError(t, err)
		require.Equal(t, accHash.BytesBE(), to)
		payout = items[2].Value().(*big.Int)
	}
	require.NotNil(t, payout)
	require.Equal(t, int64(base-exit), payout.Int64())

	cCoupon.Invoke(t, int64(0), "balanceOf", accHash)
	cCoupon.Invoke(t, int64(0), "totalSupply")
	cGame.Invoke(t, int64(entry+exit), "revenue")

	// What remains in custody is exactly the fees of the round trip.
	cGas := e.CommitteeInvoker(gasHash)
	cGas.Invoke(t, int64(entry+exit), "balanceOf", cGame.Hash)
}

func TestUpdateProtocolFee(t *testing.T) {
	_, cGame, _ := newGameInvoker(t)

	acc := cGame.NewAccount(t)
	cGame.WithSigners(acc).InvokeFail(t, common.ErrOwnerWitnessFailed,
		"updateProtocolFee", int64(2), int64(2), int64(1))

	for _, args := range [][]int64{
		{0, 3, 2},
		{10, 3, 2},
		{3, 1, 2},
		{3, 19, 2},
		{3, 3, 0},
		{3, 3, 6},
	} {
		cGame.InvokeFail(t, game.ErrInvalidFeeConfig, "updateProtocolFee", args[0], args[1], args[2])
		checkFeeConfig(t, cGame, 3, 3, 2)
	}

	h := cGame.Invoke(t, stackitem.Null{}, "updateProtocolFee", int64(2), int64(2), int64(1))
	aer := cGame.CheckHalt(t, h)
	evs := filterEvents(aer, "SetFeeConfig")
	require.Equal(t, 1, len(evs))
	require.Equal(t, stackitem.NewArray([]stackitem.Item{
		stackitem.Make(2),
		stackitem.Make(2),
		stackitem.Make(1),
	}), evs[0].Item)
	checkFeeConfig(t, cGame, 2, 2, 1)

	// The new schedule applies to the next exchange.
	acc2 := cGame.NewAccount(t)
	cGame.WithSigners(acc2).Invoke(t, stackitem.Null{}, "pawn",
		acc2.ScriptHash(), int64(10000), int64(1_0200_0000))
	cGame.Invoke(t, int64(200_0000), "revenue")
}

func TestClaimRevenue(t *testing.T) {
	e, cGame, _ := newGameInvoker(t)

	acc := cGame.NewAccount(t)
	pawnExact(t, cGame, acc, 10000)

	cGame.WithSigners(acc).InvokeFail(t, common.ErrOwnerWitnessFailed, "claimRevenue")

	cGame.Invoke(t, stackitem.Null{}, "claimRevenue")
	cGame.Invoke(t, int64(0), "revenue")

	// What is left backs the minted coupons one to one.
	cGas := e.CommitteeInvoker(e.NativeHash(t, nativenames.Gas))
	cGas.Invoke(t, int64(1_0000_0000), "balanceOf", cGame.Hash)

	// Claiming zero revenue is a valid no-op.
	cGame.Invoke(t, stackitem.Null{}, "claimRevenue")
	cGame.Invoke(t, int64(0), "revenue")
}

func TestPayments(t *testing.T) {
	e, cGame, cCoupon := newGameInvoker(t)

	acc := cGame.NewAccount(t)
	accHash := acc.ScriptHash()
	cAcc := cGame.WithSigners(acc)

	pawnExact(t, cGame, acc, 5000)

	payment := dummyID("pay")

	cAcc.InvokeFail(t, game.ErrInvalidPaymentAmount, "buildMap", accHash, payment, "sliver", int64(0), int64(0))
	cAcc.InvokeFail(t, game.ErrInvalidPaymentAmount, "buildMap", accHash, payment, "sliver", int64(-10), int64(0))
	cAcc.InvokeFail(t, game.ErrInvalidProtocolFee, "buildMap", accHash, payment, "sliver", int64(900), int64(901))
	cAcc.InvokeFail(t, game.ErrInvalidProtocolFee, "buildMap", accHash, payment, "sliver", int64(900), int64(-1))
	cGame.WithSigners(e.NewAccount(t)).InvokeFail(t, common.ErrWitnessFailed,
		"buildMap", accHash, payment, "sliver", int64(900), int64(300))
	cAcc.InvokeFail(t, "can't transfer assets", "buildMap", accHash, payment, "sliver", int64(5001), int64(0))

	h := cAcc.Invoke(t, stackitem.Null{}, "buildMap", accHash, "p1", "sliver", int64(900), int64(300))
	aer := cAcc.CheckHalt(t, h)
	evs := filterEvents(aer, "Build")
	require.Equal(t, 1, len(evs))
	require.Equal(t, stackitem.NewArray([]stackitem.Item{
		stackitem.Make("p1"),
		stackitem.Make("sliver"),
		stackitem.Make(accHash.BytesBE()),
		stackitem.Make(900),
		stackitem.Make(300),
	}), evs[0].Item)

	// The payment identifier rides in the coupon transfer details.
	xfers := filterEvents(aer, "TransferX")
	require.Equal(t, 1, len(xfers))
	details, err := xfers[0].Item.Value().([]stackitem.Item)[3].TryBytes()
	require.NoError(t, err)
	require.Equal(t, append([]byte{0x03}, []byte("p1")...), details)

	cCoupon.Invoke(t, int64(4100), "balanceOf", accHash)
	cCoupon.Invoke(t, int64(900), "balanceOf", cGame.Hash)
	cGame.Invoke(t, int64(300), "rewardOf", e.CommitteeHash)

	// createSpace and readyAt share the custody flow, including the fee
	// boundaries: all of the payment or none of it.
	h = cAcc.Invoke(t, stackitem.Null{}, "createSpace", accHash, dummyID("pay"), "m1", "party", int64(200), int64(200))
	aer = cAcc.CheckHalt(t, h)
	require.Equal(t, 1, len(filterEvents(aer, "Create")))

	h = cAcc.Invoke(t, stackitem.Null{}, "readyAt", accHash, dummyID("pay"), "m1", int64(800), int64(0))
	aer = cAcc.CheckHalt(t, h)
	require.Equal(t, 1, len(filterEvents(aer, "Ready")))

	cCoupon.Invoke(t, int64(3100), "balanceOf", accHash)
	cCoupon.Invoke(t, int64(1900), "balanceOf", cGame.Hash)
	cGame.Invoke(t, int64(500), "rewardOf", e.CommitteeHash)

	checkRewardInvariant(t, cGame, cCoupon)
}

func TestUpload(t *testing.T) {
	_, cGame, _ := newGameInvoker(t)

	acc := cGame.NewAccount(t)
	accHash := acc.ScriptHash()

	cGame.WithSigners(acc).InvokeFail(t, common.ErrOwnerWitnessFailed, "upload", accHash, "m1", int64(210))

	h := cGame.Invoke(t, stackitem.Null{}, "upload", accHash, "m1", int64(210))
	aer := cGame.CheckHalt(t, h)
	evs := filterEvents(aer, "Upload")
	require.Equal(t, 1, len(evs))
	require.Equal(t, stackitem.NewArray([]stackitem.Item{
		stackitem.Make(accHash.BytesBE()),
		stackitem.Make("m1"),
		stackitem.Make(210),
	}), evs[0].Item)

	// A session the player never finished reports the sentinel time.
	h = cGame.Invoke(t, stackitem.Null{}, "upload", accHash, "m1", int64(game.UseTimeUnfinished))
	aer = cGame.CheckHalt(t, h)
	evs = filterEvents(aer, "Upload")
	require.Equal(t, 1, len(evs))
	require.Equal(t, stackitem.Make(int64(game.UseTimeUnfinished)), evs[0].Item.Value().([]stackitem.Item)[2])
}

func TestSettleAndClaim(t *testing.T) {
	e, cGame, cCoupon := newGameInvoker(t)

	builder := cGame.NewAccount(t)
	builderHash := builder.ScriptHash()
	p1 := cGame.NewAccount(t)
	p2 := cGame.NewAccount(t)

	pawnExact(t, cGame, builder, 10000)
	pawnExact(t, cGame, p1, 10000)
	pawnExact(t, cGame, p2, 10000)

	cGame.WithSigners(builder).Invoke(t, stackitem.Null{}, "buildMap",
		builderHash, "p1", "sliver", int64(900), int64(300))
	cGame.WithSigners(p1).Invoke(t, stackitem.Null{}, "readyAt",
		p1.ScriptHash(), dummyID("pay"), "m1", int64(1200), int64(0))
	cGame.WithSigners(p2).Invoke(t, stackitem.Null{}, "readyAt",
		p2.ScriptHash(), dummyID("pay"), "m1", int64(1200), int64(0))

	cCoupon.Invoke(t, int64(3300), "balanceOf", cGame.Hash)

	winners := []interface{}{builderHash, p1.ScriptHash(), p2.ScriptHash()}
	distributions := []interface{}{int64(1020), int64(612), int64(408)}

	cGame.WithSigners(builder).InvokeFail(t, common.ErrOwnerWitnessFailed,
		"settle", "m1", builderHash, int64(840), int64(120), winners, distributions)

	// A length mismatch rejects the whole call, nobody gets credited.
	cGame.InvokeFail(t, game.ErrInvalidParam, "settle", "m1", builderHash, int64(840), int64(120),
		[]interface{}{builderHash, p1.ScriptHash()}, distributions)
	cGame.InvokeFail(t, game.ErrInvalidParam, "settle", "m1", builderHash, int64(-1), int64(120),
		[]interface{}{}, []interface{}{})
	cGame.InvokeFail(t, game.ErrInvalidParam, "settle", "m1", builderHash, int64(840), int64(120),
		winners, []interface{}{int64(1020), int64(612), int64(-408)})
	cGame.Invoke(t, int64(0), "rewardOf", builderHash)

	h := cGame.Invoke(t, stackitem.Null{}, "settle", "m1", builderHash, int64(840), int64(120),
		winners, distributions)
	aer := cGame.CheckHalt(t, h)

	require.Equal(t, 5, len(aer.Events))
	require.Equal(t, "Settle", aer.Events[0].Name)
	require.Equal(t, stackitem.NewArray([]stackitem.Item{
		stackitem.Make("m1"),
		stackitem.Make(builderHash.BytesBE()),
		stackitem.Make(840),
	}), aer.Events[0].Item)
	require.Equal(t, "Share", aer.Events[1].Name)
	require.Equal(t, stackitem.NewArray([]stackitem.Item{
		stackitem.Make("m1"),
		stackitem.Make(120),
	}), aer.Events[1].Item)
	for i, want := range []int64{1020, 612, 408} {
		ev := aer.Events[2+i]
		require.Equal(t, "Distribute", ev.Name)
		items := ev.Item.Value().([]stackitem.Item)
		require.Equal(t, 3, len(items))
		require.Equal(t, want, items[2].Value().(*big.Int).Int64())
	}

	// 300 build fee on top of the settled 840+120+2040.
	cGame.Invoke(t, int64(1860), "rewardOf", builderHash)
	cGame.Invoke(t, int64(420), "rewardOf", e.CommitteeHash)
	cGame.Invoke(t, int64(612), "rewardOf", p1.ScriptHash())
	cGame.Invoke(t, int64(408), "rewardOf", p2.ScriptHash())
	checkRewardInvariant(t, cGame, cCoupon)

	cGame.WithSigners(builder).Invoke(t, stackitem.Null{}, "claim", builderHash)
	cCoupon.Invoke(t, int64(10960), "balanceOf", builderHash)
	cGame.Invoke(t, int64(0), "rewardOf", builderHash)

	// A claim with nothing accrued succeeds and moves nothing.
	cGame.WithSigners(builder).Invoke(t, stackitem.Null{}, "claim", builderHash)
	cCoupon.Invoke(t, int64(10960), "balanceOf", builderHash)

	cGame.WithSigners(p1).Invoke(t, stackitem.Null{}, "claim", p1.ScriptHash())
	cGame.WithSigners(p2).Invoke(t, stackitem.Null{}, "claim", p2.ScriptHash())
	cGame.Invoke(t, stackitem.Null{}, "claim", e.CommitteeHash)

	cCoupon.Invoke(t, int64(9412), "balanceOf", p1.ScriptHash())
	cCoupon.Invoke(t, int64(9208), "balanceOf", p2.ScriptHash())
	cCoupon.Invoke(t, int64(420), "balanceOf", e.CommitteeHash)

	// The claims drained custody to exactly zero.
	cCoupon.Invoke(t, int64(0), "balanceOf", cGame.Hash)
	checkRewardInvariant(t, cGame, cCoupon)
}

func TestTransferOwnership(t *testing.T) {
	_, cGame, _ := newGameInvoker(t)

	acc := cGame.NewAccount(t)
	accHash := acc.ScriptHash()

	cGame.WithSigners(acc).InvokeFail(t, common.ErrOwnerWitnessFailed, "transferOwnership", accHash)
	cGame.InvokeFail(t, game.ErrInvalidParam, "transferOwnership", randomBytes(19))

	h := cGame.Invoke(t, stackitem.Null{}, "transferOwnership", accHash)
	aer := cGame.CheckHalt(t, h)
	require.Equal(t, 1, len(filterEvents(aer, "SetOwner")))

	cGame.Invoke(t, accHash.BytesBE(), "owner")

	cGame.InvokeFail(t, common.ErrOwnerWitnessFailed, "updateProtocolFee", int64(2), int64(2), int64(1))
	cGame.WithSigners(acc).Invoke(t, stackitem.Null{}, "updateProtocolFee", int64(2), int64(2), int64(1))
}

const reenterPath = "../internal/testcontracts/reenter"

func TestReentrancyGuard(t *testing.T) {
	e, cGame, cCoupon := newGameInvoker(t)

	ctrReenter := neotest.CompileFile(t, e.CommitteeHash, reenterPath, path.Join(reenterPath, "config.yml"))
	e.DeployContract(t, ctrReenter, []interface{}{cGame.Hash})
	cReenter := e.CommitteeInvoker(ctrReenter.Hash)

	// Arm the attacker with coupons and a claimable reward. The readyAt
	// payment puts the 50 coupons backing the reward into custody.
	cGame.Invoke(t, stackitem.Null{}, "pawn", e.CommitteeHash, int64(20000), requiredGAS(20000))
	cCoupon.Invoke(t, true, "transfer", e.CommitteeHash, ctrReenter.Hash, int64(10000), nil)
	cGame.Invoke(t, stackitem.Null{}, "readyAt", e.CommitteeHash, dummyID("pay"), "m9", int64(50), int64(0))
	cGame.Invoke(t, stackitem.Null{}, "settle", "m9", ctrReenter.Hash, int64(50), int64(0),
		[]interface{}{}, []interface{}{})

	// The payout callback re-enters redeem, then claim. Both hit the same
	// transfer lock, and the fault rolls the burn back with everything else.
	cReenter.Invoke(t, stackitem.Null{}, "setMode", "redeem")
	cReenter.InvokeFail(t, common.ErrReentrantCall, "loot", int64(2000))

	cReenter.Invoke(t, stackitem.Null{}, "setMode", "claim")
	cReenter.InvokeFail(t, common.ErrReentrantCall, "loot", int64(2000))

	cCoupon.Invoke(t, int64(10000), "balanceOf", ctrReenter.Hash)
	cGame.Invoke(t, int64(50), "rewardOf", ctrReenter.Hash)

	// With the callback disarmed the same calls settle fine, the lock is
	// released between transactions.
	cReenter.Invoke(t, stackitem.Null{}, "setMode", "")
	cReenter.Invoke(t, stackitem.Null{}, "loot", int64(2000))
	cCoupon.Invoke(t, int64(8000), "balanceOf", ctrReenter.Hash)

	cReenter.Invoke(t, stackitem.Null{}, "drain")
	cGame.Invoke(t, int64(0), "rewardOf", ctrReenter.Hash)
	cCoupon.Invoke(t, int64(8050), "balanceOf", ctrReenter.Hash)
}
