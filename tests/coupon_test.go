package tests

import (
	"testing"

	"github.com/mapforge-game/mapforge-contract/coupon"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

const couponPath = "../coupon"

func TestCouponInfo(t *testing.T) {
	_, _, cCoupon := newGameInvoker(t)

	cCoupon.Invoke(t, "MFC", "symbol")
	cCoupon.Invoke(t, int64(0), "decimals")
	cCoupon.Invoke(t, int64(0), "totalSupply")
}

func TestCouponGameGated(t *testing.T) {
	_, _, cCoupon := newGameInvoker(t)

	acc := cCoupon.NewAccount(t)
	accHash := acc.ScriptHash()

	cCoupon.InvokeFail(t, coupon.ErrGameOnly, "mint", accHash, int64(100), []byte{0x01})
	cCoupon.InvokeFail(t, coupon.ErrGameOnly, "burn", accHash, int64(100), []byte{0x02})
	cCoupon.InvokeFail(t, coupon.ErrGameOnly, "transferX", accHash, cCoupon.CommitteeHash, int64(100), []byte{0x03})
}

func TestCouponTransfer(t *testing.T) {
	_, cGame, cCoupon := newGameInvoker(t)

	acc := cCoupon.NewAccount(t)
	accHash := acc.ScriptHash()
	rcv := cCoupon.NewAccount(t)
	rcvHash := rcv.ScriptHash()

	pawnExact(t, cGame, acc, 1000)
	cCoupon.Invoke(t, int64(1000), "balanceOf", accHash)
	cCoupon.Invoke(t, int64(1000), "totalSupply")

	cAcc := cCoupon.WithSigners(acc)
	cRcv := cCoupon.WithSigners(rcv)

	// Only the account owner can move its coupons.
	cRcv.Invoke(t, false, "transfer", accHash, rcvHash, int64(300), nil)

	h := cAcc.Invoke(t, true, "transfer", accHash, rcvHash, int64(300), nil)
	aer := cAcc.CheckHalt(t, h)
	transfers := filterEvents(aer, "Transfer")
	require.Equal(t, 1, len(transfers))
	require.Equal(t, stackitem.NewArray([]stackitem.Item{
		stackitem.Make(accHash.BytesBE()),
		stackitem.Make(rcvHash.BytesBE()),
		stackitem.Make(300),
	}), transfers[0].Item)

	cCoupon.Invoke(t, int64(700), "balanceOf", accHash)
	cCoupon.Invoke(t, int64(300), "balanceOf", rcvHash)

	cAcc.Invoke(t, false, "transfer", accHash, rcvHash, int64(701), nil)
	cAcc.Invoke(t, false, "transfer", accHash, rcvHash, int64(-1), nil)
	cAcc.Invoke(t, false, "transfer", accHash, randomBytes(10), int64(1), nil)

	// Draining an account keeps its entry at zero, and a zero transfer
	// from it still succeeds.
	cAcc.Invoke(t, true, "transfer", accHash, rcvHash, int64(700), nil)
	cCoupon.Invoke(t, int64(0), "balanceOf", accHash)
	cAcc.Invoke(t, true, "transfer", accHash, rcvHash, int64(0), nil)

	cCoupon.Invoke(t, int64(1000), "balanceOf", rcvHash)
	cCoupon.Invoke(t, int64(1000), "totalSupply")
}
