package indexer

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	s, err := OpenStore(filepath.Join(t.TempDir(), "index.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, s.Close())
	})
	return s
}

func TestOpenStoreRequiresPath(t *testing.T) {
	_, err := OpenStore("")
	require.Error(t, err)
}

func TestStoreWatermark(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, ok, err := s.Height(ctx)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, s.SaveHeight(ctx, 5))

	h, ok, err := s.Height(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.EqualValues(t, 5, h)

	require.NoError(t, s.SaveHeight(ctx, 6))

	h, _, err = s.Height(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 6, h)
}

func TestStorePayments(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	payer := util.Uint160{1, 2, 3}
	build := Payment{
		TxHash:     util.Uint256{0xaa},
		PaymentID:  "p1",
		Kind:       PaymentBuild,
		Detail:     "sliver",
		Payer:      payer,
		Amount:     900,
		IncludeFee: 300,
		Height:     7,
		BlockTime:  1700000000000,
	}
	ready := Payment{
		TxHash:    util.Uint256{0xbb},
		PaymentID: "p1",
		Kind:      PaymentReady,
		MapID:     "m1",
		Payer:     payer,
		Amount:    800,
		Height:    9,
		BlockTime: 1700000015000,
	}
	other := Payment{
		TxHash:    util.Uint256{0xcc},
		PaymentID: "p2",
		Kind:      PaymentCreate,
		Detail:    "duo",
		MapID:     "m2",
		Payer:     payer,
		Amount:    200,
		Height:    8,
	}

	require.NoError(t, s.PutPayment(ctx, ready))
	require.NoError(t, s.PutPayment(ctx, build))
	require.NoError(t, s.PutPayment(ctx, other))

	payments, err := s.Payments(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, []Payment{build, ready}, payments)

	payments, err = s.Payments(ctx, "missing")
	require.NoError(t, err)
	require.Empty(t, payments)
}

func TestStoreUploads(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u1 := Upload{
		TxHash:    util.Uint256{0x01},
		MapID:     "m1",
		Player:    util.Uint160{4, 5},
		UseTime:   800,
		Height:    10,
		BlockTime: 1700000030000,
	}
	u2 := Upload{
		TxHash:  util.Uint256{0x02},
		MapID:   "m1",
		Player:  util.Uint160{6, 7},
		UseTime: -1,
		Height:  11,
	}

	require.NoError(t, s.PutUpload(ctx, u1))
	require.NoError(t, s.PutUpload(ctx, u2))
	require.NoError(t, s.PutUpload(ctx, Upload{TxHash: util.Uint256{0x03}, MapID: "m2", Player: util.Uint160{8}, UseTime: 5, Height: 12}))

	uploads, err := s.Uploads(ctx, "m1")
	require.NoError(t, err)
	require.Equal(t, []Upload{u1, u2}, uploads)
}

func TestStoreSettlements(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	settle := Settlement{
		TxHash:    util.Uint256{0x11},
		MapID:     "m1",
		Kind:      SettlementSettle,
		Account:   util.Uint160{1},
		Amount:    840,
		Height:    20,
		BlockTime: 1700000060000,
	}
	share := Settlement{
		TxHash:    util.Uint256{0x11},
		MapID:     "m1",
		Kind:      SettlementShare,
		Amount:    120,
		Height:    20,
		BlockTime: 1700000060000,
	}
	distribute := Settlement{
		TxHash:    util.Uint256{0x11},
		MapID:     "m1",
		Kind:      SettlementDistribute,
		Account:   util.Uint160{2},
		Amount:    1020,
		Height:    20,
		BlockTime: 1700000060000,
	}

	require.NoError(t, s.PutSettlement(ctx, settle))
	require.NoError(t, s.PutSettlement(ctx, share))
	require.NoError(t, s.PutSettlement(ctx, distribute))

	settlements, err := s.Settlements(ctx, "m1")
	require.NoError(t, err)
	require.Equal(t, []Settlement{settle, share, distribute}, settlements)

	require.True(t, settlements[1].Account.Equals(util.Uint160{}))
}

func TestStoreMintedSupply(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	acc := util.Uint160{9}
	other := util.Uint160{10}

	supply, err := s.MintedSupply(ctx)
	require.NoError(t, err)
	require.Zero(t, supply)

	// Mints.
	require.NoError(t, s.PutCouponTransfer(ctx, CouponTransfer{TxHash: util.Uint256{0x21}, To: acc, Amount: 1000, Details: []byte{0x01}, Height: 1}))
	require.NoError(t, s.PutCouponTransfer(ctx, CouponTransfer{TxHash: util.Uint256{0x22}, To: other, Amount: 500, Details: []byte{0x01}, Height: 2}))
	// Regular transfer does not change the supply.
	require.NoError(t, s.PutCouponTransfer(ctx, CouponTransfer{TxHash: util.Uint256{0x23}, From: acc, To: other, Amount: 200, Height: 3}))
	// Burn.
	require.NoError(t, s.PutCouponTransfer(ctx, CouponTransfer{TxHash: util.Uint256{0x24}, From: other, Amount: 300, Details: []byte{0x02}, Height: 4}))

	supply, err = s.MintedSupply(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1200, supply)
}
