package coupon

import (
	couponcontract "github.com/mapforge-game/mapforge-contract/coupon"
)

const (
	// GameOnlyError is returned if a method reserved for the game contract is
	// invoked from anywhere else.
	GameOnlyError = couponcontract.ErrGameOnly

	// TransferError is returned if the contract can't move coupons between
	// accounts.
	TransferError = "can't transfer assets"
)
