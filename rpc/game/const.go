package game

import (
	gamecontract "github.com/mapforge-game/mapforge-contract/game"
)

const (
	// ExchangeRate is the amount of GAS (fixed8) backing one coupon.
	ExchangeRate = gamecontract.ExchangeRate
	// FeeUpperLimit caps a single entry fee, the redeem leg cap additionally
	// scales with the configured exit multiplier.
	FeeUpperLimit = gamecontract.FeeUpperLimit
	// MaxExchangeAmount bounds the coupon amount of a single exchange.
	MaxExchangeAmount = gamecontract.MaxExchangeAmount
	// UseTimeUnfinished is the Upload event sentinel for a session the player
	// did not finish.
	UseTimeUnfinished = gamecontract.UseTimeUnfinished

	// InsufficientFundsError is returned if the supplied GAS value does not
	// cover the exchange base plus the entry fee.
	InsufficientFundsError = gamecontract.ErrInsufficientFunds

	// InvalidExchangeAmountError is returned on a non-positive exchange amount.
	InvalidExchangeAmountError = gamecontract.ErrInvalidExchangeAmount

	// ExchangeLimitError is returned if the exchange amount is over
	// MaxExchangeAmount.
	ExchangeLimitError = gamecontract.ErrExchangeLimit

	// InvalidFeeConfigError is returned on an out-of-bounds fee configuration.
	InvalidFeeConfigError = gamecontract.ErrInvalidFeeConfig

	// InvalidPaymentAmountError is returned on a non-positive payment amount.
	InvalidPaymentAmountError = gamecontract.ErrInvalidPaymentAmount

	// InvalidProtocolFeeError is returned if the fee portion of a payment is
	// negative or exceeds the payment itself.
	InvalidProtocolFeeError = gamecontract.ErrInvalidProtocolFee

	// InvalidParamError is returned on malformed settlement arguments.
	InvalidParamError = gamecontract.ErrInvalidParam
)
