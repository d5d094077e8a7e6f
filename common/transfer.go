package common

var (
	pawnPrefix    = []byte{0x01}
	redeemPrefix  = []byte{0x02}
	paymentPrefix = []byte{0x03}
	claimPrefix   = []byte{0x04}
)

// PawnTransferDetails marks a coupon mint performed by the exchange.
func PawnTransferDetails() []byte {
	return pawnPrefix
}

// RedeemTransferDetails marks a coupon burn performed by the exchange.
func RedeemTransferDetails() []byte {
	return redeemPrefix
}

// PaymentTransferDetails marks a custody debit for a game-action payment and
// carries the opaque payment identifier supplied by the payer.
func PaymentTransferDetails(paymentID string) []byte {
	return append(paymentPrefix, []byte(paymentID)...)
}

// ClaimTransferDetails marks a custody payout of an accumulated reward.
func ClaimTransferDetails() []byte {
	return claimPrefix
}
