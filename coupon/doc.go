/*
Coupon contract is the fungible in-game credit of the Mapforge economy.

Coupons are indivisible NEP-17 style tokens minted by the game contract when
players pawn GAS and burned when they redeem it back. Players spend coupons
on map payments through the game contract, which is the only account allowed
to move coupons on behalf of another one (TransferX, Mint, Burn). Regular
wallet-to-wallet transfers are available to anybody owning coupons via the
standard Transfer method.

Coupon balances are plain storage entries keyed by account script hash. An
account drained to zero keeps its entry with a zero value, the ledger never
deletes balance records.

# Contract notifications

Transfer notification. This is NEP-17 standard notification.

	Transfer:
	  - name: from
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer

TransferX notification. This is enhanced transfer notification with details.
The first byte of details encodes the purpose of the transfer (pawn mint,
redeem burn, payment debit, claim payout); payment debits carry the opaque
payment identifier in the remaining bytes.

	TransferX:
	  - name: from
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer
	  - name: details
	    type: ByteArray
*/
package coupon
