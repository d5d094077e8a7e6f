/*
Game contract is the settlement ledger of the Mapforge play-to-earn economy.

Players pawn GAS for coupons at a fixed rate and redeem them back, paying a
bounded protocol fee on both legs; the fees accumulate as protocol revenue
withdrawable by the contract owner. Coupons are spent on game actions
(building a map, creating a play space, readying up for a session) through
payment entry points that move the stake into the contract's custody and
skim a declared fee portion into the owner's reward balance. The trusted
game backend, acting as the contract owner, reports session outcomes with
Upload and distributes custody between the map builder, the protocol and
the winners with Settle. Accounts pull their accumulated rewards with Claim.

The backend computes all reward splits off-chain. The contract does not
check settlements against collected stakes and does not validate payment,
map or level identifiers; they are opaque labels replayed in notifications
for off-chain indexers.

Redeem and Claim perform an external transfer after their balance mutations
and are closed to reentry for the duration of the call.

# Contract notifications

Build notification. Produced when a map build payment is recorded.

	Build:
	  - name: paymentId
	    type: String
	  - name: level
	    type: String
	  - name: payer
	    type: Hash160
	  - name: amount
	    type: Integer
	  - name: includeFee
	    type: Integer

Create notification. Produced when a play space payment is recorded.

	Create:
	  - name: paymentId
	    type: String
	  - name: mapId
	    type: String
	  - name: mode
	    type: String
	  - name: payer
	    type: Hash160
	  - name: amount
	    type: Integer
	  - name: includeFee
	    type: Integer

Ready notification. Produced when a ready-up stake is recorded.

	Ready:
	  - name: paymentId
	    type: String
	  - name: mapId
	    type: String
	  - name: payer
	    type: Hash160
	  - name: amount
	    type: Integer
	  - name: includeFee
	    type: Integer

Upload notification. Produced when the backend reports a session completion
time. useTime of 2**53-1 marks an unfinished session.

	Upload:
	  - name: player
	    type: Hash160
	  - name: mapId
	    type: String
	  - name: useTime
	    type: Integer

Settle notification. Produced once per settlement with the builder's cut.

	Settle:
	  - name: mapId
	    type: String
	  - name: builder
	    type: Hash160
	  - name: amount
	    type: Integer

Share notification. Produced once per settlement with the protocol's share.

	Share:
	  - name: mapId
	    type: String
	  - name: amount
	    type: Integer

Distribute notification. Produced per winner within a settlement.

	Distribute:
	  - name: mapId
	    type: String
	  - name: winner
	    type: Hash160
	  - name: amount
	    type: Integer

SetFeeConfig notification. Produced when the protocol fee configuration is
replaced.

	SetFeeConfig:
	  - name: factor
	    type: Integer
	  - name: scaleDecimals
	    type: Integer
	  - name: exitMultiplier
	    type: Integer

SetOwner notification. Produced when contract ownership is transferred.

	SetOwner:
	  - name: owner
	    type: Hash160
*/
package game
