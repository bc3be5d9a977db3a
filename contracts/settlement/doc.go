/*
Package settlement implements Settlement contract of the CurateAI suite.

Settlement contract is the reward-accrual core: once per reward day (a 24h
interval counted from the Unix epoch) it converts vote scores of that day's
posts into claimable CAT credits bounded by a fixed daily mint budget, and
lets authors drain their credits through the token contract's mint.

The contract maintains two invariants that the rest of the suite relies on:

  - exact-once settlement: a per-day record doubles as the idempotency
    guard, so a day's budget can never be distributed twice, and the sum of
    credits per day never exceeds the budget (floor division leaves
    remainders unminted);
  - exact-once claiming: the claimable record is deleted before the token
    contract is called, so a reentrant claim observes a zero balance and
    becomes a no-op.

Any failed operation faults the transaction, rolling back every write: there
is no partially settled or partially claimed state.

# Contract notifications

DaySettled notification. This notification is produced when a reward day is
settled.

	DaySettled:
	  - name: day
	    type: Integer
	  - name: totalScore
	    type: Integer
	  - name: minted
	    type: Integer

RewardsClaimed notification. This notification is produced when an author
claims accrued rewards.

	RewardsClaimed:
	  - name: account
	    type: Hash160
	  - name: amount
	    type: Integer
*/
package settlement

/*
Contract storage model.

# Summary
Key-value storage format:
 - 't' -> 20-byte script hash
   Token contract reference
 - 'p' -> 20-byte script hash
   Post contract reference
 - 'm' -> int
   per-day mint budget
 - 's<day>' -> std.Serialize(DayRecord)
   settled day record, day is encoded as 8-byte BE integer; presence of
   the record marks the day as settled
 - 'c<account>' -> int
   credited-but-unclaimed CAT of the account

# Settlement
Contract scans the post contract's per-day index at settlement time and
reads live cumulative scores; no snapshots are stored.
*/
