/*
Package token implements Token contract of the CurateAI suite.

Token contract stores CAT balances of all curation reward recipients. It is a
NEP-17 compatible contract, so it can be tracked and controlled by N3
compatible network monitors and wallet software.

CAT enters circulation only through reward claims: the settlement contract
mints the claimed amount to the claiming author. There is no other emission
path, which keeps the total supply bounded by the per-day mint budget times
the number of settled days.

# Contract notifications

Transfer notification. This is a NEP-17 standard notification.

	Transfer:
	  - name: from
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer
*/
package token

/*
Contract storage model.

# Summary
Key-value storage format:
 - 'TokenCirculation' -> int
   total amount of CAT minted through reward claims
 - 'a<account>' -> int
   CAT balance of the account
 - 'r' -> 20-byte script hash
   RoleManager contract reference

# Accounting
Contract stores balances of all CAT holders.
*/
