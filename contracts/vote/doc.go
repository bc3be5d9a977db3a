/*
Package vote implements Vote contract of the CurateAI suite.

Vote contract is the authorization gate for weighted voting. It checks that
the voter holds the Curator role in the role manager contract and witnesses
the transaction, then delegates the score update to the post contract, which
accepts such updates only from this contract. The contract keeps no state of
its own beside contract references: scoring is cumulative per post and lives
in the post contract.

# Contract notifications

Voted notification. This notification is produced when a curator casts a
vote.

	Voted:
	  - name: voter
	    type: Hash160
	  - name: postId
	    type: Integer
	  - name: weight
	    type: Integer
*/
package vote

/*
Contract storage model.

# Summary
Key-value storage format:
 - 'r' -> 20-byte script hash
   RoleManager contract reference
 - 'p' -> 20-byte script hash
   Post contract reference
*/
