/*
Package rolemanager implements RoleManager contract of the CurateAI suite.

RoleManager contract stores curation capabilities of user accounts. The
contract owner appoints moderators, moderators appoint curators, and only
curators may cast votes through the voting contract. The contract also holds
the one-time wiring of the settlement and the voting contract addresses that
other contracts of the suite consult to authorize privileged calls (score
updates and reward minting). Roles are permanent: there is no revocation.

# Contract notifications

ModeratorAssigned notification. This notification is produced when the
contract owner grants the Moderator role to an account.

	ModeratorAssigned:
	  - name: account
	    type: Hash160

CuratorAssigned notification. This notification is produced when a moderator
grants the Curator role to an account.

	CuratorAssigned:
	  - name: account
	    type: Hash160
	  - name: moderator
	    type: Hash160
*/
package rolemanager

/*
Contract storage model.

# Summary
Key-value storage format:
 - 'o' -> 20-byte script hash
   contract owner set at deployment
 - 's' -> 20-byte script hash
   settlement contract reference
 - 'v' -> 20-byte script hash
   voting contract reference
 - 'm<account>' -> 1
   accounts holding the Moderator role
 - 'c<account>' -> 1
   accounts holding the Curator role
*/
