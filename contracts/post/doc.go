/*
Package post implements Post contract of the CurateAI suite.

Post contract stores all submitted posts: their author, opaque content
reference, tags, creation day and cumulative vote score. The score is updated
exclusively by the voting contract and is never reset; the settlement
contract reads posts grouped by creation day to distribute daily rewards.

# Contract notifications

PostCreated notification. This notification is produced when an author
registers a new post.

	PostCreated:
	  - name: postId
	    type: Integer
	  - name: author
	    type: Hash160
	  - name: contentRef
	    type: String
	  - name: tags
	    type: String
*/
package post

/*
Contract storage model.

# Summary
Key-value storage format:
 - 'i' -> int
   identifier of the latest registered post (post counter)
 - 'r' -> 20-byte script hash
   RoleManager contract reference
 - 'p<id>' -> std.Serialize(Post)
   post record, id is encoded as 8-byte BE integer
 - 'd<day><id>' -> int
   per-day post index, day and id are encoded as 8-byte BE integers,
   value is the post id

# Posts
Contract records every registered post forever. The per-day index groups
posts by creation day for settlement scans.
*/
