package post

import (
	"github.com/curate-ai/curate-contract/common"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// Post groups data of a single submitted post. Posts are never deleted and
// their score only grows.
type Post struct {
	// Sequential identifier, 1-based.
	ID int

	// Account of the post author.
	Author interop.Hash160

	// Opaque reference to the post content, e.g. an IPFS hash.
	ContentRef string

	// Opaque tag string attached by the author.
	Tags string

	// Index of the reward day the post was created on. Settlement of that
	// day is the only one the post participates in.
	Day int

	// Cumulative weight of all votes ever cast on the post.
	Score int
}

const (
	counterKey     = 'i'
	roleManagerKey = 'r'

	postPrefix = 'p'
	dayPrefix  = 'd'
)

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	ctx := storage.GetContext()

	if isUpdate {
		args := data.([]any)
		version := args[len(args)-1].(int)

		common.CheckVersion(version)

		return
	}

	args := data.(struct {
		addrRoleManager interop.Hash160
	})

	if len(args.addrRoleManager) != interop.Hash160Len {
		panic("bad role manager contract address")
	}

	storage.Put(ctx, roleManagerKey, args.addrRoleManager)
	storage.Put(ctx, counterKey, 0)

	runtime.Log("post contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(nefFile, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nefFile, manifest, common.AppendVersion(data))
	runtime.Log("post contract updated")
}

// CreatePost registers a new post of the author and returns its identifier.
// Identifiers are sequential starting from 1 in call order across all
// authors. The post is attributed to the reward day of the executing block.
// Author must witness the transaction.
//
// It produces PostCreated notification.
func CreatePost(author interop.Hash160, contentRef, tags string) int {
	ctx := storage.GetContext()

	if len(author) != interop.Hash160Len {
		panic("bad author address")
	}

	common.CheckOwnerWitness(author)

	id := common.GetInt(ctx, counterKey) + 1
	storage.Put(ctx, counterKey, id)

	day := common.CurrentDay()

	p := Post{
		ID:         id,
		Author:     author,
		ContentRef: contentRef,
		Tags:       tags,
		Day:        day,
		Score:      0,
	}

	common.SetSerialized(ctx, postKey(id), p)
	storage.Put(ctx, dayKey(day, id), id)

	runtime.Notify("PostCreated", id, author, contentRef, tags)

	return id
}

// AddScore increases the cumulative score of the post by weight. It can be
// invoked only by the voting contract registered in the role manager
// contract; vote authorization is the voting contract's concern.
func AddScore(postID, weight int) {
	ctx := storage.GetContext()

	checkVotingCaller(ctx)

	if weight <= 0 {
		panic("non-positive weight")
	}

	p := getPost(ctx, postID)
	p.Score += weight
	common.SetSerialized(ctx, postKey(postID), p)
}

// GetPost returns the stored post by its identifier.
func GetPost(postID int) Post {
	return getPost(storage.GetReadOnlyContext(), postID)
}

// GetPostScore returns the cumulative vote score of the post.
func GetPostScore(postID int) int {
	return getPost(storage.GetReadOnlyContext(), postID).Score
}

// GetAuthor returns the author account of the post.
func GetAuthor(postID int) interop.Hash160 {
	return getPost(storage.GetReadOnlyContext(), postID).Author
}

// PostCount returns the total number of registered posts.
func PostCount() int {
	return common.GetInt(storage.GetReadOnlyContext(), counterKey)
}

// IterateDayPosts returns an iterator over identifiers of all posts created
// on the given reward day.
func IterateDayPosts(day int) iterator.Iterator {
	ctx := storage.GetReadOnlyContext()
	prefix := append([]byte{dayPrefix}, common.FixedKey(day)...)
	return storage.Find(ctx, prefix, storage.ValuesOnly)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func getPost(ctx storage.Context, postID int) Post {
	data := storage.Get(ctx, postKey(postID))
	if data == nil {
		panic("post not found")
	}

	return std.Deserialize(data.([]byte)).(Post)
}

func checkVotingCaller(ctx storage.Context) {
	roleManager := storage.Get(ctx, roleManagerKey).(interop.Hash160)
	voting := contract.Call(roleManager, "votingContract", contract.ReadOnly).(interop.Hash160)

	if !runtime.GetCallingScriptHash().Equals(voting) {
		panic("not invoked by the voting contract")
	}
}

func postKey(postID int) []byte {
	return append([]byte{postPrefix}, common.FixedKey(postID)...)
}

func dayKey(day, postID int) []byte {
	key := append([]byte{dayPrefix}, common.FixedKey(day)...)
	return append(key, common.FixedKey(postID)...)
}
