package settlement

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

// DayRecord groups audit data of a single settled reward day.
type DayRecord struct {
	// Sum of scores of all posts created on the day, read at settlement
	// time.
	TotalScore int

	// Total amount credited to authors, never exceeds the daily mint
	// amount.
	Minted int
}

// post is a (sufficient) part of github.com/curate-ai/curate-contract/contracts/post.Post
// to prevent cross-contract imports that may fail due to internal `_deploy` calls.
type post struct {
	ID         int
	Author     interop.Hash160
	ContentRef string
	Tags       string
	Day        int
	Score      int
}

const (
	// DefaultDailyMintAmount is the per-day CAT emission budget used when
	// deployment does not override it.
	DefaultDailyMintAmount = 100_000

	tokenKey     = 't'
	postKey      = 'p'
	dailyMintKey = 'm'

	settledPrefix   = 's'
	claimablePrefix = 'c'
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
		addrToken interop.Hash160
		addrPost  interop.Hash160
		dailyMint int
	})

	if len(args.addrToken) != interop.Hash160Len {
		panic("bad token contract address")
	}
	if len(args.addrPost) != interop.Hash160Len {
		panic("bad post contract address")
	}

	dailyMint := args.dailyMint
	if dailyMint <= 0 {
		dailyMint = DefaultDailyMintAmount
	}

	storage.Put(ctx, tokenKey, args.addrToken)
	storage.Put(ctx, postKey, args.addrPost)
	storage.Put(ctx, dailyMintKey, dailyMint)

	runtime.Log("settlement contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(nefFile, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nefFile, manifest, common.AppendVersion(data))
	runtime.Log("settlement contract updated")
}

// SettleDay converts vote scores of all posts created on the given reward day
// into claimable CAT credits of their authors. Anyone can invoke it: the day
// index alone determines the outcome.
//
// Only days that have already ended can be settled, and each day is settled
// at most once. Every post of the day contributes
// floor(dailyMint * score / totalScore) to its author, where score is the
// post's live cumulative score at settlement time; a post never participates
// in any other settlement, so votes arriving after the settlement of its
// creation day raise the score without further reward effect. The sum of all
// credits never exceeds the daily mint amount, division remainders are not
// minted. A day with no scored posts settles with zero distribution.
//
// It produces DaySettled notification.
func SettleDay(day int) {
	ctx := storage.GetContext()

	if day < 0 || day >= common.CurrentDay() {
		panic("cannot settle the current or a future day")
	}

	recordKey := settledKey(day)
	if storage.Get(ctx, recordKey) != nil {
		panic("day already settled")
	}

	postContract := storage.Get(ctx, postKey).(interop.Hash160)

	var posts []post

	totalScore := 0
	it := contract.Call(postContract, "iterateDayPosts", contract.ReadOnly, day).(iterator.Iterator)
	for iterator.Next(it) {
		id := iterator.Value(it).(int)
		p := contract.Call(postContract, "getPost", contract.ReadOnly, id).(post)
		if p.Score == 0 {
			continue
		}

		totalScore += p.Score
		posts = append(posts, p)
	}

	dailyMint := common.GetInt(ctx, dailyMintKey)
	minted := 0

	for i := 0; i < len(posts); i++ {
		share := dailyMint * posts[i].Score / totalScore
		if share == 0 {
			continue
		}

		key := claimableKey(posts[i].Author)
		storage.Put(ctx, key, common.GetInt(ctx, key)+share)
		minted += share
	}

	common.SetSerialized(ctx, recordKey, DayRecord{
		TotalScore: totalScore,
		Minted:     minted,
	})

	runtime.Notify("DaySettled", day, totalScore, minted)
}

// ClaimRewards transfers the whole claimable balance of the account to the
// account by minting CAT and returns the claimed amount. Account must
// witness the transaction. Claiming with a zero balance is a no-op success
// returning 0, so retries are safe.
//
// The claimable record is removed before the token contract is invoked:
// a reentrant claim during the mint observes a zero balance.
//
// It produces RewardsClaimed notification.
func ClaimRewards(account interop.Hash160) int {
	ctx := storage.GetContext()

	if len(account) != interop.Hash160Len {
		panic("bad account address")
	}

	common.CheckOwnerWitness(account)

	key := claimableKey(account)
	amount := common.GetInt(ctx, key)
	if amount == 0 {
		return 0
	}

	storage.Delete(ctx, key)

	tokenContract := storage.Get(ctx, tokenKey).(interop.Hash160)
	contract.Call(tokenContract, "mint", contract.All, account, amount)

	runtime.Notify("RewardsClaimed", account, amount)

	return amount
}

// GetCurrentDay returns the index of the reward day the executing block falls
// into. The index grows by one every 24 hours since the Unix epoch.
func GetCurrentDay() int {
	return common.CurrentDay()
}

// GetClaimableAmount returns the credited-but-unclaimed CAT balance of the
// account.
func GetClaimableAmount(account interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return common.GetInt(ctx, claimableKey(account))
}

// IsDaySettled returns true if the day has already been settled.
func IsDaySettled(day int) bool {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, settledKey(day)) != nil
}

// GetDaySettlement returns the audit record of a settled day.
func GetDaySettlement(day int) DayRecord {
	ctx := storage.GetReadOnlyContext()

	data := storage.Get(ctx, settledKey(day))
	if data == nil {
		panic("day not settled")
	}

	return std.Deserialize(data.([]byte)).(DayRecord)
}

// DailyMintAmount returns the per-day CAT emission budget.
func DailyMintAmount() int {
	ctx := storage.GetReadOnlyContext()
	return common.GetInt(ctx, dailyMintKey)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func settledKey(day int) []byte {
	return append([]byte{settledPrefix}, common.FixedKey(day)...)
}

func claimableKey(account interop.Hash160) []byte {
	return append([]byte{claimablePrefix}, account...)
}
