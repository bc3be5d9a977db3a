package vote

import (
	"github.com/curate-ai/curate-contract/common"
	"github.com/curate-ai/curate-contract/contracts/rolemanager/roleconst"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

const (
	roleManagerKey = 'r'
	postKey        = 'p'
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
		addrPost        interop.Hash160
	})

	if len(args.addrRoleManager) != interop.Hash160Len {
		panic("bad role manager contract address")
	}
	if len(args.addrPost) != interop.Hash160Len {
		panic("bad post contract address")
	}

	storage.Put(ctx, roleManagerKey, args.addrRoleManager)
	storage.Put(ctx, postKey, args.addrPost)

	runtime.Log("vote contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(nefFile, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nefFile, manifest, common.AppendVersion(data))
	runtime.Log("vote contract updated")
}

// Vote casts a weighted vote of the voter on the post, permanently increasing
// the post's cumulative score by weight. Voter must hold the Curator role and
// witness the transaction. Weight must be positive; no upper bound is
// enforced here, the reward cap emerges from the proportional split of the
// fixed daily mint at settlement.
//
// It produces Voted notification.
func Vote(voter interop.Hash160, postID, weight int) {
	ctx := storage.GetReadOnlyContext()

	if weight <= 0 {
		panic("non-positive vote weight")
	}

	roleManager := storage.Get(ctx, roleManagerKey).(interop.Hash160)
	isCurator := contract.Call(roleManager, "hasRole", contract.ReadOnly,
		voter, roleconst.Curator).(bool)
	if !isCurator {
		panic("not a curator")
	}

	common.CheckWitness(voter)

	postContract := storage.Get(ctx, postKey).(interop.Hash160)
	contract.Call(postContract, "addScore", contract.All, postID, weight)

	runtime.Notify("Voted", voter, postID, weight)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}
