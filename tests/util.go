package tests

import (
	"path"
	"testing"

	"github.com/curate-ai/curate-contract/common"
	"github.com/mr-tron/base58"
	"github.com/nspcc-dev/neo-go/pkg/core/interop/storage"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/neotest/chain"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

const (
	roleManagerPath = "../contracts/rolemanager"
	tokenPath       = "../contracts/token"
	postPath        = "../contracts/post"
	votePath        = "../contracts/vote"
	settlementPath  = "../contracts/settlement"
)

// curateContracts groups addresses of a deployed contract suite.
type curateContracts struct {
	role   util.Uint160
	token  util.Uint160
	post   util.Uint160
	vote   util.Uint160
	settle util.Uint160
}

func newExecutor(t *testing.T) *neotest.Executor {
	bc, acc := chain.NewSingle(t)
	return neotest.NewExecutor(t, bc, acc, acc)
}

func compileCurateContract(t *testing.T, e *neotest.Executor, ctrPath string) *neotest.Contract {
	return neotest.CompileFile(t, e.CommitteeHash, ctrPath, path.Join(ctrPath, "config.yml"))
}

// deployCurateContractsRaw deploys the whole suite in dependency order with
// the committee as the role manager owner, but leaves the settlement and
// voting contract addresses unset. Zero dailyMint selects the contract
// default.
func deployCurateContractsRaw(t *testing.T, e *neotest.Executor, dailyMint int64) curateContracts {
	ctrRole := compileCurateContract(t, e, roleManagerPath)
	ctrToken := compileCurateContract(t, e, tokenPath)
	ctrPost := compileCurateContract(t, e, postPath)
	ctrVote := compileCurateContract(t, e, votePath)
	ctrSettle := compileCurateContract(t, e, settlementPath)

	e.DeployContract(t, ctrRole, []any{e.CommitteeHash})
	e.DeployContract(t, ctrToken, []any{ctrRole.Hash})
	e.DeployContract(t, ctrPost, []any{ctrRole.Hash})
	e.DeployContract(t, ctrVote, []any{ctrRole.Hash, ctrPost.Hash})
	e.DeployContract(t, ctrSettle, []any{ctrToken.Hash, ctrPost.Hash, dailyMint})

	return curateContracts{
		role:   ctrRole.Hash,
		token:  ctrToken.Hash,
		post:   ctrPost.Hash,
		vote:   ctrVote.Hash,
		settle: ctrSettle.Hash,
	}
}

func deployCurateContracts(t *testing.T, e *neotest.Executor, dailyMint int64) curateContracts {
	c := deployCurateContractsRaw(t, e, dailyMint)
	e.CommitteeInvoker(c.role).Invoke(t, stackitem.Null{}, "setSettlementAndVotingContract",
		c.settle, c.vote)
	return c
}

func appointModerator(t *testing.T, e *neotest.Executor, c curateContracts) neotest.Signer {
	mod := e.NewAccount(t)
	e.CommitteeInvoker(c.role).Invoke(t, stackitem.Null{}, "assignModerator", mod.ScriptHash())
	return mod
}

func appointCurator(t *testing.T, e *neotest.Executor, c curateContracts, mod neotest.Signer) neotest.Signer {
	cur := e.NewAccount(t)
	e.NewInvoker(c.role, mod).Invoke(t, stackitem.Null{}, "assignCurator",
		mod.ScriptHash(), cur.ScriptHash())
	return cur
}

// travelDays appends an empty block with a timestamp shifted the given number
// of reward days forward.
func travelDays(t *testing.T, e *neotest.Executor, days int) {
	b := e.NewUnsignedBlock(t)
	b.Timestamp += uint64(days * common.DayLength)
	require.NoError(t, e.Chain.AddBlock(e.SignBlock(b)))
}

func currentDay(t *testing.T, c *neotest.ContractInvoker) int64 {
	s, err := c.TestInvoke(t, "getCurrentDay")
	require.NoError(t, err)
	return s.Top().BigInt().Int64()
}

// contentRef builds a base58 string resembling a content-addressed storage
// reference.
func contentRef(seed byte) string {
	data := make([]byte, 32)
	for i := range data {
		data[i] = seed
	}
	return base58.Encode(data)
}

func iteratorToArray(iter *storage.Iterator) []stackitem.Item {
	stackItems := make([]stackitem.Item, 0)
	for iter.Next() {
		stackItems = append(stackItems, iter.Value())
	}
	return stackItems
}

// dayPosts collects identifiers from the post contract's per-day index.
func dayPosts(t *testing.T, c *neotest.ContractInvoker, day int64) []int64 {
	s, err := c.TestInvoke(t, "iterateDayPosts", day)
	require.NoError(t, err)

	iter, ok := s.Top().Value().(*storage.Iterator)
	require.True(t, ok)

	var ids []int64
	for _, item := range iteratorToArray(iter) {
		n, err := item.TryInteger()
		require.NoError(t, err)
		ids = append(ids, n.Int64())
	}
	return ids
}
