package tests

import (
	"testing"

	"github.com/curate-ai/curate-contract/common"
	"github.com/stretchr/testify/require"
)

func TestPostCreate(t *testing.T) {
	e := newExecutor(t)
	c := deployCurateContracts(t, e, 0)

	postInv := e.CommitteeInvoker(c.post)
	alice := e.NewAccount(t)
	bob := e.NewAccount(t)

	t.Run("missing author witness", func(t *testing.T) {
		postInv.WithSigners(bob).InvokeFail(t, common.ErrOwnerWitnessFailed,
			"createPost", alice.ScriptHash(), contentRef(1), "ai")
	})

	postInv.WithSigners(alice).Invoke(t, 1, "createPost",
		alice.ScriptHash(), contentRef(1), "ai,governance")
	postInv.WithSigners(bob).Invoke(t, 2, "createPost",
		bob.ScriptHash(), contentRef(2), "")
	postInv.WithSigners(alice).Invoke(t, 3, "createPost",
		alice.ScriptHash(), contentRef(3), "ai")

	postInv.Invoke(t, 3, "postCount")
	postInv.Invoke(t, 0, "getPostScore", 2)

	s, err := postInv.TestInvoke(t, "getAuthor", 2)
	require.NoError(t, err)
	require.Equal(t, bob.ScriptHash().BytesBE(), s.Top().Bytes())

	t.Run("unknown post", func(t *testing.T) {
		for _, method := range []string{"getPost", "getPostScore", "getAuthor"} {
			_, err := postInv.TestInvoke(t, method, 42)
			require.Error(t, err)
			require.Contains(t, err.Error(), "post not found")
		}
	})
}

func TestPostDayIndex(t *testing.T) {
	e := newExecutor(t)
	c := deployCurateContracts(t, e, 0)

	postInv := e.CommitteeInvoker(c.post)
	settleInv := e.CommitteeInvoker(c.settle)
	alice := e.NewAccount(t)

	day := currentDay(t, settleInv)

	postInv.WithSigners(alice).Invoke(t, 1, "createPost",
		alice.ScriptHash(), contentRef(1), "")
	postInv.WithSigners(alice).Invoke(t, 2, "createPost",
		alice.ScriptHash(), contentRef(2), "")

	travelDays(t, e, 1)

	postInv.WithSigners(alice).Invoke(t, 3, "createPost",
		alice.ScriptHash(), contentRef(3), "")

	require.Equal(t, []int64{1, 2}, dayPosts(t, postInv, day))
	require.Equal(t, []int64{3}, dayPosts(t, postInv, day+1))
	require.Empty(t, dayPosts(t, postInv, day+2))
}

func TestPostAddScoreRestricted(t *testing.T) {
	e := newExecutor(t)
	c := deployCurateContracts(t, e, 0)

	postInv := e.CommitteeInvoker(c.post)
	alice := e.NewAccount(t)

	postInv.WithSigners(alice).Invoke(t, 1, "createPost",
		alice.ScriptHash(), contentRef(1), "")

	postInv.InvokeFail(t, "not invoked by the voting contract", "addScore", 1, 10)
	postInv.WithSigners(alice).InvokeFail(t, "not invoked by the voting contract",
		"addScore", 1, 10)

	postInv.Invoke(t, 0, "getPostScore", 1)
}
