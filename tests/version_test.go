package tests

import (
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/curate-ai/curate-contract/common"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/stretchr/testify/require"
)

func TestVersion(t *testing.T) {
	data, err := os.ReadFile("../VERSION")
	require.NoError(t, err)

	v := strings.TrimPrefix(string(data), "v")
	parts := strings.Split(strings.TrimSpace(v), ".")
	require.Len(t, parts, 3)

	var ver [3]int
	for i := range parts {
		ver[i], err = strconv.Atoi(parts[i])
		require.NoError(t, err)
	}

	require.Equal(t, common.Version, ver[0]*1_000_000+ver[1]*1_000+ver[2],
		"version from common package is different from the one in VERSION file")
}

func TestContractsVersion(t *testing.T) {
	e := newExecutor(t)
	c := deployCurateContracts(t, e, 0)

	for _, h := range []util.Uint160{c.role, c.token, c.post, c.vote, c.settle} {
		e.CommitteeInvoker(h).Invoke(t, common.Version, "version")
	}
}

func TestUpdateAccess(t *testing.T) {
	e := newExecutor(t)
	c := deployCurateContracts(t, e, 0)

	acc := e.NewAccount(t)
	for _, h := range []util.Uint160{c.role, c.token, c.post, c.vote, c.settle} {
		e.NewInvoker(h, acc).InvokeFail(t, "only committee can update contract",
			"update", []byte{}, []byte{}, nil)
	}
}
