package book

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/stretchr/testify/require"
)

func testAddresses() Addresses {
	var a Addresses
	for i, dst := range []*util.Uint160{&a.Role, &a.Token, &a.Post, &a.Vote, &a.Settle} {
		u := util.Uint160{byte(i + 1)}
		*dst = u
	}
	return a
}

func TestAddressesJSON(t *testing.T) {
	a := testAddresses()

	data, err := json.Marshal(a)
	require.NoError(t, err)

	var fields map[string]string
	require.NoError(t, json.Unmarshal(data, &fields))
	require.Len(t, fields, 5)
	for _, key := range []string{"role", "token", "post", "vote", "settle"} {
		require.Contains(t, fields, key)
	}

	var restored Addresses
	require.NoError(t, json.Unmarshal(data, &restored))
	require.Equal(t, a, restored)
}

func TestAddressesJSONInvalid(t *testing.T) {
	var a Addresses
	err := json.Unmarshal([]byte(`{"role": "garbage"}`), &a)
	require.Error(t, err)
	require.Contains(t, err.Error(), "role")
}

func TestWriteRead(t *testing.T) {
	a := testAddresses()
	path := filepath.Join(t.TempDir(), "deployedContracts.json")

	require.NoError(t, Write(path, a))

	restored, err := Read(path)
	require.NoError(t, err)
	require.Equal(t, a, restored)
}

func TestReadMissing(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}
