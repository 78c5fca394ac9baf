package qptrie

import (
	"encoding/hex"
	"sort"
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/require"
)

// hexKey decodes a key like "1234_abcd" (underscores are ignored).
func hexKey(t testing.TB, str string) []byte {
	t.Helper()

	key, err := hex.DecodeString(strings.ReplaceAll(str, "_", ""))
	require.NoError(t, err)

	return key
}

// hexTrie is a trie with a mix of keys being prefixes of each other.
func hexTrie(t testing.TB) *Trie[[]byte, string] {
	t.Helper()

	qp := New[[]byte, string]()

	for _, str := range []string{
		"1234_5678",
		"1234_abcd",
		"1234_abef",
		"1231_1111",
		"1230_1111",
		"12ff",
		"12",
		"1201",
		"1230_42",
		"1230",
		"9235_00",
	} {
		require.True(t, qp.Insert(hexKey(t, str), str))
		require.NoError(t, qp.Verify())
	}

	return qp
}

// fakeKeys returns a number of distinct fake keys.
func fakeKeys(total int, seed int64) []string {
	var (
		fake = gofakeit.New(seed)
		seen = make(map[string]struct{}, total)
		keys = make([]string, 0, total)
	)

	for len(keys) < total {
		key := fake.HipsterSentence(3)
		if _, ok := seen[key]; ok {
			continue
		}

		seen[key] = struct{}{}
		keys = append(keys, key)
	}

	return keys
}

func sortedKeys(state map[string]int) []string {
	keys := make([]string, 0, len(state))

	for key := range state {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}

func collectValues(seq func(func([]byte, string) bool)) []string {
	var vals []string

	seq(func(_ []byte, val string) bool {
		vals = append(vals, val)
		return true
	})

	return vals
}
