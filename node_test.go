package aport

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComparePrefix(t *testing.T) {
	t.Parallel()

	for _, tcase := range []*struct {
		Prefix   string
		Key      string
		ExpMatch match
		ExpN     int
	}{
		{"", "", matchExact, 0},
		{"", "abc", matchPrefixFull, 0},
		{"abc", "abc", matchExact, 3},
		{"abc", "abcd", matchPrefixFull, 3},
		{"a", "ab", matchPrefixFull, 1},
		{"abc", "ab", matchPartial, 2},
		{"abc", "abd", matchPartial, 2},
		{"abc", "axy", matchPartial, 1},
		{"abc", "xyz", matchNone, 0},
		{"abc", "", matchNone, 0},
		{"\x00a", "\x00a", matchExact, 2},
		{"\x00a", "\x00b", matchPartial, 1},
	} {
		tcase := tcase
		name := fmt.Sprintf("%q,%q", tcase.Prefix, tcase.Key)

		t.Run(name, func(t *testing.T) {
			m, n := comparePrefix(tcase.Prefix, tcase.Key)

			assert.Equal(t, tcase.ExpMatch, m)
			assert.Equal(t, tcase.ExpN, n)
		})
	}
}

func TestComparePrefixLen(t *testing.T) {
	t.Parallel()

	for _, tcase := range []*struct {
		Prefix   string
		Key      string
		ExpMatch match
		ExpN     int
	}{
		{"", "", matchExact, 0},
		{"", "abc", matchPrefixFull, 0},
		{"abc", "abcd", matchPrefixFull, 3},
		{"abc", "abc", matchExact, 3},
		{"abc", "xyz", matchExact, 3}, // content is never read
		{"abc", "ab", matchNone, 0},
		{"abcd", "a", matchNone, 0},
	} {
		tcase := tcase
		name := fmt.Sprintf("%q,%q", tcase.Prefix, tcase.Key)

		t.Run(name, func(t *testing.T) {
			m, n := comparePrefixLen(tcase.Prefix, tcase.Key)

			assert.Equal(t, tcase.ExpMatch, m)
			assert.Equal(t, tcase.ExpN, n)
		})
	}
}
