package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectRecordStrategy_CoversEveryReachableSignature(t *testing.T) {
	count := 0
	for i := 0; i < 1<<6; i++ {
		sig := Signature{
			HasOwner:     i&(1<<0) != 0,
			HasStatus:    i&(1<<1) != 0,
			HasDiagnosis: i&(1<<2) != 0,
			HasTags:      i&(1<<3) != 0,
			AllMatch:     i&(1<<4) != 0,
			HasItems:     i&(1<<5) != 0,
		}
		if sig.AllMatch && !sig.HasTags {
			continue
		}
		strategy, err := SelectRecordStrategy(sig)
		require.NoError(t, err, "signature %+v must resolve", sig)
		assert.NotEmpty(t, strategy.Name)
		count++
	}
	assert.Equal(t, 48, count)
}

func TestSelectRecordStrategy_UnreachableSignatureFails(t *testing.T) {
	// All-match without tags is normalized away and deliberately has no entry.
	_, err := SelectRecordStrategy(Signature{AllMatch: true})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnresolvableStrategy)
}

func TestRecordStrategyNames(t *testing.T) {
	cases := []struct {
		name string
		sig  Signature
		want string
	}{
		{"empty", Signature{}, "unfiltered"},
		{"owner only", Signature{HasOwner: true}, "owner"},
		{"tags any", Signature{HasTags: true}, "tags_any"},
		{"tags all", Signature{HasTags: true, AllMatch: true}, "tags_all"},
		{"everything", Signature{HasOwner: true, HasStatus: true, HasDiagnosis: true, HasTags: true, AllMatch: true, HasItems: true}, "owner+status+diagnosis+tags_all+items"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			strategy, err := SelectRecordStrategy(tc.sig)
			require.NoError(t, err)
			assert.Equal(t, tc.want, strategy.Name)
		})
	}
}

func TestRecordStrategy_ApplierCounts(t *testing.T) {
	unfiltered, err := SelectRecordStrategy(Signature{})
	require.NoError(t, err)
	assert.Empty(t, unfiltered.appliers)

	// One filter per criterion, plus grouping for the fan-out join, plus the
	// having clause for all-match.
	allMatch, err := SelectRecordStrategy(Signature{HasTags: true, AllMatch: true})
	require.NoError(t, err)
	assert.Len(t, allMatch.appliers, 3)

	anyMatch, err := SelectRecordStrategy(Signature{HasTags: true})
	require.NoError(t, err)
	assert.Len(t, anyMatch.appliers, 2)
}

func TestSelectItemStrategy_CoversEverySignature(t *testing.T) {
	for i := 0; i < 1<<3; i++ {
		sig := ItemSignature{
			HasCategory: i&(1<<0) != 0,
			HasType:     i&(1<<1) != 0,
			HelpedOnly:  i&(1<<2) != 0,
		}
		strategy, err := SelectItemStrategy(sig)
		require.NoError(t, err, "signature %+v must resolve", sig)
		assert.NotEmpty(t, strategy.Name)
	}
}

func TestItemStrategyNames(t *testing.T) {
	strategy, err := SelectItemStrategy(ItemSignature{HasCategory: true, HelpedOnly: true})
	require.NoError(t, err)
	assert.Equal(t, "category+helped", strategy.Name)

	strategy, err = SelectItemStrategy(ItemSignature{})
	require.NoError(t, err)
	assert.Equal(t, "unfiltered", strategy.Name)
}
