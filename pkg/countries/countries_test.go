package countries

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectoryNotEmpty(t *testing.T) {
	require.NotEmpty(t, All())
}

func TestEveryEntryHasDialCode(t *testing.T) {
	for _, c := range All() {
		assert.True(t, strings.HasPrefix(c.DialCode, "+"), "entry %s has dial code %q", c.Code, c.DialCode)
		assert.Greater(t, len(c.DialCode), 1, "entry %s has empty dial code", c.Code)
	}
}

func TestPrioritySequenceComesFirst(t *testing.T) {
	all := All()
	require.GreaterOrEqual(t, len(all), len(priority))

	// The pinned countries occupy the head of the list in their fixed order.
	for i, code := range priority {
		assert.Equal(t, code, all[i].Code, "position %d", i)
	}

	// Nothing after the pinned block belongs to the priority set.
	for _, c := range all[len(priority):] {
		_, pinned := priorityIndex[c.Code]
		assert.False(t, pinned, "priority country %s found outside the pinned block", c.Code)
	}
}

func TestRemainderSortedByEnglishName(t *testing.T) {
	rest := All()[len(priority):]
	for i := 1; i < len(rest); i++ {
		assert.LessOrEqual(t, rest[i-1].NameEn, rest[i].NameEn,
			"%s should sort before %s", rest[i-1].NameEn, rest[i].NameEn)
	}
}

func TestByCode(t *testing.T) {
	sa, ok := ByCode("SA")
	require.True(t, ok)
	assert.Equal(t, "+966", sa.DialCode)
	assert.Equal(t, "Saudi Arabia", sa.NameEn)
	assert.Equal(t, "السعودية", sa.NameAr)
	assert.Equal(t, "https://flagcdn.com/24x18/sa.png", sa.FlagURL)

	lower, ok := ByCode("sa")
	require.True(t, ok, "lookup is case-insensitive")
	assert.Equal(t, sa, lower)

	_, ok = ByCode("ZZ")
	assert.False(t, ok)
}

func TestLocalizedNamesFallBackToCode(t *testing.T) {
	for _, c := range All() {
		assert.NotEmpty(t, c.NameAr, "entry %s", c.Code)
		assert.NotEmpty(t, c.NameEn, "entry %s", c.Code)
	}
}
