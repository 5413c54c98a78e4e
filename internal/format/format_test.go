package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDate(t *testing.T) {
	d := time.Date(2025, time.March, 7, 12, 0, 0, 0, time.UTC)
	require.Equal(t, "Mar 7, 2025", Date(d, "en"))
	require.Equal(t, "Mar 7, 2025", Date(d, ""))
	require.Equal(t, "2025年3月7日", Date(d, "JA"))
	require.Empty(t, Date(time.Time{}, "en"))
}

func TestISODate(t *testing.T) {
	require.Equal(t, "2025-03-07", ISODate(time.Date(2025, time.March, 7, 23, 0, 0, 0, time.UTC)))
	require.Empty(t, ISODate(time.Time{}))
}
