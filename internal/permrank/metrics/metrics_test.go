package metrics

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestStatus(t *testing.T) {
	require.Equal(t, "ok", Status(nil))
	require.Equal(t, "error", Status(errors.New("failed")))
}

func TestRanksTotal(t *testing.T) {
	before := testutil.ToFloat64(RanksTotal.WithLabelValues(Status(nil)))

	RanksTotal.WithLabelValues(Status(nil)).Inc()

	require.InDelta(t, before+1, testutil.ToFloat64(RanksTotal.WithLabelValues(Status(nil))), 0)
}
