package finance

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	require.Equal(t, StatusDebt, Classify(100))
	require.Equal(t, StatusOverpaid, Classify(-100))
	require.Equal(t, StatusSettled, Classify(0))
}

func TestClassify_Boundaries(t *testing.T) {
	// граница не входит: ровно epsilon — ещё "closed"
	require.Equal(t, StatusSettled, Classify(0.009))
	require.Equal(t, StatusSettled, Classify(0.01))
	require.Equal(t, StatusSettled, Classify(-0.01))
	require.Equal(t, StatusDebt, Classify(0.011))
	require.Equal(t, StatusOverpaid, Classify(-0.011))
}
