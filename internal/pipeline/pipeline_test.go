package pipeline_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sr9000dev/ddbmapper/internal/directive"
	"github.com/sr9000dev/ddbmapper/internal/pipeline"
	"github.com/sr9000dev/ddbmapper/internal/scan"
)

const fixturePkg = "github.com/sr9000dev/ddbmapper/internal/plan/testdata/fixture"

func TestRunResolvesAllDescriptorsInOrder(t *testing.T) {
	s, err := scan.Load(fixturePkg)
	require.NoError(t, err)

	descs := []directive.MapperDescriptor{
		{Name: "AddressMapper", Model: fixturePkg + ".Address"},
		{Name: "OrderMapper", Model: fixturePkg + ".Order"},
	}

	plans, err := pipeline.Run(context.Background(), s, descs, 1)
	require.NoError(t, err)
	require.Len(t, plans, 2)

	require.Equal(t, "AddressMapper", plans[0].Name)
	require.Equal(t, "OrderMapper", plans[1].Name)
	require.True(t, plans[0].Diagnostics.IsValid(), "%v", plans[0].Diagnostics.Errors)
	require.True(t, plans[1].Diagnostics.IsValid(), "%v", plans[1].Diagnostics.Errors)
}

func TestRunDefaultsConcurrencyWhenNonPositive(t *testing.T) {
	s, err := scan.Load(fixturePkg)
	require.NoError(t, err)

	descs := []directive.MapperDescriptor{
		{Name: "OrderMapper", Model: fixturePkg + ".Order"},
	}

	plans, err := pipeline.Run(context.Background(), s, descs, 0)
	require.NoError(t, err)
	require.Len(t, plans, 1)
	require.Equal(t, "OrderMapper", plans[0].Name)
}

func TestRunHonorsCanceledContext(t *testing.T) {
	s, err := scan.Load(fixturePkg)
	require.NoError(t, err)

	descs := []directive.MapperDescriptor{
		{Name: "OrderMapper", Model: fixturePkg + ".Order"},
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = pipeline.Run(ctx, s, descs, 1)
	require.Error(t, err)
}
