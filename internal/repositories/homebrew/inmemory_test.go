package homebrew_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	caterr "github.com/KirkDiggler/dnd-item-catalog/internal/errors"
	"github.com/KirkDiggler/dnd-item-catalog/internal/repositories/homebrew"
	mockuuid "github.com/KirkDiggler/dnd-item-catalog/internal/uuid/mocks"
)

func TestInMemoryRepository(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	gen := mockuuid.NewMockGenerator(ctrl)
	repo := homebrew.NewInMemoryRepository(gen)

	gen.EXPECT().New().Return("brew-2")

	club := brewItem("", "Spiked Club")
	require.NoError(t, repo.Create(ctx, club))
	assert.Equal(t, "brew-2", club.UniqueID)

	require.NoError(t, repo.Create(ctx, brewItem("brew-1", "Bone Armor")))

	err := repo.Create(ctx, brewItem("brew-1", "Duplicate"))
	assert.True(t, caterr.IsAlreadyExists(err))

	got, err := repo.Get(ctx, "brew-2")
	require.NoError(t, err)
	assert.Equal(t, "Spiked Club", got.Name)

	got.Name = "changed"
	again, err := repo.Get(ctx, "brew-2")
	require.NoError(t, err)
	assert.Equal(t, "Spiked Club", again.Name)

	items, err := repo.ListBaseItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Bone Armor", items[0].Name)

	require.NoError(t, repo.Delete(ctx, "brew-1"))
	assert.True(t, caterr.IsNotFound(repo.Delete(ctx, "brew-1")))

	_, err = repo.Get(ctx, "brew-1")
	assert.True(t, caterr.IsNotFound(err))

	_, err = repo.Get(ctx, "")
	assert.True(t, caterr.IsInvalidArgument(err))
	assert.True(t, caterr.IsInvalidArgument(repo.Create(ctx, nil)))
}
