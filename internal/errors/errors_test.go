package errors_test

import (
	stderrors "errors"
	"testing"

	caterr "github.com/KirkDiggler/dnd-item-catalog/internal/errors"
	"github.com/stretchr/testify/assert"
)

func TestDataIntegrity_CarriesCodeAndMeta(t *testing.T) {
	err := caterr.DataIntegrityf("%q has no entries", "Longsword").
		WithMeta("item_name", "Longsword")

	assert.True(t, caterr.IsDataIntegrity(err))
	assert.Equal(t, `"Longsword" has no entries`, err.Error())
	assert.Equal(t, "Longsword", caterr.GetMeta(err)["item_name"])
}

func TestWrap_PreservesCode(t *testing.T) {
	inner := caterr.NotFoundf("item %s not found", "abc").WithMeta("item_id", "abc")
	wrapped := caterr.Wrap(inner, "loading homebrew")

	assert.True(t, caterr.IsNotFound(wrapped))
	assert.Equal(t, "abc", caterr.GetMeta(wrapped)["item_id"])
	assert.Equal(t, "loading homebrew: item abc not found", wrapped.Error())

	// meta is copied, not shared
	wrapped.WithMeta("extra", 1)
	assert.NotContains(t, inner.Meta, "extra")
}

func TestWrap_PlainErrorIsUnknown(t *testing.T) {
	wrapped := caterr.Wrap(stderrors.New("boom"), "context")
	assert.Equal(t, caterr.CodeUnknown, caterr.GetCode(wrapped))
	assert.True(t, stderrors.Is(wrapped, wrapped.Cause))
}

func TestWrap_Nil(t *testing.T) {
	assert.Nil(t, caterr.Wrap(nil, "nothing"))
	assert.Nil(t, caterr.Wrapf(nil, "nothing %d", 1))
	assert.Nil(t, caterr.WrapWithCode(nil, caterr.CodeInternal, "nothing"))
}

func TestWrapWithCode_OverridesCode(t *testing.T) {
	err := caterr.WrapWithCode(stderrors.New("dial tcp"), caterr.CodeUnavailable, "canonical source")
	assert.Equal(t, caterr.CodeUnavailable, caterr.GetCode(err))
	assert.True(t, caterr.IsUnavailable(err))
	assert.False(t, caterr.IsInvalidArgument(err))
}
