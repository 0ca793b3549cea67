package events

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := newError(ErrInvalidUUID, KindCreateCollection, SourceNftFailure, cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "InvalidUuid")
	assert.Contains(t, err.Error(), "CreateCollection")
	assert.Contains(t, err.Error(), "NftFailure")
}

func TestErrorAs(t *testing.T) {
	var target *Error
	err := error(newError(ErrDB, KindTransferAsset, SourceTreasuryFailure, errors.New("db down")))

	assert.True(t, errors.As(err, &target))
	assert.Equal(t, ErrDB, target.Kind)
}
