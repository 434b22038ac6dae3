package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/carpartcert/carcert-cli/internal/mock"
	"github.com/carpartcert/carcert-cli/models"
)

func TestJournalService_Disabled(t *testing.T) {
	_, err := NewJournalService(nil).Recent(context.Background(), models.LedgerCallFilter{})
	assert.ErrorIs(t, err, ErrJournalDisabled)
}

func TestJournalService_Recent(t *testing.T) {
	ctrl := gomock.NewController(t)
	journal := mock.NewMockJournalRepository(ctrl)
	filter := models.LedgerCallFilter{Function: "CreateAsset", Limit: 20}
	want := []models.LedgerCall{{ID: "call-2", Function: "CreateAsset"}}

	journal.EXPECT().Recent(gomock.Any(), filter).Return(want, nil)

	got, err := NewJournalService(journal).Recent(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
