package session_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"leadmend/internal/domain"
	"leadmend/internal/session"
	"leadmend/internal/workflow"
)

func newStore(t *testing.T) *session.Store {
	t.Helper()
	return session.NewStore(testLimits(), time.Hour, time.Minute)
}

func TestStore_CreateAndGet(t *testing.T) {
	st := newStore(t)
	userID := uuid.New()
	def, _ := workflow.Get(workflow.CompanyEnrichment)

	s := st.Create(userID, def)

	got, err := st.Get(userID, s.ID)
	assert.NoError(t, err)
	assert.Same(t, s, got)
	assert.Equal(t, 1, st.Len())
}

func TestStore_GetScopedToOwner(t *testing.T) {
	st := newStore(t)
	def, _ := workflow.Get(workflow.CompanyEnrichment)
	s := st.Create(uuid.New(), def)

	_, err := st.Get(uuid.New(), s.ID)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	_, err = st.Get(s.UserID, uuid.New())
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestStore_Delete(t *testing.T) {
	st := newStore(t)
	def, _ := workflow.Get(workflow.PainPointExtraction)
	s := st.Create(uuid.New(), def)

	assert.NoError(t, st.Delete(s.UserID, s.ID))
	assert.ErrorIs(t, st.Delete(s.UserID, s.ID), domain.ErrSessionNotFound)
	assert.Equal(t, 0, st.Len())
}
