package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"mrisafe/internal/domain/entity"
	domainerrors "mrisafe/internal/domain/errors"
	"mrisafe/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaitlistRepository_AddEntry(t *testing.T) {
	fake, client := newFakeService(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	repo := NewWaitlistRepository(client)

	err := repo.AddEntry(context.Background(), &entity.WaitlistEntry{Email: "a@example.com", Source: "landing_page"})
	require.NoError(t, err)

	req := fake.last()
	assert.Equal(t, http.MethodPost, req.method)
	assert.Equal(t, "/rest/v1/waitlist", req.path)
	assert.Equal(t, "return=minimal", req.header.Get("Prefer"))

	var rows []map[string]any
	require.NoError(t, json.Unmarshal([]byte(req.body), &rows))
	assert.Equal(t, []map[string]any{{"email": "a@example.com", "source": "landing_page"}}, rows)
}

func TestWaitlistRepository_AddEntry_Duplicate(t *testing.T) {
	_, client := newFakeService(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusConflict, `{"code":"23505","message":"duplicate key value violates unique constraint"}`)
	})
	repo := NewWaitlistRepository(client)

	err := repo.AddEntry(context.Background(), &entity.WaitlistEntry{Email: "a@example.com", Source: "landing_page"})
	assert.ErrorIs(t, err, repository.ErrDuplicateWaitlistEntry)
}

func TestWaitlistRepository_ListEntries(t *testing.T) {
	fake, client := newFakeService(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, `[{"email":"b@example.com","source":"cli","created_at":"2024-05-01T00:00:00Z"}]`)
	})
	repo := NewWaitlistRepository(client)

	entries, err := repo.ListEntries(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "b@example.com", entries[0].Email)
	assert.Equal(t, time.May, entries[0].CreatedAt.Month())
	assert.Equal(t, "created_at.desc", fake.last().query.Get("order"))
}

func TestWaitlistRepository_AddEntry_ConflictWithoutUniqueCode(t *testing.T) {
	_, client := newFakeService(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusConflict, `{"code":"23503","message":"insert or update on table \"waitlist\" violates foreign key constraint"}`)
	})
	repo := NewWaitlistRepository(client)

	err := repo.AddEntry(context.Background(), &entity.WaitlistEntry{Email: "a@example.com", Source: "landing_page"})

	require.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrDuplicateWaitlistEntry)
	var dsErr *domainerrors.DataServiceError
	require.True(t, errors.As(err, &dsErr))
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "23503", apiErr.Code)
	assert.False(t, apiErr.IsUniqueViolation())
}

func TestAPIError_IsUniqueViolation(t *testing.T) {
	tests := []struct {
		name string
		err  *APIError
		want bool
	}{
		{name: "unique code", err: &APIError{Status: http.StatusConflict, Code: codeUniqueViolation}, want: true},
		{name: "unique code on other status", err: &APIError{Status: http.StatusBadRequest, Code: codeUniqueViolation}, want: true},
		{name: "foreign key conflict", err: &APIError{Status: http.StatusConflict, Code: "23503"}},
		{name: "bare conflict", err: &APIError{Status: http.StatusConflict}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.IsUniqueViolation())
		})
	}
}
