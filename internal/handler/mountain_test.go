package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hikingbuddies/listings/internal/domain"
	"github.com/hikingbuddies/listings/internal/handler"
)

func TestListMountains_200(t *testing.T) {
	want := []domain.Mountain{
		{ID: uuid.New(), Name: "Cannon Mountain"},
		{ID: uuid.New(), Name: "Mount Lafayette"},
	}
	mountains := &mockMountainServicer{
		list: func(_ context.Context) ([]domain.Mountain, error) { return want, nil },
	}

	rec := do(newRouter(deps{mountains: mountains}), http.MethodGet, "/mountains", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var got []handler.Mountain
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	require.Len(t, got, 2)
	assert.Equal(t, want[0].ID, got[0].ID)
	assert.Equal(t, "Mount Lafayette", got[1].Name)
}

func TestListMountains_500(t *testing.T) {
	mountains := &mockMountainServicer{
		list: func(_ context.Context) ([]domain.Mountain, error) { return nil, errors.New("db down") },
	}

	rec := do(newRouter(deps{mountains: mountains}), http.MethodGet, "/mountains", nil)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	detail := decodeError(t, rec)
	assert.Equal(t, "internal_error", detail.Code)
	assert.NotContains(t, detail.Message, "db down")
}

func TestListPaces_inDisplayOrder(t *testing.T) {
	rec := do(newRouter(deps{}), http.MethodGet, "/paces", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var got []string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, []string{"Turtle", "Bear", "Moose", "GOAT"}, got)
}
