package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyTokenSendsUserToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"sub":"abc-123","email":"jdoe@example.com","preferred_username":"jdoe","name":"John Doe"}`))
	}))
	defer srv.Close()

	client := NewAuthentikClient(srv.URL, "service-token")
	info, err := client.VerifyToken(context.Background(), "user-token")
	require.NoError(t, err)

	assert.Equal(t, "Bearer user-token", gotAuth)
	assert.Equal(t, "abc-123", info.Sub)
	assert.Equal(t, "jdoe", info.PreferredUsername)
}

func TestVerifyTokenRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewAuthentikClient(srv.URL, "")
	_, err := client.VerifyToken(context.Background(), "expired-token")
	assert.ErrorContains(t, err, "rejected token")
}

func TestVerifyTokenMissingSubject(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"email":"jdoe@example.com"}`))
	}))
	defer srv.Close()

	client := NewAuthentikClient(srv.URL, "")
	_, err := client.VerifyToken(context.Background(), "user-token")
	assert.ErrorContains(t, err, "missing subject")
}

func TestGetUserInfoSendsServiceToken(t *testing.T) {
	var gotAuth, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"username":"jdoe","name":"John Doe","email":"jdoe@example.com","is_active":true,"is_superuser":false}`))
	}))
	defer srv.Close()

	client := NewAuthentikClient(srv.URL, "service-token")
	info, err := client.GetUserInfo(context.Background(), "abc-123")
	require.NoError(t, err)

	assert.Equal(t, "Bearer service-token", gotAuth)
	assert.Equal(t, "/api/v3/core/users/abc-123/", gotPath)
	assert.Equal(t, "jdoe", info.Username)
	assert.True(t, info.IsActive)
}

func TestGetUserInfoNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewAuthentikClient(srv.URL, "service-token")
	_, err := client.GetUserInfo(context.Background(), "ghost")
	assert.ErrorContains(t, err, "not found in identity provider")
}
