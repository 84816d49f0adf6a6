package authapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dbisys/dbis-client/authapi"
	dbiserrors "github.com/dbisys/dbis-client/internal/errors"
)

func TestLogin_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, authapi.RouteLogin, r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NotEmpty(t, r.Header.Get("X-Request-ID"))

		var req authapi.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "admin", req.Username)
		require.Equal(t, "breeze", req.Company)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"access":  "a-token",
			"refresh": "r-token",
			"user":    map[string]string{"username": "admin", "email": "admin@dbis.com"},
		})
	}))
	defer server.Close()

	client := authapi.NewClient(server.URL)
	resp, err := client.Login(context.Background(), authapi.LoginRequest{
		Username: "admin",
		Password: "admin",
		Company:  "breeze",
	})
	require.NoError(t, err)
	require.Equal(t, "a-token", resp.Access)
	require.Equal(t, "r-token", resp.Refresh)
	require.Equal(t, "admin", resp.User.Username)
	require.Equal(t, "admin@dbis.com", resp.User.Email)
}

func TestLogin_RejectedCarriesServerDetail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Invalid username or password"})
	}))
	defer server.Close()

	client := authapi.NewClient(server.URL)
	_, err := client.Login(context.Background(), authapi.LoginRequest{Username: "admin", Password: "nope"})

	require.ErrorIs(t, err, dbiserrors.ErrRejected)

	var rejection *authapi.RejectedError
	require.ErrorAs(t, err, &rejection)
	require.Equal(t, http.StatusUnauthorized, rejection.StatusCode)
	require.Equal(t, "Invalid username or password", rejection.Detail)
}

func TestLogin_RejectedWithoutDetailBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := authapi.NewClient(server.URL)
	_, err := client.Login(context.Background(), authapi.LoginRequest{Username: "admin", Password: "admin"})

	require.ErrorIs(t, err, dbiserrors.ErrRejected)
	require.Contains(t, err.Error(), "500")
}

func TestLogin_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	client := authapi.NewClient(server.URL)
	_, err := client.Login(context.Background(), authapi.LoginRequest{Username: "admin", Password: "admin"})

	require.ErrorIs(t, err, dbiserrors.ErrUnreachable)
	require.NotErrorIs(t, err, dbiserrors.ErrRejected)
}

func TestVerify_SendsBearerAndBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, authapi.RouteVerify, r.URL.Path)
		require.Equal(t, "Bearer the-token", r.Header.Get("Authorization"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "the-token", body["token"])
	}))
	defer server.Close()

	client := authapi.NewClient(server.URL)
	require.NoError(t, client.Verify(context.Background(), "the-token"))
}

func TestVerify_Rejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := authapi.NewClient(server.URL)
	err := client.Verify(context.Background(), "stale-token")
	require.ErrorIs(t, err, dbiserrors.ErrRejected)
}

func TestRefresh_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, authapi.RouteRefresh, r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "r-token", body["refresh"])

		_ = json.NewEncoder(w).Encode(map[string]string{"access": "new-access"})
	}))
	defer server.Close()

	client := authapi.NewClient(server.URL)
	access, err := client.Refresh(context.Background(), "r-token")
	require.NoError(t, err)
	require.Equal(t, "new-access", access)
}

func TestRefresh_MalformedResponseIsRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := authapi.NewClient(server.URL)
	_, err := client.Refresh(context.Background(), "r-token")
	require.ErrorIs(t, err, dbiserrors.ErrRejected)
}
