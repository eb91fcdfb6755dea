package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"timetable_backend/internals/configs"
	"timetable_backend/internals/features/users/auth/model"
)

func withTestSecrets(t *testing.T) {
	t.Helper()
	prevAccess, prevRefresh := configs.JWTSecret, configs.JWTRefreshSecret
	configs.JWTSecret = "test-access-secret"
	configs.JWTRefreshSecret = "test-refresh-secret"
	t.Cleanup(func() {
		configs.JWTSecret = prevAccess
		configs.JWTRefreshSecret = prevRefresh
	})
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	withTestSecrets(t)

	u := &model.UserModel{UserID: uuid.New(), UserName: "head", UserIsStaff: true}
	raw, err := CreateRefreshToken(u)
	require.NoError(t, err)

	id, err := ParseRefreshToken(raw)
	require.NoError(t, err)
	require.Equal(t, u.UserID.String(), id)
}

func TestParseRefreshTokenRejectsAccessToken(t *testing.T) {
	withTestSecrets(t)

	u := &model.UserModel{UserID: uuid.New(), UserName: "head"}
	raw, err := CreateAccessToken(u)
	require.NoError(t, err)

	_, err = ParseRefreshToken(raw)
	require.Error(t, err)
}

func TestParseRefreshTokenRejectsGarbage(t *testing.T) {
	withTestSecrets(t)

	_, err := ParseRefreshToken("not.a.token")
	require.Error(t, err)
}

func TestTokenExpiryReadsExpClaim(t *testing.T) {
	withTestSecrets(t)

	u := &model.UserModel{UserID: uuid.New(), UserName: "head"}
	raw, err := CreateAccessToken(u)
	require.NoError(t, err)

	exp := TokenExpiry(raw)
	require.WithinDuration(t, time.Now().Add(AccessTTL), exp, time.Minute)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	require.NotEqual(t, "s3cret", hash)
	require.True(t, CheckPassword(hash, "s3cret"))
	require.False(t, CheckPassword(hash, "wrong"))
}
