package service

import (
	"testing"

	"github.com/nutriscan-api/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProfileNicknameFallsBackToUsername(t *testing.T) {
	env := newTestEnv(t)
	userID, _ := env.registerUser(t, "alice")

	profile, err := env.profile.Get(userID)
	require.NoError(t, err)
	assert.Equal(t, "alice", profile.Username)
	assert.Equal(t, "alice", profile.Nickname)
	assert.Nil(t, profile.AvatarURL)
}

func TestUpdateProfilePartial(t *testing.T) {
	env := newTestEnv(t)
	userID, _ := env.registerUser(t, "alice")

	require.NoError(t, env.profile.Update(userID, &UpdateProfileRequest{
		Nickname: strPtr("Allie"),
	}))

	profile, err := env.profile.Get(userID)
	require.NoError(t, err)
	assert.Equal(t, "Allie", profile.Nickname)
	assert.Nil(t, profile.AvatarURL)

	// Updating the avatar alone leaves the nickname in place
	require.NoError(t, env.profile.Update(userID, &UpdateProfileRequest{
		AvatarURL: strPtr("https://cdn.example.com/a.png"),
	}))

	profile, err = env.profile.Get(userID)
	require.NoError(t, err)
	assert.Equal(t, "Allie", profile.Nickname)
	require.NotNil(t, profile.AvatarURL)
	assert.Equal(t, "https://cdn.example.com/a.png", *profile.AvatarURL)
}

func TestUpdateProfileEmptyIsNoOp(t *testing.T) {
	env := newTestEnv(t)
	userID, _ := env.registerUser(t, "alice")

	require.NoError(t, env.profile.Update(userID, &UpdateProfileRequest{}))

	profile, err := env.profile.Get(userID)
	require.NoError(t, err)
	assert.Equal(t, "alice", profile.Nickname)
}

func TestGetProfileUnknownUser(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.profile.Get(12345)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}
