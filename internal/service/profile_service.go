package service

import (
	"github.com/nutriscan-api/internal/repository"
)

// ProfileService handles user display metadata
type ProfileService struct {
	userRepo *repository.UserRepository
}

// NewProfileService creates a new ProfileService
func NewProfileService(userRepo *repository.UserRepository) *ProfileService {
	return &ProfileService{userRepo: userRepo}
}

// ProfileResponse is the wire representation of a user profile
type ProfileResponse struct {
	Username  string  `json:"username"`
	Nickname  string  `json:"nickname"`
	AvatarURL *string `json:"avatarUrl"`
}

// UpdateProfileRequest represents the profile update request.
// Absent fields are left untouched.
type UpdateProfileRequest struct {
	Nickname  *string `json:"nickname"`
	AvatarURL *string `json:"avatarUrl"`
}

// Get retrieves a user's profile. Nickname falls back to the username.
func (s *ProfileService) Get(userID uint) (*ProfileResponse, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	return &ProfileResponse{
		Username:  user.Username,
		Nickname:  user.DisplayName(),
		AvatarURL: user.AvatarURL,
	}, nil
}

// Update applies a partial update to nickname and avatar
func (s *ProfileService) Update(userID uint, req *UpdateProfileRequest) error {
	fields := map[string]interface{}{}
	if req.Nickname != nil {
		fields["nickname"] = *req.Nickname
	}
	if req.AvatarURL != nil {
		fields["avatar_url"] = *req.AvatarURL
	}
	return s.userRepo.UpdateFields(userID, fields)
}
