package request

import "foodshare/internal/domain/user"

// UpdateProfileRequest is a partial update; absent fields are left unchanged.
type UpdateProfileRequest struct {
	DisplayName *string `json:"display_name,omitempty" binding:"omitempty,max=80"`
	Location    *string `json:"location,omitempty" binding:"omitempty,max=200"`
	Role        *string `json:"role,omitempty" binding:"omitempty,oneof=donor claimant both"`
}

func (r *UpdateProfileRequest) ToDomain() user.ProfileUpdate {
	return user.ProfileUpdate{
		DisplayName: r.DisplayName,
		Location:    r.Location,
		Role:        r.Role,
	}
}

func (r *UpdateProfileRequest) IsEmpty() bool {
	return r.DisplayName == nil && r.Location == nil && r.Role == nil
}
