package backup

import "github.com/MediaVault-Admin/MediaVault-Admin/internal/db/models"

// Redact copies the user without its credential.
func Redact(u models.User) UserRecord {
	return UserRecord{
		ID:              u.ID,
		Email:           u.Email,
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		ProfileImageURL: u.ProfileImageURL,
		Role:            u.Role,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}

func redactUsers(users []models.User) []UserRecord {
	out := make([]UserRecord, 0, len(users))
	for _, u := range users {
		out = append(out, Redact(u))
	}

	return out
}
