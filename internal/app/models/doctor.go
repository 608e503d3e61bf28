package models

// Doctor is the minimal projection the booking core needs. Account and
// profile management live with the identity provider.
type Doctor struct {
	ID        int64  `json:"id"`
	AppUserID int64  `json:"app_user_id"`
	FullName  string `json:"full_name"`
}
