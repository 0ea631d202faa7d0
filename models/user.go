// models/user.go
package models

import "time"

// User represents a registered patient account.
type User struct {
	ID           string    `bson:"id" json:"id"`
	FullName     string    `bson:"full_name" json:"fullName"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	PhoneNumber  string    `bson:"phone_number,omitempty" json:"phoneNumber,omitempty"`
	FCMToken     string    `bson:"fcm_token,omitempty" json:"-"`
	TokenHash    string    `bson:"token_hash,omitempty" json:"-"` // SHA-256 of the active session token
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updatedAt"`
}
