package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// User represents a registered account in the authentication system.
// VerificationToken is present only while the account has not completed
// email verification. ResetPasswordToken and ResetPasswordExpires are
// present only while a password reset is pending; they are always set and
// cleared together.
type User struct {
	ID                   bson.ObjectID `bson:"_id,omitempty"`
	Username             string        `bson:"username"`
	Email                string        `bson:"email"`
	PasswordHash         string        `bson:"password_hash"`
	Verified             bool          `bson:"verified"`
	VerificationToken    string        `bson:"verification_token,omitempty"`
	ResetPasswordToken   string        `bson:"reset_password_token,omitempty"`
	ResetPasswordExpires time.Time     `bson:"reset_password_expires,omitempty"`
	CreatedAt            time.Time     `bson:"created_at"`
	UpdatedAt            time.Time     `bson:"updated_at"`
}
