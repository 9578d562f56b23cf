package usecase

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/multivion/auth-api/internal/model"
)

// fakeUserRepo is an in-memory stand-in for the Mongo-backed repository.
type fakeUserRepo struct {
	users map[string]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*model.User)}
}

func (f *fakeUserRepo) CreateUser(_ context.Context, user *model.User) (*model.User, error) {
	now := time.Now()
	user.ID = bson.NewObjectID()
	user.CreatedAt = now
	user.UpdatedAt = now
	f.users[user.ID.Hex()] = user
	return user, nil
}

func (f *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	return f.findBy(func(u *model.User) bool { return u.Email == email })
}

func (f *fakeUserRepo) GetUserByUsername(_ context.Context, username string) (*model.User, error) {
	return f.findBy(func(u *model.User) bool { return u.Username == username })
}

func (f *fakeUserRepo) GetUserByVerificationToken(_ context.Context, token string) (*model.User, error) {
	return f.findBy(func(u *model.User) bool {
		return u.VerificationToken != "" && u.VerificationToken == token
	})
}

func (f *fakeUserRepo) GetUserByResetToken(_ context.Context, token string, now time.Time) (*model.User, error) {
	return f.findBy(func(u *model.User) bool {
		return u.ResetPasswordToken != "" && u.ResetPasswordToken == token && u.ResetPasswordExpires.After(now)
	})
}

func (f *fakeUserRepo) MarkVerified(_ context.Context, id string) error {
	user, ok := f.users[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	user.Verified = true
	user.VerificationToken = ""
	user.UpdatedAt = time.Now()
	return nil
}

func (f *fakeUserRepo) SetResetToken(_ context.Context, id string, token string, expires time.Time) error {
	user, ok := f.users[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	user.ResetPasswordToken = token
	user.ResetPasswordExpires = expires
	user.UpdatedAt = time.Now()
	return nil
}

func (f *fakeUserRepo) UpdatePassword(_ context.Context, id string, passwordHash string) error {
	user, ok := f.users[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	user.PasswordHash = passwordHash
	user.ResetPasswordToken = ""
	user.ResetPasswordExpires = time.Time{}
	user.UpdatedAt = time.Now()
	return nil
}

func (f *fakeUserRepo) findBy(match func(*model.User) bool) (*model.User, error) {
	for _, user := range f.users {
		if match(user) {
			return user, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

type sentEmail struct {
	To       []string
	Subject  string
	HTMLBody string
}

// fakeMailer records outbound emails instead of delivering them.
type fakeMailer struct {
	sent    []sentEmail
	sendErr error
}

func (f *fakeMailer) SendHTML(to []string, subject, htmlBody string) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, sentEmail{To: to, Subject: subject, HTMLBody: htmlBody})
	return nil
}
