package auth

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/graceview/graceview-api/internal/mail"
	"github.com/graceview/graceview-api/pkg/util"
)

type AuthService struct {
	repo Repository
	mail *mail.Mailer
}

func NewAuthService(repo Repository, mail *mail.Mailer) AuthService {
	return AuthService{
		repo: repo,
		mail: mail,
	}
}

func (h *AuthService) Register(ctx context.Context, email, password string) (*User, error) {
	if email == "" || password == "" {
		return &User{}, errors.New("invalid email and password")
	}

	hashed, err := util.HashPasswordBcrypt(password)
	if err != nil {
		return &User{}, err
	}

	user := User{Email: email, Password: hashed}

	_, err = h.repo.CreateUser(ctx, user)
	if err != nil {
		log.Printf("Service err: %v", err.Error())
		return &User{}, err
	}

	logInUser, err := h.Login(ctx, email, password)
	if err != nil {
		return &User{}, err
	}

	data := map[string]interface{}{
		"Name": user.Email,
	}

	// Send welcome mail asynchronously
	go func() {
		if err := h.mail.SendHTML(email, "Welcome to GraceView", "welcome.html", data); err != nil {
			log.Printf("failed to send welcome email: %v", err)
		}
	}()

	return logInUser, nil
}

func (h *AuthService) Login(ctx context.Context, email, password string) (*User, error) {
	if email == "" || password == "" {
		return &User{}, ErrInvalidCredentials
	}

	user, err := h.repo.GetUserByEmail(ctx, email)
	if err != nil {
		log.Printf("Service err: %v", err.Error())
		return nil, ErrInvalidCredentials
	}

	if err := util.ComparePasswordBcrypt(user.Password, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := util.GenerateJWT(user.ID, user.Email, user.Role)
	if err != nil {
		return &User{}, err
	}
	user.Token = token

	return user, nil
}

func (h *AuthService) Me(ctx context.Context, userID int) (*User, error) {
	user, err := h.repo.GetUserByID(ctx, userID)
	if err != nil {
		log.Printf("error fetching user: %v", err)
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (h *AuthService) UpdateProfile(ctx context.Context, userID int, req UpdateProfileRequest) error {
	if req.UserName == "" || req.PreferredTranslation == "" {
		return errors.New("incomplete profile data")
	}

	pace := req.PushPace
	if pace != "daily" && pace != "weekly" {
		return errors.New("push_pace must be daily or weekly")
	}

	return h.repo.UpdateProfile(ctx, userID, req)
}

func (h *AuthService) ForgetPassword(ctx context.Context, email string) error {
	if email == "" {
		return ErrInvalidCredentials
	}

	user, err := h.repo.GetUserByEmail(ctx, email)
	if err != nil {
		// Do not reveal which emails exist.
		log.Printf("forget-password for unknown email: %v", err)
		return nil
	}

	otp, err := util.GenerateOTP(6)
	if err != nil {
		return ErrInternalServer
	}

	if err := h.repo.SavePasswordReset(ctx, user.Email, otp, time.Now().Add(15*time.Minute)); err != nil {
		return err
	}

	go func() {
		data := map[string]interface{}{"OTP": otp}
		if err := h.mail.SendHTML(user.Email, "GraceView password reset", "reset.html", data); err != nil {
			log.Printf("failed to send reset email: %v", err)
		}
	}()

	return nil
}

func (h *AuthService) ResetPassword(ctx context.Context, req ResetPasswordRequest) error {
	if req.Email == "" || req.OTP == "" || req.NewPassword == "" {
		return ErrInvalidCredentials
	}

	otp, expiresAt, err := h.repo.GetPasswordReset(ctx, req.Email)
	if err != nil {
		return ErrInvalidCredentials
	}
	if otp != req.OTP || time.Now().After(expiresAt) {
		return ErrInvalidCredentials
	}

	hashed, err := util.HashPasswordBcrypt(req.NewPassword)
	if err != nil {
		return err
	}

	if err := h.repo.UpdateUserPassword(ctx, req.Email, hashed); err != nil {
		return err
	}
	return h.repo.DeletePasswordReset(ctx, req.Email)
}
