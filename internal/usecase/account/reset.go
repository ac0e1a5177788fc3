package account

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/plateful/restaurant-admin/internal/audit"
	"github.com/plateful/restaurant-admin/internal/auth"
	domain "github.com/plateful/restaurant-admin/internal/domain/account"
	"github.com/plateful/restaurant-admin/internal/httperr"
	"github.com/plateful/restaurant-admin/internal/mailer"
	"github.com/plateful/restaurant-admin/internal/models"
)

const resetTokenTTL = time.Hour

// RequestReset issues a one-hour reset token and mails the redemption
// link to the account's address.
type RequestReset struct {
	repo    domain.Repository
	mail    mailer.Mailer
	baseURL string
	audit   *audit.Dispatcher
}

func NewRequestReset(
	repo domain.Repository,
	mail mailer.Mailer,
	baseURL string,
	audit *audit.Dispatcher,
) *RequestReset {
	return &RequestReset{
		repo:    repo,
		mail:    mail,
		baseURL: baseURL,
		audit:   audit,
	}
}

func (uc *RequestReset) Execute(ctx context.Context, email string) error {
	user, err := uc.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httperr.ErrBusiness(httperr.CodeUserNotFound)
		}
		return fmt.Errorf("load user: %w", err)
	}

	token, err := auth.NewResetToken()
	if err != nil {
		return fmt.Errorf("generate reset token: %w", err)
	}

	rt := &models.ResetToken{
		Token:      token,
		UserID:     user.ID,
		ExpiryTime: time.Now().Add(resetTokenTTL),
	}
	if err := uc.repo.CreateResetToken(ctx, rt); err != nil {
		return fmt.Errorf("store reset token: %w", err)
	}

	link := fmt.Sprintf("%s/api/emails/reset-password?token=%s", uc.baseURL, token)
	body := fmt.Sprintf(
		"A password reset was requested for this account.\n\n"+
			"Follow the link to receive a new password:\n%s\n\n"+
			"The link expires in one hour. If you did not request this, ignore this message.",
		link,
	)
	if err := uc.mail.Send("Password reset", user.Email, body); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    user.Email,
		Action:   "reset_requested",
		Entity:   "user",
		EntityID: user.ID.String(),
	})

	return nil
}

// RedeemReset exchanges a valid token for a freshly generated
// password, mailed to the account in plain text. The token is burned
// either way once it has been looked at: expired tokens are deleted on
// sight.
type RedeemReset struct {
	repo  domain.Repository
	mail  mailer.Mailer
	audit *audit.Dispatcher
}

func NewRedeemReset(
	repo domain.Repository,
	mail mailer.Mailer,
	audit *audit.Dispatcher,
) *RedeemReset {
	return &RedeemReset{
		repo:  repo,
		mail:  mail,
		audit: audit,
	}
}

func (uc *RedeemReset) Execute(ctx context.Context, token string) error {
	rt, err := uc.repo.GetResetToken(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httperr.ErrBusiness(httperr.CodeInvalidToken)
		}
		return fmt.Errorf("load reset token: %w", err)
	}

	if rt.Expired(time.Now()) {
		if err := uc.repo.DeleteResetToken(ctx, rt.Token); err != nil {
			return fmt.Errorf("delete expired token: %w", err)
		}
		return httperr.ErrBusiness(httperr.CodeTokenExpired)
	}

	user, err := uc.repo.GetUserByID(ctx, rt.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httperr.ErrBusiness(httperr.CodeUserNotFound)
		}
		return fmt.Errorf("load user: %w", err)
	}

	password, err := auth.NewRandomPassword()
	if err != nil {
		return fmt.Errorf("generate password: %w", err)
	}
	hashed, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user.HashedPassword = hashed
	if err := uc.repo.SaveUser(ctx, user); err != nil {
		return fmt.Errorf("save user: %w", err)
	}
	if err := uc.repo.DeleteResetToken(ctx, rt.Token); err != nil {
		return fmt.Errorf("delete reset token: %w", err)
	}

	body := fmt.Sprintf(
		"Your password has been reset.\n\nNew password: %s\n\n"+
			"Change it after signing in.",
		password,
	)
	if err := uc.mail.Send("Your new password", user.Email, body); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    user.Email,
		Action:   "reset_redeemed",
		Entity:   "user",
		EntityID: user.ID.String(),
	})

	return nil
}
