package account_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plateful/restaurant-admin/internal/auth"
	"github.com/plateful/restaurant-admin/internal/httperr"
	"github.com/plateful/restaurant-admin/internal/models"
	"github.com/plateful/restaurant-admin/internal/usecase/account"
)

const testBaseURL = "http://localhost:8080"

func TestRequestResetSendsLink(t *testing.T) {
	f := newFixture(t)
	owner, _, _ := f.seedOwner(t, "owner@cafe.test", "secret123")
	uc := account.NewRequestReset(f.repo, f.mail, testBaseURL, f.audit)

	require.NoError(t, uc.Execute(context.Background(), "owner@cafe.test"))

	mail := f.mail.last(t)
	assert.Equal(t, "owner@cafe.test", mail.Recipient)
	assert.Contains(t, mail.Body, testBaseURL+"/api/emails/reset-password?token=")

	var rt models.ResetToken
	require.NoError(t, f.db.Where("user_id = ?", owner.ID).First(&rt).Error)
	assert.Contains(t, mail.Body, rt.Token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), rt.ExpiryTime, time.Minute)
}

func TestRequestResetUnknownUser(t *testing.T) {
	f := newFixture(t)
	uc := account.NewRequestReset(f.repo, f.mail, testBaseURL, f.audit)

	err := uc.Execute(context.Background(), "ghost@cafe.test")
	assert.True(t, httperr.IsBusiness(err, httperr.CodeUserNotFound))
}

func TestRedeemResetIssuesNewPassword(t *testing.T) {
	f := newFixture(t)
	owner, _, _ := f.seedOwner(t, "owner@cafe.test", "secret123")

	rt := &models.ResetToken{
		Token:      "valid-token",
		UserID:     owner.ID,
		ExpiryTime: time.Now().Add(time.Hour),
	}
	require.NoError(t, f.db.Create(rt).Error)

	uc := account.NewRedeemReset(f.repo, f.mail, f.audit)
	require.NoError(t, uc.Execute(context.Background(), "valid-token"))

	// Old password no longer works; the mailed one does.
	user, err := f.repo.GetUserByEmail(context.Background(), "owner@cafe.test")
	require.NoError(t, err)
	assert.False(t, auth.CheckPassword(user.HashedPassword, "secret123"))

	mail := f.mail.last(t)
	lines := strings.Split(mail.Body, "\n")
	var newPassword string
	for _, line := range lines {
		if strings.HasPrefix(line, "New password: ") {
			newPassword = strings.TrimPrefix(line, "New password: ")
		}
	}
	require.NotEmpty(t, newPassword)
	assert.True(t, auth.CheckPassword(user.HashedPassword, newPassword))

	// Token burned.
	var count int64
	f.db.Model(&models.ResetToken{}).Where("token = ?", "valid-token").Count(&count)
	assert.Zero(t, count)
}

func TestRedeemResetUnknownToken(t *testing.T) {
	f := newFixture(t)
	uc := account.NewRedeemReset(f.repo, f.mail, f.audit)

	err := uc.Execute(context.Background(), "no-such-token")
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidToken))
}

func TestRedeemResetExpiredToken(t *testing.T) {
	f := newFixture(t)
	owner, _, _ := f.seedOwner(t, "owner@cafe.test", "secret123")

	rt := &models.ResetToken{
		Token:      "stale-token",
		UserID:     owner.ID,
		ExpiryTime: time.Now().Add(-time.Minute),
	}
	require.NoError(t, f.db.Create(rt).Error)

	uc := account.NewRedeemReset(f.repo, f.mail, f.audit)
	err := uc.Execute(context.Background(), "stale-token")
	assert.True(t, httperr.IsBusiness(err, httperr.CodeTokenExpired))

	// Expired tokens are deleted on sight.
	var count int64
	f.db.Model(&models.ResetToken{}).Where("token = ?", "stale-token").Count(&count)
	assert.Zero(t, count)

	// Password untouched.
	user, err := f.repo.GetUserByEmail(context.Background(), "owner@cafe.test")
	require.NoError(t, err)
	assert.True(t, auth.CheckPassword(user.HashedPassword, "secret123"))
}
