package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/plateful/restaurant-admin/internal/httperr"
	"github.com/plateful/restaurant-admin/internal/httpresp"
	"github.com/plateful/restaurant-admin/internal/mailer"
	"github.com/plateful/restaurant-admin/internal/middleware"
	"github.com/plateful/restaurant-admin/internal/usecase/account"
)

type EmailHandler struct {
	mail         mailer.Mailer
	requestReset *account.RequestReset
	redeemReset  *account.RedeemReset
}

func NewEmailHandler(
	mail mailer.Mailer,
	requestReset *account.RequestReset,
	redeemReset *account.RedeemReset,
) *EmailHandler {
	return &EmailHandler{
		mail:         mail,
		requestReset: requestReset,
		redeemReset:  redeemReset,
	}
}

// --------- Requests ---------

type SendEmailRequest struct {
	Subject   string `json:"subject" binding:"required"`
	Recipient string `json:"recipient" binding:"required"`
	Body      string `json:"body" binding:"required"`
}

type ResetRequest struct {
	Email string `json:"email" binding:"required"`
}

// --------- Handlers ---------

// Send delivers an arbitrary message through the configured SMTP
// relay. Requires authentication but no particular role; the sender
// identity is the actor's address.
func (h *EmailHandler) Send(c *gin.Context) {
	if _, ok := middleware.CurrentUser(c); !ok {
		httperr.Unauthorized(c, httperr.CodeInvalidCredentials, "Could not validate credentials.")
		return
	}

	var req SendEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidArgument, err.Error())
		return
	}

	if err := h.mail.Send(req.Subject, req.Recipient, req.Body); err != nil {
		httperr.Handle(c, err)
		return
	}

	httpresp.OK(c, gin.H{"status": "sent"})
}

func (h *EmailHandler) RequestReset(c *gin.Context) {
	var req ResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidArgument, err.Error())
		return
	}

	if err := h.requestReset.Execute(c.Request.Context(), req.Email); err != nil {
		httperr.Handle(c, err)
		return
	}

	httpresp.OK(c, gin.H{"status": "reset_email_sent"})
}

// ResetPassword redeems the emailed token. GET because the link lands
// here straight from the user's mail client.
func (h *EmailHandler) ResetPassword(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		httperr.BadRequest(c, httperr.CodeInvalidToken, "Invalid or expired token.")
		return
	}

	if err := h.redeemReset.Execute(c.Request.Context(), token); err != nil {
		httperr.Handle(c, err)
		return
	}

	httpresp.OK(c, gin.H{"status": "password_reset"})
}
