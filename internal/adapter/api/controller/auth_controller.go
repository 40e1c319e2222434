package controller

import (
	"crypto/subtle"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/Shreyas-Jangam/SaiSiddha-Furniture-Works/internal/adapter/api/dto"
	"github.com/Shreyas-Jangam/SaiSiddha-Furniture-Works/internal/adapter/repository"
	"github.com/Shreyas-Jangam/SaiSiddha-Furniture-Works/internal/domain/session"
	"github.com/Shreyas-Jangam/SaiSiddha-Furniture-Works/pkg/logger"
)

// AdminCredentials holds the configured admin login. PasswordHash is a
// bcrypt hash; the plaintext password never appears anywhere in the system.
type AdminCredentials struct {
	Username     string
	PasswordHash string
}

// AuthController handles the admin session lifecycle.
type AuthController struct {
	sessionRepo session.Repository
	credentials AdminCredentials
	logger      logger.Logger
}

// NewAuthController creates a new AuthController.
func NewAuthController(sessionRepo session.Repository, credentials AdminCredentials, logger logger.Logger) *AuthController {
	return &AuthController{
		sessionRepo: sessionRepo,
		credentials: credentials,
		logger:      logger,
	}
}

// Login authenticates the admin
// @Summary Admin login
// @Description Verifies credentials with IP lockout and opens the single active session
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Admin credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.LoginFailedResponse
// @Failure 429 {object} dto.LoginLockedResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid request body", err.Error()))
		return
	}

	ip := clientIP(ctx)
	now := time.Now()

	failures, err := c.sessionRepo.CountRecentFailures(ctx, ip, now.Add(-session.LockoutWindow))
	if err != nil {
		c.logger.Error("failed to count login failures", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "login failed", ""))
		return
	}

	// A locked-out caller never learns whether the credentials would have
	// matched.
	if failures >= session.MaxLoginAttempts {
		c.appendAudit(ctx, session.ActionLoginFailed, map[string]interface{}{
			"reason": "account locked",
		}, ip)
		ctx.JSON(http.StatusTooManyRequests, dto.LoginLockedResponse{
			Error:          "too many failed attempts, try again later",
			Locked:         true,
			LockoutMinutes: session.LockoutDurationMinutes,
		})
		return
	}

	if !c.credentialsMatch(req.Username, req.Password) {
		if err := c.sessionRepo.RecordAttempt(ctx, session.NewLoginAttempt(ip, req.Username, false)); err != nil {
			c.logger.Error("failed to record login attempt", "error", err)
		}
		remaining := session.MaxLoginAttempts - failures - 1
		c.appendAudit(ctx, session.ActionLoginFailed, map[string]interface{}{
			"username_attempted": req.Username,
			"attempts_remaining": remaining,
		}, ip)
		ctx.JSON(http.StatusUnauthorized, dto.LoginFailedResponse{
			Error:             "invalid username or password",
			AttemptsRemaining: remaining,
		})
		return
	}

	sess, err := session.NewAdminSession(ip, ctx.Request.UserAgent())
	if err != nil {
		c.logger.Error("failed to generate session", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "login failed", ""))
		return
	}

	if err := c.sessionRepo.CreateExclusive(ctx, sess); err != nil {
		c.logger.Error("failed to create session", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "login failed", ""))
		return
	}

	if err := c.sessionRepo.RecordAttempt(ctx, session.NewLoginAttempt(ip, req.Username, true)); err != nil {
		c.logger.Error("failed to record login attempt", "error", err)
	}
	c.appendAudit(ctx, session.ActionLoginSuccess, nil, ip)

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		Success:                true,
		SessionToken:           sess.Token,
		ExpiresAt:              sess.ExpiresAt,
		SessionDurationMinutes: session.DurationMinutes,
	})
}

// Verify validates a session token
// @Summary Verify session
// @Description Validates a session token and slides its expiry forward
// @Tags auth
// @Accept json
// @Produce json
// @Param session body dto.VerifyRequest true "Session token"
// @Success 200 {object} dto.VerifyResponse
// @Failure 401 {object} dto.VerifyResponse
// @Router /auth/verify [post]
func (c *AuthController) Verify(ctx *gin.Context) {
	var req dto.VerifyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusUnauthorized, dto.VerifyResponse{Valid: false, Error: "missing session token"})
		return
	}

	sess, err := c.sessionRepo.FindActiveByToken(ctx, req.SessionToken)
	if err != nil {
		if err != repository.ErrSessionNotFound {
			c.logger.Error("failed to fetch session", "error", err)
		}
		ctx.JSON(http.StatusUnauthorized, dto.VerifyResponse{Valid: false, Error: "invalid session"})
		return
	}

	now := time.Now()
	if sess.IsExpired(now) {
		if err := c.sessionRepo.Deactivate(ctx, sess.ID); err != nil {
			c.logger.Error("failed to deactivate expired session", "error", err)
		}
		ctx.JSON(http.StatusUnauthorized, dto.VerifyResponse{Valid: false, Error: "session expired"})
		return
	}

	sess.Slide(now)
	if err := c.sessionRepo.UpdateExpiry(ctx, sess.ID, sess.ExpiresAt); err != nil {
		c.logger.Error("failed to slide session expiry", "error", err)
		ctx.JSON(http.StatusUnauthorized, dto.VerifyResponse{Valid: false, Error: "invalid session"})
		return
	}

	ctx.JSON(http.StatusOK, dto.VerifyResponse{Valid: true, ExpiresAt: &sess.ExpiresAt})
}

// Logout revokes a session
// @Summary Logout
// @Description Deactivates the session if present; always succeeds
// @Tags auth
// @Accept json
// @Produce json
// @Param session body dto.LogoutRequest false "Session token"
// @Success 200 {object} dto.LogoutResponse
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	var req dto.LogoutRequest
	_ = ctx.ShouldBindJSON(&req)

	if req.SessionToken != "" {
		if err := c.sessionRepo.DeactivateByToken(ctx, req.SessionToken); err != nil {
			c.logger.Error("failed to deactivate session", "error", err)
		}
		c.appendAudit(ctx, session.ActionLogout, nil, clientIP(ctx))
	}

	ctx.JSON(http.StatusOK, dto.LogoutResponse{Success: true})
}

// Log appends an audit entry
// @Summary Append audit log
// @Description Records an admin action under a valid session
// @Tags auth
// @Accept json
// @Produce json
// @Param entry body dto.AuditLogRequest true "Audit entry"
// @Success 200 {object} dto.LogoutResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/log [post]
func (c *AuthController) Log(ctx *gin.Context) {
	var req dto.AuditLogRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid request body", err.Error()))
		return
	}

	sess, err := c.sessionRepo.FindActiveByToken(ctx, req.SessionToken)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "invalid session", ""))
		return
	}
	if sess.IsExpired(time.Now()) {
		if err := c.sessionRepo.Deactivate(ctx, sess.ID); err != nil {
			c.logger.Error("failed to deactivate expired session", "error", err)
		}
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "session expired", ""))
		return
	}

	entry, err := session.NewAuditLog(req.AuditAction, req.Details, clientIP(ctx))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid audit details", err.Error()))
		return
	}
	if err := c.sessionRepo.AppendAudit(ctx, entry); err != nil {
		c.logger.Error("failed to append audit log", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to record action", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.LogoutResponse{Success: true})
}

// credentialsMatch compares the username in constant time and the password
// against the configured bcrypt hash.
func (c *AuthController) credentialsMatch(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(c.credentials.Username)) == 1
	passOK := bcrypt.CompareHashAndPassword([]byte(c.credentials.PasswordHash), []byte(password)) == nil
	return userOK && passOK
}

// appendAudit records an audit row, logging but not propagating failures.
func (c *AuthController) appendAudit(ctx *gin.Context, action string, details map[string]interface{}, ip string) {
	entry, err := session.NewAuditLog(action, details, ip)
	if err != nil {
		c.logger.Error("failed to build audit log", "error", err)
		return
	}
	if err := c.sessionRepo.AppendAudit(ctx, entry); err != nil {
		c.logger.Error("failed to append audit log", "error", err)
	}
}

// clientIP resolves the caller address, honoring proxy headers.
func clientIP(ctx *gin.Context) string {
	if fwd := ctx.GetHeader("X-Forwarded-For"); fwd != "" {
		if i := strings.IndexByte(fwd, ','); i >= 0 {
			return strings.TrimSpace(fwd[:i])
		}
		return strings.TrimSpace(fwd)
	}
	if real := ctx.GetHeader("X-Real-IP"); real != "" {
		return real
	}
	return ctx.ClientIP()
}
