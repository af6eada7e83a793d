package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/crewbase/account-service/internal/application"
	"github.com/crewbase/account-service/internal/domain"
	"github.com/crewbase/account-service/internal/domain/entity"
	"github.com/crewbase/account-service/pkg/helpers"
	"github.com/crewbase/account-service/pkg/mailer"
	"github.com/crewbase/account-service/pkg/response"
	"github.com/crewbase/account-service/pkg/validation"
)

// AccountHandler exposes the account lifecycle operations over HTTP. It owns
// the boundary concerns the core stays free of: status-code mapping, session
// token issuance, and email enqueueing.
type AccountHandler struct {
	Svc         *application.AccountService
	JWT         *helpers.JWTManager
	Redis       *redis.Client
	Pub         *helpers.RabbitPublisher
	Logger      *logrus.Logger
	Cookies     *helpers.CookieManager
	MailEnabled bool
}

func NewAccountHandler(svc *application.AccountService, jwt *helpers.JWTManager, rdb *redis.Client, pub *helpers.RabbitPublisher, logger *logrus.Logger, cookieDomain string, cookieSecure, mailEnabled bool) *AccountHandler {
	return &AccountHandler{
		Svc:         svc,
		JWT:         jwt,
		Redis:       rdb,
		Pub:         pub,
		Logger:      logger,
		Cookies:     helpers.NewCookieManager(cookieDomain, cookieSecure),
		MailEnabled: mailEnabled,
	}
}

// statusFor translates the three domain error kinds to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotAuthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func fail(c *gin.Context, err error) {
	response.Error[any](c, statusFor(err), err.Error(), nil)
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid "+name, nil)
		return 0, false
	}
	return id, true
}

// Login POST /api/login
// Verifies credentials, advances a pending user to joined, and issues the
// session token pair.
func (h *AccountHandler) Login(c *gin.Context) {
	var req application.CredentialsDto
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	u, err := h.Svc.Login(c.Request.Context(), application.CredentialsToEntity(req))
	if err != nil {
		fail(c, err)
		return
	}

	h.issueSession(c, u)
	response.Success(c, http.StatusOK, application.ToFullUserView(u), "login successful")
}

// Logout POST /api/logout
func (h *AccountHandler) Logout(c *gin.Context) {
	h.Cookies.Clear(c)
	response.Success(c, http.StatusOK, gin.H{"logged_out": true}, "logged out")
}

// CreateUser POST /api/company/:companyId/users
func (h *AccountHandler) CreateUser(c *gin.Context) {
	companyID, ok := pathID(c, "companyId")
	if !ok {
		return
	}
	var req application.UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	u, err := h.Svc.CreateUser(c.Request.Context(), companyID, req)
	if err != nil {
		fail(c, err)
		return
	}

	h.enqueueEmail(c, u, companyID, mailer.TemplateWelcome)
	response.Success(c, http.StatusCreated, application.ToFullUserView(u), "user created")
}

// DeleteUser DELETE /api/company/:companyId/users/:userId
// The body carries the acting admin's credentials.
func (h *AccountHandler) DeleteUser(c *gin.Context) {
	companyID, ok := pathID(c, "companyId")
	if !ok {
		return
	}
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	var req application.CredentialsDto
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	u, err := h.Svc.DeleteUser(c.Request.Context(), application.CredentialsToEntity(req), companyID, userID)
	if err != nil {
		fail(c, err)
		return
	}

	h.enqueueEmail(c, u, companyID, mailer.TemplateDeactivated)
	response.Success(c, http.StatusOK, application.ToFullUserView(u), "user deactivated")
}

// IsAdmin GET /api/users/:userId/admin
func (h *AccountHandler) IsAdmin(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	isAdmin, err := h.Svc.IsAdmin(c.Request.Context(), userID)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"is_admin": isAdmin}, "admin check")
}

// VerifySelf POST /api/users/:userId/verify
// Lets a user prove an id claim with their credentials; returns the
// shareable projection.
func (h *AccountHandler) VerifySelf(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	var req application.CredentialsDto
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	u, err := h.Svc.VerifySelf(c.Request.Context(), application.CredentialsToEntity(req), userID)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, application.ToBasicUserView(u), "identity verified")
}

// Search GET /api/users/search?q=&size=
func (h *AccountHandler) Search(c *gin.Context) {
	q := c.Query("q")
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	hits, err := h.Svc.Directory.Search(c.Request.Context(), q, size)
	if err != nil {
		response.Error[any](c, http.StatusBadGateway, "directory search failed", nil)
		return
	}
	response.Success(c, http.StatusOK, hits, "directory results")
}

// issueSession generates the token pair, records the session hash in redis,
// and sets the cookies. Best effort beyond token generation.
func (h *AccountHandler) issueSession(c *gin.Context, u *entity.User) {
	if h.JWT == nil {
		return
	}
	sid := uuid.NewString()
	access, aexp, err := h.JWT.GenerateAccessToken(u.ID, sid)
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).WithField("user_id", u.ID).Error("generate access token failed")
		}
		return
	}
	refresh, rexp, err := h.JWT.GenerateRefreshToken(u.ID, sid)
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).WithField("user_id", u.ID).Error("generate refresh token failed")
		}
		return
	}

	if h.Redis != nil {
		key := "user:session:" + strconv.FormatInt(u.ID, 10)
		pipe := h.Redis.Pipeline()
		pipe.HSet(c.Request.Context(), key, map[string]any{
			"user_id":    u.ID,
			"username":   u.Credentials.Username,
			"sid":        sid,
			"created_at": time.Now().UTC().Format(time.RFC3339Nano),
		})
		pipe.Expire(c.Request.Context(), key, 24*time.Hour)
		if _, err := pipe.Exec(c.Request.Context()); err != nil && h.Logger != nil {
			h.Logger.WithError(err).WithField("key", key).Warn("redis pipeline failed")
		}
	}

	h.Cookies.SetPair(c, access, aexp, refresh, rexp)
}

func (h *AccountHandler) enqueueEmail(c *gin.Context, u *entity.User, companyID int64, template string) {
	if h.Pub == nil || !h.MailEnabled {
		return
	}
	companyName := ""
	if company, err := h.Svc.Companies.GetByID(c.Request.Context(), companyID); err == nil {
		companyName = company.Name
	}
	job := mailer.EmailJob{
		To:       u.Profile.Email,
		Template: template,
		Data: map[string]any{
			"FirstName": u.Profile.FirstName,
			"Username":  u.Credentials.Username,
			"Company":   companyName,
		},
	}
	if err := h.Pub.PublishJSON(c.Request.Context(), job); err != nil && h.Logger != nil {
		h.Logger.WithError(err).WithField("user_id", u.ID).Warn("email enqueue failed")
	}
}
