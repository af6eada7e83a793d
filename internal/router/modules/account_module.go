package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/crewbase/account-service/internal/container"
	handlers "github.com/crewbase/account-service/internal/interface/http"
	"github.com/crewbase/account-service/internal/interface/middleware"
	"github.com/crewbase/account-service/pkg/helpers"
)

// AccountModule wires the account lifecycle routes.
// Public: POST /api/login, account creation/deletion, admin and self checks.
// Protected: POST /api/logout, GET /api/users/search.
type AccountModule struct {
	Handler *handlers.AccountHandler
	JWT     *helpers.JWTManager
}

func NewAccountModule(h *handlers.AccountHandler, jwt *helpers.JWTManager) *AccountModule {
	return &AccountModule{Handler: h, JWT: jwt}
}

func (m *AccountModule) Register(rg *gin.RouterGroup) {
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP(), nil)
	writeLimiter := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIPAndPath(), nil)

	rg.POST("/login", loginLimiter, m.Handler.Login)
	rg.POST("/company/:companyId/users", writeLimiter, m.Handler.CreateUser)
	rg.DELETE("/company/:companyId/users/:userId", writeLimiter, m.Handler.DeleteUser)
	rg.GET("/users/:userId/admin", m.Handler.IsAdmin)
	rg.POST("/users/:userId/verify", writeLimiter, m.Handler.VerifySelf)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	{
		auth.POST("/logout", m.Handler.Logout)
		auth.GET("/users/search", m.Handler.Search)
	}
}
