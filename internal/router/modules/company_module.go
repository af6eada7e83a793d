package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/crewbase/account-service/internal/interface/http"
)

// CompanyModule wires the company selector and employee registry routes.
type CompanyModule struct {
	Handler *handlers.CompanyHandler
}

func NewCompanyModule(h *handlers.CompanyHandler) *CompanyModule {
	return &CompanyModule{Handler: h}
}

func (m *CompanyModule) Register(rg *gin.RouterGroup) {
	rg.GET("/companies", m.Handler.List)
	rg.GET("/company/:companyId/users", m.Handler.Employees)
}
