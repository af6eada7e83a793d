package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/crewbase/account-service/internal/application"
	"github.com/crewbase/account-service/pkg/response"
)

// CompanyHandler serves the company selector and per-company employee
// registry.
type CompanyHandler struct {
	Svc    *application.AccountService
	Logger *logrus.Logger
}

func NewCompanyHandler(svc *application.AccountService, logger *logrus.Logger) *CompanyHandler {
	return &CompanyHandler{Svc: svc, Logger: logger}
}

// List GET /api/companies
func (h *CompanyHandler) List(c *gin.Context) {
	companies, err := h.Svc.ListCompanies(c.Request.Context())
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "failed to list companies", nil)
		return
	}
	views := make([]application.CompanyView, 0, len(companies))
	for _, company := range companies {
		views = append(views, application.ToCompanyView(company))
	}
	response.Success(c, http.StatusOK, views, "companies")
}

// Employees GET /api/company/:companyId/users
// The registry uses the basic projection; passwords never leave the service
// here.
func (h *CompanyHandler) Employees(c *gin.Context) {
	companyID, ok := pathID(c, "companyId")
	if !ok {
		return
	}
	users, err := h.Svc.CompanyEmployees(c.Request.Context(), companyID)
	if err != nil {
		fail(c, err)
		return
	}
	views := make([]application.BasicUserView, 0, len(users))
	for _, u := range users {
		views = append(views, application.ToBasicUserView(u))
	}
	response.Success(c, http.StatusOK, views, "company employees")
}
