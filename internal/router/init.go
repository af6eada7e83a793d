package router

import (
	"github.com/crewbase/account-service/internal/application"
	"github.com/crewbase/account-service/internal/container"
	pginfra "github.com/crewbase/account-service/internal/infrastructure/postgres"
	handlers "github.com/crewbase/account-service/internal/interface/http"
	"github.com/crewbase/account-service/internal/router/modules"
	"github.com/crewbase/account-service/pkg/helpers"
)

func buildAccountService() *application.AccountService {
	cfg := container.GetConfig()
	directory := application.NewDirectoryService(container.GetES(), cfg.ESDirectoryIndex, container.GetLogger())

	return application.NewAccountService(
		pginfra.NewUserRepository(container.GetPGPool()),
		pginfra.NewCompanyRepository(container.GetPGPool()),
		helpers.MatcherFor(cfg.PasswordScheme),
		container.GetLogger(),
		directory,
	)
}

// InitModules wires all application modules into the router registry. Called
// once during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	svc := buildAccountService()

	accountHandler := handlers.NewAccountHandler(
		svc,
		container.GetJWT(),
		container.GetRedis(),
		container.GetRabbitPub(),
		container.GetLogger(),
		cfg.CookieDomain,
		cfg.CookieSecure,
		cfg.MailSendEnabled,
	)
	companyHandler := handlers.NewCompanyHandler(svc, container.GetLogger())

	r.Add(modules.NewAccountModule(accountHandler, container.GetJWT()))
	r.Add(modules.NewCompanyModule(companyHandler))
}
