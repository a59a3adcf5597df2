package services

import (
	portsrepo "github.com/WeeklyLogs/weekly_log_app/internal/core/ports/repositories"
	portssvc "github.com/WeeklyLogs/weekly_log_app/internal/core/ports/services"
	"github.com/WeeklyLogs/weekly_log_app/internal/platform/config"
)

// NewServiceContainer wires every service with its dependencies and returns
// the container the handlers consume.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, mailer portssvc.VerificationMailer) *portssvc.ServiceContainer {
	strength := DefaultPasswordPolicy{}
	credential := NewCredentialService(repos.CredentialRepo, strength)
	session := NewSessionService(cfg, credential, repos.StudentRepo, repos.AdminRepo)
	access := NewAccessService()
	tokens := NewVerificationTokenService(repos.TokenRepo)
	logs := NewLogService(repos.LogRepo, repos.StudentRepo, repos.SupervisorRepo, tokens, access, mailer, cfg.AppBaseURL)
	provisioning := NewProvisioningService(repos.StudentRepo, repos.AdminRepo, access, strength)

	return &portssvc.ServiceContainer{
		Credential:        credential,
		Session:           session,
		Access:            access,
		VerificationToken: tokens,
		Log:               logs,
		Provisioning:      provisioning,
	}
}
