package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	CredentialRepo CredentialRepositoryFacade
	StudentRepo    StudentRepositoryFacade
	AdminRepo      AdminRepositoryFacade
	SupervisorRepo SupervisorRepositoryFacade
	LogRepo        LogRepositoryFacade
	TokenRepo      VerificationTokenRepositoryFacade
}
