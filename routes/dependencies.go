package routes

import (
	"bookmart/config"
	"bookmart/libs"
	"bookmart/repositories"
	"bookmart/services"
	"bookmart/store"
	"log"
)

// NewDependencies wires the backend client and the optional mail and
// cover upload integrations from cfg.
func NewDependencies(cfg *config.Config, repo repositories.SnapshotRepository) Dependencies {
	api := services.NewAPIClient(cfg.APIBaseURL, cfg.APITimeout)

	deps := Dependencies{
		Registry:      store.NewRegistry(repo),
		Backend:       services.NewBackend(api),
		SessionCookie: cfg.SessionCookie,
		SecureCookie:  cfg.IsProduction(),
	}

	mailer, err := libs.NewEmailService(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom)
	if err != nil {
		log.Printf("Order confirmation email disabled: %v", err)
	} else {
		deps.Mailer = mailer
	}

	uploader, err := libs.NewCloudinaryFromEnv()
	if err != nil {
		log.Printf("Cover upload disabled: %v", err)
	} else {
		deps.Uploader = uploader
	}

	return deps
}
