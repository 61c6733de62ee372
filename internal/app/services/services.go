package services

import (
	"github.com/rs/zerolog"
	"github.com/wilsonXeem/clong-backend/internal/app/auth"
	"github.com/wilsonXeem/clong-backend/internal/app/repositories"
	pkgauth "github.com/wilsonXeem/clong-backend/internal/pkg/auth"
	"github.com/wilsonXeem/clong-backend/internal/pkg/imagehost"
)

// Services holds all the service instances
type Services struct {
	UserService      UserService
	ProgramService   ProgramService
	DonationService  DonationService
	EventService     EventService
	ArticleService   ArticleService
	StoryService     StoryService
	ResourceService  ResourceService
	VolunteerService VolunteerService
	OutreachService  OutreachService
}

// NewServices wires all services to their repositories
func NewServices(
	repos *repositories.Repositories,
	jwtService *pkgauth.JWTService,
	uploader imagehost.Uploader,
	authzService *auth.AuthorizationService,
	logger zerolog.Logger,
) *Services {
	return &Services{
		UserService:      NewUserService(repos.UserRepository, jwtService, logger),
		ProgramService:   NewProgramService(repos.ProgramRepository, uploader, logger),
		DonationService:  NewDonationService(repos.DonationRepository, repos.ProgramRepository, logger),
		EventService:     NewEventService(repos.EventRepository, uploader, logger),
		ArticleService:   NewArticleService(repos.ArticleRepository, uploader, logger),
		StoryService:     NewStoryService(repos.StoryRepository, uploader, authzService, logger),
		ResourceService:  NewResourceService(repos.ResourceRepository, uploader, authzService, logger),
		VolunteerService: NewVolunteerService(repos.VolunteerRepository, logger),
		OutreachService:  NewOutreachService(repos.ContactRepository, repos.NewsletterRepository, logger),
	}
}
