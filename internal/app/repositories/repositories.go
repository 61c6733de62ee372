package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository       *UserRepository
	ProgramRepository    *ProgramRepository
	DonationRepository   *DonationRepository
	EventRepository      *EventRepository
	ArticleRepository    *ArticleRepository
	StoryRepository      *StoryRepository
	ResourceRepository   *ResourceRepository
	VolunteerRepository  *VolunteerRepository
	ContactRepository    *ContactRepository
	NewsletterRepository *NewsletterRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:       NewUserRepository(db),
		ProgramRepository:    NewProgramRepository(db),
		DonationRepository:   NewDonationRepository(db),
		EventRepository:      NewEventRepository(db),
		ArticleRepository:    NewArticleRepository(db),
		StoryRepository:      NewStoryRepository(db),
		ResourceRepository:   NewResourceRepository(db),
		VolunteerRepository:  NewVolunteerRepository(db),
		ContactRepository:    NewContactRepository(db),
		NewsletterRepository: NewNewsletterRepository(db),
	}
}
