package service

import (
	"github.com/dom/job-board-website/internal/config"
	"github.com/dom/job-board-website/internal/repository"
)

type Services struct {
	Auth    *AuthService
	Profile *ProfileService
	Job     *JobService
	Message *MessageService
}

func NewServices(repos *repository.Repositories, cfg *config.Config, notifier Notifier) *Services {
	return &Services{
		Auth:    NewAuthService(repos.User, repos.Session, cfg),
		Profile: NewProfileService(repos.User, repos.JobSeekerProfile, repos.CompanyProfile),
		Job:     NewJobService(repos, cfg),
		Message: NewMessageService(repos.User, repos.Message, notifier),
	}
}
