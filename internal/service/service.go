package service

import (
	"github.com/minio/minio-go/v7"
	"github.com/redis/go-redis/v9"

	"alerto-backend/internal/config"
	"alerto-backend/internal/repository"
	"alerto-backend/internal/service/announcement"
	"alerto-backend/internal/service/auth"
	"alerto-backend/internal/service/dashboard"
	"alerto-backend/internal/service/discussion"
	"alerto-backend/internal/service/email"
	"alerto-backend/internal/service/facility"
	"alerto-backend/internal/service/location"
	"alerto-backend/internal/service/matcher"
	"alerto-backend/internal/service/media"
	"alerto-backend/internal/service/notification"
	"alerto-backend/internal/service/sms"
	"alerto-backend/internal/service/user"
	"alerto-backend/internal/service/weather"
	"alerto-backend/internal/service/zone"
)

type Services struct {
	Auth         auth.Service
	User         user.Service
	Location     location.Service
	Zone         zone.Service
	Matcher      matcher.Service
	Discussion   discussion.Service
	Media        media.Service
	Facility     facility.Service
	Announcement announcement.Service
	Notification notification.Service
	SMS          sms.Service
	Email        email.Service
	Weather      weather.Service
	Dashboard    dashboard.Service
}

func NewServices(repos *repository.Repositories, redis *redis.Client, minioClient *minio.Client, cfg *config.Config) *Services {
	emailService := email.NewService(cfg)
	smsService := sms.NewService(cfg)
	authService := auth.NewService(repos.User, repos.Session, emailService, cfg)
	userService := user.NewService(repos.User, repos.Session)
	notificationService := notification.NewService(repos.Notification)

	matcherService := matcher.NewService(repos.Zone, repos.Location, repos.Affected, smsService, notificationService)
	locationService := location.NewService(repos.Location, repos.Affected, matcherService)
	zoneService := zone.NewService(repos.Zone, repos.Affected, repos.Discussion, matcherService, redis)

	mediaService := media.NewService(repos.Attachment, minioClient, cfg)
	discussionService := discussion.NewService(repos.Discussion, repos.Comment, repos.Attachment, mediaService, redis)
	facilityService := facility.NewService(repos.Facility)
	announcementService := announcement.NewService(repos.Announcement)
	weatherService := weather.NewService(cfg, redis)
	dashboardService := dashboard.NewService(repos.Zone, repos.Location, repos.Affected, repos.User, repos.Facility, redis)

	return &Services{
		Auth:         authService,
		User:         userService,
		Location:     locationService,
		Zone:         zoneService,
		Matcher:      matcherService,
		Discussion:   discussionService,
		Media:        mediaService,
		Facility:     facilityService,
		Announcement: announcementService,
		Notification: notificationService,
		SMS:          smsService,
		Email:        emailService,
		Weather:      weatherService,
		Dashboard:    dashboardService,
	}
}
