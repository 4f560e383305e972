package handler

import (
	"github.com/gofiber/fiber/v2"

	"alerto-backend/internal/domain"
	"alerto-backend/internal/service"
)

type Handlers struct {
	Auth         *AuthHandler
	User         *UserHandler
	Location     *LocationHandler
	Zone         *ZoneHandler
	Discussion   *DiscussionHandler
	Facility     *FacilityHandler
	Announcement *AnnouncementHandler
	Notification *NotificationHandler
	Weather      *WeatherHandler
	Dashboard    *DashboardHandler
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Auth:         NewAuthHandler(services.Auth),
		User:         NewUserHandler(services.User),
		Location:     NewLocationHandler(services.Location),
		Zone:         NewZoneHandler(services.Zone),
		Discussion:   NewDiscussionHandler(services.Discussion, services.Media),
		Facility:     NewFacilityHandler(services.Facility),
		Announcement: NewAnnouncementHandler(services.Announcement),
		Notification: NewNotificationHandler(services.Notification),
		Weather:      NewWeatherHandler(services.Weather),
		Dashboard:    NewDashboardHandler(services.Dashboard),
	}
}

func getPaginationParams(c *fiber.Ctx) domain.PaginationParams {
	params := domain.DefaultPagination()

	if page := c.QueryInt("page", 1); page > 0 {
		params.Page = page
	}
	if pageSize := c.QueryInt("page_size", 20); pageSize > 0 {
		params.PageSize = pageSize
	}

	params.Validate()
	return params
}
