package repository

import (
	"github.com/jmoiron/sqlx"
)

type Repositories struct {
	User         UserRepository
	Session      SessionRepository
	Location     LocationRepository
	Zone         ZoneRepository
	Affected     AffectedRepository
	Facility     FacilityRepository
	Discussion   DiscussionRepository
	Comment      CommentRepository
	Attachment   AttachmentRepository
	Announcement AnnouncementRepository
	Notification NotificationRepository
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		User:         NewUserRepository(db),
		Session:      NewSessionRepository(db),
		Location:     NewLocationRepository(db),
		Zone:         NewZoneRepository(db),
		Affected:     NewAffectedRepository(db),
		Facility:     NewFacilityRepository(db),
		Discussion:   NewDiscussionRepository(db),
		Comment:      NewCommentRepository(db),
		Attachment:   NewAttachmentRepository(db),
		Announcement: NewAnnouncementRepository(db),
		Notification: NewNotificationRepository(db),
	}
}
