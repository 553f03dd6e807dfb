package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"placid-catalog-be/internal/dto"
	"placid-catalog-be/internal/entity"
	"placid-catalog-be/internal/pkg/apperrors"
	"placid-catalog-be/internal/pkg/logger"
	"placid-catalog-be/internal/repository/specification"
	"placid-catalog-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type INewsletterService interface {
	Subscribe(ctx context.Context, req *dto.SubscribeRequest) (*dto.SubscriberResponse, error)
	Unsubscribe(ctx context.Context, email string) error
	List(ctx context.Context, activeOnly bool) ([]*dto.SubscriberResponse, error)
}

type newsletterService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	mailTopic        string
	logger           logger.ILogger
}

func NewNewsletterService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	mailTopic string,
	log logger.ILogger,
) INewsletterService {
	return &newsletterService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		mailTopic:        mailTopic,
		logger:           log,
	}
}

func toSubscriberResponse(s *entity.NewsletterSubscriber) *dto.SubscriberResponse {
	return &dto.SubscriberResponse{
		Email:     s.Email,
		Name:      s.Name,
		Active:    s.Active,
		CreatedAt: s.CreatedAt,
	}
}

// Subscribe normalizes the address, reactivates a lapsed subscriber, rejects
// a live duplicate with 409 and otherwise creates the row and queues the
// welcome mail.
func (s *newsletterService) Subscribe(ctx context.Context, req *dto.SubscribeRequest) (*dto.SubscriberResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	uow := s.uowFactory.NewUnitOfWork(ctx)
	existing, err := uow.SubscriberRepository().FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		if existing.Active {
			return nil, apperrors.NewConflict("Email already subscribed")
		}
		now := time.Now()
		existing.Active = true
		existing.UpdatedAt = &now
		if err := uow.SubscriberRepository().Update(ctx, existing); err != nil {
			return nil, err
		}
		return toSubscriberResponse(existing), nil
	}

	subscriber := entity.NewsletterSubscriber{
		Id:        uuid.New(),
		Email:     email,
		Active:    true,
		CreatedAt: time.Now(),
	}
	if req.Name != "" {
		subscriber.Name = &req.Name
	}

	if err := uow.SubscriberRepository().Create(ctx, &subscriber); err != nil {
		return nil, err
	}

	name := ""
	if subscriber.Name != nil {
		name = *subscriber.Name
	}
	msg := dto.PublishMailMessage{
		Kind:  dto.MailKindNewsletterWelcome,
		Email: subscriber.Email,
		Name:  name,
	}
	msgJson, _ := json.Marshal(msg)
	if err := s.publisherService.Publish(ctx, s.mailTopic, msgJson); err != nil {
		s.logger.Warn("NewsletterService", "Failed to queue welcome mail", map[string]interface{}{
			"error": err.Error(),
		})
	}

	return toSubscriberResponse(&subscriber), nil
}

func (s *newsletterService) Unsubscribe(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	uow := s.uowFactory.NewUnitOfWork(ctx)
	subscriber, err := uow.SubscriberRepository().FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if subscriber == nil || !subscriber.Active {
		return apperrors.NewNotFound("Subscriber not found")
	}

	now := time.Now()
	subscriber.Active = false
	subscriber.UpdatedAt = &now
	return uow.SubscriberRepository().Update(ctx, subscriber)
}

func (s *newsletterService) List(ctx context.Context, activeOnly bool) ([]*dto.SubscriberResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.OrderBy{Field: "created_at", Desc: true},
	}
	if activeOnly {
		specs = append(specs, specification.ActiveOnly{})
	}

	subscribers, err := uow.SubscriberRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.SubscriberResponse, 0, len(subscribers))
	for _, subscriber := range subscribers {
		result = append(result, toSubscriberResponse(subscriber))
	}
	return result, nil
}
