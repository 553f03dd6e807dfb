package service

import (
	"context"
	"encoding/json"
	"time"

	"placid-catalog-be/internal/dto"
	"placid-catalog-be/internal/entity"
	"placid-catalog-be/internal/pkg/apperrors"
	"placid-catalog-be/internal/pkg/logger"
	"placid-catalog-be/internal/pkg/mailer"
	"placid-catalog-be/internal/repository/specification"
	"placid-catalog-be/internal/repository/unitofwork"
	"placid-catalog-be/pkg/events"
	pktNats "placid-catalog-be/pkg/nats"

	"github.com/google/uuid"
)

type IInquiryService interface {
	Submit(ctx context.Context, req *dto.CreateInquiryRequest) (*dto.CreateInquiryResponse, error)
	List(ctx context.Context, status string) ([]*dto.InquiryResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.InquiryResponse, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*dto.InquiryResponse, error)
	Reply(ctx context.Context, id uuid.UUID, message string) (*dto.InquiryResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type inquiryService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	mailTopic        string
	emailService     mailer.IEmailService
	eventPublisher   *pktNats.Publisher
	logger           logger.ILogger
}

func NewInquiryService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	mailTopic string,
	emailService mailer.IEmailService,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IInquiryService {
	return &inquiryService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		mailTopic:        mailTopic,
		emailService:     emailService,
		eventPublisher:   eventPublisher,
		logger:           log,
	}
}

func toInquiryResponse(i *entity.ContactInquiry) *dto.InquiryResponse {
	return &dto.InquiryResponse{
		Id:         i.Id,
		Name:       i.Name,
		Email:      i.Email,
		Phone:      i.Phone,
		Company:    i.Company,
		Subject:    i.Subject,
		Message:    i.Message,
		ProductSku: i.ProductSku,
		Language:   i.Language,
		Status:     string(i.Status),
		CreatedAt:  i.CreatedAt,
		UpdatedAt:  i.UpdatedAt,
	}
}

// Submit persists the inquiry, queues both emails on the mail topic and
// fires the dashboard event. Mail and event failures never fail the request.
func (s *inquiryService) Submit(ctx context.Context, req *dto.CreateInquiryRequest) (*dto.CreateInquiryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	language := req.Language
	if language != "th" {
		language = "en"
	}

	inquiry := entity.ContactInquiry{
		Id:        uuid.New(),
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
		Language:  language,
		Status:    entity.InquiryStatusNew,
		CreatedAt: time.Now(),
	}
	if req.Phone != "" {
		inquiry.Phone = &req.Phone
	}
	if req.Company != "" {
		inquiry.Company = &req.Company
	}
	if req.ProductSku != "" {
		inquiry.ProductSku = &req.ProductSku
	}

	if err := uow.InquiryRepository().Create(ctx, &inquiry); err != nil {
		return nil, err
	}

	for _, kind := range []string{dto.MailKindInquiryNotification, dto.MailKindInquiryConfirmation} {
		msg := dto.PublishMailMessage{
			Kind:      kind,
			InquiryId: inquiry.Id,
		}
		msgJson, _ := json.Marshal(msg)
		if err := s.publisherService.Publish(ctx, s.mailTopic, msgJson); err != nil {
			s.logger.Warn("InquiryService", "Failed to queue mail job", map[string]interface{}{
				"kind":  kind,
				"error": err.Error(),
			})
		}
	}

	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: "INQUIRY_CREATED",
			Data: map[string]interface{}{
				"inquiry_id": inquiry.Id.String(),
				"name":       inquiry.Name,
				"subject":    inquiry.Subject,
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("InquiryService", "Failed to publish inquiry event", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	return &dto.CreateInquiryResponse{InquiryId: inquiry.Id}, nil
}

func (s *inquiryService) List(ctx context.Context, status string) ([]*dto.InquiryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.OrderBy{Field: "created_at", Desc: true},
	}
	if status != "" {
		specs = append(specs, specification.ByStatus{Status: status})
	}

	inquiries, err := uow.InquiryRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.InquiryResponse, 0, len(inquiries))
	for _, inquiry := range inquiries {
		result = append(result, toInquiryResponse(inquiry))
	}
	return result, nil
}

func (s *inquiryService) Get(ctx context.Context, id uuid.UUID) (*dto.InquiryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	inquiry, err := uow.InquiryRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if inquiry == nil {
		return nil, apperrors.NewNotFound("Inquiry not found")
	}
	return toInquiryResponse(inquiry), nil
}

func (s *inquiryService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*dto.InquiryResponse, error) {
	switch entity.InquiryStatus(status) {
	case entity.InquiryStatusNew, entity.InquiryStatusReplied, entity.InquiryStatusClosed:
	default:
		return nil, apperrors.NewValidation("Invalid status")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	inquiry, err := uow.InquiryRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if inquiry == nil {
		return nil, apperrors.NewNotFound("Inquiry not found")
	}

	now := time.Now()
	inquiry.Status = entity.InquiryStatus(status)
	inquiry.UpdatedAt = &now
	if err := uow.InquiryRepository().Update(ctx, inquiry); err != nil {
		return nil, err
	}
	return toInquiryResponse(inquiry), nil
}

// Reply sends the answer straight away (the admin is waiting on the result)
// and marks the inquiry replied.
func (s *inquiryService) Reply(ctx context.Context, id uuid.UUID, message string) (*dto.InquiryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	inquiry, err := uow.InquiryRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if inquiry == nil {
		return nil, apperrors.NewNotFound("Inquiry not found")
	}

	if err := s.emailService.SendInquiryReply(inquiry.Email, inquiry.Name, inquiry.Subject, message); err != nil {
		return nil, apperrors.NewInternal("Failed to send reply", err)
	}

	now := time.Now()
	inquiry.Status = entity.InquiryStatusReplied
	inquiry.UpdatedAt = &now
	if err := uow.InquiryRepository().Update(ctx, inquiry); err != nil {
		return nil, err
	}
	return toInquiryResponse(inquiry), nil
}

func (s *inquiryService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	inquiry, err := uow.InquiryRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if inquiry == nil {
		return apperrors.NewNotFound("Inquiry not found")
	}
	return uow.InquiryRepository().Delete(ctx, id)
}
