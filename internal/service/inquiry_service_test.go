package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"placid-catalog-be/internal/dto"
	"placid-catalog-be/internal/entity"
	"placid-catalog-be/internal/pkg/apperrors"
	"placid-catalog-be/internal/pkg/mailer"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmailService struct {
	notifications []mailer.InquiryMail
	confirmations []mailer.InquiryMail
	replies       []string
	welcomes      []string
	err           error
}

func (f *fakeEmailService) SendInquiryNotification(m mailer.InquiryMail) error {
	if f.err != nil {
		return f.err
	}
	f.notifications = append(f.notifications, m)
	return nil
}

func (f *fakeEmailService) SendInquiryConfirmation(m mailer.InquiryMail) error {
	if f.err != nil {
		return f.err
	}
	f.confirmations = append(f.confirmations, m)
	return nil
}

func (f *fakeEmailService) SendInquiryReply(toEmail, name, subject, reply string) error {
	if f.err != nil {
		return f.err
	}
	f.replies = append(f.replies, reply)
	return nil
}

func (f *fakeEmailService) SendNewsletterWelcome(toEmail, name string) error {
	if f.err != nil {
		return f.err
	}
	f.welcomes = append(f.welcomes, toEmail)
	return nil
}

func newInquiryForTest(store *fakeStore, pub *fakePublisher, mail *fakeEmailService) IInquiryService {
	return NewInquiryService(newFakeFactory(store), pub, "SEND_MAIL", mail, nil, nopLogger{})
}

func TestSubmitInquiryQueuesBothMails(t *testing.T) {
	store := &fakeStore{}
	pub := &fakePublisher{}
	svc := newInquiryForTest(store, pub, &fakeEmailService{})

	res, err := svc.Submit(context.Background(), &dto.CreateInquiryRequest{
		Name:    "Somchai",
		Email:   "somchai@example.com",
		Subject: "Meeting room acoustics",
		Message: "We need panels for a 40sqm room.",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, res.InquiryId)

	require.Len(t, store.inquiries, 1)
	assert.Equal(t, entity.InquiryStatusNew, store.inquiries[0].Status)
	assert.Equal(t, "en", store.inquiries[0].Language)

	require.Len(t, pub.published, 2)
	kinds := make([]string, 0, 2)
	for _, msg := range pub.published {
		assert.Equal(t, "SEND_MAIL", msg.Topic)
		var payload dto.PublishMailMessage
		require.NoError(t, json.Unmarshal(msg.Payload, &payload))
		assert.Equal(t, res.InquiryId, payload.InquiryId)
		kinds = append(kinds, payload.Kind)
	}
	assert.ElementsMatch(t, []string{dto.MailKindInquiryNotification, dto.MailKindInquiryConfirmation}, kinds)
}

func TestSubmitInquirySurvivesQueueFailure(t *testing.T) {
	store := &fakeStore{}
	pub := &fakePublisher{err: errors.New("bus down")}
	svc := newInquiryForTest(store, pub, &fakeEmailService{})

	_, err := svc.Submit(context.Background(), &dto.CreateInquiryRequest{
		Name:    "Somchai",
		Email:   "somchai@example.com",
		Subject: "Hello",
		Message: "Hi",
	})
	require.NoError(t, err)
	assert.Len(t, store.inquiries, 1)
}

func TestSubmitInquiryDefaultsLanguage(t *testing.T) {
	store := &fakeStore{}
	svc := newInquiryForTest(store, &fakePublisher{}, &fakeEmailService{})

	_, err := svc.Submit(context.Background(), &dto.CreateInquiryRequest{
		Name: "A", Email: "a@b.c", Subject: "s", Message: "m", Language: "fr",
	})
	require.NoError(t, err)
	assert.Equal(t, "en", store.inquiries[0].Language)

	_, err = svc.Submit(context.Background(), &dto.CreateInquiryRequest{
		Name: "B", Email: "b@b.c", Subject: "s", Message: "m", Language: "th",
	})
	require.NoError(t, err)
	assert.Equal(t, "th", store.inquiries[1].Language)
}

func TestUpdateStatusValidatesEnum(t *testing.T) {
	svc := newInquiryForTest(&fakeStore{}, &fakePublisher{}, &fakeEmailService{})

	_, err := svc.UpdateStatus(context.Background(), uuid.New(), "archived")
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperrors.KindValidation, appErr.Kind)
}

func TestReplySendsMailAndMarksReplied(t *testing.T) {
	id := uuid.New()
	store := &fakeStore{
		inquiries: []entity.ContactInquiry{
			{Id: id, Name: "Somchai", Email: "somchai@example.com", Subject: "Panels", Status: entity.InquiryStatusNew},
		},
	}
	mail := &fakeEmailService{}
	svc := newInquiryForTest(store, &fakePublisher{}, mail)

	res, err := svc.Reply(context.Background(), id, "We recommend PA-FW-101.")
	require.NoError(t, err)
	assert.Equal(t, string(entity.InquiryStatusReplied), res.Status)
	assert.Equal(t, entity.InquiryStatusReplied, store.inquiries[0].Status)
	require.Len(t, mail.replies, 1)
	assert.Equal(t, "We recommend PA-FW-101.", mail.replies[0])
}

func TestReplyMailFailureKeepsStatus(t *testing.T) {
	id := uuid.New()
	store := &fakeStore{
		inquiries: []entity.ContactInquiry{
			{Id: id, Name: "Somchai", Email: "somchai@example.com", Subject: "Panels", Status: entity.InquiryStatusNew},
		},
	}
	mail := &fakeEmailService{err: errors.New("smtp down")}
	svc := newInquiryForTest(store, &fakePublisher{}, mail)

	_, err := svc.Reply(context.Background(), id, "reply")
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperrors.KindInternal, appErr.Kind)
	assert.Equal(t, entity.InquiryStatusNew, store.inquiries[0].Status)
}

func TestListInquiriesByStatus(t *testing.T) {
	store := &fakeStore{
		inquiries: []entity.ContactInquiry{
			{Id: uuid.New(), Name: "A", Status: entity.InquiryStatusNew},
			{Id: uuid.New(), Name: "B", Status: entity.InquiryStatusReplied},
		},
	}
	svc := newInquiryForTest(store, &fakePublisher{}, &fakeEmailService{})

	res, err := svc.List(context.Background(), "replied")
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "B", res[0].Name)
}
