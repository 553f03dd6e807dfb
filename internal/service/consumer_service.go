package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"placid-catalog-be/internal/dto"
	"placid-catalog-be/internal/entity"
	"placid-catalog-be/internal/pkg/mailer"
	"placid-catalog-be/internal/repository/specification"
	"placid-catalog-be/internal/repository/unitofwork"
	"placid-catalog-be/pkg/embedding"
	"placid-catalog-be/pkg/utils"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub            *gochannel.GoChannel
	embedTopic        string
	mailTopic         string
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.EmbeddingProvider
	emailService      mailer.IEmailService
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	embedTopic string,
	mailTopic string,
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.EmbeddingProvider,
	emailService mailer.IEmailService,
) IConsumerService {
	return &consumerService{
		pubSub:            pubSub,
		embedTopic:        embedTopic,
		mailTopic:         mailTopic,
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
		emailService:      emailService,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	embedMessages, err := cs.pubSub.Subscribe(ctx, cs.embedTopic)
	if err != nil {
		return err
	}
	mailMessages, err := cs.pubSub.Subscribe(ctx, cs.mailTopic)
	if err != nil {
		return err
	}

	go func() {
		for msg := range embedMessages {
			cs.processEmbedMessage(ctx, msg)
		}
	}()
	go func() {
		for msg := range mailMessages {
			cs.processMailMessage(ctx, msg)
		}
	}()

	return nil
}

// processEmbedMessage rebuilds a product's embedding rows: split the product
// document into chunks, embed each, then swap the rows in one transaction.
func (cs *consumerService) processEmbedMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishEmbedProductMessage
	err := json.Unmarshal(msg.Payload, &payload)
	if err != nil {
		log.Printf("[ERROR] Failed to unmarshal embed message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	if cs.embeddingProvider == nil {
		msg.Ack()
		return
	}

	log.Printf("[INFO] Processing product embedding for ProductId: %s", payload.ProductId)

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	product, err := uow.ProductRepository().FindOne(ctx, specification.ByID{ID: payload.ProductId})
	if err != nil {
		log.Printf("[ERROR] Failed to get product %s: %v", payload.ProductId, err)
		msg.Nack()
		return
	}
	if product == nil {
		log.Printf("[ERROR] Product not found: %s", payload.ProductId)
		msg.Ack() // Product deleted? Ack.
		return
	}

	supplier := ""
	if product.Supplier != nil {
		supplier = *product.Supplier
	}
	content := fmt.Sprintf(`SKU: %s
Title: %s
Title (TH): %s
Category: %s
Supplier: %s

%s

%s`,
		product.Sku,
		product.TitleEn,
		product.TitleTh,
		product.Category,
		supplier,
		product.DescriptionEn,
		product.DescriptionTh,
	)

	chunks := utils.SplitText(content, 1500, 200)
	log.Printf("[INFO] Content split into %d chunks", len(chunks))

	var newEmbeddings []*entity.ProductEmbedding

	for i, chunk := range chunks {
		res, err := cs.embeddingProvider.Generate(chunk, "RETRIEVAL_DOCUMENT")
		if err != nil {
			log.Printf("[ERROR] Failed to generate embedding for chunk %d of product %s: %v", i, payload.ProductId, err)
			msg.Nack()
			return
		}

		newEmbeddings = append(newEmbeddings, &entity.ProductEmbedding{
			Id:             uuid.New(),
			Document:       chunk,
			EmbeddingValue: res.Embedding.Values,
			ProductId:      product.Id,
			ChunkIndex:     i,
			CreatedAt:      time.Now(),
		})
	}

	if err := uow.Begin(ctx); err != nil {
		log.Printf("[ERROR] Failed to begin transaction: %v", err)
		msg.Nack()
		return
	}
	defer uow.Rollback()

	if err := uow.ProductEmbeddingRepository().DeleteByProductId(ctx, product.Id); err != nil {
		log.Printf("[ERROR] Failed to delete old embeddings: %v", err)
		msg.Nack()
		return
	}

	if len(newEmbeddings) > 0 {
		if err := uow.ProductEmbeddingRepository().CreateBulk(ctx, newEmbeddings); err != nil {
			log.Printf("[ERROR] Failed to create bulk embeddings: %v", err)
			msg.Nack()
			return
		}
	}

	if err := uow.Commit(); err != nil {
		log.Printf("[ERROR] Failed to commit transaction: %v", err)
		msg.Nack()
		return
	}

	log.Printf("[SUCCESS] Product embedded: %d chunks for ProductId: %s", len(newEmbeddings), payload.ProductId)
	msg.Ack()
}

func (cs *consumerService) processMailMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishMailMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal mail message: %v", err)
		msg.Ack()
		return
	}

	switch payload.Kind {
	case dto.MailKindInquiryNotification, dto.MailKindInquiryConfirmation:
		uow := cs.uowFactory.NewUnitOfWork(ctx)
		inquiry, err := uow.InquiryRepository().FindOne(ctx, specification.ByID{ID: payload.InquiryId})
		if err != nil {
			log.Printf("[ERROR] Failed to load inquiry %s: %v", payload.InquiryId, err)
			msg.Nack()
			return
		}
		if inquiry == nil {
			msg.Ack()
			return
		}

		mail := mailer.InquiryMail{
			Name:    inquiry.Name,
			Email:   inquiry.Email,
			Subject: inquiry.Subject,
			Message: inquiry.Message,
		}
		if inquiry.Phone != nil {
			mail.Phone = *inquiry.Phone
		}
		if inquiry.Company != nil {
			mail.Company = *inquiry.Company
		}
		if inquiry.ProductSku != nil {
			mail.ProductSku = *inquiry.ProductSku
		}

		if payload.Kind == dto.MailKindInquiryNotification {
			err = cs.emailService.SendInquiryNotification(mail)
		} else {
			err = cs.emailService.SendInquiryConfirmation(mail)
		}
		if err != nil {
			// Mail is best-effort. Log and ack so the queue doesn't loop on a
			// dead SMTP server.
			log.Printf("[ERROR] Failed to send %s for inquiry %s: %v", payload.Kind, payload.InquiryId, err)
		}
		msg.Ack()

	case dto.MailKindNewsletterWelcome:
		if err := cs.emailService.SendNewsletterWelcome(payload.Email, payload.Name); err != nil {
			log.Printf("[ERROR] Failed to send welcome mail to %s: %v", payload.Email, err)
		}
		msg.Ack()

	default:
		log.Printf("[WARN] Unknown mail kind: %s", payload.Kind)
		msg.Ack()
	}
}
