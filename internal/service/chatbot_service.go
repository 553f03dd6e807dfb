package service

import (
	"context"
	"fmt"
	"strings"

	"placid-catalog-be/internal/constant"
	"placid-catalog-be/internal/dto"
	"placid-catalog-be/internal/entity"
	"placid-catalog-be/internal/pkg/apperrors"
	"placid-catalog-be/internal/pkg/logger"
	"placid-catalog-be/internal/repository/session"
	"placid-catalog-be/internal/repository/specification"
	"placid-catalog-be/internal/repository/unitofwork"
	"placid-catalog-be/pkg/embedding"
	"placid-catalog-be/pkg/llm"
	"placid-catalog-be/pkg/store"

	"github.com/google/uuid"
)

const (
	retrievalLimit = 5

	// Turns kept per session. Older turns fall off so prompts stay bounded.
	maxHistoryTurns = 20
)

type IChatbotService interface {
	Chat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error)
}

type chatbotService struct {
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.EmbeddingProvider
	llmProvider       llm.LLMProvider
	sessionRepo       *session.Repository
	logger            logger.ILogger
}

func NewChatbotService(
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.EmbeddingProvider,
	llmProvider llm.LLMProvider,
	sessionRepo *session.Repository,
	log logger.ILogger,
) IChatbotService {
	return &chatbotService{
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
		llmProvider:       llmProvider,
		sessionRepo:       sessionRepo,
		logger:            log,
	}
}

func (s *chatbotService) Chat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	query := lastUserMessage(req.Messages)
	if query == "" {
		return nil, apperrors.NewValidation("No user message in request")
	}

	sess := s.loadSession(ctx, req)

	products, err := s.retrieveProducts(ctx, query)
	if err != nil {
		return nil, err
	}

	history := s.buildHistory(sess, req, products)

	reply, err := s.llmProvider.Chat(ctx, history)
	if err != nil {
		return nil, apperrors.NewInternal("Chat completion failed", err)
	}

	sess.History = append(sess.History,
		store.ChatTurn{Role: store.RoleUser, Content: query},
		store.ChatTurn{Role: store.RoleAssistant, Content: reply},
	)
	if len(sess.History) > maxHistoryTurns {
		sess.History = sess.History[len(sess.History)-maxHistoryTurns:]
	}
	sess.LastQuery = query
	sess.LastProductSkus = sess.LastProductSkus[:0]
	for _, product := range products {
		sess.LastProductSkus = append(sess.LastProductSkus, product.Sku)
	}
	if err := s.sessionRepo.Save(ctx, sess); err != nil {
		s.logger.Warn("ChatbotService", "Failed to save session", map[string]interface{}{
			"session_id": sess.ID,
			"error":      err.Error(),
		})
	}

	return &dto.ChatResponse{
		SessionId: sess.ID,
		Reply:     reply,
	}, nil
}

func lastUserMessage(messages []dto.ChatMessage) string {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == "user" {
			return strings.TrimSpace(messages[i].Content)
		}
	}
	return ""
}

func (s *chatbotService) loadSession(ctx context.Context, req *dto.ChatRequest) *store.Session {
	if req.SessionId != "" {
		if sess, found := s.sessionRepo.Get(ctx, req.SessionId); found {
			return sess
		}
	}
	id := req.SessionId
	if id == "" {
		id = uuid.NewString()
	}
	return &store.Session{
		ID:       id,
		Language: req.Language,
		History:  make([]store.ChatTurn, 0),
	}
}

// retrieveProducts runs the vector search when an embedding provider is
// configured, then falls back to keyword search when the vector path is
// unavailable or empty.
func (s *chatbotService) retrieveProducts(ctx context.Context, query string) ([]*entity.Product, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if s.embeddingProvider != nil {
		res, err := s.embeddingProvider.Generate(query, "RETRIEVAL_QUERY")
		if err != nil {
			s.logger.Warn("ChatbotService", "Embedding failed, falling back to keyword search", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			ids, err := uow.ProductEmbeddingRepository().SearchNearest(ctx, res.Embedding.Values, retrievalLimit)
			if err != nil {
				return nil, err
			}
			if len(ids) > 0 {
				products, err := uow.ProductRepository().FindAll(ctx,
					specification.ByIDs{IDs: ids},
					specification.ActiveOnly{},
				)
				if err != nil {
					return nil, err
				}
				if len(products) > 0 {
					return products, nil
				}
			}
		}
	}

	return uow.ProductRepository().FindAll(ctx,
		specification.ActiveOnly{},
		specification.ProductKeyword{Keyword: query},
		specification.Pagination{Limit: retrievalLimit, Offset: 0},
	)
}

func (s *chatbotService) buildHistory(sess *store.Session, req *dto.ChatRequest, products []*entity.Product) []llm.Message {
	persona := constant.AdvisorSystemPromptEn
	if req.Language == "th" || sess.Language == "th" {
		persona = constant.AdvisorSystemPromptTh
	}

	var sb strings.Builder
	sb.WriteString(persona)
	sb.WriteString("\n\n")
	sb.WriteString(constant.ProductContextHeader)
	sb.WriteString("\n")
	if len(products) == 0 {
		sb.WriteString("(no matching products)\n")
	}
	for _, product := range products {
		supplier := ""
		if product.Supplier != nil {
			supplier = *product.Supplier
		}
		desc := product.DescriptionEn
		if len(desc) > 300 {
			desc = desc[:300]
		}
		sb.WriteString(fmt.Sprintf("- SKU %s | %s / %s | category: %s | supplier: %s | %s\n",
			product.Sku, product.TitleEn, product.TitleTh, product.Category, supplier, desc))
	}

	history := make([]llm.Message, 0, len(sess.History)+len(req.Messages)+1)
	history = append(history, llm.Message{Role: "system", Content: sb.String()})
	for _, turn := range sess.History {
		history = append(history, llm.Message{Role: turn.Role, Content: turn.Content})
	}
	for _, msg := range req.Messages {
		if msg.Role == "system" {
			// Client-supplied system prompts are ignored.
			continue
		}
		history = append(history, llm.Message{Role: msg.Role, Content: msg.Content})
	}
	return history
}
