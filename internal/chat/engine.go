package chat

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/SolarisSy/iast/internal/models"
	"github.com/SolarisSy/iast/internal/provider"
	"github.com/SolarisSy/iast/internal/retriever"
)

// Fallback replies. A chat turn never fails hard: provider or index trouble
// degrades to one of these.
const (
	replyUnknownIntent = "Não tenho certeza de como processar essa solicitação. Poderia reformular?"
	replyNotIngested   = "Minha base de conhecimento ainda não foi treinada. Execute a ingestão do material de estudo e tente novamente."
	replyUnavailable   = "Desculpe, estou com dificuldades para processar sua mensagem no momento. Pode tentar novamente em instantes?"
)

// Retriever is the slice of the retrieval layer the engine needs.
type Retriever interface {
	Retrieve(ctx context.Context, query string) ([]string, error)
}

// Engine runs one chat turn end to end: classify the intent, then either
// answer conversationally or rewrite the query, retrieve grounding passages
// and synthesize a mentor reply. Summary requests short-circuit retrieval and
// return the fixed topic document.
type Engine struct {
	completer    provider.Completer
	retriever    Retriever
	detector     *SummaryDetector
	historyLimit int
	logger       *zap.Logger
}

// NewEngine wires a chat engine. historyLimit bounds how many trailing turns
// feed the prompts; non-positive means unbounded.
func NewEngine(completer provider.Completer, ret Retriever, detector *SummaryDetector, historyLimit int, logger *zap.Logger) *Engine {
	if detector == nil {
		detector = NewSummaryDetector(nil)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		completer:    completer,
		retriever:    ret,
		detector:     detector,
		historyLimit: historyLimit,
		logger:       logger,
	}
}

// Respond handles one user message against its conversation history.
func (e *Engine) Respond(ctx context.Context, message string, history []models.ConversationTurn) (*models.ChatResponse, error) {
	history = e.trimHistory(history)
	formatted := FormatHistory(history)

	intent, err := e.classify(ctx, formatted, message)
	if err != nil {
		e.logger.Error("intent classification failed", zap.Error(err))
		return &models.ChatResponse{Reply: replyUnavailable}, nil
	}
	e.logger.Info("intent detected", zap.String("intent", string(intent)))

	switch {
	case intent == IntentGreeting || intent == IntentOffTopic:
		return e.respondConversational(ctx, message, intent)
	case intent.NeedsRetrieval():
		return e.respondGrounded(ctx, formatted, message)
	default:
		e.logger.Warn("unrecognized intent label", zap.String("intent", string(intent)))
		return &models.ChatResponse{Reply: replyUnknownIntent}, nil
	}
}

func (e *Engine) classify(ctx context.Context, history, message string) (Intent, error) {
	raw, err := e.completer.Complete(ctx,
		[]provider.Message{{Role: provider.RoleUser, Content: intentPrompt(history, message)}},
		provider.CompletionOptions{Temperature: 0, MaxTokens: 20},
	)
	if err != nil {
		return IntentUnknown, err
	}
	return ParseIntent(raw), nil
}

func (e *Engine) respondConversational(ctx context.Context, message string, intent Intent) (*models.ChatResponse, error) {
	reply, err := e.completer.Complete(ctx,
		[]provider.Message{
			{Role: provider.RoleSystem, Content: systemMentor},
			{Role: provider.RoleUser, Content: conversationalPrompt(message, intent)},
		},
		provider.CompletionOptions{Temperature: 0.5, MaxTokens: 100},
	)
	if err != nil {
		e.logger.Error("conversational reply failed", zap.Error(err))
		return &models.ChatResponse{Reply: replyUnavailable}, nil
	}
	return &models.ChatResponse{Reply: reply}, nil
}

func (e *Engine) respondGrounded(ctx context.Context, history, message string) (*models.ChatResponse, error) {
	query, err := e.rewriteQuery(ctx, history, message)
	if err != nil {
		e.logger.Error("query rewrite failed", zap.Error(err))
		return &models.ChatResponse{Reply: replyUnavailable}, nil
	}
	e.logger.Info("query rewritten", zap.String("original", message), zap.String("rewritten", query))

	if e.detector.IsSummaryRequest(query) {
		return e.respondSummary(ctx)
	}

	passages, err := e.retriever.Retrieve(ctx, query)
	if err != nil {
		if errors.Is(err, retriever.ErrNotIngested) {
			return &models.ChatResponse{Reply: replyNotIngested}, nil
		}
		e.logger.Error("retrieval failed", zap.Error(err))
		return &models.ChatResponse{Reply: replyUnavailable}, nil
	}
	e.logger.Info("context retrieved", zap.Int("passages", len(passages)))

	reply, err := e.completer.Complete(ctx,
		[]provider.Message{
			{Role: provider.RoleSystem, Content: systemMentor},
			{Role: provider.RoleUser, Content: groundedPrompt(history, retriever.JoinContext(passages), message)},
		},
		provider.CompletionOptions{Temperature: 0.2, MaxTokens: 1000},
	)
	if err != nil {
		e.logger.Error("grounded synthesis failed", zap.Error(err))
		return &models.ChatResponse{Reply: replyUnavailable}, nil
	}
	return &models.ChatResponse{Reply: reply}, nil
}

// rewriteQuery turns the message plus history into a compact search string.
// The model is instructed to emit only the string; stray quotes are stripped.
func (e *Engine) rewriteQuery(ctx context.Context, history, message string) (string, error) {
	raw, err := e.completer.Complete(ctx,
		[]provider.Message{{Role: provider.RoleUser, Content: rewritePrompt(history, message)}},
		provider.CompletionOptions{Temperature: 0, MaxTokens: 100},
	)
	if err != nil {
		return "", err
	}
	query := strings.ReplaceAll(strings.TrimSpace(raw), `"`, "")
	if query == "" {
		query = message
	}
	return query, nil
}

// respondSummary returns the fixed topic document with a generated intro.
// Retrieval is never invoked on this path.
func (e *Engine) respondSummary(ctx context.Context) (*models.ChatResponse, error) {
	intro, err := e.completer.Complete(ctx,
		[]provider.Message{{Role: provider.RoleUser, Content: summaryIntroPrompt}},
		provider.CompletionOptions{Temperature: 0.2, MaxTokens: 100},
	)
	if err != nil {
		e.logger.Error("summary intro failed", zap.Error(err))
		return &models.ChatResponse{Reply: replyUnavailable}, nil
	}
	return &models.ChatResponse{
		Reply: intro,
		Document: &models.TopicDocument{
			Title:   SummaryTitle,
			Content: topicSummary,
		},
	}, nil
}

func (e *Engine) trimHistory(history []models.ConversationTurn) []models.ConversationTurn {
	if e.historyLimit <= 0 || len(history) <= e.historyLimit {
		return history
	}
	return history[len(history)-e.historyLimit:]
}
