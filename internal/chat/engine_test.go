package chat

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/SolarisSy/iast/internal/config"
	"github.com/SolarisSy/iast/internal/models"
	"github.com/SolarisSy/iast/internal/provider"
	"github.com/SolarisSy/iast/internal/retriever"
)

type stubRetriever struct {
	passages []string
	err      error
	queries  []string
}

func (r *stubRetriever) Retrieve(ctx context.Context, query string) ([]string, error) {
	r.queries = append(r.queries, query)
	if r.err != nil {
		return nil, r.err
	}
	return r.passages, nil
}

func newTestEngine(completer *provider.ScriptedCompleter, ret Retriever) *Engine {
	return NewEngine(completer, ret, NewSummaryDetector(config.DefaultSummaryKeywords), 20, nil)
}

func TestEngine_Greeting(t *testing.T) {
	completer := &provider.ScriptedCompleter{Replies: []string{"saudacao", "Olá! Como posso ajudar nos estudos?"}}
	ret := &stubRetriever{}
	e := newTestEngine(completer, ret)

	resp, err := e.Respond(context.Background(), "Obrigado!", nil)
	if err != nil {
		t.Fatal(err)
	}
	if resp.Reply != "Olá! Como posso ajudar nos estudos?" {
		t.Errorf("reply: %q", resp.Reply)
	}
	if resp.Document != nil {
		t.Error("conversational reply must not carry a document")
	}
	if len(ret.queries) != 0 {
		t.Error("greeting must not reach the retriever")
	}
	if len(completer.Calls) != 2 {
		t.Fatalf("got %d completions", len(completer.Calls))
	}
}

func TestEngine_GroundedAnswer(t *testing.T) {
	completer := &provider.ScriptedCompleter{Replies: []string{
		"pergunta_tecnica",
		"prazo para apresentação de defesa",
		"De acordo com o material que tenho, o prazo para a defesa é de 10 dias.",
	}}
	ret := &stubRetriever{passages: []string{"o prazo para defesa é de 10 dias", "a defesa será escrita"}}
	e := newTestEngine(completer, ret)

	history := []models.ConversationTurn{
		{Sender: models.SenderUser, Text: "como funciona o processo?"},
		{Sender: models.SenderAssistant, Text: "O processo tem três fases."},
	}
	resp, err := e.Respond(context.Background(), "qual o prazo para a defesa?", history)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(resp.Reply, "10 dias") {
		t.Errorf("reply: %q", resp.Reply)
	}

	if len(ret.queries) != 1 || ret.queries[0] != "prazo para apresentação de defesa" {
		t.Errorf("retriever queries: %v", ret.queries)
	}

	// The synthesis prompt carries the retrieved passages and the labeled
	// history, never the raw metadata.
	final := completer.Calls[2][1].Content
	if !strings.Contains(final, "o prazo para defesa é de 10 dias") {
		t.Error("grounded prompt missing retrieved passage")
	}
	if !strings.Contains(final, "\n\n---\n\n") {
		t.Error("passages must be joined with the visible separator")
	}
	if !strings.Contains(final, "Usuário: como funciona o processo?") || !strings.Contains(final, "Mentor: O processo tem três fases.") {
		t.Error("grounded prompt missing formatted history")
	}
}

func TestEngine_SummaryRequest(t *testing.T) {
	completer := &provider.ScriptedCompleter{Replies: []string{
		"pergunta_tecnica",
		"quais são os principais capítulos ou seções do documento?",
		"Claro. Preparei um sumário dos principais tópicos para você explorar:",
	}}
	ret := &stubRetriever{}
	e := newTestEngine(completer, ret)

	resp, err := e.Respond(context.Background(), "sobre o que posso perguntar?", nil)
	if err != nil {
		t.Fatal(err)
	}
	if resp.Document == nil {
		t.Fatal("summary response must carry the topic document")
	}
	if resp.Document.Title != SummaryTitle {
		t.Errorf("title: %q", resp.Document.Title)
	}
	if !strings.Contains(resp.Document.Content, "97. Portaria instauradora - inassiduidade habitual") {
		t.Error("topic document truncated")
	}
	if len(ret.queries) != 0 {
		t.Error("summary path must not invoke retrieval")
	}
}

func TestEngine_ColdStart(t *testing.T) {
	completer := &provider.ScriptedCompleter{Replies: []string{"pergunta_tecnica", "prazo para defesa"}}
	ret := &stubRetriever{err: retriever.ErrNotIngested}
	e := newTestEngine(completer, ret)

	resp, err := e.Respond(context.Background(), "qual o prazo?", nil)
	if err != nil {
		t.Fatal(err)
	}
	if resp.Reply != replyNotIngested {
		t.Errorf("reply: %q", resp.Reply)
	}
}

func TestEngine_UnknownIntent(t *testing.T) {
	completer := &provider.ScriptedCompleter{Replies: []string{"categoria_inventada"}}
	e := newTestEngine(completer, &stubRetriever{})

	resp, err := e.Respond(context.Background(), "???", nil)
	if err != nil {
		t.Fatal(err)
	}
	if resp.Reply != replyUnknownIntent {
		t.Errorf("reply: %q", resp.Reply)
	}
	if len(completer.Calls) != 1 {
		t.Errorf("unknown intent must stop after classification, got %d calls", len(completer.Calls))
	}
}

func TestEngine_ProviderFailureDegrades(t *testing.T) {
	completer := &provider.ScriptedCompleter{Err: errors.New("rate limited")}
	e := newTestEngine(completer, &stubRetriever{})

	resp, err := e.Respond(context.Background(), "Olá", nil)
	if err != nil {
		t.Fatalf("chat turns must not fail hard: %v", err)
	}
	if resp.Reply != replyUnavailable {
		t.Errorf("reply: %q", resp.Reply)
	}
}

func TestEngine_HistoryLimit(t *testing.T) {
	completer := &provider.ScriptedCompleter{Replies: []string{"saudacao", "Olá!"}}
	e := NewEngine(completer, &stubRetriever{}, nil, 2, nil)

	history := []models.ConversationTurn{
		{Sender: models.SenderUser, Text: "primeira mensagem"},
		{Sender: models.SenderAssistant, Text: "primeira resposta"},
		{Sender: models.SenderUser, Text: "segunda mensagem"},
		{Sender: models.SenderAssistant, Text: "segunda resposta"},
	}
	if _, err := e.Respond(context.Background(), "olá", history); err != nil {
		t.Fatal(err)
	}

	classification := completer.Calls[0][0].Content
	if strings.Contains(classification, "primeira mensagem") {
		t.Error("history must be trimmed to the trailing turns")
	}
	if !strings.Contains(classification, "segunda resposta") {
		t.Error("trailing history turn missing from prompt")
	}
}

func TestFormatHistory(t *testing.T) {
	got := FormatHistory([]models.ConversationTurn{
		{Sender: models.SenderUser, Text: "oi"},
		{Sender: models.SenderAssistant, Text: "olá"},
	})
	want := "Usuário: oi\nMentor: olá"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if FormatHistory(nil) != "" {
		t.Error("empty history must format to empty string")
	}
}

func TestEngine_RewriteFallsBackToMessage(t *testing.T) {
	// A rewriter that emits only quotes collapses to empty; the original
	// message is used for retrieval instead.
	completer := &provider.ScriptedCompleter{Replies: []string{
		"pergunta_tecnica",
		`""`,
		"resposta final",
	}}
	ret := &stubRetriever{passages: []string{"trecho"}}
	e := newTestEngine(completer, ret)

	if _, err := e.Respond(context.Background(), "qual o prazo para a defesa?", nil); err != nil {
		t.Fatal(err)
	}
	if len(ret.queries) != 1 || ret.queries[0] != "qual o prazo para a defesa?" {
		t.Errorf("retriever queries: %v", ret.queries)
	}
}
