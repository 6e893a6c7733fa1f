package chat

import (
	"testing"

	"github.com/SolarisSy/iast/internal/config"
)

func TestSummaryDetector(t *testing.T) {
	d := NewSummaryDetector(config.DefaultSummaryKeywords)

	triggers := []string{
		"quais são os principais capítulos ou seções do documento?",
		"me mostre o sumário",
		"O QUE VOCÊ SABE sobre o assunto",
		"visão geral da base de dados",
	}
	for _, q := range triggers {
		if !d.IsSummaryRequest(q) {
			t.Errorf("query %q should trigger the summary", q)
		}
	}

	specific := []string{
		"qual o prazo para a defesa?",
		"como funciona a citação do acusado",
		"",
	}
	for _, q := range specific {
		if d.IsSummaryRequest(q) {
			t.Errorf("query %q should not trigger the summary", q)
		}
	}
}

func TestSummaryDetector_Empty(t *testing.T) {
	d := NewSummaryDetector(nil)
	if d.IsSummaryRequest("sumário completo") {
		t.Error("detector without keywords must never trigger")
	}
}
