package chat

import (
	"fmt"
	"strings"

	"github.com/SolarisSy/iast/internal/models"
)

// FormatHistory renders conversation turns as labeled lines for prompt
// insertion. User turns are labeled "Usuário", assistant turns "Mentor".
func FormatHistory(history []models.ConversationTurn) string {
	lines := make([]string, 0, len(history))
	for _, turn := range history {
		label := "Mentor"
		if turn.Sender == models.SenderUser {
			label = "Usuário"
		}
		lines = append(lines, fmt.Sprintf("%s: %s", label, turn.Text))
	}
	return strings.Join(lines, "\n")
}

const systemMentor = "Você é um mentor especialista."

func intentPrompt(history, message string) string {
	return fmt.Sprintf(`Analise o histórico da conversa e a última mensagem do usuário para classificar a intenção da **última mensagem** em UMA das seguintes categorias:
- "saudacao": Cumprimentos, agradecimentos, despedidas ou respostas sociais curtas e afirmativas. Exemplos: "Olá", "Obrigado", "Tudo bem", "acho ok", "entendi", "pode ser".
- "conversa_fora_do_nicho": Perguntas sobre a IA (quem é você?), ou sobre qualquer tópico que não seja direito administrativo.
- "pergunta_tecnica": Uma pergunta clara buscando conhecimento sobre processos administrativos, leis, etc. Exemplos: "qual o prazo para a defesa?", "como funciona a citação do acusado?".
- "conversa_do_nicho": Uma afirmação ou pergunta de acompanhamento que claramente continua uma discussão técnica anterior sobre o nicho. Exemplo: (após uma resposta sobre prazos) "e se o prazo não for cumprido?".

**Histórico:**
%s

**Última Mensagem do Usuário:** "%s"

**Categoria:**`, history, message)
}

func conversationalPrompt(message string, intent Intent) string {
	return fmt.Sprintf(`Assuma a personalidade de um mentor especialista em direito administrativo.
O usuário disse: "%s".
Com base na intenção detectada ("%s"), responda de forma breve, humana e natural.
- Se for 'saudacao', cumprimente de volta ou responda cordialmente.
- Se for 'conversa_fora_do_nicho', explique elegantemente que seu foco é o material de estudo e redirecione a conversa.`, message, intent)
}

func rewritePrompt(history, message string) string {
	return fmt.Sprintf(`Você é um especialista em reescrever perguntas de usuários para serem usadas em uma busca de vetor semântica.
Com base no histórico da conversa e na pergunta do usuário, sua única tarefa é gerar uma string de busca concisa e otimizada.

**REGRAS:**
- **NÃO responda à pergunta.**
- **NÃO explique o que você está fazendo.**
- **APENAS GERE A STRING DE BUSCA OTIMIZADA.**
- Se a pergunta do usuário for vaga (ex: "sobre o que posso perguntar?"), gere uma busca por tópicos gerais (ex: "quais são os principais capítulos ou seções do documento?").

**Histórico da Conversa:**
---
%s
---

**Pergunta do Usuário:** "%s"

**String de Busca Otimizada (apenas a string):**`, history, message)
}

const summaryIntroPrompt = `Você é um mentor especialista em direito administrativo. O usuário fez uma pergunta geral sobre o seu conhecimento.
Sua tarefa é escrever uma introdução curta e convidativa, dizendo que você preparou um sumário dos tópicos que domina para ele dar uma olhada.
**NÃO inclua o sumário na sua resposta, apenas a introdução.**
Exemplo: "Claro. Meu conhecimento abrange diversos modelos de atos e procedimentos. Preparei um sumário dos principais tópicos para você explorar. Dê uma olhada:"`

func groundedPrompt(history, context, message string) string {
	return fmt.Sprintf(`Você é um mentor especialista em direito administrativo. Sua única fonte de conhecimento é um livro sobre o assunto, do qual trechos relevantes foram extraídos para você.

**Sua Tarefa:**
1.  Analise a **PERGUNTA ATUAL DO USUÁRIO** no contexto do **HISTÓRICO DA CONVERSA**.
2.  Use **APENAS** os **TRECHOS DO LIVRO (Contexto)** abaixo para formular sua resposta.
3.  Responda como um mentor, sintetizando a informação do livro de forma clara e professoral.
4.  **NUNCA diga "com base na informação que você forneceu" ou "nos trechos que você me deu".** Deixe claro que o conhecimento vem do **seu material de estudo**. Diga coisas como: "De acordo com o material que tenho...", "O livro aborda...", "Analisando os trechos que tenho disponíveis...".

**HISTÓRICO DA CONVERSA:**
---
%s
---

**TRECHOS DO LIVRO (Contexto):**
---
%s
---

**PERGUNTA ATUAL DO USUÁRIO:**
%s

**Resposta do Mentor:**`, history, context, message)
}
