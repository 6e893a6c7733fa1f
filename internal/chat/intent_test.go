package chat

import "testing"

func TestParseIntent(t *testing.T) {
	cases := []struct {
		raw  string
		want Intent
	}{
		{"saudacao", IntentGreeting},
		{`"saudacao"`, IntentGreeting},
		{"  SAUDACAO \n", IntentGreeting},
		{"conversa_fora_do_nicho", IntentOffTopic},
		{"pergunta_tecnica", IntentTechnicalQuestion},
		{`"Pergunta_Tecnica"`, IntentTechnicalQuestion},
		{"conversa_do_nicho", IntentTopicFollowUp},
		{"", IntentUnknown},
		{"pergunta", IntentUnknown},
		{"saudacao extra", IntentUnknown},
	}
	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			if got := ParseIntent(tc.raw); got != tc.want {
				t.Errorf("ParseIntent(%q) = %q, want %q", tc.raw, got, tc.want)
			}
		})
	}
}

func TestIntent_NeedsRetrieval(t *testing.T) {
	if IntentGreeting.NeedsRetrieval() || IntentOffTopic.NeedsRetrieval() || IntentUnknown.NeedsRetrieval() {
		t.Error("conversational intents must not retrieve")
	}
	if !IntentTechnicalQuestion.NeedsRetrieval() || !IntentTopicFollowUp.NeedsRetrieval() {
		t.Error("knowledge intents must retrieve")
	}
}
