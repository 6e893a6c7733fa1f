package config

import "time"

// DefaultSummaryKeywords are the Portuguese topic-overview trigger words used
// when the config does not override them.
var DefaultSummaryKeywords = []string{
	"sumário", "tópicos", "conteúdo", "capítulos", "seções",
	"início", "geral", "o que você sabe", "base de dados",
}

// ApplyDefaults sets default values for any zero values in cfg.
func ApplyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 4000
	}
	if cfg.Corpus.Path == "" {
		cfg.Corpus.Path = "./corpus"
	}
	if cfg.Corpus.Extensions == nil {
		cfg.Corpus.Extensions = []string{".txt", ".md", ".pdf", ".docx", ".xlsx"}
	}
	if cfg.Index.Path == "" {
		cfg.Index.Path = "./vector_store"
	}
	if cfg.Index.ChunkSize == 0 {
		cfg.Index.ChunkSize = 1000
	}
	if cfg.Index.ChunkOverlap == 0 {
		cfg.Index.ChunkOverlap = 200
	}
	if cfg.Index.TopK == 0 {
		cfg.Index.TopK = 6
	}
	if cfg.Provider.BaseURL == "" {
		cfg.Provider.BaseURL = "https://api.openai.com/v1"
	}
	if cfg.Provider.APIKeyEnv == "" {
		cfg.Provider.APIKeyEnv = "OPENAI_API_KEY"
	}
	if cfg.Provider.EmbeddingModel == "" {
		cfg.Provider.EmbeddingModel = "text-embedding-3-small"
	}
	if cfg.Provider.CompletionModel == "" {
		cfg.Provider.CompletionModel = "gpt-4o-mini"
	}
	if cfg.Provider.Timeout == 0 {
		cfg.Provider.Timeout = 30 * time.Second
	}
	if cfg.Provider.MaxRetries == 0 {
		cfg.Provider.MaxRetries = 3
	}
	if cfg.Chat.SummaryKeywords == nil {
		cfg.Chat.SummaryKeywords = DefaultSummaryKeywords
	}
	if cfg.Chat.HistoryLimit == 0 {
		cfg.Chat.HistoryLimit = 20
	}
}
