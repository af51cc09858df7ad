// Package stat gathers corpus statistics while sentences are validated.
package stat

import (
	sent "github.com/revelaction/udcheck/sentence"
)

type Handler struct {
	stats Stats
}

type Stats struct {
	NumSentences int `json:"sentences"`
	NumTokens    int `json:"tokens"`
	NumWords     int `json:"words"`
	NumMWTs      int `json:"multiword_tokens"`
	NumEmpty     int `json:"empty_nodes"`

	// NumEnhanced counts sentences with an enhanced graph.
	NumEnhanced int `json:"enhanced_sentences"`

	WordsPerSentenceMean int         `json:"words_per_sentence_mean"`
	WordsPerSentenceDis  map[int]int `json:"-"`
}

func (h *Handler) Get() Stats {
	return h.stats
}

func NewHandler() *Handler {
	stats := Stats{WordsPerSentenceDis: map[int]int{}}
	return &Handler{
		stats: stats,
	}
}

// Aggregate adds one sentence. Blocks without token lines are not
// sentences and are ignored.
func (h *Handler) Aggregate(s *sent.Sentence) {
	if len(s.Nodes) == 0 {
		return
	}

	words := 0
	enhanced := false
	for _, n := range s.Nodes {
		switch n.Kind {
		case sent.Word:
			words++
		case sent.Range:
			h.stats.NumMWTs++
		case sent.EmptyNode:
			h.stats.NumEmpty++
		}
		if n.Kind != sent.Range && n.Deps() != sent.Empty && n.Deps() != "" {
			enhanced = true
		}
	}

	h.stats.NumSentences++
	h.stats.NumWords += words
	h.stats.NumTokens += len(s.Tokens())
	h.stats.WordsPerSentenceDis[words]++
	if enhanced {
		h.stats.NumEnhanced++
	}

	h.stats.WordsPerSentenceMean = h.stats.NumWords / h.stats.NumSentences
}
