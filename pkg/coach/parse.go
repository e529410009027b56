package coach

import (
	"encoding/json"
	"fmt"
	"strings"
)

// QuestAction is the client-executable action attached to a quest.
type QuestAction struct {
	Type string         `json:"type"`
	Data map[string]any `json:"data"`
}

// Quest is a gamified task the coach proposes in its reply.
type Quest struct {
	Type        string       `json:"type"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Xp          int          `json:"xp"`
	Action      *QuestAction `json:"action,omitempty"`
}

// Reply is the parsed structured chat answer.
type Reply struct {
	Reply string `json:"reply"`
	Quest *Quest `json:"quest,omitempty"`
}

// FoodItem is a single identified food in an image analysis.
type FoodItem struct {
	Name     string  `json:"name"`
	Portion  string  `json:"portion"`
	Calories float64 `json:"calories"`
}

// FoodAnalysis is the parsed food-image result. When the model's answer is
// not valid JSON the analysis degrades to low confidence with the raw text
// preserved for the client.
type FoodAnalysis struct {
	Foods         []FoodItem `json:"foods"`
	TotalCalories float64    `json:"totalCalories"`
	Confidence    string     `json:"confidence"`
	RawResponse   string     `json:"rawResponse,omitempty"`
}

// stripFences removes a surrounding markdown code fence, with or without a
// language tag, so fenced JSON answers still parse.
func stripFences(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if idx := strings.Index(s, "\n"); idx >= 0 {
		// drop the language tag line ("json", "JSON", or empty)
		first := strings.TrimSpace(s[:idx])
		if first == "" || strings.EqualFold(first, "json") {
			s = s[idx+1:]
		}
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// ParseReply decodes a chat answer into a Reply. Malformed JSON is an error
// so the caller can refuse to persist a garbled assistant turn.
func ParseReply(raw string) (*Reply, error) {
	cleaned := stripFences(raw)
	var r Reply
	if err := json.Unmarshal([]byte(cleaned), &r); err != nil {
		return nil, fmt.Errorf("parse coach reply: %w", err)
	}
	if strings.TrimSpace(r.Reply) == "" {
		return nil, fmt.Errorf("parse coach reply: empty reply field")
	}
	if r.Quest != nil && r.Quest.Type == "" {
		// a quest without a type is useless to the client, drop it
		r.Quest = nil
	}
	return &r, nil
}

// ParseFoodAnalysis decodes a food-image answer. Unparseable answers never
// fail; they come back as a low-confidence analysis carrying the raw text.
func ParseFoodAnalysis(raw string) FoodAnalysis {
	cleaned := stripFences(raw)
	var a FoodAnalysis
	if err := json.Unmarshal([]byte(cleaned), &a); err != nil || a.Confidence == "" {
		return FoodAnalysis{
			Foods:         []FoodItem{},
			TotalCalories: 0,
			Confidence:    "low",
			RawResponse:   raw,
		}
	}
	if a.Foods == nil {
		a.Foods = []FoodItem{}
	}
	return a
}
