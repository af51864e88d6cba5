// Package chat implements the two-stage intent classifier and response
// renderer. Stage one consults the trained knowledge maps; when its
// confidence is too low the ordered pattern rules take over.
package chat

import (
	"math/rand"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/stylebot-ai/support-engine/internal/config"
	"github.com/stylebot-ai/support-engine/internal/knowledge"
	"github.com/stylebot-ai/support-engine/internal/observability"
	"github.com/stylebot-ai/support-engine/internal/tabular"
)

// trainedConfidenceGate decides whether the stage-1 result is used.
const trainedConfidenceGate = 0.7

// Response is the classifier output handed to transport layers.
type Response struct {
	Text         string   `json:"message"`
	IntentTag    string   `json:"intent_tag"`
	Confidence   float64  `json:"confidence"`
	QuickReplies []string `json:"quick_replies"`
	Suggestions  []string `json:"suggestions"`
	TrainingUsed bool     `json:"training_used"`

	// Metadata is the envelope transports return verbatim.
	Metadata Metadata `json:"metadata"`
}

// Metadata records how a response was produced. Confidence here is
// always the trained stage's score, even when the pattern fallback
// produced the text.
type Metadata struct {
	ResponseType string         `json:"response_type"`
	Confidence   float64        `json:"confidence"`
	TrainingUsed bool           `json:"training_used"`
	Context      map[string]any `json:"context,omitempty"`
}

// snapshot pairs a store with the knowledge trained from it, so the
// two are always swapped together.
type snapshot struct {
	store     *tabular.Store
	knowledge *knowledge.Knowledge
}

// Service classifies messages against the current knowledge snapshot.
// Retraining swaps one store+knowledge snapshot pointer atomically, so
// in-flight classifications always observe one consistent pair.
type Service struct {
	logger         *observability.Logger
	botName        string
	welcomeMessage string

	trainer    *knowledge.Trainer
	current    atomic.Pointer[snapshot]
	lastResult atomic.Pointer[knowledge.Result]

	mu  sync.Mutex
	rng *rand.Rand
}

// NewService creates a chat service and trains it on the given store.
func NewService(cfg config.BotConfig, store *tabular.Store, logger *observability.Logger) *Service {
	seed := cfg.RandomSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := &Service{
		logger:         logger,
		botName:        cfg.Name,
		welcomeMessage: cfg.WelcomeMessage,
		trainer:        knowledge.NewTrainer(logger),
		rng:            rand.New(rand.NewSource(seed)),
	}
	s.Retrain(store)
	return s
}

// Retrain rebuilds the knowledge from a fresh store and swaps both in
// as one snapshot. An empty store is replaced by the synthetic fixture
// before the swap, so handlers never query empty tables. Safe to call
// concurrently with Classify.
func (s *Service) Retrain(store *tabular.Store) knowledge.Result {
	if store.Empty() {
		s.logger.Warn().Msg("No source collections provided, serving from synthetic fixture")
		store = tabular.Fixture()
	}
	k, result := s.trainer.Train(store)
	s.current.Store(&snapshot{store: store, knowledge: k})
	s.lastResult.Store(&result)
	return result
}

// Knowledge returns the current knowledge snapshot.
func (s *Service) Knowledge() *knowledge.Knowledge {
	return s.current.Load().knowledge
}

// Store returns the current tabular store snapshot.
func (s *Service) Store() *tabular.Store {
	return s.current.Load().store
}

// TrainingResult returns the outcome of the last training run.
func (s *Service) TrainingResult() knowledge.Result {
	return *s.lastResult.Load()
}

// Classify resolves one message into a rendered response. It is total:
// lookup misses and malformed input produce redirect sentences, never
// errors.
func (s *Service) Classify(message string, context map[string]any) Response {
	normalized := strings.ToLower(strings.TrimSpace(message))

	responseType, template, confidence := s.trainedMatch(normalized)

	trainingUsed := confidence > trainedConfidenceGate
	text := template
	intentTag := responseType
	if !trainingUsed {
		text, intentTag = s.matchPatterns(normalized)
	}

	resp := Response{
		Text:         text,
		IntentTag:    intentTag,
		Confidence:   confidence,
		QuickReplies: quickReplies[intentTag],
		Suggestions:  s.suggestions(normalized),
		TrainingUsed: trainingUsed,
		Metadata: Metadata{
			ResponseType: intentTag,
			Confidence:   confidence,
			TrainingUsed: trainingUsed,
			Context:      context,
		},
	}

	s.logger.Debug().
		Str("intent", intentTag).
		Float64("confidence", confidence).
		Bool("training_used", trainingUsed).
		Msg("Message classified")

	return resp
}

// Welcome returns the canned greeting for a new session.
func (s *Service) Welcome() Response {
	return Response{
		Text:         s.welcomeMessage,
		IntentTag:    "welcome",
		Confidence:   1.0,
		QuickReplies: quickReplies["greeting"],
		Metadata: Metadata{
			ResponseType: "welcome",
			Confidence:   1.0,
		},
	}
}

// trainedMatch is stage one: consult the trained knowledge for a
// high-confidence template.
func (s *Service) trainedMatch(message string) (responseType, template string, confidence float64) {
	k := s.current.Load().knowledge

	for _, category := range sortedKeys(k.Products.Categories) {
		if strings.Contains(message, category) {
			tpl, ok := k.Templates.CategoryInfo[category]
			if !ok {
				tpl = "We have great " + category + " available!"
			}
			return "product_info", tpl, 0.9
		}
	}

	if containsAny(message, "cheap", "budget", "affordable") {
		tpl := k.Templates.PriceInfo["budget"]
		if tpl == "" {
			tpl = "We have budget-friendly options available."
		}
		return "price_info", tpl, 0.8
	}

	if orderIDPattern.MatchString(message) {
		// The order id is resolved against the store here so the high
		// confidence answer carries the actual status report.
		text, _ := s.handleOrderStatus(message)
		return "order_status", text, 0.95
	}

	if containsAny(message, "stock", "available", "inventory", "left") {
		tpl := k.Templates.InventoryAvailability
		if tpl == "" {
			tpl = "I can check our current inventory for you."
		}
		return "inventory_info", tpl, 0.85
	}

	return "general", "I'm here to help with your fashion needs!", 0.5
}

// matchPatterns is stage two: the ordered rule list, first match wins.
func (s *Service) matchPatterns(message string) (text, intentTag string) {
	for _, rule := range fallbackRules {
		if rule.pattern.MatchString(message) {
			return rule.handle(s, message)
		}
	}
	return s.pick("fallback"), "support"
}

// suggestions picks up to 3 contextual follow-ups from the raw message.
func (s *Service) suggestions(message string) []string {
	var out []string
	switch {
	case containsAny(message, "product", "item", "clothing"):
		out = []string{"Show me men's clothing", "Show me women's clothing", "What's on sale?"}
	case containsAny(message, "order", "track", "delivery"):
		out = []string{"Track my order", "Order history", "Shipping info"}
	case containsAny(message, "return", "refund", "exchange"):
		out = []string{"Return policy", "Start return", "Contact support"}
	default:
		out = []string{"Browse products", "Track order", "Get help"}
	}
	if len(out) > 3 {
		out = out[:3]
	}
	return out
}

// pick selects one phrasing of a set at random.
func (s *Service) pick(set string) string {
	options := phrasings[set]
	if len(options) == 0 {
		return ""
	}
	s.mu.Lock()
	n := s.rng.Intn(len(options))
	s.mu.Unlock()
	return options[n]
}

func containsAny(message string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(message, w) {
			return true
		}
	}
	return false
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
