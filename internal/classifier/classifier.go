package classifier

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino-ext/components/model/gemini"
	"github.com/cloudwego/eino/schema"
	goredis "github.com/redis/go-redis/v9"
	"google.golang.org/genai"

	errx "github.com/partdesk-core/server/internal/core/error"
	"github.com/partdesk-core/server/internal/metrics"
	"github.com/partdesk-core/server/internal/router"
	logx "github.com/partdesk-core/server/pkg/logger"
)

// Config holds the pump-sound classifier settings. An empty API key disables
// the classifier entirely; the router then falls back to re-asking.
type Config struct {
	APIKey   string        `envconfig:"GEMINI_API_KEY"`
	BaseURL  string        `envconfig:"GEMINI_BASE_URL"`
	Model    string        `envconfig:"CLASSIFIER_MODEL" default:"gemini-2.0-flash"`
	Timeout  time.Duration `envconfig:"CLASSIFIER_TIMEOUT" default:"1200ms"`
	CacheTTL time.Duration `envconfig:"CLASSIFIER_CACHE_TTL" default:"1h"`
}

// pumpSoundPrompt pins the model to the closed result set. Anything outside
// it is discarded on parse.
const pumpSoundPrompt = `You classify a homeowner's description of the sound their dishwasher drain pump makes during the drain stage.
Answer with exactly one word, lowercase, no punctuation:
running - the pump motor audibly runs or whirs
humming - the pump hums or buzzes without pumping
silent - the pump makes no sound at all
unknown - the description does not determine one of the above`

// PumpSound refines free-text pump noise descriptions through a small LLM
// call. Every call is bounded by a hard deadline and never retried: a slow or
// failed classification degrades to unknown and the dialog re-asks instead of
// stalling the turn.
type PumpSound struct {
	model   einomodel.BaseChatModel
	timeout time.Duration
	cache   *goredis.Client
	ttl     time.Duration
}

// NewPumpSound builds the classifier. cache may be nil to skip result
// caching. Without an API key a disabled classifier is returned; it answers
// unknown for everything.
func NewPumpSound(ctx context.Context, cfg Config, cache *goredis.Client) (*PumpSound, error) {
	if cfg.APIKey == "" {
		logx.Warn().Msg("no classifier API key; pump sound classifier disabled")
		return &PumpSound{timeout: cfg.Timeout, cache: cache, ttl: cfg.CacheTTL}, nil
	}

	clientCfg := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientCfg.HTTPOptions.BaseURL = cfg.BaseURL
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, errx.WrapClassifier(err)
	}

	temperature := float32(0)
	maxTokens := 8
	chatModel, err := gemini.NewChatModel(ctx, &gemini.Config{
		Client:      client,
		Model:       cfg.Model,
		Temperature: &temperature,
		MaxTokens:   &maxTokens,
	})
	if err != nil {
		return nil, errx.WrapClassifier(err)
	}

	return &PumpSound{
		model:   chatModel,
		timeout: cfg.Timeout,
		cache:   cache,
		ttl:     cfg.CacheTTL,
	}, nil
}

// WithModel swaps the underlying chat model. Tests use it to plug in a stub.
func (c *PumpSound) WithModel(m einomodel.BaseChatModel) *PumpSound {
	c.model = m
	return c
}

// Classify returns one of running/humming/silent/unknown for a pump noise
// description. The call is capped at the configured timeout; on timeout or
// error it returns unknown immediately.
func (c *PumpSound) Classify(ctx context.Context, description string) string {
	if c == nil || c.model == nil {
		metrics.ClassifierCalls.WithLabelValues("disabled").Inc()
		return router.PumpSoundUnknown
	}

	key := cacheKey(description)
	if hit := c.cacheGet(ctx, key); hit != "" {
		metrics.ClassifierCalls.WithLabelValues("cached").Inc()
		return hit
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	out, err := c.model.Generate(ctx, []*schema.Message{
		schema.SystemMessage(pumpSoundPrompt),
		schema.UserMessage(description),
	})
	if err != nil {
		outcome := "error"
		if errors.Is(err, context.DeadlineExceeded) {
			outcome = "timeout"
		}
		metrics.ClassifierCalls.WithLabelValues(outcome).Inc()
		logx.Warn().Err(errx.WrapClassifier(err)).Str("outcome", outcome).Msg("pump sound classification failed")
		return router.PumpSoundUnknown
	}

	result := parseResult(out.Content)
	metrics.ClassifierCalls.WithLabelValues(result).Inc()
	if result != router.PumpSoundUnknown {
		c.cacheSet(ctx, key, result)
	}
	return result
}

// parseResult accepts only the closed set, with surrounding whitespace and
// trailing punctuation tolerated. Everything else is unknown.
func parseResult(content string) string {
	fields := strings.Fields(strings.ToLower(content))
	if len(fields) != 1 {
		return router.PumpSoundUnknown
	}
	switch strings.Trim(fields[0], ".,!\"'") {
	case router.PumpSoundRunning:
		return router.PumpSoundRunning
	case router.PumpSoundHumming:
		return router.PumpSoundHumming
	case router.PumpSoundSilent:
		return router.PumpSoundSilent
	}
	return router.PumpSoundUnknown
}

func cacheKey(description string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(description))))
	return "pumpsound:" + hex.EncodeToString(sum[:8])
}

func (c *PumpSound) cacheGet(ctx context.Context, key string) string {
	if c.cache == nil {
		return ""
	}
	val, err := c.cache.Get(ctx, key).Result()
	if err != nil {
		if !errors.Is(err, goredis.Nil) {
			logx.Debug().Err(errx.WrapRedis(err)).Msg("classifier cache read failed")
		}
		return ""
	}
	switch val {
	case router.PumpSoundRunning, router.PumpSoundHumming, router.PumpSoundSilent:
		return val
	}
	return ""
}

func (c *PumpSound) cacheSet(ctx context.Context, key, result string) {
	if c.cache == nil {
		return
	}
	if err := c.cache.Set(ctx, key, result, c.ttl).Err(); err != nil {
		logx.Debug().Err(errx.WrapRedis(err)).Msg("classifier cache write failed")
	}
}
