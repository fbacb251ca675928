package classifier

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/partdesk-core/server/internal/router"
)

// stubModel is a canned chat model: optional delay, then a fixed reply or
// error.
type stubModel struct {
	reply string
	delay time.Duration
	err   error
	calls int
}

func (s *stubModel) Generate(ctx context.Context, _ []*schema.Message, _ ...einomodel.Option) (*schema.Message, error) {
	s.calls++
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if s.err != nil {
		return nil, s.err
	}
	return schema.AssistantMessage(s.reply, nil), nil
}

func (s *stubModel) Stream(_ context.Context, _ []*schema.Message, _ ...einomodel.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, errors.New("stream not supported")
}

func newTestClassifier(t *testing.T, m einomodel.BaseChatModel, cache *goredis.Client) *PumpSound {
	t.Helper()
	c, err := NewPumpSound(context.Background(), Config{
		Timeout:  200 * time.Millisecond,
		CacheTTL: time.Minute,
	}, cache)
	require.NoError(t, err)
	return c.WithModel(m)
}

func TestClassifyClosedSet(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  string
	}{
		{"running", "running", router.PumpSoundRunning},
		{"humming", "humming", router.PumpSoundHumming},
		{"silent", "silent", router.PumpSoundSilent},
		{"cased with punctuation", "Humming.", router.PumpSoundHumming},
		{"explicit unknown", "unknown", router.PumpSoundUnknown},
		{"chatty answer rejected", "the pump is humming", router.PumpSoundUnknown},
		{"off-set answer rejected", "grinding", router.PumpSoundUnknown},
		{"empty answer rejected", "", router.PumpSoundUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClassifier(t, &stubModel{reply: tt.reply}, nil)
			assert.Equal(t, tt.want, c.Classify(context.Background(), "some noise description"))
		})
	}
}

func TestClassifyTimeout(t *testing.T) {
	c := newTestClassifier(t, &stubModel{reply: "humming", delay: 2 * time.Second}, nil)

	start := time.Now()
	got := c.Classify(context.Background(), "a slow one")
	assert.Equal(t, router.PumpSoundUnknown, got)
	assert.Less(t, time.Since(start), time.Second, "classification must respect the deadline")
}

func TestClassifyError(t *testing.T) {
	c := newTestClassifier(t, &stubModel{err: errors.New("upstream down")}, nil)
	assert.Equal(t, router.PumpSoundUnknown, c.Classify(context.Background(), "whatever"))
}

func TestClassifyDisabledWithoutKey(t *testing.T) {
	c, err := NewPumpSound(context.Background(), Config{Timeout: time.Second}, nil)
	require.NoError(t, err)
	assert.Equal(t, router.PumpSoundUnknown, c.Classify(context.Background(), "anything"))
}

func TestClassifyCachesResults(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	stub := &stubModel{reply: "humming"}
	c := newTestClassifier(t, stub, rdb)

	assert.Equal(t, router.PumpSoundHumming, c.Classify(context.Background(), "it buzzes a bit"))
	assert.Equal(t, 1, stub.calls)

	// second identical description is served from the cache
	assert.Equal(t, router.PumpSoundHumming, c.Classify(context.Background(), "it buzzes a bit"))
	assert.Equal(t, 1, stub.calls)

	// unknown results are never cached
	stub.reply = "no idea"
	assert.Equal(t, router.PumpSoundUnknown, c.Classify(context.Background(), "different sound"))
	assert.Equal(t, router.PumpSoundUnknown, c.Classify(context.Background(), "different sound"))
	assert.Equal(t, 3, stub.calls)
}
