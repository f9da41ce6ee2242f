package orchestrator

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"

	"github.com/EdwinBikes/videos-con-IA/internal/domain"
	"github.com/EdwinBikes/videos-con-IA/internal/infra"
	"github.com/EdwinBikes/videos-con-IA/internal/providers/genai"
	"github.com/EdwinBikes/videos-con-IA/internal/storage"
)

// GenerativeClient is the remote surface the engine drives. *genai.Client
// satisfies it; tests substitute stubs.
type GenerativeClient interface {
	EditImage(ctx context.Context, media domain.EncodedMedia, prompt string) ([]domain.ResultPart, error)
	CreateVideoJob(ctx context.Context, media domain.EncodedMedia, prompt string) (*genai.VideoOperation, error)
	PollVideoJob(ctx context.Context, op *genai.VideoOperation) (*genai.VideoOperation, error)
	DownloadVideo(ctx context.Context, uri string) ([]byte, string, error)
}

const (
	defaultPollInterval   = 10 * time.Second
	defaultStatusInterval = 5 * time.Second
)

var videoStatusMessages = []string{
	"Warming up the video engine...",
	"Storyboarding your scene...",
	"Rendering the first frames...",
	"Teaching the pixels to move...",
	"Adding cinematic touches...",
	"Polishing the final cut...",
}

const (
	editStatusMessage = "Editing your image..."

	failureMessage    = "Something went wrong while generating. Please try again."
	emptyEditMessage  = "The model returned no content for this request."
	emptyVideoMessage = "The job finished without producing a video."
)

// Options configures an Engine.
type Options struct {
	Client         GenerativeClient
	Logger         infra.Logger
	Results        *storage.ResultStore
	Output         *storage.FileStore
	PollInterval   time.Duration
	StatusInterval time.Duration
	// Sleep is the wait primitive of the polling loop, injectable for tests.
	Sleep func(ctx context.Context, d time.Duration) error
}

// Engine runs one orchestration cycle at a time: it validates the input,
// invokes the remote operation for the active mode, tracks busy state for the
// UI and converts every outcome into an OperationResult. Shared state (busy
// flag, status message, live result) is guarded so concurrent triggers are
// serialized rather than interleaved.
type Engine struct {
	client         GenerativeClient
	logger         infra.Logger
	results        *storage.ResultStore
	output         *storage.FileStore
	sem            *semaphore.Weighted
	busy           atomic.Bool
	status         StatusTicker
	pollInterval   time.Duration
	statusInterval time.Duration
	sleep          func(ctx context.Context, d time.Duration) error
}

// New constructs an Engine with defaults applied.
func New(opts Options) *Engine {
	poll := opts.PollInterval
	if poll <= 0 {
		poll = defaultPollInterval
	}
	statusInterval := opts.StatusInterval
	if statusInterval <= 0 {
		statusInterval = defaultStatusInterval
	}
	sleep := opts.Sleep
	if sleep == nil {
		sleep = sleepContext
	}
	results := opts.Results
	if results == nil {
		results = storage.NewResultStore(0)
	}
	return &Engine{
		client:         opts.Client,
		logger:         opts.Logger,
		results:        results,
		output:         opts.Output,
		sem:            semaphore.NewWeighted(1),
		pollInterval:   poll,
		statusInterval: statusInterval,
		sleep:          sleep,
	}
}

// Input is one user-triggered generation request.
type Input struct {
	Mode   domain.Mode
	Prompt string
	Media  domain.EncodedMedia
}

// Execute runs a full cycle. Validation problems and a busy engine are
// returned as errors for the caller to surface pre-flight; every remote
// outcome, including failures, is converted into an OperationResult. The busy
// state and status ticker are always cleared on exit.
func (e *Engine) Execute(ctx context.Context, in Input) (*domain.OperationResult, error) {
	if in.Media.IsZero() {
		return nil, domain.ErrMissingMedia
	}
	if strings.TrimSpace(in.Prompt) == "" {
		return nil, domain.ErrEmptyPrompt
	}

	if !e.sem.TryAcquire(1) {
		return nil, domain.ErrBusy
	}
	defer e.sem.Release(1)
	e.busy.Store(true)
	defer e.busy.Store(false)

	// A new cycle discards the previous live result before anything else.
	e.results.Clear()

	if in.Mode == domain.ModeVideo {
		e.status.Start(videoStatusMessages, e.statusInterval)
	} else {
		e.status.Start([]string{editStatusMessage}, 0)
	}
	defer e.status.Stop()

	res := e.run(ctx, in)
	res.ID = uuid.NewString()
	res.Mode = in.Mode

	if res.Downloadable() {
		e.results.Put(res)
		if keys, err := e.output.SaveResult(res); err != nil {
			e.logger.Warn().Err(err).Msg("orchestrator: failed to mirror result to disk")
		} else if len(keys) > 0 {
			e.logger.Info().Strs("files", keys).Msg("orchestrator: result mirrored to disk")
		}
	}

	e.logger.Info().
		Str("mode", string(in.Mode)).
		Str("result", string(res.Kind)).
		Str("result_id", res.ID).
		Msg("orchestrator: cycle finished")

	return res, nil
}

// Status reports whether a cycle is in flight and the current busy message.
func (e *Engine) Status() (bool, string) {
	if !e.busy.Load() {
		return false, ""
	}
	return true, e.status.Current()
}

func (e *Engine) run(ctx context.Context, in Input) *domain.OperationResult {
	switch in.Mode {
	case domain.ModeVideo:
		return e.runVideo(ctx, in)
	default:
		return e.runEdit(ctx, in)
	}
}

func (e *Engine) runEdit(ctx context.Context, in Input) *domain.OperationResult {
	parts, err := e.client.EditImage(ctx, in.Media, in.Prompt)
	if err != nil {
		e.logger.Error().Err(err).Msg("orchestrator: image edit failed")
		return &domain.OperationResult{Kind: domain.ResultFailure, Message: failureMessage}
	}
	if len(parts) == 0 {
		return &domain.OperationResult{Kind: domain.ResultEmpty, Message: emptyEditMessage}
	}

	hasMedia := false
	var annotations []string
	for _, p := range parts {
		if p.IsMedia() {
			hasMedia = true
		} else if p.Text != "" {
			annotations = append(annotations, p.Text)
		}
	}
	if !hasMedia {
		// Text-only replies carry no renderable media; surface the model's
		// own words as the descriptive message.
		msg := strings.TrimSpace(strings.Join(annotations, " "))
		if msg == "" {
			msg = emptyEditMessage
		}
		return &domain.OperationResult{Kind: domain.ResultEmpty, Message: msg}
	}
	return &domain.OperationResult{Kind: domain.ResultImage, Parts: parts}
}

func (e *Engine) runVideo(ctx context.Context, in Input) *domain.OperationResult {
	op, err := e.client.CreateVideoJob(ctx, in.Media, in.Prompt)
	if err != nil {
		e.logger.Error().Err(err).Msg("orchestrator: video job submission failed")
		return &domain.OperationResult{Kind: domain.ResultFailure, Message: failureMessage}
	}

	// Poll until the remote marks the job done. There is deliberately no
	// iteration cap: the service is trusted to terminate the job, and the
	// caller can abandon the cycle by cancelling the context.
	for !op.Done {
		if err := e.sleep(ctx, e.pollInterval); err != nil {
			e.logger.Error().Err(err).Str("operation", op.Name).Msg("orchestrator: polling aborted")
			return &domain.OperationResult{Kind: domain.ResultFailure, Message: failureMessage}
		}
		op, err = e.client.PollVideoJob(ctx, op)
		if err != nil {
			e.logger.Error().Err(err).Msg("orchestrator: video job poll failed")
			return &domain.OperationResult{Kind: domain.ResultFailure, Message: failureMessage}
		}
	}

	uri, ok := op.VideoURI()
	if !ok {
		return &domain.OperationResult{Kind: domain.ResultEmpty, Message: emptyVideoMessage}
	}

	blob, mime, err := e.client.DownloadVideo(ctx, uri)
	if err != nil {
		e.logger.Error().Err(err).Str("uri", uri).Msg("orchestrator: video download failed")
		return &domain.OperationResult{Kind: domain.ResultFailure, Message: failureMessage}
	}

	return &domain.OperationResult{
		Kind:  domain.ResultVideo,
		Parts: []domain.ResultPart{{Data: blob, MIMEType: mime}},
	}
}

// Results exposes the live result store for the download handlers.
func (e *Engine) Results() *storage.ResultStore {
	return e.results
}

// Result looks up a stored result by ID.
func (e *Engine) Result(id string) (*domain.OperationResult, bool) {
	return e.results.Get(id)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return fmt.Errorf("wait interrupted: %w", ctx.Err())
	case <-timer.C:
		return nil
	}
}
