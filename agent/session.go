package agent

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/FredrikJCarlsson/AIAgent/llm"
	"github.com/FredrikJCarlsson/AIAgent/toolhub"
)

// TerminationReason describes how a run ended.
type TerminationReason string

const (
	// TerminationDone means the classifier judged the task complete.
	TerminationDone TerminationReason = "done"
	// TerminationIterationLimit means the iteration bound was reached first.
	// This is a defined terminal outcome, not a failure.
	TerminationIterationLimit TerminationReason = "iteration_limit"
)

var (
	// ErrBackendUnavailable is returned when the reasoning backend fails too
	// many phases in a row and the session aborts.
	ErrBackendUnavailable = errors.New("reasoning backend unavailable")

	// ErrStopped is returned when Stop was requested and the loop halted
	// between phases.
	ErrStopped = errors.New("session stopped")

	// ErrSessionConsumed is returned when Run is called on a session that
	// already ran. Sessions are one-shot.
	ErrSessionConsumed = errors.New("session already ran")
)

// Sentinel texts substituted when a phase produces no usable output.
const (
	planFailureText       = "Planning unavailable: the reasoning backend returned no response."
	actFailureText        = "Execution unavailable: the reasoning backend returned no response."
	evaluationFailureText = "Evaluation unavailable: the reasoning backend returned no response."
	noToolsExecutedText   = "No tools were executed for this step."
	iterationLimitText    = "Iteration limit reached before the task was evaluated as complete."
)

// ExecutedCall pairs one tool-call request with its result.
type ExecutedCall struct {
	Name   string                 `json:"name"`
	Args   map[string]interface{} `json:"args,omitempty"`
	Result toolhub.ToolResult     `json:"result"`
}

// PhaseOutput is the transcript of one full iteration.
type PhaseOutput struct {
	Iteration  int            `json:"iteration"`
	Plan       string         `json:"plan"`
	Calls      []ExecutedCall `json:"calls,omitempty"`
	Evaluation string         `json:"evaluation"`
	Complete   bool           `json:"complete"`
}

// Outcome is the result of a completed run.
type Outcome struct {
	FinalText  string            `json:"final_text"`
	Reason     TerminationReason `json:"reason"`
	Iterations int               `json:"iterations"`
	History    []PhaseOutput     `json:"history"`
}

// Session drives one run of the orchestration loop. It exclusively owns its
// run state; the catalog and dispatcher are read-only collaborators. Sessions
// are single-threaded and one-shot: create a new Session per run.
type Session struct {
	id         string
	client     llm.ChatClient
	catalog    *toolhub.Catalog
	dispatcher *toolhub.Dispatcher
	classifier Classifier
	logger     *zap.Logger
	emitter    *EventEmitter
	config     Config

	mu            sync.Mutex
	stopRequested bool
	consumed      bool
}

// NewSession creates a session over the given collaborators. A nil config
// uses DefaultConfig; a nil logger logs nothing. The classifier defaults to
// KeywordClassifier and can be replaced with SetClassifier before Run.
func NewSession(client llm.ChatClient, catalog *toolhub.Catalog, dispatcher *toolhub.Dispatcher, logger *zap.Logger, config *Config) *Session {
	cfg := DefaultConfig()
	if config != nil {
		cfg = *config
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	id := uuid.New().String()
	return &Session{
		id:         id,
		client:     client,
		catalog:    catalog,
		dispatcher: dispatcher,
		classifier: KeywordClassifier{},
		logger:     logger.With(zap.String("session", id)),
		emitter:    NewEventEmitter(id, cfg.EventBuffer),
		config:     cfg,
	}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Events returns the progress event channel.
func (s *Session) Events() <-chan SessionEvent { return s.emitter.Events() }

// SetClassifier replaces the completion classifier. Must be called before Run.
func (s *Session) SetClassifier(c Classifier) {
	if c != nil {
		s.classifier = c
	}
}

// Stop requests a best-effort halt. It takes effect between phases; a backend
// or tool call already in flight is not force-aborted.
func (s *Session) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopRequested = true
}

// Close releases the session's event channel. Safe to call multiple times.
func (s *Session) Close() {
	s.emitter.Close()
}

// Run executes the orchestration loop for one user request and returns the
// outcome. model may be a registry alias; it is resolved before the first
// backend call. Per-phase and per-tool failures are absorbed into the
// transcript; only unrecoverable conditions (misconfiguration, a run of
// consecutive backend failures, cancellation) propagate as errors.
func (s *Session) Run(ctx context.Context, userRequest, model string) (*Outcome, error) {
	if s.client == nil {
		return nil, &llm.ConfigurationError{BackendError: llm.BackendError{Message: "session has no reasoning backend client"}}
	}
	if s.catalog == nil || s.dispatcher == nil {
		return nil, &llm.ConfigurationError{BackendError: llm.BackendError{Message: "session requires a catalog and a dispatcher"}}
	}

	s.mu.Lock()
	if s.consumed {
		s.mu.Unlock()
		return nil, ErrSessionConsumed
	}
	s.consumed = true
	s.mu.Unlock()

	model = llm.ResolveModel(model)
	snapshot := s.catalog.Snapshot(ctx)

	s.logger.Info("run started",
		zap.String("model", model),
		zap.Int("tools", snapshot.Len()),
		zap.Int("max_iterations", s.config.MaxIterations),
	)
	s.emitter.Emit(EventRunStart, map[string]interface{}{
		"request": userRequest,
		"model":   model,
		"tools":   snapshot.Len(),
	})

	run := &runState{
		request:  userRequest,
		model:    model,
		snapshot: snapshot,
	}

	for iteration := 0; iteration < s.config.MaxIterations; iteration++ {
		if err := s.checkStop(ctx); err != nil {
			s.emitter.Emit(EventError, map[string]interface{}{"error": err.Error()})
			return nil, err
		}

		out, err := s.runIteration(ctx, run, iteration)
		if err != nil {
			s.emitter.Emit(EventError, map[string]interface{}{"error": err.Error()})
			return nil, err
		}

		run.history = append(run.history, *out)
		s.emitter.Emit(EventIterationEnd, map[string]interface{}{
			"iteration": iteration,
			"complete":  out.Complete,
		})

		if out.Complete {
			s.logger.Info("run complete", zap.Int("iterations", iteration+1))
			s.emitter.Emit(EventRunEnd, map[string]interface{}{"reason": string(TerminationDone)})
			return &Outcome{
				FinalText:  out.Evaluation,
				Reason:     TerminationDone,
				Iterations: iteration + 1,
				History:    run.history,
			}, nil
		}
	}

	final := iterationLimitText
	if last := lastEvaluation(run.history); last != "" {
		final = final + "\n\nLast evaluation:\n" + last
	}
	s.logger.Warn("iteration limit reached", zap.Int("iterations", s.config.MaxIterations))
	s.emitter.Emit(EventIterationLimit, map[string]interface{}{"iterations": s.config.MaxIterations})
	s.emitter.Emit(EventRunEnd, map[string]interface{}{"reason": string(TerminationIterationLimit)})
	return &Outcome{
		FinalText:  final,
		Reason:     TerminationIterationLimit,
		Iterations: s.config.MaxIterations,
		History:    run.history,
	}, nil
}

// runState is the mutable state of one run, owned by the loop alone.
type runState struct {
	request     string
	model       string
	snapshot    *toolhub.Snapshot
	accumulated []string // tool-result texts across all iterations
	history     []PhaseOutput
	signatures  []string // executed-call signatures for repeat detection
	failures    int      // consecutive backend transport failures
}

// runIteration performs one REASON -> ACT -> EVALUATE cycle.
func (s *Session) runIteration(ctx context.Context, run *runState, iteration int) (*PhaseOutput, error) {
	out := &PhaseOutput{Iteration: iteration}

	// REASON: plan without tool access. A backend failure here is non-fatal;
	// the loop proceeds to ACT with a sentinel plan.
	plan, err := s.chatPhase(ctx, run, llm.ChatRequest{
		Model:    run.model,
		Messages: planningMessages(run.request, run.accumulated, run.snapshot.Tools()),
	}, planFailureText)
	if err != nil {
		return nil, err
	}
	out.Plan = plan
	s.emitter.Emit(EventPlan, map[string]interface{}{"iteration": iteration, "plan": plan})

	if err := s.checkStop(ctx); err != nil {
		return nil, err
	}

	// ACT: execute the plan with tools enabled.
	iterationResults, err := s.actPhase(ctx, run, out)
	if err != nil {
		return nil, err
	}
	run.accumulated = append(run.accumulated, iterationResults...)

	if s.config.EnableRepeatDetection && detectRepeatedCalls(run.signatures, s.config.RepeatDetectionWindow) {
		note := fmt.Sprintf("Note: the last %d tool calls follow a repeating pattern. Try a different approach.", s.config.RepeatDetectionWindow)
		run.accumulated = append(run.accumulated, note)
		s.logger.Warn("repeated tool calls detected", zap.Int("window", s.config.RepeatDetectionWindow))
		s.emitter.Emit(EventRepeatDetected, map[string]interface{}{"window": s.config.RepeatDetectionWindow})
	}

	if err := s.checkStop(ctx); err != nil {
		return nil, err
	}

	// EVALUATE: judge completion from this iteration's results only.
	evaluation, err := s.chatPhase(ctx, run, llm.ChatRequest{
		Model:    run.model,
		Messages: evaluationMessages(run.request, out.Plan, iterationResults),
	}, evaluationFailureText)
	if err != nil {
		return nil, err
	}
	out.Evaluation = evaluation
	out.Complete = s.classifier.Classify(evaluation)
	s.emitter.Emit(EventEvaluation, map[string]interface{}{
		"iteration":  iteration,
		"evaluation": evaluation,
		"complete":   out.Complete,
	})

	return out, nil
}

// actPhase issues the tools-enabled backend call and executes any requested
// tool calls sequentially. It returns the iteration's result texts.
func (s *Session) actPhase(ctx context.Context, run *runState, out *PhaseOutput) ([]string, error) {
	resp, err := s.client.Chat(ctx, llm.ChatRequest{
		Model:        run.model,
		Messages:     executionMessages(out.Plan, run.snapshot.Tools()),
		ToolsEnabled: true,
		Tools:        toolhub.Defs(run.snapshot.Tools()),
	})
	if err != nil {
		if abortErr := s.recordBackendFailure(run, err); abortErr != nil {
			return nil, abortErr
		}
		return []string{actFailureText}, nil
	}
	run.failures = 0

	if !resp.HasToolCalls() {
		// A plan that needs no tool use is a valid outcome, not an error.
		return []string{noToolsExecutedText}, nil
	}

	var results []string
	for _, call := range resp.ToolCalls {
		s.emitter.Emit(EventToolCallStart, map[string]interface{}{
			"tool":    call.Name,
			"call_id": call.ID,
		})

		executed := s.executeCall(ctx, run.snapshot, call)
		out.Calls = append(out.Calls, executed)
		run.signatures = append(run.signatures, callSignature(call.Name, call.Arguments))

		text := truncateResult(executed.Result.Content, s.config.ToolOutputLimit)
		results = append(results, text)

		s.emitter.Emit(EventToolCallEnd, map[string]interface{}{
			"tool":     call.Name,
			"call_id":  call.ID,
			"provider": executed.Result.Provider,
			"is_error": executed.Result.IsError,
			"output":   executed.Result.Content, // untruncated
		})
	}
	return results, nil
}

// executeCall validates and dispatches one tool call. Failures of any kind
// produce an error-describing result, never an abort.
func (s *Session) executeCall(ctx context.Context, snapshot *toolhub.Snapshot, call llm.ToolCall) ExecutedCall {
	args := call.Arguments
	if args == nil {
		args = map[string]interface{}{}
	}

	if desc, ok := snapshot.Find(call.Name); ok {
		if err := toolhub.ValidateArgs(desc, args); err != nil {
			s.logger.Warn("tool arguments failed validation",
				zap.String("tool", call.Name),
				zap.Error(err),
			)
			return ExecutedCall{Name: call.Name, Args: args, Result: toolhub.ToolResult{
				Content: err.Error(),
				IsError: true,
			}}
		}
		args = toolhub.ApplyDefaults(desc, args)
	}

	result, err := s.dispatcher.Call(ctx, call.Name, args)
	if err != nil {
		s.logger.Warn("tool call failed on all providers",
			zap.String("tool", call.Name),
			zap.Error(err),
		)
		return ExecutedCall{Name: call.Name, Args: args, Result: toolhub.ToolResult{
			Content: err.Error(),
			IsError: true,
		}}
	}
	return ExecutedCall{Name: call.Name, Args: args, Result: result}
}

// chatPhase issues a tools-disabled backend call, substituting sentinel on
// failure and tracking consecutive transport failures.
func (s *Session) chatPhase(ctx context.Context, run *runState, req llm.ChatRequest, sentinel string) (string, error) {
	resp, err := s.client.Chat(ctx, req)
	if err != nil {
		if abortErr := s.recordBackendFailure(run, err); abortErr != nil {
			return "", abortErr
		}
		return sentinel, nil
	}
	run.failures = 0
	text := resp.Text()
	if text == "" {
		return sentinel, nil
	}
	return text, nil
}

// recordBackendFailure counts a transport failure against the consecutive
// limit. It returns a non-nil abort error once the limit is reached. The
// counter spans phases within one run and is reset by any successful call.
func (s *Session) recordBackendFailure(run *runState, err error) error {
	run.failures++
	s.logger.Warn("reasoning backend call failed",
		zap.Int("consecutive", run.failures),
		zap.Error(err),
	)
	if run.failures >= s.config.MaxBackendFailures {
		return fmt.Errorf("%w: %d consecutive transport failures: %v", ErrBackendUnavailable, run.failures, err)
	}
	return nil
}

// checkStop honors context cancellation and the Stop flag between phases.
func (s *Session) checkStop(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	s.mu.Lock()
	stopped := s.stopRequested
	s.mu.Unlock()
	if stopped {
		return ErrStopped
	}
	return nil
}

func lastEvaluation(history []PhaseOutput) string {
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Evaluation != "" {
			return history[i].Evaluation
		}
	}
	return ""
}
