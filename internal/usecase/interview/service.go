// Package interview drives the turn-based assessment session: question
// generation, reply processing, and finalization. The session suspends
// after every question; each request loads the checkpoint, applies one
// transition, and saves it back, so any instance can serve any turn.
package interview

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Recognifygeneral/Psychometricist-AI/internal/domain"
	"github.com/Recognifygeneral/Psychometricist-AI/internal/domain/features"
	"github.com/Recognifygeneral/Psychometricist-AI/internal/domain/session"
	"github.com/Recognifygeneral/Psychometricist-AI/internal/domain/verdict"
	"github.com/Recognifygeneral/Psychometricist-AI/internal/metrics"
	"github.com/Recognifygeneral/Psychometricist-AI/internal/repository/sessionlog"
)

// earlyStopReply is the synthetic turn recorded when the user stops early,
// so the transcript reflects the stop decision.
const earlyStopReply = "I'd like to stop here."

// fallbackProbeText is used when the probe pool is exhausted before the
// session reaches its turn limit.
const fallbackProbeText = "Tell me about something that's been on your mind lately."

// ProbeStore supplies the conversational probe pool.
type ProbeStore interface {
	All(ctx context.Context) ([]domain.Probe, error)
}

// Checkpoints persists suspended sessions.
type Checkpoints interface {
	Save(ctx context.Context, s *session.Session) error
	Load(ctx context.Context, id string) (*session.Session, error)
}

// SessionLogs persists finalized interview records.
type SessionLogs interface {
	Save(ctx context.Context, snap *sessionlog.Snapshot) error
	Get(ctx context.Context, sessionID string) (*sessionlog.Snapshot, error)
	List(ctx context.Context) ([]string, error)
}

// Questioner generates interviewer questions.
type Questioner interface {
	Question(ctx context.Context, req QuestionRequest) (string, error)
}

// Fuser runs the scoring ensemble over a finished transcript.
type Fuser interface {
	Fuse(ctx context.Context, transcript string, precomputed *features.Vector) verdict.Ensemble
}

// Config holds interview session settings.
type Config struct {
	MaxTurns      int
	MaxReplyBytes int
	HistoryWindow int
}

// Service orchestrates interview sessions.
type Service struct {
	probes      ProbeStore
	checkpoints Checkpoints
	logs        SessionLogs
	questioner  Questioner
	fuser       Fuser
	cfg         Config
	logger      *zap.Logger
}

// New creates the interview service.
func New(
	probes ProbeStore,
	checkpoints Checkpoints,
	logs SessionLogs,
	questioner Questioner,
	fuser Fuser,
	cfg Config,
	logger *zap.Logger,
) *Service {
	return &Service{
		probes:      probes,
		checkpoints: checkpoints,
		logs:        logs,
		questioner:  questioner,
		fuser:       fuser,
		cfg:         cfg,
		logger:      logger,
	}
}

// Outcome is what one session transition hands back to the caller.
type Outcome struct {
	SessionID string
	Question  string // empty once the session is done
	Turn      int    // completed turns so far
	MaxTurns  int
	Done      bool
	Result    *verdict.Ensemble
	Warning   string
}

// Start creates a session and produces the opening question. The session
// suspends awaiting the first reply.
func (s *Service) Start(ctx context.Context) (Outcome, error) {
	sess := session.New(uuid.NewString(), s.cfg.MaxTurns)

	warning, err := s.askNext(ctx, sess)
	if err != nil {
		return Outcome{}, err
	}

	if err := s.checkpoints.Save(ctx, sess); err != nil {
		return Outcome{}, fmt.Errorf("checkpoint session: %w", err)
	}

	metrics.SessionsStartedTotal.Inc()
	s.logger.Info("Session started",
		zap.String("session_id", sess.ID),
		zap.Int("max_turns", sess.MaxTurns))

	return s.outcome(sess, warning), nil
}

// Respond records a human reply and advances the session one transition:
// either the next question or, on the final turn, the fused result.
func (s *Service) Respond(ctx context.Context, sessionID, reply string) (Outcome, error) {
	if strings.TrimSpace(reply) == "" {
		return Outcome{}, domain.ErrEmptyReply
	}
	if s.cfg.MaxReplyBytes > 0 && len(reply) > s.cfg.MaxReplyBytes {
		return Outcome{}, fmt.Errorf("%w: %d bytes (limit %d)",
			domain.ErrReplyTooLong, len(reply), s.cfg.MaxReplyBytes)
	}

	sess, err := s.resume(ctx, sessionID)
	if err != nil {
		return Outcome{}, err
	}

	sess.State = session.StateProcessing
	record := sess.AppendReply(reply)
	metrics.SessionTurnsTotal.Inc()

	s.logger.Debug("Turn recorded",
		zap.String("session_id", sess.ID),
		zap.Int("turn", record.TurnNumber),
		zap.Int("word_count", record.Features.WordCount))

	if sess.TurnCount >= sess.MaxTurns {
		return s.finalize(ctx, sess, "max_turns")
	}

	warning, err := s.askNext(ctx, sess)
	if err != nil {
		return Outcome{}, err
	}

	if err := s.checkpoints.Save(ctx, sess); err != nil {
		return Outcome{}, fmt.Errorf("checkpoint session: %w", err)
	}

	return s.outcome(sess, warning), nil
}

// Stop ends the session early: a synthetic stop turn is recorded and the
// session finalizes with whatever transcript exists.
func (s *Service) Stop(ctx context.Context, sessionID string) (Outcome, error) {
	sess, err := s.resume(ctx, sessionID)
	if err != nil {
		return Outcome{}, err
	}

	sess.State = session.StateProcessing
	sess.AppendReply(earlyStopReply)
	sess.Done = true

	return s.finalize(ctx, sess, "early_stop")
}

// Get returns the current session state, terminated sessions included.
func (s *Service) Get(ctx context.Context, sessionID string) (*session.Session, error) {
	return s.checkpoints.Load(ctx, sessionID)
}

// GetLog returns one finalized interview record.
func (s *Service) GetLog(ctx context.Context, sessionID string) (*sessionlog.Snapshot, error) {
	return s.logs.Get(ctx, sessionID)
}

// ListLogs returns the ids of all finalized interview records.
func (s *Service) ListLogs(ctx context.Context) ([]string, error) {
	return s.logs.List(ctx)
}

// resume loads a checkpoint and verifies it can accept input.
func (s *Service) resume(ctx context.Context, sessionID string) (*session.Session, error) {
	sess, err := s.checkpoints.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Terminated() {
		return nil, domain.ErrSessionTerminated
	}
	if sess.State != session.StateAwaitingHumanInput {
		return nil, fmt.Errorf("%w: state %s", domain.ErrSessionBusy, sess.State)
	}
	return sess, nil
}

// askNext selects the next probe, generates a question from it, and
// suspends the session awaiting input. A question generation failure is
// not fatal: the probe text itself becomes the question, with a warning.
func (s *Service) askNext(ctx context.Context, sess *session.Session) (warning string, err error) {
	probe, err := s.selectProbe(ctx, sess)
	if err != nil {
		return "", err
	}

	question, err := s.questioner.Question(ctx, QuestionRequest{
		Probe:     probe,
		History:   sess.RecentMessages(s.cfg.HistoryWindow),
		IsOpening: sess.TurnCount == 0,
		Turn:      sess.TurnCount + 1,
		MaxTurns:  sess.MaxTurns,
	})
	if err != nil {
		s.logger.Warn("Question generation failed, using probe text",
			zap.String("session_id", sess.ID),
			zap.String("probe_id", probe.ID),
			zap.Error(err))
		question = probe.Text
		warning = "Question generation degraded; asked the probe directly."
	}

	sess.UsedProbeIDs = append(sess.UsedProbeIDs, probe.ID)
	sess.Messages = append(sess.Messages, domain.ChatMessage{Role: "assistant", Content: question})
	sess.State = session.StateAwaitingHumanInput

	return warning, nil
}

// selectProbe picks the first unused probe from the flat pool, falling
// back to a generic probe once the pool is exhausted.
func (s *Service) selectProbe(ctx context.Context, sess *session.Session) (domain.Probe, error) {
	all, err := s.probes.All(ctx)
	if err != nil {
		return domain.Probe{}, fmt.Errorf("load probe pool: %w", err)
	}

	used := make(map[string]struct{}, len(sess.UsedProbeIDs))
	for _, id := range sess.UsedProbeIDs {
		used[id] = struct{}{}
	}

	for _, p := range all {
		if _, ok := used[p.ID]; !ok {
			return p, nil
		}
	}

	return domain.Probe{
		ID:             fmt.Sprintf("fallback_%d", sess.TurnCount),
		Text:           fallbackProbeText,
		TargetBehavior: "General personality expression",
	}, nil
}

// finalize scores the transcript, terminates the session, and persists
// the interview record. A record save failure degrades to a warning:
// the caller still gets the result, and a retry overwrites cleanly.
func (s *Service) finalize(ctx context.Context, sess *session.Session, reason string) (Outcome, error) {
	sess.State = session.StateFinalizing

	// Feature extraction runs on the raw replies, not the marked-up
	// transcript, so turn markers never count as tokens.
	replies := make([]string, len(sess.Turns))
	for i, t := range sess.Turns {
		replies[i] = t.Reply
	}
	fv := features.ExtractAll(replies)

	result := s.fuser.Fuse(ctx, sess.Transcript, &fv)
	sess.Result = &result
	sess.Done = true
	sess.CompletedAt = time.Now().UTC()
	sess.State = session.StateTerminated

	var warning string
	if err := s.logs.Save(ctx, sessionlog.FromSession(sess)); err != nil {
		s.logger.Warn("Session log save failed",
			zap.String("session_id", sess.ID), zap.Error(err))
		warning = "Interview record could not be saved."
	}

	if err := s.checkpoints.Save(ctx, sess); err != nil {
		s.logger.Warn("Terminal checkpoint save failed",
			zap.String("session_id", sess.ID), zap.Error(err))
	}

	metrics.SessionsCompletedTotal.WithLabelValues(reason).Inc()
	metrics.EnsembleScore.Observe(result.Score)
	metrics.ScoringMethodsUsed.Observe(float64(result.MethodsUsed))

	s.logger.Info("Session finalized",
		zap.String("session_id", sess.ID),
		zap.String("reason", reason),
		zap.Int("turns", sess.TurnCount),
		zap.Float64("score", result.Score),
		zap.String("classification", string(result.Classification)))

	return s.outcome(sess, warning), nil
}

func (s *Service) outcome(sess *session.Session, warning string) Outcome {
	out := Outcome{
		SessionID: sess.ID,
		Turn:      sess.TurnCount,
		MaxTurns:  sess.MaxTurns,
		Done:      sess.Done,
		Result:    sess.Result,
		Warning:   warning,
	}
	if !sess.Done {
		out.Question = sess.LastQuestion()
	}
	return out
}
