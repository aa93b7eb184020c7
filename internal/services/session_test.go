package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/yungbote/chirp-backend/internal/assessment"
	"github.com/yungbote/chirp-backend/internal/data/repos"
	"github.com/yungbote/chirp-backend/internal/data/repos/testutil"
	"github.com/yungbote/chirp-backend/internal/domain"
	"github.com/yungbote/chirp-backend/internal/pkg/dbctx"
	pkgerrors "github.com/yungbote/chirp-backend/internal/pkg/errors"
)

func newSessionService(t *testing.T) (SessionService, dbctx.Context) {
	t.Helper()
	db := testutil.DB(t)
	log := testutil.Logger(t)
	tx := testutil.Tx(t, db)
	svc := NewSessionService(
		log,
		db,
		repos.NewSessionRepo(db, log),
		repos.NewInteractionTurnRepo(db, log),
		repos.NewAnalysisSampleRepo(db, log),
		repos.NewAdaptationEventRepo(db, log),
		nil, nil,
	)
	return svc, dbctx.Context{Ctx: context.Background(), Tx: tx}
}

func TestSessionServiceCreateAndGet(t *testing.T) {
	svc, dbc := newSessionService(t)

	if _, err := svc.Create(dbc, uuid.Nil); err != pkgerrors.ErrInvalidInput {
		t.Fatalf("nil subject: got=%v want=%v", err, pkgerrors.ErrInvalidInput)
	}

	sess, err := svc.Create(dbc, uuid.New())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	got, err := svc.Get(dbc, sess.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != domain.SessionStatusActive || got.LogVersion != 0 {
		t.Fatalf("fresh session: status=%s version=%d", got.Status, got.LogVersion)
	}
}

func TestSessionServiceAppendsBumpLogVersion(t *testing.T) {
	svc, dbc := newSessionService(t)

	sess, err := svc.Create(dbc, uuid.New())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	clarity := 80.0
	n, err := svc.AppendTurns(dbc, sess.ID, []TurnInput{
		{Speaker: "guide", Content: "What did you build today?"},
		{Speaker: "child", Content: "A big red tower!", Analysis: []assessment.AnalysisBundle{
			{Kind: assessment.BundleSpeech, Speech: &assessment.SpeechBundle{Clarity: &clarity}},
		}},
	})
	if err != nil || n != 2 {
		t.Fatalf("append turns: n=%d err=%v", n, err)
	}

	if n, err = svc.AppendSamples(dbc, sess.ID, []SampleInput{{Timestamp: time.Now().UTC()}}); err != nil || n != 1 {
		t.Fatalf("append samples: n=%d err=%v", n, err)
	}
	if n, err = svc.AppendAdaptations(dbc, sess.ID, []AdaptationInput{{Trigger: "frustration", Effect: "slowed pace"}}); err != nil || n != 1 {
		t.Fatalf("append adaptations: n=%d err=%v", n, err)
	}

	got, err := svc.Get(dbc, sess.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.LogVersion != 3 {
		t.Fatalf("log version after three appends: got=%d want=3", got.LogVersion)
	}
}

func TestSessionServiceAppendEmptyIsNoOp(t *testing.T) {
	svc, dbc := newSessionService(t)

	sess, err := svc.Create(dbc, uuid.New())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if n, err := svc.AppendTurns(dbc, sess.ID, nil); err != nil || n != 0 {
		t.Fatalf("empty append: n=%d err=%v", n, err)
	}
	got, _ := svc.Get(dbc, sess.ID)
	if got.LogVersion != 0 {
		t.Fatalf("empty append must not bump version: got=%d", got.LogVersion)
	}
}

func TestSessionServiceSnapshot(t *testing.T) {
	svc, dbc := newSessionService(t)

	sess, err := svc.Create(dbc, uuid.New())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	clarity := 72.0
	if _, err := svc.AppendTurns(dbc, sess.ID, []TurnInput{
		{Speaker: "guide", Content: "hello"},
		{Speaker: "child", Content: "hi there", Analysis: []assessment.AnalysisBundle{
			{Kind: assessment.BundleSpeech, Speech: &assessment.SpeechBundle{Clarity: &clarity}},
		}},
	}); err != nil {
		t.Fatalf("append turns: %v", err)
	}
	if _, err := svc.AppendAdaptations(dbc, sess.ID, []AdaptationInput{{Trigger: "distraction", Effect: "re-engaged"}}); err != nil {
		t.Fatalf("append adaptations: %v", err)
	}

	snap, err := svc.Snapshot(dbc, sess.ID)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if snap.Version != 2 {
		t.Fatalf("snapshot version: got=%d want=2", snap.Version)
	}
	if len(snap.Turns) != 2 || len(snap.Adaptations) != 1 {
		t.Fatalf("snapshot shape: turns=%d adaptations=%d", len(snap.Turns), len(snap.Adaptations))
	}
	if snap.Turns[0].Content != "hello" || snap.Turns[1].Content != "hi there" {
		t.Fatalf("turn order: %q, %q", snap.Turns[0].Content, snap.Turns[1].Content)
	}
	got := snap.Turns[1].Analysis
	if len(got) != 1 || got[0].Speech == nil || got[0].Speech.Clarity == nil || *got[0].Speech.Clarity != 72 {
		t.Fatalf("analysis round-trip: %+v", got)
	}
	if snap.Metrics.TurnCount != 2 || snap.Metrics.SampleCount != 0 {
		t.Fatalf("metrics: %+v", snap.Metrics)
	}
}

func TestSessionServiceOnAppendHook(t *testing.T) {
	svc, dbc := newSessionService(t)

	var notified []uuid.UUID
	svc.OnAppend(func(id uuid.UUID) { notified = append(notified, id) })

	sess, err := svc.Create(dbc, uuid.New())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.AppendTurns(dbc, sess.ID, []TurnInput{{Speaker: "child", Content: "hi"}}); err != nil {
		t.Fatalf("append: %v", err)
	}
	if len(notified) != 1 || notified[0] != sess.ID {
		t.Fatalf("hook: %v", notified)
	}
}

func TestSessionServiceComplete(t *testing.T) {
	svc, dbc := newSessionService(t)

	sess, err := svc.Create(dbc, uuid.New())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Complete(dbc, sess.ID); err != nil {
		t.Fatalf("complete: %v", err)
	}
	got, err := svc.Get(dbc, sess.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != domain.SessionStatusComplete || got.EndedAt == nil {
		t.Fatalf("completed session: status=%s endedAt=%v", got.Status, got.EndedAt)
	}
}
