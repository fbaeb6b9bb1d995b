// Package chatbot composes entity extraction, intent classification and the
// reply builder into the single Process entry point the service layer uses.
//
// The reply builder owns the dual-source policy: the catalog is authoritative
// and always available, the knowledge graph is a lazily populated index that
// is read for listing intents when healthy and repaired by write-through
// upserts of every course a query resolves.
package chatbot

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rakibul/coursebot-go/internal/catalog"
	"github.com/rakibul/coursebot-go/internal/graph"
	"github.com/rakibul/coursebot-go/internal/logger"
	"github.com/rakibul/coursebot-go/internal/metrics"
	"github.com/rakibul/coursebot-go/internal/nlu"
)

// Result is the outcome of processing one utterance.
type Result struct {
	Reply    string       `json:"reply"`
	Intent   nlu.Intent   `json:"intent"`
	Entities nlu.Entities `json:"entities"`
}

// Bot answers course questions from the catalog and keeps the knowledge
// graph in sync as a side effect. It is stateless across requests and safe
// for concurrent use.
type Bot struct {
	catalog   *catalog.Catalog
	extractor *nlu.Extractor
	store     graph.Store // nil = graph not configured
	metrics   *metrics.Metrics
	log       *logger.Logger
}

// New creates a bot over the catalog. store may be nil when no knowledge
// graph is configured; metrics may be nil.
func New(cat *catalog.Catalog, store graph.Store, m *metrics.Metrics, log *logger.Logger) *Bot {
	return &Bot{
		catalog:   cat,
		extractor: nlu.NewExtractor(cat),
		store:     store,
		metrics:   m,
		log:       log.WithModule("chatbot"),
	}
}

// Process runs extraction, classification and reply building for one
// utterance.
func (b *Bot) Process(ctx context.Context, text string) Result {
	start := time.Now()

	entities := b.extractor.Extract(text)
	intent := nlu.Classify(text, entities)
	reply := b.buildReply(ctx, intent, entities)

	b.metrics.RecordIntent(intent.String())
	b.metrics.RecordDuration(time.Since(start).Seconds())
	b.log.WithField("intent", intent.String()).
		WithField("duration_ms", time.Since(start).Milliseconds()).
		Debug("Processed utterance")

	return Result{Reply: reply, Intent: intent, Entities: entities}
}

// buildReply resolves the intent against the catalog and, where the policy
// allows, the knowledge graph. Graph failures never propagate: they shrink
// to the advisory suffix or the fixed unavailability replies.
func (b *Bot) buildReply(ctx context.Context, intent nlu.Intent, entities nlu.Entities) string {
	graphOK := b.graphHealthy(ctx)

	// Advisory only when a graph is configured but down
	warning := ""
	if b.store != nil && !graphOK {
		warning = advisorySuffix
	}

	switch intent {
	case nlu.IntentHelp:
		return replyHelp

	case nlu.IntentGraphShow:
		return b.graphShowReply(ctx, graphOK)

	case nlu.IntentCourseTeacher:
		course, ok := b.resolveCourse(ctx, entities.CourseCode, graphOK)
		if !ok {
			return replyCourseNotFound
		}
		return fmt.Sprintf(replyCourseTeacher, course.Code, course.Teacher, course.Code, course.Teacher) + warning

	case nlu.IntentCourseTitle:
		course, ok := b.resolveCourse(ctx, entities.CourseCode, graphOK)
		if !ok {
			return replyCourseNotFound
		}
		return fmt.Sprintf(replyCourseTitle, course.Code, course.Title, course.Code, course.Title) + warning

	case nlu.IntentCourseCredit:
		course, ok := b.resolveCourse(ctx, entities.CourseCode, graphOK)
		if !ok {
			return replyCourseNotFound
		}
		return fmt.Sprintf(replyCourseCredit, course.Code, course.Credit, course.Code, course.Credit) + warning

	case nlu.IntentCourseSemester:
		course, ok := b.resolveCourse(ctx, entities.CourseCode, graphOK)
		if !ok {
			return replyCourseNotFound
		}
		return fmt.Sprintf(replyCourseSemester, course.Code, course.Semester, course.Code, course.Semester) + warning

	case nlu.IntentCourseInfo:
		course, ok := b.resolveCourse(ctx, entities.CourseCode, graphOK)
		if !ok {
			return replyCourseNotFound
		}
		return fmt.Sprintf(replyCourseInfo,
			course.Code, course.Title, course.Teacher, course.Credit, course.Semester,
			course.Code, course.Title, course.Teacher, course.Credit, course.Semester) + warning

	case nlu.IntentTeacherCourses:
		if entities.Teacher == "" {
			return replyTeacherNotFound
		}
		refs := b.lookupCourses(ctx, graphOK, entities.Teacher,
			graph.Store.CoursesByTeacher,
			func() []catalog.Course { return b.catalog.ByTeacher(entities.Teacher) })
		if len(refs) == 0 {
			return replyTeacherNoCourses
		}
		codes := b.syncAndJoin(ctx, refs, graphOK)
		return fmt.Sprintf(replyTeacherCourses, entities.Teacher, codes, entities.Teacher, codes) + warning

	case nlu.IntentDeptCourses:
		if entities.Dept == "" {
			return replyDeptNotFound
		}
		refs := b.lookupCourses(ctx, graphOK, entities.Dept,
			graph.Store.CoursesByDept,
			func() []catalog.Course { return b.catalog.ByDept(entities.Dept) })
		if len(refs) == 0 {
			return replyDeptNoCourses
		}
		codes := b.syncAndJoin(ctx, refs, graphOK)
		return fmt.Sprintf(replyDeptCourses, entities.Dept, codes, entities.Dept, codes) + warning

	case nlu.IntentSemesterCourses:
		if entities.Semester == "" {
			return replySemesterNotFound
		}
		refs := b.lookupCourses(ctx, graphOK, entities.Semester,
			graph.Store.CoursesBySemester,
			func() []catalog.Course { return b.catalog.BySemester(entities.Semester) })
		if len(refs) == 0 {
			return replySemesterNoCourses
		}
		codes := b.syncAndJoin(ctx, refs, graphOK)
		return fmt.Sprintf(replySemesterCourses, entities.Semester, codes, entities.Semester, codes) + warning

	default:
		return replyUnknown
	}
}

// graphHealthy probes the store once per request. Absent or failing stores
// both count as unhealthy.
func (b *Bot) graphHealthy(ctx context.Context) bool {
	if b.store == nil {
		return false
	}
	if err := b.store.Health(ctx); err != nil {
		b.metrics.RecordGraphOp("health", "error")
		b.log.WithError(err).Debug("Knowledge graph health probe failed")
		return false
	}
	b.metrics.RecordGraphOp("health", "success")
	return true
}

func (b *Bot) graphShowReply(ctx context.Context, graphOK bool) string {
	if b.store == nil || !graphOK {
		return replyGraphDown
	}

	summary, err := b.store.Summary(ctx)
	if err != nil {
		b.metrics.RecordGraphOp("summary", "error")
		b.log.WithError(err).Warn("Knowledge graph summary failed")
		return replyGraphSummaryError
	}
	b.metrics.RecordGraphOp("summary", "success")
	return fmt.Sprintf(replyGraphSummary, summary.Nodes, summary.Edges, summary.Nodes, summary.Edges)
}

// resolveCourse answers single-course intents from the catalog only; the
// catalog is authoritative and indexed by code, so the graph is never read
// here. A resolved course is written through to the graph when healthy.
func (b *Bot) resolveCourse(ctx context.Context, code string, graphOK bool) (catalog.Course, bool) {
	if code == "" {
		return catalog.Course{}, false
	}
	course, ok := b.catalog.ByCode(code)
	if !ok {
		return catalog.Course{}, false
	}
	b.tryUpsert(ctx, course, graphOK)
	return course, true
}

// lookupCourses implements the read policy for listing intents: graph first
// when healthy, catalog scan when the graph is absent, unhealthy, or returns
// no rows. Graph staleness is coalesced into the fallback, never an error.
func (b *Bot) lookupCourses(
	ctx context.Context,
	graphOK bool,
	key string,
	fromGraph func(graph.Store, context.Context, string) ([]graph.CourseRef, error),
	fromCatalog func() []catalog.Course,
) []graph.CourseRef {
	var refs []graph.CourseRef

	if b.store != nil && graphOK {
		got, err := fromGraph(b.store, ctx, key)
		if err != nil {
			b.metrics.RecordGraphOp("lookup", "error")
			b.log.WithError(err).WithField("key", key).Warn("Knowledge graph lookup failed, using catalog")
		} else {
			b.metrics.RecordGraphOp("lookup", "success")
			refs = got
		}
		if len(refs) == 0 {
			b.metrics.RecordFallback("empty_result")
		}
	} else if b.store == nil {
		b.metrics.RecordFallback("not_configured")
	} else {
		b.metrics.RecordFallback("unhealthy")
	}

	if len(refs) == 0 {
		for _, course := range fromCatalog() {
			refs = append(refs, graph.CourseRef{Code: course.Code, Title: course.Title})
		}
	}
	return refs
}

// syncAndJoin writes every listed course through to the graph and returns
// the comma-separated code list used in replies.
func (b *Bot) syncAndJoin(ctx context.Context, refs []graph.CourseRef, graphOK bool) string {
	codes := make([]string, 0, len(refs))
	for _, ref := range refs {
		codes = append(codes, ref.Code)
		if course, ok := b.catalog.ByCode(ref.Code); ok {
			b.tryUpsert(ctx, course, graphOK)
		}
	}
	return strings.Join(codes, ", ")
}

// tryUpsert is the write-through: best effort, never surfaced to the caller.
func (b *Bot) tryUpsert(ctx context.Context, course catalog.Course, graphOK bool) {
	if b.store == nil || !graphOK {
		b.metrics.RecordUpsert("skipped")
		return
	}
	if err := b.store.UpsertCourse(ctx, course); err != nil {
		b.metrics.RecordUpsert("error")
		b.log.WithError(err).WithField("course", course.Code).Warn("Write-through upsert failed")
		return
	}
	b.metrics.RecordUpsert("success")
}
