package application

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"emotebot/internal/domain/entities"
	"emotebot/internal/logmessage"
	"emotebot/internal/ports/input"
	"emotebot/internal/ports/output"
)

var _ input.EmoteUseCase = (*EmoteService)(nil)

type EmoteService struct {
	emoteRepo output.EmoteRepository
	cache     *reductionCache
	logger    *slog.Logger
}

// NewEmoteService returns an EmoteService. A nil logger uses slog.Default().
func NewEmoteService(emoteRepo output.EmoteRepository, logger *slog.Logger) *EmoteService {
	if logger == nil {
		logger = slog.Default()
	}
	return &EmoteService{
		emoteRepo: emoteRepo,
		cache:     newReductionCache(logger),
		logger:    logger,
	}
}

// texts returns the reduced markup of command.
func (s *EmoteService) texts(ctx context.Context, command string, lang entities.Language, targeted bool) (logmessage.ConditionTexts, error) {
	markup, err := s.emoteRepo.Markup(ctx, command, lang, targeted)
	if err != nil {
		return logmessage.ConditionTexts{}, err
	}
	texts, err := s.cache.get(markup)
	if err != nil {
		return logmessage.ConditionTexts{}, fmt.Errorf("reduce %s (%s, targeted=%t): %w", command, lang, targeted, err)
	}
	return texts, nil
}

func (s *EmoteService) Render(ctx context.Context, req input.RenderRequest) (string, error) {
	lang := req.Language
	if lang == "" {
		lang = entities.LanguageEn
	}
	texts, err := s.texts(ctx, req.Command, lang, req.Target != nil)
	if err != nil {
		return "", err
	}

	var target logmessage.Character
	if req.Target != nil {
		target = *req.Target
	}
	var opts []logmessage.AnswersOption
	if req.WorldNames {
		opts = append(opts, logmessage.WithWorldNames())
	}
	answers, err := logmessage.NewLogMessageAnswers(req.Origin, target, opts...)
	if err != nil {
		return "", err
	}
	return logmessage.Evaluate(texts, answers)
}

// Perspectives renders command for origin and target from the five points
// of view of a log. The IsSelf flags of origin and target are ignored.
func (s *EmoteService) Perspectives(ctx context.Context, command string, lang entities.Language, origin, target logmessage.Character) (*input.EmoteText, error) {
	targeted, err := s.texts(ctx, command, lang, true)
	if err != nil {
		return nil, err
	}
	untargeted, err := s.texts(ctx, command, lang, false)
	if err != nil {
		return nil, err
	}

	render := func(texts logmessage.ConditionTexts, originSelf, targetSelf bool, t logmessage.Character) (string, error) {
		o := origin
		o.IsSelf = originSelf
		t.IsSelf = targetSelf
		answers, err := logmessage.NewLogMessageAnswers(o, t)
		if err != nil {
			return "", err
		}
		return texts.Evaluate(answers), nil
	}

	var out input.EmoteText
	steps := []struct {
		dst        *string
		texts      logmessage.ConditionTexts
		originSelf bool
		targetSelf bool
		target     logmessage.Character
	}{
		{&out.YouUntargeted, untargeted, true, false, logmessage.Character{}},
		{&out.YouTargetOther, targeted, true, false, target},
		{&out.OtherTargetYou, targeted, false, true, target},
		{&out.OtherTargetOther, targeted, false, false, target},
		{&out.OtherUntargeted, untargeted, false, false, logmessage.Character{}},
	}
	for _, st := range steps {
		text, err := render(st.texts, st.originSelf, st.targetSelf, st.target)
		if err != nil {
			return nil, err
		}
		*st.dst = text
	}
	return &out, nil
}

// levenshteinLimit is the largest edit distance accepted for a command of length n.
func levenshteinLimit(n int) int {
	switch {
	case n <= 4:
		return 1
	case n <= 8:
		return 2
	default:
		return 3
	}
}

// Suggest returns up to limit known commands close to command, closest first.
func (s *EmoteService) Suggest(ctx context.Context, command string, limit int) ([]string, error) {
	cmds, err := s.emoteRepo.Commands(ctx)
	if err != nil {
		return nil, fmt.Errorf("list commands: %w", err)
	}
	want := entities.NormalizeCommand(command)
	if want == "" {
		return nil, nil
	}

	type scored struct {
		cmd  string
		dist int
	}
	var results []scored
	for _, c := range cmds {
		norm := entities.NormalizeCommand(c)
		var dist int
		switch {
		case norm == want:
			dist = 0
		case strings.HasPrefix(norm, want) && len([]rune(want)) >= 2:
			dist = 1
		default:
			dist = levenshtein.ComputeDistance(want, norm)
			if dist > levenshteinLimit(len([]rune(norm))) {
				continue
			}
		}
		results = append(results, scored{cmd: c, dist: dist})
	}
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].dist == results[j].dist {
			return results[i].cmd < results[j].cmd
		}
		return results[i].dist < results[j].dist
	})
	out := make([]string, 0, len(results))
	for _, r := range results {
		if limit > 0 && len(out) == limit {
			break
		}
		out = append(out, r.cmd)
	}
	return out, nil
}

// Autocomplete ranks known commands against a partially typed query.
func (s *EmoteService) Autocomplete(ctx context.Context, query string, limit int) ([]string, error) {
	cmds, err := s.emoteRepo.Commands(ctx)
	if err != nil {
		return nil, fmt.Errorf("list commands: %w", err)
	}
	q := entities.NormalizeCommand(query)
	if q == "" {
		if limit > 0 && len(cmds) > limit {
			cmds = cmds[:limit]
		}
		return cmds, nil
	}

	ranks := fuzzy.RankFindFold(q, cmds)
	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].Distance == ranks[j].Distance {
			return ranks[i].OriginalIndex < ranks[j].OriginalIndex
		}
		return ranks[i].Distance < ranks[j].Distance
	})
	out := make([]string, 0, len(ranks))
	for _, r := range ranks {
		if limit > 0 && len(out) == limit {
			break
		}
		out = append(out, r.Target)
	}
	return out, nil
}

// Validate reduces every markup of every emote. A failing markup is recorded
// and does not stop the run.
func (s *EmoteService) Validate(ctx context.Context) (*input.ValidationReport, error) {
	emotes, err := s.emoteRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list emotes: %w", err)
	}
	report := &input.ValidationReport{}
	for i := range emotes {
		e := &emotes[i]
		for _, lang := range []entities.Language{entities.LanguageEn, entities.LanguageJa} {
			for _, targeted := range []bool{true, false} {
				if err := ctx.Err(); err != nil {
					return nil, err
				}
				markup := e.Markup(lang, targeted)
				if markup == "" {
					continue
				}
				report.Checked++
				if _, err := s.cache.get(markup); err != nil {
					s.logger.Warn("invalid log message",
						"emote_id", e.ID, "command", e.Command(), "language", lang, "targeted", targeted, "error", err)
					report.Failures = append(report.Failures, input.ValidationFailure{
						EmoteID:  e.ID,
						Command:  e.Command(),
						Language: lang,
						Targeted: targeted,
						Err:      err,
					})
				}
			}
		}
	}
	s.logger.Info("validated log messages", "checked", report.Checked, "failures", len(report.Failures))
	return report, nil
}

func (s *EmoteService) List(ctx context.Context) ([]entities.Emote, error) {
	return s.emoteRepo.List(ctx)
}

// ResetCache drops every cached reduction, e.g. after the emote data was reloaded.
func (s *EmoteService) ResetCache() {
	s.cache.reset()
}
