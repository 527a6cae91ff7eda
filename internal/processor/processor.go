package processor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/mauv0809/elo-ladder/internal/ladder"
	"github.com/mauv0809/elo-ladder/internal/metrics"
	"github.com/mauv0809/elo-ladder/internal/pubsub"
	"github.com/mauv0809/elo-ladder/internal/rating"
	"github.com/sethvargo/go-retry"
)

// New creates a new Processor. notifier and pubsub may be nil, in which case
// recorded matches are not announced.
func New(store Store, notifier Notifier, metrics metrics.Metrics, pubsub pubsub.PubSubClient, policy RetryPolicy) *Processor {
	if policy.MaxAttempts == 0 {
		policy.MaxAttempts = 1
	}
	if policy.BaseDelay <= 0 {
		policy.BaseDelay = time.Millisecond
	}
	return &Processor{
		store:    store,
		pubsub:   pubsub,
		notifier: notifier,
		metrics:  metrics,
		retry:    policy,
	}
}

// RecordDuel records a 1v1 result in mode.
func (p *Processor) RecordDuel(ctx context.Context, mode ladder.Mode, winner, loser string) (*ladder.MatchResult, error) {
	return p.record(ctx, mode, ladder.KindDuel, []participant{
		{name: winner, won: true, opponents: []string{loser}},
		{name: loser, won: false, opponents: []string{winner}},
	})
}

// RecordTeamMatch records a 2v2 result in the team ladder. Each player is
// rated against the average pre-match rating of the opposing pair.
func (p *Processor) RecordTeamMatch(ctx context.Context, winnerA, winnerB, loserA, loserB string) (*ladder.MatchResult, error) {
	winners := []string{winnerA, winnerB}
	losers := []string{loserA, loserB}
	return p.record(ctx, ladder.Team, ladder.KindTeam, []participant{
		{name: winnerA, won: true, opponents: losers},
		{name: winnerB, won: true, opponents: losers},
		{name: loserA, won: false, opponents: winners},
		{name: loserB, won: false, opponents: winners},
	})
}

// RecordFreeForAll records a three-player free-for-all in the ffa ladder.
// Every player is rated against the average pre-match rating of the other two.
func (p *Processor) RecordFreeForAll(ctx context.Context, winner, loserA, loserB string) (*ladder.MatchResult, error) {
	return p.record(ctx, ladder.FreeForAll, ladder.KindFreeForAll, []participant{
		{name: winner, won: true, opponents: []string{loserA, loserB}},
		{name: loserA, won: false, opponents: []string{winner, loserB}},
		{name: loserB, won: false, opponents: []string{winner, loserA}},
	})
}

// Submit dispatches an externally submitted result to the matching protocol.
func (p *Processor) Submit(ctx context.Context, s Submission) (*ladder.MatchResult, error) {
	switch s.Kind {
	case ladder.KindDuel:
		mode := ladder.Solo
		if s.Mode != "" {
			m, err := ladder.ParseMode(s.Mode)
			if err != nil {
				return nil, err
			}
			mode = m
		}
		if len(s.Winners) != 1 || len(s.Losers) != 1 {
			return nil, fmt.Errorf("%w: duel needs 1 winner and 1 loser, got %d and %d", ladder.ErrInvalidArgumentCount, len(s.Winners), len(s.Losers))
		}
		return p.RecordDuel(ctx, mode, s.Winners[0], s.Losers[0])
	case ladder.KindTeam:
		if err := expectMode(s.Mode, ladder.Team); err != nil {
			return nil, err
		}
		if len(s.Winners) != 2 || len(s.Losers) != 2 {
			return nil, fmt.Errorf("%w: team match needs 2 winners and 2 losers, got %d and %d", ladder.ErrInvalidArgumentCount, len(s.Winners), len(s.Losers))
		}
		return p.RecordTeamMatch(ctx, s.Winners[0], s.Winners[1], s.Losers[0], s.Losers[1])
	case ladder.KindFreeForAll:
		if err := expectMode(s.Mode, ladder.FreeForAll); err != nil {
			return nil, err
		}
		if len(s.Winners) != 1 || len(s.Losers) != 2 {
			return nil, fmt.Errorf("%w: free-for-all needs 1 winner and 2 losers, got %d and %d", ladder.ErrInvalidArgumentCount, len(s.Winners), len(s.Losers))
		}
		return p.RecordFreeForAll(ctx, s.Winners[0], s.Losers[0], s.Losers[1])
	}
	return nil, fmt.Errorf("%w: unknown match kind %q", ladder.ErrInvalidMode, s.Kind)
}

// AddPlayer registers name in a single mode.
func (p *Processor) AddPlayer(ctx context.Context, mode ladder.Mode, name string) (ladder.PlayerRecord, error) {
	player, err := p.store.Create(ctx, mode, name)
	if err != nil {
		return ladder.PlayerRecord{}, err
	}
	p.metrics.IncPlayersRegistered(mode.String())
	return player, nil
}

// AddPlayerToAll registers name in every mode. Each mode is attempted on its
// own: a name already taken in one mode does not stop registration in the
// others. The returned error joins the per-mode failures.
func (p *Processor) AddPlayerToAll(ctx context.Context, name string) ([]Registration, error) {
	registrations := make([]Registration, 0, len(ladder.Modes))
	var errs []error
	for _, mode := range ladder.Modes {
		player, err := p.AddPlayer(ctx, mode, name)
		registrations = append(registrations, Registration{Mode: mode, Player: player, Err: err})
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", mode, err))
		}
	}
	return registrations, errors.Join(errs...)
}

// Odds returns the probability that player beats opponent given their
// current ratings in mode.
func (p *Processor) Odds(ctx context.Context, mode ladder.Mode, player, opponent string) (float64, error) {
	if err := checkParticipants([]string{player, opponent}); err != nil {
		return 0, err
	}
	players, err := p.store.GetAll(ctx, mode, []string{player, opponent})
	if err != nil {
		return 0, err
	}
	return rating.WinProbability(players[player].Rating, players[opponent].Rating), nil
}

// record runs the snapshot, compute, commit cycle for one match. A conflict
// at commit time restarts the whole cycle from a fresh snapshot.
func (p *Processor) record(ctx context.Context, mode ladder.Mode, kind ladder.MatchKind, participants []participant) (*ladder.MatchResult, error) {
	start := time.Now()
	if !mode.Valid() {
		return nil, fmt.Errorf("%w: %d", ladder.ErrInvalidMode, int(mode))
	}

	names := make([]string, len(participants))
	for i, pt := range participants {
		names[i] = pt.name
	}
	if err := checkParticipants(names); err != nil {
		p.metrics.IncMatchFailures(mode.String(), string(kind))
		return nil, err
	}

	backoff := retry.WithMaxRetries(p.retry.MaxAttempts-1, retry.WithJitterPercent(25, retry.NewExponential(p.retry.BaseDelay)))

	var result *ladder.MatchResult
	attempt := 0
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		snapshot, err := p.store.GetAll(ctx, mode, names)
		if err != nil {
			return err
		}

		outcomes, updates := settle(snapshot, participants)
		if err := p.store.ApplyUpdates(ctx, mode, updates); err != nil {
			if errors.Is(err, ladder.ErrStoreConflict) {
				p.metrics.IncStoreConflicts(mode.String())
				log.Warn("Ladder changed while recording match, retrying", "mode", mode, "kind", kind, "attempt", attempt, "error", err)
				return retry.RetryableError(err)
			}
			return err
		}

		result = &ladder.MatchResult{
			MatchID:    uuid.New().String(),
			Mode:       mode,
			Kind:       kind,
			RecordedAt: time.Now().UTC(),
			Players:    outcomes,
		}
		return nil
	})
	if err != nil {
		p.metrics.IncMatchFailures(mode.String(), string(kind))
		log.Error("Failed to record match", "mode", mode, "kind", kind, "players", names, "attempts", attempt, "error", err)
		return nil, err
	}

	p.metrics.IncMatchesRecorded(mode.String(), string(kind))
	p.metrics.ObserveRecordDuration(time.Since(start).Seconds())
	log.Info("Recorded match", "matchID", result.MatchID, "mode", mode, "kind", kind, "players", names, "attempts", attempt)

	p.announce(ctx, result)
	return result, nil
}

// settle computes every participant's new state from the snapshot alone.
func settle(snapshot map[string]ladder.PlayerRecord, participants []participant) ([]ladder.Outcome, []ladder.Update) {
	outcomes := make([]ladder.Outcome, 0, len(participants))
	updates := make([]ladder.Update, 0, len(participants))

	for _, pt := range participants {
		pre := snapshot[pt.name]

		opponents := make([]float64, len(pt.opponents))
		for i, name := range pt.opponents {
			opponents[i] = snapshot[name].Rating
		}

		score := rating.Loss
		wins, losses := pre.Wins, pre.Losses
		if pt.won {
			score = rating.Win
			wins++
		} else {
			losses++
		}
		newRating := rating.NewRating(score, pre.Rating, rating.Average(opponents...))

		outcomes = append(outcomes, ladder.Outcome{
			Name:      pt.name,
			Won:       pt.won,
			PreRating: pre.Rating,
			NewRating: newRating,
			Delta:     newRating - pre.Rating,
			Wins:      wins,
			Losses:    losses,
		})
		updates = append(updates, ladder.Update{
			Name:    pt.name,
			Rating:  newRating,
			Wins:    wins,
			Losses:  losses,
			Version: pre.Version,
		})
	}
	return outcomes, updates
}

// announce publishes and posts a committed result. Failures are logged; the
// match stays recorded.
func (p *Processor) announce(ctx context.Context, result *ladder.MatchResult) {
	dryRun := IsDryRun(ctx)

	if p.pubsub != nil && !dryRun {
		if err := p.pubsub.SendMessage(pubsub.EventMatchRecorded, result); err != nil {
			log.Error("Failed to publish match result", "error", err, "matchID", result.MatchID)
		}
	}
	if p.notifier != nil {
		if err := p.notifier.SendMatchResult(result, dryRun); err != nil {
			log.Error("Failed to send match result notification", "error", err, "matchID", result.MatchID)
		}
	}
}

func checkParticipants(names []string) error {
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if name == "" {
			return fmt.Errorf("%w: empty player name", ladder.ErrInvalidName)
		}
		if _, ok := seen[name]; ok {
			return fmt.Errorf("%w: %s", ladder.ErrDuplicateParticipant, name)
		}
		seen[name] = struct{}{}
	}
	return nil
}

func expectMode(token string, want ladder.Mode) error {
	if token == "" {
		return nil
	}
	mode, err := ladder.ParseMode(token)
	if err != nil {
		return err
	}
	if mode != want {
		return fmt.Errorf("%w: expected %s, got %s", ladder.ErrInvalidMode, want, mode)
	}
	return nil
}
