package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/nrl-scraper/internal/domain/event"
	"github.com/riskibarqy/nrl-scraper/internal/domain/player"
	"github.com/riskibarqy/nrl-scraper/internal/domain/team"
	"github.com/riskibarqy/nrl-scraper/internal/platform/logging"
)

// EntityResolver implements get-or-create for the reference entities keyed by
// natural-language name: teams, players, event types and event roles.
//
// Resolution is idempotent for teams, event types and event roles, which
// carry unique constraints on their name columns. Players do not: resolving a
// player name that races with itself, or a spelling variant, creates a second
// row. Storage failures propagate as errors; no row is created, so the next
// run simply retries.
type EntityResolver struct {
	teamRepo   team.Repository
	playerRepo player.Repository
	typeRepo   event.TypeRepository
	roleRepo   event.RoleRepository
	logger     *logging.Logger
}

func NewEntityResolver(
	teamRepo team.Repository,
	playerRepo player.Repository,
	typeRepo event.TypeRepository,
	roleRepo event.RoleRepository,
	logger *logging.Logger,
) *EntityResolver {
	if logger == nil {
		logger = logging.Default()
	}
	return &EntityResolver{
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
		typeRepo:   typeRepo,
		roleRepo:   roleRepo,
		logger:     logger,
	}
}

func (r *EntityResolver) ResolveTeam(ctx context.Context, name string) (team.Team, error) {
	name = strings.TrimSpace(name)
	if err := (team.Team{Name: name}).Validate(); err != nil {
		return team.Team{}, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	existing, ok, err := r.teamRepo.FindByName(ctx, name)
	if err != nil {
		return team.Team{}, fmt.Errorf("find team %q: %w", name, err)
	}
	if ok {
		return existing, nil
	}

	created, err := r.teamRepo.Create(ctx, name)
	if err != nil {
		return team.Team{}, fmt.Errorf("create team %q: %w", name, err)
	}
	r.logger.DebugContext(ctx, "created team", "team_id", created.ID, "name", name)

	return created, nil
}

func (r *EntityResolver) ResolvePlayer(ctx context.Context, name string) (player.Player, error) {
	name = strings.TrimSpace(name)
	if err := (player.Player{Name: name}).Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	existing, ok, err := r.playerRepo.FindByName(ctx, name)
	if err != nil {
		return player.Player{}, fmt.Errorf("find player %q: %w", name, err)
	}
	if ok {
		return existing, nil
	}

	created, err := r.playerRepo.Create(ctx, name)
	if err != nil {
		return player.Player{}, fmt.Errorf("create player %q: %w", name, err)
	}
	r.logger.DebugContext(ctx, "created player", "player_id", created.ID, "name", name)

	return created, nil
}

func (r *EntityResolver) ResolveEventType(ctx context.Context, name string) (event.Type, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return event.Type{}, fmt.Errorf("%w: event type name is required", ErrInvalidInput)
	}

	existing, ok, err := r.typeRepo.FindByName(ctx, name)
	if err != nil {
		return event.Type{}, fmt.Errorf("find event type %q: %w", name, err)
	}
	if ok {
		return existing, nil
	}

	created, err := r.typeRepo.Create(ctx, name)
	if err != nil {
		return event.Type{}, fmt.Errorf("create event type %q: %w", name, err)
	}
	r.logger.DebugContext(ctx, "created event type", "event_type_id", created.ID, "name", name)

	return created, nil
}

// ResolveEventRole accepts the empty string: events scraped without a role
// resolve to a role row with an empty natural key.
func (r *EntityResolver) ResolveEventRole(ctx context.Context, roleName string) (event.Role, error) {
	roleName = strings.TrimSpace(roleName)

	existing, ok, err := r.roleRepo.FindByName(ctx, roleName)
	if err != nil {
		return event.Role{}, fmt.Errorf("find event role %q: %w", roleName, err)
	}
	if ok {
		return existing, nil
	}

	created, err := r.roleRepo.Create(ctx, roleName)
	if err != nil {
		return event.Role{}, fmt.Errorf("create event role %q: %w", roleName, err)
	}
	r.logger.DebugContext(ctx, "created event role", "event_role_id", created.ID, "name", roleName)

	return created, nil
}
