// Package gamification owns the rules that react to learner activity:
// enrollment progress, XP accrual, badge awards, quiz scoring, compiler
// challenge judging and certificate gating. All persistence goes through the
// injected store.Store; the math in here is pure and synchronous.
package gamification

import (
	"errors"
	"log"

	"elevated/models"
	"elevated/store"
)

var (
	// ErrInvalidArgument marks out-of-range or malformed inputs.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrPreconditionFailed marks operations attempted before their gating
	// condition holds, e.g. certification before course completion.
	ErrPreconditionFailed = errors.New("precondition failed")
)

// Engine evaluates gamification rules against the entity store. The badge
// catalog is loaded and parsed once at construction; requirement strings are
// never re-parsed per evaluation.
type Engine struct {
	store   store.Store
	catalog []catalogBadge
}

type catalogBadge struct {
	badge models.Badge
	req   Requirement
}

func NewEngine(st store.Store) (*Engine, error) {
	badges, err := st.GetBadges()
	if err != nil {
		return nil, err
	}
	engine := &Engine{store: st}
	for _, badge := range badges {
		req, err := ParseRequirement(badge.Requirement)
		if err != nil {
			log.Printf("[GAMIFICATION] Skipping badge %q: %v", badge.Name, err)
			continue
		}
		engine.catalog = append(engine.catalog, catalogBadge{badge: badge, req: req})
	}
	return engine, nil
}

// Store exposes the underlying entity store for read-only route handlers.
func (e *Engine) Store() store.Store {
	return e.store
}

// addXP credits the user best-effort: a failed XP write is logged and the
// enclosing mutation continues. Returns the awarded delta (0 on failure) and
// the user's XP after the write when known.
func (e *Engine) addXP(userID uint, delta int) (int, int) {
	if delta == 0 {
		return 0, -1
	}
	user, err := e.store.AddUserXP(userID, delta)
	if err != nil {
		log.Printf("[GAMIFICATION] XP award of %d to user %d failed: %v", delta, userID, err)
		return 0, -1
	}
	return delta, user.XP
}
