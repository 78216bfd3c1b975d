package readiness

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/theatreops/tom/internal/domain/inventory"
	"github.com/theatreops/tom/internal/domain/procedure"
	"github.com/theatreops/tom/internal/domain/scheduling"
	"github.com/theatreops/tom/internal/domain/staffing"
	"github.com/theatreops/tom/internal/domain/theatre"
)

var (
	// ErrTheatreNotFound is the only hard failure: without a valid
	// theatre there is no report to build.
	ErrTheatreNotFound = errors.New("theatre not found")

	// ErrStoreUnavailable marks a transient backend failure. Callers may
	// retry the whole evaluation.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// DefaultTimeout bounds the batch of store reads for one evaluation.
const DefaultTimeout = 5 * time.Second

// Evaluator computes readiness reports. It holds no mutable state and
// never writes; every evaluation is self-contained.
type Evaluator struct {
	store   Store
	timeout time.Duration
}

func NewEvaluator(store Store, timeout time.Duration) *Evaluator {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Evaluator{store: store, timeout: timeout}
}

// read runs one store read with a single bounded retry for transient
// failures. ErrNotFound is a data condition, never retried.
func (e *Evaluator) read(ctx context.Context, fn func(ctx context.Context) error) error {
	err := fn(ctx)
	if err == nil || errors.Is(err, ErrNotFound) {
		return err
	}
	if ctx.Err() != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if err = fn(ctx); err == nil || errors.Is(err, ErrNotFound) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}

// Evaluate builds a readiness report for the theatre. The target case is
// the explicit caseID when given, else the theatre's next-case reference;
// with neither, the theatre is vacuously ready.
func (e *Evaluator) Evaluate(ctx context.Context, theatreID uuid.UUID, caseID *uuid.UUID) (*Check, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	var th *theatre.Theatre
	err := e.read(ctx, func(ctx context.Context) error {
		var err error
		th, err = e.store.GetTheatre(ctx, theatreID)
		return err
	})
	if errors.Is(err, ErrNotFound) {
		return nil, ErrTheatreNotFound
	}
	if err != nil {
		return nil, err
	}

	target := caseID
	if target == nil {
		target = th.NextCaseID
	}
	if target == nil {
		return e.noCaseReport(theatreID), nil
	}

	var cs *scheduling.Case
	err = e.read(ctx, func(ctx context.Context) error {
		var err error
		cs, err = e.store.GetCase(ctx, *target)
		return err
	})
	if errors.Is(err, ErrNotFound) {
		// A dangling case reference degrades to the idle-theatre report.
		return e.noCaseReport(theatreID), nil
	}
	if err != nil {
		return nil, err
	}

	var card *procedure.CardDetail
	err = e.read(ctx, func(ctx context.Context) error {
		var err error
		card, err = e.store.GetProcedureCard(ctx, cs.ProcedureID)
		return err
	})
	if errors.Is(err, ErrNotFound) {
		return e.missingCardReport(theatreID, cs.ID), nil
	}
	if err != nil {
		return nil, err
	}

	var allStaff []*staffing.Staff
	if err := e.read(ctx, func(ctx context.Context) error {
		var err error
		allStaff, err = e.store.ListStaff(ctx)
		return err
	}); err != nil {
		return nil, err
	}

	var shifts []*staffing.Shift
	if err := e.read(ctx, func(ctx context.Context) error {
		var err error
		shifts, err = e.store.ListShifts(ctx, cs.Date)
		return err
	}); err != nil {
		return nil, err
	}

	var stock []*inventory.Item
	if err := e.read(ctx, func(ctx context.Context) error {
		var err error
		stock, err = e.store.ListInventory(ctx)
		return err
	}); err != nil {
		return nil, err
	}

	team := resolveTeam(cs, allStaff)
	categories := []CategoryResult{
		checkStaffing(card, team, shifts),
		checkEquipment(card, stock),
		checkConsumables(card, stock),
		checkEnvironment(th, card),
	}

	overall := LevelReady
	for _, cat := range categories {
		overall = worst(overall, cat.Status)
	}

	return &Check{
		TheatreID:  theatreID,
		CaseID:     &cs.ID,
		Timestamp:  time.Now().UTC(),
		Overall:    overall,
		Categories: categories,
	}, nil
}

// noCaseReport is the short-circuit for an idle theatre: vacuously ready.
func (e *Evaluator) noCaseReport(theatreID uuid.UUID) *Check {
	return &Check{
		TheatreID: theatreID,
		Timestamp: time.Now().UTC(),
		Overall:   LevelReady,
		Categories: []CategoryResult{
			{Category: CategoryStaffing, Status: LevelReady, Items: []ItemResult{
				{Name: "No case scheduled", Required: false, Actual: true, Status: LevelReady},
			}},
			{Category: CategoryEquipment, Status: LevelReady, Items: []ItemResult{}},
			{Category: CategoryConsumables, Status: LevelReady, Items: []ItemResult{}},
			{Category: CategoryEnvironment, Status: LevelReady, Items: []ItemResult{}},
		},
	}
}

// missingCardReport keeps the historical shape of this edge case: the
// item is not-ready while the category and overall stay warning, so the
// dashboard renders it as degraded data rather than a blocked theatre.
func (e *Evaluator) missingCardReport(theatreID, caseID uuid.UUID) *Check {
	return &Check{
		TheatreID: theatreID,
		CaseID:    &caseID,
		Timestamp: time.Now().UTC(),
		Overall:   LevelWarning,
		Categories: []CategoryResult{
			{Category: CategoryStaffing, Status: LevelWarning, Items: []ItemResult{
				{Name: "Procedure card not found", Required: true, Actual: false, Status: LevelNotReady},
			}},
			{Category: CategoryEquipment, Status: LevelWarning, Items: []ItemResult{}},
			{Category: CategoryConsumables, Status: LevelWarning, Items: []ItemResult{}},
			{Category: CategoryEnvironment, Status: LevelWarning, Items: []ItemResult{}},
		},
	}
}

// resolveTeam maps the case's team IDs onto staff records.
func resolveTeam(cs *scheduling.Case, allStaff []*staffing.Staff) []*staffing.Staff {
	byID := make(map[uuid.UUID]*staffing.Staff, len(allStaff))
	for _, s := range allStaff {
		byID[s.ID] = s
	}
	var team []*staffing.Staff
	for _, id := range cs.TeamIDs {
		if s, ok := byID[id]; ok {
			team = append(team, s)
		}
	}
	return team
}

func checkStaffing(card *procedure.CardDetail, team []*staffing.Staff, shifts []*staffing.Shift) CategoryResult {
	confirmed := make(map[uuid.UUID]bool)
	for _, sh := range shifts {
		if sh.Status == staffing.ShiftConfirmed {
			confirmed[sh.StaffID] = true
		}
	}

	var items []ItemResult
	for _, req := range card.Staff {
		var assigned []*staffing.Staff
		for _, s := range team {
			if s.Role == req.Role {
				assigned = append(assigned, s)
			}
		}

		grade := "any grade"
		if req.Grade != nil {
			grade = *req.Grade
		}
		item := ItemResult{
			Name:     fmt.Sprintf("%s (%s)", req.Role, grade),
			Required: req.Count,
			Actual:   len(assigned),
			Status:   LevelReady,
		}

		if len(assigned) < req.Count {
			item.Status = LevelNotReady
			item.Notes = fmt.Sprintf("Missing %d %s(s)", req.Count-len(assigned), req.Role)
			items = append(items, item)
			continue
		}

		var notes []string
		for _, s := range assigned {
			if !confirmed[s.ID] {
				item.Status = worst(item.Status, LevelWarning)
				notes = append(notes, "Staff assigned but shift not confirmed")
				break
			}
		}

		if req.Competency != nil {
			if !anyCompetent(assigned, card.Card.Name) {
				item.Status = worst(item.Status, LevelWarning)
				notes = append(notes, "Check competency level")
			}
		}

		item.Notes = strings.Join(notes, "; ")
		items = append(items, item)
	}

	return CategoryResult{Category: CategoryStaffing, Status: rollup(items), Items: items}
}

// anyCompetent reports whether any assigned staff member holds a
// competent or expert record for the procedure.
func anyCompetent(assigned []*staffing.Staff, procedureName string) bool {
	for _, s := range assigned {
		for _, c := range s.Competencies {
			if c.Procedure == procedureName &&
				(c.Level == staffing.LevelCompetent || c.Level == staffing.LevelExpert) {
				return true
			}
		}
	}
	return false
}

func checkEquipment(card *procedure.CardDetail, stock []*inventory.Item) CategoryResult {
	var items []ItemResult
	for _, req := range card.Equipment {
		var found *inventory.Item
		for _, i := range stock {
			if i.Name == req.ItemName {
				found = i
				break
			}
		}

		item := ItemResult{Name: req.ItemName, Required: req.Quantity, Status: LevelReady}
		switch {
		case found == nil:
			item.Actual = 0
			item.Status = criticalLevel(req.IsCritical)
			item.Notes = "Item not in inventory"
		case found.Quantity < req.Quantity:
			item.Actual = found.Quantity
			item.Status = criticalLevel(req.IsCritical)
			item.Notes = fmt.Sprintf("Only %d available, need %d", found.Quantity, req.Quantity)
		default:
			item.Actual = found.Quantity
		}
		items = append(items, item)
	}
	return CategoryResult{Category: CategoryEquipment, Status: rollup(items), Items: items}
}

func checkConsumables(card *procedure.CardDetail, stock []*inventory.Item) CategoryResult {
	var items []ItemResult
	for _, req := range card.Consumables {
		var found *inventory.Item
		for _, i := range stock {
			if fuzzyContains(i.Name, req.ItemName) {
				found = i
				break
			}
		}

		item := ItemResult{Name: req.ItemName, Required: req.Quantity, Status: LevelReady}
		switch {
		case found == nil:
			item.Actual = 0
			item.Status = criticalLevel(req.IsCritical)
			item.Notes = "Item not found in stock"
		case found.Quantity < req.Quantity:
			item.Actual = found.Quantity
			item.Status = criticalLevel(req.IsCritical)
			item.Notes = fmt.Sprintf("Low stock: %d available", found.Quantity)
		default:
			item.Actual = found.Quantity
		}
		items = append(items, item)
	}
	return CategoryResult{Category: CategoryConsumables, Status: rollup(items), Items: items}
}

// fuzzyContains is the consumable matching strategy: bidirectional
// case-insensitive substring containment. A heuristic, not a join key;
// swap for an alias table without touching call sites.
func fuzzyContains(a, b string) bool {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	return strings.Contains(la, lb) || strings.Contains(lb, la)
}

func criticalLevel(isCritical bool) Level {
	if isCritical {
		return LevelNotReady
	}
	return LevelWarning
}

func checkEnvironment(th *theatre.Theatre, card *procedure.CardDetail) CategoryResult {
	statusItem := ItemResult{
		Name:     "Theatre status",
		Required: theatre.StatusReady,
		Actual:   th.Status,
		Status:   LevelReady,
	}
	switch th.Status {
	case theatre.StatusReady:
	case theatre.StatusCleaning:
		statusItem.Status = LevelWarning
		statusItem.Notes = fmt.Sprintf("Currently: %s", th.Status)
	default:
		statusItem.Status = LevelNotReady
		statusItem.Notes = fmt.Sprintf("Currently: %s", th.Status)
	}
	items := []ItemResult{statusItem}

	for _, req := range card.Card.SpecialRequirements {
		lower := strings.ToLower(req)
		if strings.Contains(lower, "laminar") {
			has := hasFeature(th, "laminar-flow")
			item := ItemResult{Name: "Laminar flow", Required: true, Actual: has, Status: LevelReady}
			if !has {
				item.Status = LevelNotReady
				item.Notes = "Theatre lacks laminar-flow feature"
			}
			items = append(items, item)
		}
		if strings.Contains(lower, "imaging") || strings.Contains(lower, "c-arm") {
			has := hasFeature(th, "imaging-capable")
			item := ItemResult{Name: "Imaging capability", Required: true, Actual: has, Status: LevelReady}
			if !has {
				item.Status = LevelWarning
				item.Notes = "Theatre lacks imaging-capable feature"
			}
			items = append(items, item)
		}
	}

	return CategoryResult{Category: CategoryEnvironment, Status: rollup(items), Items: items}
}

func hasFeature(th *theatre.Theatre, tag string) bool {
	for _, f := range th.Features {
		if f == tag {
			return true
		}
	}
	return false
}
