// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-tick-sdk/internal/adapter"
	"github.com/MKhiriev/go-tick-sdk/internal/logger"
	"github.com/MKhiriev/go-tick-sdk/internal/utils"
	"github.com/MKhiriev/go-tick-sdk/models"
)

// writeRoute names the transport a batch submission travels over. Task,
// tag, and filter share the generic batch endpoint; the remaining entity
// types only have narrow per-resource endpoints.
type writeRoute int

const (
	routeGeneric writeRoute = iota
	routeProject
	routeProjectGroup
	routeColumn
	routeHabit
)

// writePolicy is one row of the per-entity-type policy table: how records
// reach the wire and how the response comes back. Adding an entity type is
// a table change, not new call-site conditionals.
type writePolicy struct {
	route writeRoute

	// foldNames case-folds tag-name fields before the wire. Only the tag
	// row sets it; the coordinator is the single enforcement point.
	foldNames bool

	// restricted marks entity types the service answers 405 for under
	// API-token sessions. The coordinator rejects these locally, before
	// anything goes on the wire.
	restricted bool
}

var writePolicies = map[models.EntityType]writePolicy{
	models.EntityTask:         {route: routeGeneric},
	models.EntityTag:          {route: routeGeneric, foldNames: true, restricted: true},
	models.EntityFilter:       {route: routeGeneric, restricted: true},
	models.EntityProject:      {route: routeProject},
	models.EntityProjectGroup: {route: routeProjectGroup},
	models.EntityColumn:       {route: routeColumn},
	models.EntityHabit:        {route: routeHabit, restricted: true},
}

type batchService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

// NewBatchService builds the write coordinator over the given transport.
func NewBatchService(serverAdapter adapter.ServerAdapter, log *logger.Logger) BatchService {
	return &batchService{adapter: serverAdapter, logger: log}
}

// Submit implements [BatchService]. One call is one logical write: the
// generic routes produce a single request; the narrow routes produce one
// request per record but still resolve to a single result.
func (s *batchService) Submit(ctx context.Context, entity models.EntityType, req models.BatchRequest) (models.BatchResult, error) {
	policy, ok := writePolicies[entity]
	if !ok {
		return models.BatchResult{State: models.WriteFailed}, fmt.Errorf("%w: %q", ErrUnknownEntityType, entity)
	}

	if req.Empty() {
		// Nothing to put on the wire; the write never leaves BUILT.
		return models.BatchResult{State: models.WriteBuilt}, nil
	}

	if policy.restricted && s.adapter.AuthMode() == models.AuthModeAPIToken {
		return models.BatchResult{State: models.WriteRejected},
			fmt.Errorf("%w: %s writes are unavailable under api-token sessions", adapter.ErrWriteRejected, entity)
	}

	if policy.foldNames {
		req = foldTagRequest(req)
	}

	var (
		result models.BatchResult
		err    error
	)
	switch policy.route {
	case routeGeneric:
		result, err = s.submitGeneric(ctx, entity, req)
	case routeProject:
		result, err = s.submitProjects(ctx, req)
	case routeProjectGroup:
		result, err = s.submitProjectGroups(ctx, req)
	case routeColumn:
		result, err = s.submitColumns(ctx, req)
	case routeHabit:
		result, err = s.submitHabits(ctx, req)
	}

	if err != nil {
		result.State = models.WriteFailed
		if errors.Is(err, adapter.ErrWriteRejected) {
			result.State = models.WriteRejected
		}
		return result, err
	}

	s.logger.Debug().
		Str("entity", string(entity)).
		Int("add", len(req.Add)).
		Int("update", len(req.Update)).
		Int("delete", len(req.Delete)).
		Str("state", result.State.String()).
		Msg("batch write resolved")

	return result, nil
}

// submitGeneric sends one request to POST /api/v2/batch/{entity}. The
// receipt maps are the materialized outcome for this route; per-record
// failures travel in Errors rather than failing the whole call.
func (s *batchService) submitGeneric(ctx context.Context, entity models.EntityType, req models.BatchRequest) (models.BatchResult, error) {
	var (
		resp models.BatchResponse
		err  error
	)
	switch entity {
	case models.EntityTask:
		resp, err = s.adapter.BatchTask(ctx, req)
	case models.EntityTag:
		resp, err = s.adapter.BatchTag(ctx, req)
	case models.EntityFilter:
		resp, err = s.adapter.BatchFilter(ctx, req)
	}
	if err != nil {
		return models.BatchResult{}, fmt.Errorf("batch %s: %w", entity, err)
	}

	return models.BatchResult{
		State:  models.WriteMaterialized,
		Etags:  resp.ID2Etag,
		Errors: resp.ID2Error,
	}, nil
}

// submitProjects routes project records through the narrow endpoints.
// Creates come back materialized; updates may come back with an empty body,
// in which case exactly one follow-up read recovers the record.
func (s *batchService) submitProjects(ctx context.Context, req models.BatchRequest) (models.BatchResult, error) {
	result := models.BatchResult{State: models.WriteMaterialized}

	for _, rec := range req.Add {
		p, err := asProject(rec)
		if err != nil {
			return result, err
		}
		created, err := s.adapter.CreateProject(ctx, p)
		if err != nil {
			return result, fmt.Errorf("create project: %w", err)
		}
		result.Records = append(result.Records, created)
	}

	for _, rec := range req.Update {
		p, err := asProject(rec)
		if err != nil {
			return result, err
		}
		updated, err := s.adapter.UpdateProject(ctx, p)
		if err != nil {
			return result, fmt.Errorf("update project %s: %w", p.ID, err)
		}
		if updated == nil {
			// Empty success body: REQUIRES_REFETCH. The single follow-up
			// read resolves the write to a materialized record.
			result.State = models.WriteRequiresRefetch
			data, err := s.adapter.GetProjectData(ctx, p.ID)
			if err != nil {
				return result, fmt.Errorf("refetch project %s after empty update response: %w", p.ID, err)
			}
			updated = &data.Project
		}
		result.Records = append(result.Records, *updated)
	}

	for _, rec := range req.Delete {
		id, err := recordID(rec, func(p models.Project) string { return p.ID })
		if err != nil {
			return result, err
		}
		if err := s.adapter.DeleteProject(ctx, id); err != nil && !errors.Is(err, adapter.ErrNotFound) {
			return result, fmt.Errorf("delete project %s: %w", id, err)
		}
	}

	result.State = models.WriteMaterialized
	return result, nil
}

func (s *batchService) submitProjectGroups(ctx context.Context, req models.BatchRequest) (models.BatchResult, error) {
	result := models.BatchResult{State: models.WriteMaterialized}

	for _, rec := range req.Add {
		g, err := asProjectGroup(rec)
		if err != nil {
			return result, err
		}
		created, err := s.adapter.CreateProjectGroup(ctx, g)
		if err != nil {
			return result, fmt.Errorf("create project group: %w", err)
		}
		result.Records = append(result.Records, created)
	}

	for _, rec := range req.Update {
		g, err := asProjectGroup(rec)
		if err != nil {
			return result, err
		}
		updated, err := s.adapter.UpdateProjectGroup(ctx, g)
		if err != nil {
			return result, fmt.Errorf("update project group %s: %w", g.ID, err)
		}
		result.Records = append(result.Records, updated)
	}

	for _, rec := range req.Delete {
		id, err := recordID(rec, func(g models.ProjectGroup) string { return g.ID })
		if err != nil {
			return result, err
		}
		if err := s.adapter.DeleteProjectGroup(ctx, id); err != nil && !errors.Is(err, adapter.ErrNotFound) {
			return result, fmt.Errorf("delete project group %s: %w", id, err)
		}
	}

	return result, nil
}

// submitColumns saves columns through the shared save endpoint, which only
// answers with a receipt; the materialized records are recovered with one
// read of the project's column list per touched project.
func (s *batchService) submitColumns(ctx context.Context, req models.BatchRequest) (models.BatchResult, error) {
	result := models.BatchResult{State: models.WriteMaterialized}

	if len(req.Delete) > 0 {
		return result, fmt.Errorf("%w", ErrColumnDeleteUnsupported)
	}

	saved := make([]models.Column, 0, len(req.Add)+len(req.Update))
	for _, rec := range append(append([]any{}, req.Add...), req.Update...) {
		c, err := asColumn(rec)
		if err != nil {
			return result, err
		}
		if c.ID == "" {
			c.ID = utils.ObjectID()
		}
		receipt, err := s.adapter.SaveColumn(ctx, c)
		if err != nil {
			return result, fmt.Errorf("save column %s: %w", c.ID, err)
		}
		if perRecord, failed := receipt.ID2Error[c.ID]; failed {
			return result, fmt.Errorf("%w: column %s: %s", adapter.ErrProtocol, c.ID, perRecord)
		}
		saved = append(saved, c)
	}

	result.State = models.WriteRequiresRefetch
	byProject := make(map[string][]models.Column)
	for _, c := range saved {
		if _, done := byProject[c.ProjectID]; done {
			continue
		}
		cols, err := s.adapter.GetProjectColumns(ctx, c.ProjectID)
		if err != nil {
			return result, fmt.Errorf("refetch columns of %s: %w", c.ProjectID, err)
		}
		byProject[c.ProjectID] = cols
	}

	for _, c := range saved {
		materialized := c
		for _, got := range byProject[c.ProjectID] {
			if got.ID == c.ID {
				materialized = got
				break
			}
		}
		result.Records = append(result.Records, materialized)
	}

	result.State = models.WriteMaterialized
	return result, nil
}

func (s *batchService) submitHabits(ctx context.Context, req models.BatchRequest) (models.BatchResult, error) {
	result := models.BatchResult{State: models.WriteMaterialized}

	for _, rec := range req.Add {
		h, err := asHabit(rec)
		if err != nil {
			return result, err
		}
		created, err := s.adapter.CreateHabit(ctx, h)
		if err != nil {
			return result, fmt.Errorf("create habit: %w", err)
		}
		result.Records = append(result.Records, created)
	}

	for _, rec := range req.Update {
		h, err := asHabit(rec)
		if err != nil {
			return result, err
		}
		updated, err := s.adapter.UpdateHabit(ctx, h)
		if err != nil {
			return result, fmt.Errorf("update habit %s: %w", h.ID, err)
		}
		result.Records = append(result.Records, updated)
	}

	for _, rec := range req.Delete {
		id, err := recordID(rec, func(h models.Habit) string { return h.ID })
		if err != nil {
			return result, err
		}
		if err := s.adapter.DeleteHabit(ctx, id); err != nil && !errors.Is(err, adapter.ErrNotFound) {
			return result, fmt.Errorf("delete habit %s: %w", id, err)
		}
	}

	return result, nil
}

// ── tag folding ──────────────────────────────────────────────────────────────

// foldTagRequest lowercases every tag-name field of the request. Add and
// update records are tags; delete records are bare names.
func foldTagRequest(req models.BatchRequest) models.BatchRequest {
	out := models.BatchRequest{
		Add:    make([]any, 0, len(req.Add)),
		Update: make([]any, 0, len(req.Update)),
		Delete: make([]any, 0, len(req.Delete)),
	}
	if len(req.Add) == 0 {
		out.Add = nil
	}
	if len(req.Update) == 0 {
		out.Update = nil
	}
	if len(req.Delete) == 0 {
		out.Delete = nil
	}

	for _, rec := range req.Add {
		out.Add = append(out.Add, foldTagRecord(rec))
	}
	for _, rec := range req.Update {
		out.Update = append(out.Update, foldTagRecord(rec))
	}
	for _, rec := range req.Delete {
		out.Delete = append(out.Delete, foldTagRecord(rec))
	}
	return out
}

func foldTagRecord(rec any) any {
	switch v := rec.(type) {
	case models.Tag:
		v.Name = models.FoldTagName(v.Name)
		v.Parent = models.FoldTagName(v.Parent)
		return v
	case *models.Tag:
		folded := *v
		folded.Name = models.FoldTagName(folded.Name)
		folded.Parent = models.FoldTagName(folded.Parent)
		return &folded
	case string:
		return models.FoldTagName(v)
	case map[string]any:
		folded := make(map[string]any, len(v))
		for key, value := range v {
			if s, isString := value.(string); isString && (key == "name" || key == "parent") {
				folded[key] = models.FoldTagName(s)
				continue
			}
			folded[key] = value
		}
		return folded
	default:
		return rec
	}
}

// ── record coercion ──────────────────────────────────────────────────────────

func asProject(rec any) (models.Project, error) {
	switch v := rec.(type) {
	case models.Project:
		return v, nil
	case *models.Project:
		return *v, nil
	}
	return models.Project{}, fmt.Errorf("%w: want models.Project, got %T", ErrInvalidRecord, rec)
}

func asProjectGroup(rec any) (models.ProjectGroup, error) {
	switch v := rec.(type) {
	case models.ProjectGroup:
		return v, nil
	case *models.ProjectGroup:
		return *v, nil
	}
	return models.ProjectGroup{}, fmt.Errorf("%w: want models.ProjectGroup, got %T", ErrInvalidRecord, rec)
}

func asColumn(rec any) (models.Column, error) {
	switch v := rec.(type) {
	case models.Column:
		return v, nil
	case *models.Column:
		return *v, nil
	}
	return models.Column{}, fmt.Errorf("%w: want models.Column, got %T", ErrInvalidRecord, rec)
}

func asHabit(rec any) (models.Habit, error) {
	switch v := rec.(type) {
	case models.Habit:
		return v, nil
	case *models.Habit:
		return *v, nil
	}
	return models.Habit{}, fmt.Errorf("%w: want models.Habit, got %T", ErrInvalidRecord, rec)
}

// recordID extracts the delete key from a record that is either a bare id
// string or the full typed record.
func recordID[T any](rec any, id func(T) string) (string, error) {
	switch v := rec.(type) {
	case string:
		return v, nil
	case T:
		return id(v), nil
	case *T:
		return id(*v), nil
	}
	var zero T
	return "", fmt.Errorf("%w: want string or %T, got %T", ErrInvalidRecord, zero, rec)
}
