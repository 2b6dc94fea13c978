package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-tick-sdk/internal/config"
	"github.com/MKhiriev/go-tick-sdk/internal/logger"
	"github.com/MKhiriev/go-tick-sdk/internal/utils"
	"github.com/MKhiriev/go-tick-sdk/models"
	"github.com/go-resty/resty/v2"
)

// maxAttempts bounds rate-limit retries per request, matching the service's
// web client behavior.
const maxAttempts = 3

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu       sync.RWMutex
	token    string
	authMode models.AuthMode

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.BaseURL, configures the underlying HTTP client with the resolved
// base URL, browser-shaped identity headers, request timeout, and rate-limit
// retries honoring Retry-After.
//
// When appCfg.APIToken is non-empty the adapter starts in
// [models.AuthModeAPIToken] with the token already applied; otherwise it
// starts unauthenticated in [models.AuthModeWeb] and expects a Signon call.
//
// Returns an error if adapterCfg.BaseURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.Adapter, appCfg config.App, log *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	userAgent := adapterCfg.UserAgent
	if userAgent == "" {
		userAgent = config.DefaultUserAgent
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		SetDebug(adapterCfg.Debug).
		SetHeaders(map[string]string{
			"User-Agent":   userAgent,
			"Accept":       "application/json, text/plain, */*",
			"Content-Type": "application/json",
			"Origin":       "https://ticktick.com",
			"Referer":      "https://ticktick.com/",
			"x-device":     deviceHeader(appCfg.DeviceID),
		})

	client.
		SetRetryCount(maxAttempts - 1).
		SetRetryWaitTime(time.Second).
		// Caps the wait even when Retry-After asks for more.
		SetRetryMaxWaitTime(time.Minute).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err == nil && r != nil && r.StatusCode() == http.StatusTooManyRequests
		}).
		SetRetryAfter(func(_ *resty.Client, r *resty.Response) (time.Duration, error) {
			if wait := parseRetryAfter(r.Header().Get("Retry-After")); wait > 0 {
				return wait, nil
			}
			return time.Second << r.Request.Attempt, nil
		})

	a := &httpServerAdapter{client: client, logger: log}
	if appCfg.APIToken != "" {
		a.token = appCfg.APIToken
		a.authMode = models.AuthModeAPIToken
	}

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// deviceHeader renders the x-device identity the web API expects on every
// request. An empty deviceID falls back to the generic web client id.
func deviceHeader(deviceID string) string {
	if deviceID == "" {
		deviceID = "web_client"
	}

	payload := struct {
		Platform  string `json:"platform"`
		OS        string `json:"os"`
		Device    string `json:"device"`
		Name      string `json:"name"`
		Version   int    `json:"version"`
		ID        string `json:"id"`
		Channel   string `json:"channel"`
		Campaign  string `json:"campaign"`
		WebSocket string `json:"websocket"`
	}{
		Platform: "web",
		OS:       "macOS 10.15.7",
		Device:   "Chrome 120.0.0.0",
		Version:  6010,
		ID:       deviceID,
		Channel:  "website",
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return ""
	}
	return string(raw)
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use on all subsequent authenticated requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the session token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// AuthMode implements [ServerAdapter].
func (h *httpServerAdapter) AuthMode() models.AuthMode {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.authMode
}

// Signon implements [ServerAdapter]. It POSTs the credentials to
// POST /api/v2/user/signon with the web-client query parameters. On success
// the session token from the response body is stored via SetToken and the
// adapter switches to web auth mode.
func (h *httpServerAdapter) Signon(ctx context.Context, req models.SignonRequest) (models.SignonResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{"wc": "true", "remember": "true"}).
		SetBody(req).
		Post("/api/v2/user/signon")
	if err != nil {
		return models.SignonResponse{}, mapTransportError("signon", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SignonResponse{}, err
	}

	var out models.SignonResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.SignonResponse{}, mapDecodeError("signon", err)
	}

	if out.Token != "" {
		h.mu.Lock()
		h.token = out.Token
		h.authMode = models.AuthModeWeb
		h.mu.Unlock()
	}

	h.log(ctx).Info().Str("username", req.Username).Msg("signed on")
	return out, nil
}

// Check implements [ServerAdapter]. It GETs the snapshot for checkpoint from
// GET /api/v3/batch/check/{checkpoint} and decodes it preserving the
// absent/empty distinction per collection.
func (h *httpServerAdapter) Check(ctx context.Context, checkpoint int64) (*models.Snapshot, error) {
	resp, err := h.authedRequest(ctx).
		Get("/api/v3/batch/check/" + strconv.FormatInt(checkpoint, 10))
	if err != nil {
		return nil, mapTransportError("check", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var snap models.Snapshot
	if err = json.Unmarshal(resp.Body(), &snap); err != nil {
		return nil, mapDecodeError("check", err)
	}

	// A snapshot without a checkpoint cannot advance sync state.
	var probe struct {
		Checkpoint *int64 `json:"checkPoint"`
	}
	if err = json.Unmarshal(resp.Body(), &probe); err == nil && probe.Checkpoint == nil {
		return nil, fmt.Errorf("%w: check: response carries no checkPoint", ErrProtocol)
	}

	h.log(ctx).Debug().
		Int64("checkpoint", checkpoint).
		Int64("newCheckpoint", snap.Checkpoint).
		Msg("checkpoint probe")

	return &snap, nil
}

// BatchTask implements [ServerAdapter].
func (h *httpServerAdapter) BatchTask(ctx context.Context, req models.BatchRequest) (models.BatchResponse, error) {
	return h.postBatch(ctx, models.EntityTask, req)
}

// BatchTag implements [ServerAdapter].
func (h *httpServerAdapter) BatchTag(ctx context.Context, req models.BatchRequest) (models.BatchResponse, error) {
	return h.postBatch(ctx, models.EntityTag, req)
}

// BatchFilter implements [ServerAdapter].
func (h *httpServerAdapter) BatchFilter(ctx context.Context, req models.BatchRequest) (models.BatchResponse, error) {
	return h.postBatch(ctx, models.EntityFilter, req)
}

func (h *httpServerAdapter) postBatch(ctx context.Context, entity models.EntityType, req models.BatchRequest) (models.BatchResponse, error) {
	op := "batch " + string(entity)

	resp, err := h.authedRequest(ctx).
		SetBody(req).
		Post("/api/v2/batch/" + string(entity))
	if err != nil {
		return models.BatchResponse{}, mapTransportError(op, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.BatchResponse{}, err
	}

	out, err := decodeBatchResponse(op, resp.Body())
	if err != nil {
		return models.BatchResponse{}, err
	}

	h.log(ctx).Debug().
		Str("entity", string(entity)).
		Int("add", len(req.Add)).
		Int("update", len(req.Update)).
		Int("delete", len(req.Delete)).
		Int("errors", len(out.ID2Error)).
		Msg("batch submitted")

	return out, nil
}

// decodeBatchResponse tolerates the empty body some batch endpoints answer
// with on success.
func decodeBatchResponse(op string, body []byte) (models.BatchResponse, error) {
	var out models.BatchResponse
	if len(bytes.TrimSpace(body)) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return models.BatchResponse{}, mapDecodeError(op, err)
	}
	return out, nil
}

// CreateTask implements [ServerAdapter]. POST /api/v2/task answers with the
// full materialized task, unlike the batch endpoint's receipt.
func (h *httpServerAdapter) CreateTask(ctx context.Context, t models.Task) (models.Task, error) {
	resp, err := h.authedRequest(ctx).
		SetBody(t).
		Post("/api/v2/task")
	if err != nil {
		return models.Task{}, mapTransportError("create task", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Task{}, err
	}

	var out models.Task
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.Task{}, mapDecodeError("create task", err)
	}

	h.log(ctx).Debug().Str("taskID", out.ID).Str("projectID", out.ProjectID).Msg("task created")
	return out, nil
}

// UpdateTask implements [ServerAdapter]. The projectId query parameter names
// the task's current (possibly new) project.
func (h *httpServerAdapter) UpdateTask(ctx context.Context, t models.Task) (models.Task, error) {
	resp, err := h.authedRequest(ctx).
		SetQueryParam("projectId", t.ProjectID).
		SetBody(t).
		Post("/api/v2/task/" + url.PathEscape(t.ID))
	if err != nil {
		return models.Task{}, mapTransportError("update task", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Task{}, err
	}

	var out models.Task
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.Task{}, mapDecodeError("update task", err)
	}
	return out, nil
}

// SetTaskParents implements [ServerAdapter]. It POSTs the re-parenting list
// to POST /api/v2/batch/taskParent.
func (h *httpServerAdapter) SetTaskParents(ctx context.Context, parents []models.TaskParent) (models.BatchResponse, error) {
	resp, err := h.authedRequest(ctx).
		SetBody(parents).
		Post("/api/v2/batch/taskParent")
	if err != nil {
		return models.BatchResponse{}, mapTransportError("task parents", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.BatchResponse{}, err
	}

	return decodeBatchResponse("task parents", resp.Body())
}

// GetTask implements [ServerAdapter].
func (h *httpServerAdapter) GetTask(ctx context.Context, taskID, projectID string) (models.Task, error) {
	resp, err := h.authedRequest(ctx).
		SetQueryParam("projectId", projectID).
		Get("/api/v2/task/" + url.PathEscape(taskID))
	if err != nil {
		return models.Task{}, mapTransportError("get task", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Task{}, err
	}

	var task models.Task
	if err = json.Unmarshal(resp.Body(), &task); err != nil {
		return models.Task{}, mapDecodeError("get task", err)
	}
	return task, nil
}

// GetCompletedTasks implements [ServerAdapter].
func (h *httpServerAdapter) GetCompletedTasks(ctx context.Context, projectID string, from, to models.Time, limit int) ([]models.Task, error) {
	endpoint := "/api/v2/project/all/completed/"
	if projectID != "" {
		endpoint = "/api/v2/project/" + url.PathEscape(projectID) + "/completed/"
	}

	req := h.authedRequest(ctx).SetQueryParam("limit", strconv.Itoa(limit))
	if !from.IsZero() {
		req.SetQueryParam("from", from.QueryParam())
	}
	if !to.IsZero() {
		req.SetQueryParam("to", to.QueryParam())
	}

	resp, err := req.Get(endpoint)
	if err != nil {
		return nil, mapTransportError("completed tasks", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var tasks []models.Task
	if err = json.Unmarshal(resp.Body(), &tasks); err != nil {
		return nil, mapDecodeError("completed tasks", err)
	}
	return tasks, nil
}

// GetCompletedInAll implements [ServerAdapter]. The completedInAll query is
// broader than the per-project completed view: it also covers lists the
// account excludes from "All".
func (h *httpServerAdapter) GetCompletedInAll(ctx context.Context, from, to models.Time, limit int) ([]models.Task, error) {
	req := h.authedRequest(ctx).SetQueryParam("limit", strconv.Itoa(limit))
	if !from.IsZero() {
		req.SetQueryParam("from", from.QueryParam())
	}
	if !to.IsZero() {
		req.SetQueryParam("to", to.QueryParam())
	}

	resp, err := req.Get("/api/v2/project/all/completedInAll/")
	if err != nil {
		return nil, mapTransportError("completed in all", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var tasks []models.Task
	if err = json.Unmarshal(resp.Body(), &tasks); err != nil {
		return nil, mapDecodeError("completed in all", err)
	}
	return tasks, nil
}

// GetCompletedByTags implements [ServerAdapter].
func (h *httpServerAdapter) GetCompletedByTags(ctx context.Context, tagNames []string, limit int, token string) ([]models.Task, error) {
	body := map[string]any{
		"tags":  tagNames,
		"token": token,
		"limit": limit,
	}

	resp, err := h.authedRequest(ctx).
		SetBody(body).
		Post("/api/v2/tag/completedTask")
	if err != nil {
		return nil, mapTransportError("completed by tags", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var tasks []models.Task
	if err = json.Unmarshal(resp.Body(), &tasks); err != nil {
		return nil, mapDecodeError("completed by tags", err)
	}
	return tasks, nil
}

// GetTrashedTasks implements [ServerAdapter]. The endpoint has answered with
// both a bare list and a {"tasks": [...]} wrapper across API revisions; both
// are accepted.
func (h *httpServerAdapter) GetTrashedTasks(ctx context.Context, limit int) ([]models.Task, error) {
	resp, err := h.authedRequest(ctx).
		SetQueryParam("limit", strconv.Itoa(limit)).
		Get("/api/v2/project/all/trash/pagination")
	if err != nil {
		return nil, mapTransportError("trash", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var tasks []models.Task
	if err = json.Unmarshal(resp.Body(), &tasks); err == nil {
		return tasks, nil
	}

	var page struct {
		Tasks []models.Task `json:"tasks"`
	}
	if err = json.Unmarshal(resp.Body(), &page); err != nil {
		return nil, mapDecodeError("trash", err)
	}
	return page.Tasks, nil
}

// GetProjectData implements [ServerAdapter].
func (h *httpServerAdapter) GetProjectData(ctx context.Context, projectID string) (models.ProjectData, error) {
	resp, err := h.authedRequest(ctx).
		Get("/api/v2/project/" + url.PathEscape(projectID) + "/data")
	if err != nil {
		return models.ProjectData{}, mapTransportError("project data", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ProjectData{}, err
	}

	var data models.ProjectData
	if err = json.Unmarshal(resp.Body(), &data); err != nil {
		return models.ProjectData{}, mapDecodeError("project data", err)
	}
	return data, nil
}

// CreateProject implements [ServerAdapter].
func (h *httpServerAdapter) CreateProject(ctx context.Context, p models.Project) (models.Project, error) {
	resp, err := h.authedRequest(ctx).
		SetBody(p).
		Post("/api/v2/project")
	if err != nil {
		return models.Project{}, mapTransportError("create project", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Project{}, err
	}

	var out models.Project
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.Project{}, mapDecodeError("create project", err)
	}
	return out, nil
}

// UpdateProject implements [ServerAdapter]. A nil result with nil error means
// the service accepted the update but answered with an empty body.
func (h *httpServerAdapter) UpdateProject(ctx context.Context, p models.Project) (*models.Project, error) {
	resp, err := h.authedRequest(ctx).
		SetBody(p).
		Put("/api/v2/project/" + url.PathEscape(p.ID))
	if err != nil {
		return nil, mapTransportError("update project", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	if len(bytes.TrimSpace(resp.Body())) == 0 {
		return nil, nil
	}

	var out models.Project
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, mapDecodeError("update project", err)
	}
	return &out, nil
}

// DeleteProject implements [ServerAdapter].
func (h *httpServerAdapter) DeleteProject(ctx context.Context, projectID string) error {
	resp, err := h.authedRequest(ctx).
		Delete("/api/v2/project/" + url.PathEscape(projectID))
	if err != nil {
		return mapTransportError("delete project", err)
	}
	return mapHTTPError(resp)
}

// CreateProjectGroup implements [ServerAdapter].
func (h *httpServerAdapter) CreateProjectGroup(ctx context.Context, g models.ProjectGroup) (models.ProjectGroup, error) {
	resp, err := h.authedRequest(ctx).
		SetBody(g).
		Post("/api/v2/projectGroup")
	if err != nil {
		return models.ProjectGroup{}, mapTransportError("create project group", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ProjectGroup{}, err
	}

	var out models.ProjectGroup
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.ProjectGroup{}, mapDecodeError("create project group", err)
	}
	return out, nil
}

// UpdateProjectGroup implements [ServerAdapter].
func (h *httpServerAdapter) UpdateProjectGroup(ctx context.Context, g models.ProjectGroup) (models.ProjectGroup, error) {
	resp, err := h.authedRequest(ctx).
		SetBody(g).
		Put("/api/v2/projectGroup/" + url.PathEscape(g.ID))
	if err != nil {
		return models.ProjectGroup{}, mapTransportError("update project group", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ProjectGroup{}, err
	}

	var out models.ProjectGroup
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.ProjectGroup{}, mapDecodeError("update project group", err)
	}
	return out, nil
}

// DeleteProjectGroup implements [ServerAdapter].
func (h *httpServerAdapter) DeleteProjectGroup(ctx context.Context, groupID string) error {
	resp, err := h.authedRequest(ctx).
		Delete("/api/v2/projectGroup/" + url.PathEscape(groupID))
	if err != nil {
		return mapTransportError("delete project group", err)
	}
	return mapHTTPError(resp)
}

// RenameTag implements [ServerAdapter].
func (h *httpServerAdapter) RenameTag(ctx context.Context, rename models.TagRename) error {
	resp, err := h.authedRequest(ctx).
		SetBody(rename).
		Put("/api/v2/tag/rename")
	if err != nil {
		return mapTransportError("rename tag", err)
	}
	return mapHTTPError(resp)
}

// MergeTags implements [ServerAdapter]. Tasks tagged with rename.Name end up
// tagged with rename.NewName, and the source tag is gone afterwards.
func (h *httpServerAdapter) MergeTags(ctx context.Context, rename models.TagRename) error {
	resp, err := h.authedRequest(ctx).
		SetBody(rename).
		Put("/api/v2/tag/merge")
	if err != nil {
		return mapTransportError("merge tags", err)
	}
	return mapHTTPError(resp)
}

// DeleteTag implements [ServerAdapter]. The name is percent-encoded into the
// path; hierarchical names cannot travel this way and must use BatchTag.
func (h *httpServerAdapter) DeleteTag(ctx context.Context, name string) error {
	resp, err := h.authedRequest(ctx).
		Delete("/api/v2/tag/" + url.PathEscape(name))
	if err != nil {
		return mapTransportError("delete tag", err)
	}
	return mapHTTPError(resp)
}

// GetColumns implements [ServerAdapter].
func (h *httpServerAdapter) GetColumns(ctx context.Context, since int64) ([]models.Column, error) {
	resp, err := h.authedRequest(ctx).
		SetQueryParam("from", strconv.FormatInt(since, 10)).
		Get("/api/v2/column")
	if err != nil {
		return nil, mapTransportError("columns", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return decodeColumns("columns", resp.Body())
}

// GetProjectColumns implements [ServerAdapter].
func (h *httpServerAdapter) GetProjectColumns(ctx context.Context, projectID string) ([]models.Column, error) {
	resp, err := h.authedRequest(ctx).
		Get("/api/v2/column/project/" + url.PathEscape(projectID))
	if err != nil {
		return nil, mapTransportError("project columns", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return decodeColumns("project columns", resp.Body())
}

// decodeColumns accepts the bare-list and {"columns": [...]} response shapes.
func decodeColumns(op string, body []byte) ([]models.Column, error) {
	var cols []models.Column
	if err := json.Unmarshal(body, &cols); err == nil {
		return cols, nil
	}

	var wrapper struct {
		Columns []models.Column `json:"columns"`
	}
	if err := json.Unmarshal(body, &wrapper); err != nil {
		return nil, mapDecodeError(op, err)
	}
	return wrapper.Columns, nil
}

// SaveColumn implements [ServerAdapter]. Create and update share the POST
// endpoint; the service dispatches on the column id.
func (h *httpServerAdapter) SaveColumn(ctx context.Context, c models.Column) (models.BatchResponse, error) {
	resp, err := h.authedRequest(ctx).
		SetBody(c).
		Post("/api/v2/column")
	if err != nil {
		return models.BatchResponse{}, mapTransportError("save column", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.BatchResponse{}, err
	}

	return decodeBatchResponse("save column", resp.Body())
}

// GetHabits implements [ServerAdapter].
func (h *httpServerAdapter) GetHabits(ctx context.Context) ([]models.Habit, error) {
	resp, err := h.authedRequest(ctx).Get("/api/v2/habits")
	if err != nil {
		return nil, mapTransportError("habits", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var habits []models.Habit
	if err = json.Unmarshal(resp.Body(), &habits); err != nil {
		return nil, mapDecodeError("habits", err)
	}
	return habits, nil
}

// CreateHabit implements [ServerAdapter].
func (h *httpServerAdapter) CreateHabit(ctx context.Context, habit models.Habit) (models.Habit, error) {
	resp, err := h.authedRequest(ctx).
		SetBody(habit).
		Post("/api/v2/habits")
	if err != nil {
		return models.Habit{}, mapTransportError("create habit", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Habit{}, err
	}

	var out models.Habit
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.Habit{}, mapDecodeError("create habit", err)
	}
	return out, nil
}

// UpdateHabit implements [ServerAdapter].
func (h *httpServerAdapter) UpdateHabit(ctx context.Context, habit models.Habit) (models.Habit, error) {
	resp, err := h.authedRequest(ctx).
		SetBody(habit).
		Put("/api/v2/habits/" + url.PathEscape(habit.ID))
	if err != nil {
		return models.Habit{}, mapTransportError("update habit", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Habit{}, err
	}

	var out models.Habit
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.Habit{}, mapDecodeError("update habit", err)
	}
	return out, nil
}

// DeleteHabit implements [ServerAdapter].
func (h *httpServerAdapter) DeleteHabit(ctx context.Context, habitID string) error {
	resp, err := h.authedRequest(ctx).
		Delete("/api/v2/habits/" + url.PathEscape(habitID))
	if err != nil {
		return mapTransportError("delete habit", err)
	}
	return mapHTTPError(resp)
}

// QueryHabitCheckins implements [ServerAdapter].
func (h *httpServerAdapter) QueryHabitCheckins(ctx context.Context, q models.HabitCheckinQuery) (models.HabitCheckinResult, error) {
	resp, err := h.authedRequest(ctx).
		SetBody(q).
		Post("/api/v2/habitCheckins/query")
	if err != nil {
		return models.HabitCheckinResult{}, mapTransportError("habit checkins", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.HabitCheckinResult{}, err
	}

	var out models.HabitCheckinResult
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.HabitCheckinResult{}, mapDecodeError("habit checkins", err)
	}
	return out, nil
}

// Checkin implements [ServerAdapter].
func (h *httpServerAdapter) Checkin(ctx context.Context, c models.HabitCheckin) (models.HabitCheckin, error) {
	resp, err := h.authedRequest(ctx).
		SetBody(c).
		Post("/api/v2/habitCheckins")
	if err != nil {
		return models.HabitCheckin{}, mapTransportError("checkin", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.HabitCheckin{}, err
	}

	var out models.HabitCheckin
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.HabitCheckin{}, mapDecodeError("checkin", err)
	}
	return out, nil
}

// BatchCheckin implements [ServerAdapter].
func (h *httpServerAdapter) BatchCheckin(ctx context.Context, batch models.HabitCheckinBatch) error {
	resp, err := h.authedRequest(ctx).
		SetBody(batch).
		Post("/api/v2/habits/batch")
	if err != nil {
		return mapTransportError("batch checkin", err)
	}
	return mapHTTPError(resp)
}

// GetUserProfile implements [ServerAdapter].
func (h *httpServerAdapter) GetUserProfile(ctx context.Context) (models.UserProfile, error) {
	var out models.UserProfile
	if err := h.getJSON(ctx, "/api/v2/user/profile", "user profile", &out); err != nil {
		return models.UserProfile{}, err
	}
	return out, nil
}

// GetUserStatus implements [ServerAdapter].
func (h *httpServerAdapter) GetUserStatus(ctx context.Context) (models.UserStatus, error) {
	var out models.UserStatus
	if err := h.getJSON(ctx, "/api/v2/user/status", "user status", &out); err != nil {
		return models.UserStatus{}, err
	}
	return out, nil
}

// GetUserSettings implements [ServerAdapter].
func (h *httpServerAdapter) GetUserSettings(ctx context.Context) (models.UserSettings, error) {
	var out models.UserSettings
	if err := h.getJSON(ctx, "/api/v2/user/preferences/settings", "user settings", &out); err != nil {
		return models.UserSettings{}, err
	}
	return out, nil
}

// GetUserLimits implements [ServerAdapter].
func (h *httpServerAdapter) GetUserLimits(ctx context.Context) (models.UserLimits, error) {
	var out models.UserLimits
	if err := h.getJSON(ctx, "/api/v2/configs/limits", "user limits", &out); err != nil {
		return models.UserLimits{}, err
	}
	return out, nil
}

// Search implements [ServerAdapter].
func (h *httpServerAdapter) Search(ctx context.Context, keywords string) (models.SearchResults, error) {
	resp, err := h.authedRequest(ctx).
		SetQueryParam("keywords", keywords).
		Get("/api/v2/search/all")
	if err != nil {
		return models.SearchResults{}, mapTransportError("search", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SearchResults{}, err
	}

	var out models.SearchResults
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.SearchResults{}, mapDecodeError("search", err)
	}
	return out, nil
}

func (h *httpServerAdapter) getJSON(ctx context.Context, endpoint, op string, out any) error {
	resp, err := h.authedRequest(ctx).Get(endpoint)
	if err != nil {
		return mapTransportError(op, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}
	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return mapDecodeError(op, err)
	}
	return nil
}

// authedRequest builds a request carrying the stored credential: web tokens
// travel as the "t" cookie, Open API tokens as a bearer header.
func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)

	h.mu.RLock()
	token, mode := h.token, h.authMode
	h.mu.RUnlock()

	if token == "" {
		return req
	}

	switch mode {
	case models.AuthModeAPIToken:
		req.SetHeader("Authorization", "Bearer "+token)
	default:
		req.SetCookie(&http.Cookie{Name: "t", Value: token})
	}

	return req
}

// log returns a logger carrying the operation trace id when the context has
// one.
func (h *httpServerAdapter) log(ctx context.Context) *logger.Logger {
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		child := h.logger.GetChildLogger()
		child.Logger = child.With().Str("trace", traceID).Logger()
		return child
	}
	return h.logger
}
