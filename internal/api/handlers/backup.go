package handlers

import (
	"io"
	"net/http"
	"time"

	apperrors "resource-manager-backend/internal/errors"
	"resource-manager-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// BackupHandler exposes snapshot export and apply over HTTP
type BackupHandler struct {
	backupService service.BackupServiceInterface
	now           func() time.Time
}

// NewBackupHandler creates a new backup handler
func NewBackupHandler(backupService service.BackupServiceInterface) *BackupHandler {
	return &BackupHandler{
		backupService: backupService,
		now:           time.Now,
	}
}

// ReplaceResponse is returned after a successful replace
type ReplaceResponse struct {
	Message     string `json:"message" example:"Backup saved successfully to database"`
	Timestamp   string `json:"timestamp"`
	TeamMembers int    `json:"teamMembers"`
	Projects    int    `json:"projects"`
}

// MergeResponse is returned after a successful merge
type MergeResponse struct {
	Message   string `json:"message" example:"Backup merged successfully with database"`
	Timestamp string `json:"timestamp"`
	Updated   int    `json:"updated"`
	Created   int    `json:"created"`
	service.MergeResult
}

// ImportResponse is returned after a successful import
type ImportResponse struct {
	Message   string `json:"message" example:"Data imported successfully"`
	Timestamp string `json:"timestamp"`
}

// Export handles GET /api/backup
// @Summary Export a snapshot
// @Description Return every team member and project as one snapshot document
// @Tags backup
// @Produce json
// @Success 200 {object} service.Snapshot "Current snapshot"
// @Failure 500 {object} ErrorResponse "Storage failure"
// @Router /api/backup [get]
func (h *BackupHandler) Export(c *gin.Context) {
	snap, err := h.backupService.Export()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// GetData handles GET /api/data
// @Summary Read all data
// @Description Same document as the backup export, served as the application's data resource
// @Tags backup
// @Produce json
// @Success 200 {object} service.Snapshot "Current snapshot"
// @Failure 500 {object} ErrorResponse "Storage failure"
// @Router /api/data [get]
func (h *BackupHandler) GetData(c *gin.Context) {
	h.Export(c)
}

// Replace handles POST /api/backup
// @Summary Replace all data with a snapshot
// @Description Discard the stored team members and projects and load the snapshot in their place. Nothing changes if any record is rejected.
// @Tags backup
// @Accept json
// @Produce json
// @Param snapshot body service.Snapshot true "Snapshot with teamMembers and projects"
// @Success 201 {object} ReplaceResponse "Snapshot applied"
// @Failure 400 {object} ErrorResponse "Malformed or incomplete snapshot"
// @Failure 500 {object} ErrorResponse "Storage failure"
// @Router /api/backup [post]
func (h *BackupHandler) Replace(c *gin.Context) {
	snap, ok := h.readSnapshot(c)
	if !ok {
		return
	}

	result, err := h.backupService.ApplyReplace(snap)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ReplaceResponse{
		Message:     "Backup saved successfully to database",
		Timestamp:   h.timestamp(),
		TeamMembers: result.TeamMembers,
		Projects:    result.Projects,
	})
}

// Merge handles PUT /api/backup
// @Summary Merge a snapshot into the stored data
// @Description Upsert team members and projects by name. Fields missing from a record keep their stored values.
// @Tags backup
// @Accept json
// @Produce json
// @Param snapshot body service.Snapshot true "Snapshot, either collection may be omitted"
// @Success 200 {object} MergeResponse "Snapshot merged"
// @Failure 400 {object} ErrorResponse "Malformed snapshot or invalid record"
// @Failure 500 {object} ErrorResponse "Storage failure"
// @Router /api/backup [put]
func (h *BackupHandler) Merge(c *gin.Context) {
	snap, ok := h.readSnapshot(c)
	if !ok {
		return
	}

	result, err := h.backupService.ApplyMerge(snap)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, MergeResponse{
		Message:     "Backup merged successfully with database",
		Timestamp:   h.timestamp(),
		Updated:     result.Updated(),
		Created:     result.Created(),
		MergeResult: *result,
	})
}

// Import handles POST /api/import
// @Summary Import an exported data file
// @Description Replace all data with a previously exported document
// @Tags backup
// @Accept json
// @Produce json
// @Param snapshot body service.Snapshot true "Exported document"
// @Success 200 {object} ImportResponse "Data imported"
// @Failure 400 {object} ErrorResponse "Malformed or incomplete document"
// @Failure 500 {object} ErrorResponse "Storage failure"
// @Router /api/import [post]
func (h *BackupHandler) Import(c *gin.Context) {
	snap, ok := h.readSnapshot(c)
	if !ok {
		return
	}

	if _, err := h.backupService.ApplyReplace(snap); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ImportResponse{
		Message:   "Data imported successfully",
		Timestamp: h.timestamp(),
	})
}

// readSnapshot decodes with ParseSnapshot instead of ShouldBindJSON. The
// result keeps an absent collection key (nil) apart from an empty one, and
// an empty body, null or a non-object each get their own error. Seed files
// go through the same parser.
func (h *BackupHandler) readSnapshot(c *gin.Context) (*service.Snapshot, bool) {
	if c.Request.Body == nil {
		respondError(c, apperrors.ErrNoSnapshotData)
		return nil, false
	}
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		respondError(c, apperrors.NewValidationError("body", err.Error()))
		return nil, false
	}

	snap, err := service.ParseSnapshot(body)
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	return snap, true
}

func (h *BackupHandler) timestamp() string {
	return h.now().UTC().Format(time.RFC3339)
}
