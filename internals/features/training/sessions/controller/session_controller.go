package controller

import (
	"errors"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"gorm.io/gorm"

	batchModel "pelatihanku_backend/internals/features/training/batches/model"
	"pelatihanku_backend/internals/features/training/sessions/dto"
	"pelatihanku_backend/internals/features/training/sessions/model"
	"pelatihanku_backend/internals/features/training/sessions/service"
	helper "pelatihanku_backend/internals/helpers"
)

type TrainingSessionController struct {
	DB      *gorm.DB
	Scoring *service.ScoringService
	Finish  *service.FinishService
}

func NewTrainingSessionController(db *gorm.DB, uploader service.SignatureUploader) *TrainingSessionController {
	return &TrainingSessionController{
		DB:      db,
		Scoring: service.NewScoringService(db),
		Finish:  service.NewFinishService(db, uploader),
	}
}

/* ===================== LIST BY BATCH ===================== */
// GET /api/training/batches/:batch_id/sessions
func (ctrl *TrainingSessionController) ListByBatch(c *fiber.Ctx) error {
	batchID, err := parseUintParam(c, "batch_id")
	if err != nil {
		return helper.NotFound(c)
	}

	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.TrainingSessionModel{}).
		Where("training_batch_id = ?", batchID).
		Count(&total).Error; err != nil {
		return helper.InternalError(c, err)
	}

	var sessions []model.TrainingSessionModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Preload("Teacher").
		Preload("Assistants.Employee").
		Preload("Assistants.Scores").
		Where("training_batch_id = ?", batchID).
		Order("id ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&sessions).Error; err != nil {
		return helper.InternalError(c, err)
	}

	content := make([]dto.TrainingSessionResponse, 0, len(sessions))
	for i := range sessions {
		content = append(content, dto.NewTrainingSessionResponse(&sessions[i], service.AverageScore(sessions[i].Assistants)))
	}
	return helper.List(c, content, total)
}

/* ===================== GET BY ID ===================== */
// GET /api/training/batches/:batch_id/sessions/:session_id
func (ctrl *TrainingSessionController) GetByID(c *fiber.Ctx) error {
	session, err := ctrl.findSession(c)
	if err != nil {
		return ctrl.respondError(c, err)
	}
	return helper.JSON(c, fiber.StatusOK,
		dto.NewTrainingSessionResponse(session, service.AverageScore(session.Assistants)))
}

/* ===================== CREATE ===================== */
// POST /api/training/batches/:batch_id/sessions
func (ctrl *TrainingSessionController) Create(c *fiber.Ctx) error {
	batchID, err := parseUintParam(c, "batch_id")
	if err != nil {
		return helper.NotFound(c)
	}

	var batch batchModel.TrainingBatchModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&batch, batchID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(c)
		}
		return helper.InternalError(c, err)
	}

	var req dto.CreateTrainingSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.BadRequest(c, "Payload tidak valid")
	}

	// Field wajib: pesan mengikuti kontrak lama.
	switch {
	case req.ProviderBranchID == nil:
		return helper.ValidationError(c, "provider_branch_id cannot be empty")
	case req.TeacherID == nil:
		return helper.ValidationError(c, "teacher_id cannot be empty")
	case req.Latitude == nil:
		return helper.ValidationError(c, "latitude cannot be empty")
	case req.Longitude == nil:
		return helper.ValidationError(c, "longitude cannot be empty")
	}

	// Validasi range/format (koordinat dsb.)
	if msg := helper.ValidateStruct(req); msg != "" {
		return helper.ValidationError(c, msg)
	}

	session := req.ToModel(batch.ID)
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&session).Error; err != nil {
		if isForeignKeyViolation(err) {
			return helper.ValidationError(c, "provider_branch_id or teacher_id does not exist")
		}
		return helper.InternalError(c, err)
	}

	created, err := service.ReloadSessionWithScores(c.UserContext(), ctrl.DB, session.ID)
	if err != nil {
		return helper.InternalError(c, err)
	}
	return helper.JSON(c, fiber.StatusCreated,
		dto.NewTrainingSessionResponse(created, service.AverageScore(created.Assistants)))
}

/* ===================== ADD ASSISTANT SCORES ===================== */
// PATCH /api/training/batches/:batch_id/sessions/:session_id
func (ctrl *TrainingSessionController) AddAssistants(c *fiber.Ctx) error {
	session, err := ctrl.findSession(c)
	if err != nil {
		return ctrl.respondError(c, err)
	}

	var req dto.AddAssistantsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.BadRequest(c, "Payload tidak valid")
	}
	if msg := helper.ValidateStruct(req); msg != "" {
		return helper.ValidationError(c, msg)
	}

	updated, err := ctrl.Scoring.AddAssistantScores(c.UserContext(), session, req)
	if err != nil {
		return ctrl.respondError(c, err)
	}
	return helper.JSON(c, fiber.StatusCreated,
		dto.NewTrainingSessionResponse(updated, service.AverageScore(updated.Assistants)))
}

/* ===================== FINISH (UPLOAD SIGNATURE) ===================== */
// POST /api/training/batches/:batch_id/sessions/:session_id/finish
func (ctrl *TrainingSessionController) FinishSession(c *fiber.Ctx) error {
	session, err := ctrl.findSession(c)
	if err != nil {
		return ctrl.respondError(c, err)
	}
	log.Printf("[INFO] finish_training_session: session=%d signature_url=%v", session.ID, session.SignatureURL)

	var req dto.FinishSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.BadRequest(c, "Payload tidak valid")
	}
	if msg := helper.ValidateStruct(req); msg != "" {
		return helper.ValidationError(c, msg)
	}

	finished, err := ctrl.Finish.Finish(c.UserContext(), session, req)
	if err != nil {
		return ctrl.respondError(c, err)
	}
	return helper.JSON(c, fiber.StatusCreated,
		dto.NewTrainingSessionResponse(finished, service.AverageScore(finished.Assistants)))
}

/* ===================== INTERNAL ===================== */

func (ctrl *TrainingSessionController) findSession(c *fiber.Ctx) (*model.TrainingSessionModel, error) {
	batchID, err := parseUintParam(c, "batch_id")
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	sessionID, err := parseUintParam(c, "session_id")
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	return service.FindSessionInBatch(c.UserContext(), ctrl.DB, batchID, sessionID)
}

// respondError memetakan taxonomy error service ke HTTP:
// ValidationError→422, not found→404, sisanya→500 (di-log).
func (ctrl *TrainingSessionController) respondError(c *fiber.Ctx, err error) error {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		return helper.ValidationError(c, ve.Message)
	case errors.Is(err, gorm.ErrRecordNotFound):
		return helper.NotFound(c)
	default:
		return helper.InternalError(c, err)
	}
}

func parseUintParam(c *fiber.Ctx, name string) (uint, error) {
	n, err := strconv.ParseUint(c.Params(name), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(n), nil
}

func isForeignKeyViolation(err error) bool {
	var e *pq.Error
	if errors.As(err, &e) {
		return e.Code == "23503"
	}
	return false
}
