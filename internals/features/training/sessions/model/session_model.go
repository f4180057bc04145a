package model

import (
	"time"

	providerModel "pelatihanku_backend/internals/features/training/providers/model"
	userModel "pelatihanku_backend/internals/features/training/users/model"
)

// SessionStatus membuat state machine sesi eksplisit. Secara fisik state
// tetap disimpan sebagai kolom signature_url nullable: NULL = open.
type SessionStatus string

const (
	SessionOpen   SessionStatus = "open"
	SessionClosed SessionStatus = "closed"
)

// TrainingSessionModel: satu event pelatihan yang dipimpin trainer di satu
// cabang provider. Setelah closed (tanda tangan terpasang), comments,
// signature_url, dan koleksi asisten tidak boleh berubah lagi.
type TrainingSessionModel struct {
	ID uint `gorm:"primaryKey;column:id" json:"id"`

	TeacherID        uint `gorm:"column:teacher_id;not null" json:"teacher_id"`
	TrainingBatchID  uint `gorm:"column:training_batch_id;not null;index" json:"training_batch_id"`
	ProviderBranchID uint `gorm:"column:provider_branch_id;not null" json:"provider_branch_id"`

	Latitude  float64 `gorm:"column:latitude" json:"latitude"`
	Longitude float64 `gorm:"column:longitude" json:"longitude"`

	Comments     *string `gorm:"column:comments;size:512" json:"comments"`
	SignatureURL *string `gorm:"column:signature_url" json:"signature_url"`

	Teacher    userModel.UserModel             `gorm:"foreignKey:TeacherID" json:"teacher,omitempty"`
	Assistants []TrainingSessionAssistantModel `gorm:"foreignKey:TrainingSessionID" json:"assistants,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (TrainingSessionModel) TableName() string { return "training_sessions" }

func (m *TrainingSessionModel) Status() SessionStatus {
	if m.SignatureURL != nil {
		return SessionClosed
	}
	return SessionOpen
}

func (m *TrainingSessionModel) IsCompleted() bool { return m.Status() == SessionClosed }

// TrainingSessionAssistantModel: partisipasi satu employee di satu sesi.
// Employee-nya harus milik cabang provider sesi tersebut.
type TrainingSessionAssistantModel struct {
	ID uint `gorm:"primaryKey;column:id" json:"id"`

	TrainingSessionID        uint `gorm:"column:training_session_id;not null;index" json:"training_session_id"`
	ProviderBranchEmployeeID uint `gorm:"column:provider_branch_employee_id;not null" json:"provider_branch_employee_id"`

	Employee providerModel.ProviderBranchEmployeeModel `gorm:"foreignKey:ProviderBranchEmployeeID" json:"employee,omitempty"`
	Scores   []TrainingSessionAssistantScoreModel      `gorm:"foreignKey:TrainingSessionAssistantID" json:"scores,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (TrainingSessionAssistantModel) TableName() string { return "training_session_assistants" }

// TrainingSessionAssistantScoreModel: nilai satu skenario untuk satu asisten,
// write-once. Unique index (assistant, scenario) menolak duplikat dalam batch.
type TrainingSessionAssistantScoreModel struct {
	ID uint `gorm:"primaryKey;column:id" json:"id"`

	TrainingSessionAssistantID uint `gorm:"column:training_session_assistant_id;not null;uniqueIndex:uq_assistant_scenario" json:"training_session_assistant_id"`
	TrainingScenarioID         uint `gorm:"column:training_scenario_id;not null;uniqueIndex:uq_assistant_scenario" json:"training_scenario_id"`

	Score int `gorm:"column:score;not null" json:"score"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (TrainingSessionAssistantScoreModel) TableName() string {
	return "training_session_assistant_scores"
}
