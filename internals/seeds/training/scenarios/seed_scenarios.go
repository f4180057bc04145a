package scenarios

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"pelatihanku_backend/internals/features/training/scenarios/model"
)

type ScenarioSeed struct {
	Description string            `json:"description"`
	Meta        datatypes.JSONMap `json:"meta"`
}

// SeedScenariosFromJSON mengisi tabel skenario (data referensi penilaian).
// Idempotent: deskripsi yang sudah ada dilewati.
func SeedScenariosFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var seeds []ScenarioSeed
	if err := json.Unmarshal(file, &seeds); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	var existing []string
	if err := db.Model(&model.TrainingScenarioModel{}).
		Pluck("description", &existing).Error; err != nil {
		log.Fatalf("❌ Gagal ambil skenario yang sudah ada: %v", err)
	}
	existingMap := make(map[string]bool, len(existing))
	for _, d := range existing {
		existingMap[d] = true
	}

	var newRows []model.TrainingScenarioModel
	for _, s := range seeds {
		if existingMap[s.Description] {
			log.Printf("ℹ️ Skenario '%s' sudah ada, dilewati.", s.Description)
			continue
		}
		newRows = append(newRows, model.TrainingScenarioModel{
			Description: s.Description,
			Meta:        s.Meta,
		})
	}

	if len(newRows) > 0 {
		if err := db.Create(&newRows).Error; err != nil {
			log.Fatalf("❌ Gagal insert skenario: %v", err)
		}
		log.Printf("✅ %d skenario berhasil di-seed.", len(newRows))
	} else {
		log.Println("ℹ️ Tidak ada skenario baru untuk di-seed.")
	}
}
