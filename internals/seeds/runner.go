package seeds

import (
	scenarios "pelatihanku_backend/internals/seeds/training/scenarios"

	"gorm.io/gorm"
)

func RunAllSeeds(db *gorm.DB) {
	//* Data referensi training
	scenarios.SeedScenariosFromJSON(db, "internals/seeds/training/scenarios/data_scenarios.json")
}
