package migrations

import "gorm.io/gorm"

var addGenderToUsers = Migration{
	Version: 1712000900000,
	Name:    "add_gender_to_users",
	Up: func(tx *gorm.DB) error {
		return addColumnIfMissing(tx, "users", "gender", "VARCHAR(20)")
	},
	Down: func(tx *gorm.DB) error {
		return dropColumnIfExists(tx, "users", "gender")
	},
}
