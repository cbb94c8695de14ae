package migrations

import "gorm.io/gorm"

var addPhotoURLToInstructors = Migration{
	Version: 1712000300000,
	Name:    "add_photo_url_to_instructors",
	Up: func(tx *gorm.DB) error {
		return addColumnIfMissing(tx, "instructors", "photo_url", "VARCHAR(500)")
	},
	Down: func(tx *gorm.DB) error {
		return dropColumnIfExists(tx, "instructors", "photo_url")
	},
}
