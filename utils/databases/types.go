package databases

import "gorm.io/gorm"

type SqlConnection interface {
	GetDB() *gorm.DB
	IsConnected() bool
	// Run opens the connection and migrates the given models.
	Run(models ...any) error
	Shutdown()
}
