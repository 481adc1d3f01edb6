package entity

import (
	"time"

	"gorm.io/gorm"

	"github.com/NecoOcean/sky-take-out/pkg/audit"
)

// Model is the shared base for audited catalog rows. CreatedBy/UpdatedBy are
// stamped from the actor bound to the request context; they stay zero for
// system/internal writes while the timestamps are always populated.
type Model struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	CreatedBy uint      `json:"createdBy"`
	UpdatedBy uint      `json:"updatedBy"`
}

func (m *Model) BeforeCreate(tx *gorm.DB) error {
	if id, ok := audit.ActorID(tx.Statement.Context); ok {
		m.CreatedBy = id
		m.UpdatedBy = id
	}
	return nil
}

func (m *Model) BeforeUpdate(tx *gorm.DB) error {
	if id, ok := audit.ActorID(tx.Statement.Context); ok {
		tx.Statement.SetColumn("updated_by", id)
	}
	return nil
}
