package request

import (
	"time"

	"gorm.io/gorm"

	"reqtrack/internal/user"
)

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

type Request struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:120;not null" json:"title"`
	Description string    `gorm:"not null" json:"description"`
	Status      Status    `gorm:"type:varchar(10);not null;default:'Pending'" json:"status"`
	UserID      uint      `gorm:"index;not null" json:"user_id"`
	Owner       user.User `gorm:"foreignKey:UserID" json:"-"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ListAll returns every request in insertion order, owners included.
// Admin dashboard view.
func ListAll(db *gorm.DB) ([]Request, error) {
	var reqs []Request
	err := db.Preload("Owner").Order("id").Find(&reqs).Error
	return reqs, err
}

// ListOwnedBy returns only the requests submitted by the given user.
func ListOwnedBy(db *gorm.DB, userID uint) ([]Request, error) {
	var reqs []Request
	err := db.Where("user_id = ?", userID).Order("id").Find(&reqs).Error
	return reqs, err
}

func FindByID(db *gorm.DB, id uint) (Request, error) {
	var req Request
	err := db.First(&req, id).Error
	return req, err
}

// Decide sets the request status. Re-deciding overwrites the previous
// verdict; no transition history is kept.
func (r *Request) Decide(db *gorm.DB, verdict Status) error {
	if err := db.Model(r).Update("status", verdict).Error; err != nil {
		return err
	}
	r.Status = verdict
	return nil
}
