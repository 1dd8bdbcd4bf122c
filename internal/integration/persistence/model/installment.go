package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/budget-ledger/backend/internal/domain/entity"
)

// InstallmentModel represents the installment_plans table in the database.
type InstallmentModel struct {
	ID                string          `gorm:"type:varchar(36);primaryKey"`
	Position          int             `gorm:"not null;index"`
	Description       string          `gorm:"type:varchar(255)"`
	TotalAmount       decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	TotalInstallments int             `gorm:"not null"`
	InstallmentsPaid  int             `gorm:"not null;default:0"`
	OpenedAt          *time.Time
}

// TableName returns the table name for the InstallmentModel.
func (InstallmentModel) TableName() string {
	return "installment_plans"
}

// ToEntity converts an InstallmentModel to a domain InstallmentPlan entity.
func (m *InstallmentModel) ToEntity() entity.InstallmentPlan {
	plan := entity.InstallmentPlan{
		ID:                m.ID,
		Description:       m.Description,
		TotalAmount:       m.TotalAmount,
		TotalInstallments: m.TotalInstallments,
		InstallmentsPaid:  m.InstallmentsPaid,
	}
	if m.OpenedAt != nil {
		plan.CreatedAt = m.OpenedAt.UTC()
	}
	return plan
}

// InstallmentFromEntity creates an InstallmentModel from a domain InstallmentPlan entity.
func InstallmentFromEntity(p entity.InstallmentPlan, position int) *InstallmentModel {
	var openedAt *time.Time
	if !p.CreatedAt.IsZero() {
		t := p.CreatedAt.UTC()
		openedAt = &t
	}

	return &InstallmentModel{
		ID:                p.ID,
		Position:          position,
		Description:       p.Description,
		TotalAmount:       p.TotalAmount,
		TotalInstallments: p.TotalInstallments,
		InstallmentsPaid:  p.InstallmentsPaid,
		OpenedAt:          openedAt,
	}
}
