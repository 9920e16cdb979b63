package sqlstore

import (
	"github.com/jsamuelsen/quotation-service/internal/domain"
)

const tableName = "quotation_requests"

// updatableColumns are replaced as a whole on update.
var updatableColumns = []string{"customer_name", "title", "due_date", "type", "status"}

// Table maps one quotation request row.
type Table struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	CustomerName string `gorm:"size:255;not null"`
	Title        string `gorm:"size:255;not null"`
	DueDate      string `gorm:"type:char(10);not null"`
	Type         string `gorm:"size:16;not null"`
	Status       string `gorm:"size:16;not null"`
}

// TableName implements gorm's tabler interface.
func (Table) TableName() string {
	return tableName
}

func fromFields(f domain.QuotationFields) Table {
	return Table{
		CustomerName: f.CustomerName,
		Title:        f.Title,
		DueDate:      f.DueDate,
		Type:         string(f.Type),
		Status:       string(f.Status),
	}
}

func (t *Table) toDomain() *domain.QuotationRequest {
	return &domain.QuotationRequest{
		ID: t.ID,
		QuotationFields: domain.QuotationFields{
			CustomerName: t.CustomerName,
			Title:        t.Title,
			DueDate:      t.DueDate,
			Type:         domain.QuotationType(t.Type),
			Status:       domain.QuotationStatus(t.Status),
		},
	}
}
