package ports

import "github.com/aalvaropc/calckit/internal/domain"

// WorksheetLoader loads worksheets from a source (e.g., filesystem).
type WorksheetLoader interface {
	LoadWorksheet(path string) (domain.Worksheet, error)
	ListWorksheets(root string) ([]domain.WorksheetRef, error)
}
