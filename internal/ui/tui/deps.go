package tui

import (
	"log/slog"

	"github.com/aalvaropc/calckit/internal/domain"
	"github.com/aalvaropc/calckit/internal/ports"
	"github.com/aalvaropc/calckit/internal/usecase"
)

type Deps struct {
	WorkspaceLocator     ports.WorkspaceLocator
	WorkspaceInitializer ports.WorkspaceInitializer

	Calculate *usecase.Calculate

	// Start opens a calculator directly instead of the catalog.
	Start domain.CalculatorID
	// Precision is the number of decimals for plain measures.
	Precision int

	Logger *slog.Logger
	Debug  bool
}
