package track_now

import (
	"fmt"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CompanyID <= 0 {
		return fmt.Errorf("%w: companyID must be positive", ErrInvalidInput)
	}

	if req.BranchID != nil && *req.BranchID <= 0 {
		return fmt.Errorf("%w: branchID must be positive", ErrInvalidInput)
	}

	switch req.Scope {
	case "":
		req.Scope = ScopeDay
	case ScopeDay, ScopeWeek:
	default:
		return fmt.Errorf("%w: unknown scope %q", ErrInvalidInput, req.Scope)
	}

	if req.Density != nil && (*req.Density <= 0 || *req.Density > domain.MaxDensityFactor) {
		return fmt.Errorf("%w: density must be in (0,%v]", ErrInvalidInput, domain.MaxDensityFactor)
	}

	return nil
}
