package add_availability

import (
	"fmt"
	"strings"

	"github.com/m04kA/MDT-ScheduleService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.MediatorID <= 0 {
		return fmt.Errorf("%w: mediatorID must be positive", ErrInvalidInput)
	}

	if req.Role != domain.RoleMediator {
		return ErrMediatorOnly
	}

	if req.Start.IsZero() || req.End.IsZero() {
		return fmt.Errorf("%w: start and end are required", ErrInvalidInput)
	}

	if !req.End.After(req.Start) {
		return ErrInvalidInterval
	}

	if req.Note != nil && len(*req.Note) > domain.MaxWindowNoteLength {
		return fmt.Errorf("%w: note exceeds %d characters", ErrInvalidInput, domain.MaxWindowNoteLength)
	}

	return nil
}

// normalizeNote обрезает пробелы; пустое примечание превращается в nil
func normalizeNote(note *string) *string {
	if note == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*note)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
