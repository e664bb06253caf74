package create_appointment

import (
	"fmt"
	"strings"

	"github.com/m04kA/MDT-ScheduleService/internal/domain"
	"github.com/m04kA/MDT-ScheduleService/internal/integrations/caseservice"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CaseID <= 0 {
		return fmt.Errorf("%w: caseID must be positive", ErrInvalidInput)
	}

	if req.CallerID <= 0 {
		return fmt.Errorf("%w: callerID must be positive", ErrInvalidInput)
	}

	if req.Start.IsZero() || req.End.IsZero() {
		return fmt.Errorf("%w: start and end are required", ErrInvalidInput)
	}

	if !req.End.After(req.Start) {
		return ErrInvalidInterval
	}

	if req.Note != nil && len(*req.Note) > domain.MaxAppointmentNoteLength {
		return fmt.Errorf("%w: note exceeds %d characters", ErrInvalidInput, domain.MaxAppointmentNoteLength)
	}

	return nil
}

// validateCaseAccess проверяет, что дело допускает бронирование и что
// вызывающий является одной из его сторон
func validateCaseAccess(caseRecord *caseservice.Case, callerID int64) error {
	if !caseRecord.IsAssigned() {
		return ErrCaseNotBookable
	}

	if !caseRecord.IsParty(callerID) {
		return ErrNotCaseParty
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
