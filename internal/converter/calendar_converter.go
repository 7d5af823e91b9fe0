package converter

import (
	"medicare-portal/internal/delivery/dto"
	"medicare-portal/internal/domain/entity"
)

// DayCellsToResponses converts calendar day cells to DTOs
func DayCellsToResponses(cells []entity.DayCell) []dto.DayCellResponse {
	responses := make([]dto.DayCellResponse, len(cells))
	for i, cell := range cells {
		responses[i] = dto.DayCellResponse{
			Date:             cell.Date,
			IsSelected:       cell.IsSelected,
			IsInCurrentMonth: cell.IsInCurrentMonth,
			IsUnavailable:    cell.IsUnavailable,
			HasAppointments:  cell.HasAppointments,
			AppointmentCount: cell.AppointmentCount,
		}
	}
	return responses
}
