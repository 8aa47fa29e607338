package request

import (
	"tutor-scheduling/internal/usecase/commands"

	"github.com/google/uuid"
)

type ReserveSlotRequest struct {
	ReservedBy uuid.UUID `json:"reservedBy" binding:"required"`
	SessionRef string    `json:"sessionRef" binding:"required,max=200"`
}

func (r *ReserveSlotRequest) ToInput(windowID uuid.UUID, ordinal int) commands.ReserveInput {
	return commands.ReserveInput{
		WindowID:   windowID,
		Ordinal:    ordinal,
		ReservedBy: r.ReservedBy,
		SessionRef: r.SessionRef,
	}
}
