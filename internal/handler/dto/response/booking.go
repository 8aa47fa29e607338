package response

import (
	"time"

	"tutor-scheduling/internal/domain/scheduling"
	"tutor-scheduling/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID          string     `json:"id"`
	WindowID    string     `json:"windowId"`
	Ordinal     int        `json:"ordinal"`
	ReservedBy  string     `json:"reservedBy"`
	SessionRef  string     `json:"sessionRef"`
	Status      string     `json:"status"`
	ReservedAt  time.Time  `json:"reservedAt"`
	CancelledAt *time.Time `json:"cancelledAt,omitempty"`
}

var uuidToString = copier.TypeConverter{
	SrcType: uuid.UUID{},
	DstType: copier.String,
	Fn: func(src any) (any, error) {
		return src.(uuid.UUID).String(), nil
	},
}

func FromBooking(b scheduling.Booking) *BookingResponse {
	res := &BookingResponse{}
	// only fails on mismatched field types, which the converter covers
	_ = copier.CopyWithOption(res, &b, copier.Option{Converters: []copier.TypeConverter{uuidToString}})
	return res
}

type ReserveResponse struct {
	Booking  *BookingResponse `json:"booking"`
	Slot     SlotResponse     `json:"slot"`
	Replayed bool             `json:"replayed"`
}

func FromReserveResult(r *commands.ReserveResult) *ReserveResponse {
	return &ReserveResponse{
		Booking:  FromBooking(r.Booking),
		Slot:     FromSlot(r.Slot),
		Replayed: r.Replayed,
	}
}
