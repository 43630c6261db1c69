package entity

type Booking struct {
	BookingID          *string  `json:"bookingId,omitempty"          yaml:"bookingId,omitempty"`
	BookingDate        *string  `json:"bookingDate,omitempty"        yaml:"bookingDate,omitempty"`
	BookingQty         *float64 `json:"bookingQty,omitempty"         yaml:"bookingQty,omitempty"`
	ContainerType      *string  `json:"containerType,omitempty"      yaml:"containerType,omitempty"`
	FreightRate        *float64 `json:"freightRate,omitempty"        yaml:"freightRate,omitempty"`
	BookingStatus      *string  `json:"bookingStatus,omitempty"      yaml:"bookingStatus,omitempty"`
	ShipperID          *string  `json:"shipperId,omitempty"          yaml:"shipperId,omitempty"`
	RouteCode          *string  `json:"routeCode,omitempty"          yaml:"routeCode,omitempty"`
	CancellationReason *string  `json:"cancellationReason,omitempty" yaml:"cancellationReason,omitempty"`
}

func (b *Booking) SubjectKey() string {
	if b == nil {
		return ""
	}
	return deref(b.BookingID)
}
