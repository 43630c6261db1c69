package shacl

import (
	"regexp"

	"freightqa/internal/entity"
)

const _statusCancelled = "Cancelled"

var (
	bookingIDPattern = regexp.MustCompile(`^BK[0-9]{10}$`)

	ContainerTypes  = []string{"20GP", "40GP", "40HC", "45HC", "RF"}
	BookingStatuses = []string{"Confirmed", "Pending", "Cancelled", "Completed", "NoShow"}
)

func (v *Validator) ValidateBooking(rec *entity.Booking) *entity.ValidationResult {
	if rec == nil {
		rec = &entity.Booking{}
	}
	c := v.check(ShapeBooking)

	c.requiredPattern("bookingId", rec.BookingID, bookingIDPattern, msgBookingIDRequired, msgBookingIDFormat)
	c.requiredDate("bookingDate", rec.BookingDate, msgBookingDateRequired, msgBookingDateFormat)
	c.requiredRange("bookingQty", rec.BookingQty, 1, 10000, false, msgBookingQtyRequired, msgBookingQtyRange)

	c.required("containerType", rec.ContainerType, msgContainerTypeRequired)
	c.oneOf("containerType", rec.ContainerType, ContainerTypes, msgContainerTypeEnum)

	c.requiredRange("freightRate", rec.FreightRate, 0, 50000, true, msgFreightRateRequired, msgFreightRateRange)

	c.required("bookingStatus", rec.BookingStatus, msgBookingStatusRequired)
	c.oneOf("bookingStatus", rec.BookingStatus, BookingStatuses, msgBookingStatusEnum)

	c.required("shipperId", rec.ShipperID, msgBookingShipperRequired)
	c.required("routeCode", rec.RouteCode, msgBookingRouteRequired)

	if rec.BookingStatus != nil && *rec.BookingStatus == _statusCancelled && !present(rec.CancellationReason) {
		c.fail("cancellationReason", nil, msgCancellationReasonRequired)
	}

	return c.result()
}
