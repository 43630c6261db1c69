package shacl

import (
	"regexp"

	"freightqa/internal/entity"
)

var (
	routeCodePattern = regexp.MustCompile(`^RT[0-9]{3}$`)
	portPattern      = regexp.MustCompile(`^[A-Z]{3}$`)
)

func (v *Validator) ValidateRoute(rec *entity.Route) *entity.ValidationResult {
	if rec == nil {
		rec = &entity.Route{}
	}
	c := v.check(ShapeRoute)

	c.requiredPattern("routeCode", rec.RouteCode, routeCodePattern, msgRouteCodeRequired, msgRouteCodeFormat)
	c.requiredLength("routeName", rec.RouteName, 3, 100, msgRouteNameRequired, msgRouteNameLength)
	c.requiredPattern("originPort", rec.OriginPort, portPattern, msgOriginPortRequired, msgOriginPortFormat)
	c.requiredPattern("destinationPort", rec.DestinationPort, portPattern, msgDestinationPortRequired, msgDestinationPortFormat)

	if present(rec.OriginPort) && present(rec.DestinationPort) && *rec.OriginPort == *rec.DestinationPort {
		c.fail("", nil, msgPortsMustDiffer)
	}

	c.requiredRange("transitTime", rec.TransitTime, 1, 90, false, msgTransitTimeRequired, msgTransitTimeRange)
	c.requiredRange("baseRate", rec.BaseRate, 0, 50000, true, msgBaseRateRequired, msgBaseRateRange)

	return c.result()
}
