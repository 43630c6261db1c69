package entity

type Route struct {
	RouteCode       *string  `json:"routeCode,omitempty"       yaml:"routeCode,omitempty"`
	RouteName       *string  `json:"routeName,omitempty"       yaml:"routeName,omitempty"`
	OriginPort      *string  `json:"originPort,omitempty"      yaml:"originPort,omitempty"`
	DestinationPort *string  `json:"destinationPort,omitempty" yaml:"destinationPort,omitempty"`
	TransitTime     *float64 `json:"transitTime,omitempty"     yaml:"transitTime,omitempty"`
	BaseRate        *float64 `json:"baseRate,omitempty"        yaml:"baseRate,omitempty"`
}

func (r *Route) SubjectKey() string {
	if r == nil {
		return ""
	}
	return deref(r.RouteCode)
}
