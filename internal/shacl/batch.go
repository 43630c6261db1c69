package shacl

import (
	"freightqa/internal/entity"

	"golang.org/x/sync/errgroup"
)

// ValidateBatch validates every record of every list. The lists are
// validated concurrently; results keep the order of their input list.
func (v *Validator) ValidateBatch(req *entity.BatchRequest) *entity.BatchResult {
	if req == nil {
		req = &entity.BatchRequest{}
	}

	res := &entity.BatchResult{
		Shippers:    make([]*entity.ValidationResult, len(req.Shippers)),
		Bookings:    make([]*entity.ValidationResult, len(req.Bookings)),
		Predictions: make([]*entity.ValidationResult, len(req.Predictions)),
		Routes:      make([]*entity.ValidationResult, len(req.Routes)),
	}

	var eg errgroup.Group
	eg.Go(func() error {
		for i, rec := range req.Shippers {
			res.Shippers[i] = v.ValidateShipper(rec)
		}
		return nil
	})
	eg.Go(func() error {
		for i, rec := range req.Bookings {
			res.Bookings[i] = v.ValidateBooking(rec)
		}
		return nil
	})
	eg.Go(func() error {
		for i, rec := range req.Predictions {
			res.Predictions[i] = v.ValidatePrediction(rec)
		}
		return nil
	})
	eg.Go(func() error {
		for i, rec := range req.Routes {
			res.Routes[i] = v.ValidateRoute(rec)
		}
		return nil
	})
	_ = eg.Wait()

	res.OverallValid = true
	res.Each(func(_ entity.Kind, _ int, r *entity.ValidationResult) {
		if !r.IsValid {
			res.OverallValid = false
		}
	})

	return res
}
