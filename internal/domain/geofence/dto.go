package geofence

import (
	"strings"

	"github.com/RobertoAguirre/amn-backend-go/internal/pkg/geo"
	"github.com/RobertoAguirre/amn-backend-go/internal/pkg/validator"
)

type CreateZoneRequest struct {
	SiteID       string      `json:"site_id"`
	SiteName     string      `json:"site_name"`
	Kind         string      `json:"kind"`
	Center       *geo.Point  `json:"center,omitempty"`
	RadiusMeters *float64    `json:"radius_meters,omitempty"`
	Ring         []geo.Point `json:"ring,omitempty"`
}

func (r *CreateZoneRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.SiteID) {
		errs = append(errs, validator.ValidationError{
			Field:   "site_id",
			Message: "site_id is required",
		})
	}
	if validator.IsEmpty(r.SiteName) {
		errs = append(errs, validator.ValidationError{
			Field:   "site_name",
			Message: "site_name is required",
		})
	}
	if !validator.IsInSlice(r.Kind, ZoneKindValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "kind",
			Message: "kind must be one of: " + strings.Join(ZoneKindValues, ", "),
		})
	}

	switch ZoneKind(r.Kind) {
	case ZoneKindCircle:
		if r.Center == nil {
			errs = append(errs, validator.ValidationError{
				Field:   "center",
				Message: "center is required for circle zones",
			})
		} else {
			if !validator.IsValidLatitude(r.Center.Lat) {
				errs = append(errs, validator.ValidationError{
					Field:   "center.lat",
					Message: "latitude must be between -90 and 90",
				})
			}
			if !validator.IsValidLongitude(r.Center.Lng) {
				errs = append(errs, validator.ValidationError{
					Field:   "center.lng",
					Message: "longitude must be between -180 and 180",
				})
			}
		}
		if r.RadiusMeters == nil || *r.RadiusMeters <= 0 {
			errs = append(errs, validator.ValidationError{
				Field:   "radius_meters",
				Message: "radius_meters must be greater than zero",
			})
		}
	case ZoneKindPolygon:
		if len(r.Ring) < 3 {
			errs = append(errs, validator.ValidationError{
				Field:   "ring",
				Message: "polygon zones require at least 3 vertices",
			})
		}
		for _, p := range r.Ring {
			if !validator.IsValidLatitude(p.Lat) || !validator.IsValidLongitude(p.Lng) {
				errs = append(errs, validator.ValidationError{
					Field:   "ring",
					Message: "ring contains an out-of-range coordinate",
				})
				break
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ZoneResponse struct {
	ID           string      `json:"id"`
	SiteID       string      `json:"site_id"`
	SiteName     string      `json:"site_name"`
	Kind         string      `json:"kind"`
	Center       *geo.Point  `json:"center,omitempty"`
	RadiusMeters *float64    `json:"radius_meters,omitempty"`
	Ring         []geo.Point `json:"ring,omitempty"`
	CreatedAt    string      `json:"created_at"`
}
