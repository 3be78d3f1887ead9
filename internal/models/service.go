package models

import "strings"

// Service codes as sent by the booking form.
const (
	ServiceManicure = "manicura"
	ServicePedicure = "pedicura"
	ServiceNailArt  = "nailart"
	ServiceGel      = "gel"
)

// Services lists the bookable services in display order.
var Services = []string{ServiceManicure, ServicePedicure, ServiceNailArt, ServiceGel}

var serviceAliases = map[string]string{
	"manicure": ServiceManicure,
	"pedicure": ServicePedicure,
	"nail_art": ServiceNailArt,
}

// NormalizeService lowercases the code and maps English aliases onto the form codes.
func NormalizeService(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if canonical, ok := serviceAliases[code]; ok {
		return canonical
	}
	return code
}

// IsKnownService reports whether code is one of Services.
func IsKnownService(code string) bool {
	for _, s := range Services {
		if s == code {
			return true
		}
	}
	return false
}

// ServicePrice is one row of the price catalogue.
// swagger:model ServicePrice
type ServicePrice struct {
	// Service code
	// example: manicura
	Service string `json:"servicio"`

	// Base price in currency units
	// example: 25000
	Price int64 `json:"precio"`

	// Whether the hands+feet combo discount applies
	// example: true
	ComboDiscount bool `json:"descuento_manos_pies"`
}
