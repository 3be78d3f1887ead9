// Package pricing maps a service selection to its price.
package pricing

import "github.com/sbilibin2017/nailstudio-booking/internal/models"

var basePrices = map[string]int64{
	models.ServiceManicure: 25000,
	models.ServicePedicure: 30000,
	models.ServiceNailArt:  35000,
	models.ServiceGel:      40000,
}

// comboDiscounted lists the services discounted when the hands+feet combo is selected.
var comboDiscounted = map[string]struct{}{
	models.ServiceManicure: {},
	models.ServicePedicure: {},
}

// Price returns the price for service, applying a 10% discount when
// handsAndFeet is set on a manicure or pedicure. Unknown services cost 0.
func Price(service string, handsAndFeet bool) int64 {
	base := basePrices[service]
	if _, ok := comboDiscounted[service]; ok && handsAndFeet {
		return base * 9 / 10
	}
	return base
}

// Catalog returns the price table in display order.
func Catalog() []models.ServicePrice {
	catalog := make([]models.ServicePrice, 0, len(models.Services))
	for _, s := range models.Services {
		_, combo := comboDiscounted[s]
		catalog = append(catalog, models.ServicePrice{
			Service:       s,
			Price:         basePrices[s],
			ComboDiscount: combo,
		})
	}
	return catalog
}
