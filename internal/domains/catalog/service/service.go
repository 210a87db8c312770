package service

import (
	"epsec/internal/domains/catalog/model"
	gDto "epsec/shared/dto"
)

// relatedEntityLimit caps the hotels and packages embedded in a
// destination detail response.
const relatedEntityLimit = 50

func destinationRefFilter(destinationID, table string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.PackageFieldDestinationID,
				Operator: gDto.FilterOperatorEq,
				Value:    destinationID,
				Table:    table,
			},
		},
	}
}
