// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Positional argument names of the carcert contract asset. CreateAsset and
// UpdateAsset take all of them in this order; ReadAsset, DeleteAsset and
// AssetExists take only the ID.
const (
	AssetFieldID                 = "ID"
	AssetFieldCar                = "Car"
	AssetFieldBrand              = "Brand"
	AssetFieldProductionDate     = "ProductionDate"
	AssetFieldProductionLocation = "ProductionLocation"
	AssetFieldDescription        = "Description"
)

// AssetFields lists the asset argument names in contract order.
var AssetFields = []string{
	AssetFieldID,
	AssetFieldCar,
	AssetFieldBrand,
	AssetFieldProductionDate,
	AssetFieldProductionLocation,
	AssetFieldDescription,
}

// Asset is a car-part certificate as passed to the contract. The client
// never validates it; the contract owns the rules.
type Asset struct {
	ID                 string
	Car                string
	Brand              string
	ProductionDate     string
	ProductionLocation string
	Description        string
}

// Args returns the asset as the positional argument list of CreateAsset and
// UpdateAsset.
func (a Asset) Args() []string {
	return []string{a.ID, a.Car, a.Brand, a.ProductionDate, a.ProductionLocation, a.Description}
}
