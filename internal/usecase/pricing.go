package usecase

import (
	"venue-booking/internal/data/entity"
)

// Price table in whole currency units.
var (
	packagePrices = map[entity.Package]float64{
		entity.PackageBasic:   2500,
		entity.PackagePremium: 5000,
		entity.PackageLuxury:  8500,
	}

	hallPrices = map[entity.Hall]float64{
		entity.HallSmall: 2000,
		entity.HallBig:   5000,
	}
)

const depositRate = 0.10

// ComputePrice maps (hall, package) to the total price and the deposit.
// An unrecognized hall or package contributes 0 rather than failing; the
// request layer rejects unknown values before they get here, but the
// zero default is kept as the pricing policy.
func ComputePrice(hall entity.Hall, pkg entity.Package) (total, deposit float64) {
	total = packagePrices[pkg] + hallPrices[hall]
	deposit = total * depositRate
	return total, deposit
}
