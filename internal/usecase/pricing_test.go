package usecase

import (
	"testing"

	"venue-booking/internal/data/entity"

	"github.com/stretchr/testify/assert"
)

func TestComputePrice(t *testing.T) {
	tests := []struct {
		name        string
		hall        entity.Hall
		pkg         entity.Package
		wantTotal   float64
		wantDeposit float64
	}{
		{"small hall basic package", entity.HallSmall, entity.PackageBasic, 4500, 450},
		{"small hall premium package", entity.HallSmall, entity.PackagePremium, 7000, 700},
		{"small hall luxury package", entity.HallSmall, entity.PackageLuxury, 10500, 1050},
		{"big hall basic package", entity.HallBig, entity.PackageBasic, 7500, 750},
		{"big hall premium package", entity.HallBig, entity.PackagePremium, 10000, 1000},
		{"big hall luxury package", entity.HallBig, entity.PackageLuxury, 13500, 1350},
		// Unrecognized values price as zero rather than failing
		{"unknown package", entity.HallSmall, entity.Package("deluxe"), 2000, 200},
		{"unknown hall", entity.Hall("medium"), entity.PackageBasic, 2500, 250},
		{"unknown both", entity.Hall("medium"), entity.Package("deluxe"), 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total, deposit := ComputePrice(tt.hall, tt.pkg)
			assert.Equal(t, tt.wantTotal, total)
			assert.Equal(t, tt.wantDeposit, deposit)
		})
	}
}
