package storage

import (
	"time"

	"github.com/marketscope-service/internal/domain"
)

// OwnParkID - сентинельный идентификатор собственного проекта.
// По нему миграция определяет, что шаблон уже посеян.
const OwnParkID = "park-own"

func ptr(v float64) *float64 { return &v }

// seedParks возвращает стартовый набор парков: шаблон собственного проекта
// и два конкурента для наглядного первого запуска
func seedParks(now time.Time) []domain.Park {
	createdAt := now.UnixMilli()

	return []domain.Park{
		ownParkTemplate(now),
		{
			ID:          "park-demo-1",
			Name:        "Tech Future Industrial Park",
			Address:     "101 Technology Avenue, North District",
			Description: "Grade A office campus focused on technology startups, with full amenities.",
			Tags:        []string{"tech", "grade-a"},
			Buildings: []domain.Building{
				{ID: "bld-demo-1a", Name: "Block A", Area: 25000},
				{ID: "bld-demo-1b", Name: "Block B", Area: 25000},
			},
			TotalArea: 50000,
			CreatedAt: createdAt,
		},
		{
			ID:          "park-demo-2",
			Name:        "Green Valley Business Center",
			Address:     "88 Ecology Road, West District",
			Description: "Low-density garden-style office park, well suited to creative tenants.",
			Tags:        []string{"eco", "low-density"},
			Buildings: []domain.Building{
				{ID: "bld-demo-2a", Name: "Building 1", Area: 12000},
				{ID: "bld-demo-2b", Name: "Building 2", Area: 11000},
				{ID: "bld-demo-2c", Name: "Building 3", Area: 12000},
			},
			TotalArea: 35000,
			CreatedAt: createdAt,
		},
	}
}

// ownParkTemplate - шаблон собственного проекта, досевается миграцией
// в существующие коллекции без сентинеля
func ownParkTemplate(now time.Time) domain.Park {
	return domain.Park{
		ID:          OwnParkID,
		Name:        "Own Project",
		Address:     "",
		Description: "Template for your own park. Edit the name, address and buildings to match.",
		Buildings:   []domain.Building{},
		TotalArea:   0,
		CreatedAt:   now.UnixMilli(),
		IsOwnPark:   true,
	}
}

func seedSurveys(now time.Time) []domain.SurveyRecord {
	base := now.UnixMilli()

	return []domain.SurveyRecord{
		{
			ID:                "survey-demo-1",
			ParkID:            "park-demo-1",
			BuildingID:        "bld-demo-1a",
			Date:              "2023-08-15",
			OccupancyRate:     85,
			RentPrice:         ptr(4.2),
			Commission:        "1 month",
			DeliveryStandard:  "Fitted",
			Photos:            []string{},
			ResponsiblePerson: "Manager Zhang",
			MarketAnalysis:    "Enquiries are up noticeably since the nearby metro station opened.",
			SignificantEvents: "Metro line 10 exit opened, foot traffic increased significantly.",
			Timestamp:         base - 10000000,
		},
		{
			ID:                "survey-demo-2",
			ParkID:            "park-demo-1",
			BuildingID:        "bld-demo-1a",
			Date:              "2023-10-01",
			OccupancyRate:     88,
			RentPrice:         ptr(4.5),
			Commission:        "0.8 months",
			DeliveryStandard:  "Fitted",
			Photos:            []string{},
			ResponsiblePerson: "Manager Zhang",
			MarketAnalysis:    "Occupancy climbing steadily, commission policy tightened.",
			Timestamp:         base - 5000000,
		},
		{
			ID:                "survey-demo-3",
			ParkID:            "park-demo-2",
			BuildingID:        "bld-demo-2a",
			Date:              "2023-09-20",
			OccupancyRate:     72,
			RentPrice:         ptr(3.8),
			Commission:        "1.5 months",
			DeliveryStandard:  "Bare shell",
			Photos:            []string{},
			ResponsiblePerson: "Agent Li",
			MarketAnalysis:    "Absorption is slow due to location, channel promotion needs reinforcing.",
			SignificantEvents: "Park canteen opened for trial operation, well received by tenants.",
			Timestamp:         base - 6000000,
		},
	}
}
