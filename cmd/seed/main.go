package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"seatwise/internal/constraints"
	"seatwise/internal/guests"
	"seatwise/internal/plans"
	"seatwise/internal/shared/config"
	"seatwise/internal/shared/database"
	"seatwise/internal/tables"
	"seatwise/pkg/logger"
)

// Seeds a demo wedding: a guest list with VIPs and plus-ones, one
// seating plan with tables and a ceremony chair row, and a few
// constraints to exercise the solver and the conflict panel.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	log := logger.New()
	logger.SetDefault(log)

	db, err := database.InitDB(cfg)
	if err != nil {
		log.WithError(err).Error("Failed to initialize databases")
		os.Exit(1)
	}
	defer db.Close()

	ctx := context.Background()
	gdb := db.GetPostgreSQL()

	weddingID := uuid.New()

	guestDefs := []struct {
		first, last string
		category    guests.GuestCategory
		vip         bool
	}{
		{"Emma", "Bennett", guests.CategoryFamilyBride, true},
		{"Oliver", "Bennett", guests.CategoryFamilyBride, true},
		{"Sofia", "Hale", guests.CategoryFamilyGroom, true},
		{"Lucas", "Hale", guests.CategoryFamilyGroom, false},
		{"Mia", "Torres", guests.CategoryFriendsBride, false},
		{"Ethan", "Park", guests.CategoryFriendsBride, false},
		{"Ava", "Novak", guests.CategoryFriendsGroom, false},
		{"Noah", "Lindt", guests.CategoryFriendsGroom, false},
		{"Grace", "Okafor", guests.CategoryColleaguesBride, false},
		{"Felix", "Brandt", guests.CategoryColleaguesGroom, false},
		{"Harper", "Quinn", guests.CategoryOther, false},
	}

	guestRows := make([]guests.Guest, 0, len(guestDefs)+1)
	for _, def := range guestDefs {
		guestRows = append(guestRows, guests.Guest{
			ID:         uuid.New(),
			WeddingID:  weddingID,
			FirstName:  def.first,
			LastName:   def.last,
			Category:   def.category,
			IsVip:      def.vip,
			RSVPStatus: "attending",
		})
	}

	// Mia brings a plus-one
	plusOne := guests.Guest{
		ID:         uuid.New(),
		WeddingID:  weddingID,
		FirstName:  "Jordan",
		LastName:   "Reyes",
		Category:   guests.CategoryFriendsBride,
		PlusOneOf:  &guestRows[4].ID,
		RSVPStatus: "attending",
	}
	guestRows = append(guestRows, plusOne)

	if err := gdb.WithContext(ctx).Create(&guestRows).Error; err != nil {
		log.WithError(err).Error("Failed to seed guests")
		os.Exit(1)
	}

	plan := plans.SeatingPlan{
		ID:          uuid.New(),
		WeddingID:   weddingID,
		Name:        "Reception - Main Hall",
		Description: "Demo layout seeded for local development",
		IsActive:    true,
		Version:     1,
		VenueLayout: plans.VenueLayout{
			CanvasWidth:  2000,
			CanvasHeight: 1400,
			Areas: []plans.CustomArea{
				{ID: uuid.NewString(), Type: plans.AreaDanceFloor, Label: "Dance Floor", X: 800, Y: 500, Width: 400, Height: 400},
				{ID: uuid.NewString(), Type: plans.AreaGiftTable, Label: "Gifts", X: 100, Y: 100, Width: 150, Height: 80},
			},
		},
	}
	if err := gdb.WithContext(ctx).Create(&plan).Error; err != nil {
		log.WithError(err).Error("Failed to seed plan")
		os.Exit(1)
	}

	tableDefs := []struct {
		name     string
		shape    tables.TableShape
		capacity int
		x, y     float64
		vip      bool
		head     bool
	}{
		{"Head Table", tables.ShapeRectangular, 6, 1000, 200, true, true},
		{"Table 1", tables.ShapeRound, 8, 400, 800, false, false},
		{"Table 2", tables.ShapeRound, 8, 1000, 1000, false, false},
		{"Table 3", tables.ShapeSquare, 4, 1600, 800, false, false},
	}

	totalSeats := 0
	for _, def := range tableDefs {
		table := tables.Table{
			ID:          uuid.New(),
			PlanID:      plan.ID,
			Name:        def.name,
			Shape:       def.shape,
			Size:        tables.SizeClassForCapacity(def.capacity),
			Capacity:    def.capacity,
			Position:    tables.Position{X: def.x, Y: def.y},
			IsVip:       def.vip,
			IsHeadTable: def.head,
		}
		if def.head {
			table.HeadSeats = 2
		}
		seats := tables.GenerateSeats(&table)
		if err := gdb.WithContext(ctx).Create(&table).Error; err != nil {
			log.WithError(err).Error("Failed to seed table")
			os.Exit(1)
		}
		if err := gdb.WithContext(ctx).Create(&seats).Error; err != nil {
			log.WithError(err).Error("Failed to seed seats")
			os.Exit(1)
		}
		totalSeats += def.capacity
	}

	row := tables.ChairRow{
		ID:          uuid.New(),
		PlanID:      plan.ID,
		Name:        "Ceremony Row A",
		Orientation: tables.OrientationHorizontal,
		Rows:        2,
		Columns:     6,
		Position:    tables.Position{X: 300, Y: 1200},
	}
	chairSeats := tables.GenerateChairSeats(&row)
	if err := gdb.WithContext(ctx).Create(&row).Error; err != nil {
		log.WithError(err).Error("Failed to seed chair row")
		os.Exit(1)
	}
	if err := gdb.WithContext(ctx).Create(&chairSeats).Error; err != nil {
		log.WithError(err).Error("Failed to seed chair seats")
		os.Exit(1)
	}

	constraintRows := []constraints.SeatingConstraint{
		{
			ID:       uuid.New(),
			PlanID:   plan.ID,
			Type:     constraints.MustSitTogether,
			GuestIDs: constraints.GuestIDList{guestRows[0].ID, guestRows[1].ID},
			Priority: constraints.PriorityRequired,
			IsActive: true,
			Note:     "Bride's parents sit together",
		},
		{
			ID:       uuid.New(),
			PlanID:   plan.ID,
			Type:     constraints.CannotSitTogether,
			GuestIDs: constraints.GuestIDList{guestRows[8].ID, guestRows[9].ID},
			Priority: constraints.PriorityHigh,
			IsActive: true,
			Note:     "Keep the rival departments apart",
		},
		{
			ID:       uuid.New(),
			PlanID:   plan.ID,
			Type:     constraints.VipTable,
			GuestIDs: constraints.GuestIDList{guestRows[2].ID},
			Priority: constraints.PriorityMedium,
			IsActive: true,
		},
	}
	if err := gdb.WithContext(ctx).Create(&constraintRows).Error; err != nil {
		log.WithError(err).Error("Failed to seed constraints")
		os.Exit(1)
	}

	if err := gdb.WithContext(ctx).Model(&plans.SeatingPlan{}).
		Where("id = ?", plan.ID).
		Updates(map[string]interface{}{
			"total_seats":     totalSeats,
			"available_seats": totalSeats,
		}).Error; err != nil {
		log.WithError(err).Error("Failed to update plan totals")
		os.Exit(1)
	}

	fmt.Printf("Seeded demo wedding %s with plan %s (%d guests, %d seats)\n",
		weddingID, plan.ID, len(guestRows), totalSeats)
}
