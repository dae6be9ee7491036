package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	dbgen "github.com/hostelhub/hostelhub/internal/db/generated"
)

// Fixed ids make a second seed run trip the primary key instead of
// duplicating data.
const demoHostelID = "demo-hostel"

func demoNow() time.Time {
	return time.Now().UTC().Truncate(time.Hour)
}

func amount(v float64) sql.NullFloat64 {
	return sql.NullFloat64{Float64: v, Valid: true}
}

type demoRoom struct {
	number string
	floor  int64
	status string
	price  float64
}

type demoUser struct {
	key  string
	name string
	role string
}

type demoBooking struct {
	room     string
	guest    string
	status   string
	daysAgo  int
	nights   int
	paid     string // payment method; empty means no payment
	paidDone bool
}

func seedDemo(ctx context.Context, q *dbgen.Queries, now time.Time) error {
	if err := q.CreateHostel(ctx, dbgen.CreateHostelParams{ID: demoHostelID, Name: "Harbour House"}); err != nil {
		return fmt.Errorf("create hostel: %w", err)
	}

	rooms := []demoRoom{
		{"101", 1, "OCCUPIED", 35},
		{"102", 1, "AVAILABLE", 35},
		{"103", 1, "OCCUPIED", 40},
		{"104", 1, "MAINTENANCE", 40},
		{"201", 2, "AVAILABLE", 55},
		{"202", 2, "OCCUPIED", 55},
	}
	for _, room := range rooms {
		err := q.CreateRoom(ctx, dbgen.CreateRoomParams{
			ID:            demoID("room", room.number),
			HostelID:      demoHostelID,
			RoomNumber:    room.number,
			Floor:         room.floor,
			Status:        room.status,
			PricePerNight: room.price,
		})
		if err != nil {
			return fmt.Errorf("create room %s: %w", room.number, err)
		}
	}

	users := []demoUser{
		{"admin", "Ana Admin", "ADMIN"},
		{"warden", "Wes Warden", "WARDEN"},
		{"staff-1", "Sam Staff", "STAFF"},
		{"staff-2", "Sol Staff", "STAFF"},
		{"guest-1", "Gia Guest", "GUEST"},
		{"guest-2", "Gus Guest", "GUEST"},
		{"guest-3", "Gem Guest", "GUEST"},
		{"guest-4", "Gil Guest", "GUEST"},
	}
	for _, user := range users {
		err := q.CreateUser(ctx, dbgen.CreateUserParams{
			ID:       demoID("user", user.key),
			Name:     user.name,
			Email:    user.key + "@harbourhouse.example",
			Role:     user.role,
			HostelID: sql.NullString{String: demoHostelID, Valid: true},
		})
		if err != nil {
			return fmt.Errorf("create user %s: %w", user.key, err)
		}
	}

	bookings := []demoBooking{
		{"101", "guest-1", "CHECKED_IN", 1, 4, "CARD", true},
		{"103", "guest-2", "CHECKED_IN", 0, 2, "CASH", true},
		{"202", "guest-3", "CONFIRMED", 0, 3, "", false},
		{"201", "guest-4", "CHECKED_OUT", 12, 5, "BANK_TRANSFER", true},
		{"102", "guest-1", "CHECKED_OUT", 40, 3, "CARD", true},
		{"202", "guest-2", "CHECKED_OUT", 75, 7, "CARD", true},
		{"103", "guest-3", "CANCELLED", 20, 2, "CARD", false},
		{"101", "guest-4", "PENDING", 2, 1, "", false},
		{"201", "guest-1", "CHECKED_OUT", 130, 4, "CASH", true},
	}
	for i, b := range bookings {
		checkin := now.AddDate(0, 0, -b.daysAgo)
		var price float64
		for _, room := range rooms {
			if room.number == b.room {
				price = room.price * float64(b.nights)
			}
		}
		bookingID := demoID("booking", fmt.Sprint(i+1))
		err := q.CreateBooking(ctx, dbgen.CreateBookingParams{
			ID:        bookingID,
			HostelID:  demoHostelID,
			RoomID:    demoID("room", b.room),
			UserID:    demoID("user", b.guest),
			Status:    b.status,
			Checkin:   checkin,
			Checkout:  checkin.AddDate(0, 0, b.nights),
			Price:     amount(price),
			CreatedAt: checkin.AddDate(0, 0, -3),
		})
		if err != nil {
			return fmt.Errorf("create booking %d: %w", i+1, err)
		}
		if b.paid == "" {
			continue
		}
		status := "PENDING"
		if b.paidDone {
			status = "COMPLETED"
		}
		err = q.CreatePayment(ctx, dbgen.CreatePaymentParams{
			ID:        demoID("payment", fmt.Sprint(i+1)),
			BookingID: bookingID,
			Amount:    amount(price),
			Method:    b.paid,
			Status:    status,
			CreatedAt: checkin,
		})
		if err != nil {
			return fmt.Errorf("create payment %d: %w", i+1, err)
		}
	}

	maintenance := []dbgen.CreateMaintenanceParams{
		{RoomID: demoID("room", "104"), Title: "Broken window latch", Status: "IN_PROGRESS", Priority: "HIGH", ReportedAt: now.AddDate(0, 0, -3)},
		{RoomID: demoID("room", "202"), Title: "Shower drains slowly", Status: "PENDING", Priority: "MEDIUM", ReportedAt: now.AddDate(0, 0, -1)},
		{RoomID: demoID("room", "101"), Title: "Smoke alarm chirping", Status: "COMPLETED", Priority: "URGENT", ReportedAt: now.AddDate(0, 0, -9)},
		{RoomID: demoID("room", "102"), Title: "Loose wardrobe door", Status: "COMPLETED", Priority: "LOW", ReportedAt: now.AddDate(0, 0, -30)},
	}
	for i, m := range maintenance {
		m.ID = demoID("maintenance", fmt.Sprint(i+1))
		m.ReportedBy = sql.NullString{String: demoID("user", "staff-1"), Valid: true}
		if err := q.CreateMaintenance(ctx, m); err != nil {
			return fmt.Errorf("create maintenance %d: %w", i+1, err)
		}
	}

	expenses := []dbgen.CreateExpenseParams{
		{Category: "UTILITIES", Description: "Electricity", Amount: amount(420), Status: "APPROVED", CreatedAt: now.AddDate(0, 0, -5)},
		{Category: "SUPPLIES", Description: "Linen restock", Amount: amount(180.5), Status: "APPROVED", CreatedAt: now.AddDate(0, 0, -15)},
		{Category: "REPAIRS", Description: "Window latch parts", Amount: amount(65), Status: "PENDING", CreatedAt: now.AddDate(0, 0, -2)},
		{Category: "MARKETING", Description: "Listing fees", Amount: amount(90), Status: "REJECTED", CreatedAt: now.AddDate(0, 0, -20)},
	}
	for i, e := range expenses {
		e.ID = demoID("expense", fmt.Sprint(i+1))
		e.HostelID = demoHostelID
		if err := q.CreateExpense(ctx, e); err != nil {
			return fmt.Errorf("create expense %d: %w", i+1, err)
		}
	}

	lastMonth := now.AddDate(0, -1, 0)
	salaries := []dbgen.CreateSalaryParams{
		{StaffID: demoID("user", "staff-1"), Amount: amount(1800), Status: "PAID", PayPeriod: lastMonth.Format("2006-01"), PaidAt: sql.NullTime{Time: now.AddDate(0, 0, -4), Valid: true}},
		{StaffID: demoID("user", "staff-2"), Amount: amount(1750), Status: "PAID", PayPeriod: lastMonth.Format("2006-01"), PaidAt: sql.NullTime{Time: now.AddDate(0, 0, -4), Valid: true}},
		{StaffID: demoID("user", "warden"), Amount: amount(2400), Status: "PENDING", PayPeriod: now.Format("2006-01")},
	}
	for i, s := range salaries {
		s.ID = demoID("salary", fmt.Sprint(i+1))
		s.HostelID = demoHostelID
		if err := q.CreateSalary(ctx, s); err != nil {
			return fmt.Errorf("create salary %d: %w", i+1, err)
		}
	}

	return nil
}

func demoID(kind, key string) string {
	return demoHostelID + "-" + kind + "-" + key
}
