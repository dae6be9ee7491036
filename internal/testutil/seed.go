package testutil

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/hostelhub/hostelhub/internal/db"
	dbgen "github.com/hostelhub/hostelhub/internal/db/generated"
)

// Seeder inserts fixture rows and fails the test on any error. Times are
// stored in UTC regardless of the location they are given in.
type Seeder struct {
	t       *testing.T
	ctx     context.Context
	queries *dbgen.Queries
}

func NewSeeder(t *testing.T, database *db.DB) *Seeder {
	t.Helper()
	return &Seeder{t: t, ctx: context.Background(), queries: database.Queries}
}

// Amount returns a pointer for optional amount fields.
func Amount(v float64) *float64 {
	return &v
}

func nullAmount(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func orNow(ts time.Time) time.Time {
	if ts.IsZero() {
		return time.Now().UTC()
	}
	return ts.UTC()
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func (s *Seeder) Hostel(name string) string {
	s.t.Helper()
	id := uuid.NewString()
	if err := s.queries.CreateHostel(s.ctx, dbgen.CreateHostelParams{ID: id, Name: name}); err != nil {
		s.t.Fatalf("seed hostel %q: %v", name, err)
	}
	return id
}

// User inserts a user. hostelID may be empty for users not tied to a hostel.
func (s *Seeder) User(name, role, hostelID string) string {
	s.t.Helper()
	id := uuid.NewString()
	err := s.queries.CreateUser(s.ctx, dbgen.CreateUserParams{
		ID:       id,
		Name:     name,
		Email:    id + "@example.test",
		Role:     role,
		HostelID: sql.NullString{String: hostelID, Valid: hostelID != ""},
	})
	if err != nil {
		s.t.Fatalf("seed user %q: %v", name, err)
	}
	return id
}

func (s *Seeder) Room(hostelID, roomNumber string, floor int64, status string) string {
	s.t.Helper()
	id := uuid.NewString()
	err := s.queries.CreateRoom(s.ctx, dbgen.CreateRoomParams{
		ID:            id,
		HostelID:      hostelID,
		RoomNumber:    roomNumber,
		Floor:         floor,
		Status:        orDefault(status, "AVAILABLE"),
		PricePerNight: 100,
	})
	if err != nil {
		s.t.Fatalf("seed room %q: %v", roomNumber, err)
	}
	return id
}

type BookingSeed struct {
	HostelID  string
	RoomID    string
	UserID    string
	Status    string
	Checkin   time.Time
	Checkout  time.Time
	Price     *float64
	CreatedAt time.Time
}

func (s *Seeder) Booking(b BookingSeed) string {
	s.t.Helper()
	id := uuid.NewString()
	createdAt := orNow(b.CreatedAt)
	checkin := b.Checkin
	if checkin.IsZero() {
		checkin = createdAt
	}
	checkout := b.Checkout
	if checkout.IsZero() {
		checkout = checkin.AddDate(0, 0, 1)
	}
	err := s.queries.CreateBooking(s.ctx, dbgen.CreateBookingParams{
		ID:        id,
		HostelID:  b.HostelID,
		RoomID:    b.RoomID,
		UserID:    b.UserID,
		Status:    orDefault(b.Status, "PENDING"),
		Checkin:   checkin.UTC(),
		Checkout:  checkout.UTC(),
		Price:     nullAmount(b.Price),
		CreatedAt: createdAt,
	})
	if err != nil {
		s.t.Fatalf("seed booking: %v", err)
	}
	return id
}

type PaymentSeed struct {
	BookingID string
	Amount    *float64
	Method    string
	Status    string
	CreatedAt time.Time
}

func (s *Seeder) Payment(p PaymentSeed) string {
	s.t.Helper()
	id := uuid.NewString()
	err := s.queries.CreatePayment(s.ctx, dbgen.CreatePaymentParams{
		ID:        id,
		BookingID: p.BookingID,
		Amount:    nullAmount(p.Amount),
		Method:    orDefault(p.Method, "CASH"),
		Status:    orDefault(p.Status, "COMPLETED"),
		CreatedAt: orNow(p.CreatedAt),
	})
	if err != nil {
		s.t.Fatalf("seed payment: %v", err)
	}
	return id
}

type MaintenanceSeed struct {
	RoomID     string
	ReportedBy string
	Title      string
	Status     string
	Priority   string
	ReportedAt time.Time
}

func (s *Seeder) Maintenance(m MaintenanceSeed) string {
	s.t.Helper()
	id := uuid.NewString()
	err := s.queries.CreateMaintenance(s.ctx, dbgen.CreateMaintenanceParams{
		ID:         id,
		RoomID:     m.RoomID,
		ReportedBy: sql.NullString{String: m.ReportedBy, Valid: m.ReportedBy != ""},
		Title:      orDefault(m.Title, "Leaking tap"),
		Status:     orDefault(m.Status, "PENDING"),
		Priority:   orDefault(m.Priority, "MEDIUM"),
		ReportedAt: orNow(m.ReportedAt),
	})
	if err != nil {
		s.t.Fatalf("seed maintenance: %v", err)
	}
	return id
}

type ExpenseSeed struct {
	HostelID    string
	Category    string
	Description string
	Amount      *float64
	Status      string
	CreatedAt   time.Time
}

func (s *Seeder) Expense(e ExpenseSeed) string {
	s.t.Helper()
	id := uuid.NewString()
	err := s.queries.CreateExpense(s.ctx, dbgen.CreateExpenseParams{
		ID:          id,
		HostelID:    e.HostelID,
		Category:    orDefault(e.Category, "UTILITIES"),
		Description: orDefault(e.Description, "Monthly bill"),
		Amount:      nullAmount(e.Amount),
		Status:      orDefault(e.Status, "PENDING"),
		CreatedAt:   orNow(e.CreatedAt),
	})
	if err != nil {
		s.t.Fatalf("seed expense: %v", err)
	}
	return id
}

// SalarySeed leaves paid_at NULL when PaidAt is zero.
type SalarySeed struct {
	HostelID  string
	StaffID   string
	Amount    *float64
	Status    string
	PayPeriod string
	PaidAt    time.Time
}

func (s *Seeder) Salary(sal SalarySeed) string {
	s.t.Helper()
	id := uuid.NewString()
	paidAt := sql.NullTime{}
	if !sal.PaidAt.IsZero() {
		paidAt = sql.NullTime{Time: sal.PaidAt.UTC(), Valid: true}
	}
	err := s.queries.CreateSalary(s.ctx, dbgen.CreateSalaryParams{
		ID:        id,
		HostelID:  sal.HostelID,
		StaffID:   sal.StaffID,
		Amount:    nullAmount(sal.Amount),
		Status:    orDefault(sal.Status, "PENDING"),
		PayPeriod: orDefault(sal.PayPeriod, "2026-01"),
		PaidAt:    paidAt,
	})
	if err != nil {
		s.t.Fatalf("seed salary: %v", err)
	}
	return id
}
