package stats

import (
	"sort"
	"strconv"

	dbgen "github.com/hostelhub/hostelhub/internal/db/generated"
)

type RoomPerformance struct {
	RoomID       string  `json:"roomId"`
	RoomNumber   string  `json:"roomNumber"`
	Floor        int64   `json:"floor"`
	TotalRevenue float64 `json:"totalRevenue"`
	BookingCount int64   `json:"bookingCount"`
}

// rankRooms orders rooms by revenue, highest first. Equal revenue falls back
// to floor, then room number compared numerically, matching ListRoomRevenue.
func rankRooms(rows []dbgen.ListRoomRevenueRow) []RoomPerformance {
	rooms := make([]RoomPerformance, 0, len(rows))
	for _, row := range rows {
		rooms = append(rooms, RoomPerformance{
			RoomID:       row.RoomID,
			RoomNumber:   row.RoomNumber,
			Floor:        row.Floor,
			TotalRevenue: finite(row.TotalRevenue),
			BookingCount: row.BookingCount,
		})
	}
	sort.SliceStable(rooms, func(i, j int) bool {
		if rooms[i].TotalRevenue != rooms[j].TotalRevenue {
			return rooms[i].TotalRevenue > rooms[j].TotalRevenue
		}
		if rooms[i].Floor != rooms[j].Floor {
			return rooms[i].Floor < rooms[j].Floor
		}
		ni, nj := roomNumberValue(rooms[i].RoomNumber), roomNumberValue(rooms[j].RoomNumber)
		if ni != nj {
			return ni < nj
		}
		if rooms[i].RoomNumber != rooms[j].RoomNumber {
			return rooms[i].RoomNumber < rooms[j].RoomNumber
		}
		return rooms[i].RoomID < rooms[j].RoomID
	})
	return rooms
}

// roomNumberValue reads the leading digits of a room number the way SQLite
// casts text to INTEGER: "12B" is 12 and "A1" is 0.
func roomNumberValue(number string) int64 {
	end := 0
	for end < len(number) && number[end] >= '0' && number[end] <= '9' {
		end++
	}
	n, err := strconv.ParseInt(number[:end], 10, 64)
	if err != nil {
		return 0
	}
	return n
}
