package filter

import "github.com/Domenick1991/hotelbooking/internal/domain"

// RoomCriteria is the room search form. Nil fields impose no constraint.
type RoomCriteria struct {
	MinPrice       *float64
	MaxPrice       *float64
	MinCapacity    *int
	RoomType       *string
	SmokingAllowed *string
	FloorNumber    *int
}

func (c RoomCriteria) Predicate() Predicate[domain.Room] {
	var preds []Predicate[domain.Room]
	if c.MinPrice != nil {
		min := *c.MinPrice
		preds = append(preds, func(r domain.Room) bool { return r.PricePerNight >= min })
	}
	if c.MaxPrice != nil {
		max := *c.MaxPrice
		preds = append(preds, func(r domain.Room) bool { return r.PricePerNight <= max })
	}
	if c.MinCapacity != nil {
		preds = append(preds, RoomCapacityAtLeast(*c.MinCapacity))
	}
	if c.RoomType != nil {
		want := *c.RoomType
		preds = append(preds, func(r domain.Room) bool { return equalFold(string(r.Type), want) })
	}
	if c.SmokingAllowed != nil {
		want := *c.SmokingAllowed
		preds = append(preds, func(r domain.Room) bool { return equalFold(string(r.SmokingAllowed), want) })
	}
	if c.FloorNumber != nil {
		preds = append(preds, RoomOnFloor(*c.FloorNumber))
	}
	return All(preds...)
}

func RoomNumberIs(number string) Predicate[domain.Room] {
	return func(r domain.Room) bool { return r.RoomNumber == number }
}

func RoomTypeIs(t domain.RoomType) Predicate[domain.Room] {
	return func(r domain.Room) bool { return r.Type == t }
}

func RoomStatusIs(s domain.RoomStatus) Predicate[domain.Room] {
	return func(r domain.Room) bool { return r.Status == s }
}

func RoomPriceBetween(min, max float64) Predicate[domain.Room] {
	return func(r domain.Room) bool { return r.PricePerNight >= min && r.PricePerNight <= max }
}

func RoomCapacityAtLeast(n int) Predicate[domain.Room] {
	return func(r domain.Room) bool { return r.Capacity >= n }
}

func RoomOnFloor(floor int) Predicate[domain.Room] {
	return func(r domain.Room) bool { return r.FloorNumber == floor }
}
