package domain

type Room struct {
	ID             int64       `json:"id"`
	RoomNumber     string      `json:"roomNumber"`
	Type           RoomType    `json:"roomType"`
	Capacity       int         `json:"capacity"`
	PricePerNight  float64     `json:"pricePerNight"`
	Status         RoomStatus  `json:"roomStatus"`
	Description    string      `json:"description,omitempty"`
	SmokingAllowed SmokingFlag `json:"smokingAllowed,omitempty"`
	FloorNumber    int         `json:"floorNumber"`
}
