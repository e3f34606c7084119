package roomdb

import "github.com/uptrace/bun"

// Room is a bookable space.
type Room struct {
	bun.BaseModel `bun:"table:rooms,alias:r"`
	ID            int64   `bun:"id,pk,autoincrement" json:"id"`
	Code          string  `bun:"code,unique,notnull" json:"code"`
	Building      *string `bun:"building" json:"building"`
	Floor         *string `bun:"floor" json:"floor"`
	RoomType      *string `bun:"room_type" json:"room_type"`
	Capacity      *int    `bun:"capacity" json:"capacity"`
	IsActive      bool    `bun:"is_active,notnull" json:"is_active"`
}
