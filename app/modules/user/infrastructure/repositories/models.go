package userdb

import (
	"time"

	authdomain "github.com/Black-And-White-Club/roomly/app/modules/auth/domain"
	"github.com/uptrace/bun"
)

// User is a person known to Roomly through Telegram.
type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`
	ID            int64           `bun:"id,pk,autoincrement" json:"id"`
	TgID          string          `bun:"tg_id,unique,notnull" json:"tg_id"`
	Email         *string         `bun:"email,unique" json:"email"`
	Username      *string         `bun:"username" json:"username"`
	FullName      *string         `bun:"full_name" json:"full_name"`
	Role          authdomain.Role `bun:"role,notnull,default:'student'" json:"role"`
	BotIntroSeen  bool            `bun:"bot_intro_seen,notnull,default:false" json:"bot_intro_seen"`
	CreatedAt     time.Time       `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
}

// HasEmail reports whether an email is linked.
func (u *User) HasEmail() bool {
	return u.Email != nil && *u.Email != ""
}
