package botrelay

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"strings"
)

const (
	helpText = "Commands:\n" +
		"/setrole <email> <role>\n" +
		"/setroletg <tg_id> <role>\n" +
		"/setleader <club name> | <email>\n" +
		"/setleadertg <club name> | <tg_id>\n" +
		"/createclub <club name>\n\n" +
		"/setemail <tg_id> <email>\n" +
		"/email <email>\n\n" +
		"Roles: student, club_leader, admin"

	welcomeStartText = "Welcome to Roomly!\n\n" +
		"Please link your email:\n" +
		"/email you@domain.com\n\n" +
		"After that you can open the web app."
	welcomeHelpText = "Welcome to Roomly!\n\n" +
		"Please link your email:\n" +
		"/email you@domain.com"
	linkEmailText = "Please link your email:\n/email you@domain.com"
	sendEmailText = "Send your email with /email you@domain.com"

	accessDeniedText = "Access denied."
	invalidEmailText = "Invalid email."
	apiFailedText    = "Error: API unavailable."
)

// User is the Telegram account that sent a command.
type User struct {
	ID        int64
	Username  string
	FirstName string
	LastName  string
}

// FullName joins the non-empty name parts.
func (u *User) FullName() string {
	return strings.TrimSpace(strings.Join([]string{u.FirstName, u.LastName}, " "))
}

// Command is a parsed chat command.
type Command struct {
	ChatID int64
	From   *User
	// Name is the command without the slash or bot mention.
	Name string
	// Arguments is the raw text after the command.
	Arguments string
}

// Args splits the arguments on whitespace.
func (c Command) Args() []string {
	return strings.Fields(c.Arguments)
}

// Sender delivers replies to a chat.
type Sender interface {
	Send(ctx context.Context, chatID int64, text string) error
}

type userInfo struct {
	ID           int64 `json:"id"`
	BotIntroSeen bool  `json:"bot_intro_seen"`
}

type commandFunc func(b *Bot, ctx context.Context, cmd Command) string

var adminCommands = map[string]commandFunc{
	"setrole":     (*Bot).setRole,
	"setroletg":   (*Bot).setRoleTg,
	"setleader":   (*Bot).setLeader,
	"setleadertg": (*Bot).setLeaderTg,
	"createclub":  (*Bot).createClub,
	"setemail":    (*Bot).setEmail,
}

// Bot relays chat commands to the Roomly API.
type Bot struct {
	api    API
	sender Sender
	admins map[int64]struct{}
	logger *slog.Logger
}

// NewBot creates a Bot. Only senders in adminIDs may run admin commands.
func NewBot(api API, sender Sender, adminIDs []int64, logger *slog.Logger) *Bot {
	if logger == nil {
		logger = slog.Default()
	}
	admins := make(map[int64]struct{}, len(adminIDs))
	for _, id := range adminIDs {
		admins[id] = struct{}{}
	}
	return &Bot{api: api, sender: sender, admins: admins, logger: logger}
}

// Handle answers cmd. Unknown commands are ignored.
func (b *Bot) Handle(ctx context.Context, cmd Command) error {
	text, ok := b.Reply(ctx, cmd)
	if !ok {
		return nil
	}
	return b.sender.Send(ctx, cmd.ChatID, text)
}

// Reply computes the answer to cmd. The sender is upserted first for every
// known command.
func (b *Bot) Reply(ctx context.Context, cmd Command) (string, bool) {
	run, isAdminCommand := adminCommands[cmd.Name]
	switch {
	case cmd.Name == "start" || cmd.Name == "help":
		info := b.ensureUser(ctx, cmd.From, nil)
		return b.greet(ctx, cmd, info), true
	case cmd.Name == "email":
		b.ensureUser(ctx, cmd.From, nil)
		return b.linkOwnEmail(ctx, cmd), true
	case isAdminCommand:
		b.ensureUser(ctx, cmd.From, nil)
		if !b.isAdmin(cmd.From) {
			return accessDeniedText, true
		}
		return run(b, ctx, cmd), true
	default:
		return "", false
	}
}

func (b *Bot) isAdmin(u *User) bool {
	if u == nil {
		return false
	}
	_, ok := b.admins[u.ID]
	return ok
}

// ensureUser upserts the sender and returns what the API knows about them,
// or nil when the call fails.
func (b *Bot) ensureUser(ctx context.Context, u *User, markIntro *bool) *userInfo {
	if u == nil {
		return nil
	}
	payload := map[string]any{
		"tg_id":     strconv.FormatInt(u.ID, 10),
		"username":  nullable(u.Username),
		"full_name": nullable(u.FullName()),
	}
	if markIntro != nil {
		payload["mark_intro"] = *markIntro
	}

	res, err := b.api.Post(ctx, "/api/bot/upsert-user", payload)
	if err != nil {
		b.logger.WarnContext(ctx, "Failed to upsert sender", slog.Int64("tg_id", u.ID), slog.String("error", err.Error()))
		return nil
	}
	if !res.OK() {
		b.logger.WarnContext(ctx, "Sender upsert rejected", slog.Int64("tg_id", u.ID), slog.Int("status", res.StatusCode))
		return nil
	}
	var info userInfo
	if err := json.Unmarshal(res.Body, &info); err != nil {
		return nil
	}
	return &info
}

func (b *Bot) greet(ctx context.Context, cmd Command, info *userInfo) string {
	if b.isAdmin(cmd.From) {
		return helpText
	}
	if info != nil && info.BotIntroSeen {
		if cmd.Name == "start" {
			return linkEmailText
		}
		return sendEmailText
	}

	seen := true
	b.ensureUser(ctx, cmd.From, &seen)
	if cmd.Name == "start" {
		return welcomeStartText
	}
	return welcomeHelpText
}

func (b *Bot) call(ctx context.Context, path string, payload map[string]any, success func(map[string]any) string) string {
	res, err := b.api.Post(ctx, path, payload)
	if err != nil {
		b.logger.ErrorContext(ctx, "API call failed", slog.String("path", path), slog.String("error", err.Error()))
		return apiFailedText
	}
	return FormatResponse(res, success)
}

func (b *Bot) setRole(ctx context.Context, cmd Command) string {
	const usage = "Usage: /setrole <email> <role>"
	args := cmd.Args()
	if len(args) < 2 {
		return usage
	}
	identifier, role := args[0], args[1]

	payload := map[string]any{"role": role}
	if email, ok := ExtractEmail(identifier); ok {
		payload["email"] = email
	} else if id, err := strconv.ParseInt(identifier, 10, 64); err == nil {
		payload["user_id"] = id
	} else {
		return usage
	}
	return b.call(ctx, "/api/bot/assign-role", payload, message("Role updated: "+role+"."))
}

func (b *Bot) setRoleTg(ctx context.Context, cmd Command) string {
	args := cmd.Args()
	if len(args) < 2 {
		return "Usage: /setroletg <tg_id> <role>"
	}
	tgID, role := args[0], args[1]
	return b.call(ctx, "/api/bot/assign-role", map[string]any{"tg_id": tgID, "role": role}, message("Role updated: "+role+"."))
}

func (b *Bot) setLeader(ctx context.Context, cmd Command) string {
	var payload map[string]any

	if clubName, identifier, ok := ParsePipeArgs(cmd.Arguments); ok {
		identifier = strings.Fields(identifier)[0]
		payload = map[string]any{"club_name": clubName}
		if email, ok := ExtractEmail(identifier); ok {
			payload["email"] = email
		} else if id, err := strconv.ParseInt(identifier, 10, 64); err == nil && isDigits(identifier) {
			payload["user_id"] = id
		} else {
			return "Usage: /setleader <club name> | <user_id|email>"
		}
	} else {
		const usage = "Usage: /setleader <club name> | <email>"
		args := cmd.Args()
		if len(args) < 2 {
			return usage
		}
		clubID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil || !isDigits(args[0]) {
			return "Use: /setleader <club name> | <email>"
		}
		payload = map[string]any{"club_id": clubID}
		if email, ok := ExtractEmail(args[1]); ok {
			payload["email"] = email
		} else if id, err := strconv.ParseInt(args[1], 10, 64); err == nil {
			payload["user_id"] = id
		} else {
			return usage
		}
	}
	return b.call(ctx, "/api/bot/assign-club-leader", payload, message("Leader assigned."))
}

func (b *Bot) setLeaderTg(ctx context.Context, cmd Command) string {
	var payload map[string]any

	if clubName, tgID, ok := ParsePipeArgs(cmd.Arguments); ok {
		tgID = strings.Fields(tgID)[0]
		if !isDigits(tgID) {
			return "Usage: /setleadertg <club name> | <tg_id>"
		}
		payload = map[string]any{"club_name": clubName, "tg_id": tgID}
	} else {
		args := cmd.Args()
		if len(args) < 2 {
			return "Usage: /setleadertg <club name> | <tg_id>"
		}
		clubID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil || !isDigits(args[0]) {
			return "Use: /setleadertg <club name> | <tg_id>"
		}
		payload = map[string]any{"club_id": clubID, "tg_id": args[1]}
	}
	return b.call(ctx, "/api/bot/assign-club-leader", payload, message("Leader assigned."))
}

func (b *Bot) createClub(ctx context.Context, cmd Command) string {
	name := strings.Join(cmd.Args(), " ")
	if name == "" {
		return "Usage: /createclub <club name>"
	}
	return b.call(ctx, "/api/bot/create-club", map[string]any{"name": name}, func(data map[string]any) string {
		if created, ok := data["name"].(string); ok && created != "" {
			return "Club created: " + created + "."
		}
		return "Club created: " + name + "."
	})
}

// setEmail links an email for another user. Numeric identifiers are user ids.
func (b *Bot) setEmail(ctx context.Context, cmd Command) string {
	args := cmd.Args()
	if len(args) < 2 {
		return "Usage: /setemail <tg_id> <email>"
	}
	email, ok := ExtractEmail(args[1])
	if !ok {
		return invalidEmailText
	}

	payload := map[string]any{"email": email}
	if id, err := strconv.ParseInt(args[0], 10, 64); err == nil && isDigits(args[0]) {
		payload["user_id"] = id
	} else {
		payload["tg_id"] = args[0]
	}
	return b.call(ctx, "/api/bot/set-email", payload, message("Email linked."))
}

func (b *Bot) linkOwnEmail(ctx context.Context, cmd Command) string {
	args := cmd.Args()
	if len(args) < 1 {
		return "Usage: /email <email>"
	}
	email, ok := ExtractEmail(args[0])
	if !ok {
		return invalidEmailText
	}
	if cmd.From == nil {
		return "User not found."
	}
	payload := map[string]any{"tg_id": strconv.FormatInt(cmd.From.ID, 10), "email": email}
	return b.call(ctx, "/api/bot/set-email", payload, message("Email linked. You can open the web app."))
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
