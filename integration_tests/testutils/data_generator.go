//go:build integration

package testutils

import (
	"strconv"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

// TelegramUser is a generated Telegram sender.
type TelegramUser struct {
	TgID      string
	Username  string
	FirstName string
	LastName  string
	Email     string
}

// TestDataGenerator provides methods to create test data for integration tests
type TestDataGenerator struct {
	faker *gofakeit.Faker
}

// NewTestDataGenerator creates a new test data generator with optional seed
func NewTestDataGenerator(seed ...int64) *TestDataGenerator {
	s := time.Now().UnixNano()
	if len(seed) > 0 {
		s = seed[0]
	}
	return &TestDataGenerator{faker: gofakeit.New(uint64(s))}
}

// TelegramUser generates a sender with a unique numeric Telegram id.
func (g *TestDataGenerator) TelegramUser() TelegramUser {
	first, last := g.faker.FirstName(), g.faker.LastName()
	return TelegramUser{
		TgID:      strconv.FormatInt(int64(g.faker.Number(100000000, 999999999)), 10),
		Username:  strings.ToLower(g.faker.Username()),
		FirstName: first,
		LastName:  last,
		Email:     strings.ToLower(g.faker.Email()),
	}
}

// ClubName generates a club name.
func (g *TestDataGenerator) ClubName() string {
	return g.faker.HipsterWord() + " " + g.faker.Noun() + " Club"
}

// RoomCode generates a room code like "B214".
func (g *TestDataGenerator) RoomCode() string {
	return strings.ToUpper(g.faker.Letter()) + g.faker.Numerify("###")
}
