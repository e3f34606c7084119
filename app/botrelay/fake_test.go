package botrelay

import (
	"context"
	"sync"
)

type apiCall struct {
	Path    string
	Payload any
}

// FakeAPI records calls and answers with PostFunc, or 200 {} by default.
type FakeAPI struct {
	mu       sync.Mutex
	calls    []apiCall
	PostFunc func(ctx context.Context, path string, payload any) (*Response, error)
}

func (f *FakeAPI) Post(ctx context.Context, path string, payload any) (*Response, error) {
	f.mu.Lock()
	f.calls = append(f.calls, apiCall{Path: path, Payload: payload})
	f.mu.Unlock()
	if f.PostFunc != nil {
		return f.PostFunc(ctx, path, payload)
	}
	return &Response{StatusCode: 200, Body: []byte(`{}`)}, nil
}

func (f *FakeAPI) Calls() []apiCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]apiCall, len(f.calls))
	copy(out, f.calls)
	return out
}

// callsTo filters out the sender upserts.
func (f *FakeAPI) callsTo(path string) []apiCall {
	var out []apiCall
	for _, c := range f.Calls() {
		if c.Path == path {
			out = append(out, c)
		}
	}
	return out
}

type sentMessage struct {
	ChatID int64
	Text   string
}

// FakeSender records replies.
type FakeSender struct {
	Sent     []sentMessage
	SendFunc func(ctx context.Context, chatID int64, text string) error
}

func (f *FakeSender) Send(ctx context.Context, chatID int64, text string) error {
	f.Sent = append(f.Sent, sentMessage{ChatID: chatID, Text: text})
	if f.SendFunc != nil {
		return f.SendFunc(ctx, chatID, text)
	}
	return nil
}

var (
	_ API    = (*FakeAPI)(nil)
	_ Sender = (*FakeSender)(nil)
)
