package assistant

import (
	"context"
	"sync"
)

type FakeTextGenerator struct {
	Response    string
	ReturnError error
	Prompts     []string
	lock        sync.Mutex
}

func NewFakeTextGenerator(response string) *FakeTextGenerator {
	return &FakeTextGenerator{Response: response}
}

func (g *FakeTextGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	g.lock.Lock()
	g.Prompts = append(g.Prompts, prompt)
	g.lock.Unlock()
	if g.ReturnError != nil {
		return "", g.ReturnError
	}
	return g.Response, nil
}
