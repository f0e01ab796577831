package app

import (
	"go.uber.org/zap"

	"hatermatic/internal/domain"
)

// App is what the coin-credit caller talks to: tier in, phrase out.
type App struct {
	Phrases domain.PhraseSelector
	Log     *zap.Logger
}

func New(w *Wire) *App {
	return &App{Phrases: w.Selector, Log: w.Logger}
}

// Dispense selects one phrase for tier and logs the draw.
func (a *App) Dispense(tier domain.Tier) string {
	p := a.Phrases.Select(tier)
	a.Log.Debug("phrase dispensed", zap.Stringer("tier", tier), zap.Int("len", len(p)))
	return p
}
